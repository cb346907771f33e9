package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/logger"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/store/memory"
	"github.com/jonathan/resume-builder/internal/store/postgres"
	"github.com/jonathan/resume-builder/internal/types"
)

// loadCLIConfig resolves the effective configuration from the optional config
// file, environment variables, and root flags. Flags win over the file, the
// file wins over the environment.
func loadCLIConfig() (config.Config, error) {
	cfg := config.Config{}

	if rootConfigFile != "" {
		loaded, err := config.LoadConfig(rootConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithEnv()

	if rootDatabaseURL != "" {
		cfg.DatabaseURL = rootDatabaseURL
	}
	if rootVerbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// newCLILogger builds the logger for CLI commands, honoring --verbose.
func newCLILogger(cfg config.Config) (*zap.Logger, error) {
	log, err := logger.New(false, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}

// openStore opens the document store selected by the root flags. The
// PostgreSQL store runs migrations before first use so commands can assume
// the tables exist.
func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	if rootInMemory {
		return memory.New(), nil
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required (set DATABASE_URL, use --db-url, or pass --in-memory)")
	}

	st := postgres.New(cfg.DatabaseURL)
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return st, nil
}

// loadResume fetches the resume with the given id, or the current resume when
// id is empty.
func loadResume(ctx context.Context, st store.Store, id string) (*types.ResumeDocument, error) {
	if id == "" {
		currentID, err := st.GetCurrentID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read current resume pointer: %w", err)
		}
		if currentID == "" {
			return nil, fmt.Errorf("no current resume (create one with 'new' or pass --id)")
		}
		id = currentID
	}

	doc, err := st.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("resume not found: %s", id)
	}

	return doc, nil
}
