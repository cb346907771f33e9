// Package postgres provides the PostgreSQL-backed document store.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// Store persists documents, settings and the current-document pointer in
// PostgreSQL. The connection pool is created lazily on first use; concurrent
// initializers converge on a single handle.
type Store struct {
	databaseURL string

	mu   sync.Mutex
	pool *pgxpool.Pool
}

// New returns a Store for the given connection URL. No connection is made
// until the first operation.
func New(databaseURL string) *Store {
	return &Store{databaseURL: databaseURL}
}

// conn returns the shared pool, creating and pinging it on first call.
func (s *Store) conn(ctx context.Context) (*pgxpool.Pool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pool != nil {
		return s.pool, nil
	}

	pool, err := pgxpool.New(ctx, s.databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s.pool = pool
	return s.pool, nil
}

// Close closes the connection pool if one was created.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pool != nil {
		s.pool.Close()
		s.pool = nil
	}
}

// Migrate creates the resumes, settings and current tables if they do not
// exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	pool, err := s.conn(ctx)
	if err != nil {
		return err
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_resumes_updated_at ON resumes (updated_at DESC)`,
		`CREATE TABLE IF NOT EXISTS settings (
			id TEXT PRIMARY KEY,
			data JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS current (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}

// Save upserts a document, stamping UpdatedAt to now. Last write wins.
func (s *Store) Save(ctx context.Context, doc *types.ResumeDocument) error {
	pool, err := s.conn(ctx)
	if err != nil {
		return err
	}

	doc.Touch()
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO resumes (id, data, updated_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET data = $2, updated_at = $3`,
		doc.ID, data, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume %s: %w", doc.ID, err)
	}
	return nil
}

// Get retrieves a document by id, or (nil, nil) when absent.
func (s *Store) Get(ctx context.Context, id string) (*types.ResumeDocument, error) {
	pool, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = pool.QueryRow(ctx, `SELECT data FROM resumes WHERE id = $1`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume %s: %w", id, err)
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume %s: %w", id, err)
	}
	return &doc, nil
}

// GetAll retrieves every document ordered by UpdatedAt descending.
func (s *Store) GetAll(ctx context.Context) ([]types.ResumeDocument, error) {
	pool, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `SELECT data FROM resumes ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var docs []types.ResumeDocument
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		var doc types.ResumeDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resume: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Delete removes a document. Absent ids are not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	pool, err := s.conn(ctx)
	if err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete resume %s: %w", id, err)
	}
	return nil
}

// Duplicate copies an existing document under a fresh id and persists it.
func (s *Store) Duplicate(ctx context.Context, id string) (*types.ResumeDocument, error) {
	original, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, fmt.Errorf("duplicate %s: %w", id, store.ErrNotFound)
	}

	dup := store.DuplicateOf(original)
	if err := s.Save(ctx, dup); err != nil {
		return nil, err
	}
	return dup, nil
}

// SaveSettings upserts the settings singleton under the "default" id.
func (s *Store) SaveSettings(ctx context.Context, settings types.ResumeSettings) error {
	pool, err := s.conn(ctx)
	if err != nil {
		return err
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO settings (id, data) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET data = $2`,
		store.SettingsID, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettings returns the stored settings, or the defaults when none exist.
func (s *Store) GetSettings(ctx context.Context) (types.ResumeSettings, error) {
	pool, err := s.conn(ctx)
	if err != nil {
		return types.ResumeSettings{}, err
	}

	var data []byte
	err = pool.QueryRow(ctx, `SELECT data FROM settings WHERE id = $1`, store.SettingsID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.DefaultSettings(), nil
		}
		return types.ResumeSettings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	var settings types.ResumeSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return types.ResumeSettings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return settings, nil
}

// SetCurrentID records the active document pointer.
func (s *Store) SetCurrentID(ctx context.Context, id string) error {
	pool, err := s.conn(ctx)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO current (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = $2`,
		store.CurrentKey, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set current resume id: %w", err)
	}
	return nil
}

// GetCurrentID returns the active document pointer, or "" when unset.
func (s *Store) GetCurrentID(ctx context.Context) (string, error) {
	pool, err := s.conn(ctx)
	if err != nil {
		return "", err
	}

	var value string
	err = pool.QueryRow(ctx, `SELECT value FROM current WHERE key = $1`, store.CurrentKey).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get current resume id: %w", err)
	}
	return value, nil
}
