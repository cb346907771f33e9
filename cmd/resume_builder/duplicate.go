package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/store"
)

var duplicateCmd = &cobra.Command{
	Use:   "duplicate <resume-id>",
	Short: "Duplicate a stored resume",
	Long:  "Copy a stored resume under a fresh identity with \" (Copy)\" appended to its name.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDuplicate,
}

func init() {
	rootCmd.AddCommand(duplicateCmd)
}

func runDuplicate(_ *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	dup, err := st.Duplicate(ctx, args[0])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("resume not found: %s", args[0])
		}
		return fmt.Errorf("failed to duplicate resume: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Created %q\n", dup.Name)
	_, _ = fmt.Fprintf(os.Stdout, "id: %s\n", dup.ID)

	return nil
}
