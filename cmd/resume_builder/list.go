package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored resumes",
	Long:  "List all stored resumes, most recently updated first. The current resume is marked with an asterisk.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
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

	resumes, err := st.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list resumes: %w", err)
	}

	currentID, err := st.GetCurrentID(ctx)
	if err != nil {
		return fmt.Errorf("failed to read current resume pointer: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintResumeList(resumes, currentID)

	return nil
}
