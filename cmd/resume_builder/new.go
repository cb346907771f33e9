package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/types"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new resume document",
	Long:  "Create a new resume document with default settings, persist it, and make it the current document.",
	RunE:  runNew,
}

var newName string

func init() {
	newCmd.Flags().StringVarP(&newName, "name", "n", "", "Name for the new resume (default \"My Resume\")")

	rootCmd.AddCommand(newCmd)
}

func runNew(_ *cobra.Command, _ []string) error {
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

	doc := types.NewDocument()
	if newName != "" {
		doc.Name = newName
	}

	if err := st.Save(ctx, doc); err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	if err := st.SetCurrentID(ctx, doc.ID); err != nil {
		return fmt.Errorf("failed to set current resume: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Created resume %q\n", doc.Name)
	_, _ = fmt.Fprintf(os.Stdout, "id: %s\n", doc.ID)

	return nil
}
