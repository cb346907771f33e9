package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <resume-id>",
	Short: "Delete a stored resume",
	Long:  "Delete a stored resume. If it was the current resume, the current pointer is cleared.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
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

	id := args[0]

	if err := st.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}

	currentID, err := st.GetCurrentID(ctx)
	if err != nil {
		return fmt.Errorf("failed to read current resume pointer: %w", err)
	}
	if currentID == id {
		if err := st.SetCurrentID(ctx, ""); err != nil {
			return fmt.Errorf("failed to clear current resume pointer: %w", err)
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Deleted %s\n", id)

	return nil
}
