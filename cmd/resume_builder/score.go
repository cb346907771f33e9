package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/scoring"
	"github.com/jonathan/resume-builder/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against ATS heuristics",
	Long:  "Score a resume's ATS-friendliness across action verbs, keywords, length, completeness, and bullet quality, with suggestions for improvement.",
	RunE:  runScore,
}

var (
	scoreResumeID string
	scoreRole     string
)

func init() {
	scoreCmd.Flags().StringVar(&scoreResumeID, "id", "", "Resume ID to score (default: current resume)")
	scoreCmd.Flags().StringVar(&scoreRole, "role", "", "Target career role for keyword matching (default: stored settings)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
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

	doc, err := loadResume(ctx, st, scoreResumeID)
	if err != nil {
		return err
	}

	role := types.CareerRole(scoreRole)
	if role == "" {
		settings, err := st.GetSettings(ctx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		role = settings.CareerRole
	}

	score := scoring.CalculateATSScore(doc, role)
	observability.NewPrinter(os.Stdout).PrintATSScore(score, scoring.ScoreLabel(score.Overall))

	return nil
}
