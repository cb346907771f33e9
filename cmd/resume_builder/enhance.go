package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/enhance"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/types"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance <text>",
	Short: "Enhance a bullet point or summary with stronger language",
	Long:  "Rewrite a bullet point or summary, replacing weak phrases with strong action verbs. Use --suggest to list improvement hints instead of rewriting.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEnhance,
}

var (
	enhanceRole    string
	enhanceLevel   string
	enhanceSummary bool
	enhanceSuggest bool
	enhanceSeed    int64
)

func init() {
	enhanceCmd.Flags().StringVar(&enhanceRole, "role", string(types.RoleDeveloper), "Target career role")
	enhanceCmd.Flags().StringVar(&enhanceLevel, "level", string(types.LevelProfessional), "Career level (student, fresher, professional, senior, executive)")
	enhanceCmd.Flags().BoolVar(&enhanceSummary, "summary", false, "Treat the text as a professional summary")
	enhanceCmd.Flags().BoolVar(&enhanceSuggest, "suggest", false, "Print improvement suggestions instead of rewriting")
	enhanceCmd.Flags().Int64Var(&enhanceSeed, "seed", 0, "Seed for verb selection (0 uses a time-based seed)")

	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(_ *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	role := types.CareerRole(enhanceRole)

	if enhanceSuggest {
		suggestions := enhance.GenerateSuggestions(text, role)
		observability.NewPrinter(os.Stdout).PrintSuggestions(suggestions)
		return nil
	}

	enhancer := enhance.NewDefault()
	if enhanceSeed != 0 {
		enhancer = enhance.New(rand.New(rand.NewSource(enhanceSeed)))
	}

	var result string
	if enhanceSummary {
		result = enhancer.EnhanceSummary(text, role, types.CareerLevel(enhanceLevel))
	} else {
		result = enhancer.EnhanceBulletPoint(text, role)
	}

	_, _ = fmt.Fprintln(os.Stdout, result)

	return nil
}
