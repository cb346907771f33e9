// Package main provides the entry point for the resume builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Resume builder with ATS scoring and rule-based enhancement",
	Long:  "Resume builder manages resume documents in PostgreSQL, scores them against ATS heuristics, enhances bullet points with action verbs, and exports polished HTML/PDF output.",
}

var (
	rootInMemory    bool
	rootDatabaseURL string
	rootConfigFile  string
	rootVerbose     bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootInMemory, "in-memory", false, "Use an in-memory store instead of PostgreSQL")
	rootCmd.PersistentFlags().StringVar(&rootDatabaseURL, "db-url", "", "Database URL (overrides config file and DATABASE_URL env var)")
	rootCmd.PersistentFlags().StringVar(&rootConfigFile, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
