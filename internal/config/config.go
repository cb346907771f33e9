// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or environment
// variables.
type Config struct {
	DatabaseURL        string `json:"database_url,omitempty"`         // PostgreSQL connection URL
	AutosaveDebounceMs int    `json:"autosave_debounce_ms,omitempty"` // Autosave debounce in milliseconds
	ChromePath         string `json:"chrome_path,omitempty"`          // Chrome binary for PDF export
	Verbose            bool   `json:"verbose,omitempty"`              // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.AutosaveDebounceMs < 0 {
		return fmt.Errorf("config error: 'autosave_debounce_ms' must be non-negative")
	}
	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}
	return nil
}

// MergeWithEnv returns a new Config with empty fields filled from environment
// variables. Environment values win only where the file left a gap.
func (c *Config) MergeWithEnv() Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if result.ChromePath == "" {
		result.ChromePath = os.Getenv("CHROME_PATH")
	}

	return result
}
