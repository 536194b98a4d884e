// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config is the CLI configuration loadable from a JSON file. All fields are
// optional; missing values use defaults or come from CLI flags. The pattern
// fields are the engine's configuration surface: they append to the tier
// libraries without touching core logic.
type Config struct {
	// Paths
	Out string `json:"out,omitempty"` // Output directory for parsed records

	// Behavior
	Verbose          bool  `json:"verbose,omitempty"`            // Print detailed extraction summaries
	SwapTitleCompany *bool `json:"swap_title_company,omitempty"` // Position/company swap heuristic (default on)
	Concurrency      int   `json:"concurrency,omitempty" validate:"omitempty,gte=1,lte=64"`

	// Pattern additions, keyed by section kind
	SectionKeywords   map[string][]string `json:"section_keywords,omitempty" validate:"omitempty,dive,keys,oneof=experience education skills projects summary certifications languages,endkeys,dive,min=1"`
	DateFragments     []string            `json:"date_fragments,omitempty" validate:"omitempty,dive,min=1"`
	CompanyIndicators []string            `json:"company_indicators,omitempty" validate:"omitempty,dive,min=1"`
	TitleIndicators   []string            `json:"title_indicators,omitempty" validate:"omitempty,dive,min=1"`
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints using struct validation tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SwapEnabled resolves the swap policy with its default.
func (c *Config) SwapEnabled() bool {
	if c.SwapTitleCompany == nil {
		return true
	}
	return *c.SwapTitleCompany
}
