// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/lookalike/internal/composing"
	"github.com/jonathan/lookalike/internal/matching"
)

// BandConfig holds the lower cut points for the similarity quality bands.
type BandConfig struct {
	Excellent int `json:"excellent"` // Minimum score for the excellent band
	Good      int `json:"good"`      // Minimum score for the good band
	Fair      int `json:"fair"`      // Minimum score for the fair band
}

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Rendering
	View               string `json:"view,omitempty"`                // Avatar view mode: "head" or "full_body"
	Size               int    `json:"size,omitempty"`                // Output width in pixels
	IncludeDeclaration bool   `json:"include_declaration,omitempty"` // Prepend the XML declaration to SVG output

	// Matching
	Threshold int         `json:"threshold,omitempty"` // Minimum score for a match (0-100)
	Workers   int         `json:"workers,omitempty"`   // Parallel match workers; 0 uses all CPUs
	Bands     *BandConfig `json:"bands,omitempty"`     // Quality band cut points

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.View != "" && !composing.ViewMode(c.View).Valid() {
		return fmt.Errorf("config error: 'view' must be %q or %q", composing.ViewHead, composing.ViewFullBody)
	}

	if c.Size < 0 {
		return fmt.Errorf("config error: 'size' must be non-negative")
	}

	if c.Threshold < 0 || c.Threshold > 100 {
		return fmt.Errorf("config error: 'threshold' must be between 0 and 100")
	}

	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	if c.Bands != nil {
		b := *c.Bands
		if b.Fair < 0 || b.Excellent > 100 {
			return fmt.Errorf("config error: band cut points must be between 0 and 100")
		}
		if b.Excellent <= b.Good || b.Good <= b.Fair {
			return fmt.Errorf("config error: band cut points must be strictly decreasing (excellent > good > fair)")
		}
	}

	return nil
}

// ViewMode returns the configured view mode, defaulting to the head view.
func (c *Config) ViewMode() composing.ViewMode {
	if c.View == "" {
		return composing.ViewHead
	}
	return composing.ViewMode(c.View)
}

// Banding returns the configured quality bands, or the defaults when unset.
func (c *Config) Banding() matching.Banding {
	if c.Bands == nil {
		return matching.DefaultBanding()
	}
	return matching.Banding{
		Excellent: c.Bands.Excellent,
		Good:      c.Bands.Good,
		Fair:      c.Bands.Fair,
	}
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.View == "" {
		result.View = defaults.View
	}

	if result.Size == 0 {
		if defaults.Size > 0 {
			result.Size = defaults.Size
		} else {
			result.Size = composing.DefaultSize
		}
	}

	if result.Threshold == 0 {
		if defaults.Threshold > 0 {
			result.Threshold = defaults.Threshold
		} else {
			result.Threshold = matching.DefaultThreshold
		}
	}

	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	if result.Bands == nil {
		result.Bands = defaults.Bands
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
