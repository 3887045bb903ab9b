package main

import (
	"fmt"

	"github.com/jonathan/lookalike/internal/config"
)

// resolveConfig merges flag-provided values over an optional config file and
// applies defaults. Flag values win; zero-valued flags fall through to the
// file, then to built-in defaults.
func resolveConfig(configPath string, overlay config.Config) (config.Config, error) {
	fileCfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	merged := overlay.MergeWithDefaults(fileCfg)
	merged.Verbose = overlay.Verbose || fileCfg.Verbose
	merged.IncludeDeclaration = overlay.IncludeDeclaration || fileCfg.IncludeDeclaration

	if err := merged.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return merged, nil
}
