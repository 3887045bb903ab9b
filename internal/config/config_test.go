package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/lookalike/internal/composing"
	"github.com/jonathan/lookalike/internal/matching"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"view": "full_body",
		"size": 462,
		"threshold": 75,
		"workers": 4,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "full_body", cfg.View)
	assert.Equal(t, 462, cfg.Size)
	assert.Equal(t, 75, cfg.Threshold)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_UnknownView(t *testing.T) {
	cfg := &Config{View: "profile"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "view")
}

func TestValidate_ThresholdOutOfRange(t *testing.T) {
	cfg := &Config{Threshold: 101}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "threshold")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{Size: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "size")
}

func TestValidate_BandsNotDecreasing(t *testing.T) {
	cfg := &Config{
		Bands: &BandConfig{Excellent: 80, Good: 80, Fair: 60},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "strictly decreasing")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		View:      "head",
		Size:      231,
		Threshold: 60,
		Workers:   8,
		Bands:     &BandConfig{Excellent: 90, Good: 75, Fair: 60},
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestViewMode_Default(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, composing.ViewHead, cfg.ViewMode())

	cfg.View = "full_body"
	assert.Equal(t, composing.ViewFullBody, cfg.ViewMode())
}

func TestBanding_Default(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, matching.DefaultBanding(), cfg.Banding())
}

func TestBanding_Custom(t *testing.T) {
	cfg := &Config{Bands: &BandConfig{Excellent: 95, Good: 80, Fair: 50}}

	b := cfg.Banding()
	assert.Equal(t, 95, b.Excellent)
	assert.Equal(t, 80, b.Good)
	assert.Equal(t, 50, b.Fair)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		View:      "full_body",
		Size:      462,
		Threshold: 80,
		Workers:   4,
	}

	partial := Config{
		View: "head",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "head", merged.View)

	// Default values should fill in zero-valued fields
	assert.Equal(t, 462, merged.Size)
	assert.Equal(t, 80, merged.Threshold)
	assert.Equal(t, 4, merged.Workers)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{View: "head"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "head", merged.View)
	assert.Equal(t, composing.DefaultSize, merged.Size)
	assert.Equal(t, matching.DefaultThreshold, merged.Threshold)
}
