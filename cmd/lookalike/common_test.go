package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/lookalike/internal/composing"
	"github.com/jonathan/lookalike/internal/config"
	"github.com/jonathan/lookalike/internal/matching"
)

func TestResolveConfig_NoFileUsesDefaults(t *testing.T) {
	cfg, err := resolveConfig("", config.Config{})

	require.NoError(t, err)
	assert.Equal(t, composing.DefaultSize, cfg.Size)
	assert.Equal(t, matching.DefaultThreshold, cfg.Threshold)
	assert.Equal(t, composing.ViewHead, cfg.ViewMode())
}

func TestResolveConfig_FlagsWinOverFile(t *testing.T) {
	path := writeTestFile(t, "config.json", `{"view": "full_body", "threshold": 80}`)

	cfg, err := resolveConfig(path, config.Config{Threshold: 95})

	require.NoError(t, err)
	assert.Equal(t, 95, cfg.Threshold)
	assert.Equal(t, composing.ViewFullBody, cfg.ViewMode())
}

func TestResolveConfig_VerboseFromEitherSource(t *testing.T) {
	path := writeTestFile(t, "config.json", `{"verbose": true}`)

	cfg, err := resolveConfig(path, config.Config{})

	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
}

func TestResolveConfig_InvalidMergedConfig(t *testing.T) {
	path := writeTestFile(t, "config.json", `{"view": "profile"}`)

	_, err := resolveConfig(path, config.Config{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestResolveConfig_MissingFile(t *testing.T) {
	_, err := resolveConfig("/nonexistent/config.json", config.Config{})

	assert.Error(t, err)
}
