package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetRenderFlags() {
	renderRecordFile = ""
	renderOutputFile = ""
	renderView = ""
	renderSize = 0
	renderDeclaration = false
	renderConfigFile = ""
	renderVerbose = false
}

func TestRunRender_WritesOutputFile(t *testing.T) {
	resetRenderFlags()
	t.Cleanup(resetRenderFlags)

	renderRecordFile = writeTestFile(t, "record.json", testRecordJSON)
	renderOutputFile = filepath.Join(t.TempDir(), "avatar.svg")

	err := runRender(nil, nil)
	require.NoError(t, err)

	content, err := os.ReadFile(renderOutputFile)
	require.NoError(t, err)

	svg := string(content)
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, `viewBox="0 0 231 231"`)
	assert.NotContains(t, svg, "{{")
}

func TestRunRender_FullBodyView(t *testing.T) {
	resetRenderFlags()
	t.Cleanup(resetRenderFlags)

	renderRecordFile = writeTestFile(t, "record.json", testRecordJSON)
	renderOutputFile = filepath.Join(t.TempDir(), "avatar.svg")
	renderView = "full_body"

	err := runRender(nil, nil)
	require.NoError(t, err)

	content, err := os.ReadFile(renderOutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `viewBox="0 0 231 462"`)
}

func TestRunRender_MissingRecordFlag(t *testing.T) {
	resetRenderFlags()
	t.Cleanup(resetRenderFlags)

	err := runRender(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--record is required")
}

func TestRunRender_InvalidRecord(t *testing.T) {
	resetRenderFlags()
	t.Cleanup(resetRenderFlags)

	renderRecordFile = writeTestFile(t, "record.json", `{"skin_tone": "nope"}`)

	err := runRender(nil, nil)
	assert.Error(t, err)
}
