package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetMatchFlags() {
	matchCandidateFile = ""
	matchEntriesFile = ""
	matchThreshold = 0
	matchWorkers = 0
	matchJSONOutput = false
	matchConfigFile = ""
	matchVerbose = false
}

func TestRunMatch_KeepsMatchingEntries(t *testing.T) {
	resetMatchFlags()
	t.Cleanup(resetMatchFlags)

	entries := fmt.Sprintf(`[
		{"id": "twin", "target": %s},
		{"id": "nobody", "target": null}
	]`, testRecordJSON)

	matchCandidateFile = writeTestFile(t, "candidate.json", testRecordJSON)
	matchEntriesFile = writeTestFile(t, "entries.json", entries)
	matchJSONOutput = true

	err := runMatch(matchCmd, nil)
	assert.NoError(t, err)
}

func TestRunMatch_MissingFlags(t *testing.T) {
	resetMatchFlags()
	t.Cleanup(resetMatchFlags)

	err := runMatch(matchCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--candidate and --entries are required")
}

func TestRunMatch_InvalidEntriesFile(t *testing.T) {
	resetMatchFlags()
	t.Cleanup(resetMatchFlags)

	matchCandidateFile = writeTestFile(t, "candidate.json", testRecordJSON)
	matchEntriesFile = writeTestFile(t, "entries.json", `{"not": "an array"}`)

	err := runMatch(matchCmd, nil)
	assert.Error(t, err)
}
