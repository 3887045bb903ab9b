// Package records loads attribute records and match entries from JSON,
// validating them against the embedded schema before use.
package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/lookalike/internal/matching"
	internalschemas "github.com/jonathan/lookalike/internal/schemas"
	"github.com/jonathan/lookalike/internal/types"
	"github.com/jonathan/lookalike/schemas"
)

// ParseError represents a failure to parse or validate a record document.
type ParseError struct {
	Source  string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse record %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to parse record %s: %s", e.Source, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ParseRecord decodes and validates a single attribute record document.
// The document is checked against the JSON Schema first so that errors
// carry field paths, then against the enum registries.
func ParseRecord(data []byte) (*types.AttributeRecord, error) {
	if err := internalschemas.ValidateJSONString(schemas.AttributeRecord, string(data)); err != nil {
		return nil, &ParseError{Source: "(inline)", Message: "schema validation failed", Cause: err}
	}

	var record types.AttributeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &ParseError{Source: "(inline)", Message: "invalid JSON", Cause: err}
	}

	if err := record.Validate(); err != nil {
		return nil, &ParseError{Source: "(inline)", Message: "invalid field values", Cause: err}
	}

	return &record, nil
}

// LoadRecord reads an attribute record from a JSON file.
func LoadRecord(path string) (*types.AttributeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Source: path, Message: "failed to read file", Cause: err}
	}

	record, err := ParseRecord(data)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Source = path
		}
		return nil, err
	}

	return record, nil
}

// rawEntry is the on-disk shape of one match entry. Target stays raw so a
// null target survives loading; the filter excludes it at match time.
type rawEntry struct {
	ID     string          `json:"id"`
	Target json.RawMessage `json:"target"`
}

// LoadEntries reads a JSON array of match entries from a file. Entries
// without an id are assigned a fresh UUID. Entries with a null target are
// kept as-is; entries with an invalid target fail the whole load.
func LoadEntries(path string) ([]matching.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Source: path, Message: "failed to read file", Cause: err}
	}

	var raw []rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Source: path, Message: "invalid JSON", Cause: err}
	}

	entries := make([]matching.Entry, 0, len(raw))
	for i, re := range raw {
		id := re.ID
		if id == "" {
			id = uuid.NewString()
		}

		if len(re.Target) == 0 || string(re.Target) == "null" {
			entries = append(entries, matching.Entry{ID: id})
			continue
		}

		target, err := ParseRecord(re.Target)
		if err != nil {
			return nil, &ParseError{
				Source:  path,
				Message: fmt.Sprintf("entry %d (%s) has an invalid target", i, id),
				Cause:   err,
			}
		}
		entries = append(entries, matching.Entry{ID: id, Target: target})
	}

	return entries, nil
}
