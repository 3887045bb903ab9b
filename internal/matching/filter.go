package matching

import (
	"github.com/jonathan/lookalike/internal/types"
)

// DefaultThreshold is the minimum score at which a target description is
// considered to match a self-portrait.
const DefaultThreshold = 60

// Entry pairs an identifier with an optional target description. A nil
// target means the author never filled in a description; such entries are
// excluded from match results, never treated as an error.
type Entry struct {
	ID     string                 `json:"id"`
	Target *types.AttributeRecord `json:"target"`
}

// FilterMatches keeps, in input order, the entries whose target scores at
// least threshold against the candidate record.
func (s *Scorer) FilterMatches(candidate *types.AttributeRecord, entries []Entry, threshold int) []Entry {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Target == nil {
			continue
		}
		if s.Score(candidate, e.Target).Score >= threshold {
			kept = append(kept, e)
		}
	}
	return kept
}
