// Package matching scores how closely two attribute records resemble each other.
package matching

// Band is the qualitative tier for a similarity score.
type Band string

// Quality bands, best to worst.
const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandFair      Band = "fair"
	BandPoor      Band = "poor"
)

// Banding holds the inclusive lower cut points for the tiers above poor.
// Identical records always score 100 and land in the top band; the cut
// points between tiers are policy and may be tuned by callers.
type Banding struct {
	Excellent int
	Good      int
	Fair      int
}

// DefaultBanding returns the default cut points: 90 / 75 / 60.
func DefaultBanding() Banding {
	return Banding{Excellent: 90, Good: 75, Fair: 60}
}

// Classify maps a score to its quality band.
func (b Banding) Classify(score int) Band {
	switch {
	case score >= b.Excellent:
		return BandExcellent
	case score >= b.Good:
		return BandGood
	case score >= b.Fair:
		return BandFair
	default:
		return BandPoor
	}
}
