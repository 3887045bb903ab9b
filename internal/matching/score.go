package matching

import (
	"math"

	"github.com/jonathan/lookalike/internal/types"
)

// The six primary identity fields split 60 points between them and the eight
// secondary fields split 40. Cosmetic fields (clothing, height) describe
// what someone is wearing, not who they are, and are never read.
const (
	primaryFieldCount   = 6
	secondaryFieldCount = 8
	primaryGroupWeight  = 60.0
	secondaryGroupWeight = 40.0
)

// Similarity is the scored comparison of two attribute records.
type Similarity struct {
	Score   int  `json:"score"`
	Quality Band `json:"quality"`
}

// Scorer compares attribute records under one banding policy. Scoring is a
// pure function of the two records; a scorer holds no other state and is
// safe for concurrent use.
type Scorer struct {
	banding Banding
}

// NewScorer returns a scorer using the given quality banding.
func NewScorer(banding Banding) *Scorer {
	return &Scorer{banding: banding}
}

// Score compares two records field by field under strict equality. The
// result is reflexive (Score(a,a) = 100), symmetric, and bounded to [0,100];
// a single primary field difference moves the score by exactly 10 points, a
// single secondary difference by exactly 5.
func (s *Scorer) Score(a, b *types.AttributeRecord) Similarity {
	primary := 0
	if a.SkinTone == b.SkinTone {
		primary++
	}
	if a.HairColor == b.HairColor {
		primary++
	}
	if a.HairStyle == b.HairStyle {
		primary++
	}
	if a.FacialHairStyle == b.FacialHairStyle {
		primary++
	}
	if a.FacialHairColor == b.FacialHairColor {
		primary++
	}
	if a.FaceShape == b.FaceShape {
		primary++
	}

	secondary := 0
	if a.EyeShape == b.EyeShape {
		secondary++
	}
	if a.EyeColor == b.EyeColor {
		secondary++
	}
	if a.EyebrowStyle == b.EyebrowStyle {
		secondary++
	}
	if a.NoseShape == b.NoseShape {
		secondary++
	}
	if a.MouthExpression == b.MouthExpression {
		secondary++
	}
	if a.BodyShape == b.BodyShape {
		secondary++
	}
	if a.EyewearStyle == b.EyewearStyle {
		secondary++
	}
	if a.HeadwearStyle == b.HeadwearStyle {
		secondary++
	}

	raw := float64(primary)*primaryGroupWeight/primaryFieldCount +
		float64(secondary)*secondaryGroupWeight/secondaryFieldCount
	score := int(math.Round(raw))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Similarity{Score: score, Quality: s.banding.Classify(score)}
}

// QuickMatch reports whether the two records score at or above threshold.
func (s *Scorer) QuickMatch(a, b *types.AttributeRecord, threshold int) bool {
	return s.Score(a, b).Score >= threshold
}
