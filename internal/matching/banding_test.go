package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBanding_DefaultCutPoints(t *testing.T) {
	b := DefaultBanding()

	tests := []struct {
		score int
		want  Band
	}{
		{100, BandExcellent},
		{90, BandExcellent},
		{89, BandGood},
		{75, BandGood},
		{74, BandFair},
		{60, BandFair},
		{59, BandPoor},
		{0, BandPoor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Classify(tt.score), "score %d", tt.score)
	}
}

func TestBanding_CustomCutPoints(t *testing.T) {
	b := Banding{Excellent: 95, Good: 80, Fair: 50}

	assert.Equal(t, BandGood, b.Classify(90))
	assert.Equal(t, BandFair, b.Classify(55))
	assert.Equal(t, BandPoor, b.Classify(49))
}
