package colorizer

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lightness parses a hex color and returns its HSL lightness.
func lightness(t *testing.T, hex string) float64 {
	t.Helper()
	c, err := colorful.Hex(hex)
	require.NoError(t, err, "derived color should be valid hex: %s", hex)
	_, _, l := c.Hsl()
	return l
}

func saturation(t *testing.T, hex string) float64 {
	t.Helper()
	c, err := colorful.Hex(hex)
	require.NoError(t, err)
	_, s, _ := c.Hsl()
	return s
}

// allBaseColors collects every canonical base color from the registries.
func allBaseColors() []string {
	var bases []string
	for _, c := range skinBaseColors {
		bases = append(bases, c)
	}
	for _, c := range hairBaseColors {
		bases = append(bases, c)
	}
	for _, c := range eyeBaseColors {
		bases = append(bases, c)
	}
	for _, c := range clothingBaseColors {
		bases = append(bases, c)
	}
	return bases
}

func TestDerive_LightnessOrdering(t *testing.T) {
	for _, base := range allBaseColors() {
		sh := Derive(base)

		l3 := lightness(t, sh.Shadow3)
		l2 := lightness(t, sh.Shadow2)
		l1 := lightness(t, sh.Shadow1)
		lb := lightness(t, sh.Base)
		h1 := lightness(t, sh.Highlight1)
		h2 := lightness(t, sh.Highlight2)

		assert.Less(t, l3, l2, "shadow3 < shadow2 for %s", base)
		assert.Less(t, l2, l1, "shadow2 < shadow1 for %s", base)
		assert.Less(t, l1, lb, "shadow1 < base for %s", base)
		assert.Less(t, lb, h1, "base < highlight1 for %s", base)
		assert.Less(t, h1, h2, "highlight1 < highlight2 for %s", base)
	}
}

func TestDerive_Deterministic(t *testing.T) {
	assert.Equal(t, Derive("#cf9a6d"), Derive("#cf9a6d"))
}

func TestDarken_ZeroAmountIsIdentity(t *testing.T) {
	assert.Equal(t, "#cf9a6d", Darken("#cf9a6d", 0))
	assert.Equal(t, "#cf9a6d", Lighten("#cf9a6d", 0))
}

func TestLighten_ClampsAtWhite(t *testing.T) {
	assert.Equal(t, "#ffffff", Lighten("#ffffff", 0.25))
}

func TestDarken_ClampsAtBlack(t *testing.T) {
	assert.Equal(t, "#000000", Darken("#000000", 0.30))
}

func TestDerive_BlushIsWarmLightVariant(t *testing.T) {
	base := "#cf9a6d"
	sh := Derive(base)

	assert.GreaterOrEqual(t, lightness(t, sh.Blush), lightness(t, base))
	assert.Greater(t, saturation(t, sh.Blush), saturation(t, base))
}

func TestDerive_AmbientOcclusionIsDarkestAndDesaturated(t *testing.T) {
	base := "#cf9a6d"
	sh := Derive(base)

	assert.Less(t, lightness(t, sh.AmbientOcclusion), lightness(t, sh.Shadow3))
	assert.Less(t, saturation(t, sh.AmbientOcclusion), saturation(t, base))
}

func TestDarken_InvalidInputPassesThrough(t *testing.T) {
	assert.Equal(t, "not-a-color", Darken("not-a-color", 0.18))
	assert.Equal(t, "not-a-color", Lighten("not-a-color", 0.12))
}
