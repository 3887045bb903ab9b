// Package colorizer derives shading palettes from canonical base colors.
package colorizer

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Relative lightness/saturation deltas per shading level. Darkening scales
// lightness toward 0 and lightening scales the remaining headroom toward 1,
// so the ordering shadow3 < shadow2 < shadow1 < base < highlight1 <
// highlight2 holds for any base color without sign inversion.
const (
	shadow1Delta   = 0.08
	shadow2Delta   = 0.18
	shadow3Delta   = 0.30
	highlight1Boost = 0.12
	highlight2Boost = 0.25

	blushLightnessBoost  = 0.06
	blushSaturationBoost = 0.10
	blushHueShift        = 6.0 // degrees toward red

	occlusionLightnessDelta = 0.40
	occlusionSaturationScale = 0.6
)

// Shades holds the eight derived colors for one base color.
type Shades struct {
	Base             string
	Shadow1          string
	Shadow2          string
	Shadow3          string
	Highlight1       string
	Highlight2       string
	Blush            string
	AmbientOcclusion string
}

// Derive computes the full shading set for one base hex color. The result is
// a pure function of the base; identical inputs always yield identical
// shades.
func Derive(base string) Shades {
	return Shades{
		Base:             base,
		Shadow1:          Darken(base, shadow1Delta),
		Shadow2:          Darken(base, shadow2Delta),
		Shadow3:          Darken(base, shadow3Delta),
		Highlight1:       Lighten(base, highlight1Boost),
		Highlight2:       Lighten(base, highlight2Boost),
		Blush:            blush(base),
		AmbientOcclusion: occlude(base),
	}
}

// Darken scales lightness toward 0 by amount in [0,1]. A zero amount returns
// the base string unchanged.
func Darken(hex string, amount float64) string {
	if amount == 0 {
		return hex
	}
	c, ok := parse(hex)
	if !ok {
		return hex
	}
	h, s, l := c.Hsl()
	return format(h, s, l*(1-amount))
}

// Lighten scales lightness toward 1 by amount in [0,1]. A zero amount
// returns the base string unchanged.
func Lighten(hex string, amount float64) string {
	if amount == 0 {
		return hex
	}
	c, ok := parse(hex)
	if !ok {
		return hex
	}
	h, s, l := c.Hsl()
	return format(h, s, l+(1-l)*amount)
}

// blush is a warm-tinted light variant: a small lightness boost, a
// saturation boost, and the hue nudged toward red.
func blush(hex string) string {
	c, ok := parse(hex)
	if !ok {
		return hex
	}
	h, s, l := c.Hsl()
	h -= blushHueShift
	if h < 0 {
		h += 360
	}
	return format(h, s+blushSaturationBoost, l+(1-l)*blushLightnessBoost)
}

// occlude is the darkest, desaturated variant used for contact shadows.
func occlude(hex string) string {
	c, ok := parse(hex)
	if !ok {
		return hex
	}
	h, s, l := c.Hsl()
	return format(h, s*occlusionSaturationScale, l*(1-occlusionLightnessDelta))
}

func parse(hex string) (colorful.Color, bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// format clamps saturation and lightness into [0,1] and renders the color
// back to a lowercase #rrggbb string. Clamping never wraps or inverts sign.
func format(h, s, l float64) string {
	return colorful.Hsl(h, clamp01(s), clamp01(l)).Clamped().Hex()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
