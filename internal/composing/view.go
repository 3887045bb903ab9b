// Package composing renders attribute records into layered SVG documents.
package composing

import (
	"slices"

	"github.com/jonathan/lookalike/internal/parts"
)

// ViewMode selects which z-order and layer set a render uses.
type ViewMode string

// View modes.
const (
	ViewHead     ViewMode = "head"
	ViewFullBody ViewMode = "full_body"
)

// Valid reports whether the view mode is known.
func (v ViewMode) Valid() bool {
	return v == ViewHead || v == ViewFullBody
}

// The two z-orders are fixed: layer names never reorder within a list, and
// later entries paint over earlier ones. The head view has no body, neck or
// clothing layers at all.
var headLayerOrder = []parts.Layer{
	parts.LayerHairBehind,
	parts.LayerHead,
	parts.LayerEars,
	parts.LayerEyes,
	parts.LayerEyebrows,
	parts.LayerNose,
	parts.LayerMouth,
	parts.LayerFacialHair,
	parts.LayerHairFront,
	parts.LayerGlasses,
	parts.LayerHeadwear,
}

var fullBodyLayerOrder = []parts.Layer{
	parts.LayerHairBehind,
	parts.LayerBody,
	parts.LayerClothingBottom,
	parts.LayerClothingTop,
	parts.LayerNeck,
	parts.LayerHead,
	parts.LayerEars,
	parts.LayerEyes,
	parts.LayerEyebrows,
	parts.LayerNose,
	parts.LayerMouth,
	parts.LayerFacialHair,
	parts.LayerHairFront,
	parts.LayerGlasses,
	parts.LayerHeadwear,
}

// LayerOrder returns the fixed z-order for a view mode, back to front. The
// returned slice is a copy; callers may not reorder the composition.
func LayerOrder(view ViewMode) []parts.Layer {
	if view == ViewFullBody {
		return slices.Clone(fullBodyLayerOrder)
	}
	return slices.Clone(headLayerOrder)
}
