package composing

import (
	"github.com/jonathan/lookalike/internal/parts"
	"github.com/jonathan/lookalike/internal/types"
)

// PartRef is the mapper's decision for one drawing layer: either a concrete
// part id, or a suppressed marker when the record's sentinel value turns the
// layer off.
type PartRef struct {
	ID         string
	Suppressed bool
}

var suppressed = PartRef{Suppressed: true}

// MapParts resolves the part id every drawing layer should use for one
// record and view mode. Layers that do not exist in the view are absent from
// the result entirely; suppressed layers are present with Suppressed set.
// The mapping is a pure function of its inputs.
func MapParts(r *types.AttributeRecord, view ViewMode) map[parts.Layer]PartRef {
	order := LayerOrder(view)
	m := make(map[parts.Layer]PartRef, len(order))
	for _, layer := range order {
		m[layer] = resolveLayer(r, layer)
	}
	return m
}

// resolveLayer applies the suppression rules per layer. The switch is
// exhaustive over the known layers; adding a layer without a rule here falls
// through to suppression, which the compositor treats as "draw nothing".
func resolveLayer(r *types.AttributeRecord, layer parts.Layer) PartRef {
	switch layer {
	case parts.LayerHead:
		return PartRef{ID: string(r.FaceShape)}
	case parts.LayerHairBehind:
		if r.HairStyle == types.HairStyleBald {
			return suppressed
		}
		return PartRef{ID: string(r.HairStyle) + "_back"}
	case parts.LayerHairFront:
		if r.HairStyle == types.HairStyleBald {
			return suppressed
		}
		return PartRef{ID: string(r.HairStyle) + "_front"}
	case parts.LayerFacialHair:
		if r.FacialHairStyle == types.FacialHairNone {
			return suppressed
		}
		return PartRef{ID: string(r.FacialHairStyle)}
	case parts.LayerGlasses:
		if r.EyewearStyle == types.EyewearNone {
			return suppressed
		}
		return PartRef{ID: string(r.EyewearStyle)}
	case parts.LayerHeadwear:
		if r.HeadwearStyle == types.HeadwearNone {
			return suppressed
		}
		return PartRef{ID: string(r.HeadwearStyle)}
	case parts.LayerEyes:
		return PartRef{ID: string(r.EyeShape)}
	case parts.LayerEyebrows:
		return PartRef{ID: string(r.EyebrowStyle)}
	case parts.LayerNose:
		return PartRef{ID: string(r.NoseShape)}
	case parts.LayerMouth:
		return PartRef{ID: string(r.MouthExpression)}
	case parts.LayerBody:
		return PartRef{ID: string(r.BodyShape)}
	case parts.LayerClothingTop:
		return PartRef{ID: string(r.ClothingTopStyle)}
	case parts.LayerClothingBottom:
		return PartRef{ID: string(r.ClothingBottomStyle)}
	case parts.LayerEars, parts.LayerNeck:
		return PartRef{ID: parts.DefaultPartID}
	}
	return suppressed
}
