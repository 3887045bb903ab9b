package colorizer

import (
	"github.com/jonathan/lookalike/internal/types"
)

// Palette is a flat mapping from color token name to hex value, covering
// every placeholder the asset library uses. One palette is built per render
// call and never shared between renders of different records.
type Palette map[string]string

// Token categories for the derived shading sets. Tokens are namespaced as
// "<category>.<level>", e.g. "skin.shadow2" or "clothing_top.base".
const (
	CategorySkin           = "skin"
	CategoryHair           = "hair"
	CategoryFacialHair     = "facial_hair"
	CategoryEye            = "eye"
	CategoryClothingTop    = "clothing_top"
	CategoryClothingBottom = "clothing_bottom"
)

// Fixed tokens that do not derive from the record.
var fixedTokens = map[string]string{
	"eye_white":     "#f4f2ef",
	"pupil":         "#1b1b22",
	"teeth":         "#fdfdfb",
	"tongue":        "#d97583",
	"lip":           "#a85a52",
	"lip_highlight": "#c77b72",
}

// BuildPalette derives the full token table for one attribute record: eight
// shades per colorizable category, namespaced by category, merged with the
// fixed non-derived tokens.
func BuildPalette(r *types.AttributeRecord) Palette {
	p := make(Palette, 6*8+len(fixedTokens))
	p.addShades(CategorySkin, SkinBase(r.SkinTone))
	p.addShades(CategoryHair, HairBase(r.HairColor))
	p.addShades(CategoryFacialHair, HairBase(r.FacialHairColor))
	p.addShades(CategoryEye, EyeBase(r.EyeColor))
	p.addShades(CategoryClothingTop, ClothingBase(r.ClothingTopColor))
	p.addShades(CategoryClothingBottom, ClothingBase(r.ClothingBottomColor))
	for name, value := range fixedTokens {
		p[name] = value
	}
	return p
}

func (p Palette) addShades(category, base string) {
	sh := Derive(base)
	p[category+".base"] = sh.Base
	p[category+".shadow1"] = sh.Shadow1
	p[category+".shadow2"] = sh.Shadow2
	p[category+".shadow3"] = sh.Shadow3
	p[category+".highlight1"] = sh.Highlight1
	p[category+".highlight2"] = sh.Highlight2
	p[category+".blush"] = sh.Blush
	p[category+".ambient_occlusion"] = sh.AmbientOcclusion
}
