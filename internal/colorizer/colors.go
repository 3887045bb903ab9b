package colorizer

import (
	"github.com/jonathan/lookalike/internal/types"
)

// Canonical base colors for every color-bearing enumeration key. The tables
// are package-level and read-only after process startup; lookups are total
// over the closed enumerations.

var skinBaseColors = map[types.SkinTone]string{
	types.SkinPale:   "#f6e3d3",
	types.SkinFair:   "#f0d0b5",
	types.SkinLight:  "#e4b98e",
	types.SkinMedium: "#cf9a6d",
	types.SkinTan:    "#b8835a",
	types.SkinBrown:  "#95644a",
	types.SkinDark:   "#70452f",
	types.SkinDeep:   "#4f2f1f",
}

var hairBaseColors = map[types.HairColor]string{
	types.HairBlack:      "#2c222b",
	types.HairDarkBrown:  "#3f2a1d",
	types.HairBrown:      "#5c3b28",
	types.HairLightBrown: "#8a5f3e",
	types.HairBlond:      "#d6a850",
	types.HairPlatinum:   "#e8dcc2",
	types.HairRed:        "#a4492c",
	types.HairAuburn:     "#7c3324",
	types.HairGray:       "#9a9a9a",
	types.HairWhite:      "#e6e6e6",
}

var eyeBaseColors = map[types.EyeColor]string{
	types.EyeBrown:     "#6b4226",
	types.EyeDarkBrown: "#4a2c18",
	types.EyeHazel:     "#8a6a3b",
	types.EyeAmber:     "#b07c2a",
	types.EyeGreen:     "#4f7942",
	types.EyeBlue:      "#4a74a8",
	types.EyeGray:      "#7d8a94",
}

var clothingBaseColors = map[types.ClothingColor]string{
	types.ClothingBlack:  "#262626",
	types.ClothingWhite:  "#f2f2f2",
	types.ClothingGray:   "#8c8c8c",
	types.ClothingRed:    "#b03a36",
	types.ClothingOrange: "#d07b32",
	types.ClothingYellow: "#d8b92e",
	types.ClothingGreen:  "#4a7a40",
	types.ClothingBlue:   "#3f6fa8",
	types.ClothingNavy:   "#2b3a5c",
	types.ClothingPurple: "#6c4a86",
	types.ClothingPink:   "#d488a6",
	types.ClothingBrown:  "#6e4a32",
}

// SkinBase returns the canonical base color for a skin tone key.
func SkinBase(k types.SkinTone) string { return skinBaseColors[k] }

// HairBase returns the canonical base color for a hair color key.
func HairBase(k types.HairColor) string { return hairBaseColors[k] }

// EyeBase returns the canonical base color for an eye color key.
func EyeBase(k types.EyeColor) string { return eyeBaseColors[k] }

// ClothingBase returns the canonical base color for a clothing color key.
func ClothingBase(k types.ClothingColor) string { return clothingBaseColors[k] }
