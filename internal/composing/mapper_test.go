package composing

import (
	"testing"

	"github.com/jonathan/lookalike/internal/parts"
	"github.com/jonathan/lookalike/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord() *types.AttributeRecord {
	return &types.AttributeRecord{
		SkinTone:            types.SkinMedium,
		HairColor:           types.HairBrown,
		HairStyle:           types.HairStyleLong,
		FacialHairStyle:     types.FacialHairNone,
		FacialHairColor:     types.HairBrown,
		FaceShape:           types.FaceOval,
		EyeShape:            types.EyeAlmond,
		EyeColor:            types.EyeGreen,
		EyebrowStyle:        types.EyebrowArched,
		NoseShape:           types.NoseStraight,
		MouthExpression:     types.MouthSmile,
		BodyShape:           types.BodyAverage,
		EyewearStyle:        types.EyewearNone,
		HeadwearStyle:       types.HeadwearNone,
		ClothingTopStyle:    types.TopTShirt,
		ClothingTopColor:    types.ClothingBlue,
		ClothingBottomStyle: types.BottomJeans,
		ClothingBottomColor: types.ClothingBlack,
		Height:              types.HeightAverage,
	}
}

func TestMapParts_HeadViewOmitsBodyLayers(t *testing.T) {
	m := MapParts(newRecord(), ViewHead)

	// Absent, not merely suppressed.
	assert.NotContains(t, m, parts.LayerBody)
	assert.NotContains(t, m, parts.LayerNeck)
	assert.NotContains(t, m, parts.LayerClothingTop)
	assert.NotContains(t, m, parts.LayerClothingBottom)
}

func TestMapParts_FullBodyIncludesBodyLayers(t *testing.T) {
	r := newRecord()
	m := MapParts(r, ViewFullBody)

	require.Contains(t, m, parts.LayerBody)
	assert.Equal(t, PartRef{ID: "average"}, m[parts.LayerBody])
	assert.Equal(t, PartRef{ID: "tshirt"}, m[parts.LayerClothingTop])
	assert.Equal(t, PartRef{ID: "jeans"}, m[parts.LayerClothingBottom])
	assert.Equal(t, PartRef{ID: parts.DefaultPartID}, m[parts.LayerNeck])
}

func TestMapParts_ResolvesAttributeDrivenIDs(t *testing.T) {
	r := newRecord()
	m := MapParts(r, ViewHead)

	assert.Equal(t, PartRef{ID: "oval"}, m[parts.LayerHead])
	assert.Equal(t, PartRef{ID: "long_back"}, m[parts.LayerHairBehind])
	assert.Equal(t, PartRef{ID: "long_front"}, m[parts.LayerHairFront])
	assert.Equal(t, PartRef{ID: "almond"}, m[parts.LayerEyes])
	assert.Equal(t, PartRef{ID: "arched"}, m[parts.LayerEyebrows])
	assert.Equal(t, PartRef{ID: "straight"}, m[parts.LayerNose])
	assert.Equal(t, PartRef{ID: "smile"}, m[parts.LayerMouth])
	assert.Equal(t, PartRef{ID: parts.DefaultPartID}, m[parts.LayerEars])
}

func TestMapParts_BaldSuppressesBothHairLayers(t *testing.T) {
	r := newRecord()
	r.HairStyle = types.HairStyleBald
	m := MapParts(r, ViewHead)

	assert.True(t, m[parts.LayerHairBehind].Suppressed)
	assert.True(t, m[parts.LayerHairFront].Suppressed)
}

func TestMapParts_NoneSentinelsSuppress(t *testing.T) {
	r := newRecord()
	r.FacialHairStyle = types.FacialHairNone
	r.EyewearStyle = types.EyewearNone
	r.HeadwearStyle = types.HeadwearNone
	m := MapParts(r, ViewHead)

	assert.True(t, m[parts.LayerFacialHair].Suppressed)
	assert.True(t, m[parts.LayerGlasses].Suppressed)
	assert.True(t, m[parts.LayerHeadwear].Suppressed)
}

func TestMapParts_NonSentinelValuesResolve(t *testing.T) {
	r := newRecord()
	r.FacialHairStyle = types.FacialHairFullBeard
	r.EyewearStyle = types.EyewearSunglasses
	r.HeadwearStyle = types.HeadwearCap
	m := MapParts(r, ViewHead)

	assert.Equal(t, PartRef{ID: "full_beard"}, m[parts.LayerFacialHair])
	assert.Equal(t, PartRef{ID: "sunglasses"}, m[parts.LayerGlasses])
	assert.Equal(t, PartRef{ID: "cap"}, m[parts.LayerHeadwear])
}

func TestMapParts_Deterministic(t *testing.T) {
	r := newRecord()
	assert.Equal(t, MapParts(r, ViewFullBody), MapParts(r, ViewFullBody))
}

func TestLayerOrder_ReturnsCopies(t *testing.T) {
	first := LayerOrder(ViewHead)
	first[0] = parts.LayerHeadwear

	second := LayerOrder(ViewHead)
	assert.Equal(t, parts.LayerHairBehind, second[0])
}
