// Package types provides type definitions for the structured data used throughout the lookalike system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AttributeRecord is the enumerated description of one person's appearance.
// It is the unit of both avatar composition and similarity matching.
//
// Fields are partitioned into three groups: the six primary identity fields
// and eight secondary identity fields participate in similarity scoring with
// different weights; the five cosmetic fields render but are never scored.
// Every field must hold a key from its enumeration; records coming from
// untrusted input should be checked with Validate before use.
type AttributeRecord struct {
	// Primary identity fields.
	SkinTone        SkinTone        `json:"skin_tone" validate:"required,enumkey"`
	HairColor       HairColor       `json:"hair_color" validate:"required,enumkey"`
	HairStyle       HairStyle       `json:"hair_style" validate:"required,enumkey"`
	FacialHairStyle FacialHairStyle `json:"facial_hair_style" validate:"required,enumkey"`
	FacialHairColor HairColor       `json:"facial_hair_color" validate:"required,enumkey"`
	FaceShape       FaceShape       `json:"face_shape" validate:"required,enumkey"`

	// Secondary identity fields.
	EyeShape        EyeShape        `json:"eye_shape" validate:"required,enumkey"`
	EyeColor        EyeColor        `json:"eye_color" validate:"required,enumkey"`
	EyebrowStyle    EyebrowStyle    `json:"eyebrow_style" validate:"required,enumkey"`
	NoseShape       NoseShape       `json:"nose_shape" validate:"required,enumkey"`
	MouthExpression MouthExpression `json:"mouth_expression" validate:"required,enumkey"`
	BodyShape       BodyShape       `json:"body_shape" validate:"required,enumkey"`
	EyewearStyle    EyewearStyle    `json:"eyewear_style" validate:"required,enumkey"`
	HeadwearStyle   HeadwearStyle   `json:"headwear_style" validate:"required,enumkey"`

	// Cosmetic fields: rendered but never scored.
	ClothingTopStyle    ClothingTopStyle    `json:"clothing_top_style" validate:"required,enumkey"`
	ClothingTopColor    ClothingColor       `json:"clothing_top_color" validate:"required,enumkey"`
	ClothingBottomStyle ClothingBottomStyle `json:"clothing_bottom_style" validate:"required,enumkey"`
	ClothingBottomColor ClothingColor       `json:"clothing_bottom_color" validate:"required,enumkey"`
	Height              HeightCategory      `json:"height" validate:"required,enumkey"`
}
