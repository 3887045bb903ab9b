// Package parts stores the drawable part templates used by the avatar compositor.
package parts

// Layer names one drawing layer of the avatar. The compositor owns the
// z-order; this package only keys parts by layer name.
type Layer string

// Drawing layers.
const (
	LayerHairBehind     Layer = "hair_behind"
	LayerBody           Layer = "body"
	LayerClothingBottom Layer = "clothing_bottom"
	LayerClothingTop    Layer = "clothing_top"
	LayerNeck           Layer = "neck"
	LayerHead           Layer = "head"
	LayerEars           Layer = "ears"
	LayerEyes           Layer = "eyes"
	LayerEyebrows       Layer = "eyebrows"
	LayerNose           Layer = "nose"
	LayerMouth          Layer = "mouth"
	LayerFacialHair     Layer = "facial_hair"
	LayerHairFront      Layer = "hair_front"
	LayerGlasses        Layer = "glasses"
	LayerHeadwear       Layer = "headwear"
)
