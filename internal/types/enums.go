package types

// SkinTone identifies one of the closed set of skin tone keys.
type SkinTone string

// Skin tone keys.
const (
	SkinPale   SkinTone = "pale"
	SkinFair   SkinTone = "fair"
	SkinLight  SkinTone = "light"
	SkinMedium SkinTone = "medium"
	SkinTan    SkinTone = "tan"
	SkinBrown  SkinTone = "brown"
	SkinDark   SkinTone = "dark"
	SkinDeep   SkinTone = "deep"
)

// HairColor identifies a hair color key. It is shared by the hair color and
// facial hair color fields.
type HairColor string

// Hair color keys.
const (
	HairBlack      HairColor = "black"
	HairDarkBrown  HairColor = "dark_brown"
	HairBrown      HairColor = "brown"
	HairLightBrown HairColor = "light_brown"
	HairBlond      HairColor = "blond"
	HairPlatinum   HairColor = "platinum"
	HairRed        HairColor = "red"
	HairAuburn     HairColor = "auburn"
	HairGray       HairColor = "gray"
	HairWhite      HairColor = "white"
)

// HairStyle identifies a hair style key. HairStyleBald is the sentinel that
// suppresses both hair layers during composition.
type HairStyle string

// Hair style keys.
const (
	HairStyleBald       HairStyle = "bald"
	HairStyleBuzz       HairStyle = "buzz"
	HairStyleShort      HairStyle = "short"
	HairStyleMedium     HairStyle = "medium"
	HairStyleLong       HairStyle = "long"
	HairStyleCurly      HairStyle = "curly"
	HairStyleAfro       HairStyle = "afro"
	HairStylePonytail   HairStyle = "ponytail"
	HairStyleBun        HairStyle = "bun"
	HairStyleDreadlocks HairStyle = "dreadlocks"
)

// FacialHairStyle identifies a facial hair key. FacialHairNone is the
// sentinel that suppresses the facial hair layer.
type FacialHairStyle string

// Facial hair keys.
const (
	FacialHairNone       FacialHairStyle = "none"
	FacialHairStubble    FacialHairStyle = "stubble"
	FacialHairMustache   FacialHairStyle = "mustache"
	FacialHairGoatee     FacialHairStyle = "goatee"
	FacialHairShortBeard FacialHairStyle = "short_beard"
	FacialHairFullBeard  FacialHairStyle = "full_beard"
)

// FaceShape identifies a face shape key.
type FaceShape string

// Face shape keys.
const (
	FaceOval    FaceShape = "oval"
	FaceRound   FaceShape = "round"
	FaceSquare  FaceShape = "square"
	FaceHeart   FaceShape = "heart"
	FaceLong    FaceShape = "long"
	FaceDiamond FaceShape = "diamond"
)

// EyeShape identifies an eye shape key.
type EyeShape string

// Eye shape keys.
const (
	EyeRound      EyeShape = "round"
	EyeAlmond     EyeShape = "almond"
	EyeHooded     EyeShape = "hooded"
	EyeMonolid    EyeShape = "monolid"
	EyeUpturned   EyeShape = "upturned"
	EyeDownturned EyeShape = "downturned"
)

// EyeColor identifies an eye color key.
type EyeColor string

// Eye color keys.
const (
	EyeBrown     EyeColor = "brown"
	EyeDarkBrown EyeColor = "dark_brown"
	EyeHazel     EyeColor = "hazel"
	EyeAmber     EyeColor = "amber"
	EyeGreen     EyeColor = "green"
	EyeBlue      EyeColor = "blue"
	EyeGray      EyeColor = "gray"
)

// EyebrowStyle identifies an eyebrow style key.
type EyebrowStyle string

// Eyebrow style keys.
const (
	EyebrowStraight EyebrowStyle = "straight"
	EyebrowArched   EyebrowStyle = "arched"
	EyebrowThick    EyebrowStyle = "thick"
	EyebrowThin     EyebrowStyle = "thin"
	EyebrowBushy    EyebrowStyle = "bushy"
)

// NoseShape identifies a nose shape key.
type NoseShape string

// Nose shape keys.
const (
	NoseStraight NoseShape = "straight"
	NoseButton   NoseShape = "button"
	NoseRound    NoseShape = "round"
	NoseAquiline NoseShape = "aquiline"
	NoseWide     NoseShape = "wide"
)

// MouthExpression identifies a mouth expression key.
type MouthExpression string

// Mouth expression keys.
const (
	MouthNeutral MouthExpression = "neutral"
	MouthSmile   MouthExpression = "smile"
	MouthGrin    MouthExpression = "grin"
	MouthFrown   MouthExpression = "frown"
	MouthOpen    MouthExpression = "open"
	MouthSmirk   MouthExpression = "smirk"
)

// BodyShape identifies a body shape key.
type BodyShape string

// Body shape keys.
const (
	BodySlim     BodyShape = "slim"
	BodyAverage  BodyShape = "average"
	BodyAthletic BodyShape = "athletic"
	BodyBroad    BodyShape = "broad"
	BodyHeavy    BodyShape = "heavy"
)

// EyewearStyle identifies an eyewear key. EyewearNone is the sentinel that
// suppresses the glasses layer.
type EyewearStyle string

// Eyewear keys.
const (
	EyewearNone           EyewearStyle = "none"
	EyewearGlasses        EyewearStyle = "glasses"
	EyewearRoundGlasses   EyewearStyle = "round_glasses"
	EyewearSunglasses     EyewearStyle = "sunglasses"
	EyewearReadingGlasses EyewearStyle = "reading_glasses"
)

// HeadwearStyle identifies a headwear key. HeadwearNone is the sentinel that
// suppresses the headwear layer.
type HeadwearStyle string

// Headwear keys.
const (
	HeadwearNone      HeadwearStyle = "none"
	HeadwearCap       HeadwearStyle = "cap"
	HeadwearBeanie    HeadwearStyle = "beanie"
	HeadwearHat       HeadwearStyle = "hat"
	HeadwearHeadscarf HeadwearStyle = "headscarf"
	HeadwearTurban    HeadwearStyle = "turban"
)

// ClothingTopStyle identifies a clothing top key.
type ClothingTopStyle string

// Clothing top keys.
const (
	TopTShirt  ClothingTopStyle = "tshirt"
	TopShirt   ClothingTopStyle = "shirt"
	TopBlouse  ClothingTopStyle = "blouse"
	TopHoodie  ClothingTopStyle = "hoodie"
	TopSweater ClothingTopStyle = "sweater"
	TopJacket  ClothingTopStyle = "jacket"
	TopDress   ClothingTopStyle = "dress"
)

// ClothingBottomStyle identifies a clothing bottom key.
type ClothingBottomStyle string

// Clothing bottom keys.
const (
	BottomJeans    ClothingBottomStyle = "jeans"
	BottomTrousers ClothingBottomStyle = "trousers"
	BottomShorts   ClothingBottomStyle = "shorts"
	BottomSkirt    ClothingBottomStyle = "skirt"
	BottomLeggings ClothingBottomStyle = "leggings"
)

// ClothingColor identifies a clothing color key. It is shared by the top and
// bottom color fields.
type ClothingColor string

// Clothing color keys.
const (
	ClothingBlack  ClothingColor = "black"
	ClothingWhite  ClothingColor = "white"
	ClothingGray   ClothingColor = "gray"
	ClothingRed    ClothingColor = "red"
	ClothingOrange ClothingColor = "orange"
	ClothingYellow ClothingColor = "yellow"
	ClothingGreen  ClothingColor = "green"
	ClothingBlue   ClothingColor = "blue"
	ClothingNavy   ClothingColor = "navy"
	ClothingPurple ClothingColor = "purple"
	ClothingPink   ClothingColor = "pink"
	ClothingBrown  ClothingColor = "brown"
)

// HeightCategory identifies a height key.
type HeightCategory string

// Height keys.
const (
	HeightShort   HeightCategory = "short"
	HeightAverage HeightCategory = "average"
	HeightTall    HeightCategory = "tall"
)

var skinTones = map[SkinTone]struct{}{
	SkinPale: {}, SkinFair: {}, SkinLight: {}, SkinMedium: {},
	SkinTan: {}, SkinBrown: {}, SkinDark: {}, SkinDeep: {},
}

var hairColors = map[HairColor]struct{}{
	HairBlack: {}, HairDarkBrown: {}, HairBrown: {}, HairLightBrown: {},
	HairBlond: {}, HairPlatinum: {}, HairRed: {}, HairAuburn: {},
	HairGray: {}, HairWhite: {},
}

var hairStyles = map[HairStyle]struct{}{
	HairStyleBald: {}, HairStyleBuzz: {}, HairStyleShort: {}, HairStyleMedium: {},
	HairStyleLong: {}, HairStyleCurly: {}, HairStyleAfro: {}, HairStylePonytail: {},
	HairStyleBun: {}, HairStyleDreadlocks: {},
}

var facialHairStyles = map[FacialHairStyle]struct{}{
	FacialHairNone: {}, FacialHairStubble: {}, FacialHairMustache: {},
	FacialHairGoatee: {}, FacialHairShortBeard: {}, FacialHairFullBeard: {},
}

var faceShapes = map[FaceShape]struct{}{
	FaceOval: {}, FaceRound: {}, FaceSquare: {}, FaceHeart: {}, FaceLong: {}, FaceDiamond: {},
}

var eyeShapes = map[EyeShape]struct{}{
	EyeRound: {}, EyeAlmond: {}, EyeHooded: {}, EyeMonolid: {}, EyeUpturned: {}, EyeDownturned: {},
}

var eyeColors = map[EyeColor]struct{}{
	EyeBrown: {}, EyeDarkBrown: {}, EyeHazel: {}, EyeAmber: {}, EyeGreen: {}, EyeBlue: {}, EyeGray: {},
}

var eyebrowStyles = map[EyebrowStyle]struct{}{
	EyebrowStraight: {}, EyebrowArched: {}, EyebrowThick: {}, EyebrowThin: {}, EyebrowBushy: {},
}

var noseShapes = map[NoseShape]struct{}{
	NoseStraight: {}, NoseButton: {}, NoseRound: {}, NoseAquiline: {}, NoseWide: {},
}

var mouthExpressions = map[MouthExpression]struct{}{
	MouthNeutral: {}, MouthSmile: {}, MouthGrin: {}, MouthFrown: {}, MouthOpen: {}, MouthSmirk: {},
}

var bodyShapes = map[BodyShape]struct{}{
	BodySlim: {}, BodyAverage: {}, BodyAthletic: {}, BodyBroad: {}, BodyHeavy: {},
}

var eyewearStyles = map[EyewearStyle]struct{}{
	EyewearNone: {}, EyewearGlasses: {}, EyewearRoundGlasses: {},
	EyewearSunglasses: {}, EyewearReadingGlasses: {},
}

var headwearStyles = map[HeadwearStyle]struct{}{
	HeadwearNone: {}, HeadwearCap: {}, HeadwearBeanie: {}, HeadwearHat: {},
	HeadwearHeadscarf: {}, HeadwearTurban: {},
}

var clothingTopStyles = map[ClothingTopStyle]struct{}{
	TopTShirt: {}, TopShirt: {}, TopBlouse: {}, TopHoodie: {},
	TopSweater: {}, TopJacket: {}, TopDress: {},
}

var clothingBottomStyles = map[ClothingBottomStyle]struct{}{
	BottomJeans: {}, BottomTrousers: {}, BottomShorts: {}, BottomSkirt: {}, BottomLeggings: {},
}

var clothingColors = map[ClothingColor]struct{}{
	ClothingBlack: {}, ClothingWhite: {}, ClothingGray: {}, ClothingRed: {},
	ClothingOrange: {}, ClothingYellow: {}, ClothingGreen: {}, ClothingBlue: {},
	ClothingNavy: {}, ClothingPurple: {}, ClothingPink: {}, ClothingBrown: {},
}

var heightCategories = map[HeightCategory]struct{}{
	HeightShort: {}, HeightAverage: {}, HeightTall: {},
}

// Valid reports whether the key is a member of its enumeration.
func (k SkinTone) Valid() bool { _, ok := skinTones[k]; return ok }

// Valid reports whether the key is a member of its enumeration.
func (k HairColor) Valid() bool { _, ok := hairColors[k]; return ok }

// Valid reports whether the key is a member of its enumeration.
func (k HairStyle) Valid() bool { _, ok := hairStyles[k]; return ok }

// Valid reports whether the key is a member of its enumeration.
func (k FacialHairStyle) Valid() bool { _, ok := facialHairStyles[k]; return ok }

// Valid reports whether the key is a member of its enumeration.
func (k FaceShape) Valid() bool { _, ok := faceShapes[k]; return ok }

// Valid reports whether the key is a member of its enumeration.
func (k EyeShape) Valid() bool { _, ok := eyeShapes[k]; return ok }

// Valid reports whether the key is a member of its enumeration.
func (k EyeColor) Valid() bool { _, ok := eyeColors[k]; return ok }

// Valid reports whether the key is a member of its enumeration.
func (k EyebrowStyle) Valid() bool { _, ok := eyebrowStyles[k]; return ok }

// Valid reports whether the key is a member of its enumeration.
func (k NoseShape) Valid() bool { _, ok := noseShapes[k]; return ok }

// Valid reports whether the key is a member of its enumeration.
func (k MouthExpression) Valid() bool { _, ok := mouthExpressions[k]; return ok }

// Valid reports whether the key is a member of its enumeration.
func (k BodyShape) Valid() bool { _, ok := bodyShapes[k]; return ok }

// Valid reports whether the key is a member of its enumeration.
func (k EyewearStyle) Valid() bool { _, ok := eyewearStyles[k]; return ok }

// Valid reports whether the key is a member of its enumeration.
func (k HeadwearStyle) Valid() bool { _, ok := headwearStyles[k]; return ok }

// Valid reports whether the key is a member of its enumeration.
func (k ClothingTopStyle) Valid() bool { _, ok := clothingTopStyles[k]; return ok }

// Valid reports whether the key is a member of its enumeration.
func (k ClothingBottomStyle) Valid() bool { _, ok := clothingBottomStyles[k]; return ok }

// Valid reports whether the key is a member of its enumeration.
func (k ClothingColor) Valid() bool { _, ok := clothingColors[k]; return ok }

// Valid reports whether the key is a member of its enumeration.
func (k HeightCategory) Valid() bool { _, ok := heightCategories[k]; return ok }
