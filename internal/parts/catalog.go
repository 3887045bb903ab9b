package parts

import (
	"github.com/jonathan/lookalike/internal/types"
)

// DefaultPartID is the id used by layers that are not attribute-driven
// (ears, neck).
const DefaultPartID = "default"

// Part templates are authored against a 231x231 head viewport; full-body
// parts extend the same horizontal space down to y=462. The outer <svg>
// wrapper is stripped by the compositor, only the inner markup is composed.
const (
	headWrapperOpen = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 231 231">`
	bodyWrapperOpen = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 231 462">`
	wrapperClose    = `</svg>`
)

func headPart(inner string) string { return headWrapperOpen + inner + wrapperClose }
func bodyPart(inner string) string { return bodyWrapperOpen + inner + wrapperClose }

var faceShapeParts = map[types.FaceShape]string{
	types.FaceOval:    `<ellipse cx="115" cy="116" rx="54" ry="66" fill="{{skin.base}}"/><path d="M70 150Q115 180 160 150Q143 168 115 170Q87 168 70 150" fill="{{skin.shadow1}}"/><ellipse cx="88" cy="140" rx="9" ry="5" fill="{{skin.blush}}"/><ellipse cx="142" cy="140" rx="9" ry="5" fill="{{skin.blush}}"/>`,
	types.FaceRound:   `<circle cx="115" cy="118" r="60" fill="{{skin.base}}"/><path d="M68 152Q115 184 162 152Q142 172 115 174Q88 172 68 152" fill="{{skin.shadow1}}"/><ellipse cx="86" cy="142" rx="10" ry="6" fill="{{skin.blush}}"/><ellipse cx="144" cy="142" rx="10" ry="6" fill="{{skin.blush}}"/>`,
	types.FaceSquare:  `<rect x="62" y="56" width="106" height="122" rx="26" fill="{{skin.base}}"/><path d="M70 154Q115 180 160 154L160 162Q115 184 70 162Z" fill="{{skin.shadow1}}"/><ellipse cx="88" cy="140" rx="9" ry="5" fill="{{skin.blush}}"/><ellipse cx="142" cy="140" rx="9" ry="5" fill="{{skin.blush}}"/>`,
	types.FaceHeart:   `<path d="M115 182Q64 148 60 104Q60 54 115 52Q170 54 170 104Q166 148 115 182" fill="{{skin.base}}"/><path d="M96 162Q115 176 134 162Q126 172 115 174Q104 172 96 162" fill="{{skin.shadow1}}"/><ellipse cx="90" cy="134" rx="9" ry="5" fill="{{skin.blush}}"/><ellipse cx="140" cy="134" rx="9" ry="5" fill="{{skin.blush}}"/>`,
	types.FaceLong:    `<ellipse cx="115" cy="118" rx="48" ry="74" fill="{{skin.base}}"/><path d="M76 160Q115 188 154 160Q140 176 115 178Q90 176 76 160" fill="{{skin.shadow1}}"/><ellipse cx="90" cy="146" rx="8" ry="5" fill="{{skin.blush}}"/><ellipse cx="140" cy="146" rx="8" ry="5" fill="{{skin.blush}}"/>`,
	types.FaceDiamond: `<path d="M115 48Q164 84 168 118Q160 160 115 186Q70 160 62 118Q66 84 115 48" fill="{{skin.base}}"/><path d="M92 158Q115 176 138 158Q128 170 115 172Q102 170 92 158" fill="{{skin.shadow1}}"/><ellipse cx="92" cy="136" rx="8" ry="5" fill="{{skin.blush}}"/><ellipse cx="138" cy="136" rx="8" ry="5" fill="{{skin.blush}}"/>`,
}

// Every non-bald style has a back layer; short styles only contribute a thin
// silhouette behind the ears.
var hairBackParts = map[types.HairStyle]string{
	types.HairStyleBuzz:       `<path d="M66 100Q64 56 115 52Q166 56 164 100L164 116L66 116Z" fill="{{hair.shadow1}}" opacity="0.6"/>`,
	types.HairStyleShort:      `<path d="M64 100Q62 52 115 48Q168 52 166 100L166 124L64 124Z" fill="{{hair.base}}"/>`,
	types.HairStyleMedium:     `<path d="M62 100Q60 48 115 44Q170 48 168 100L168 148Q160 158 152 148L152 112L78 112L78 148Q70 158 62 148Z" fill="{{hair.base}}"/>`,
	types.HairStyleLong:       `<path d="M60 96Q58 44 115 42Q172 44 170 96L172 196Q150 210 140 196L140 120L90 120L90 196Q80 210 58 196Z" fill="{{hair.base}}"/><path d="M62 180Q70 196 86 196L86 204Q66 204 62 180" fill="{{hair.shadow2}}"/>`,
	types.HairStyleCurly:      `<circle cx="74" cy="96" r="26" fill="{{hair.base}}"/><circle cx="156" cy="96" r="26" fill="{{hair.base}}"/><circle cx="115" cy="66" r="34" fill="{{hair.base}}"/><circle cx="86" cy="70" r="22" fill="{{hair.shadow1}}"/><circle cx="144" cy="70" r="22" fill="{{hair.shadow1}}"/>`,
	types.HairStyleAfro:       `<circle cx="115" cy="92" r="74" fill="{{hair.base}}"/><circle cx="88" cy="72" r="22" fill="{{hair.highlight1}}"/><circle cx="148" cy="108" r="18" fill="{{hair.shadow1}}"/>`,
	types.HairStylePonytail:   `<path d="M150 96Q176 100 176 140Q176 186 160 204Q150 206 148 196Q162 168 158 132Q152 108 142 102Z" fill="{{hair.base}}"/><path d="M156 130Q162 164 152 192L148 188Q156 160 150 132Z" fill="{{hair.shadow1}}"/>`,
	types.HairStyleBun:        `<circle cx="115" cy="44" r="24" fill="{{hair.base}}"/><circle cx="108" cy="38" r="9" fill="{{hair.highlight1}}"/><path d="M94 52Q115 42 136 52L136 58Q115 50 94 58Z" fill="{{hair.shadow2}}"/>`,
	types.HairStyleDreadlocks: `<path d="M62 90Q60 50 115 46Q170 50 168 90L170 180Q164 192 158 180L156 110L74 110L72 180Q66 192 60 180Z" fill="{{hair.base}}"/><path d="M84 112L82 172Q78 182 74 172L76 112Z" fill="{{hair.shadow1}}"/><path d="M150 112L152 172Q148 182 144 172L146 112Z" fill="{{hair.shadow1}}"/>`,
}

var hairFrontParts = map[types.HairStyle]string{
	types.HairStyleBuzz:       `<path d="M63 98Q62 54 115 50Q168 54 167 98Q166 86 115 80Q64 86 63 98" fill="{{hair.base}}" opacity="0.85"/><path d="M70 80Q90 64 115 62L115 70Q92 70 70 80" fill="{{hair.shadow1}}"/>`,
	types.HairStyleShort:      `<path d="M61 100Q58 48 115 46Q172 48 169 100Q166 80 140 76Q150 64 128 62Q96 58 82 74Q66 80 61 100" fill="{{hair.base}}"/><path d="M82 74Q96 60 122 62L120 68Q98 66 82 74" fill="{{hair.highlight1}}"/>`,
	types.HairStyleMedium:     `<path d="M58 108Q56 44 115 42Q174 44 172 108Q168 88 152 84Q160 68 130 64Q94 58 78 78Q62 84 58 108" fill="{{hair.base}}"/><path d="M58 108Q60 128 66 134L62 110Z" fill="{{hair.base}}"/><path d="M172 108Q170 128 164 134L168 110Z" fill="{{hair.base}}"/><path d="M80 76Q100 60 128 64L126 70Q100 66 80 76" fill="{{hair.highlight1}}"/>`,
	types.HairStyleLong:       `<path d="M60 104Q58 42 115 40Q172 42 170 104Q164 82 144 80Q154 64 124 62Q92 58 80 76Q64 82 60 104" fill="{{hair.base}}"/><path d="M80 76Q98 60 124 62L122 68Q98 64 80 76" fill="{{hair.highlight1}}"/>`,
	types.HairStyleCurly:      `<circle cx="80" cy="72" r="20" fill="{{hair.base}}"/><circle cx="115" cy="58" r="24" fill="{{hair.base}}"/><circle cx="150" cy="72" r="20" fill="{{hair.base}}"/><circle cx="96" cy="60" r="12" fill="{{hair.highlight1}}"/><circle cx="136" cy="62" r="12" fill="{{hair.shadow1}}"/>`,
	types.HairStyleAfro:       `<path d="M62 96Q58 40 115 38Q172 40 168 96Q160 70 115 66Q70 70 62 96" fill="{{hair.base}}"/><circle cx="94" cy="58" r="10" fill="{{hair.highlight1}}"/>`,
	types.HairStylePonytail:   `<path d="M62 100Q58 48 115 46Q172 48 168 100Q162 78 138 76Q148 64 122 62Q90 60 80 78Q66 84 62 100" fill="{{hair.base}}"/><path d="M80 78Q96 62 122 62L120 68Q96 66 80 78" fill="{{hair.highlight1}}"/>`,
	types.HairStyleBun:        `<path d="M62 98Q60 50 115 48Q170 50 168 98Q160 76 136 76Q146 64 120 62Q90 60 80 78Q66 82 62 98" fill="{{hair.base}}"/><path d="M82 76Q98 62 120 62L118 68Q96 66 82 76" fill="{{hair.highlight1}}"/>`,
	types.HairStyleDreadlocks: `<path d="M62 100Q60 48 115 46Q170 48 168 100Q162 80 142 78Q150 66 122 64Q92 62 82 80Q66 84 62 100" fill="{{hair.base}}"/><path d="M96 66L92 84Q88 90 86 84L90 66Z" fill="{{hair.shadow1}}"/><path d="M136 66L140 84Q144 90 146 84L142 66Z" fill="{{hair.shadow1}}"/>`,
}

var facialHairParts = map[types.FacialHairStyle]string{
	types.FacialHairStubble:    `<path d="M78 140Q80 168 115 172Q150 168 152 140Q150 162 115 166Q80 162 78 140" fill="{{facial_hair.base}}" opacity="0.45"/>`,
	types.FacialHairMustache:   `<path d="M94 146Q115 138 136 146Q128 154 115 152Q102 154 94 146" fill="{{facial_hair.base}}"/><path d="M100 146Q115 141 130 146" stroke="{{facial_hair.highlight1}}" stroke-width="1.5" fill="none"/>`,
	types.FacialHairGoatee:     `<path d="M102 158Q115 154 128 158Q128 178 115 180Q102 178 102 158" fill="{{facial_hair.base}}"/><path d="M108 172Q115 176 122 172L122 176Q115 180 108 176Z" fill="{{facial_hair.shadow1}}"/>`,
	types.FacialHairShortBeard: `<path d="M74 132Q78 172 115 176Q152 172 156 132Q152 150 140 156Q130 146 115 148Q100 146 90 156Q78 150 74 132" fill="{{facial_hair.base}}"/><path d="M94 146Q115 138 136 146Q126 152 115 150Q104 152 94 146" fill="{{facial_hair.shadow1}}"/>`,
	types.FacialHairFullBeard:  `<path d="M70 120Q72 184 115 190Q158 184 160 120Q156 142 142 150Q132 140 115 142Q98 140 88 150Q74 142 70 120" fill="{{facial_hair.base}}"/><path d="M94 148Q115 140 136 148Q126 154 115 152Q104 154 94 148" fill="{{facial_hair.shadow1}}"/><path d="M86 158Q100 170 115 170L115 176Q96 176 86 158" fill="{{facial_hair.shadow2}}"/>`,
}

var eyeParts = map[types.EyeShape]string{
	types.EyeRound:      `<circle cx="92" cy="108" r="10" fill="{{eye_white}}"/><circle cx="138" cy="108" r="10" fill="{{eye_white}}"/><circle cx="92" cy="108" r="5.5" fill="{{eye.base}}"/><circle cx="138" cy="108" r="5.5" fill="{{eye.base}}"/><circle cx="92" cy="108" r="2.5" fill="{{pupil}}"/><circle cx="138" cy="108" r="2.5" fill="{{pupil}}"/>`,
	types.EyeAlmond:     `<path d="M80 108Q92 98 104 108Q92 116 80 108" fill="{{eye_white}}"/><path d="M126 108Q138 98 150 108Q138 116 126 108" fill="{{eye_white}}"/><circle cx="92" cy="107" r="5" fill="{{eye.base}}"/><circle cx="138" cy="107" r="5" fill="{{eye.base}}"/><circle cx="92" cy="107" r="2.2" fill="{{pupil}}"/><circle cx="138" cy="107" r="2.2" fill="{{pupil}}"/>`,
	types.EyeHooded:     `<path d="M80 106Q92 98 104 106Q92 114 80 106" fill="{{eye_white}}"/><path d="M126 106Q138 98 150 106Q138 114 126 106" fill="{{eye_white}}"/><path d="M80 104Q92 96 104 104L104 100Q92 92 80 100Z" fill="{{skin.shadow1}}"/><path d="M126 104Q138 96 150 104L150 100Q138 92 126 100Z" fill="{{skin.shadow1}}"/><circle cx="92" cy="106" r="4.8" fill="{{eye.base}}"/><circle cx="138" cy="106" r="4.8" fill="{{eye.base}}"/><circle cx="92" cy="106" r="2.2" fill="{{pupil}}"/><circle cx="138" cy="106" r="2.2" fill="{{pupil}}"/>`,
	types.EyeMonolid:    `<path d="M80 108Q92 102 104 108Q92 113 80 108" fill="{{eye_white}}"/><path d="M126 108Q138 102 150 108Q138 113 126 108" fill="{{eye_white}}"/><circle cx="92" cy="107" r="4.5" fill="{{eye.base}}"/><circle cx="138" cy="107" r="4.5" fill="{{eye.base}}"/><circle cx="92" cy="107" r="2" fill="{{pupil}}"/><circle cx="138" cy="107" r="2" fill="{{pupil}}"/>`,
	types.EyeUpturned:   `<path d="M80 110Q92 98 104 104Q92 114 80 110" fill="{{eye_white}}"/><path d="M126 104Q138 98 150 110Q138 114 126 104" fill="{{eye_white}}"/><circle cx="92" cy="106" r="5" fill="{{eye.base}}"/><circle cx="138" cy="106" r="5" fill="{{eye.base}}"/><circle cx="92" cy="106" r="2.2" fill="{{pupil}}"/><circle cx="138" cy="106" r="2.2" fill="{{pupil}}"/>`,
	types.EyeDownturned: `<path d="M80 104Q92 100 104 110Q92 114 80 104" fill="{{eye_white}}"/><path d="M126 110Q138 100 150 104Q138 114 126 110" fill="{{eye_white}}"/><circle cx="92" cy="107" r="5" fill="{{eye.base}}"/><circle cx="138" cy="107" r="5" fill="{{eye.base}}"/><circle cx="92" cy="107" r="2.2" fill="{{pupil}}"/><circle cx="138" cy="107" r="2.2" fill="{{pupil}}"/>`,
}

var eyebrowParts = map[types.EyebrowStyle]string{
	types.EyebrowStraight: `<rect x="80" y="92" width="26" height="4" rx="2" fill="{{hair.base}}"/><rect x="125" y="92" width="26" height="4" rx="2" fill="{{hair.base}}"/>`,
	types.EyebrowArched:   `<path d="M80 96Q93 86 106 94L104 98Q93 92 82 99Z" fill="{{hair.base}}"/><path d="M125 94Q138 86 151 96L149 99Q138 92 127 98Z" fill="{{hair.base}}"/>`,
	types.EyebrowThick:    `<rect x="78" y="89" width="30" height="7" rx="3" fill="{{hair.base}}"/><rect x="123" y="89" width="30" height="7" rx="3" fill="{{hair.base}}"/>`,
	types.EyebrowThin:     `<path d="M81 94Q93 90 105 94" stroke="{{hair.base}}" stroke-width="2" fill="none"/><path d="M126 94Q138 90 150 94" stroke="{{hair.base}}" stroke-width="2" fill="none"/>`,
	types.EyebrowBushy:    `<path d="M77 96Q93 84 108 94L106 100Q93 92 79 101Z" fill="{{hair.base}}"/><path d="M123 94Q138 84 154 96L152 101Q138 92 125 100Z" fill="{{hair.base}}"/><path d="M82 92Q93 87 103 92" stroke="{{hair.shadow1}}" stroke-width="1.5" fill="none"/>`,
}

var noseParts = map[types.NoseShape]string{
	types.NoseStraight: `<path d="M113 108L110 130Q115 134 120 130L117 108" fill="{{skin.shadow1}}"/><path d="M111 128Q115 131 119 128" stroke="{{skin.shadow2}}" stroke-width="1.5" fill="none"/>`,
	types.NoseButton:   `<circle cx="115" cy="128" r="6" fill="{{skin.shadow1}}"/><circle cx="113" cy="126" r="2" fill="{{skin.highlight1}}"/>`,
	types.NoseRound:    `<ellipse cx="115" cy="128" rx="8" ry="7" fill="{{skin.shadow1}}"/><ellipse cx="112" cy="125" rx="2.5" ry="2" fill="{{skin.highlight1}}"/>`,
	types.NoseAquiline: `<path d="M112 106Q120 118 119 130Q115 134 110 130Q113 118 112 106" fill="{{skin.shadow1}}"/><path d="M112 128Q115 131 118 129" stroke="{{skin.shadow2}}" stroke-width="1.5" fill="none"/>`,
	types.NoseWide:     `<path d="M106 124Q115 134 124 124Q120 132 115 132Q110 132 106 124" fill="{{skin.shadow1}}"/><ellipse cx="108" cy="127" rx="2" ry="1.5" fill="{{skin.shadow2}}"/><ellipse cx="122" cy="127" rx="2" ry="1.5" fill="{{skin.shadow2}}"/>`,
}

var mouthParts = map[types.MouthExpression]string{
	types.MouthNeutral: `<path d="M100 152L130 152" stroke="{{lip}}" stroke-width="3" stroke-linecap="round" fill="none"/>`,
	types.MouthSmile:   `<path d="M98 148Q115 162 132 148" stroke="{{lip}}" stroke-width="3" stroke-linecap="round" fill="none"/><path d="M104 153Q115 159 126 153" stroke="{{lip_highlight}}" stroke-width="1.5" fill="none"/>`,
	types.MouthGrin:    `<path d="M96 146Q115 168 134 146Q115 152 96 146" fill="{{lip}}"/><path d="M102 148Q115 156 128 148Q115 152 102 148" fill="{{teeth}}"/>`,
	types.MouthFrown:   `<path d="M98 156Q115 144 132 156" stroke="{{lip}}" stroke-width="3" stroke-linecap="round" fill="none"/>`,
	types.MouthOpen:    `<ellipse cx="115" cy="152" rx="12" ry="9" fill="{{lip}}"/><ellipse cx="115" cy="155" rx="7" ry="5" fill="{{tongue}}"/><path d="M106 147Q115 144 124 147Q115 149 106 147" fill="{{teeth}}"/>`,
	types.MouthSmirk:   `<path d="M100 152Q112 154 130 146" stroke="{{lip}}" stroke-width="3" stroke-linecap="round" fill="none"/>`,
}

var glassesParts = map[types.EyewearStyle]string{
	types.EyewearGlasses:        `<rect x="78" y="98" width="28" height="20" rx="4" fill="none" stroke="#2f2f35" stroke-width="2.5"/><rect x="124" y="98" width="28" height="20" rx="4" fill="none" stroke="#2f2f35" stroke-width="2.5"/><path d="M106 106L124 106" stroke="#2f2f35" stroke-width="2.5"/>`,
	types.EyewearRoundGlasses:   `<circle cx="92" cy="108" r="13" fill="none" stroke="#2f2f35" stroke-width="2.5"/><circle cx="138" cy="108" r="13" fill="none" stroke="#2f2f35" stroke-width="2.5"/><path d="M105 106L125 106" stroke="#2f2f35" stroke-width="2.5"/>`,
	types.EyewearSunglasses:     `<rect x="78" y="98" width="28" height="20" rx="5" fill="#22222a"/><rect x="124" y="98" width="28" height="20" rx="5" fill="#22222a"/><path d="M106 104L124 104" stroke="#22222a" stroke-width="3"/><path d="M82 102Q90 100 100 102" stroke="#4a4a55" stroke-width="1.5" fill="none"/>`,
	types.EyewearReadingGlasses: `<path d="M80 112A12 10 0 0 0 104 112L104 104L80 104Z" fill="none" stroke="#5a4632" stroke-width="2"/><path d="M126 112A12 10 0 0 0 150 112L150 104L126 104Z" fill="none" stroke="#5a4632" stroke-width="2"/><path d="M104 106L126 106" stroke="#5a4632" stroke-width="2"/>`,
}

var headwearParts = map[types.HeadwearStyle]string{
	types.HeadwearCap:       `<path d="M62 92Q64 48 115 46Q166 48 168 92Q115 78 62 92" fill="{{clothing_top.base}}"/><path d="M150 84Q186 86 190 98Q160 96 148 92Z" fill="{{clothing_top.shadow1}}"/>`,
	types.HeadwearBeanie:    `<path d="M64 100Q62 50 115 48Q168 50 166 100L166 108Q115 94 64 108Z" fill="{{clothing_top.base}}"/><rect x="64" y="96" width="102" height="12" rx="6" fill="{{clothing_top.shadow1}}"/>`,
	types.HeadwearHat:       `<path d="M74 84Q78 48 115 46Q152 48 156 84Z" fill="{{clothing_top.base}}"/><ellipse cx="115" cy="88" rx="62" ry="10" fill="{{clothing_top.shadow1}}"/><rect x="78" y="74" width="74" height="8" fill="{{clothing_top.shadow2}}"/>`,
	types.HeadwearHeadscarf: `<path d="M60 104Q58 46 115 44Q172 46 170 104Q166 74 115 70Q64 74 60 104" fill="{{clothing_top.base}}"/><path d="M60 104Q62 130 72 150Q64 150 58 130Z" fill="{{clothing_top.shadow1}}"/><path d="M78 72Q96 60 120 62" stroke="{{clothing_top.highlight1}}" stroke-width="2" fill="none"/>`,
	types.HeadwearTurban:    `<path d="M62 96Q60 44 115 42Q170 44 168 96Q160 66 115 62Q70 66 62 96" fill="{{clothing_top.base}}"/><path d="M70 76Q95 52 140 58" stroke="{{clothing_top.shadow1}}" stroke-width="4" fill="none"/><path d="M90 60Q120 48 152 66" stroke="{{clothing_top.highlight1}}" stroke-width="3" fill="none"/>`,
}

const earsPart = `<ellipse cx="59" cy="116" rx="9" ry="13" fill="{{skin.base}}"/><ellipse cx="171" cy="116" rx="9" ry="13" fill="{{skin.base}}"/><ellipse cx="61" cy="116" rx="4" ry="7" fill="{{skin.shadow1}}"/><ellipse cx="169" cy="116" rx="4" ry="7" fill="{{skin.shadow1}}"/>`

const neckPart = `<path d="M98 170L98 212Q115 220 132 212L132 170Q115 180 98 170" fill="{{skin.base}}"/><path d="M98 170Q115 182 132 170L132 180Q115 190 98 180Z" fill="{{skin.ambient_occlusion}}"/>`

var bodyParts = map[types.BodyShape]string{
	types.BodySlim:     `<path d="M92 214Q70 224 64 270L64 430L166 430L166 270Q160 224 138 214Q115 226 92 214" fill="{{skin.base}}"/>`,
	types.BodyAverage:  `<path d="M90 214Q64 226 58 274L58 430L172 430L172 274Q166 226 140 214Q115 228 90 214" fill="{{skin.base}}"/>`,
	types.BodyAthletic: `<path d="M88 212Q56 226 52 276L52 430L178 430L178 276Q174 226 142 212Q115 230 88 212" fill="{{skin.base}}"/><path d="M98 250Q115 258 132 250" stroke="{{skin.shadow1}}" stroke-width="2" fill="none"/>`,
	types.BodyBroad:    `<path d="M86 214Q48 228 44 280L44 430L186 430L186 280Q182 228 144 214Q115 230 86 214" fill="{{skin.base}}"/>`,
	types.BodyHeavy:    `<path d="M88 216Q46 234 42 292L42 430L188 430L188 292Q184 234 142 216Q115 232 88 216" fill="{{skin.base}}"/>`,
}

var clothingTopParts = map[types.ClothingTopStyle]string{
	types.TopTShirt:  `<path d="M88 218Q58 228 54 278L54 340L176 340L176 278Q172 228 142 218Q115 236 88 218" fill="{{clothing_top.base}}"/><path d="M100 222Q115 232 130 222Q115 240 100 222" fill="{{clothing_top.shadow1}}"/>`,
	types.TopShirt:   `<path d="M88 218Q58 228 54 278L54 340L176 340L176 278Q172 228 142 218Q115 236 88 218" fill="{{clothing_top.base}}"/><path d="M115 232L115 336" stroke="{{clothing_top.shadow1}}" stroke-width="2"/><circle cx="115" cy="252" r="2" fill="{{clothing_top.shadow2}}"/><circle cx="115" cy="276" r="2" fill="{{clothing_top.shadow2}}"/><path d="M104 222L115 234L126 222L122 218L115 226L108 218Z" fill="{{clothing_top.highlight1}}"/>`,
	types.TopBlouse:  `<path d="M88 218Q58 230 56 280L56 340L174 340L174 280Q172 230 142 218Q115 238 88 218" fill="{{clothing_top.base}}"/><path d="M96 226Q115 244 134 226" stroke="{{clothing_top.shadow1}}" stroke-width="2" fill="none"/>`,
	types.TopHoodie:  `<path d="M86 216Q54 228 50 280L50 340L180 340L180 280Q176 228 144 216Q115 238 86 216" fill="{{clothing_top.base}}"/><path d="M90 220Q115 248 140 220Q132 240 115 242Q98 240 90 220" fill="{{clothing_top.shadow1}}"/><path d="M106 250L106 268M124 250L124 268" stroke="{{clothing_top.shadow2}}" stroke-width="2"/>`,
	types.TopSweater: `<path d="M86 218Q56 230 52 280L52 340L178 340L178 280Q174 230 144 218Q115 240 86 218" fill="{{clothing_top.base}}"/><path d="M96 228Q115 240 134 228" stroke="{{clothing_top.shadow1}}" stroke-width="3" fill="none"/><path d="M60 300L170 300" stroke="{{clothing_top.shadow1}}" stroke-width="1.5"/>`,
	types.TopJacket:  `<path d="M86 216Q54 228 50 280L50 340L180 340L180 280Q176 228 144 216Q115 238 86 216" fill="{{clothing_top.base}}"/><path d="M104 222L96 340L88 340L96 224Z" fill="{{clothing_top.shadow2}}"/><path d="M126 222L134 340L142 340L134 224Z" fill="{{clothing_top.shadow2}}"/><path d="M104 222L115 236L126 222" stroke="{{clothing_top.highlight1}}" stroke-width="2" fill="none"/>`,
	types.TopDress:   `<path d="M88 218Q58 230 56 282L48 400L182 400L174 282Q172 230 142 218Q115 238 88 218" fill="{{clothing_top.base}}"/><path d="M96 228Q115 242 134 228" stroke="{{clothing_top.shadow1}}" stroke-width="2" fill="none"/><path d="M60 340Q115 352 170 340" stroke="{{clothing_top.shadow1}}" stroke-width="1.5" fill="none"/>`,
}

var clothingBottomParts = map[types.ClothingBottomStyle]string{
	types.BottomJeans:    `<path d="M62 336L62 430L104 430L110 360L120 360L126 430L168 430L168 336Q115 348 62 336" fill="{{clothing_bottom.base}}"/><path d="M66 344Q115 354 164 344" stroke="{{clothing_bottom.shadow1}}" stroke-width="2" fill="none"/><path d="M88 360L88 424M142 360L142 424" stroke="{{clothing_bottom.shadow1}}" stroke-width="1.5"/>`,
	types.BottomTrousers: `<path d="M64 336L64 430L106 430L112 362L118 362L124 430L166 430L166 336Q115 346 64 336" fill="{{clothing_bottom.base}}"/><path d="M90 356L88 428M140 356L142 428" stroke="{{clothing_bottom.shadow1}}" stroke-width="1.5"/>`,
	types.BottomShorts:   `<path d="M64 336L62 392L110 392L113 360L117 360L120 392L168 392L166 336Q115 346 64 336" fill="{{clothing_bottom.base}}"/><path d="M66 384L108 386M122 386L164 384" stroke="{{clothing_bottom.shadow1}}" stroke-width="2"/>`,
	types.BottomSkirt:    `<path d="M66 336L52 410L178 410L164 336Q115 348 66 336" fill="{{clothing_bottom.base}}"/><path d="M84 344L76 406M115 348L115 408M146 344L154 406" stroke="{{clothing_bottom.shadow1}}" stroke-width="1.5"/>`,
	types.BottomLeggings: `<path d="M68 336L68 430L106 430L112 364L118 364L124 430L162 430L162 336Q115 346 68 336" fill="{{clothing_bottom.base}}"/><path d="M92 360Q90 396 90 426M138 360Q140 396 140 426" stroke="{{clothing_bottom.shadow2}}" stroke-width="1.5" fill="none"/>`,
}

// Builtin returns a registry populated with the built-in asset library. The
// returned registry is fully populated and must be treated as read-only.
func Builtin() *Registry {
	r := NewRegistry()

	for shape, inner := range faceShapeParts {
		r.Register(LayerHead, string(shape), headPart(inner))
	}
	for style, inner := range hairBackParts {
		r.Register(LayerHairBehind, string(style)+"_back", headPart(inner))
	}
	for style, inner := range hairFrontParts {
		r.Register(LayerHairFront, string(style)+"_front", headPart(inner))
	}
	for style, inner := range facialHairParts {
		r.Register(LayerFacialHair, string(style), headPart(inner))
	}
	for shape, inner := range eyeParts {
		r.Register(LayerEyes, string(shape), headPart(inner))
	}
	for style, inner := range eyebrowParts {
		r.Register(LayerEyebrows, string(style), headPart(inner))
	}
	for shape, inner := range noseParts {
		r.Register(LayerNose, string(shape), headPart(inner))
	}
	for expr, inner := range mouthParts {
		r.Register(LayerMouth, string(expr), headPart(inner))
	}
	for style, inner := range glassesParts {
		r.Register(LayerGlasses, string(style), headPart(inner))
	}
	for style, inner := range headwearParts {
		r.Register(LayerHeadwear, string(style), headPart(inner))
	}
	r.Register(LayerEars, DefaultPartID, headPart(earsPart))
	r.Register(LayerNeck, DefaultPartID, bodyPart(neckPart))
	for shape, inner := range bodyParts {
		r.Register(LayerBody, string(shape), bodyPart(inner))
	}
	for style, inner := range clothingTopParts {
		r.Register(LayerClothingTop, string(style), bodyPart(inner))
	}
	for style, inner := range clothingBottomParts {
		r.Register(LayerClothingBottom, string(style), bodyPart(inner))
	}

	return r
}
