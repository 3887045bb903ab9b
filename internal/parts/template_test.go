package parts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplate_FillSubstitutesKnownTokens(t *testing.T) {
	tpl := NewTemplate(`<path fill="{{skin.base}}" stroke="{{skin.shadow1}}"/>`)

	out := tpl.Fill(map[string]string{
		"skin.base":    "#cf9a6d",
		"skin.shadow1": "#b8835a",
	})

	assert.Equal(t, `<path fill="#cf9a6d" stroke="#b8835a"/>`, out)
}

func TestTemplate_FillLeavesUnknownTokensUntouched(t *testing.T) {
	tpl := NewTemplate(`<path fill="{{skin.base}}" stroke="{{mystery.token}}"/>`)

	out := tpl.Fill(map[string]string{"skin.base": "#cf9a6d"})

	assert.Contains(t, out, `{{mystery.token}}`)
	assert.Contains(t, out, `#cf9a6d`)
}

func TestTemplate_FillRepeatedToken(t *testing.T) {
	tpl := NewTemplate(`<g fill="{{hair.base}}"><path fill="{{hair.base}}"/></g>`)

	out := tpl.Fill(map[string]string{"hair.base": "#2c222b"})

	assert.Equal(t, `<g fill="#2c222b"><path fill="#2c222b"/></g>`, out)
}

func TestTemplate_FillEmptyTokenMap(t *testing.T) {
	raw := `<path fill="{{skin.base}}"/>`
	tpl := NewTemplate(raw)

	assert.Equal(t, raw, tpl.Fill(nil))
	assert.Equal(t, raw, tpl.Raw())
}
