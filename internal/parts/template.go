package parts

import (
	"strings"
)

// Template is an opaque SVG fragment containing {{token}} color
// placeholders. Substitution is explicit token-map replacement; there is no
// template language beyond the placeholders.
type Template struct {
	raw string
}

// NewTemplate wraps raw templated markup.
func NewTemplate(raw string) Template {
	return Template{raw: raw}
}

// Raw returns the underlying markup with placeholders intact.
func (t Template) Raw() string {
	return t.raw
}

// Fill substitutes every token present in the map. Placeholders without a
// map entry are left untouched, so partially-finished assets degrade to
// their literal text instead of breaking composition.
func (t Template) Fill(tokens map[string]string) string {
	out := t.raw
	for name, value := range tokens {
		out = strings.ReplaceAll(out, "{{"+name+"}}", value)
	}
	return out
}
