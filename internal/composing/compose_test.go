package composing

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/lookalike/internal/parts"
	"github.com/jonathan/lookalike/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseSVG loads a composed document into goquery for structural assertions.
func parseSVG(t *testing.T, doc string) *goquery.Document {
	t.Helper()
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	require.NoError(t, err)
	return parsed
}

func layerGroups(t *testing.T, doc string) []string {
	t.Helper()
	var layers []string
	parseSVG(t, doc).Find("g[data-layer]").Each(func(_ int, s *goquery.Selection) {
		layer, _ := s.Attr("data-layer")
		layers = append(layers, layer)
	})
	return layers
}

func TestCompose_Deterministic(t *testing.T) {
	c := NewComposer(parts.Builtin())
	r := newRecord()

	first := c.Compose(r, ViewHead, Options{Size: 128, IncludeDeclaration: true})
	second := c.Compose(r, ViewHead, Options{Size: 128, IncludeDeclaration: true})

	assert.Equal(t, first, second)
}

func TestCompose_HeadViewLayerGroupsInZOrder(t *testing.T) {
	c := NewComposer(parts.Builtin())
	r := newRecord()
	r.FacialHairStyle = types.FacialHairStubble
	r.EyewearStyle = types.EyewearGlasses
	r.HeadwearStyle = types.HeadwearCap

	doc := c.ComposeHead(r)

	assert.Equal(t, []string{
		"hair_behind", "head", "ears", "eyes", "eyebrows",
		"nose", "mouth", "facial_hair", "hair_front", "glasses", "headwear",
	}, layerGroups(t, doc))
}

func TestCompose_FullBodyIncludesBodyGroups(t *testing.T) {
	c := NewComposer(parts.Builtin())

	doc := c.ComposeFullBody(newRecord())
	layers := layerGroups(t, doc)

	assert.Contains(t, layers, "body")
	assert.Contains(t, layers, "neck")
	assert.Contains(t, layers, "clothing_top")
	assert.Contains(t, layers, "clothing_bottom")
	// Clothing paints over the body, head paints over the neck.
	assert.Less(t, indexOf(layers, "body"), indexOf(layers, "clothing_top"))
	assert.Less(t, indexOf(layers, "neck"), indexOf(layers, "head"))
}

func indexOf(values []string, want string) int {
	for i, v := range values {
		if v == want {
			return i
		}
	}
	return -1
}

func TestCompose_BaldRecordHasNoHairGroups(t *testing.T) {
	c := NewComposer(parts.Builtin())
	r := newRecord()
	r.HairStyle = types.HairStyleBald

	doc := c.ComposeHead(r)
	layers := layerGroups(t, doc)

	assert.NotContains(t, layers, "hair_behind")
	assert.NotContains(t, layers, "hair_front")
	assert.NotContains(t, doc, "hair_behind")
	assert.NotContains(t, doc, "hair_front")
}

func TestCompose_MissingPartIsSkippedSilently(t *testing.T) {
	// A registry with only a head part: everything else is skipped, the
	// document still renders with the one group.
	reg := parts.NewRegistry()
	reg.Register(parts.LayerHead, "oval", `<svg viewBox="0 0 231 231"><ellipse fill="{{skin.base}}"/></svg>`)
	c := NewComposer(reg)

	doc := c.ComposeHead(newRecord())

	assert.Equal(t, []string{"head"}, layerGroups(t, doc))
}

func TestCompose_EmptyRegistryYieldsPlaceholder(t *testing.T) {
	c := NewComposer(parts.NewRegistry())

	doc := c.Compose(newRecord(), ViewHead, Options{Size: 64})

	assert.Empty(t, layerGroups(t, doc))
	assert.Contains(t, doc, `width="64"`)
	assert.Contains(t, doc, `viewBox="0 0 231 231"`)
	// The placeholder is fixed, not random.
	assert.Equal(t, doc, c.Compose(newRecord(), ViewHead, Options{Size: 64}))
}

func TestCompose_DeclarationFlag(t *testing.T) {
	c := NewComposer(parts.Builtin())
	r := newRecord()

	with := c.Compose(r, ViewHead, Options{IncludeDeclaration: true})
	without := c.Compose(r, ViewHead, Options{})

	assert.True(t, strings.HasPrefix(with, `<?xml`))
	assert.True(t, strings.HasPrefix(without, `<svg`))
}

func TestCompose_SizeFraming(t *testing.T) {
	c := NewComposer(parts.Builtin())
	r := newRecord()

	head := c.Compose(r, ViewHead, Options{Size: 100})
	assert.Contains(t, head, `width="100" height="100"`)

	full := c.Compose(r, ViewFullBody, Options{Size: 100})
	assert.Contains(t, full, `width="100" height="200"`)
	assert.Contains(t, full, `viewBox="0 0 231 462"`)

	defaulted := c.Compose(r, ViewHead, Options{})
	assert.Contains(t, defaulted, `width="231" height="231"`)
}

func TestCompose_SubstitutesPaletteTokens(t *testing.T) {
	c := NewComposer(parts.Builtin())

	doc := c.ComposeHead(newRecord())

	// Every placeholder the built-in catalog uses is covered by the palette.
	assert.NotContains(t, doc, "{{")
	// Skin base for the medium tone shows up in the head group.
	assert.Contains(t, doc, "#cf9a6d")
}

func TestCompose_UnknownTokenLeftUntouched(t *testing.T) {
	reg := parts.NewRegistry()
	reg.Register(parts.LayerHead, "oval", `<svg><path fill="{{not.a.token}}"/></svg>`)
	c := NewComposer(reg)

	doc := c.ComposeHead(newRecord())

	assert.Contains(t, doc, "{{not.a.token}}")
}

func TestCompose_StripsTemplateWrapper(t *testing.T) {
	c := NewComposer(parts.Builtin())

	doc := c.ComposeHead(newRecord())

	// Exactly one <svg> element: the outer document.
	assert.Equal(t, 1, strings.Count(doc, "<svg"))
}
