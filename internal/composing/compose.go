package composing

import (
	"fmt"
	"strings"

	"github.com/jonathan/lookalike/internal/colorizer"
	"github.com/jonathan/lookalike/internal/parts"
	"github.com/jonathan/lookalike/internal/types"
)

// DefaultSize is the output width in pixels when the caller does not request
// one. It matches the authoring viewport of the asset library.
const DefaultSize = 231

const (
	xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`
	svgNamespace   = "http://www.w3.org/2000/svg"

	headViewBoxHeight = 231
	bodyViewBoxHeight = 462
	viewBoxWidth      = 231
)

// Options control document framing for one composition call.
type Options struct {
	// Size is the output width in pixels; height follows the view's aspect
	// ratio. Zero or negative means DefaultSize.
	Size int
	// IncludeDeclaration prefixes the document with an XML declaration.
	IncludeDeclaration bool
}

// Composer renders attribute records against one part registry. The registry
// is passed in explicitly so independent catalogs can coexist; the composer
// never mutates it.
type Composer struct {
	registry *parts.Registry
}

// NewComposer returns a composer bound to a fully populated registry.
func NewComposer(registry *parts.Registry) *Composer {
	return &Composer{registry: registry}
}

// Compose renders one record in the given view mode into a standalone SVG
// document string. The output is a pure function of (record, view, options):
// no I/O, no randomness, identical inputs yield byte-identical output.
//
// Layers whose mapped part is suppressed or absent from the registry are
// skipped silently; if nothing at all resolves, a fixed placeholder document
// sized to the requested viewport is returned instead.
func (c *Composer) Compose(r *types.AttributeRecord, view ViewMode, opts Options) string {
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}

	refs := MapParts(r, view)
	palette := colorizer.BuildPalette(r)

	var content strings.Builder
	rendered := false
	for _, layer := range LayerOrder(view) {
		ref := refs[layer]
		if ref.Suppressed {
			continue
		}
		tpl, ok := c.registry.Get(layer, ref.ID)
		if !ok {
			// Missing part: skipped here, surfaced via ValidateParts.
			continue
		}
		inner := innerMarkup(tpl.Fill(palette))
		if inner == "" {
			continue
		}
		fmt.Fprintf(&content, `<g data-layer=%q>%s</g>`, layer, inner)
		rendered = true
	}

	if !rendered {
		return placeholderDocument(view, size, opts.IncludeDeclaration)
	}
	return wrapDocument(content.String(), view, size, opts.IncludeDeclaration)
}

// ComposeHead renders the head-only view with default framing.
func (c *Composer) ComposeHead(r *types.AttributeRecord) string {
	return c.Compose(r, ViewHead, Options{})
}

// ComposeFullBody renders the full-body view with default framing.
func (c *Composer) ComposeFullBody(r *types.AttributeRecord) string {
	return c.Compose(r, ViewFullBody, Options{})
}

// viewBoxHeight returns the drawing-space height for a view mode.
func viewBoxHeight(view ViewMode) int {
	if view == ViewFullBody {
		return bodyViewBoxHeight
	}
	return headViewBoxHeight
}

// documentHeight scales the output height to keep the view's aspect ratio
// for the requested width.
func documentHeight(view ViewMode, size int) int {
	return size * viewBoxHeight(view) / viewBoxWidth
}

// wrapDocument frames the composed groups in one outer <svg> with a rounded
// clip region sized to the drawing space.
func wrapDocument(content string, view ViewMode, size int, includeDeclaration bool) string {
	vbH := viewBoxHeight(view)
	var b strings.Builder
	if includeDeclaration {
		b.WriteString(xmlDeclaration)
	}
	fmt.Fprintf(&b, `<svg xmlns=%q width="%d" height="%d" viewBox="0 0 %d %d">`,
		svgNamespace, size, documentHeight(view, size), viewBoxWidth, vbH)
	fmt.Fprintf(&b, `<defs><clipPath id="viewport"><rect width="%d" height="%d" rx="%d"/></clipPath></defs>`,
		viewBoxWidth, vbH, viewBoxWidth/8)
	b.WriteString(`<g clip-path="url(#viewport)">`)
	b.WriteString(content)
	b.WriteString(`</g></svg>`)
	return b.String()
}

// placeholderDocument is the designed fallback when no layer resolves: a
// fixed gray silhouette sized to the requested viewport. Not an error path.
func placeholderDocument(view ViewMode, size int, includeDeclaration bool) string {
	vbH := viewBoxHeight(view)
	var b strings.Builder
	if includeDeclaration {
		b.WriteString(xmlDeclaration)
	}
	fmt.Fprintf(&b, `<svg xmlns=%q width="%d" height="%d" viewBox="0 0 %d %d">`,
		svgNamespace, size, documentHeight(view, size), viewBoxWidth, vbH)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#e8e8e8"/>`, viewBoxWidth, vbH)
	b.WriteString(`<circle cx="115" cy="96" r="42" fill="#c4c4c4"/>`)
	b.WriteString(`<path d="M47 212Q52 146 115 144Q178 146 183 212Z" fill="#c4c4c4"/>`)
	b.WriteString(`</svg>`)
	return b.String()
}

// innerMarkup strips the template's outer <svg> wrapper, leaving only the
// drawable fragment. Templates without a wrapper pass through as-is.
func innerMarkup(doc string) string {
	trimmed := strings.TrimSpace(doc)
	if !strings.HasPrefix(trimmed, "<svg") {
		return trimmed
	}
	start := strings.Index(trimmed, ">")
	end := strings.LastIndex(trimmed, "</svg>")
	if start < 0 || end <= start {
		return trimmed
	}
	return strings.TrimSpace(trimmed[start+1 : end])
}
