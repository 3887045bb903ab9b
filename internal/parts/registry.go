package parts

// Key identifies one part by drawing layer and part id.
type Key struct {
	Layer Layer
	ID    string
}

// Registry is a write-once-then-read-many table mapping (layer, id) to a
// part template. Populate it fully before handing it to renderers; from
// that point it must be treated as immutable, which makes concurrent reads
// from simultaneous render calls safe. Re-registration while renders are in
// flight is unsupported.
type Registry struct {
	parts map[Key]Template
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{parts: make(map[Key]Template)}
}

// Register stores a template for (layer, id). Registering the same key again
// replaces the earlier template.
func (r *Registry) Register(layer Layer, id, raw string) {
	r.parts[Key{Layer: layer, ID: id}] = NewTemplate(raw)
}

// Has reports whether a template exists for (layer, id). Unknown keys return
// false, never an error.
func (r *Registry) Has(layer Layer, id string) bool {
	_, ok := r.parts[Key{Layer: layer, ID: id}]
	return ok
}

// Get returns the template for (layer, id). The second return is false when
// the part is absent.
func (r *Registry) Get(layer Layer, id string) (Template, bool) {
	tpl, ok := r.parts[Key{Layer: layer, ID: id}]
	return tpl, ok
}

// Len returns the number of registered parts.
func (r *Registry) Len() int {
	return len(r.parts)
}
