package composing

import (
	"fmt"

	"github.com/jonathan/lookalike/internal/types"
)

// PartReport lists the parts a render would need that the registry lacks.
// Missing parts are a diagnostic, never a render failure: composition skips
// them silently.
type PartReport struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing,omitempty"` // formatted as "layer:id"
}

// ValidateParts enumerates every (layer, id) the mapper selects for the
// record that the registry has no template for, without rendering. Missing
// entries preserve z-order.
func (c *Composer) ValidateParts(r *types.AttributeRecord, view ViewMode) PartReport {
	refs := MapParts(r, view)
	report := PartReport{Valid: true}
	for _, layer := range LayerOrder(view) {
		ref := refs[layer]
		if ref.Suppressed {
			continue
		}
		if c.registry.Has(layer, ref.ID) {
			continue
		}
		report.Valid = false
		report.Missing = append(report.Missing, fmt.Sprintf("%s:%s", layer, ref.ID))
	}
	return report
}
