// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/lookalike/internal/composing"
	"github.com/jonathan/lookalike/internal/matching"
	"github.com/jonathan/lookalike/internal/parts"
	"github.com/jonathan/lookalike/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecord outputs a human-readable summary of an attribute record.
func (p *Printer) PrintRecord(record *types.AttributeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString("Primary:\n")
	sb.WriteString(fmt.Sprintf("  skin %s, hair %s/%s\n", record.SkinTone, record.HairColor, record.HairStyle))
	sb.WriteString(fmt.Sprintf("  face %s, facial hair %s\n", record.FaceShape, record.FacialHairStyle))
	sb.WriteString(fmt.Sprintf("  eyes %s\n", record.EyeColor))
	sb.WriteString("\n")

	sb.WriteString("Secondary:\n")
	sb.WriteString(fmt.Sprintf("  eye shape %s, brows %s, nose %s\n", record.EyeShape, record.EyebrowStyle, record.NoseShape))
	sb.WriteString(fmt.Sprintf("  mouth %s, body %s, height %s\n", record.MouthExpression, record.BodyShape, record.Height))
	sb.WriteString(fmt.Sprintf("  eyewear %s, headwear %s\n", record.EyewearStyle, record.HeadwearStyle))
	sb.WriteString("\n")

	sb.WriteString("Cosmetic:\n")
	sb.WriteString(fmt.Sprintf("  facial hair color %s\n", record.FacialHairColor))
	sb.WriteString(fmt.Sprintf("  top %s %s, bottom %s %s", record.ClothingTopColor, record.ClothingTopStyle,
		record.ClothingBottomColor, record.ClothingBottomStyle))

	p.printBox("ATTRIBUTE RECORD", sb.String())
}

// PrintSimilarity outputs a similarity result with its quality band.
func (p *Printer) PrintSimilarity(sim matching.Similarity) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d / 100\n", sim.Score))
	sb.WriteString(fmt.Sprintf("Quality:  %s", sim.Quality))

	p.printBox("SIMILARITY", sb.String())
}

// PrintMatches outputs the entries that passed the match threshold.
func (p *Printer) PrintMatches(entries []matching.Entry, threshold int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Threshold: %d\n", threshold))
	sb.WriteString(fmt.Sprintf("Matched:   %d entries\n", len(entries)))

	if len(entries) > 0 {
		sb.WriteString("\n")
		count := min(len(entries), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", entries[i].ID))
		}
		if len(entries) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(entries)-maxItemsToShow))
		}
	}

	p.printBox("MATCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPartReport outputs the part availability report for a record.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintPartReport(report composing.PartReport) {
	if report.Valid {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL PARTS AVAILABLE")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Missing %d parts:\n\n", len(report.Missing)))

	for i, ref := range report.Missing {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", ref))
		if i < len(report.Missing)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("MISSING PARTS", sb.String())
}

// PrintPartMap outputs the resolved layer-to-part mapping for a record.
func (p *Printer) PrintPartMap(view composing.ViewMode, mapped map[parts.Layer]composing.PartRef) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("View: %s\n\n", view))

	for _, layer := range composing.LayerOrder(view) {
		ref, ok := mapped[layer]
		if !ok {
			continue
		}
		if ref.Suppressed {
			sb.WriteString(fmt.Sprintf("  %-16s (suppressed)\n", layer))
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-16s %s\n", layer, ref.ID))
	}

	p.printBox("PART MAP", strings.TrimSuffix(sb.String(), "\n"))
}
