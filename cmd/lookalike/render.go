package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/lookalike/internal/composing"
	"github.com/jonathan/lookalike/internal/config"
	"github.com/jonathan/lookalike/internal/observability"
	"github.com/jonathan/lookalike/internal/parts"
	"github.com/jonathan/lookalike/internal/records"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an avatar SVG from an attribute record",
	Long:  "Composes a layered SVG avatar from an attribute record JSON file using the built-in part catalog.",
	RunE:  runRender,
}

var (
	renderRecordFile  string
	renderOutputFile  string
	renderView        string
	renderSize        int
	renderDeclaration bool
	renderConfigFile  string
	renderVerbose     bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderRecordFile, "record", "r", "", "Path to attribute record JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output SVG file (default: stdout)")
	renderCmd.Flags().StringVar(&renderView, "view", "", "View mode: head or full_body (default: head)")
	renderCmd.Flags().IntVar(&renderSize, "size", 0, "Output width in pixels (default: 231)")
	renderCmd.Flags().BoolVar(&renderDeclaration, "xml-declaration", false, "Prepend the XML declaration to the SVG output")
	renderCmd.Flags().StringVarP(&renderConfigFile, "config", "c", "", "Path to config JSON file")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	if renderRecordFile == "" {
		return fmt.Errorf("--record is required")
	}

	cfg, err := resolveConfig(renderConfigFile, config.Config{
		View:               renderView,
		Size:               renderSize,
		IncludeDeclaration: renderDeclaration,
		Verbose:            renderVerbose,
	})
	if err != nil {
		return err
	}

	record, err := records.LoadRecord(renderRecordFile)
	if err != nil {
		return err
	}

	view := cfg.ViewMode()
	composer := composing.NewComposer(parts.Builtin())

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintRecord(record)
		printer.PrintPartMap(view, composing.MapParts(record, view))

		report := composer.ValidateParts(record, view)
		printer.PrintPartReport(report)
	}

	svg := composer.Compose(record, view, composing.Options{
		Size:               cfg.Size,
		IncludeDeclaration: cfg.IncludeDeclaration,
	})

	if renderOutputFile == "" {
		fmt.Fprintln(os.Stdout, svg)
		return nil
	}

	outputDir := filepath.Dir(renderOutputFile)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(renderOutputFile, []byte(svg), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Rendered %s avatar\n", view)
	fmt.Fprintf(os.Stdout, "Output: %s\n", renderOutputFile)
	return nil
}
