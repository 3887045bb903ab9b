package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/lookalike/internal/composing"
	"github.com/jonathan/lookalike/internal/config"
	"github.com/jonathan/lookalike/internal/observability"
	"github.com/jonathan/lookalike/internal/parts"
	"github.com/jonathan/lookalike/internal/records"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an attribute record file",
	Long:  "Checks an attribute record JSON file against the schema and reports whether every part it maps to exists in the built-in catalog.",
	RunE:  runValidate,
}

var (
	validateRecordFile string
	validateView       string
	validateJSONOutput bool
	validateConfigFile string
)

func init() {
	validateCmd.Flags().StringVarP(&validateRecordFile, "record", "r", "", "Path to attribute record JSON file (required)")
	validateCmd.Flags().StringVar(&validateView, "view", "", "View mode to check parts for: head or full_body (default: head)")
	validateCmd.Flags().BoolVar(&validateJSONOutput, "json", false, "Emit the part report as JSON")
	validateCmd.Flags().StringVarP(&validateConfigFile, "config", "c", "", "Path to config JSON file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if validateRecordFile == "" {
		return fmt.Errorf("--record is required")
	}

	cfg, err := resolveConfig(validateConfigFile, config.Config{View: validateView})
	if err != nil {
		return err
	}

	record, err := records.LoadRecord(validateRecordFile)
	if err != nil {
		return err
	}

	composer := composing.NewComposer(parts.Builtin())
	report := composer.ValidateParts(record, cfg.ViewMode())

	if validateJSONOutput {
		encoded, err := json.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(encoded))
	} else {
		observability.NewPrinter(os.Stdout).PrintPartReport(report)
	}

	if !report.Valid {
		return fmt.Errorf("record maps to %d missing parts", len(report.Missing))
	}

	return nil
}
