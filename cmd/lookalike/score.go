package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/lookalike/internal/config"
	"github.com/jonathan/lookalike/internal/matching"
	"github.com/jonathan/lookalike/internal/observability"
	"github.com/jonathan/lookalike/internal/records"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score the similarity of two attribute records",
	Long:  "Compares two attribute record JSON files and reports a 0-100 similarity score with its quality band.",
	RunE:  runScore,
}

var (
	scoreCandidateFile string
	scoreTargetFile    string
	scoreJSONOutput    bool
	scoreConfigFile    string
	scoreVerbose       bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreCandidateFile, "candidate", "a", "", "Path to candidate record JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreTargetFile, "target", "b", "", "Path to target record JSON file (required)")
	scoreCmd.Flags().BoolVar(&scoreJSONOutput, "json", false, "Emit the result as JSON")
	scoreCmd.Flags().StringVarP(&scoreConfigFile, "config", "c", "", "Path to config JSON file")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	if scoreCandidateFile == "" || scoreTargetFile == "" {
		return fmt.Errorf("--candidate and --target are required")
	}

	cfg, err := resolveConfig(scoreConfigFile, config.Config{Verbose: scoreVerbose})
	if err != nil {
		return err
	}

	candidate, err := records.LoadRecord(scoreCandidateFile)
	if err != nil {
		return err
	}

	target, err := records.LoadRecord(scoreTargetFile)
	if err != nil {
		return err
	}

	scorer := matching.NewScorer(cfg.Banding())
	similarity := scorer.Score(candidate, target)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintRecord(candidate)
		printer.PrintRecord(target)
	}

	if scoreJSONOutput {
		encoded, err := json.Marshal(similarity)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(encoded))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintSimilarity(similarity)
	return nil
}
