package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/jonathan/lookalike/internal/config"
	"github.com/jonathan/lookalike/internal/matching"
	"github.com/jonathan/lookalike/internal/observability"
	"github.com/jonathan/lookalike/internal/records"
	"github.com/jonathan/lookalike/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Filter match entries against a candidate record",
	Long:  "Scores a candidate record against every entry in a match entries JSON file and keeps the entries at or above the threshold.",
	RunE:  runMatch,
}

var (
	matchCandidateFile string
	matchEntriesFile   string
	matchThreshold     int
	matchWorkers       int
	matchJSONOutput    bool
	matchConfigFile    string
	matchVerbose       bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchCandidateFile, "candidate", "a", "", "Path to candidate record JSON file (required)")
	matchCmd.Flags().StringVarP(&matchEntriesFile, "entries", "e", "", "Path to match entries JSON file (required)")
	matchCmd.Flags().IntVarP(&matchThreshold, "threshold", "t", 0, "Minimum score to keep an entry (default: 60)")
	matchCmd.Flags().IntVarP(&matchWorkers, "workers", "w", 0, "Parallel workers; 0 uses all CPUs")
	matchCmd.Flags().BoolVar(&matchJSONOutput, "json", false, "Emit kept entry ids as JSON")
	matchCmd.Flags().StringVarP(&matchConfigFile, "config", "c", "", "Path to config JSON file")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	if matchCandidateFile == "" || matchEntriesFile == "" {
		return fmt.Errorf("--candidate and --entries are required")
	}

	cfg, err := resolveConfig(matchConfigFile, config.Config{
		Threshold: matchThreshold,
		Workers:   matchWorkers,
		Verbose:   matchVerbose,
	})
	if err != nil {
		return err
	}

	candidate, err := records.LoadRecord(matchCandidateFile)
	if err != nil {
		return err
	}

	entries, err := records.LoadEntries(matchEntriesFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	scorer := matching.NewScorer(cfg.Banding())
	kept, err := scorer.FilterMatchesParallel(ctx, candidate, entries, cfg.Threshold, cfg.Workers)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintMatches(kept, cfg.Threshold)
	}

	if matchJSONOutput {
		ids := lo.Map(kept, func(e matching.Entry, _ int) string { return e.ID })
		encoded, err := json.Marshal(ids)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(encoded))
		return nil
	}

	printMatchTable(candidate, kept, scorer)
	fmt.Fprintf(os.Stdout, "\n%d of %d entries matched (threshold %d)\n", len(kept), len(entries), cfg.Threshold)
	return nil
}

func printMatchTable(candidate *types.AttributeRecord, kept []matching.Entry, scorer *matching.Scorer) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Score", "Quality"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	rows := lo.Map(kept, func(e matching.Entry, _ int) []string {
		sim := scorer.Score(candidate, e.Target)
		return []string{e.ID, strconv.Itoa(sim.Score), string(sim.Quality)}
	})
	for _, row := range rows {
		table.Append(row)
	}

	table.Render()
}
