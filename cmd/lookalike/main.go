// Package main provides the entry point for the lookalike avatar CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lookalike",
	Short: "Avatar composition and matching engine",
	Long:  "Lookalike renders deterministic SVG avatars from enumerated appearance records and scores how closely two records resemble each other.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
