// =============================================================================
// Sales Analytics - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'analyze', 'version') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (sales-analytics)
//   ├── analyzeCmd (sales-analytics analyze)
//   └── versionCmd (sales-analytics version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "sales-analytics",

	Short: "Sales Analytics - Clean, analyze and report on pipe-delimited sales exports",

	Long: `Sales Analytics is a CLI tool that ingests pipe-delimited sales transaction
exports, cleans and validates the records, computes descriptive analytics
(revenue, regional breakdown, trends, top/bottom performers, customer
analysis), enriches the data with currency and region-manager reference data,
and writes a formatted text report.

Key Features:
  - Tolerant parsing of malformed legacy exports (bad rows are counted, never fatal)
  - Business-rule validation with optional region and amount filters
  - Currency conversion backed by a live exchange-rate API with static fallback
  - XLSX dump of the enriched dataset alongside the text report

Example Usage:
  sales-analytics analyze                      # Analyze the configured input file
  sales-analytics analyze --region North       # Restrict the analysis to one region
  sales-analytics analyze --config ./my.yaml   # Use a custom configuration file`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the persistent flags shared by all subcommands.
func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables verbose/debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
