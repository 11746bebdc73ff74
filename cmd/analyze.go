// =============================================================================
// Sales Analytics - Analyze Command
// =============================================================================
//
// This file defines the 'analyze' command, which runs the full batch
// pipeline over the configured input file.
//
// COMMAND USAGE:
//   sales-analytics analyze [flags]
//
// FLAGS:
//   --file        : Override the input file from the configuration
//   --region      : Keep only transactions for this region
//   --min-amount  : Drop transactions below this amount
//   --max-amount  : Drop transactions above this amount
//   --currency    : Target currency for amount conversion
//   --dry-run     : Compute everything but write no artifacts
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Read the input file (encoding fallback chain)
//   3. Parse pipe-delimited records, dropping malformed lines
//   4. Validate business rules and apply the optional filters
//   5. Enrich with exchange rates and region managers (fallback on outage)
//   6. Write the enriched XLSX dump and the formatted text report
//
// =============================================================================

package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-analytics/internal/config"
	"github.com/ginjaninja78/sales-analytics/internal/enrichment"
	"github.com/ginjaninja78/sales-analytics/internal/logger"
	"github.com/ginjaninja78/sales-analytics/internal/pipeline"
	"github.com/ginjaninja78/sales-analytics/internal/validation"
)

// Command flags.
var (
	inputFile  string
	regionName string
	minAmount  string
	maxAmount  string
	currency   string
	dryRun     bool
)

// analyzeCmd represents the 'analyze' command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the sales analysis pipeline over the input file",
	Long: `The analyze command reads the configured pipe-delimited sales export,
cleans and validates the records, computes the sales analytics, enriches the
data with currency and region-manager reference data, and writes the enriched
XLSX dump plus the formatted text report to the output directory.

Malformed and invalid records never abort the run: they are dropped and
counted, and the run summary reports every rejection bucket. If the
exchange-rate provider is unreachable the built-in fallback rates are used
and the run still completes.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze()
	},
}

// init registers the analyze command and its flags.
func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(
		&inputFile,
		"file",
		"",
		"Path to the input file (overrides the configuration)",
	)

	analyzeCmd.Flags().StringVar(
		&regionName,
		"region",
		"",
		"Keep only transactions for this region (exact match)",
	)

	analyzeCmd.Flags().StringVar(
		&minAmount,
		"min-amount",
		"",
		"Drop transactions whose amount is below this value",
	)

	analyzeCmd.Flags().StringVar(
		&maxAmount,
		"max-amount",
		"",
		"Drop transactions whose amount is above this value",
	)

	analyzeCmd.Flags().StringVar(
		&currency,
		"currency",
		"",
		"Target currency for amount conversion (overrides the configuration)",
	)

	analyzeCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Compute everything but write no artifacts",
	)
}

// runAnalyze loads the configuration, assembles the pipeline and runs it.
func runAnalyze() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Flag overrides.
	if inputFile != "" {
		cfg.InputFile = inputFile
	}
	if currency != "" {
		cfg.TargetCurrency = currency
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log := logger.New(level)

	filters, err := buildFilters()
	if err != nil {
		return err
	}

	provider := enrichment.WithFallback(
		enrichment.NewHTTPProvider(
			cfg.ProviderBaseURL,
			time.Duration(cfg.ProviderTimeoutSeconds)*time.Second,
		),
		enrichment.NewStaticProvider(),
		log,
	)

	fmt.Println("=== Sales Analytics ===")
	fmt.Printf("Input file: %s\n", cfg.InputFile)

	result, err := pipeline.New(cfg, provider, filters, dryRun, log).Run()
	if err != nil {
		return err
	}

	printSummary(result)
	return nil
}

// buildFilters converts the filter flags into validation options. Amount
// bounds are optional; an empty flag means the bound is absent.
func buildFilters() (validation.FilterOptions, error) {
	opts := validation.FilterOptions{Region: regionName}

	if minAmount != "" {
		min, err := decimal.NewFromString(minAmount)
		if err != nil {
			return opts, fmt.Errorf("invalid --min-amount %q: %w", minAmount, err)
		}
		opts.MinAmount = &min
	}

	if maxAmount != "" {
		max, err := decimal.NewFromString(maxAmount)
		if err != nil {
			return opts, fmt.Errorf("invalid --max-amount %q: %w", maxAmount, err)
		}
		opts.MaxAmount = &max
	}

	return opts, nil
}

// printSummary prints the run summary to stdout.
func printSummary(result *pipeline.Result) {
	fmt.Println("\n=== Analysis Complete ===")
	fmt.Printf("Lines read:          %d\n", result.ParseStats.TotalLines)
	fmt.Printf("Records parsed:      %d\n", result.ParseStats.Parsed)
	fmt.Printf("Dropped (malformed): %d\n", result.ParseStats.Dropped())
	fmt.Printf("Invalid records:     %d\n", result.FilterSummary.Invalid)
	fmt.Printf("Filtered by region:  %d\n", result.FilterSummary.FilteredByRegion)
	fmt.Printf("Filtered by amount:  %d\n", result.FilterSummary.FilteredByAmount)
	fmt.Printf("Final record count:  %d\n", result.FilterSummary.FinalCount)
	fmt.Printf("Manager coverage:    %d of %d\n", result.Enrichment.WithManager, result.Enrichment.Total)
	fmt.Printf("Time elapsed:        %s\n", result.Elapsed)

	if result.ReportPath != "" {
		fmt.Printf("\n  ✓ Report: %s\n", result.ReportPath)
		fmt.Printf("  ✓ Dump:   %s\n", result.DumpPath)
	}
}
