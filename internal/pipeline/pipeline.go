// =============================================================================
// Sales Analytics - Pipeline Orchestrator
// =============================================================================
//
// This module wires the stages into the end-to-end batch run:
//
//   read file -> parse -> validate/filter -> enrich -> XLSX dump -> report
//
// Every stage runs to completion before the next begins; there is no
// streaming, no concurrency and no shared mutable state. Per-record problems
// are absorbed into the stage counters; only a missing input file (or a
// failed write) surfaces as an error.
//
// =============================================================================

package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ginjaninja78/sales-analytics/internal/config"
	"github.com/ginjaninja78/sales-analytics/internal/enrichment"
	"github.com/ginjaninja78/sales-analytics/internal/exporter"
	"github.com/ginjaninja78/sales-analytics/internal/report"
	"github.com/ginjaninja78/sales-analytics/internal/salesparser"
	"github.com/ginjaninja78/sales-analytics/internal/validation"
	"github.com/ginjaninja78/sales-analytics/pkg/utils"
)

// Pipeline runs one complete analysis batch.
type Pipeline struct {
	cfg      *config.Config
	provider enrichment.Provider
	filters  validation.FilterOptions
	dryRun   bool
	log      zerolog.Logger
}

// Result summarizes a completed run.
type Result struct {
	// ParseStats is the parser's accounting of the raw lines.
	ParseStats salesparser.ParseStats

	// FilterSummary is the validation/filter accounting.
	FilterSummary validation.FilterSummary

	// Enrichment summarizes the enrichment pass.
	Enrichment enrichment.Stats

	// ReportPath is the written report location; empty on dry runs.
	ReportPath string

	// DumpPath is the written XLSX dump location; empty on dry runs.
	DumpPath string

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// New creates a pipeline. The provider is typically the live HTTP provider
// wrapped with the static fallback.
func New(cfg *config.Config, provider enrichment.Provider, filters validation.FilterOptions, dryRun bool, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		provider: provider,
		filters:  filters,
		dryRun:   dryRun,
		log:      log,
	}
}

// Run executes the batch pipeline and returns the run summary. The only
// error conditions are a missing/unreadable input file and failed artifact
// writes; everything per-record is a counter.
func (p *Pipeline) Run() (*Result, error) {
	start := time.Now()
	result := &Result{}

	// Stage 1: read the raw file with encoding fallback.
	lines, err := salesparser.ReadLines(p.cfg.InputFile, p.cfg.Encodings)
	if err != nil {
		return nil, err
	}
	p.log.Info().Str("file", p.cfg.InputFile).Int("lines", len(lines)).Msg("input file read")

	// Stage 2: parse raw lines into typed records.
	parsed, stats := salesparser.ParseLines(lines)
	result.ParseStats = stats
	p.log.Info().
		Int("total", stats.TotalLines).
		Int("parsed", stats.Parsed).
		Int("bad_field_count", stats.BadFieldCount).
		Int("bad_number", stats.BadNumber).
		Msg("parsing complete")

	// Stage 3: business validation and optional filters.
	valid, summary := validation.ValidateAndFilter(parsed, p.filters)
	result.FilterSummary = summary
	p.log.Info().
		Int("input", summary.TotalInput).
		Int("invalid", summary.Invalid).
		Int("filtered_by_region", summary.FilteredByRegion).
		Int("filtered_by_amount", summary.FilteredByAmount).
		Int("final", summary.FinalCount).
		Msg("validation complete")

	// Stage 4: enrichment (degrades to fallback data, never fails).
	enricher := enrichment.NewEnricher(p.provider, p.cfg.BaseCurrency, p.cfg.TargetCurrency, p.log)
	enriched, estats := enricher.Enrich(valid)
	result.Enrichment = estats
	p.log.Info().
		Str("currency", estats.Currency).
		Str("rate", estats.Rate.String()).
		Int("with_manager", estats.WithManager).
		Msg("enrichment complete")

	// Stage 5: render the report.
	opts := report.Options{
		GeneratedAt:          time.Now(),
		ReportID:             uuid.New().String(),
		TopProducts:          p.cfg.TopProducts,
		TopCustomers:         p.cfg.TopCustomers,
		TrendRows:            p.cfg.TrendRows,
		LowQuantityThreshold: p.cfg.LowQuantityThreshold,
	}
	document := report.Render(valid, enriched, opts)

	// Stage 6: write artifacts, unless this is a dry run.
	if !p.dryRun {
		fm := utils.NewFileManager(p.cfg.OutputDir)
		if err := fm.EnsureDirectories(); err != nil {
			return nil, err
		}

		result.DumpPath = fm.OutputPath(p.cfg.DumpFile)
		if err := exporter.WriteEnrichedXLSX(result.DumpPath, enriched); err != nil {
			return nil, fmt.Errorf("failed to export enriched records: %w", err)
		}

		result.ReportPath = fm.OutputPath(p.cfg.ReportFile)
		if err := exporter.WriteReport(result.ReportPath, document); err != nil {
			return nil, err
		}

		p.log.Info().
			Str("report", result.ReportPath).
			Str("dump", result.DumpPath).
			Msg("artifacts written")
	} else {
		p.log.Info().Msg("dry run, skipping artifact writes")
	}

	result.Elapsed = time.Since(start)
	return result, nil
}
