// =============================================================================
// Sales Analytics - Report Renderer
// =============================================================================
//
// This module formats the aggregated results into a single fixed-layout text
// document. It is pure formatting: all business numbers come from the
// analytics engine and the enrichment stage; nothing is computed here beyond
// layout and the date-range scan.
//
// SECTION ORDER (fixed):
//   1. Header (title, generation timestamp, report ID, record count)
//   2. Overall summary (revenue, count, average order value, date range)
//   3. Region-wise sales table
//   4. Top products table
//   5. Top customers table
//   6. Daily sales trend (first N rows)
//   7. Product performance (peak day, low-performer count)
//   8. Enrichment summary (manager coverage)
//
// =============================================================================

package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/sales-analytics/internal/analytics"
	"github.com/ginjaninja78/sales-analytics/internal/types"
)

const rule = "================================================================================"
const thinRule = "--------------------------------------------------------------------------------"

// Options controls the rendered report.
type Options struct {
	// GeneratedAt is the report generation timestamp.
	GeneratedAt time.Time

	// ReportID is a unique identifier printed in the header.
	ReportID string

	// TopProducts is the size of the product ranking table.
	TopProducts int

	// TopCustomers is the size of the customer ranking table.
	TopCustomers int

	// TrendRows is the number of daily-trend rows to print.
	TrendRows int

	// LowQuantityThreshold is the low-performer cutoff.
	LowQuantityThreshold int
}

// DefaultOptions returns report options with the standard table sizes.
func DefaultOptions() Options {
	return Options{
		GeneratedAt:          time.Now(),
		TopProducts:          5,
		TopCustomers:         5,
		TrendRows:            10,
		LowQuantityThreshold: 10,
	}
}

// Render produces the complete report document from the valid and enriched
// transaction sets. An empty input still renders a complete document with
// empty tables.
func Render(valid []types.Transaction, enriched []types.EnrichedTransaction, opts Options) string {
	var b strings.Builder

	writeHeader(&b, len(valid), opts)
	writeOverallSummary(&b, valid)
	writeRegionTable(&b, valid)
	writeTopProducts(&b, valid, opts.TopProducts)
	writeTopCustomers(&b, valid, opts.TopCustomers)
	writeDailyTrend(&b, valid, opts.TrendRows)
	writeProductPerformance(&b, valid, opts.LowQuantityThreshold)
	writeEnrichmentSummary(&b, enriched)

	b.WriteString(rule + "\n")
	b.WriteString("End of Report\n")

	return b.String()
}

func writeHeader(b *strings.Builder, recordCount int, opts Options) {
	fmt.Fprintf(b, "%s\n", rule)
	fmt.Fprintf(b, "%s\n", centerLine("SALES ANALYTICS REPORT"))
	fmt.Fprintf(b, "%s\n\n", rule)
	if opts.ReportID != "" {
		fmt.Fprintf(b, "Report ID : %s\n", opts.ReportID)
	}
	fmt.Fprintf(b, "Generated : %s\n", opts.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(b, "Records   : %d\n\n", recordCount)
}

func writeOverallSummary(b *strings.Builder, valid []types.Transaction) {
	total := analytics.TotalRevenue(valid)

	avg := decimal.Zero
	if len(valid) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(valid)))).Round(2)
	}

	fmt.Fprintf(b, "Overall Summary\n%s\n", thinRule)
	fmt.Fprintf(b, "  Total Revenue       : %s\n", Money(total))
	fmt.Fprintf(b, "  Transactions        : %d\n", len(valid))
	fmt.Fprintf(b, "  Average Order Value : %s\n", Money(avg))
	fmt.Fprintf(b, "  Date Range          : %s\n\n", dateRange(valid))
}

func writeRegionTable(b *strings.Builder, valid []types.Transaction) {
	fmt.Fprintf(b, "Region-wise Sales\n%s\n", thinRule)
	fmt.Fprintf(b, "  %-12s %18s %8s %10s\n", "Region", "Total Sales", "Txns", "Share")
	for _, stat := range analytics.RegionSales(valid) {
		fmt.Fprintf(b, "  %-12s %18s %8d %10s\n",
			stat.Region, Money(stat.Total), stat.Count, Percent(stat.Percent))
	}
	b.WriteString("\n")
}

func writeTopProducts(b *strings.Builder, valid []types.Transaction, n int) {
	fmt.Fprintf(b, "Top %d Products by Quantity\n%s\n", n, thinRule)
	fmt.Fprintf(b, "  %-28s %10s %18s\n", "Product", "Quantity", "Revenue")
	for _, stat := range analytics.TopProducts(valid, n) {
		fmt.Fprintf(b, "  %-28s %10d %18s\n", clip(stat.Name, 28), stat.Quantity, Money(stat.Revenue))
	}
	b.WriteString("\n")
}

func writeTopCustomers(b *strings.Builder, valid []types.Transaction, n int) {
	fmt.Fprintf(b, "Top %d Customers by Spend\n%s\n", n, thinRule)
	fmt.Fprintf(b, "  %-12s %18s %8s %10s %14s\n",
		"Customer", "Total Spent", "Orders", "Products", "Avg Order")
	customers := analytics.CustomerAnalysis(valid)
	if len(customers) > n {
		customers = customers[:n]
	}
	for _, stat := range customers {
		fmt.Fprintf(b, "  %-12s %18s %8d %10d %14s\n",
			stat.CustomerID, Money(stat.TotalSpent), stat.Orders,
			stat.UniqueProducts, Money(stat.AvgOrderValue))
	}
	b.WriteString("\n")
}

func writeDailyTrend(b *strings.Builder, valid []types.Transaction, rows int) {
	fmt.Fprintf(b, "Daily Sales Trend (first %d days)\n%s\n", rows, thinRule)
	fmt.Fprintf(b, "  %-12s %18s %8s %12s\n", "Date", "Revenue", "Txns", "Customers")
	trend := analytics.DailyTrend(valid)
	if len(trend) > rows {
		trend = trend[:rows]
	}
	for _, day := range trend {
		fmt.Fprintf(b, "  %-12s %18s %8d %12d\n",
			day.Date, Money(day.Revenue), day.Count, day.UniqueCustomers)
	}
	b.WriteString("\n")
}

func writeProductPerformance(b *strings.Builder, valid []types.Transaction, threshold int) {
	fmt.Fprintf(b, "Product Performance\n%s\n", thinRule)

	if peak, ok := analytics.PeakDay(valid); ok {
		fmt.Fprintf(b, "  Peak Sales Day      : %s (%s, %d transactions)\n",
			peak.Date, Money(peak.Revenue), peak.Count)
	} else {
		fmt.Fprintf(b, "  Peak Sales Day      : n/a\n")
	}

	low := analytics.LowPerformers(valid, threshold)
	fmt.Fprintf(b, "  Low Performers (<%d) : %d product(s)\n\n", threshold, len(low))
}

func writeEnrichmentSummary(b *strings.Builder, enriched []types.EnrichedTransaction) {
	withManager := 0
	for _, txn := range enriched {
		if txn.ManagerKnown {
			withManager++
		}
	}

	coverage := decimal.Zero
	if len(enriched) > 0 {
		coverage = decimal.NewFromInt(int64(withManager)).
			Div(decimal.NewFromInt(int64(len(enriched)))).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	fmt.Fprintf(b, "Enrichment Summary\n%s\n", thinRule)
	fmt.Fprintf(b, "  Managers Assigned   : %d of %d (%s)\n\n",
		withManager, len(enriched), Percent(coverage))
}

// dateRange returns "earliest - latest" over the valid set, or "n/a" when
// the set is empty. Dates are fixed-format strings, so string comparison is
// chronological.
func dateRange(valid []types.Transaction) string {
	if len(valid) == 0 {
		return "n/a"
	}

	earliest, latest := valid[0].Date, valid[0].Date
	for _, txn := range valid[1:] {
		if txn.Date < earliest {
			earliest = txn.Date
		}
		if txn.Date > latest {
			latest = txn.Date
		}
	}
	return earliest + " - " + latest
}

// centerLine centers a title within the report rule width.
func centerLine(s string) string {
	pad := (len(rule) - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// clip truncates a cell value to the column width.
func clip(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
