// =============================================================================
// Sales Analytics - Record Parser
// =============================================================================
//
// This module turns raw pipe-delimited lines into typed Transaction records.
// The record layout is fixed: exactly 8 fields in the order
//
//   TransactionID | Date | ProductID | ProductName | Quantity | UnitPrice | CustomerID | Region
//
// Malformed lines are data, not errors: a line with the wrong field count or
// an unparseable numeric field is dropped with a reason code and counted in
// ParseStats. No partial record is ever emitted and nothing at this stage
// halts the run.
//
// CLEANING RULES:
//   - Thousands separators (commas) are stripped from Quantity and UnitPrice
//     before numeric conversion ("1,916" -> 1916).
//   - Commas embedded in ProductName are replaced with spaces
//     ("Laptop,Premium" -> "Laptop Premium").
//
// =============================================================================

package salesparser

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// FieldCount is the number of fields every record must have.
const FieldCount = 8

// DropReason explains why a line was rejected by the parser.
type DropReason int

const (
	// DropNone marks a successfully parsed line.
	DropNone DropReason = iota

	// DropFieldCount marks a line that did not split into exactly 8 fields.
	DropFieldCount

	// DropBadNumber marks a line whose Quantity or UnitPrice did not convert.
	DropBadNumber
)

// String returns a short reason code for logs.
func (r DropReason) String() string {
	switch r {
	case DropNone:
		return "none"
	case DropFieldCount:
		return "bad_field_count"
	case DropBadNumber:
		return "bad_number"
	default:
		return "unknown"
	}
}

// ParseStats accumulates per-run parse accounting. Dropped lines appear only
// here; they are invisible downstream.
type ParseStats struct {
	// TotalLines is the number of data lines offered to the parser.
	TotalLines int

	// Parsed is the number of lines that produced a Transaction.
	Parsed int

	// BadFieldCount is the number of lines dropped for a wrong field count.
	BadFieldCount int

	// BadNumber is the number of lines dropped for unparseable numerics.
	BadNumber int
}

// Dropped returns the total number of rejected lines.
func (s ParseStats) Dropped() int {
	return s.BadFieldCount + s.BadNumber
}

// ParseLines parses raw data lines into Transaction records. Output order
// matches input order, minus drops.
func ParseLines(lines []string) ([]types.Transaction, ParseStats) {
	stats := ParseStats{TotalLines: len(lines)}
	transactions := make([]types.Transaction, 0, len(lines))

	for _, line := range lines {
		txn, reason := ParseLine(line)
		switch reason {
		case DropNone:
			stats.Parsed++
			transactions = append(transactions, txn)
		case DropFieldCount:
			stats.BadFieldCount++
		case DropBadNumber:
			stats.BadNumber++
		}
	}

	return transactions, stats
}

// ParseLine parses a single pipe-delimited line. On rejection the returned
// DropReason is non-zero and the Transaction is the zero value.
func ParseLine(line string) (types.Transaction, DropReason) {
	fields := strings.Split(line, "|")
	if len(fields) != FieldCount {
		return types.Transaction{}, DropFieldCount
	}

	quantity, err := strconv.Atoi(stripCommas(fields[4]))
	if err != nil {
		return types.Transaction{}, DropBadNumber
	}

	unitPrice, err := decimal.NewFromString(stripCommas(fields[5]))
	if err != nil {
		return types.Transaction{}, DropBadNumber
	}

	return types.Transaction{
		TransactionID: fields[0],
		Date:          fields[1],
		ProductID:     fields[2],
		ProductName:   strings.ReplaceAll(fields[3], ",", " "),
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    fields[6],
		Region:        fields[7],
	}, DropNone
}

// stripCommas removes thousands separators and surrounding whitespace from a
// numeric field.
func stripCommas(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
}
