// =============================================================================
// Sales Analytics - Validation and Filtering Module
// =============================================================================
//
// This module applies business-rule validation and the optional user-supplied
// filters to parsed transactions.
//
// BUSINESS RULES (a record is valid iff all hold):
//   - TransactionID starts with "T"
//   - ProductID starts with "P"
//   - CustomerID starts with "C"
//   - Quantity > 0
//   - UnitPrice > 0
//
// The numeric rules intentionally duplicate a subset of the parser's
// guarantees: a record can parse cleanly yet still carry a zero quantity or a
// bad ID prefix.
//
// CLASSIFICATION ORDER:
//   invalid -> region filter -> amount filter. Each rejected record is
//   counted exactly once, under the first reason that applies.
//
// =============================================================================

package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// Required ID prefixes for a business-valid record.
const (
	TransactionIDPrefix = "T"
	ProductIDPrefix     = "P"
	CustomerIDPrefix    = "C"
)

// FilterOptions holds the optional user-supplied filters. A nil bound means
// the bound is absent; a present zero bound is honored.
type FilterOptions struct {
	// Region, when non-empty, keeps only transactions whose Region matches
	// exactly.
	Region string

	// MinAmount, when set, drops transactions whose amount is below it.
	MinAmount *decimal.Decimal

	// MaxAmount, when set, drops transactions whose amount is above it.
	MaxAmount *decimal.Decimal
}

// FilterSummary is the per-run accounting of validation and filtering.
type FilterSummary struct {
	// TotalInput is the number of parsed transactions offered.
	TotalInput int

	// Invalid is the number of records failing the business rules.
	Invalid int

	// FilteredByRegion is the number of valid records dropped by the region
	// filter.
	FilteredByRegion int

	// FilteredByAmount is the number of valid records dropped by the amount
	// range filter.
	FilteredByAmount int

	// FinalCount is the number of records that survived.
	FinalCount int
}

// IsValid reports whether a transaction satisfies the business rules.
func IsValid(t types.Transaction) bool {
	return strings.HasPrefix(t.TransactionID, TransactionIDPrefix) &&
		strings.HasPrefix(t.ProductID, ProductIDPrefix) &&
		strings.HasPrefix(t.CustomerID, CustomerIDPrefix) &&
		t.Quantity > 0 &&
		t.UnitPrice.IsPositive()
}

// ValidateAndFilter applies the business rules and optional filters. The
// returned slice preserves input order. The input is never mutated.
func ValidateAndFilter(transactions []types.Transaction, opts FilterOptions) ([]types.Transaction, FilterSummary) {
	summary := FilterSummary{TotalInput: len(transactions)}
	valid := make([]types.Transaction, 0, len(transactions))

	for _, txn := range transactions {
		if !IsValid(txn) {
			summary.Invalid++
			continue
		}

		if opts.Region != "" && txn.Region != opts.Region {
			summary.FilteredByRegion++
			continue
		}

		if outsideAmountRange(txn.Amount(), opts) {
			summary.FilteredByAmount++
			continue
		}

		valid = append(valid, txn)
	}

	summary.FinalCount = len(valid)
	return valid, summary
}

// outsideAmountRange reports whether the amount violates a present bound.
func outsideAmountRange(amount decimal.Decimal, opts FilterOptions) bool {
	if opts.MinAmount != nil && amount.LessThan(*opts.MinAmount) {
		return true
	}
	if opts.MaxAmount != nil && amount.GreaterThan(*opts.MaxAmount) {
		return true
	}
	return false
}
