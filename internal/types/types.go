// =============================================================================
// Sales Analytics - Shared Types
// =============================================================================
//
// This package contains shared domain types used across multiple modules to
// avoid import cycles. Types defined here are used by:
//   - salesparser
//   - validation
//   - analytics
//   - enrichment
//   - report
//
// =============================================================================

package types

import "github.com/shopspring/decimal"

// Transaction represents a single cleaned sales transaction parsed from the
// pipe-delimited input file. Field order mirrors the 8-field record layout.
type Transaction struct {
	// TransactionID is the record identifier. Valid IDs start with "T".
	TransactionID string

	// Date is the transaction date in fixed-width ISO form (YYYY-MM-DD).
	// The fixed format makes dates sortable lexicographically.
	Date string

	// ProductID is the product identifier. Valid IDs start with "P".
	ProductID string

	// ProductName is the product display name. Commas in the source value
	// are normalized to spaces during parsing.
	ProductName string

	// Quantity is the number of units sold. Must be > 0 to be valid.
	Quantity int

	// UnitPrice is the per-unit price. Thousands separators are stripped
	// during parsing. Must be > 0 to be valid.
	UnitPrice decimal.Decimal

	// CustomerID is the customer identifier. Valid IDs start with "C".
	CustomerID string

	// Region is the sales region (open set: North, South, East, West, ...).
	Region string
}

// Amount returns the derived transaction value (Quantity x UnitPrice).
// It is computed on demand and never stored on the record.
func (t Transaction) Amount() decimal.Decimal {
	return decimal.NewFromInt(int64(t.Quantity)).Mul(t.UnitPrice)
}

// EnrichedTransaction is a Transaction augmented with converted monetary
// values and a region-manager label. The base fields are embedded unchanged;
// enrichment is additive only.
type EnrichedTransaction struct {
	Transaction

	// ConvertedUnitPrice is UnitPrice x exchange rate, rounded to 2 decimals.
	ConvertedUnitPrice decimal.Decimal

	// ConvertedAmount is Quantity x ConvertedUnitPrice, rounded to 2 decimals.
	ConvertedAmount decimal.Decimal

	// Manager is the region manager's name, or "Unknown" when the region is
	// absent from the reference mapping.
	Manager string

	// ManagerKnown reports whether the region resolved to a real manager.
	// It is false exactly when Manager is the "Unknown" placeholder.
	ManagerKnown bool
}
