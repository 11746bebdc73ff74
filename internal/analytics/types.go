// =============================================================================
// Sales Analytics - Aggregation Result Types
// =============================================================================

package analytics

import "github.com/shopspring/decimal"

// RegionStat is the aggregate for a single sales region.
type RegionStat struct {
	// Region is the region name.
	Region string

	// Total is the summed transaction amount for the region, full precision.
	Total decimal.Decimal

	// Count is the number of transactions in the region.
	Count int

	// Percent is the region's share of overall revenue, rounded to 2
	// decimals. Zero when overall revenue is zero.
	Percent decimal.Decimal
}

// DailyStat is the aggregate for a single calendar date.
type DailyStat struct {
	// Date is the fixed-format date string (sortable lexicographically).
	Date string

	// Revenue is the summed transaction amount for the date, full precision.
	Revenue decimal.Decimal

	// Count is the number of transactions on the date.
	Count int

	// UniqueCustomers is the number of distinct CustomerIDs seen on the date.
	UniqueCustomers int
}

// ProductStat is the aggregate for a single product name.
type ProductStat struct {
	// Name is the (normalized) product name.
	Name string

	// Quantity is the total number of units sold.
	Quantity int

	// Revenue is the total revenue for the product, full precision.
	Revenue decimal.Decimal
}

// CustomerStat is the aggregate for a single customer.
type CustomerStat struct {
	// CustomerID is the customer identifier.
	CustomerID string

	// TotalSpent is the summed transaction amount, full precision.
	TotalSpent decimal.Decimal

	// Orders is the number of transactions.
	Orders int

	// UniqueProducts is the number of distinct product names purchased.
	UniqueProducts int

	// AvgOrderValue is TotalSpent / Orders, rounded to 2 decimals.
	AvgOrderValue decimal.Decimal
}
