// =============================================================================
// Sales Analytics - Analytics Engine
// =============================================================================
//
// Pure aggregation functions over the valid transaction set. Every function
// takes the valid slice as its sole required input, never mutates it, and is
// deterministic: grouped results keep first-encounter insertion order, and
// every sort pass is stable, so ties resolve to encounter order.
//
// Monetary accumulation happens at full precision; rounding to 2 decimals is
// applied only where a result field specifies it.
//
// =============================================================================

package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// Default ranking parameters.
const (
	DefaultTopN         = 5
	DefaultLowThreshold = 10
)

var hundred = decimal.NewFromInt(100)

// TotalRevenue returns the sum of Amount over all transactions.
func TotalRevenue(transactions []types.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		total = total.Add(txn.Amount())
	}
	return total
}

// RegionSales groups transactions by region and returns per-region totals,
// counts and revenue share, ordered by total sales descending. Ties keep the
// order in which the regions were first encountered. When overall revenue is
// zero every share is zero.
func RegionSales(transactions []types.Transaction) []RegionStat {
	index := make(map[string]int)
	var stats []RegionStat

	for _, txn := range transactions {
		i, ok := index[txn.Region]
		if !ok {
			i = len(stats)
			index[txn.Region] = i
			stats = append(stats, RegionStat{Region: txn.Region, Total: decimal.Zero})
		}
		stats[i].Total = stats[i].Total.Add(txn.Amount())
		stats[i].Count++
	}

	overall := TotalRevenue(transactions)
	for i := range stats {
		if overall.IsZero() {
			stats[i].Percent = decimal.Zero
			continue
		}
		stats[i].Percent = stats[i].Total.Div(overall).Mul(hundred).Round(2)
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].Total.GreaterThan(stats[b].Total)
	})

	return stats
}

// DailyTrend groups transactions by date and returns revenue, transaction
// count and distinct-customer cardinality per date, ordered by date
// ascending.
func DailyTrend(transactions []types.Transaction) []DailyStat {
	index := make(map[string]int)
	customers := make(map[string]map[string]struct{})
	var stats []DailyStat

	for _, txn := range transactions {
		i, ok := index[txn.Date]
		if !ok {
			i = len(stats)
			index[txn.Date] = i
			customers[txn.Date] = make(map[string]struct{})
			stats = append(stats, DailyStat{Date: txn.Date, Revenue: decimal.Zero})
		}
		stats[i].Revenue = stats[i].Revenue.Add(txn.Amount())
		stats[i].Count++
		customers[txn.Date][txn.CustomerID] = struct{}{}
	}

	for i := range stats {
		stats[i].UniqueCustomers = len(customers[stats[i].Date])
	}

	// Dates are fixed-width ISO strings, so lexicographic is chronological.
	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].Date < stats[b].Date
	})

	return stats
}

// PeakDay returns the date with the maximum revenue in the daily trend.
// When several dates share the maximum the earliest date wins. The boolean
// is false when there are no transactions; callers must not use the stat in
// that case.
func PeakDay(transactions []types.Transaction) (DailyStat, bool) {
	trend := DailyTrend(transactions)
	if len(trend) == 0 {
		return DailyStat{}, false
	}

	peak := trend[0]
	for _, day := range trend[1:] {
		if day.Revenue.GreaterThan(peak.Revenue) {
			peak = day
		}
	}
	return peak, true
}

// TopProducts groups transactions by product name and returns the top n
// products ranked by total quantity descending, ties broken by encounter
// order. A non-positive n selects the default of 5.
func TopProducts(transactions []types.Transaction, n int) []ProductStat {
	if n <= 0 {
		n = DefaultTopN
	}

	stats := productStats(transactions)

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].Quantity > stats[b].Quantity
	})

	if len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// LowPerformers returns products whose total quantity sold is strictly below
// the threshold, sorted ascending by quantity. Revenue for each low performer
// is recomputed by re-scanning the transactions matching that product name.
// A non-positive threshold selects the default of 10.
func LowPerformers(transactions []types.Transaction, threshold int) []ProductStat {
	if threshold <= 0 {
		threshold = DefaultLowThreshold
	}

	var low []ProductStat
	for _, stat := range productStats(transactions) {
		if stat.Quantity >= threshold {
			continue
		}

		revenue := decimal.Zero
		for _, txn := range transactions {
			if txn.ProductName == stat.Name {
				revenue = revenue.Add(txn.Amount())
			}
		}

		low = append(low, ProductStat{
			Name:     stat.Name,
			Quantity: stat.Quantity,
			Revenue:  revenue,
		})
	}

	sort.SliceStable(low, func(a, b int) bool {
		return low[a].Quantity < low[b].Quantity
	})

	return low
}

// CustomerAnalysis groups transactions by customer and returns total spend,
// order count, distinct products purchased and average order value, ordered
// by total spend descending.
func CustomerAnalysis(transactions []types.Transaction) []CustomerStat {
	index := make(map[string]int)
	products := make(map[string]map[string]struct{})
	var stats []CustomerStat

	for _, txn := range transactions {
		i, ok := index[txn.CustomerID]
		if !ok {
			i = len(stats)
			index[txn.CustomerID] = i
			products[txn.CustomerID] = make(map[string]struct{})
			stats = append(stats, CustomerStat{CustomerID: txn.CustomerID, TotalSpent: decimal.Zero})
		}
		stats[i].TotalSpent = stats[i].TotalSpent.Add(txn.Amount())
		stats[i].Orders++
		products[txn.CustomerID][txn.ProductName] = struct{}{}
	}

	for i := range stats {
		stats[i].UniqueProducts = len(products[stats[i].CustomerID])
		stats[i].AvgOrderValue = stats[i].TotalSpent.
			Div(decimal.NewFromInt(int64(stats[i].Orders))).
			Round(2)
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].TotalSpent.GreaterThan(stats[b].TotalSpent)
	})

	return stats
}

// productStats builds per-product quantity and revenue aggregates in
// first-encounter order.
func productStats(transactions []types.Transaction) []ProductStat {
	index := make(map[string]int)
	var stats []ProductStat

	for _, txn := range transactions {
		i, ok := index[txn.ProductName]
		if !ok {
			i = len(stats)
			index[txn.ProductName] = i
			stats = append(stats, ProductStat{Name: txn.ProductName, Revenue: decimal.Zero})
		}
		stats[i].Quantity += txn.Quantity
		stats[i].Revenue = stats[i].Revenue.Add(txn.Amount())
	}

	return stats
}
