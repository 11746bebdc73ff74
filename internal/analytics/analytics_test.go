package analytics

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

func txn(id, date, product, customer, region string, quantity int, price string) types.Transaction {
	unitPrice, err := decimal.NewFromString(price)
	if err != nil {
		panic(err)
	}
	return types.Transaction{
		TransactionID: id,
		Date:          date,
		ProductID:     "P-" + product,
		ProductName:   product,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    customer,
		Region:        region,
	}
}

func TestTotalRevenue(t *testing.T) {
	input := []types.Transaction{
		txn("T001", "2024-01-01", "Widget", "C01", "North", 5, "10"),
		txn("T002", "2024-01-02", "Monitor", "C02", "South", 2, "150"),
	}

	assert.Equal(t, "350", TotalRevenue(input).String())
	assert.True(t, TotalRevenue(nil).IsZero())
}

func TestRegionSales_OrderingAndShares(t *testing.T) {
	input := []types.Transaction{
		txn("T001", "2024-01-01", "Widget", "C01", "North", 10, "10"),  // 100
		txn("T002", "2024-01-02", "Monitor", "C02", "South", 2, "100"), // 200
		txn("T003", "2024-01-03", "Cable", "C03", "South", 1, "100"),   // 100
	}

	stats := RegionSales(input)
	require.Len(t, stats, 2)

	assert.Equal(t, "South", stats[0].Region)
	assert.Equal(t, "300", stats[0].Total.String())
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, "75.00", stats[0].Percent.StringFixed(2))

	assert.Equal(t, "North", stats[1].Region)
	assert.Equal(t, "100", stats[1].Total.String())
	assert.Equal(t, "25.00", stats[1].Percent.StringFixed(2))
}

func TestRegionSales_TotalsAndSharesReconcile(t *testing.T) {
	input := []types.Transaction{
		txn("T001", "2024-01-01", "Widget", "C01", "North", 3, "33.33"),
		txn("T002", "2024-01-02", "Monitor", "C02", "South", 7, "19.99"),
		txn("T003", "2024-01-03", "Cable", "C03", "East", 2, "5.75"),
	}

	stats := RegionSales(input)

	sum := decimal.Zero
	shares := decimal.Zero
	for _, stat := range stats {
		sum = sum.Add(stat.Total)
		shares = shares.Add(stat.Percent)
	}

	assert.True(t, sum.Equal(TotalRevenue(input)))
	// Shares sum to ~100 within rounding tolerance.
	diff := shares.Sub(decimal.NewFromInt(100)).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.02)), "shares sum %s", shares)
}

func TestRegionSales_TiesKeepEncounterOrder(t *testing.T) {
	input := []types.Transaction{
		txn("T001", "2024-01-01", "Widget", "C01", "West", 1, "50"),
		txn("T002", "2024-01-02", "Monitor", "C02", "East", 1, "50"),
	}

	stats := RegionSales(input)
	require.Len(t, stats, 2)
	assert.Equal(t, "West", stats[0].Region)
	assert.Equal(t, "East", stats[1].Region)
}

func TestDailyTrend(t *testing.T) {
	input := []types.Transaction{
		txn("T001", "2024-01-02", "Widget", "C01", "North", 1, "10"),
		txn("T002", "2024-01-01", "Monitor", "C02", "South", 1, "20"),
		txn("T003", "2024-01-02", "Cable", "C01", "East", 2, "5"),
		txn("T004", "2024-01-02", "Mouse", "C03", "West", 1, "15"),
	}

	trend := DailyTrend(input)
	require.Len(t, trend, 2)

	assert.Equal(t, "2024-01-01", trend[0].Date)
	assert.Equal(t, 1, trend[0].Count)
	assert.Equal(t, 1, trend[0].UniqueCustomers)

	assert.Equal(t, "2024-01-02", trend[1].Date)
	assert.Equal(t, "35", trend[1].Revenue.String())
	assert.Equal(t, 3, trend[1].Count)
	assert.Equal(t, 2, trend[1].UniqueCustomers)

	assert.True(t, sort.SliceIsSorted(trend, func(a, b int) bool {
		return trend[a].Date < trend[b].Date
	}))
}

func TestPeakDay(t *testing.T) {
	input := []types.Transaction{
		txn("T001", "2024-01-03", "Widget", "C01", "North", 1, "100"),
		txn("T002", "2024-01-01", "Monitor", "C02", "South", 1, "100"),
		txn("T003", "2024-01-02", "Cable", "C03", "East", 1, "40"),
	}

	// 2024-01-01 and 2024-01-03 tie at 100; earliest wins.
	peak, ok := PeakDay(input)
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", peak.Date)
	assert.Equal(t, "100", peak.Revenue.String())
}

func TestPeakDay_Empty(t *testing.T) {
	_, ok := PeakDay(nil)
	assert.False(t, ok)
}

func TestTopProducts(t *testing.T) {
	input := []types.Transaction{
		txn("T001", "2024-01-01", "Widget", "C01", "North", 3, "10"),
		txn("T002", "2024-01-01", "Monitor", "C02", "South", 8, "100"),
		txn("T003", "2024-01-02", "Widget", "C03", "East", 4, "10"),
		txn("T004", "2024-01-02", "Cable", "C04", "West", 2, "5"),
	}

	top := TopProducts(input, 2)
	require.Len(t, top, 2)

	assert.Equal(t, "Monitor", top[0].Name)
	assert.Equal(t, 8, top[0].Quantity)
	assert.Equal(t, "800", top[0].Revenue.String())

	assert.Equal(t, "Widget", top[1].Name)
	assert.Equal(t, 7, top[1].Quantity)
	assert.Equal(t, "70", top[1].Revenue.String())
}

func TestTopProducts_TieKeepsEncounterOrder(t *testing.T) {
	input := []types.Transaction{
		txn("T001", "2024-01-01", "Alpha", "C01", "North", 5, "1"),
		txn("T002", "2024-01-01", "Beta", "C02", "North", 5, "1"),
	}

	top := TopProducts(input, 0) // default N
	require.Len(t, top, 2)
	assert.Equal(t, "Alpha", top[0].Name)
	assert.Equal(t, "Beta", top[1].Name)
}

func TestLowPerformers(t *testing.T) {
	input := []types.Transaction{
		txn("T001", "2024-01-01", "Widget", "C01", "North", 15, "10"),
		txn("T002", "2024-01-01", "Cable", "C02", "South", 4, "5"),
		txn("T003", "2024-01-02", "Cable", "C03", "East", 3, "5"),
		txn("T004", "2024-01-02", "Mouse", "C04", "West", 2, "25"),
	}

	low := LowPerformers(input, 10)
	require.Len(t, low, 2)

	// Ascending by quantity: Mouse (2) before Cable (7).
	assert.Equal(t, "Mouse", low[0].Name)
	assert.Equal(t, 2, low[0].Quantity)
	assert.Equal(t, "50", low[0].Revenue.String())

	assert.Equal(t, "Cable", low[1].Name)
	assert.Equal(t, 7, low[1].Quantity)
	assert.Equal(t, "35", low[1].Revenue.String())
}

func TestLowPerformers_ThresholdIsStrict(t *testing.T) {
	input := []types.Transaction{
		txn("T001", "2024-01-01", "Widget", "C01", "North", 10, "10"),
	}

	assert.Empty(t, LowPerformers(input, 10))
}

func TestCustomerAnalysis(t *testing.T) {
	input := []types.Transaction{
		txn("T001", "2024-01-01", "Widget", "C01", "North", 1, "10"),
		txn("T002", "2024-01-01", "Monitor", "C02", "South", 1, "500"),
		txn("T003", "2024-01-02", "Cable", "C01", "East", 1, "5"),
		txn("T004", "2024-01-03", "Widget", "C01", "North", 2, "10"),
	}

	stats := CustomerAnalysis(input)
	require.Len(t, stats, 2)

	assert.Equal(t, "C02", stats[0].CustomerID)
	assert.Equal(t, "500", stats[0].TotalSpent.String())

	assert.Equal(t, "C01", stats[1].CustomerID)
	assert.Equal(t, "35", stats[1].TotalSpent.String())
	assert.Equal(t, 3, stats[1].Orders)
	assert.Equal(t, 2, stats[1].UniqueProducts)
	assert.Equal(t, "11.67", stats[1].AvgOrderValue.StringFixed(2))
}

func TestAggregations_EmptyInput(t *testing.T) {
	assert.Empty(t, RegionSales(nil))
	assert.Empty(t, DailyTrend(nil))
	assert.Empty(t, TopProducts(nil, 5))
	assert.Empty(t, LowPerformers(nil, 10))
	assert.Empty(t, CustomerAnalysis(nil))
}
