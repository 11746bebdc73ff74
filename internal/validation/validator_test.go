package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

func txn(id, product, customer, region string, quantity int, price string) types.Transaction {
	unitPrice, err := decimal.NewFromString(price)
	if err != nil {
		panic(err)
	}
	return types.Transaction{
		TransactionID: id,
		Date:          "2024-01-01",
		ProductID:     product,
		ProductName:   "Widget",
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    customer,
		Region:        region,
	}
}

func dec(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		txn   types.Transaction
		valid bool
	}{
		{"all rules pass", txn("T001", "P01", "C01", "North", 5, "10"), true},
		{"bad transaction prefix", txn("X001", "P01", "C01", "North", 5, "10"), false},
		{"bad product prefix", txn("T001", "Q01", "C01", "North", 5, "10"), false},
		{"bad customer prefix", txn("T001", "P01", "X01", "North", 5, "10"), false},
		{"zero quantity", txn("T001", "P01", "C01", "North", 0, "10"), false},
		{"negative quantity", txn("T001", "P01", "C01", "North", -2, "10"), false},
		{"zero price", txn("T001", "P01", "C01", "North", 5, "0"), false},
		{"negative price", txn("T001", "P01", "C01", "North", 5, "-1"), false},
		{"empty ids", types.Transaction{Quantity: 1, UnitPrice: decimal.NewFromInt(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValid(tt.txn))
		})
	}
}

func TestValidateAndFilter_InvalidCounted(t *testing.T) {
	input := []types.Transaction{
		txn("T001", "P01", "C01", "North", 5, "10"),
		txn("X001", "P01", "C01", "North", 5, "10"),
	}

	valid, summary := ValidateAndFilter(input, FilterOptions{})

	require.Len(t, valid, 1)
	assert.Equal(t, "T001", valid[0].TransactionID)
	assert.Equal(t, 2, summary.TotalInput)
	assert.Equal(t, 1, summary.Invalid)
	assert.Equal(t, 1, summary.FinalCount)
}

func TestValidateAndFilter_RegionFilter(t *testing.T) {
	input := []types.Transaction{
		txn("T001", "P01", "C01", "North", 5, "10"),
		txn("T002", "P02", "C02", "South", 2, "20"),
		txn("T003", "P03", "C03", "North", 1, "30"),
	}

	valid, summary := ValidateAndFilter(input, FilterOptions{Region: "North"})

	require.Len(t, valid, 2)
	assert.Equal(t, 1, summary.FilteredByRegion)
	assert.Zero(t, summary.Invalid)
	assert.Equal(t, 2, summary.FinalCount)
}

func TestValidateAndFilter_AmountRange(t *testing.T) {
	input := []types.Transaction{
		txn("T001", "P01", "C01", "North", 5, "10"),  // amount 50
		txn("T002", "P02", "C02", "North", 2, "200"), // amount 400
		txn("T003", "P03", "C03", "North", 1, "5"),   // amount 5
	}

	valid, summary := ValidateAndFilter(input, FilterOptions{
		MinAmount: dec("10"),
		MaxAmount: dec("100"),
	})

	require.Len(t, valid, 1)
	assert.Equal(t, "T001", valid[0].TransactionID)
	assert.Equal(t, 2, summary.FilteredByAmount)
}

func TestValidateAndFilter_ZeroBoundIsHonored(t *testing.T) {
	input := []types.Transaction{
		txn("T001", "P01", "C01", "North", 5, "10"),
	}

	// A present max of 0 drops every positive amount; a present min of 0
	// drops nothing.
	_, summary := ValidateAndFilter(input, FilterOptions{MaxAmount: dec("0")})
	assert.Equal(t, 1, summary.FilteredByAmount)

	valid, summary := ValidateAndFilter(input, FilterOptions{MinAmount: dec("0")})
	assert.Len(t, valid, 1)
	assert.Zero(t, summary.FilteredByAmount)
}

func TestValidateAndFilter_ClassificationOrder(t *testing.T) {
	// An invalid record in a filtered-out region counts as invalid only.
	input := []types.Transaction{
		txn("X001", "P01", "C01", "South", 5, "10"),
	}

	_, summary := ValidateAndFilter(input, FilterOptions{Region: "North"})

	assert.Equal(t, 1, summary.Invalid)
	assert.Zero(t, summary.FilteredByRegion)
	assert.Zero(t, summary.FinalCount)
}

func TestValidateAndFilter_OrderPreserved(t *testing.T) {
	input := []types.Transaction{
		txn("T003", "P01", "C01", "North", 1, "10"),
		txn("T001", "P01", "C01", "North", 1, "10"),
		txn("T002", "P01", "C01", "North", 1, "10"),
	}

	valid, _ := ValidateAndFilter(input, FilterOptions{})

	require.Len(t, valid, 3)
	assert.Equal(t, "T003", valid[0].TransactionID)
	assert.Equal(t, "T001", valid[1].TransactionID)
	assert.Equal(t, "T002", valid[2].TransactionID)
}
