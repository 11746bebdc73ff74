package enrichment

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/sales-analytics/internal/logger"
	"github.com/ginjaninja78/sales-analytics/internal/types"
)

var testLog = logger.NewWithWriter(io.Discard, "error")

// errorProvider simulates a completely unavailable provider.
type errorProvider struct{}

func (errorProvider) ExchangeRates(string) (map[string]decimal.Decimal, error) {
	return nil, errors.New("connection refused")
}

func (errorProvider) RegionManagers() (map[string]string, error) {
	return nil, errors.New("connection refused")
}

func txn(region string, quantity int, price string) types.Transaction {
	unitPrice, err := decimal.NewFromString(price)
	if err != nil {
		panic(err)
	}
	return types.Transaction{
		TransactionID: "T001",
		Date:          "2024-01-01",
		ProductID:     "P01",
		ProductName:   "Widget",
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    "C01",
		Region:        region,
	}
}

func TestHTTPProvider_ExchangeRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/latest/USD", r.URL.Path)
		w.Write([]byte(`{"base":"USD","rates":{"INR":84.5,"EUR":0.91}}`))
	}))
	defer server.Close()

	provider := NewHTTPProvider(server.URL, 0)
	rates, err := provider.ExchangeRates("USD")
	require.NoError(t, err)

	assert.Equal(t, "84.5", rates["INR"].String())
	assert.Equal(t, "0.91", rates["EUR"].String())
}

func TestHTTPProvider_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewHTTPProvider(server.URL, 0)
	_, err := provider.ExchangeRates("USD")
	assert.Error(t, err)
}

func TestWithFallback_DegradesToStatic(t *testing.T) {
	provider := WithFallback(errorProvider{}, NewStaticProvider(), testLog)

	rates, err := provider.ExchangeRates("USD")
	require.NoError(t, err)
	assert.Equal(t, "83", rates["INR"].String())

	managers, err := provider.RegionManagers()
	require.NoError(t, err)
	assert.Equal(t, "Amit Sharma", managers["North"])
}

func TestWithFallback_PrefersPrimary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":{"INR":90}}`))
	}))
	defer server.Close()

	provider := WithFallback(NewHTTPProvider(server.URL, 0), NewStaticProvider(), testLog)

	rates, err := provider.ExchangeRates("USD")
	require.NoError(t, err)
	assert.Equal(t, "90", rates["INR"].String())
}

func TestEnrich_ConvertsAndAttachesManager(t *testing.T) {
	enricher := NewEnricher(NewStaticProvider(), "USD", "INR", testLog)

	enriched, stats := enricher.Enrich([]types.Transaction{txn("North", 5, "10")})
	require.Len(t, enriched, 1)

	assert.Equal(t, "830.00", enriched[0].ConvertedUnitPrice.StringFixed(2))
	assert.Equal(t, "4150.00", enriched[0].ConvertedAmount.StringFixed(2))
	assert.Equal(t, "Amit Sharma", enriched[0].Manager)
	assert.True(t, enriched[0].ManagerKnown)

	// Base fields untouched.
	assert.Equal(t, "10", enriched[0].UnitPrice.String())
	assert.Equal(t, 5, enriched[0].Quantity)

	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.WithManager)
	assert.Equal(t, "83", stats.Rate.String())
}

func TestEnrich_RoundsAtBoundary(t *testing.T) {
	enricher := NewEnricher(NewStaticProvider(), "USD", "EUR", testLog)

	enriched, _ := enricher.Enrich([]types.Transaction{txn("South", 3, "9.99")})
	require.Len(t, enriched, 1)

	// 9.99 * 0.92 = 9.1908 -> 9.19; 3 * 9.19 = 27.57
	assert.Equal(t, "9.19", enriched[0].ConvertedUnitPrice.StringFixed(2))
	assert.Equal(t, "27.57", enriched[0].ConvertedAmount.StringFixed(2))
}

func TestEnrich_UnknownRegion(t *testing.T) {
	enricher := NewEnricher(NewStaticProvider(), "USD", "INR", testLog)

	enriched, stats := enricher.Enrich([]types.Transaction{txn("Central", 1, "10")})
	require.Len(t, enriched, 1)

	assert.Equal(t, UnknownManager, enriched[0].Manager)
	assert.False(t, enriched[0].ManagerKnown)
	assert.Zero(t, stats.WithManager)
}

func TestEnrich_UnknownCurrencyUsesRateOne(t *testing.T) {
	enricher := NewEnricher(NewStaticProvider(), "USD", "JPY", testLog)

	enriched, stats := enricher.Enrich([]types.Transaction{txn("North", 2, "10")})
	require.Len(t, enriched, 1)

	assert.Equal(t, "10.00", enriched[0].ConvertedUnitPrice.StringFixed(2))
	assert.Equal(t, "1", stats.Rate.String())
}

func TestEnrich_ProviderOutageStillSucceeds(t *testing.T) {
	// Even a provider that fails outright must not stop enrichment.
	enricher := NewEnricher(errorProvider{}, "USD", "INR", testLog)

	enriched, stats := enricher.Enrich([]types.Transaction{txn("North", 5, "10")})
	require.Len(t, enriched, 1)

	assert.Equal(t, "83", stats.Rate.String())
	assert.Equal(t, "830.00", enriched[0].ConvertedUnitPrice.StringFixed(2))
	assert.Equal(t, "Amit Sharma", enriched[0].Manager)
}

func TestEnrich_EmptyInput(t *testing.T) {
	enricher := NewEnricher(NewStaticProvider(), "USD", "INR", testLog)

	enriched, stats := enricher.Enrich(nil)
	assert.Empty(t, enriched)
	assert.Zero(t, stats.Total)
}
