// =============================================================================
// Sales Analytics - Enrichment Stage
// =============================================================================
//
// For every valid transaction this stage computes the converted unit price
// and converted total amount for the target currency and attaches the region
// manager's name. Enrichment is additive: base fields are embedded unchanged.
//
// The stage cannot fail. Provider errors degrade to the static fallback
// dataset, an unknown target currency degrades to a conversion rate of 1,
// and an unmapped region yields the "Unknown" manager label.
//
// =============================================================================

package enrichment

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// UnknownManager is the label attached when a region has no manager mapping.
const UnknownManager = "Unknown"

// Stats summarizes an enrichment pass.
type Stats struct {
	// Total is the number of transactions enriched.
	Total int

	// WithManager is the number of transactions that resolved to a real
	// manager (Manager != "Unknown").
	WithManager int

	// Currency is the target currency code used for conversion.
	Currency string

	// Rate is the conversion rate that was applied.
	Rate decimal.Decimal
}

// Enricher runs the enrichment pass against a reference-data provider.
type Enricher struct {
	provider     Provider
	baseCurrency string
	currency     string
	log          zerolog.Logger
}

// NewEnricher creates an enricher converting from the base currency into the
// target currency.
func NewEnricher(provider Provider, baseCurrency, targetCurrency string, log zerolog.Logger) *Enricher {
	return &Enricher{
		provider:     provider,
		baseCurrency: baseCurrency,
		currency:     targetCurrency,
		log:          log,
	}
}

// Enrich augments every transaction with converted amounts and the region
// manager label. The input slice is never mutated.
func (e *Enricher) Enrich(transactions []types.Transaction) ([]types.EnrichedTransaction, Stats) {
	rate := e.resolveRate()
	managers := e.resolveManagers()

	stats := Stats{Total: len(transactions), Currency: e.currency, Rate: rate}
	enriched := make([]types.EnrichedTransaction, 0, len(transactions))

	for _, txn := range transactions {
		manager, known := managers[txn.Region]
		if !known {
			manager = UnknownManager
		} else {
			stats.WithManager++
		}

		convertedUnit := txn.UnitPrice.Mul(rate).Round(2)
		enriched = append(enriched, types.EnrichedTransaction{
			Transaction:        txn,
			ConvertedUnitPrice: convertedUnit,
			ConvertedAmount:    decimal.NewFromInt(int64(txn.Quantity)).Mul(convertedUnit).Round(2),
			Manager:            manager,
			ManagerKnown:       known,
		})
	}

	return enriched, stats
}

// resolveRate looks up the target currency's rate. Provider failure falls
// back to the static table; an unknown currency falls back to a rate of 1.
func (e *Enricher) resolveRate() decimal.Decimal {
	rates, err := e.provider.ExchangeRates(e.baseCurrency)
	if err != nil {
		e.log.Warn().Err(err).Msg("exchange rates unavailable, using static fallback table")
		rates = FallbackRates
	}

	rate, ok := rates[e.currency]
	if !ok {
		e.log.Warn().
			Str("currency", e.currency).
			Msg("target currency missing from rate table, using rate 1.0")
		return decimal.NewFromInt(1)
	}
	return rate
}

// resolveManagers fetches the region-manager table, degrading to the static
// table on provider failure.
func (e *Enricher) resolveManagers() map[string]string {
	managers, err := e.provider.RegionManagers()
	if err != nil {
		e.log.Warn().Err(err).Msg("region managers unavailable, using static fallback table")
		return FallbackManagers
	}
	return managers
}
