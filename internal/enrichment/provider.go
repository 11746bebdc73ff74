// =============================================================================
// Sales Analytics - Reference Data Providers
// =============================================================================
//
// The enrichment stage needs two external lookups: exchange rates keyed by
// currency code and a region -> manager mapping. Both are modeled behind the
// Provider interface so the stage is agnostic to what backs it:
//
//   - HTTPProvider  : live exchange-rate API with a short timeout
//   - StaticProvider: the built-in fallback dataset
//   - WithFallback  : wraps a primary with a fallback, degrading on any error
//
// The pipeline always wraps the live provider with the static one, so
// enrichment succeeds even when the network is completely unavailable.
//
// =============================================================================

package enrichment

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Provider supplies the reference data consumed by the enrichment stage.
type Provider interface {
	// ExchangeRates returns a currency-code -> rate mapping relative to the
	// base currency.
	ExchangeRates(baseCurrency string) (map[string]decimal.Decimal, error)

	// RegionManagers returns a region -> manager-name mapping.
	RegionManagers() (map[string]string, error)
}

// FallbackRates is the static rate table used when the live provider is
// unavailable.
var FallbackRates = map[string]decimal.Decimal{
	"INR": decimal.NewFromFloat(83.0),
	"EUR": decimal.NewFromFloat(0.92),
	"GBP": decimal.NewFromFloat(0.79),
}

// FallbackManagers is the static region-manager table.
var FallbackManagers = map[string]string{
	"North": "Amit Sharma",
	"South": "Priya Mani",
	"East":  "Rajesh Gupta",
	"West":  "Sneha Patil",
}

// =============================================================================
// HTTP PROVIDER
// =============================================================================

// HTTPProvider fetches live exchange rates from the exchange-rate API.
// Region managers are a fixed upstream dataset and are served locally.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider creates a live provider against the given base URL.
// The timeout bounds the whole call; there are no retries.
func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// ratesResponse mirrors the provider payload; only the rates block is used.
type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// ExchangeRates calls GET <base>/v4/latest/<baseCurrency> and returns the
// decoded rate table.
func (p *HTTPProvider) ExchangeRates(baseCurrency string) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/v4/latest/%s", p.baseURL, baseCurrency)

	resp, err := p.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exchange rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exchange rate API returned status %d", resp.StatusCode)
	}

	var payload ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode exchange rate payload: %w", err)
	}

	rates := make(map[string]decimal.Decimal, len(payload.Rates))
	for code, rate := range payload.Rates {
		rates[code] = decimal.NewFromFloat(rate)
	}
	return rates, nil
}

// RegionManagers returns the region-manager reference table.
func (p *HTTPProvider) RegionManagers() (map[string]string, error) {
	return copyManagers(FallbackManagers), nil
}

// =============================================================================
// STATIC PROVIDER
// =============================================================================

// StaticProvider serves the built-in fallback dataset. It never fails.
type StaticProvider struct{}

// NewStaticProvider creates the fallback provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// ExchangeRates returns the static rate table. The base currency is ignored;
// the fallback rates are quoted against USD.
func (p *StaticProvider) ExchangeRates(baseCurrency string) (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal, len(FallbackRates))
	for code, rate := range FallbackRates {
		rates[code] = rate
	}
	return rates, nil
}

// RegionManagers returns the static manager table.
func (p *StaticProvider) RegionManagers() (map[string]string, error) {
	return copyManagers(FallbackManagers), nil
}

// =============================================================================
// FALLBACK WRAPPER
// =============================================================================

// fallbackProvider tries the primary and degrades to the fallback on any
// error. Degradation is logged, never propagated.
type fallbackProvider struct {
	primary  Provider
	fallback Provider
	log      zerolog.Logger
}

// WithFallback wraps a primary provider with a fallback. Every lookup that
// fails against the primary is retried once against the fallback; the
// fallback's own error (if any) is the one returned.
func WithFallback(primary, fallback Provider, log zerolog.Logger) Provider {
	return &fallbackProvider{primary: primary, fallback: fallback, log: log}
}

func (p *fallbackProvider) ExchangeRates(baseCurrency string) (map[string]decimal.Decimal, error) {
	rates, err := p.primary.ExchangeRates(baseCurrency)
	if err != nil {
		p.log.Warn().Err(err).Msg("exchange rate provider unavailable, using fallback rates")
		return p.fallback.ExchangeRates(baseCurrency)
	}
	return rates, nil
}

func (p *fallbackProvider) RegionManagers() (map[string]string, error) {
	managers, err := p.primary.RegionManagers()
	if err != nil {
		p.log.Warn().Err(err).Msg("region manager provider unavailable, using fallback table")
		return p.fallback.RegionManagers()
	}
	return managers, nil
}

// copyManagers returns a defensive copy so callers cannot mutate the shared
// fallback table.
func copyManagers(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for region, manager := range src {
		dst[region] = manager
	}
	return dst
}
