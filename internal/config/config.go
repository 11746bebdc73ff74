// =============================================================================
// Sales Analytics - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration. Configuration is read from a single YAML file; every option
// has a sensible default, so the tool runs without any configuration file at
// all.
//
// ARCHITECTURE:
//   The configuration system is designed to be:
//   - Optional: a missing config file yields the built-in defaults
//   - Validated: all configurations are validated on load
//   - Flag-friendly: the analyze command may override individual fields
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration, loaded from config.yaml.
type Config struct {
	// =========================================================================
	// INPUT / OUTPUT SETTINGS
	// =========================================================================

	// InputFile is the path to the pipe-delimited sales export to analyze.
	// Default: "data/sales_data.txt"
	InputFile string `yaml:"input_file"`

	// OutputDir is the directory where generated artifacts are placed.
	// It is created if it does not exist.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ReportFile is the file name of the formatted text report, relative to
	// OutputDir. Supports the {uuid}, {timestamp}, {date} and {time}
	// placeholders.
	// Default: "sales_report.txt"
	ReportFile string `yaml:"report_file"`

	// DumpFile is the file name of the enriched-records XLSX dump, relative
	// to OutputDir. Supports the same placeholders as ReportFile.
	// Default: "enriched_sales.xlsx"
	DumpFile string `yaml:"dump_file"`

	// Encodings is the ordered list of codecs tried when decoding the input
	// file. The first codec that decodes the file wins.
	// Default: ["UTF-8", "ISO-8859-1", "Windows-1252"]
	Encodings []string `yaml:"encodings"`

	// =========================================================================
	// ENRICHMENT SETTINGS
	// =========================================================================

	// TargetCurrency is the currency code used for amount conversion.
	// Default: "INR"
	TargetCurrency string `yaml:"target_currency"`

	// BaseCurrency is the currency the source amounts are denominated in.
	// Default: "USD"
	BaseCurrency string `yaml:"base_currency"`

	// ProviderBaseURL is the base URL of the exchange-rate provider.
	// Default: "https://api.exchangerate-api.com"
	ProviderBaseURL string `yaml:"provider_base_url"`

	// ProviderTimeoutSeconds is the timeout for the provider call. On timeout
	// or any transport error the pipeline degrades to static fallback data.
	// Default: 5
	ProviderTimeoutSeconds int `yaml:"provider_timeout_seconds"`

	// =========================================================================
	// ANALYTICS SETTINGS
	// =========================================================================

	// TopProducts is the number of entries in the top-products ranking.
	// Default: 5
	TopProducts int `yaml:"top_products"`

	// TopCustomers is the number of entries in the top-customers table.
	// Default: 5
	TopCustomers int `yaml:"top_customers"`

	// LowQuantityThreshold marks products whose total quantity sold is
	// strictly below this value as low performers.
	// Default: 10
	LowQuantityThreshold int `yaml:"low_quantity_threshold"`

	// TrendRows is the number of daily-trend rows rendered in the report.
	// Default: 10
	TrendRows int `yaml:"trend_rows"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// Load reads the configuration from a YAML file. A missing file is not an
// error: the built-in defaults are returned so the tool works out of the box.
func Load(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(&config)
			return &config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the built-in default configuration.
func Default() *Config {
	var config Config
	applyDefaults(&config)
	return &config
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.InputFile == "" {
		config.InputFile = "data/sales_data.txt"
	}
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.ReportFile == "" {
		config.ReportFile = "sales_report.txt"
	}
	if config.DumpFile == "" {
		config.DumpFile = "enriched_sales.xlsx"
	}
	if len(config.Encodings) == 0 {
		config.Encodings = []string{"UTF-8", "ISO-8859-1", "Windows-1252"}
	}
	if config.TargetCurrency == "" {
		config.TargetCurrency = "INR"
	}
	if config.BaseCurrency == "" {
		config.BaseCurrency = "USD"
	}
	if config.ProviderBaseURL == "" {
		config.ProviderBaseURL = "https://api.exchangerate-api.com"
	}
	if config.ProviderTimeoutSeconds == 0 {
		config.ProviderTimeoutSeconds = 5
	}
	if config.TopProducts == 0 {
		config.TopProducts = 5
	}
	if config.TopCustomers == 0 {
		config.TopCustomers = 5
	}
	if config.LowQuantityThreshold == 0 {
		config.LowQuantityThreshold = 10
	}
	if config.TrendRows == 0 {
		config.TrendRows = 10
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}

// validate checks the loaded configuration for values the pipeline cannot
// work with.
func validate(config *Config) error {
	if config.TopProducts < 0 || config.TopCustomers < 0 {
		return fmt.Errorf("ranking sizes must not be negative")
	}
	if config.LowQuantityThreshold < 0 {
		return fmt.Errorf("low_quantity_threshold must not be negative")
	}
	if config.TrendRows < 0 {
		return fmt.Errorf("trend_rows must not be negative")
	}
	if config.ProviderTimeoutSeconds < 0 {
		return fmt.Errorf("provider_timeout_seconds must not be negative")
	}
	return nil
}
