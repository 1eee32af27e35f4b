// Package constants provides shared constants for the dividend-model application.
package constants

// Input domain bounds
const (
	// MinMarketPrice is the lowest accepted market price per share
	MinMarketPrice = 1.0

	// MaxMarketPrice is the highest accepted market price per share
	MaxMarketPrice = 500.0

	// MinDividendAmount is the lowest accepted annual dividend per share
	MinDividendAmount = 0.0

	// MaxDividendAmount is the highest accepted annual dividend per share
	MaxDividendAmount = 50.0

	// MinGrowthRatePercent is the lowest accepted annual dividend growth rate
	MinGrowthRatePercent = 0.0

	// MaxGrowthRatePercent is the highest accepted annual dividend growth rate
	MaxGrowthRatePercent = 25.0
)

// Projection constants
const (
	// ProjectionYears is the fixed cash-flow projection horizon; the
	// projection holds ProjectionYears+1 entries covering years 0..ProjectionYears
	ProjectionYears = 10

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Sensitivity sweep defaults
const (
	// DefaultSensitivityStep is the default growth-rate increment (in percent)
	// used when sweeping the growth rate across its domain
	DefaultSensitivityStep = 0.5
)
