// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/dividend-model/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsNegative checks if a value is strictly negative
func IsNegative(val float64) bool {
	return val < 0
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// WithinRelativeTolerance checks if two values agree within a relative tolerance,
// falling back to absolute comparison when the reference value is zero
func WithinRelativeTolerance(val, reference, tolerance float64) bool {
	if reference == 0 {
		return math.Abs(val) <= tolerance
	}
	return math.Abs(val-reference) <= tolerance*math.Abs(reference)
}

// PercentToDecimal converts a percentage (e.g. 6.4) to its decimal form (0.064)
func PercentToDecimal(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}

// DecimalToPercent converts a decimal rate (e.g. 0.064) to its percentage form (6.4)
func DecimalToPercent(decimal float64) float64 {
	return decimal * constants.PercentageMultiplier
}

// CompoundGrowth returns base grown at the given decimal rate over the given
// number of periods, i.e. base * (1+rate)^periods
func CompoundGrowth(base, rate float64, periods int) float64 {
	return base * math.Pow(1+rate, float64(periods))
}
