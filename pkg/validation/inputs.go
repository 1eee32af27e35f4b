// Package validation checks raw model inputs against their domain bounds and
// produces field-keyed error messages.
package validation

import (
	"github.com/iwvelando/dividend-model/pkg/constants"
)

// Field names used as keys in a validation Result. Downstream consumers key
// their per-field messaging off these exact strings.
const (
	FieldMarketPrice    = "marketPrice"
	FieldDividendAmount = "dividendAmount"
	FieldGrowthRate     = "growthRate"
)

// User-facing validation messages.
const (
	MsgMarketPriceTooLow  = "Market price must be at least $1"
	MsgMarketPriceTooHigh = "Market price cannot exceed $500"
	MsgDividendNegative   = "Dividend cannot be negative"
	MsgDividendTooHigh    = "Dividend cannot exceed $50"
	MsgGrowthRateNegative = "Growth rate cannot be negative"
	MsgGrowthRateTooHigh  = "Growth rate cannot exceed 25%"
)

// Inputs holds the raw numeric inputs for one required-return calculation.
// GrowthRate is expressed in percent (6.4 means 6.4%).
type Inputs struct {
	MarketPrice    float64
	DividendAmount float64
	GrowthRate     float64
}

// Result maps an input field name to a human-readable error message. An empty
// Result means the inputs are valid; field presence is the sole validity
// signal consumed downstream.
type Result map[string]string

// Valid reports whether the result carries no field errors.
func (r Result) Valid() bool {
	return len(r) == 0
}

// Validate checks every field independently against its domain bounds and
// returns the accumulated field errors. It is pure and total: any finite
// numeric triple yields a Result, possibly empty, and no field's outcome
// affects another's.
func Validate(in Inputs) Result {
	result := Result{}

	// The lower-bound check wins when both could apply; the bounds are
	// mutually exclusive so at most one message per field fires in practice.
	if in.MarketPrice < constants.MinMarketPrice {
		result[FieldMarketPrice] = MsgMarketPriceTooLow
	} else if in.MarketPrice > constants.MaxMarketPrice {
		result[FieldMarketPrice] = MsgMarketPriceTooHigh
	}

	if in.DividendAmount < constants.MinDividendAmount {
		result[FieldDividendAmount] = MsgDividendNegative
	} else if in.DividendAmount > constants.MaxDividendAmount {
		result[FieldDividendAmount] = MsgDividendTooHigh
	}

	if in.GrowthRate < constants.MinGrowthRatePercent {
		result[FieldGrowthRate] = MsgGrowthRateNegative
	} else if in.GrowthRate > constants.MaxGrowthRatePercent {
		result[FieldGrowthRate] = MsgGrowthRateTooHigh
	}

	return result
}
