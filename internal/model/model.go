// Package model implements the Gordon Growth (constant-growth dividend
// discount) computation: the investor-required rate of return implied by a
// stock's price, current dividend, and dividend growth rate, together with a
// fixed-horizon cash-flow projection for display.
package model

import (
	"github.com/iwvelando/dividend-model/pkg/constants"
	"github.com/iwvelando/dividend-model/pkg/mathutil"
	"github.com/iwvelando/dividend-model/pkg/validation"
)

// ValidatedInputs wraps an input triple that has passed validation. The only
// way to obtain one is through NewValidatedInputs, so holding a value is proof
// the bounds checks ran clean and Compute may be called.
type ValidatedInputs struct {
	inputs validation.Inputs
}

// NewValidatedInputs validates the raw inputs and, when the result is empty,
// returns them wrapped for Compute. On any field error the zero ValidatedInputs
// is returned alongside the non-empty result and must not be used.
func NewValidatedInputs(in validation.Inputs) (ValidatedInputs, validation.Result) {
	result := validation.Validate(in)
	if !result.Valid() {
		return ValidatedInputs{}, result
	}
	return ValidatedInputs{inputs: in}, result
}

// Inputs returns the validated raw inputs.
func (v ValidatedInputs) Inputs() validation.Inputs {
	return v.inputs
}

// CashflowEntry is one year of the projection.
type CashflowEntry struct {
	Year int `json:"year"`

	// DividendFlow is 0 at year 0 and the compounded dividend for later years.
	DividendFlow float64 `json:"dividendFlow"`

	// InvestmentFlow is the negative initial outlay at year 0 and 0 otherwise.
	InvestmentFlow float64 `json:"investmentFlow"`

	// RequiredReturnPercent repeats the model's required return on every
	// entry so a flat reference line can be drawn against the flows.
	RequiredReturnPercent float64 `json:"requiredReturnPercent"`
}

// Model holds the Gordon Growth solution for one input triple. Percent fields
// are already multiplied by 100 (6.4 means 6.4%); callers must not re-scale.
// All values are full precision; display rounding belongs to the output layer.
type Model struct {
	GrowthRateDecimal     float64         `json:"growthRateDecimal"`
	NextDividend          float64         `json:"nextDividend"`
	RequiredReturnDecimal float64         `json:"requiredReturnDecimal"`
	RequiredReturnPercent float64         `json:"requiredReturnPercent"`
	Cashflows             []CashflowEntry `json:"cashflows"`

	// IsValid reports whether the constant-growth model converges for these
	// inputs: the growth rate must stay below the required return and the
	// required return must be positive. This is a modeling invariant distinct
	// from input-range validity.
	IsValid bool `json:"isValid"`
}

// Compute solves the Gordon Growth model for the required return and builds
// the cash-flow projection; it is pure, O(1), and deterministic. The
// ValidatedInputs precondition means it has no error path: it never panics and
// performs no re-validation. A zero-value ValidatedInputs (a contract breach)
// yields IEEE ±Inf/NaN results rather than an error.
func Compute(v ValidatedInputs) Model {
	in := v.Inputs()

	g := mathutil.PercentToDecimal(in.GrowthRate)
	d1 := in.DividendAmount * (1 + g)
	r := d1/in.MarketPrice + g
	rPercent := mathutil.DecimalToPercent(r)

	cashflows := make([]CashflowEntry, constants.ProjectionYears+1)
	cashflows[0] = CashflowEntry{
		Year:                  0,
		DividendFlow:          0,
		InvestmentFlow:        -in.MarketPrice,
		RequiredReturnPercent: rPercent,
	}
	for year := 1; year <= constants.ProjectionYears; year++ {
		cashflows[year] = CashflowEntry{
			Year:                  year,
			DividendFlow:          mathutil.CompoundGrowth(in.DividendAmount, g, year),
			InvestmentFlow:        0,
			RequiredReturnPercent: rPercent,
		}
	}

	return Model{
		GrowthRateDecimal:     g,
		NextDividend:          d1,
		RequiredReturnDecimal: r,
		RequiredReturnPercent: rPercent,
		Cashflows:             cashflows,
		IsValid:               g < r && rPercent > 0,
	}
}
