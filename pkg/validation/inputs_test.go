package validation

import (
	"math"
	"testing"
)

func TestValidateAccepts(t *testing.T) {
	tests := []struct {
		name   string
		inputs Inputs
	}{
		{"Typical inputs", Inputs{MarketPrice: 54.56, DividendAmount: 5.10, GrowthRate: 6.40}},
		{"Lower bounds", Inputs{MarketPrice: 1.0, DividendAmount: 0.0, GrowthRate: 0.0}},
		{"Upper bounds", Inputs{MarketPrice: 500.0, DividendAmount: 50.0, GrowthRate: 25.0}},
		{"Zero dividend and growth", Inputs{MarketPrice: 100.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.inputs)
			if !result.Valid() {
				t.Errorf("Validate(%+v) = %v, expected no errors", tt.inputs, result)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		inputs  Inputs
		field   string
		message string
	}{
		{
			name:    "Market price below minimum",
			inputs:  Inputs{MarketPrice: 0.5, DividendAmount: 5.0, GrowthRate: 5.0},
			field:   FieldMarketPrice,
			message: MsgMarketPriceTooLow,
		},
		{
			name:    "Market price zero",
			inputs:  Inputs{MarketPrice: 0, DividendAmount: 5.0, GrowthRate: 5.0},
			field:   FieldMarketPrice,
			message: MsgMarketPriceTooLow,
		},
		{
			name:    "Market price negative",
			inputs:  Inputs{MarketPrice: -10, DividendAmount: 5.0, GrowthRate: 5.0},
			field:   FieldMarketPrice,
			message: MsgMarketPriceTooLow,
		},
		{
			name:    "Market price above maximum",
			inputs:  Inputs{MarketPrice: 500.01, DividendAmount: 5.0, GrowthRate: 5.0},
			field:   FieldMarketPrice,
			message: MsgMarketPriceTooHigh,
		},
		{
			name:    "Dividend negative",
			inputs:  Inputs{MarketPrice: 100, DividendAmount: -0.01, GrowthRate: 5.0},
			field:   FieldDividendAmount,
			message: MsgDividendNegative,
		},
		{
			name:    "Dividend above maximum",
			inputs:  Inputs{MarketPrice: 100, DividendAmount: 60, GrowthRate: 5.0},
			field:   FieldDividendAmount,
			message: MsgDividendTooHigh,
		},
		{
			name:    "Growth rate negative",
			inputs:  Inputs{MarketPrice: 100, DividendAmount: 5.0, GrowthRate: -1},
			field:   FieldGrowthRate,
			message: MsgGrowthRateNegative,
		},
		{
			name:    "Growth rate above maximum",
			inputs:  Inputs{MarketPrice: 100, DividendAmount: 5.0, GrowthRate: 25.5},
			field:   FieldGrowthRate,
			message: MsgGrowthRateTooHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.inputs)
			if result.Valid() {
				t.Fatalf("Validate(%+v) returned no errors, expected error on %s", tt.inputs, tt.field)
			}
			if got, ok := result[tt.field]; !ok {
				t.Errorf("expected error on field %s, got %v", tt.field, result)
			} else if got != tt.message {
				t.Errorf("field %s message = %q, expected %q", tt.field, got, tt.message)
			}
			if len(result) != 1 {
				t.Errorf("expected exactly one field error, got %v", result)
			}
		})
	}
}

func TestValidateIndependentFields(t *testing.T) {
	// Every field violated at once; all three messages must be present.
	result := Validate(Inputs{MarketPrice: 0, DividendAmount: -1, GrowthRate: 30})
	if len(result) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(result), result)
	}
	if result[FieldMarketPrice] != MsgMarketPriceTooLow {
		t.Errorf("marketPrice message = %q", result[FieldMarketPrice])
	}
	if result[FieldDividendAmount] != MsgDividendNegative {
		t.Errorf("dividendAmount message = %q", result[FieldDividendAmount])
	}
	if result[FieldGrowthRate] != MsgGrowthRateTooHigh {
		t.Errorf("growthRate message = %q", result[FieldGrowthRate])
	}
}

func TestValidateLowerBoundWins(t *testing.T) {
	// Below the lower bound a price can never also exceed the upper bound,
	// but the lower-bound message must be the one reported.
	result := Validate(Inputs{MarketPrice: 0.99, DividendAmount: 1, GrowthRate: 1})
	if result[FieldMarketPrice] != MsgMarketPriceTooLow {
		t.Errorf("marketPrice message = %q, expected lower-bound message", result[FieldMarketPrice])
	}
}

func TestValidateTotalOnNonFinite(t *testing.T) {
	// The validator never panics, even for values a form parser should
	// never hand it.
	extremes := []float64{math.Inf(1), math.Inf(-1), math.NaN(), math.MaxFloat64, -math.MaxFloat64}
	for _, v := range extremes {
		_ = Validate(Inputs{MarketPrice: v, DividendAmount: v, GrowthRate: v})
	}
}
