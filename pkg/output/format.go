// Package output provides utilities for formatting and displaying model results.
package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/dividend-model/internal/model"
	"github.com/iwvelando/dividend-model/internal/sensitivity"
	"github.com/iwvelando/dividend-model/pkg/mathutil"
	"github.com/iwvelando/dividend-model/pkg/validation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency returns a currency string with a dollar sign, two decimals, and
// parenthesized negatives (e.g., "($54.56)").
func Currency(amount float64) string {
	formatted := fmt.Sprintf("$%.2f", math.Abs(amount))
	if mathutil.IsNegative(amount) {
		return "(" + formatted + ")"
	}
	return formatted
}

// Percent returns a percentage string with two decimals (e.g., "16.35%").
func Percent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []model.Result) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		fmt.Printf("--- Results for scenario %s ---\n", result.Name)

		if !result.Errors.Valid() {
			for _, field := range []string{validation.FieldMarketPrice, validation.FieldDividendAmount, validation.FieldGrowthRate} {
				if msg, ok := result.Errors[field]; ok {
					fmt.Printf("%s: %s\n", field, msg)
				}
			}
			if i < len(results)-1 {
				fmt.Printf("\n")
			}
			continue
		}

		m := result.Model
		_, _ = p.Printf("Next dividend: %s | Required return: %s\n",
			Currency(m.NextDividend), Percent(m.RequiredReturnPercent))
		if result.Warning != "" {
			fmt.Printf("Warning: %s\n", result.Warning)
		}

		fmt.Printf("Year | Dividend    | Investment\n")
		fmt.Printf("____ | ________    | __________\n")
		for _, entry := range m.Cashflows {
			_, _ = p.Printf("%4d | %-11s | %s\n", entry.Year,
				Currency(entry.DividendFlow), Currency(entry.InvestmentFlow))
		}
		if i < len(results)-1 {
			fmt.Printf("\n")
		}
	}
}

// SensitivityFormat outputs a human-readable growth-rate sweep table.
func SensitivityFormat(name string, report sensitivity.Report) {
	fmt.Printf("--- Growth-rate sensitivity for scenario %s ---\n", name)
	fmt.Printf("Growth | Required return\n")
	fmt.Printf("______ | _______________\n")
	for _, point := range report.Points {
		marker := ""
		if !point.IsValid {
			marker = " (degenerate)"
		}
		fmt.Printf("%5.1f%% | %s%s\n", point.GrowthRate, Percent(point.RequiredReturnPercent), marker)
	}
	if report.DegenerateAt != nil {
		fmt.Printf("Model degenerate from %.1f%% growth\n", *report.DegenerateAt)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []model.Result) {
	fmt.Print(CsvString(results))
}

// CsvString renders the computed cashflow projections in comma-separated value
// format; scenarios that failed validation contribute no rows.
func CsvString(results []model.Result) string {
	var builder strings.Builder
	builder.WriteString(`"scenario","year","dividendFlow","investmentFlow","requiredReturnPercent"` + "\n")
	for _, result := range results {
		if result.Model == nil {
			continue
		}
		for _, entry := range result.Model.Cashflows {
			builder.WriteString(fmt.Sprintf(`"%s","%d","%.2f","%.2f","%.2f"`+"\n",
				result.Name, entry.Year, entry.DividendFlow, entry.InvestmentFlow, entry.RequiredReturnPercent))
		}
	}
	return builder.String()
}
