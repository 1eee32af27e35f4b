package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/iwvelando/dividend-model/internal/model"
	"github.com/iwvelando/dividend-model/internal/sensitivity"
	"github.com/iwvelando/dividend-model/pkg/validation"
	"go.uber.org/zap"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func computedResult(t *testing.T, name string, in validation.Inputs) model.Result {
	t.Helper()
	validated, errs := model.NewValidatedInputs(in)
	if !errs.Valid() {
		t.Fatalf("inputs %+v failed validation: %v", in, errs)
	}
	m := model.Compute(validated)
	return model.Result{Name: name, Model: &m}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"Positive", 54.56, "$54.56"},
		{"Zero", 0, "$0.00"},
		{"Negative parenthesized", -54.56, "($54.56)"},
		{"Rounded to two decimals", 5.4264, "$5.43"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.input); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(16.3456); got != "16.35%" {
		t.Errorf("Percent(16.3456) = %q, expected \"16.35%%\"", got)
	}
}

func TestCsvString(t *testing.T) {
	results := []model.Result{
		computedResult(t, "Blue chip", validation.Inputs{MarketPrice: 54.56, DividendAmount: 5.10, GrowthRate: 6.40}),
		{
			Name:   "Broken",
			Errors: validation.Result{validation.FieldMarketPrice: validation.MsgMarketPriceTooLow},
		},
	}

	csv := CsvString(results)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

	// Header plus 11 projection rows; the errored scenario contributes none.
	if len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d:\n%s", len(lines), csv)
	}
	if lines[0] != `"scenario","year","dividendFlow","investmentFlow","requiredReturnPercent"` {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], `"Blue chip","0","0.00","-54.56",`) {
		t.Errorf("unexpected year-0 row: %s", lines[1])
	}
	if strings.Contains(csv, "Broken") {
		t.Error("errored scenario must not appear in CSV output")
	}
}

func TestPrettyFormat(t *testing.T) {
	results := []model.Result{
		computedResult(t, "Blue chip", validation.Inputs{MarketPrice: 54.56, DividendAmount: 5.10, GrowthRate: 6.40}),
		{
			Name:   "Broken",
			Errors: validation.Result{validation.FieldDividendAmount: validation.MsgDividendTooHigh},
		},
	}

	out := captureStdout(t, func() {
		PrettyFormat(results)
	})

	if !strings.Contains(out, "--- Results for scenario Blue chip ---") {
		t.Error("PrettyFormat missing scenario header")
	}
	if !strings.Contains(out, "Required return: 16.35%") {
		t.Errorf("PrettyFormat missing required return summary:\n%s", out)
	}
	if !strings.Contains(out, "Year | Dividend    | Investment") {
		t.Error("PrettyFormat missing table header")
	}
	if !strings.Contains(out, "($54.56)") {
		t.Error("PrettyFormat missing parenthesized initial outlay")
	}
	if !strings.Contains(out, validation.MsgDividendTooHigh) {
		t.Error("PrettyFormat missing field error for errored scenario")
	}
}

func TestPrettyFormatWarnsOnDegenerateModel(t *testing.T) {
	result := computedResult(t, "No dividend", validation.Inputs{MarketPrice: 100, DividendAmount: 0, GrowthRate: 5})
	result.Warning = model.ModelInvalidWarning

	out := captureStdout(t, func() {
		PrettyFormat([]model.Result{result})
	})

	if !strings.Contains(out, "Warning: "+model.ModelInvalidWarning) {
		t.Errorf("PrettyFormat missing degeneracy warning:\n%s", out)
	}
}

func TestSensitivityFormat(t *testing.T) {
	report, err := sensitivity.Analyze(zap.NewNop(), validation.Inputs{MarketPrice: 100, DividendAmount: 0}, 5.0)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	out := captureStdout(t, func() {
		SensitivityFormat("No dividend", report)
	})

	if !strings.Contains(out, "--- Growth-rate sensitivity for scenario No dividend ---") {
		t.Error("SensitivityFormat missing header")
	}
	if !strings.Contains(out, "(degenerate)") {
		t.Error("SensitivityFormat missing degenerate marker")
	}
	if !strings.Contains(out, "Model degenerate from 0.0% growth") {
		t.Errorf("SensitivityFormat missing degeneracy summary:\n%s", out)
	}
}

func TestCsvStringEmptyResults(t *testing.T) {
	csv := CsvString(nil)
	if csv != `"scenario","year","dividendFlow","investmentFlow","requiredReturnPercent"`+"\n" {
		t.Errorf("expected header only, got %q", csv)
	}
}
