package model

import (
	"fmt"

	"github.com/iwvelando/dividend-model/internal/config"
	"github.com/iwvelando/dividend-model/pkg/adapters"
	"github.com/iwvelando/dividend-model/pkg/validation"
	"go.uber.org/zap"
)

// ModelInvalidWarning is the user-facing message for the degenerate case where
// the constant-growth model diverges even though every input is in range.
const ModelInvalidWarning = "growth rate must be less than required return"

// Result holds the outcome for one scenario: either field errors from
// validation, or a computed model plus an optional degeneracy warning.
type Result struct {
	Name    string
	Errors  validation.Result
	Model   *Model
	Warning string
}

// GetModels runs the model for every active scenario in the configuration.
// Scenarios with field errors carry those errors and no model; scenarios whose
// model is degenerate carry the model plus ModelInvalidWarning. Inactive
// scenarios are skipped.
func GetModels(logger *zap.Logger, conf config.Configuration) []Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Result
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "model.GetModels"),
			)
			continue
		}

		result := Result{Name: scenario.Name}

		validated, errs := NewValidatedInputs(adapters.ScenarioToInputs(scenario))
		if !errs.Valid() {
			logger.Debug(fmt.Sprintf("scenario %s has input errors", scenario.Name),
				zap.String("op", "model.GetModels"),
				zap.Int("fields", len(errs)),
			)
			result.Errors = errs
			results = append(results, result)
			continue
		}

		m := Compute(validated)
		result.Model = &m
		if !m.IsValid {
			logger.Warn(fmt.Sprintf("scenario %s is degenerate for the constant-growth model", scenario.Name),
				zap.String("op", "model.GetModels"),
				zap.Float64("growthRateDecimal", m.GrowthRateDecimal),
				zap.Float64("requiredReturnDecimal", m.RequiredReturnDecimal),
			)
			result.Warning = ModelInvalidWarning
		} else {
			logger.Debug(fmt.Sprintf("scenario %s computed", scenario.Name),
				zap.String("op", "model.GetModels"),
				zap.Float64("requiredReturnPercent", m.RequiredReturnPercent),
			)
		}

		results = append(results, result)
	}

	return results
}
