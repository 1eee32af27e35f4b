// Package sensitivity tabulates the required return across the growth-rate
// domain so callers can see where a scenario's constant-growth model turns
// degenerate. Each point is the closed-form model evaluated once; there is no
// search or iteration.
package sensitivity

import (
	"fmt"

	"github.com/iwvelando/dividend-model/internal/model"
	"github.com/iwvelando/dividend-model/pkg/constants"
	"github.com/iwvelando/dividend-model/pkg/validation"
	"go.uber.org/zap"
)

// Point is the model outcome at one growth rate.
type Point struct {
	GrowthRate            float64 `json:"growthRate"`
	RequiredReturnPercent float64 `json:"requiredReturnPercent"`
	IsValid               bool    `json:"isValid"`
}

// Report holds the sweep results. DegenerateAt is the first growth rate at
// which the model fails its convergence invariant, nil when the whole sweep
// converges.
type Report struct {
	Points       []Point  `json:"points"`
	DegenerateAt *float64 `json:"degenerateAt,omitempty"`
}

// Analyze sweeps the growth rate from its lower to its upper bound in the
// given increment (percent), holding price and dividend fixed. A non-positive
// step falls back to the default. Price and dividend must be in range; their
// field errors abort the sweep.
func Analyze(logger *zap.Logger, in validation.Inputs, step float64) (Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if step <= 0 {
		step = constants.DefaultSensitivityStep
	}

	// Probe price and dividend at a growth rate known to be in range so the
	// sweep can assume every point passes validation.
	probe := in
	probe.GrowthRate = constants.MinGrowthRatePercent
	if errs := validation.Validate(probe); !errs.Valid() {
		return Report{}, fmt.Errorf("cannot analyze inputs with field errors: %v", errs)
	}

	var report Report
	for rate := constants.MinGrowthRatePercent; rate <= constants.MaxGrowthRatePercent+1e-9; rate += step {
		point := in
		point.GrowthRate = rate

		validated, errs := model.NewValidatedInputs(point)
		if !errs.Valid() {
			// Floating-point drift past the ceiling ends the sweep.
			break
		}

		m := model.Compute(validated)
		report.Points = append(report.Points, Point{
			GrowthRate:            rate,
			RequiredReturnPercent: m.RequiredReturnPercent,
			IsValid:               m.IsValid,
		})

		if !m.IsValid && report.DegenerateAt == nil {
			r := rate
			report.DegenerateAt = &r
			logger.Debug("model degenerate during sweep",
				zap.String("op", "sensitivity.Analyze"),
				zap.Float64("growthRate", rate),
			)
		}
	}

	logger.Debug("sensitivity sweep complete",
		zap.String("op", "sensitivity.Analyze"),
		zap.Int("points", len(report.Points)),
	)

	return report, nil
}
