// Package adapters provides adapter implementations between different package interfaces.
package adapters

import (
	"github.com/iwvelando/dividend-model/internal/config"
	"github.com/iwvelando/dividend-model/pkg/validation"
)

// ScenarioToInputs converts a config.Scenario to the validation.Inputs record
// consumed by the validator and model engine.
func ScenarioToInputs(scenario config.Scenario) validation.Inputs {
	return validation.Inputs{
		MarketPrice:    scenario.MarketPrice,
		DividendAmount: scenario.DividendAmount,
		GrowthRate:     scenario.GrowthRate,
	}
}

// ScenariosToInputs converts a config.Scenario slice to validation.Inputs,
// preserving order.
func ScenariosToInputs(scenarios []config.Scenario) []validation.Inputs {
	if scenarios == nil {
		return nil
	}

	var inputs []validation.Inputs
	for _, scenario := range scenarios {
		inputs = append(inputs, ScenarioToInputs(scenario))
	}
	return inputs
}
