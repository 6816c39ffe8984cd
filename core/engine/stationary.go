package engine

import (
	"ghg-engine/core/types"
	"ghg-engine/internal/errors"
)

// calcStationary handles boilers, furnaces, heaters, generators and the
// like: fuel quantity times per-gas coefficients, converted through the
// factor's activity unit when needed.
func (e *Engine) calcStationary(activity *types.ActivityRecord) ([]types.EmissionResult, error) {
	if activity.CustomFactor.Valid {
		result := e.customResult(activity)
		result.Scope1Category = types.StationaryCombustion
		return []types.EmissionResult{result}, nil
	}

	fuel := activity.FuelKey()
	var factor *types.EmissionFactor
	if fuel != "" {
		factor = e.registry.FindFactor(
			string(types.StationaryCombustion), fuel, "", activity.Unit, activity.FactorSource)
	}
	if factor == nil {
		return nil, errors.NoFactor(
			"no emission factor for stationary combustion: fuel=%s, unit=%s",
			fuel, activity.Unit)
	}

	quantity, err := resolveQuantity(activity, factor)
	if err != nil {
		return nil, err
	}

	result, err := e.perGasResult(activity, factor, quantity)
	if err != nil {
		return nil, err
	}
	result.Scope1Category = types.StationaryCombustion
	return []types.EmissionResult{result}, nil
}
