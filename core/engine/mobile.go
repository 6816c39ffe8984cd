package engine

import (
	"ghg-engine/core/registry"
	"ghg-engine/core/types"
	"ghg-engine/internal/errors"
)

// calcMobile handles company-owned vehicle fuel use. A declared vehicle
// type first tries a ranked search within the mobile combustion
// category so a factor named for that vehicle class wins; a plain
// fuel-keyed match is the fallback either way.
func (e *Engine) calcMobile(activity *types.ActivityRecord) ([]types.EmissionResult, error) {
	if activity.CustomFactor.Valid {
		result := e.customResult(activity)
		result.Scope1Category = types.MobileCombustion
		return []types.EmissionResult{result}, nil
	}

	fuel := activity.FuelKey()

	var factor *types.EmissionFactor
	if activity.VehicleType != "" {
		hits := e.registry.Search(registry.Query{
			Text:         activity.VehicleType,
			Category:     string(types.MobileCombustion),
			FuelType:     fuel,
			ActivityUnit: activity.Unit,
			Source:       activity.FactorSource,
			Limit:        1,
		})
		if len(hits) > 0 {
			factor = hits[0]
		}
	}
	if factor == nil && fuel != "" {
		factor = e.registry.FindFactor(
			string(types.MobileCombustion), fuel, "", activity.Unit, activity.FactorSource)
	}
	if factor == nil {
		return nil, errors.NoFactor(
			"no emission factor for mobile combustion: fuel=%s, vehicle=%s, unit=%s",
			fuel, activity.VehicleType, activity.Unit)
	}

	quantity, err := resolveQuantity(activity, factor)
	if err != nil {
		return nil, err
	}

	result, err := e.perGasResult(activity, factor, quantity)
	if err != nil {
		return nil, err
	}
	result.Scope1Category = types.MobileCombustion
	return []types.EmissionResult{result}, nil
}
