package engine

import (
	"ghg-engine/core/types"
	"ghg-engine/internal/errors"
)

// calcProcess handles industrial process emissions (cement calcination,
// chemical production and similar). These are usually too site-specific
// for published factors, so a custom factor is the expected path; a
// registry match by category and unit is accepted when one exists.
func (e *Engine) calcProcess(activity *types.ActivityRecord) ([]types.EmissionResult, error) {
	if activity.CustomFactor.Valid {
		result := e.customResult(activity)
		result.Scope1Category = types.ProcessEmissions
		result.Notes = []string{"Custom emission factor used for process emissions"}
		return []types.EmissionResult{result}, nil
	}

	factor := e.registry.FindFactor(
		string(types.ProcessEmissions), "", "", activity.Unit, activity.FactorSource)
	if factor == nil {
		return nil, errors.NoFactor(
			"process emissions require a custom_factor or a matching registry factor; " +
				"provide custom_factor in kg CO2e per activity unit")
	}

	result, err := e.perGasResult(activity, factor, activity.Quantity)
	if err != nil {
		return nil, err
	}
	result.Scope1Category = types.ProcessEmissions

	// A published aggregate CO2e overrides the per-gas sum; the
	// breakdown stays attached for disclosure.
	if factor.HasCO2e() {
		result.TotalCO2eKg = activity.Quantity.Mul(factor.CO2eFactor.Decimal)
	}
	return []types.EmissionResult{result}, nil
}
