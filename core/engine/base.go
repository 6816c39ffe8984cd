package engine

import (
	"github.com/shopspring/decimal"

	"ghg-engine/core/gwp"
	"ghg-engine/core/types"
	"ghg-engine/core/units"
	"ghg-engine/internal/errors"
)

const customFactorNote = "Custom emission factor used"

// customResult applies a custom factor override: total CO2e is the raw
// quantity times the factor, exactly, with no factor lookup, unit
// conversion, or gas decomposition. Every calculator checks for this
// before anything else.
func (e *Engine) customResult(activity *types.ActivityRecord) types.EmissionResult {
	result := e.newResult(activity)
	result.TotalCO2eKg = activity.Quantity.Mul(activity.CustomFactor.Decimal)
	result.Notes = []string{customFactorNote}
	return result
}

// gasBreakdown converts per-gas masses to CO2e lines under the engine's
// assessment. Gases with zero or negative mass are omitted.
func (e *Engine) gasBreakdown(co2Kg, ch4Kg, n2oKg decimal.Decimal) ([]types.GasBreakdown, error) {
	input := []struct {
		gas  types.GasType
		mass decimal.Decimal
	}{
		{types.GasCO2, co2Kg},
		{types.GasCH4, ch4Kg},
		{types.GasN2O, n2oKg},
	}

	var breakdown []types.GasBreakdown
	for _, line := range input {
		if !line.mass.IsPositive() {
			continue
		}
		factor, err := gwp.Get(string(line.gas), e.assessment)
		if err != nil {
			return nil, err
		}
		breakdown = append(breakdown, types.GasBreakdown{
			Gas:        line.gas,
			MassKg:     line.mass,
			CO2eKg:     line.mass.Mul(factor),
			GWPUsed:    factor,
			Assessment: e.assessment,
		})
	}
	return breakdown, nil
}

// totalCO2e sums the CO2e across breakdown lines
func totalCO2e(breakdown []types.GasBreakdown) decimal.Decimal {
	total := decimal.Zero
	for _, line := range breakdown {
		total = total.Add(line.CO2eKg)
	}
	return total
}

// resolveQuantity converts the activity quantity into the factor's
// activity unit when the two differ. Conversion failures surface as
// unit conversion errors, distinct from a failed factor lookup.
func resolveQuantity(activity *types.ActivityRecord, factor *types.EmissionFactor) (decimal.Decimal, error) {
	if units.Same(activity.Unit, factor.ActivityUnit) {
		return activity.Quantity, nil
	}
	quantity, err := units.Convert(activity.Quantity, activity.Unit, factor.ActivityUnit)
	if err != nil {
		return decimal.Zero, errors.UnitConversion(
			"converting "+activity.Unit+" to "+factor.ActivityUnit+" for factor "+factor.ID, err)
	}
	return quantity, nil
}

// perGasResult computes a factor-based result: quantity times each gas
// coefficient, decomposed and summed under the engine's assessment.
func (e *Engine) perGasResult(activity *types.ActivityRecord, factor *types.EmissionFactor, quantity decimal.Decimal) (types.EmissionResult, error) {
	breakdown, err := e.gasBreakdown(
		quantity.Mul(factor.CO2Factor),
		quantity.Mul(factor.CH4Factor),
		quantity.Mul(factor.N2OFactor),
	)
	if err != nil {
		return types.EmissionResult{}, err
	}

	result := e.newResult(activity)
	result.TotalCO2eKg = totalCO2e(breakdown)
	result.GasBreakdown = breakdown
	result.FactorID = factor.ID
	result.FactorSource = string(factor.Source)
	return result, nil
}
