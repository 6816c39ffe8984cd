package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"ghg-engine/core/gwp"
	"ghg-engine/core/registry"
	"ghg-engine/core/types"
	"ghg-engine/core/units"
	"ghg-engine/internal/errors"
)

// calcFugitive handles refrigerant leaks, SF6 and similar releases.
// The released mass in kg is multiplied by the species' GWP; species
// unknown to the GWP tables fall back to a ranked registry search for
// a pre-aggregated CO2e factor.
func (e *Engine) calcFugitive(activity *types.ActivityRecord) ([]types.EmissionResult, error) {
	if activity.CustomFactor.Valid {
		result := e.customResult(activity)
		result.Scope1Category = types.FugitiveEmissions
		return []types.EmissionResult{result}, nil
	}

	if activity.RefrigerantType == "" {
		return e.calcFugitiveByFactor(activity)
	}

	quantityKg, err := toKilograms(activity)
	if err != nil {
		return nil, err
	}

	multiplier, err := gwp.Get(activity.RefrigerantType, e.assessment)
	if err != nil {
		// Species outside the GWP tables may still have a published
		// CO2e factor in the registry.
		hits := e.registry.Search(registry.Query{
			Text:     activity.RefrigerantType,
			Category: string(types.FugitiveEmissions),
			Limit:    1,
		})
		if len(hits) == 0 || !hits[0].HasCO2e() {
			return nil, errors.NoFactor(
				"unknown refrigerant %q; provide a custom_factor or use a known refrigerant type",
				activity.RefrigerantType)
		}
		multiplier = hits[0].CO2eFactor.Decimal
	}

	total := quantityKg.Mul(multiplier)

	result := e.newResult(activity)
	result.Scope1Category = types.FugitiveEmissions
	result.TotalCO2eKg = total
	// The GWP tables do not speciate F-gas blends, so the breakdown
	// carries a generic fluorinated-gas line rather than the species.
	result.GasBreakdown = []types.GasBreakdown{{
		Gas:        types.GasHFC,
		MassKg:     quantityKg,
		CO2eKg:     total,
		GWPUsed:    multiplier,
		Assessment: e.assessment,
	}}
	result.Notes = []string{fmt.Sprintf("Refrigerant: %s, GWP: %s", activity.RefrigerantType, multiplier.String())}
	return []types.EmissionResult{result}, nil
}

// calcFugitiveByFactor resolves fugitive releases with no declared
// species through the registry: category plus unit plus source, needing
// a factor with a pre-aggregated CO2e coefficient.
func (e *Engine) calcFugitiveByFactor(activity *types.ActivityRecord) ([]types.EmissionResult, error) {
	factor := e.registry.FindFactor(
		string(types.FugitiveEmissions), "", "", activity.Unit, activity.FactorSource)
	if factor == nil || !factor.HasCO2e() {
		return nil, errors.NoFactor(
			"no refrigerant_type specified and no fugitive emission factor matches unit=%s",
			activity.Unit)
	}

	quantityKg, err := toKilograms(activity)
	if err != nil {
		return nil, err
	}

	result := e.newResult(activity)
	result.Scope1Category = types.FugitiveEmissions
	result.TotalCO2eKg = quantityKg.Mul(factor.CO2eFactor.Decimal)
	result.FactorID = factor.ID
	result.FactorSource = string(factor.Source)
	return []types.EmissionResult{result}, nil
}

func toKilograms(activity *types.ActivityRecord) (decimal.Decimal, error) {
	if units.Same(activity.Unit, "kg") {
		return activity.Quantity, nil
	}
	quantityKg, err := units.Convert(activity.Quantity, activity.Unit, "kg")
	if err != nil {
		return decimal.Zero, errors.UnitConversion(
			"converting "+activity.Unit+" to kg for fugitive emissions", err)
	}
	return quantityKg, nil
}
