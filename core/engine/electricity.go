package engine

import (
	"github.com/shopspring/decimal"

	"ghg-engine/core/types"
	"ghg-engine/core/units"
	"ghg-engine/internal/errors"
)

const marketProxyNote = "Market-based: using grid average as proxy (no supplier-specific data)"

// calcElectricity handles Scope 2 purchased electricity under the GHG
// Protocol dual-reporting rule: one location-based and one market-based
// result per activity. A custom factor collapses that to a single
// result whose method defaults to location-based.
//
// Location-based resolution walks from most to least specific grid
// data: eGRID subregion, then Ember country average, then the US
// national average. Market-based honours an explicit factor_source
// preference and otherwise reuses the location factor as a conservative
// proxy, flagged in the result notes.
func (e *Engine) calcElectricity(activity *types.ActivityRecord) ([]types.EmissionResult, error) {
	if activity.CustomFactor.Valid {
		result := e.customResult(activity)
		result.Scope2Method = activity.Scope2Method
		if result.Scope2Method == "" {
			result.Scope2Method = types.LocationBased
		}
		return []types.EmissionResult{result}, nil
	}

	quantityKWh := activity.Quantity
	if !units.Same(activity.Unit, "kwh") {
		converted, err := units.Convert(activity.Quantity, activity.Unit, "kwh")
		if err != nil {
			return nil, errors.UnitConversion(
				"converting "+activity.Unit+" to kWh for electricity", err)
		}
		quantityKWh = converted
	}

	var results []types.EmissionResult

	locationFactor := e.findLocationFactor(activity)
	if locationFactor != nil {
		result, err := e.electricityResult(activity, locationFactor, quantityKWh)
		if err != nil {
			return nil, err
		}
		result.Scope2Method = types.LocationBased
		results = append(results, result)
	}

	marketFactor := e.findMarketFactor(activity, locationFactor)
	if marketFactor != nil {
		result, err := e.electricityResult(activity, marketFactor, quantityKWh)
		if err != nil {
			return nil, err
		}
		result.Scope2Method = types.MarketBased
		result.Notes = []string{marketProxyNote}
		results = append(results, result)
	}

	if len(results) == 0 {
		return nil, errors.NoFactor(
			"no electricity emission factor for region=%s; "+
				"provide grid_subregion (eGRID code) or country, or use custom_factor",
			electricityRegion(activity))
	}
	return results, nil
}

func (e *Engine) electricityResult(activity *types.ActivityRecord, factor *types.EmissionFactor, quantityKWh decimal.Decimal) (types.EmissionResult, error) {
	result, err := e.perGasResult(activity, factor, quantityKWh)
	if err != nil {
		return types.EmissionResult{}, err
	}
	if factor.HasCO2e() && len(result.GasBreakdown) == 0 {
		result.TotalCO2eKg = quantityKWh.Mul(factor.CO2eFactor.Decimal)
	}
	return result, nil
}

// findLocationFactor resolves the grid-average factor, most specific
// grid first.
func (e *Engine) findLocationFactor(activity *types.ActivityRecord) *types.EmissionFactor {
	if activity.GridSubregion != "" {
		if f := e.registry.FindFactor("electricity", "", activity.GridSubregion, "kwh", types.SourceEGRID); f != nil {
			return f
		}
	}
	if activity.Country != "" {
		if f := e.registry.FindFactor("electricity", "", activity.Country, "kwh", types.SourceEmber); f != nil {
			return f
		}
	}
	return e.registry.FindFactor("electricity", "", "US", "kwh", "")
}

// findMarketFactor resolves the market-based factor. Supplier-specific
// and residual-mix data have no model here, so absent an explicit
// source preference the location factor stands in.
func (e *Engine) findMarketFactor(activity *types.ActivityRecord, locationFactor *types.EmissionFactor) *types.EmissionFactor {
	if activity.FactorSource != "" {
		region := activity.GridSubregion
		if region == "" {
			region = activity.Country
		}
		if f := e.registry.FindFactor("electricity", "", region, "kwh", activity.FactorSource); f != nil {
			return f
		}
	}
	return locationFactor
}

func electricityRegion(activity *types.ActivityRecord) string {
	switch {
	case activity.GridSubregion != "":
		return activity.GridSubregion
	case activity.Region != "":
		return activity.Region
	case activity.Country != "":
		return activity.Country
	}
	return "(none)"
}
