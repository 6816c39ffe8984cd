package engine

import (
	"fmt"
	"strings"

	"ghg-engine/core/registry"
	"ghg-engine/core/types"
	"ghg-engine/core/units"
	"ghg-engine/internal/errors"
)

// scope3Categories maps the fifteen GHG Protocol categories onto the
// registry's category taxonomy. Both transport directions and both
// leased-asset directions share factor pools.
var scope3Categories = map[types.Scope3Category]string{
	types.PurchasedGoodsServices: "purchased_goods",
	types.CapitalGoods:           "capital_goods",
	types.FuelEnergyActivities:   "fuel_energy",
	types.UpstreamTransport:      "transport",
	types.Waste:                  "waste",
	types.BusinessTravel:         "business_travel",
	types.EmployeeCommuting:      "commuting",
	types.UpstreamLeasedAssets:   "leased_assets",
	types.DownstreamTransport:    "transport",
	types.ProcessingSoldProducts: "processing",
	types.UseOfSoldProducts:      "product_use",
	types.EndOfLifeSoldProducts:  "end_of_life",
	types.DownstreamLeasedAssets: "leased_assets",
	types.Franchises:             "franchises",
	types.Investments:            "investments",
}

// calcScope3 dispatches a value-chain activity to the first applicable
// method: custom factor, spend-based, distance-based for transport
// categories, the waste path, then generic activity-based matching.
func (e *Engine) calcScope3(activity *types.ActivityRecord) ([]types.EmissionResult, error) {
	if activity.CustomFactor.Valid {
		result := e.customResult(activity)
		result.Scope3Category = activity.Scope3Category
		return []types.EmissionResult{result}, nil
	}

	category := activity.Scope3Category
	if !category.Valid() {
		return nil, errors.Validation("scope3_category is required for scope 3 calculations")
	}

	if activity.SpendAmount.Valid {
		return e.calcSpendBased(activity)
	}
	if activity.Distance.Valid && isDistanceCategory(category) {
		return e.calcDistanceBased(activity)
	}
	if category == types.Waste {
		return e.calcWaste(activity)
	}
	return e.calcActivityBased(activity)
}

func isDistanceCategory(c types.Scope3Category) bool {
	switch c {
	case types.UpstreamTransport, types.DownstreamTransport,
		types.BusinessTravel, types.EmployeeCommuting:
		return true
	}
	return false
}

// calcSpendBased applies economic input-output factors in kg CO2e per
// currency unit. Input-output tables are organized by economic sector,
// so resolution keys on the NAICS code, not the GHG category: exact
// USEEIO match first, ranked USEEIO search second, ranked EXIOBASE
// search last.
func (e *Engine) calcSpendBased(activity *types.ActivityRecord) ([]types.EmissionResult, error) {
	var factor *types.EmissionFactor
	if activity.NAICSCode != "" {
		factor = e.registry.FindFactor("spend_based", activity.NAICSCode, "", "", types.SourceUSEEIO)
		if factor == nil {
			hits := e.registry.Search(registry.Query{
				Text:   activity.NAICSCode,
				Source: types.SourceUSEEIO,
				Limit:  1,
			})
			if len(hits) > 0 {
				factor = hits[0]
			}
		}
	}
	if factor == nil {
		hits := e.registry.Search(registry.Query{
			Text:   activity.NAICSCode,
			Source: types.SourceEXIOBASE,
			Limit:  1,
		})
		if len(hits) > 0 {
			factor = hits[0]
		}
	}
	if factor == nil {
		return nil, errors.NoFactor(
			"no spend-based emission factor for NAICS=%s; provide a custom_factor (kg CO2e per USD)",
			activity.NAICSCode)
	}

	spend := activity.Quantity
	if activity.SpendAmount.Valid {
		spend = activity.SpendAmount.Decimal
	}
	perUnit := factor.EffectiveCO2e()

	result := e.newResult(activity)
	result.Scope3Category = activity.Scope3Category
	result.TotalCO2eKg = spend.Mul(perUnit)
	result.FactorID = factor.ID
	result.FactorSource = string(factor.Source)
	result.ActivityQuantity = spend
	result.ActivityUnit = "USD"
	result.Notes = []string{fmt.Sprintf("Spend-based: %s kg CO2e/USD", perUnit.StringFixed(4))}
	return []types.EmissionResult{result}, nil
}

// calcDistanceBased covers transport, travel, and commuting. When the
// resolved factor is a weight-distance composite (tonne-km) and the
// activity carries a freight weight, the quantity becomes distance
// times weight in metric tons.
func (e *Engine) calcDistanceBased(activity *types.ActivityRecord) ([]types.EmissionResult, error) {
	mode := activity.TransportMode
	if mode == "" {
		mode = activity.VehicleType
	}
	if mode == "" {
		mode = "average"
	}

	distanceUnit := activity.DistanceUnit
	if distanceUnit == "" {
		distanceUnit = "km"
	}

	categoryName := scope3Categories[activity.Scope3Category]
	factor := e.registry.FindFactor(categoryName, mode, "", distanceUnit, "")
	if factor == nil {
		hits := e.registry.Search(registry.Query{
			Text:  categoryName + " " + mode,
			Limit: 1,
		})
		if len(hits) > 0 {
			factor = hits[0]
		}
	}
	if factor == nil {
		return nil, errors.NoFactor(
			"no distance-based factor for %s, mode=%s; provide a custom_factor",
			categoryName, mode)
	}

	distance := activity.Distance.Decimal
	if !units.Same(distanceUnit, factor.ActivityUnit) && units.IsCompatible(distanceUnit, factor.ActivityUnit) {
		converted, err := units.Convert(distance, distanceUnit, factor.ActivityUnit)
		if err == nil {
			distance = converted
		}
	}

	quantity := distance
	if activity.Weight.Valid && strings.Contains(strings.ToLower(factor.ActivityUnit), "tonne_km") {
		weightTonnes := activity.Weight.Decimal
		if activity.WeightUnit != "" && !units.Same(activity.WeightUnit, "metric_ton") {
			if converted, err := units.Convert(activity.Weight.Decimal, activity.WeightUnit, "metric_ton"); err == nil {
				weightTonnes = converted
			}
		}
		quantity = distance.Mul(weightTonnes)
	}

	result := e.newResult(activity)
	result.Scope3Category = activity.Scope3Category
	result.TotalCO2eKg = quantity.Mul(factor.EffectiveCO2e())
	result.FactorID = factor.ID
	result.FactorSource = string(factor.Source)
	result.ActivityQuantity = quantity
	result.ActivityUnit = factor.ActivityUnit
	result.Notes = []string{"Distance-based: mode=" + mode}
	return []types.EmissionResult{result}, nil
}

// calcWaste keys waste factors on a composed waste-type and disposal
// pair, defaulting to mixed waste sent to landfill.
func (e *Engine) calcWaste(activity *types.ActivityRecord) ([]types.EmissionResult, error) {
	wasteType := activity.WasteType
	if wasteType == "" {
		wasteType = "mixed"
	}
	disposal := activity.DisposalMethod
	if disposal == "" {
		disposal = "landfill"
	}

	factor := e.registry.FindFactor("waste", wasteType+"_"+disposal, "", "", "")
	if factor == nil {
		hits := e.registry.Search(registry.Query{
			Text:  "waste " + wasteType + " " + disposal,
			Limit: 1,
		})
		if len(hits) > 0 {
			factor = hits[0]
		}
	}
	if factor == nil {
		return nil, errors.NoFactor(
			"no waste emission factor for type=%s, disposal=%s; provide a custom_factor",
			wasteType, disposal)
	}

	result := e.newResult(activity)
	result.Scope3Category = types.Waste
	result.TotalCO2eKg = activity.Quantity.Mul(factor.EffectiveCO2e())
	result.FactorID = factor.ID
	result.FactorSource = string(factor.Source)
	result.Notes = []string{"Waste: " + wasteType + "/" + disposal}
	return []types.EmissionResult{result}, nil
}

// calcActivityBased is the generic path for categories without a more
// specific method: exact category and unit match, ranked fallback, with
// a published aggregate CO2e overriding the per-gas sum when present.
func (e *Engine) calcActivityBased(activity *types.ActivityRecord) ([]types.EmissionResult, error) {
	categoryName := scope3Categories[activity.Scope3Category]

	factor := e.registry.FindFactor(categoryName, "", "", activity.Unit, activity.FactorSource)
	if factor == nil {
		hits := e.registry.Search(registry.Query{
			Text:         categoryName,
			ActivityUnit: activity.Unit,
			Limit:        1,
		})
		if len(hits) > 0 {
			factor = hits[0]
		}
	}
	if factor == nil {
		return nil, errors.NoFactor(
			"no emission factor for scope 3 %s; provide a custom_factor (kg CO2e per %s)",
			activity.Scope3Category, activity.Unit)
	}

	result, err := e.perGasResult(activity, factor, activity.Quantity)
	if err != nil {
		return nil, err
	}
	result.Scope3Category = activity.Scope3Category
	if factor.HasCO2e() {
		result.TotalCO2eKg = activity.Quantity.Mul(factor.CO2eFactor.Decimal)
	}
	return []types.EmissionResult{result}, nil
}
