// Package types - Calculation result and aggregate types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

// GasBreakdown is a per-gas emission line within a result
type GasBreakdown struct {
	// Gas identifies the greenhouse gas
	Gas GasType `json:"gas"`

	// MassKg is the emitted mass of the gas in kg
	MassKg decimal.Decimal `json:"mass_kg"`

	// CO2eKg is the CO2-equivalent mass in kg
	CO2eKg decimal.Decimal `json:"co2e_kg"`

	// GWPUsed is the GWP multiplier applied
	GWPUsed decimal.Decimal `json:"gwp_used"`

	// Assessment is the GWP table the multiplier came from
	Assessment GWPAssessment `json:"gwp_assessment"`
}

// EmissionResult is the outcome of one emission calculation.
// An activity may produce more than one result (Scope 2 always yields
// a location-based and a market-based result).
type EmissionResult struct {
	// ActivityID echoes the source activity id
	ActivityID string `json:"activity_id,omitempty"`

	// ActivityName echoes the source activity name
	ActivityName string `json:"activity_name,omitempty"`

	// Scope is the GHG Protocol scope of this result
	Scope Scope `json:"scope"`

	// Scope1Category is set for Scope 1 results
	Scope1Category Scope1Category `json:"scope1_category,omitempty"`

	// Scope2Method is set for Scope 2 results
	Scope2Method Scope2Method `json:"scope2_method,omitempty"`

	// Scope3Category is set for Scope 3 results
	Scope3Category Scope3Category `json:"scope3_category,omitempty"`

	// TotalCO2eKg is the total CO2-equivalent emissions in kg
	TotalCO2eKg decimal.Decimal `json:"total_co2e_kg"`

	// GasBreakdown lists per-gas lines; empty when only a
	// pre-aggregated CO2e factor or a custom factor was available
	GasBreakdown []GasBreakdown `json:"gas_breakdown,omitempty"`

	// FactorID is the resolved factor id; empty for custom factors
	FactorID string `json:"factor_id,omitempty"`

	// FactorSource is the resolved factor's provenance
	FactorSource string `json:"factor_source,omitempty"`

	// ActivityQuantity echoes the input quantity
	ActivityQuantity decimal.Decimal `json:"activity_quantity"`

	// ActivityUnit echoes the input unit
	ActivityUnit string `json:"activity_unit,omitempty"`

	// DataQuality echoes the input data quality score
	DataQuality DataQualityScore `json:"data_quality,omitempty"`

	// Assessment is the GWP table used
	Assessment GWPAssessment `json:"gwp_assessment"`

	// CalculatedAt is when the result was produced
	CalculatedAt time.Time `json:"calculated_at"`

	// Notes carries disclosure text (custom factor used, proxies, ...)
	Notes []string `json:"notes,omitempty"`
}

// TotalCO2eTonnes returns the total in metric tonnes
func (r *EmissionResult) TotalCO2eTonnes() decimal.Decimal {
	return r.TotalCO2eKg.Div(thousand)
}

// ScopeResult aggregates results for a single scope bucket
type ScopeResult struct {
	// Scope is the bucket's scope
	Scope Scope `json:"scope"`

	// TotalCO2eKg is the running sum of contained results
	TotalCO2eKg decimal.Decimal `json:"total_co2e_kg"`

	// Results are the contributing results in insertion order
	Results []EmissionResult `json:"results,omitempty"`
}

// Add appends a result and updates the running total
func (s *ScopeResult) Add(result EmissionResult) {
	s.Results = append(s.Results, result)
	s.TotalCO2eKg = s.TotalCO2eKg.Add(result.TotalCO2eKg)
}

// TotalCO2eTonnes returns the bucket total in metric tonnes
func (s *ScopeResult) TotalCO2eTonnes() decimal.Decimal {
	return s.TotalCO2eKg.Div(thousand)
}

// InventoryResult is a complete GHG inventory across all scopes.
// Scope 2 is held in two buckets per the dual-reporting requirement;
// the headline total uses the location-based bucket by convention.
type InventoryResult struct {
	// Name labels the inventory
	Name string `json:"name"`

	// Year is the reporting year
	Year int `json:"year,omitempty"`

	// Scope1 holds direct emission results
	Scope1 ScopeResult `json:"scope1"`

	// Scope2Location holds location-based Scope 2 results
	Scope2Location ScopeResult `json:"scope2_location"`

	// Scope2Market holds market-based Scope 2 results
	Scope2Market ScopeResult `json:"scope2_market"`

	// Scope3 holds value-chain results
	Scope3 ScopeResult `json:"scope3"`
}

// NewInventoryResult creates an empty inventory with initialized buckets
func NewInventoryResult(name string, year int) *InventoryResult {
	return &InventoryResult{
		Name:           name,
		Year:           year,
		Scope1:         ScopeResult{Scope: Scope1},
		Scope2Location: ScopeResult{Scope: Scope2},
		Scope2Market:   ScopeResult{Scope: Scope2},
		Scope3:         ScopeResult{Scope: Scope3},
	}
}

// Add routes a result to its scope bucket. A Scope 2 result lands in the
// market bucket only when its method is explicitly market-based; all
// other Scope 2 results go to the location bucket.
func (inv *InventoryResult) Add(result EmissionResult) {
	switch result.Scope {
	case Scope1:
		inv.Scope1.Add(result)
	case Scope2:
		if result.Scope2Method == MarketBased {
			inv.Scope2Market.Add(result)
		} else {
			inv.Scope2Location.Add(result)
		}
	case Scope3:
		inv.Scope3.Add(result)
	}
}

// TotalCO2eKg is the headline total: scope 1 + scope 2 (location) + scope 3
func (inv *InventoryResult) TotalCO2eKg() decimal.Decimal {
	return inv.Scope1.TotalCO2eKg.
		Add(inv.Scope2Location.TotalCO2eKg).
		Add(inv.Scope3.TotalCO2eKg)
}

// TotalCO2eTonnes is the headline total in metric tonnes
func (inv *InventoryResult) TotalCO2eTonnes() decimal.Decimal {
	return inv.TotalCO2eKg().Div(thousand)
}

// AllResults returns every result across the four buckets
func (inv *InventoryResult) AllResults() []EmissionResult {
	all := make([]EmissionResult, 0,
		len(inv.Scope1.Results)+len(inv.Scope2Location.Results)+
			len(inv.Scope2Market.Results)+len(inv.Scope3.Results))
	all = append(all, inv.Scope1.Results...)
	all = append(all, inv.Scope2Location.Results...)
	all = append(all, inv.Scope2Market.Results...)
	all = append(all, inv.Scope3.Results...)
	return all
}
