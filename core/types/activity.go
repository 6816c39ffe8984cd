// Package types - Activity record, the universal calculation input
package types

import (
	"github.com/shopspring/decimal"

	"ghg-engine/internal/errors"
)

// ActivityRecord is the universal input for an emission calculation.
// The required fields vary by scope and category; Validate enforces the
// invariants common to all scopes. Records are immutable once built.
type ActivityRecord struct {
	// ID optionally identifies the activity for result correlation
	ID string `json:"id,omitempty"`

	// Name is a human-readable label
	Name string `json:"name,omitempty"`

	// Description provides additional context
	Description string `json:"description,omitempty"`

	// Scope is the GHG Protocol scope (required)
	Scope Scope `json:"scope"`

	// Scope1Category selects the Scope 1 calculator; inferred from
	// refrigerant/fuel fields when absent
	Scope1Category Scope1Category `json:"scope1_category,omitempty"`

	// Scope2Method optionally fixes the method for custom-factor results
	Scope2Method Scope2Method `json:"scope2_method,omitempty"`

	// Scope3Category is the Scope 3 category (1-15), required for scope 3
	Scope3Category Scope3Category `json:"scope3_category,omitempty"`

	// Quantity is the activity amount; must be strictly positive
	Quantity decimal.Decimal `json:"quantity"`

	// Unit is the unit of Quantity (required)
	Unit string `json:"unit"`

	// FuelType is a known fuel key for combustion lookups
	FuelType FuelType `json:"fuel_type,omitempty"`

	// CustomFuel is a free-text fuel key when FuelType does not apply
	CustomFuel string `json:"custom_fuel,omitempty"`

	// Country is an ISO-style country code for regional factors
	Country string `json:"country,omitempty"`

	// Region is a generic geographic code
	Region string `json:"region,omitempty"`

	// GridSubregion is a sub-national grid code (eGRID) for Scope 2
	GridSubregion string `json:"grid_subregion,omitempty"`

	// CustomFactor overrides factor resolution entirely:
	// total CO2e = Quantity x CustomFactor (kg CO2e per Unit)
	CustomFactor decimal.NullDecimal `json:"custom_factor,omitempty"`

	// FactorSource is an optional source preference for lookups
	FactorSource FactorSource `json:"factor_source,omitempty"`

	// Year is the reporting year of the activity
	Year int `json:"year,omitempty"`

	// DataQuality is an optional data quality indicator (1-5)
	DataQuality DataQualityScore `json:"data_quality,omitempty"`

	// SpendAmount triggers the spend-based Scope 3 path
	SpendAmount decimal.NullDecimal `json:"spend_amount,omitempty"`

	// SpendCurrency is the currency of SpendAmount (default USD)
	SpendCurrency string `json:"spend_currency,omitempty"`

	// NAICSCode keys spend-based input-output factors
	NAICSCode string `json:"naics_code,omitempty"`

	// Distance triggers the distance-based Scope 3 path for transport
	Distance decimal.NullDecimal `json:"distance,omitempty"`

	// DistanceUnit is the unit of Distance (default km)
	DistanceUnit string `json:"distance_unit,omitempty"`

	// Weight is freight weight for weight-distance composite factors
	Weight decimal.NullDecimal `json:"weight,omitempty"`

	// WeightUnit is the unit of Weight (default metric_ton)
	WeightUnit string `json:"weight_unit,omitempty"`

	// VehicleType is a vehicle hint for mobile/transport matching
	VehicleType string `json:"vehicle_type,omitempty"`

	// TransportMode selects a transport factor (truck, rail, air, sea, ...)
	TransportMode string `json:"transport_mode,omitempty"`

	// WasteType keys waste factors (mixed, paper, plastic, food, ...)
	WasteType string `json:"waste_type,omitempty"`

	// DisposalMethod keys waste factors (landfill, incineration, ...)
	DisposalMethod string `json:"disposal_method,omitempty"`

	// RefrigerantType keys fugitive emission GWP lookup (e.g. "r-410a")
	RefrigerantType string `json:"refrigerant_type,omitempty"`

	// Tags carries arbitrary caller metadata, echoed but never read
	Tags map[string]string `json:"tags,omitempty"`
}

// FuelKey returns the fuel key used for registry matching: the declared
// FuelType when set, otherwise the free-text CustomFuel.
func (a *ActivityRecord) FuelKey() string {
	if a.FuelType != "" {
		return string(a.FuelType)
	}
	return a.CustomFuel
}

// Validate checks the invariants common to all scopes
func (a *ActivityRecord) Validate() error {
	if !a.Scope.Valid() {
		return errors.Validationf("invalid scope: %q (want scope_1, scope_2, or scope_3)", a.Scope)
	}
	if !a.Quantity.IsPositive() {
		return errors.Validationf("quantity must be strictly positive, got %s", a.Quantity)
	}
	if a.Unit == "" {
		return errors.Validation("unit is required")
	}
	if a.Scope3Category != 0 && !a.Scope3Category.Valid() {
		return errors.Validationf("scope3_category must be 1-15, got %d", a.Scope3Category)
	}
	if a.SpendAmount.Valid && !a.SpendAmount.Decimal.IsPositive() {
		return errors.Validation("spend_amount must be strictly positive")
	}
	if a.Distance.Valid && !a.Distance.Decimal.IsPositive() {
		return errors.Validation("distance must be strictly positive")
	}
	if a.Weight.Valid && !a.Weight.Decimal.IsPositive() {
		return errors.Validation("weight must be strictly positive")
	}
	if a.FactorSource != "" && !a.FactorSource.Valid() {
		return errors.Validationf("unknown factor_source: %q", a.FactorSource)
	}
	return nil
}
