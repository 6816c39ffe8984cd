// Package types - Emission factor records
package types

import "github.com/shopspring/decimal"

// EmissionFactor is a single emission factor from a database source.
// Factors are created once at load time and never mutated.
type EmissionFactor struct {
	// ID uniquely identifies this factor across all sources
	ID string `json:"id"`

	// Name is a human-readable label
	Name string `json:"name"`

	// Source is the database provenance
	Source FactorSource `json:"source"`

	// CO2Factor is kg CO2 emitted per activity unit
	CO2Factor decimal.Decimal `json:"co2_factor"`

	// CH4Factor is kg CH4 emitted per activity unit
	CH4Factor decimal.Decimal `json:"ch4_factor"`

	// N2OFactor is kg N2O emitted per activity unit
	N2OFactor decimal.Decimal `json:"n2o_factor"`

	// CO2eFactor is a pre-aggregated kg CO2e per activity unit,
	// set for factors without a per-gas decomposition
	// (refrigerant blends, materials, spend-based sectors)
	CO2eFactor decimal.NullDecimal `json:"co2e_factor,omitempty"`

	// ActivityUnit is the unit the coefficients are expressed per
	ActivityUnit string `json:"activity_unit"`

	// Category is the emission category taxonomy key
	Category string `json:"category"`

	// Subcategory refines the category
	Subcategory string `json:"subcategory,omitempty"`

	// FuelType is an optional fuel or sector key
	FuelType string `json:"fuel_type,omitempty"`

	// Region is an optional geographic code
	Region string `json:"region,omitempty"`

	// Year is the publication year of the underlying data
	Year int `json:"year,omitempty"`

	// Description provides additional context
	Description string `json:"description,omitempty"`

	// Tags are free-text labels used by search
	Tags []string `json:"tags,omitempty"`
}

// HasCO2e reports whether the factor carries a pre-aggregated CO2e value
func (f *EmissionFactor) HasCO2e() bool {
	return f.CO2eFactor.Valid
}

// EffectiveCO2e returns the pre-aggregated CO2e factor, falling back to
// the CO2 coefficient when none is set. Spend-based and material factors
// carry only CO2e; some sources publish only CO2.
func (f *EmissionFactor) EffectiveCO2e() decimal.Decimal {
	if f.CO2eFactor.Valid {
		return f.CO2eFactor.Decimal
	}
	return f.CO2Factor
}

// FactorVersion groups one source's factors with provenance metadata
type FactorVersion struct {
	// Source is the database provenance
	Source FactorSource `json:"source"`

	// Version is the source's version string
	Version string `json:"version"`

	// Year is the publication year
	Year int `json:"year"`

	// Description explains what the source covers
	Description string `json:"description,omitempty"`

	// URL points at the upstream dataset
	URL string `json:"url,omitempty"`

	// Factors are the records in this document
	Factors []EmissionFactor `json:"factors"`
}

// FactorCount returns the number of factors in this version
func (v *FactorVersion) FactorCount() int {
	return len(v.Factors)
}
