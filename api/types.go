// Package api - Request and response contracts
package api

import (
	"ghg-engine/core/types"
)

// CalculateRequest is the input to POST /calculate
type CalculateRequest struct {
	// Activity is the emission source to calculate
	Activity types.ActivityRecord `json:"activity"`

	// Assessment optionally overrides the server's GWP table
	Assessment string `json:"gwp_assessment,omitempty"`
}

// CalculateResponse is the output of POST /calculate
type CalculateResponse struct {
	// Results are the calculation outcomes (two for grid electricity)
	Results []types.EmissionResult `json:"results"`

	// TotalCO2eKg sums the results
	TotalCO2eKg string `json:"total_co2e_kg"`
}

// InventoryRequest is the input to POST /inventory
type InventoryRequest struct {
	// Name labels the inventory
	Name string `json:"name,omitempty"`

	// Year is the reporting year
	Year int `json:"year,omitempty"`

	// Activities are the emission sources
	Activities []types.ActivityRecord `json:"activities"`

	// Assessment optionally overrides the server's GWP table
	Assessment string `json:"gwp_assessment,omitempty"`
}

// FactorsResponse is the output of GET /factors
type FactorsResponse struct {
	// Factors are the matching records
	Factors []*types.EmissionFactor `json:"factors"`

	// Count is len(Factors)
	Count int `json:"count"`
}

// SourceInfo describes one loaded factor database
type SourceInfo struct {
	// Source is the database provenance key
	Source types.FactorSource `json:"source"`

	// Version is the source's version string
	Version string `json:"version"`

	// Year is the publication year
	Year int `json:"year"`

	// Description explains what the source covers
	Description string `json:"description,omitempty"`

	// URL points at the upstream dataset
	URL string `json:"url,omitempty"`

	// FactorCount is the number of loaded factors
	FactorCount int `json:"factor_count"`
}

// GasInfo is one GWP table entry
type GasInfo struct {
	// Gas is the gas or refrigerant identifier
	Gas string `json:"gas"`

	// GWP is the 100-year warming potential
	GWP string `json:"gwp"`
}

// ConvertResponse is the output of GET /convert
type ConvertResponse struct {
	// Value is the input value
	Value string `json:"value"`

	// From is the input unit
	From string `json:"from"`

	// To is the output unit
	To string `json:"to"`

	// Result is the converted value
	Result string `json:"result"`
}
