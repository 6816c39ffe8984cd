// Package types defines the shared domain types for emission calculations.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Scope represents a GHG Protocol emission boundary
type Scope string

const (
	// Scope1 covers direct emissions from owned or controlled sources
	Scope1 Scope = "scope_1"

	// Scope2 covers indirect emissions from purchased energy
	Scope2 Scope = "scope_2"

	// Scope3 covers all other value-chain emissions
	Scope3 Scope = "scope_3"
)

// String returns the string representation
func (s Scope) String() string {
	return string(s)
}

// Valid reports whether the scope is one of the three GHG Protocol scopes
func (s Scope) Valid() bool {
	return s == Scope1 || s == Scope2 || s == Scope3
}

// ParseScope accepts "1"/"2"/"3" and "scope_1"/"scope_2"/"scope_3"
func ParseScope(v string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "scope_1", "scope1":
		return Scope1, nil
	case "2", "scope_2", "scope2":
		return Scope2, nil
	case "3", "scope_3", "scope3":
		return Scope3, nil
	}
	return "", fmt.Errorf("invalid scope: %q", v)
}

// UnmarshalJSON accepts both numeric (1/2/3) and string scope encodings
func (s *Scope) UnmarshalJSON(data []byte) error {
	var num int
	if err := json.Unmarshal(data, &num); err == nil {
		parsed, err := ParseScope(fmt.Sprintf("%d", num))
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseScope(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Scope1Category identifies a Scope 1 emission category
type Scope1Category string

const (
	StationaryCombustion Scope1Category = "stationary_combustion"
	MobileCombustion     Scope1Category = "mobile_combustion"
	FugitiveEmissions    Scope1Category = "fugitive_emissions"
	ProcessEmissions     Scope1Category = "process_emissions"
)

// Scope1Categories lists all Scope 1 categories
func Scope1Categories() []Scope1Category {
	return []Scope1Category{
		StationaryCombustion,
		MobileCombustion,
		FugitiveEmissions,
		ProcessEmissions,
	}
}

// Scope2Method identifies a Scope 2 calculation method
type Scope2Method string

const (
	// LocationBased uses grid-average emission factors
	LocationBased Scope2Method = "location_based"

	// MarketBased uses supplier-specific or residual-mix factors
	MarketBased Scope2Method = "market_based"
)

// Scope3Category is a GHG Protocol Scope 3 category (1-15)
type Scope3Category int

const (
	PurchasedGoodsServices Scope3Category = 1
	CapitalGoods           Scope3Category = 2
	FuelEnergyActivities   Scope3Category = 3
	UpstreamTransport      Scope3Category = 4
	Waste                  Scope3Category = 5
	BusinessTravel         Scope3Category = 6
	EmployeeCommuting      Scope3Category = 7
	UpstreamLeasedAssets   Scope3Category = 8
	DownstreamTransport    Scope3Category = 9
	ProcessingSoldProducts Scope3Category = 10
	UseOfSoldProducts      Scope3Category = 11
	EndOfLifeSoldProducts  Scope3Category = 12
	DownstreamLeasedAssets Scope3Category = 13
	Franchises             Scope3Category = 14
	Investments            Scope3Category = 15
)

// Valid reports whether the category is within 1-15
func (c Scope3Category) Valid() bool {
	return c >= 1 && c <= 15
}

// String returns a short identifier like "category_6"
func (c Scope3Category) String() string {
	return fmt.Sprintf("category_%d", int(c))
}

// GasType identifies a greenhouse gas
type GasType string

const (
	GasCO2 GasType = "co2"
	GasCH4 GasType = "ch4"
	GasN2O GasType = "n2o"
	GasHFC GasType = "hfc"
	GasPFC GasType = "pfc"
	GasSF6 GasType = "sf6"
	GasNF3 GasType = "nf3"

	// GasCO2e marks a quantity that is already CO2-equivalent
	GasCO2e GasType = "co2e"
)

// GWPAssessment selects an IPCC assessment report GWP table
type GWPAssessment string

const (
	// AR5 is the IPCC Fifth Assessment Report (2014)
	AR5 GWPAssessment = "ar5"

	// AR6 is the IPCC Sixth Assessment Report (2021)
	AR6 GWPAssessment = "ar6"
)

// ParseAssessment parses an assessment identifier, defaulting to AR5
func ParseAssessment(v string) (GWPAssessment, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "ar5":
		return AR5, nil
	case "ar6":
		return AR6, nil
	}
	return "", fmt.Errorf("invalid GWP assessment: %q", v)
}

// FactorSource identifies an emission factor database provenance
type FactorSource string

const (
	SourceEPAHub   FactorSource = "epa_hub"
	SourceEGRID    FactorSource = "egrid"
	SourceDEFRA    FactorSource = "defra"
	SourceUSEEIO   FactorSource = "useeio"
	SourceEmber    FactorSource = "ember"
	SourceEXIOBASE FactorSource = "exiobase"
	SourceCustom   FactorSource = "custom"
)

// KnownSources lists all loadable factor sources
func KnownSources() []FactorSource {
	return []FactorSource{
		SourceEPAHub,
		SourceEGRID,
		SourceDEFRA,
		SourceUSEEIO,
		SourceEmber,
		SourceEXIOBASE,
	}
}

// Valid reports whether the source is a known provenance
func (s FactorSource) Valid() bool {
	switch s {
	case SourceEPAHub, SourceEGRID, SourceDEFRA, SourceUSEEIO, SourceEmber, SourceEXIOBASE, SourceCustom:
		return true
	}
	return false
}

// FuelType is a fuel key for combustion factor matching
type FuelType string

const (
	FuelNaturalGas        FuelType = "natural_gas"
	FuelDiesel            FuelType = "diesel"
	FuelGasoline          FuelType = "gasoline"
	FuelPropane           FuelType = "propane"
	FuelFuelOilNo2        FuelType = "fuel_oil_no2"
	FuelFuelOilNo6        FuelType = "fuel_oil_no6"
	FuelKerosene          FuelType = "kerosene"
	FuelLPG               FuelType = "lpg"
	FuelCoalBituminous    FuelType = "coal_bituminous"
	FuelCoalAnthracite    FuelType = "coal_anthracite"
	FuelCoalSubbituminous FuelType = "coal_subbituminous"
	FuelWood              FuelType = "wood"
	FuelLandfillGas       FuelType = "landfill_gas"
	FuelJetFuel           FuelType = "jet_fuel"
	FuelAviationGasoline  FuelType = "aviation_gasoline"
	FuelResidualFuelOil   FuelType = "residual_fuel_oil"
	FuelE85               FuelType = "e85"
	FuelB20               FuelType = "b20"
	FuelCNG               FuelType = "cng"
	FuelLNG               FuelType = "lng"
)

// DataQualityScore is a GHG Protocol data quality indicator (1=best, 5=worst)
type DataQualityScore int

const (
	QualityVeryGood DataQualityScore = 1
	QualityGood     DataQualityScore = 2
	QualityFair     DataQualityScore = 3
	QualityPoor     DataQualityScore = 4
	QualityVeryPoor DataQualityScore = 5
)
