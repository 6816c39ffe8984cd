// Package units converts between the physical units used in GHG
// accounting. It is a flat ratio table, not a general unit algebra:
// every known unit belongs to one dimension and carries an exact ratio
// to that dimension's base unit. Unknown units (including compound
// units like tonne_km or passenger_km) only convert to themselves.
package units

import (
	"strings"

	"github.com/shopspring/decimal"

	"ghg-engine/internal/errors"
)

// Dimension identifies a unit's physical dimension
type Dimension string

const (
	Energy   Dimension = "energy"
	Mass     Dimension = "mass"
	Volume   Dimension = "volume"
	Distance Dimension = "distance"
)

type unitDef struct {
	dim Dimension
	// ratio is base units per one of this unit
	ratio decimal.Decimal
}

func def(dim Dimension, ratio string) unitDef {
	return unitDef{dim: dim, ratio: decimal.RequireFromString(ratio)}
}

// Base units: BTU (energy), kg (mass), liter (volume), km (distance).
// Gas volume units (CCF, MCF, scf) are carried in the energy dimension
// at standard natural gas heat content, which is how factor databases
// use them.
var units = map[string]unitDef{
	// Energy
	"btu":       def(Energy, "1"),
	"therm":     def(Energy, "100000"),
	"dekatherm": def(Energy, "1000000"),
	"mmbtu":     def(Energy, "1000000"),
	"kwh":       def(Energy, "3412.142"),
	"mwh":       def(Energy, "3412142"),
	"mj":        def(Energy, "947.817"),
	"gj":        def(Energy, "947817"),
	"ccf":       def(Energy, "103700"),
	"mcf":       def(Energy, "1037000"),
	"scf":       def(Energy, "1037"),

	// Mass
	"kg":         def(Mass, "1"),
	"g":          def(Mass, "0.001"),
	"lb":         def(Mass, "0.45359237"),
	"short_ton":  def(Mass, "907.18474"),
	"metric_ton": def(Mass, "1000"),
	"tonne":      def(Mass, "1000"),

	// Volume
	"liter":  def(Volume, "1"),
	"gallon": def(Volume, "3.785411784"),
	"m3":     def(Volume, "1000"),

	// Distance
	"km":   def(Distance, "1"),
	"mile": def(Distance, "1.609344"),
	"m":    def(Distance, "0.001"),
}

// aliases maps spellings seen in factor databases and user input onto
// canonical unit keys
var aliases = map[string]string{
	"kilowatt_hour": "kwh",
	"kilowatt-hour": "kwh",
	"megawatt_hour": "mwh",
	"therms":        "therm",
	"btus":          "btu",
	"kgs":           "kg",
	"gram":          "g",
	"lbs":           "lb",
	"pound":         "lb",
	"pounds":        "lb",
	"metric_tonne":  "tonne",
	"tonnes":        "tonne",
	"litre":         "liter",
	"litres":        "liter",
	"liters":        "liter",
	"l":             "liter",
	"gal":           "gallon",
	"gallons":       "gallon",
	"kilometer":     "km",
	"kilometers":    "km",
	"kilometre":     "km",
	"mi":            "mile",
	"miles":         "mile",
	"meter":         "m",
}

func normalize(unit string) string {
	key := strings.ToLower(strings.TrimSpace(unit))
	if canonical, ok := aliases[key]; ok {
		return canonical
	}
	return key
}

// Known reports whether the unit is in the conversion table
func Known(unit string) bool {
	_, ok := units[normalize(unit)]
	return ok
}

// Same reports whether two unit spellings name the same unit
func Same(a, b string) bool {
	return normalize(a) == normalize(b)
}

// IsCompatible reports whether a value can be converted between the two
// units. Identical spellings are always compatible, which is what makes
// compound units (tonne_km, passenger_km, USD, night) pass through.
func IsCompatible(from, to string) bool {
	if Same(from, to) {
		return true
	}
	fromDef, okFrom := units[normalize(from)]
	toDef, okTo := units[normalize(to)]
	return okFrom && okTo && fromDef.dim == toDef.dim
}

// Convert converts a value between units. Converting a unit to itself
// returns the value unchanged, even for units outside the table.
func Convert(value decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if Same(from, to) {
		return value, nil
	}

	fromDef, ok := units[normalize(from)]
	if !ok {
		return decimal.Decimal{}, errors.Newf(errors.TypeUnitConversion,
			"unknown unit: %q", from)
	}
	toDef, ok := units[normalize(to)]
	if !ok {
		return decimal.Decimal{}, errors.Newf(errors.TypeUnitConversion,
			"unknown unit: %q", to)
	}
	if fromDef.dim != toDef.dim {
		return decimal.Decimal{}, errors.Newf(errors.TypeUnitConversion,
			"cannot convert %s (%s) to %s (%s)", from, fromDef.dim, to, toDef.dim)
	}

	return value.Mul(fromDef.ratio).Div(toDef.ratio), nil
}
