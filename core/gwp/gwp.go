// Package gwp holds the IPCC 100-year global warming potential tables
// and converts gas masses to CO2-equivalent.
package gwp

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"ghg-engine/core/types"
	"ghg-engine/internal/errors"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ar5 holds AR5 (2014) values, used by most current reporting frameworks
var ar5 = map[string]decimal.Decimal{
	// Core gases
	"co2": d("1"),
	"ch4": d("28"),
	"n2o": d("265"),
	"sf6": d("23500"),
	"nf3": d("16100"),
	// Common HFCs
	"hfc-23":       d("12400"),
	"hfc-32":       d("677"),
	"hfc-125":      d("3170"),
	"hfc-134a":     d("1300"),
	"hfc-143a":     d("4800"),
	"hfc-152a":     d("138"),
	"hfc-227ea":    d("3350"),
	"hfc-236fa":    d("8060"),
	"hfc-245fa":    d("858"),
	"hfc-365mfc":   d("804"),
	"hfc-43-10mee": d("1650"),
	// Common PFCs
	"cf4":   d("6630"),
	"c2f6":  d("11100"),
	"c3f8":  d("8900"),
	"c4f10": d("9200"),
	"c5f12": d("8550"),
	"c6f14": d("7910"),
	// Refrigerant blends (weighted averages)
	"r-404a": d("3922"),
	"r-407a": d("2107"),
	"r-407c": d("1774"),
	"r-410a": d("2088"),
	"r-507a": d("3985"),
	"r-508b": d("13396"),
}

// ar6 holds AR6 (2021) values
var ar6 = map[string]decimal.Decimal{
	// Core gases
	"co2": d("1"),
	"ch4": d("27.9"),
	"n2o": d("273"),
	"sf6": d("25200"),
	"nf3": d("17400"),
	// Common HFCs
	"hfc-23":       d("14600"),
	"hfc-32":       d("771"),
	"hfc-125":      d("3740"),
	"hfc-134a":     d("1530"),
	"hfc-143a":     d("5810"),
	"hfc-152a":     d("164"),
	"hfc-227ea":    d("3600"),
	"hfc-236fa":    d("8690"),
	"hfc-245fa":    d("962"),
	"hfc-365mfc":   d("914"),
	"hfc-43-10mee": d("1600"),
	// Common PFCs
	"cf4":   d("7380"),
	"c2f6":  d("12400"),
	"c3f8":  d("9290"),
	"c4f10": d("10000"),
	"c5f12": d("9220"),
	"c6f14": d("8620"),
	// Refrigerant blends (recalculated with AR6 component values)
	"r-404a": d("4728"),
	"r-407a": d("2446"),
	"r-407c": d("2088"),
	"r-410a": d("2256"),
	"r-507a": d("4728"),
	"r-508b": d("14760"),
}

var tables = map[types.GWPAssessment]map[string]decimal.Decimal{
	types.AR5: ar5,
	types.AR6: ar6,
}

// Get returns the 100-year GWP value for a gas identifier.
// The identifier is matched case-insensitively. The pseudo-gas "co2e"
// always resolves to 1 regardless of assessment: it marks a quantity
// that is already CO2-equivalent.
func Get(gas string, assessment types.GWPAssessment) (decimal.Decimal, error) {
	key := strings.ToLower(gas)
	if key == string(types.GasCO2e) {
		return decimal.NewFromInt(1), nil
	}

	table, ok := tables[assessment]
	if !ok {
		return decimal.Decimal{}, errors.Newf(errors.TypeUnknownGas,
			"unknown GWP assessment: %q", assessment)
	}
	gwp, ok := table[key]
	if !ok {
		return decimal.Decimal{}, errors.UnknownGas(key, string(assessment))
	}
	return gwp, nil
}

// Has reports whether a gas identifier is present in the assessment table
func Has(gas string, assessment types.GWPAssessment) bool {
	_, err := Get(gas, assessment)
	return err == nil
}

// ToCO2e converts a mass of a specific gas to CO2-equivalent:
// ToCO2e(m, g, a) = m x Get(g, a)
func ToCO2e(massKg decimal.Decimal, gas string, assessment types.GWPAssessment) (decimal.Decimal, error) {
	gwp, err := Get(gas, assessment)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return massKg.Mul(gwp), nil
}

// ListGases returns the sorted gas identifiers for an assessment
func ListGases(assessment types.GWPAssessment) []string {
	table, ok := tables[assessment]
	if !ok {
		return nil
	}
	gases := make([]string, 0, len(table))
	for gas := range table {
		gases = append(gases, gas)
	}
	sort.Strings(gases)
	return gases
}
