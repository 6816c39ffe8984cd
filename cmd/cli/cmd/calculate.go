// Package cmd - calculate command
package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"ghg-engine/core/output"
	"ghg-engine/core/types"
)

var (
	calcScope        string
	calcCategory     string
	calcScope3Cat    int
	calcQuantity     string
	calcUnit         string
	calcFuel         string
	calcVehicle      string
	calcRefrigerant  string
	calcSubregion    string
	calcCountry      string
	calcNAICS        string
	calcSpend        string
	calcDistance     string
	calcDistanceUnit string
	calcWeight       string
	calcWeightUnit   string
	calcMode         string
	calcWasteType    string
	calcDisposal     string
	calcCustomFactor string
	calcSource       string
	calcFormat       string
)

// calculateCmd represents the calculate command
var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate emissions for a single activity",
	Long: `Calculate emissions for one activity record given on the command line.

Scope 2 electricity produces two results, one location-based and one
market-based, per GHG Protocol dual reporting.

Examples:
  ghg calculate --scope 1 --fuel diesel --quantity 1000 --unit gallon
  ghg calculate --scope 2 --subregion CAMX --quantity 50000 --unit kwh
  ghg calculate --scope 3 --scope3-category 5 --waste-type paper --quantity 2 --unit tonne
  ghg calculate --scope 1 --refrigerant r-410a --quantity 10 --unit kg`,
	RunE: runCalculate,
}

func init() {
	calculateCmd.Flags().StringVarP(&calcScope, "scope", "s", "", "GHG Protocol scope (1, 2, 3)")
	calculateCmd.Flags().StringVar(&calcCategory, "category", "", "scope 1 category (stationary_combustion, mobile_combustion, fugitive_emissions, process_emissions)")
	calculateCmd.Flags().IntVar(&calcScope3Cat, "scope3-category", 0, "scope 3 category (1-15)")
	calculateCmd.Flags().StringVarP(&calcQuantity, "quantity", "q", "", "activity quantity")
	calculateCmd.Flags().StringVarP(&calcUnit, "unit", "u", "", "unit of the quantity")
	calculateCmd.Flags().StringVar(&calcFuel, "fuel", "", "fuel type for combustion")
	calculateCmd.Flags().StringVar(&calcVehicle, "vehicle", "", "vehicle type hint for mobile combustion")
	calculateCmd.Flags().StringVar(&calcRefrigerant, "refrigerant", "", "refrigerant type for fugitive emissions")
	calculateCmd.Flags().StringVar(&calcSubregion, "subregion", "", "eGRID subregion for scope 2")
	calculateCmd.Flags().StringVar(&calcCountry, "country", "", "country code")
	calculateCmd.Flags().StringVar(&calcNAICS, "naics", "", "NAICS code for spend-based scope 3")
	calculateCmd.Flags().StringVar(&calcSpend, "spend", "", "spend amount in USD for spend-based scope 3")
	calculateCmd.Flags().StringVar(&calcDistance, "distance", "", "distance for transport categories")
	calculateCmd.Flags().StringVar(&calcDistanceUnit, "distance-unit", "", "unit of distance (default km)")
	calculateCmd.Flags().StringVar(&calcWeight, "weight", "", "freight weight")
	calculateCmd.Flags().StringVar(&calcWeightUnit, "weight-unit", "", "unit of weight (default metric_ton)")
	calculateCmd.Flags().StringVar(&calcMode, "mode", "", "transport mode (truck, rail, air, sea)")
	calculateCmd.Flags().StringVar(&calcWasteType, "waste-type", "", "waste type (mixed, paper, plastic, food)")
	calculateCmd.Flags().StringVar(&calcDisposal, "disposal", "", "disposal method (landfill, incineration, recycling)")
	calculateCmd.Flags().StringVar(&calcCustomFactor, "custom-factor", "", "custom factor in kg CO2e per unit, overrides lookup")
	calculateCmd.Flags().StringVar(&calcSource, "source", "", "preferred factor source (epa, defra, egrid, ember, useeio, exiobase)")
	calculateCmd.Flags().StringVarP(&calcFormat, "format", "f", "", "output format (cli, json)")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	activity, err := buildActivity()
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	results, err := eng.CalculateSingle(activity)
	if err != nil {
		return err
	}

	formatter, err := output.New(outputFormat(calcFormat))
	if err != nil {
		return err
	}
	return formatter.RenderResults(os.Stdout, results)
}

// buildActivity assembles an activity record from the calculate flags
func buildActivity() (*types.ActivityRecord, error) {
	if calcScope == "" {
		return nil, fmt.Errorf("--scope is required")
	}
	scope, err := types.ParseScope(calcScope)
	if err != nil {
		return nil, err
	}

	// Spend-based records may give only --spend; the spend doubles as
	// the activity quantity.
	if calcQuantity == "" && calcSpend != "" {
		calcQuantity = calcSpend
	}
	if calcQuantity == "" {
		return nil, fmt.Errorf("--quantity is required")
	}
	quantity, err := decimal.NewFromString(calcQuantity)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity %q: %w", calcQuantity, err)
	}

	activity := &types.ActivityRecord{
		Scope:           scope,
		Scope1Category:  types.Scope1Category(calcCategory),
		Scope3Category:  types.Scope3Category(calcScope3Cat),
		Quantity:        quantity,
		Unit:            calcUnit,
		CustomFuel:      calcFuel,
		VehicleType:     calcVehicle,
		RefrigerantType: calcRefrigerant,
		GridSubregion:   calcSubregion,
		Country:         calcCountry,
		NAICSCode:       calcNAICS,
		DistanceUnit:    calcDistanceUnit,
		WeightUnit:      calcWeightUnit,
		TransportMode:   calcMode,
		WasteType:       calcWasteType,
		DisposalMethod:  calcDisposal,
		FactorSource:    types.FactorSource(calcSource),
	}

	if activity.Scope3Category != 0 && activity.Unit == "" {
		// Spend- and distance-based records carry their own magnitudes.
		activity.Unit = "USD"
	}

	for _, opt := range []struct {
		raw  string
		flag string
		dst  *decimal.NullDecimal
	}{
		{calcSpend, "--spend", &activity.SpendAmount},
		{calcDistance, "--distance", &activity.Distance},
		{calcWeight, "--weight", &activity.Weight},
		{calcCustomFactor, "--custom-factor", &activity.CustomFactor},
	} {
		if opt.raw == "" {
			continue
		}
		value, err := decimal.NewFromString(opt.raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", opt.flag, opt.raw, err)
		}
		*opt.dst = decimal.NullDecimal{Decimal: value, Valid: true}
	}

	return activity, nil
}

// outputFormat resolves the output format: flag first, then config
func outputFormat(flag string) output.Format {
	if flag != "" {
		return output.Format(flag)
	}
	return output.Format(configDefaultFormat())
}
