// Package cmd - factors and sources commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ghg-engine/core/registry"
	"ghg-engine/core/types"
)

var (
	factorQuery    string
	factorSource   string
	factorCategory string
	factorFuel     string
	factorRegion   string
	factorUnit     string
	factorLimit    int
)

// factorsCmd represents the factors command
var factorsCmd = &cobra.Command{
	Use:   "factors [id]",
	Short: "Search the emission factor databases",
	Long: `Search loaded emission factors, or show one factor by exact id.

Filters combine with AND; the free-text query ranks what remains.

Examples:
  ghg factors --q diesel --source epa
  ghg factors --category electricity --region CAMX
  ghg factors epa_stat_natural_gas_therm`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFactors,
}

func init() {
	factorsCmd.Flags().StringVar(&factorQuery, "q", "", "free-text query")
	factorsCmd.Flags().StringVar(&factorSource, "source", "", "filter by source")
	factorsCmd.Flags().StringVar(&factorCategory, "category", "", "filter by category")
	factorsCmd.Flags().StringVar(&factorFuel, "fuel", "", "filter by fuel type")
	factorsCmd.Flags().StringVar(&factorRegion, "region", "", "filter by region")
	factorsCmd.Flags().StringVar(&factorUnit, "unit", "", "filter by activity unit")
	factorsCmd.Flags().IntVar(&factorLimit, "limit", 0, "maximum results (default 50)")
}

func runFactors(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		factor := reg.Get(args[0])
		if factor == nil {
			return fmt.Errorf("no factor with id %q", args[0])
		}
		printFactor(factor)
		return nil
	}

	results := reg.Search(registry.Query{
		Text:         factorQuery,
		Source:       types.FactorSource(factorSource),
		Category:     factorCategory,
		FuelType:     factorFuel,
		Region:       factorRegion,
		ActivityUnit: factorUnit,
		Limit:        factorLimit,
	})
	if len(results) == 0 {
		fmt.Println("No matching factors.")
		return nil
	}

	fmt.Printf("%-42s %-10s %-24s %-14s %s\n", "ID", "SOURCE", "CATEGORY", "UNIT", "NAME")
	for _, f := range results {
		fmt.Printf("%-42s %-10s %-24s %-14s %s\n",
			truncate(f.ID, 42), f.Source, truncate(f.Category, 24),
			truncate(f.ActivityUnit, 14), f.Name)
	}
	fmt.Printf("\n%d factor(s)\n", len(results))
	return nil
}

func printFactor(f *types.EmissionFactor) {
	fmt.Printf("ID:          %s\n", f.ID)
	fmt.Printf("Name:        %s\n", f.Name)
	fmt.Printf("Source:      %s\n", f.Source)
	fmt.Printf("Category:    %s\n", f.Category)
	if f.Subcategory != "" {
		fmt.Printf("Subcategory: %s\n", f.Subcategory)
	}
	if f.FuelType != "" {
		fmt.Printf("Fuel type:   %s\n", f.FuelType)
	}
	if f.Region != "" {
		fmt.Printf("Region:      %s\n", f.Region)
	}
	fmt.Printf("Unit:        per %s\n", f.ActivityUnit)
	if !f.CO2Factor.IsZero() {
		fmt.Printf("CO2:         %s kg\n", f.CO2Factor)
	}
	if !f.CH4Factor.IsZero() {
		fmt.Printf("CH4:         %s kg\n", f.CH4Factor)
	}
	if !f.N2OFactor.IsZero() {
		fmt.Printf("N2O:         %s kg\n", f.N2OFactor)
	}
	if f.CO2eFactor.Valid {
		fmt.Printf("CO2e:        %s kg\n", f.CO2eFactor.Decimal)
	}
	if f.Description != "" {
		fmt.Printf("Description: %s\n", f.Description)
	}
}

// sourcesCmd lists the loaded factor databases
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List loaded factor databases",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		fmt.Printf("%-12s %-10s %-6s %-8s %s\n", "SOURCE", "VERSION", "YEAR", "FACTORS", "DESCRIPTION")
		for _, v := range reg.Versions() {
			fmt.Printf("%-12s %-10s %-6d %-8d %s\n",
				v.Source, v.Version, v.Year, v.FactorCount(), v.Description)
		}
		fmt.Printf("\n%d factors total\n", reg.Count())
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
