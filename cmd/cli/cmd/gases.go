// Package cmd - gases command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ghg-engine/core/gwp"
)

// gasesCmd lists the gases of the selected GWP table
var gasesCmd = &cobra.Command{
	Use:   "gases",
	Short: "List known gases and their global warming potentials",
	Long: `List every gas in the selected GWP assessment with its 100-year
global warming potential.

Examples:
  ghg gases
  ghg gases --gwp ar6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := assessment()
		if err != nil {
			return err
		}

		fmt.Printf("GWP assessment: %s\n\n", table)
		fmt.Printf("%-16s %s\n", "GAS", "GWP (kg CO2e/kg)")
		for _, gas := range gwp.ListGases(table) {
			value, err := gwp.Get(gas, table)
			if err != nil {
				return err
			}
			fmt.Printf("%-16s %s\n", gas, value)
		}
		return nil
	},
}
