// Package cmd - convert command
package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"ghg-engine/core/units"
)

// convertCmd converts a value between activity units
var convertCmd = &cobra.Command{
	Use:   "convert [value] [from] [to]",
	Short: "Convert between activity units",
	Long: `Convert a value between units of the same dimension.

Examples:
  ghg convert 1 mwh kwh
  ghg convert 10 lb kg
  ghg convert 100 mile km`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := decimal.NewFromString(args[0])
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[0], err)
		}

		result, err := units.Convert(value, args[1], args[2])
		if err != nil {
			return err
		}

		fmt.Printf("%s %s = %s %s\n", value, args[1], result, args[2])
		return nil
	},
}
