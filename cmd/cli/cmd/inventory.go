// Package cmd - inventory command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ghg-engine/adapters/activityfile"
	"ghg-engine/core/output"
	"ghg-engine/internal/logging"
)

var (
	invFormat string
	invName   string
	invYear   int
)

// inventoryCmd represents the inventory command
var inventoryCmd = &cobra.Command{
	Use:   "inventory [file]",
	Short: "Calculate a full emissions inventory from an activity file",
	Long: `Read an activity file (.hcl or .json) and calculate every activity
in it, aggregating results into scope totals.

Scope 2 totals are dual reported: the headline total uses the
location-based bucket, and the market-based bucket is shown alongside.

Examples:
  ghg inventory activities.hcl
  ghg inventory --format json activities.json
  ghg inventory --gwp ar6 activities.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runInventory,
}

func init() {
	inventoryCmd.Flags().StringVarP(&invFormat, "format", "f", "", "output format (cli, json)")
	inventoryCmd.Flags().StringVar(&invName, "name", "", "override the inventory name")
	inventoryCmd.Flags().IntVar(&invYear, "year", 0, "override the reporting year")
}

func runInventory(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}

	doc, err := activityfile.Load(path)
	if err != nil {
		return err
	}

	name := doc.Name
	if invName != "" {
		name = invName
	}
	year := doc.Year
	if invYear != 0 {
		year = invYear
	}

	logging.Info("calculating inventory",
		zap.String("file", path),
		zap.Int("activities", len(doc.Activities)))

	eng, err := newEngine()
	if err != nil {
		return err
	}

	inventory, err := eng.CalculateInventory(doc.Activities, name, year)
	if err != nil {
		return err
	}

	formatter, err := output.New(outputFormat(invFormat))
	if err != nil {
		return err
	}
	return formatter.RenderInventory(os.Stdout, inventory)
}
