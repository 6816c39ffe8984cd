// Package cmd provides the CLI commands for ghg.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ghg-engine/core/engine"
	"ghg-engine/core/registry"
	"ghg-engine/core/types"
	"ghg-engine/db"
	"ghg-engine/internal/config"
	"ghg-engine/internal/logging"
)

var (
	cfgFile    string
	verbose    bool
	gwpFlag    string
	factorsDir string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ghg",
	Short: "Calculate greenhouse gas emissions per the GHG Protocol",
	Long: `ghg is a GHG Protocol emission calculation tool.

It resolves activity data against embedded emission factor databases
(EPA, DEFRA, eGRID, Ember, USEEIO, EXIOBASE) and produces per-gas
emission results across Scopes 1, 2, and 3.

Examples:
  ghg calculate --scope 1 --fuel natural_gas --quantity 1000 --unit therm
  ghg inventory activities.hcl --format json
  ghg factors --q diesel --source epa
  ghg convert 1 mwh kwh`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is builtin defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&gwpFlag, "gwp", "", "GWP assessment (ar5, ar6)")
	rootCmd.PersistentFlags().StringVar(&factorsDir, "factors-dir", "", "directory of extra factor JSON files")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(factorsCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(gasesCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// openRegistry loads the embedded factor databases plus any extra
// directory given by flag or config.
func openRegistry() (*registry.Registry, error) {
	dir := factorsDir
	if dir == "" {
		dir = config.Get().Factors.DataDir
	}
	if dir != "" {
		return db.Open(dir)
	}
	return db.Default()
}

// assessment resolves the GWP table: flag first, then config.
func assessment() (types.GWPAssessment, error) {
	v := gwpFlag
	if v == "" {
		v = config.Get().Factors.GWPAssessment
	}
	return types.ParseAssessment(v)
}

// newEngine builds a calculation engine from the active configuration
func newEngine() (*engine.Engine, error) {
	reg, err := openRegistry()
	if err != nil {
		return nil, err
	}
	gwp, err := assessment()
	if err != nil {
		return nil, err
	}
	return engine.New(reg, gwp), nil
}

// configDefaultFormat returns the configured default output format
func configDefaultFormat() string {
	return config.Get().Output.DefaultFormat
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ghg version 0.1.0")
	},
}
