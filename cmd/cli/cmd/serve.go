// Package cmd - serve command
package cmd

import (
	"github.com/spf13/cobra"

	"ghg-engine/api"
	"ghg-engine/core/engine"
	"ghg-engine/internal/config"
)

var serveAddr string

// serveCmd starts the HTTP API server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP calculation API",
	Long: `Start an HTTP server exposing the calculation engine: single
calculations, inventories, factor search, GWP lookup, and unit
conversion.

Examples:
  ghg serve
  ghg serve --addr :9090 --gwp ar6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		gwp, err := assessment()
		if err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" {
			addr = config.Get().Server.Addr
		}

		server := api.NewServer(engine.New(reg, gwp), reg, "0.1.0")
		return server.ListenAndServe(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :8080)")
}
