// Package main - entry point for the GHG calculation API server
package main

import (
	"flag"
	"fmt"
	"os"

	"ghg-engine/api"
	"ghg-engine/core/engine"
	"ghg-engine/core/types"
	"ghg-engine/db"
	"ghg-engine/internal/config"
	"ghg-engine/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", "", "listen address (default :8080)")
	cfgFile := flag.String("config", "", "config file")
	factorsDir := flag.String("factors-dir", "", "directory of extra factor JSON files")
	gwpFlag := flag.String("gwp", "", "GWP assessment (ar5, ar6)")
	flag.Parse()

	if *cfgFile != "" {
		cfg, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}
	cfg := config.Get()

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	dir := *factorsDir
	if dir == "" {
		dir = cfg.Factors.DataDir
	}

	reg, err := db.Default()
	if dir != "" {
		reg, err = db.Open(dir)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading factor databases: %v\n", err)
		os.Exit(1)
	}

	gwpName := *gwpFlag
	if gwpName == "" {
		gwpName = cfg.Factors.GWPAssessment
	}
	assessment, err := types.ParseAssessment(gwpName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	listen := *addr
	if listen == "" {
		listen = cfg.Server.Addr
	}

	server := api.NewServer(engine.New(reg, assessment), reg, version)

	fmt.Printf("GHG calculation server v%s\n", version)
	fmt.Printf("  %d emission factors loaded, GWP table %s\n", reg.Count(), assessment)
	fmt.Printf("  API: http://localhost%s\n", listen)

	if err := server.ListenAndServe(listen); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
