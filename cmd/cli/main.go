// Package main is the entry point for the ghg CLI.
package main

import (
	"os"

	"ghg-engine/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
