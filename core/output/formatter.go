// Package output renders calculation results for humans and machines.
package output

import (
	"io"

	"ghg-engine/core/types"
	"ghg-engine/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter renders an inventory in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderInventory writes a complete inventory
	RenderInventory(w io.Writer, inventory *types.InventoryResult) error

	// RenderResults writes standalone calculation results
	RenderResults(w io.Writer, results []types.EmissionResult) error
}

// New returns the formatter for a format name
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCLI, "":
		return &cliFormatter{}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	}
	return nil, errors.Validationf("unknown output format: %q (want cli or json)", format)
}
