package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"ghg-engine/core/types"
)

// cliFormatter renders fixed-width tables for terminal use
type cliFormatter struct{}

func (f *cliFormatter) Format() Format { return FormatCLI }

func (f *cliFormatter) RenderInventory(w io.Writer, inventory *types.InventoryResult) error {
	title := inventory.Name
	if inventory.Year != 0 {
		title = fmt.Sprintf("%s (%d)", title, inventory.Year)
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	fmt.Fprintln(w)

	buckets := []struct {
		label  string
		bucket *types.ScopeResult
	}{
		{"Scope 1 (direct)", &inventory.Scope1},
		{"Scope 2 (location-based)", &inventory.Scope2Location},
		{"Scope 2 (market-based)", &inventory.Scope2Market},
		{"Scope 3 (value chain)", &inventory.Scope3},
	}
	for _, b := range buckets {
		fmt.Fprintf(w, "%-28s %14s kg CO2e  (%s t)\n",
			b.label, formatKg(b.bucket.TotalCO2eKg), b.bucket.TotalCO2eTonnes().StringFixed(3))
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "%-28s %14s kg CO2e  (%s t)\n",
		"Total (S1 + S2 loc + S3)", formatKg(inventory.TotalCO2eKg()), inventory.TotalCO2eTonnes().StringFixed(3))

	if results := inventory.AllResults(); len(results) > 0 {
		fmt.Fprintln(w)
		return f.RenderResults(w, results)
	}
	return nil
}

func (f *cliFormatter) RenderResults(w io.Writer, results []types.EmissionResult) error {
	fmt.Fprintf(w, "%-24s %-10s %-14s %14s  %s\n",
		"ACTIVITY", "SCOPE", "METHOD", "KG CO2E", "FACTOR")
	for i := range results {
		r := &results[i]
		fmt.Fprintf(w, "%-24s %-10s %-14s %14s  %s\n",
			resultLabel(r), scopeLabel(r), methodLabel(r),
			formatKg(r.TotalCO2eKg), factorLabel(r))
		for _, note := range r.Notes {
			fmt.Fprintf(w, "  note: %s\n", note)
		}
	}
	return nil
}

func resultLabel(r *types.EmissionResult) string {
	switch {
	case r.ActivityName != "":
		return truncate(r.ActivityName, 24)
	case r.ActivityID != "":
		return truncate(r.ActivityID, 24)
	}
	return "(unnamed)"
}

func scopeLabel(r *types.EmissionResult) string {
	return string(r.Scope)
}

func methodLabel(r *types.EmissionResult) string {
	switch {
	case r.Scope2Method != "":
		return string(r.Scope2Method)
	case r.Scope1Category != "":
		return string(r.Scope1Category)
	case r.Scope3Category != 0:
		return r.Scope3Category.String()
	}
	return "-"
}

func factorLabel(r *types.EmissionResult) string {
	if r.FactorID == "" {
		return "custom"
	}
	return r.FactorID
}

func formatKg(v decimal.Decimal) string {
	return v.StringFixed(2)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
