package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"ghg-engine/core/types"
)

func sampleInventory() *types.InventoryResult {
	inv := types.NewInventoryResult("Test Inventory", 2025)
	inv.Add(types.EmissionResult{
		ActivityName:   "Boiler gas",
		Scope:          types.Scope1,
		Scope1Category: types.StationaryCombustion,
		TotalCO2eKg:    decimal.RequireFromString("5307.45"),
	})
	inv.Add(types.EmissionResult{
		ActivityName: "Office electricity",
		Scope:        types.Scope2,
		Scope2Method: types.LocationBased,
		TotalCO2eKg:  decimal.RequireFromString("11950"),
		FactorID:     "egrid_camx",
	})
	inv.Add(types.EmissionResult{
		ActivityName: "Office electricity",
		Scope:        types.Scope2,
		Scope2Method: types.MarketBased,
		TotalCO2eKg:  decimal.RequireFromString("11950"),
		FactorID:     "egrid_camx",
		Notes:        []string{"Market-based: using grid average as proxy (no supplier-specific data)"},
	})
	return inv
}

func TestNewFormatter(t *testing.T) {
	for _, format := range []Format{FormatCLI, FormatJSON, ""} {
		if _, err := New(format); err != nil {
			t.Errorf("format %q: %v", format, err)
		}
	}
	if _, err := New("yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestCLIRenderInventory(t *testing.T) {
	f, _ := New(FormatCLI)
	var buf bytes.Buffer
	if err := f.RenderInventory(&buf, sampleInventory()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"Test Inventory (2025)",
		"Scope 1 (direct)",
		"Scope 2 (location-based)",
		"Scope 2 (market-based)",
		"Total (S1 + S2 loc + S3)",
		"egrid_camx",
		"note: Market-based",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Headline excludes market-based: 5307.45 + 11950.
	if !strings.Contains(out, "17257.45") {
		t.Errorf("expected headline total 17257.45 in output:\n%s", out)
	}
}

func TestCLIRenderCustomFactorResult(t *testing.T) {
	f, _ := New(FormatCLI)
	var buf bytes.Buffer
	err := f.RenderResults(&buf, []types.EmissionResult{{
		Scope:       types.Scope1,
		TotalCO2eKg: decimal.RequireFromString("1000"),
	}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "custom") {
		t.Errorf("result without factor id should render as custom:\n%s", buf.String())
	}
}

func TestJSONRenderInventory(t *testing.T) {
	f, _ := New(FormatJSON)
	var buf bytes.Buffer
	if err := f.RenderInventory(&buf, sampleInventory()); err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["total_co2e_kg"] != "17257.45" {
		t.Errorf("expected headline total 17257.45, got %v", decoded["total_co2e_kg"])
	}
	if decoded["name"] != "Test Inventory" {
		t.Errorf("expected inventory name, got %v", decoded["name"])
	}
	if _, ok := decoded["scope2_market"]; !ok {
		t.Error("expected scope2_market bucket in JSON")
	}
}
