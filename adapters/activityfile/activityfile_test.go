package activityfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"ghg-engine/core/types"
	"ghg-engine/internal/errors"
)

const sampleHCL = `
inventory {
  name = "2025 Corporate Inventory"
  year = 2025
}

activity "boiler_gas" {
  scope     = 1
  category  = "stationary_combustion"
  fuel_type = "natural_gas"
  quantity  = 12500
  unit      = "therm"
}

activity "office_power" {
  scope          = 2
  quantity       = 50000
  unit           = "kwh"
  grid_subregion = "CAMX"
}

activity "cloud_spend" {
  scope           = 3
  scope3_category = 1
  quantity        = 1
  unit            = "USD"
  spend_amount    = 120000.50
  naics_code      = 5112
}
`

func TestParseHCL(t *testing.T) {
	doc, err := ParseHCL([]byte(sampleHCL), "sample.hcl")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if doc.Name != "2025 Corporate Inventory" || doc.Year != 2025 {
		t.Errorf("unexpected inventory header: %q %d", doc.Name, doc.Year)
	}
	if len(doc.Activities) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(doc.Activities))
	}

	boiler := doc.Activities[0]
	if boiler.ID != "boiler_gas" {
		t.Errorf("block label should become the id, got %q", boiler.ID)
	}
	if boiler.Scope != types.Scope1 {
		t.Errorf("numeric scope should parse, got %s", boiler.Scope)
	}
	if boiler.Scope1Category != types.StationaryCombustion {
		t.Errorf("unexpected category %s", boiler.Scope1Category)
	}
	if !boiler.Quantity.Equal(decimal.RequireFromString("12500")) {
		t.Errorf("unexpected quantity %s", boiler.Quantity)
	}

	spend := doc.Activities[2]
	if !spend.SpendAmount.Valid || !spend.SpendAmount.Decimal.Equal(decimal.RequireFromString("120000.5")) {
		t.Errorf("unexpected spend amount %v", spend.SpendAmount)
	}
	if spend.NAICSCode != "5112" {
		t.Errorf("numeric naics_code should read as a string, got %q", spend.NAICSCode)
	}
}

func TestParseHCLRejectsUnknownAttribute(t *testing.T) {
	src := `
activity "a" {
  scope    = 1
  quantity = 1
  unit     = "kg"
  fuell    = "typo"
}
`
	_, err := ParseHCL([]byte(src), "bad.hcl")
	if !errors.IsType(err, errors.TypeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestParseHCLValidatesActivities(t *testing.T) {
	src := `
activity "a" {
  scope    = 1
  quantity = -5
  unit     = "kg"
}
`
	_, err := ParseHCL([]byte(src), "bad.hcl")
	if !errors.IsType(err, errors.TypeValidation) {
		t.Errorf("expected validation error for negative quantity, got %v", err)
	}
}

func TestParseHCLSyntaxError(t *testing.T) {
	_, err := ParseHCL([]byte(`activity "a" {`), "broken.hcl")
	if !errors.IsType(err, errors.TypeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestParseJSON(t *testing.T) {
	src := `{
  "name": "JSON Inventory",
  "year": 2025,
  "activities": [
    {
      "id": "fleet",
      "scope": "scope_1",
      "scope1_category": "mobile_combustion",
      "fuel_type": "diesel",
      "quantity": 100,
      "unit": "gallon"
    },
    {
      "scope": 2,
      "quantity": 1000,
      "unit": "kwh",
      "custom_factor": 0.5
    }
  ]
}`
	doc, err := ParseJSON([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(doc.Activities))
	}
	if doc.Activities[0].FuelType != types.FuelDiesel {
		t.Errorf("unexpected fuel %s", doc.Activities[0].FuelType)
	}
	if doc.Activities[1].Scope != types.Scope2 {
		t.Errorf("numeric scope should parse, got %s", doc.Activities[1].Scope)
	}
	if !doc.Activities[1].CustomFactor.Valid {
		t.Error("expected custom factor set")
	}
}

func TestParseJSONUnknownField(t *testing.T) {
	_, err := ParseJSON([]byte(`{"activities":[{"scope":1,"quantity":1,"unit":"kg","bogus":true}]}`))
	if !errors.IsType(err, errors.TypeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	hclPath := filepath.Join(dir, "inv.hcl")
	if err := os.WriteFile(hclPath, []byte(sampleHCL), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := Load(hclPath)
	if err != nil {
		t.Fatalf("load hcl: %v", err)
	}
	if len(doc.Activities) != 3 {
		t.Errorf("expected 3 activities, got %d", len(doc.Activities))
	}

	txtPath := filepath.Join(dir, "inv.txt")
	if err := os.WriteFile(txtPath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(txtPath); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestDefaultInventoryName(t *testing.T) {
	doc, err := ParseJSON([]byte(`{"activities":[]}`))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "GHG Inventory" {
		t.Errorf("expected default name, got %q", doc.Name)
	}
}
