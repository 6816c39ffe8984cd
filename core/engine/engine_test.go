package engine

import (
	"testing"

	"github.com/shopspring/decimal"

	"ghg-engine/core/types"
	"ghg-engine/db"
	"ghg-engine/internal/errors"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	reg, err := db.Default()
	if err != nil {
		t.Fatalf("loading embedded factors: %v", err)
	}
	return New(reg, types.AR5)
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func nullDec(t *testing.T, s string) decimal.NullDecimal {
	t.Helper()
	return decimal.NullDecimal{Decimal: dec(t, s), Valid: true}
}

func calcOne(t *testing.T, e *Engine, activity *types.ActivityRecord) types.EmissionResult {
	t.Helper()
	results, err := e.CalculateSingle(activity)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	return results[0]
}

func TestCustomFactorExactProduct(t *testing.T) {
	e := testEngine(t)

	result := calcOne(t, e, &types.ActivityRecord{
		Scope:          types.Scope1,
		Scope1Category: types.StationaryCombustion,
		Quantity:       dec(t, "100"),
		Unit:           "gallon",
		CustomFactor:   nullDec(t, "10.0"),
	})

	if !result.TotalCO2eKg.Equal(dec(t, "1000")) {
		t.Errorf("expected exactly 1000 kg, got %s", result.TotalCO2eKg)
	}
	if result.FactorID != "" {
		t.Errorf("custom factor result must not reference a registry factor, got %s", result.FactorID)
	}
	if len(result.GasBreakdown) != 0 {
		t.Error("custom factor result must carry no gas breakdown")
	}
	if len(result.Notes) == 0 {
		t.Error("custom factor result must carry a disclosure note")
	}
}

func TestStationaryNaturalGas(t *testing.T) {
	e := testEngine(t)

	result := calcOne(t, e, &types.ActivityRecord{
		Scope:          types.Scope1,
		Scope1Category: types.StationaryCombustion,
		FuelType:       types.FuelNaturalGas,
		Quantity:       dec(t, "1000"),
		Unit:           "therm",
	})

	// 1000 therm of natural gas is roughly 5.3 t CO2e
	if result.TotalCO2eKg.LessThan(dec(t, "5200")) || result.TotalCO2eKg.GreaterThan(dec(t, "5400")) {
		t.Errorf("expected ~5300 kg CO2e, got %s", result.TotalCO2eKg)
	}
	if len(result.GasBreakdown) < 2 {
		t.Errorf("expected CO2, CH4, and N2O lines, got %d", len(result.GasBreakdown))
	}
	if result.FactorID == "" || result.FactorSource != string(types.SourceEPAHub) {
		t.Errorf("expected an EPA factor reference, got id=%q source=%q", result.FactorID, result.FactorSource)
	}
	if result.Scope1Category != types.StationaryCombustion {
		t.Errorf("expected stationary category, got %s", result.Scope1Category)
	}
}

func TestStationaryUnknownFuel(t *testing.T) {
	e := testEngine(t)

	_, err := e.CalculateSingle(&types.ActivityRecord{
		Scope:          types.Scope1,
		Scope1Category: types.StationaryCombustion,
		CustomFuel:     "unobtainium",
		Quantity:       dec(t, "10"),
		Unit:           "kg",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsType(err, errors.TypeNoFactor) {
		t.Errorf("expected no-matching-factor error, got %v", err)
	}
}

func TestMobileDieselGallons(t *testing.T) {
	e := testEngine(t)

	result := calcOne(t, e, &types.ActivityRecord{
		Scope:          types.Scope1,
		Scope1Category: types.MobileCombustion,
		FuelType:       types.FuelDiesel,
		Quantity:       dec(t, "100"),
		Unit:           "gallon",
	})

	// 100 gallons of diesel is just over one tonne of CO2e
	if result.TotalCO2eKg.LessThan(dec(t, "1000")) || result.TotalCO2eKg.GreaterThan(dec(t, "1100")) {
		t.Errorf("expected ~1024 kg CO2e, got %s", result.TotalCO2eKg)
	}
	tonnes := result.TotalCO2eTonnes()
	if tonnes.LessThan(dec(t, "1.0")) || tonnes.GreaterThan(dec(t, "1.1")) {
		t.Errorf("expected ~1.02 t, got %s", tonnes)
	}
}

func TestMobileGasoline(t *testing.T) {
	e := testEngine(t)

	result := calcOne(t, e, &types.ActivityRecord{
		Scope:          types.Scope1,
		Scope1Category: types.MobileCombustion,
		FuelType:       types.FuelGasoline,
		Quantity:       dec(t, "100"),
		Unit:           "gallon",
	})

	if !result.TotalCO2eKg.GreaterThan(dec(t, "800")) {
		t.Errorf("expected more than 800 kg CO2e, got %s", result.TotalCO2eKg)
	}
}

func TestMobileVehicleTypeRanksFactor(t *testing.T) {
	e := testEngine(t)

	result := calcOne(t, e, &types.ActivityRecord{
		Scope:          types.Scope1,
		Scope1Category: types.MobileCombustion,
		FuelType:       types.FuelDiesel,
		VehicleType:    "passenger car",
		Quantity:       dec(t, "100"),
		Unit:           "mile",
	})

	if result.FactorID != "epa_mob_diesel_passenger_car_mile" {
		t.Errorf("expected the passenger car factor, got %s", result.FactorID)
	}
}

func TestFugitiveRefrigerantGWP(t *testing.T) {
	e := testEngine(t)

	result := calcOne(t, e, &types.ActivityRecord{
		Scope:           types.Scope1,
		Scope1Category:  types.FugitiveEmissions,
		RefrigerantType: "r-410a",
		Quantity:        dec(t, "10"),
		Unit:            "kg",
	})

	// AR5 GWP for R-410A is 2088
	if !result.TotalCO2eKg.Equal(dec(t, "20880")) {
		t.Errorf("expected exactly 20880 kg CO2e, got %s", result.TotalCO2eKg)
	}
	if len(result.GasBreakdown) != 1 || result.GasBreakdown[0].Gas != types.GasHFC {
		t.Errorf("expected a single fluorinated-gas line, got %v", result.GasBreakdown)
	}
}

func TestFugitiveMassConversion(t *testing.T) {
	e := testEngine(t)

	result := calcOne(t, e, &types.ActivityRecord{
		Scope:           types.Scope1,
		Scope1Category:  types.FugitiveEmissions,
		RefrigerantType: "hfc-134a",
		Quantity:        dec(t, "10"),
		Unit:            "lb",
	})

	// 10 lb = 4.5359237 kg at AR5 GWP 1300
	want := dec(t, "4.5359237").Mul(dec(t, "1300"))
	if !result.TotalCO2eKg.Equal(want) {
		t.Errorf("expected %s kg CO2e, got %s", want, result.TotalCO2eKg)
	}
}

func TestFugitiveUnknownRefrigerant(t *testing.T) {
	e := testEngine(t)

	_, err := e.CalculateSingle(&types.ActivityRecord{
		Scope:           types.Scope1,
		Scope1Category:  types.FugitiveEmissions,
		RefrigerantType: "r-999x",
		Quantity:        dec(t, "1"),
		Unit:            "kg",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsType(err, errors.TypeNoFactor) {
		t.Errorf("expected no-matching-factor error, got %v", err)
	}
}

func TestProcessRequiresCustomFactor(t *testing.T) {
	e := testEngine(t)

	_, err := e.CalculateSingle(&types.ActivityRecord{
		Scope:          types.Scope1,
		Scope1Category: types.ProcessEmissions,
		Quantity:       dec(t, "500"),
		Unit:           "metric_ton",
	})
	if err == nil {
		t.Fatal("expected error without a custom factor")
	}
	if !errors.IsType(err, errors.TypeNoFactor) {
		t.Errorf("expected no-matching-factor error, got %v", err)
	}

	result := calcOne(t, e, &types.ActivityRecord{
		Scope:          types.Scope1,
		Scope1Category: types.ProcessEmissions,
		Quantity:       dec(t, "500"),
		Unit:           "metric_ton",
		CustomFactor:   nullDec(t, "520"),
	})
	if !result.TotalCO2eKg.Equal(dec(t, "260000")) {
		t.Errorf("expected exactly 260000 kg, got %s", result.TotalCO2eKg)
	}
}

func TestScope1CategoryInference(t *testing.T) {
	e := testEngine(t)

	// A refrigerant implies fugitive emissions.
	result := calcOne(t, e, &types.ActivityRecord{
		Scope:           types.Scope1,
		RefrigerantType: "r-410a",
		Quantity:        dec(t, "1"),
		Unit:            "kg",
	})
	if result.Scope1Category != types.FugitiveEmissions {
		t.Errorf("expected fugitive inference, got %s", result.Scope1Category)
	}

	// A fuel implies stationary combustion.
	result = calcOne(t, e, &types.ActivityRecord{
		Scope:    types.Scope1,
		FuelType: types.FuelNaturalGas,
		Quantity: dec(t, "100"),
		Unit:     "therm",
	})
	if result.Scope1Category != types.StationaryCombustion {
		t.Errorf("expected stationary inference, got %s", result.Scope1Category)
	}

	// Nothing to infer from is a validation error.
	_, err := e.CalculateSingle(&types.ActivityRecord{
		Scope:    types.Scope1,
		Quantity: dec(t, "100"),
		Unit:     "kwh",
	})
	if !errors.IsType(err, errors.TypeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestValidationRejectsBadInput(t *testing.T) {
	e := testEngine(t)

	cases := []types.ActivityRecord{
		{Scope: "scope_9", Quantity: dec(t, "1"), Unit: "kg"},
		{Scope: types.Scope1, Quantity: dec(t, "0"), Unit: "kg"},
		{Scope: types.Scope1, Quantity: dec(t, "-5"), Unit: "kg"},
		{Scope: types.Scope1, Quantity: dec(t, "1")},
	}
	for i := range cases {
		if _, err := e.CalculateSingle(&cases[i]); !errors.IsType(err, errors.TypeValidation) {
			t.Errorf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestCalculateInventory(t *testing.T) {
	e := testEngine(t)

	activities := []types.ActivityRecord{
		{
			Scope:          types.Scope1,
			Scope1Category: types.StationaryCombustion,
			FuelType:       types.FuelNaturalGas,
			Quantity:       dec(t, "1000"),
			Unit:           "therm",
		},
		{
			Scope:         types.Scope2,
			Quantity:      dec(t, "50000"),
			Unit:          "kwh",
			GridSubregion: "CAMX",
		},
		{
			Scope:          types.Scope3,
			Scope3Category: types.BusinessTravel,
			Quantity:       dec(t, "1000"),
			Unit:           "passenger_km",
		},
	}

	inventory, err := e.CalculateInventory(activities, "2025 Inventory", 2025)
	if err != nil {
		t.Fatalf("inventory: %v", err)
	}

	if len(inventory.Scope1.Results) != 1 {
		t.Errorf("expected 1 scope 1 result, got %d", len(inventory.Scope1.Results))
	}
	if len(inventory.Scope2Location.Results) != 1 || len(inventory.Scope2Market.Results) != 1 {
		t.Errorf("expected dual scope 2 results, got location=%d market=%d",
			len(inventory.Scope2Location.Results), len(inventory.Scope2Market.Results))
	}
	if len(inventory.Scope3.Results) != 1 {
		t.Errorf("expected 1 scope 3 result, got %d", len(inventory.Scope3.Results))
	}

	// Headline total excludes the market-based bucket.
	want := inventory.Scope1.TotalCO2eKg.
		Add(inventory.Scope2Location.TotalCO2eKg).
		Add(inventory.Scope3.TotalCO2eKg)
	if !inventory.TotalCO2eKg().Equal(want) {
		t.Errorf("headline total %s != %s", inventory.TotalCO2eKg(), want)
	}
}

func TestCalculateInventoryFailsFast(t *testing.T) {
	e := testEngine(t)

	activities := []types.ActivityRecord{
		{
			Scope:          types.Scope1,
			Scope1Category: types.StationaryCombustion,
			FuelType:       types.FuelNaturalGas,
			Quantity:       dec(t, "1000"),
			Unit:           "therm",
		},
		{
			Scope:          types.Scope1,
			Scope1Category: types.StationaryCombustion,
			CustomFuel:     "unobtainium",
			Quantity:       dec(t, "1"),
			Unit:           "kg",
		},
	}

	if _, err := e.CalculateInventory(activities, "bad", 2025); err == nil {
		t.Fatal("expected the second activity to abort the inventory")
	}
}

func TestCalculateInventoryEmpty(t *testing.T) {
	e := testEngine(t)

	inventory, err := e.CalculateInventory(nil, "empty", 2025)
	if err != nil {
		t.Fatalf("empty inventory must not error: %v", err)
	}
	if !inventory.TotalCO2eKg().IsZero() {
		t.Errorf("expected zero total, got %s", inventory.TotalCO2eKg())
	}
	if len(inventory.AllResults()) != 0 {
		t.Errorf("expected no results, got %d", len(inventory.AllResults()))
	}
}
