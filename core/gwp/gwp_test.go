package gwp

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"

	"ghg-engine/core/types"
	"ghg-engine/internal/errors"
)

func TestGetCoreGases(t *testing.T) {
	cases := []struct {
		gas        string
		assessment types.GWPAssessment
		want       string
	}{
		{"co2", types.AR5, "1"},
		{"co2", types.AR6, "1"},
		{"ch4", types.AR5, "28"},
		{"ch4", types.AR6, "27.9"},
		{"n2o", types.AR5, "265"},
		{"n2o", types.AR6, "273"},
		{"sf6", types.AR5, "23500"},
		{"sf6", types.AR6, "25200"},
	}
	for _, tc := range cases {
		got, err := Get(tc.gas, tc.assessment)
		if err != nil {
			t.Errorf("%s/%s: %v", tc.gas, tc.assessment, err)
			continue
		}
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("%s/%s: got %s, want %s", tc.gas, tc.assessment, got, tc.want)
		}
	}
}

func TestGetRefrigerants(t *testing.T) {
	got, err := Get("r-410a", types.AR5)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(decimal.RequireFromString("2088")) {
		t.Errorf("r-410a AR5: got %s, want 2088", got)
	}

	got, err = Get("hfc-134a", types.AR6)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(decimal.RequireFromString("1530")) {
		t.Errorf("hfc-134a AR6: got %s, want 1530", got)
	}
}

func TestGetCaseInsensitive(t *testing.T) {
	upper, err := Get("CH4", types.AR5)
	if err != nil {
		t.Fatal(err)
	}
	lower, _ := Get("ch4", types.AR5)
	if !upper.Equal(lower) {
		t.Error("gas lookup should ignore case")
	}
}

func TestGetCO2eIsAlwaysUnity(t *testing.T) {
	for _, assessment := range []types.GWPAssessment{types.AR5, types.AR6} {
		got, err := Get("co2e", assessment)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(decimal.NewFromInt(1)) {
			t.Errorf("co2e/%s: got %s, want 1", assessment, got)
		}
	}
}

func TestGetUnknownGas(t *testing.T) {
	_, err := Get("r-999x", types.AR5)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsType(err, errors.TypeUnknownGas) {
		t.Errorf("expected unknown gas error, got %v", err)
	}
}

func TestToCO2e(t *testing.T) {
	got, err := ToCO2e(decimal.RequireFromString("10"), "ch4", types.AR5)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(decimal.RequireFromString("280")) {
		t.Errorf("10 kg CH4 = %s kg CO2e, want 280", got)
	}
}

func TestHas(t *testing.T) {
	if !Has("ch4", types.AR5) {
		t.Error("ch4 should be known")
	}
	if Has("r-999x", types.AR6) {
		t.Error("r-999x should be unknown")
	}
}

func TestListGasesSorted(t *testing.T) {
	gases := ListGases(types.AR5)
	if len(gases) < 20 {
		t.Errorf("expected a populated table, got %d gases", len(gases))
	}
	if !sort.StringsAreSorted(gases) {
		t.Error("gases should be sorted")
	}
}
