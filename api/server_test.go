package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ghg-engine/core/engine"
	"ghg-engine/core/types"
	"ghg-engine/db"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	reg, err := db.Default()
	if err != nil {
		t.Fatalf("loading factors: %v", err)
	}
	return NewServer(engine.New(reg, types.AR5), reg, "test")
}

func doJSON(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON response: %v\n%s", err, rec.Body.String())
		}
	}
	return rec, decoded
}

func TestCalculateEndpoint(t *testing.T) {
	s := testServer(t)

	rec, body := doJSON(t, s, http.MethodPost, "/calculate", `{
		"activity": {
			"scope": 1,
			"scope1_category": "stationary_combustion",
			"fuel_type": "natural_gas",
			"quantity": 1000,
			"unit": "therm"
		}
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	results, ok := body["results"].([]interface{})
	if !ok || len(results) != 1 {
		t.Fatalf("expected 1 result, got %v", body["results"])
	}
	if body["total_co2e_kg"] == "" {
		t.Error("expected a total")
	}
}

func TestCalculateElectricityReturnsTwoResults(t *testing.T) {
	s := testServer(t)

	rec, body := doJSON(t, s, http.MethodPost, "/calculate", `{
		"activity": {"scope": 2, "quantity": 50000, "unit": "kwh", "grid_subregion": "CAMX"}
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	results := body["results"].([]interface{})
	if len(results) != 2 {
		t.Errorf("expected dual scope 2 results, got %d", len(results))
	}
}

func TestCalculateErrorMapping(t *testing.T) {
	s := testServer(t)

	cases := []struct {
		name string
		body string
		code int
		kind string
	}{
		{
			"bad json", `{{`, http.StatusBadRequest, "VALIDATION_ERROR",
		},
		{
			"zero quantity",
			`{"activity": {"scope": 1, "scope1_category": "stationary_combustion", "fuel_type": "diesel", "quantity": 0, "unit": "gallon"}}`,
			http.StatusBadRequest, "VALIDATION_ERROR",
		},
		{
			"no factor",
			`{"activity": {"scope": 1, "scope1_category": "stationary_combustion", "custom_fuel": "unobtainium", "quantity": 1, "unit": "kg"}}`,
			http.StatusNotFound, "NO_MATCHING_FACTOR",
		},
		{
			"bad unit",
			`{"activity": {"scope": 2, "quantity": 10, "unit": "gallon"}}`,
			http.StatusBadRequest, "UNIT_CONVERSION_ERROR",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := doJSON(t, s, http.MethodPost, "/calculate", tc.body)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d: %s", tc.code, rec.Code, rec.Body.String())
			}
			errObj, ok := body["error"].(map[string]interface{})
			if !ok {
				t.Fatalf("expected error envelope, got %v", body)
			}
			if errObj["code"] != tc.kind {
				t.Errorf("expected code %s, got %v", tc.kind, errObj["code"])
			}
		})
	}
}

func TestInventoryEndpoint(t *testing.T) {
	s := testServer(t)

	rec, body := doJSON(t, s, http.MethodPost, "/inventory", `{
		"name": "API Inventory",
		"year": 2025,
		"activities": [
			{"scope": 1, "scope1_category": "stationary_combustion", "fuel_type": "natural_gas", "quantity": 1000, "unit": "therm"},
			{"scope": 2, "quantity": 50000, "unit": "kwh", "grid_subregion": "CAMX"}
		]
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body["name"] != "API Inventory" {
		t.Errorf("expected inventory name echoed, got %v", body["name"])
	}
	if _, ok := body["scope2_market"]; !ok {
		t.Error("expected scope2_market bucket")
	}
}

func TestFactorSearchEndpoint(t *testing.T) {
	s := testServer(t)

	rec, body := doJSON(t, s, http.MethodGet, "/factors?q=diesel&category=mobile_combustion&limit=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	count := int(body["count"].(float64))
	if count < 1 || count > 5 {
		t.Errorf("expected 1-5 factors, got %d", count)
	}
}

func TestGetFactorEndpoint(t *testing.T) {
	s := testServer(t)

	rec, body := doJSON(t, s, http.MethodGet, "/factors/egrid_camx", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body["id"] != "egrid_camx" {
		t.Errorf("expected egrid_camx, got %v", body["id"])
	}

	rec, _ = doJSON(t, s, http.MethodGet, "/factors/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", rec.Code)
	}
}

func TestSourcesEndpoint(t *testing.T) {
	s := testServer(t)

	rec, body := doJSON(t, s, http.MethodGet, "/sources", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if int(body["count"].(float64)) != 6 {
		t.Errorf("expected 6 sources, got %v", body["count"])
	}
}

func TestGasesEndpoint(t *testing.T) {
	s := testServer(t)

	rec, body := doJSON(t, s, http.MethodGet, "/gases?assessment=ar6", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body["assessment"] != "ar6" {
		t.Errorf("expected ar6, got %v", body["assessment"])
	}
	if int(body["count"].(float64)) < 10 {
		t.Errorf("expected a populated GWP table, got %v", body["count"])
	}
}

func TestConvertEndpoint(t *testing.T) {
	s := testServer(t)

	rec, body := doJSON(t, s, http.MethodGet, "/convert?value=1&from=mwh&to=kwh", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body["result"] != "1000" {
		t.Errorf("expected 1000, got %v", body["result"])
	}

	rec, _ = doJSON(t, s, http.MethodGet, "/convert?value=1&from=kg&to=kwh", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for dimension mismatch, got %d", rec.Code)
	}
}

func TestHealthAndVersion(t *testing.T) {
	s := testServer(t)

	rec, body := doJSON(t, s, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || body["status"] != "healthy" {
		t.Errorf("unexpected health response: %d %v", rec.Code, body)
	}

	rec, body = doJSON(t, s, http.MethodGet, "/version", "")
	if rec.Code != http.StatusOK || body["version"] != "test" {
		t.Errorf("unexpected version response: %d %v", rec.Code, body)
	}
}
