package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"ghg-engine/core/engine"
	"ghg-engine/core/gwp"
	"ghg-engine/core/registry"
	"ghg-engine/core/types"
	"ghg-engine/core/units"
	"ghg-engine/internal/errors"
)

// engineFor returns the shared engine, or a request-scoped one when the
// caller overrides the GWP assessment.
func (s *Server) engineFor(assessment string) (*engine.Engine, error) {
	if assessment == "" {
		return s.engine, nil
	}
	parsed, err := types.ParseAssessment(assessment)
	if err != nil {
		return nil, err
	}
	if parsed == s.engine.Assessment() {
		return s.engine, nil
	}
	return engine.New(s.registry, parsed), nil
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.TypeValidation, "invalid request body", err))
		return
	}

	eng, err := s.engineFor(req.Assessment)
	if err != nil {
		s.writeError(w, err)
		return
	}

	results, err := eng.CalculateSingle(&req.Activity)
	if err != nil {
		s.writeError(w, err)
		return
	}

	total := decimal.Zero
	for _, result := range results {
		total = total.Add(result.TotalCO2eKg)
	}
	s.writeJSON(w, CalculateResponse{
		Results:     results,
		TotalCO2eKg: total.String(),
	}, http.StatusOK)
}

func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	var req InventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.TypeValidation, "invalid request body", err))
		return
	}
	if req.Name == "" {
		req.Name = "GHG Inventory"
	}

	eng, err := s.engineFor(req.Assessment)
	if err != nil {
		s.writeError(w, err)
		return
	}

	inventory, err := eng.CalculateInventory(req.Activities, req.Name, req.Year)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, inventory, http.StatusOK)
}

func (s *Server) handleSearchFactors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.writeError(w, errors.Validationf("invalid limit %q", raw))
			return
		}
		limit = parsed
	}

	factors := s.registry.Search(registry.Query{
		Text:         q.Get("q"),
		Source:       types.FactorSource(q.Get("source")),
		Category:     q.Get("category"),
		FuelType:     q.Get("fuel_type"),
		Region:       q.Get("region"),
		ActivityUnit: q.Get("unit"),
		Limit:        limit,
	})
	s.writeJSON(w, FactorsResponse{Factors: factors, Count: len(factors)}, http.StatusOK)
}

func (s *Server) handleGetFactor(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	factor := s.registry.Get(id)
	if factor == nil {
		s.writeError(w, errors.NoFactor("no factor with id %q", id))
		return
	}
	s.writeJSON(w, factor, http.StatusOK)
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	versions := s.registry.Versions()
	sources := make([]SourceInfo, 0, len(versions))
	for i := range versions {
		v := &versions[i]
		sources = append(sources, SourceInfo{
			Source:      v.Source,
			Version:     v.Version,
			Year:        v.Year,
			Description: v.Description,
			URL:         v.URL,
			FactorCount: v.FactorCount(),
		})
	}
	s.writeJSON(w, map[string]interface{}{
		"sources": sources,
		"count":   len(sources),
	}, http.StatusOK)
}

func (s *Server) handleGases(w http.ResponseWriter, r *http.Request) {
	assessment, err := types.ParseAssessment(r.URL.Query().Get("assessment"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	names := gwp.ListGases(assessment)
	gases := make([]GasInfo, 0, len(names))
	for _, name := range names {
		value, err := gwp.Get(name, assessment)
		if err != nil {
			continue
		}
		gases = append(gases, GasInfo{Gas: name, GWP: value.String()})
	}
	s.writeJSON(w, map[string]interface{}{
		"assessment": assessment,
		"gases":      gases,
		"count":      len(gases),
	}, http.StatusOK)
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to, raw := q.Get("from"), q.Get("to"), q.Get("value")
	if from == "" || to == "" || raw == "" {
		s.writeError(w, errors.Validation("from, to, and value query parameters are required"))
		return
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		s.writeError(w, errors.Validationf("invalid value %q", raw))
		return
	}

	result, err := units.Convert(value, from, to)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, ConvertResponse{
		Value:  value.String(),
		From:   from,
		To:     to,
		Result: result.String(),
	}, http.StatusOK)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"factors": s.registry.Count(),
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "ghg-engine",
		"api_version": "v1",
	}, http.StatusOK)
}
