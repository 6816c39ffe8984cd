// Package api - HTTP layer over the calculation engine
// The API only ingests input, invokes the engine, and serializes
// output. It never performs emission logic of its own.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"ghg-engine/core/engine"
	"ghg-engine/core/registry"
	"ghg-engine/internal/errors"
	"ghg-engine/internal/logging"
)

// Server is the API server
type Server struct {
	engine   *engine.Engine
	registry *registry.Registry
	mux      *http.ServeMux
	version  string
}

// NewServer creates an API server over an engine and its registry
func NewServer(eng *engine.Engine, reg *registry.Registry, version string) *Server {
	s := &Server{
		engine:   eng,
		registry: reg,
		mux:      http.NewServeMux(),
		version:  version,
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe runs the server on addr until it fails
func (s *Server) ListenAndServe(addr string) error {
	logging.Info("api server listening", zap.String("addr", addr))
	server := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return server.ListenAndServe()
}

func (s *Server) registerRoutes() {
	// Calculation endpoints
	s.mux.HandleFunc("POST /calculate", s.handleCalculate)
	s.mux.HandleFunc("POST /inventory", s.handleInventory)

	// Factor and reference data endpoints
	s.mux.HandleFunc("GET /factors", s.handleSearchFactors)
	s.mux.HandleFunc("GET /factors/{id}", s.handleGetFactor)
	s.mux.HandleFunc("GET /sources", s.handleSources)
	s.mux.HandleFunc("GET /gases", s.handleGases)
	s.mux.HandleFunc("GET /convert", s.handleConvert)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.TypeOf(err)
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    string(code),
			"message": err.Error(),
		},
	}, statusFor(code))
}

// statusFor maps domain error types onto HTTP statuses
func statusFor(code errors.Type) int {
	switch code {
	case errors.TypeValidation, errors.TypeUnitConversion, errors.TypeUnknownGas:
		return http.StatusBadRequest
	case errors.TypeNoFactor:
		return http.StatusNotFound
	case errors.TypeNotSupported:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
