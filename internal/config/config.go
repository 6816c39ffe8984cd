// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"ghg-engine/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Factors contains factor database configuration
	Factors FactorConfig `json:"factors"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains API server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// FactorConfig contains factor database settings
type FactorConfig struct {
	// DataDir is an optional directory of extra factor JSON files,
	// loaded in addition to the embedded databases
	DataDir string `json:"data_dir,omitempty"`

	// PreferredSource is the default factor source preference
	PreferredSource string `json:"preferred_source,omitempty"`

	// GWPAssessment selects the GWP table (ar5, ar6)
	GWPAssessment string `json:"gwp_assessment"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`
}

// ServerConfig contains API server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: "1",
		Factors: FactorConfig{
			GWPAssessment: "ar5",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Load reads a configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Get returns the active configuration
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the active configuration
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}
