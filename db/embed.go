package db

import (
	"embed"
	"sync"

	"go.uber.org/zap"

	"ghg-engine/core/registry"
	"ghg-engine/internal/errors"
	"ghg-engine/internal/logging"
)

//go:embed data/*.json
var embeddedFS embed.FS

var (
	defaultOnce sync.Once
	defaultReg  *registry.Registry
	defaultErr  error
)

// Default returns the registry of embedded reference databases. The
// registry is built on first use and shared afterwards; embedded data
// never changes at runtime so one build is enough for the process.
func Default() (*registry.Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = loadEmbedded()
	})
	return defaultReg, defaultErr
}

// loadEmbedded parses every embedded document. Unlike LoadDir this
// fails hard on any error: a broken embedded file is a build defect,
// not a runtime condition to tolerate.
func loadEmbedded() (*registry.Registry, error) {
	entries, err := embeddedFS.ReadDir("data")
	if err != nil {
		return nil, errors.FactorLoad("reading embedded factor data", err)
	}

	reg := registry.New()
	for _, entry := range entries {
		data, err := embeddedFS.ReadFile("data/" + entry.Name())
		if err != nil {
			return nil, errors.FactorLoad("reading embedded factor file", err).
				WithContext("file", entry.Name())
		}
		version, err := ParseVersion(data)
		if err != nil {
			return nil, errors.Wrap(errors.TypeFactorLoad, "embedded factor file "+entry.Name(), err)
		}
		reg.AddVersion(version)
	}

	logging.Debug("loaded embedded factor databases",
		zap.Int("sources", len(reg.Versions())),
		zap.Int("factors", reg.Count()))
	return reg, nil
}

// Open builds a registry from the embedded databases plus an optional
// directory of additional factor documents.
func Open(extraDir string) (*registry.Registry, error) {
	reg, err := Default()
	if err != nil {
		return nil, err
	}
	if extraDir == "" {
		return reg, nil
	}

	// The shared embedded registry stays pristine; extra documents go
	// into a fresh registry seeded with the embedded versions.
	merged := registry.New()
	for _, version := range reg.Versions() {
		merged.AddVersion(version)
	}
	if err := LoadDir(merged, extraDir); err != nil {
		return nil, err
	}
	return merged, nil
}
