// Package db loads emission factor databases. The six reference
// sources ship embedded in the binary; additional documents can be
// loaded from a directory at runtime to extend or override them.
package db

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"ghg-engine/core/registry"
	"ghg-engine/core/types"
	"ghg-engine/internal/errors"
	"ghg-engine/internal/logging"
)

// ParseVersion decodes and validates one factor document
func ParseVersion(data []byte) (types.FactorVersion, error) {
	var version types.FactorVersion
	if err := json.Unmarshal(data, &version); err != nil {
		return version, errors.FactorLoad("invalid factor document", err)
	}
	if err := validateVersion(&version); err != nil {
		return version, err
	}
	return version, nil
}

// validateVersion rejects documents that would poison calculations:
// missing provenance, duplicate or empty ids, or factors without a
// unit. Coefficient values are not judged: negative coefficients are
// legitimate (biogenic and removal factors) and so are all-zero ones
// (near-fully renewable grids such as Iceland's).
func validateVersion(v *types.FactorVersion) error {
	if v.Source == "" {
		return errors.FactorLoad("document missing source", nil)
	}
	if len(v.Factors) == 0 {
		return errors.FactorLoad("document has no factors", nil)
	}

	seen := make(map[string]bool, len(v.Factors))
	for i := range v.Factors {
		f := &v.Factors[i]
		if f.ID == "" {
			return errors.FactorLoad("factor with empty id", nil).
				WithContext("source", string(v.Source))
		}
		if seen[f.ID] {
			return errors.FactorLoad("duplicate factor id", nil).
				WithContext("id", f.ID)
		}
		seen[f.ID] = true

		if f.ActivityUnit == "" {
			return errors.FactorLoad("factor missing activity_unit", nil).
				WithContext("id", f.ID)
		}
		if f.Source == "" {
			f.Source = v.Source
		}
	}
	return nil
}

// LoadDir reads every *.json document under dir into the registry.
// A malformed document is skipped with a warning rather than failing
// the whole load, so one bad custom file cannot take down the six
// reference databases.
func LoadDir(reg *registry.Registry, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.FactorLoad("reading factor directory", err).
			WithContext("dir", dir)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			logging.Warn("skipping unreadable factor file",
				zap.String("path", path), zap.Error(err))
			continue
		}
		version, err := ParseVersion(data)
		if err != nil {
			logging.Warn("skipping invalid factor file",
				zap.String("path", path), zap.Error(err))
			continue
		}
		reg.AddVersion(version)
		loaded++
		logging.Debug("loaded factor file",
			zap.String("path", path),
			zap.String("source", string(version.Source)),
			zap.Int("factors", version.FactorCount()))
	}

	if loaded == 0 {
		return errors.FactorLoad("no usable factor files", nil).
			WithContext("dir", dir)
	}
	return nil
}
