package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Factors.GWPAssessment != "ar5" {
		t.Errorf("default assessment %s, want ar5", cfg.Factors.GWPAssessment)
	}
	if cfg.Output.DefaultFormat != "cli" {
		t.Errorf("default format %s, want cli", cfg.Output.DefaultFormat)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("default addr %s, want :8080", cfg.Server.Addr)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"factors": {"gwp_assessment": "ar6", "data_dir": "/var/factors"},
		"server": {"addr": ":9090"}
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Factors.GWPAssessment != "ar6" {
		t.Errorf("assessment %s, want ar6", cfg.Factors.GWPAssessment)
	}
	if cfg.Factors.DataDir != "/var/factors" {
		t.Errorf("data dir %s", cfg.Factors.DataDir)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr %s, want :9090", cfg.Server.Addr)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Output.DefaultFormat != "cli" {
		t.Errorf("format %s, want cli", cfg.Output.DefaultFormat)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestGetSet(t *testing.T) {
	original := Get()
	defer Set(original)

	cfg := Default()
	cfg.Server.Addr = ":1234"
	Set(cfg)
	if Get().Server.Addr != ":1234" {
		t.Error("Set should replace the active configuration")
	}
}
