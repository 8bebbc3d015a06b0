package config

import (
	"os"
	"testing"
)

func withTempConfigDir(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	withTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DefaultStrategy != "avalanche" {
		t.Errorf("DefaultStrategy = %q, want avalanche", cfg.General.DefaultStrategy)
	}
	if cfg.Tax.Year != 2025 || cfg.Tax.FilingStatus != "single" {
		t.Errorf("tax defaults = %d/%q", cfg.Tax.Year, cfg.Tax.FilingStatus)
	}
	if Exists() {
		t.Error("Exists() = true before any save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	withTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.General.DefaultStrategy = "snowball"
	cfg.General.ExtraPayment = 250
	cfg.Tax.StateRate = 4.25
	cfg.Appearance.Theme = "tokyo-night"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.DefaultStrategy != "snowball" || loaded.General.ExtraPayment != 250 {
		t.Errorf("general = %+v", loaded.General)
	}
	if loaded.Tax.StateRate != 4.25 {
		t.Errorf("StateRate = %v, want 4.25", loaded.Tax.StateRate)
	}
	if loaded.Appearance.Theme != "tokyo-night" {
		t.Errorf("Theme = %q, want tokyo-night", loaded.Appearance.Theme)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	withTempConfigDir(t)

	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("not = [valid"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load on malformed TOML: want error")
	}
}
