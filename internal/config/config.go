// Package config loads and saves finplan settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all finplan configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Tax        TaxConfig        `toml:"tax"`
	Invest     InvestConfig     `toml:"invest"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds payoff defaults.
type GeneralConfig struct {
	DefaultStrategy string  `toml:"default_strategy"`
	ExtraPayment    float64 `toml:"extra_payment"`
}

// TaxConfig holds tax estimator defaults.
type TaxConfig struct {
	Year         int     `toml:"year"`
	FilingStatus string  `toml:"filing_status"`
	StateRate    float64 `toml:"state_rate"` // flat percentage, 0 disables
}

// InvestConfig holds investment projection defaults.
type InvestConfig struct {
	AnnualReturn float64 `toml:"annual_return"` // percent
	Inflation    float64 `toml:"inflation"`     // percent
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultStrategy: "avalanche",
		},
		Tax: TaxConfig{
			Year:         2025,
			FilingStatus: "single",
		},
		Invest: InvestConfig{
			AnnualReturn: 7.0,
			Inflation:    2.5,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finplan")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
