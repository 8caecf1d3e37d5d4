// Package config holds the CLI settings: where the static dump lives and
// the default routing preferences. Settings load from an optional YAML file
// and fall back to defaults field by field.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Penalties is the configurable security penalty table for safer routing.
type Penalties struct {
	Highsec float64 `yaml:"highsec"`
	Lowsec  float64 `yaml:"lowsec"`
	Nullsec float64 `yaml:"nullsec"`
}

// Config holds application settings.
type Config struct {
	// DumpPath is the SQLite static dump to load the universe from.
	DumpPath string `yaml:"dump_path"`
	// PreferSafer makes safer routing the default for route queries.
	PreferSafer bool `yaml:"prefer_safer"`
	// Penalties tunes the cost of entering lowsec/nullsec systems.
	Penalties Penalties `yaml:"security_penalties"`
	// Avoid lists system names excluded from every route.
	Avoid []string `yaml:"avoid"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DumpPath: "universe.sqlite",
		Penalties: Penalties{
			Highsec: 0,
			Lowsec:  9,
			Nullsec: 11,
		},
	}
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
