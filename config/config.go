// Package config loads mathpad's configuration: the plot sampling grid and
// overrides for the currency rate table. Configuration is read once at
// startup and frozen thereafter.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"mathpad/currency"
	"mathpad/plot"
)

// Plot is the sampling grid section of the configuration.
type Plot struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Steps int     `yaml:"steps"`
}

// Config is the whole configuration file.
type Config struct {
	Plot Plot `yaml:"plot"`
	// Rates overrides or extends the built-in currency table. Rates are
	// relative to the same base unit as the built-ins.
	Rates map[string]float64 `yaml:"rates"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	s := plot.Default()
	return Config{Plot: Plot{Min: s.Min, Max: s.Max, Steps: s.Steps}}
}

// Load reads a YAML configuration file and decodes it over the defaults, so
// a file only needs the keys it changes. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Sampler returns the plot sampler the configuration describes.
func (c Config) Sampler() plot.Sampler {
	return plot.Sampler{Min: c.Plot.Min, Max: c.Plot.Max, Steps: c.Plot.Steps}
}

// Table returns the currency table with the configured overrides applied.
func (c Config) Table() currency.Table {
	t := currency.Default()
	for k, v := range c.Rates {
		t[k] = v
	}
	return t
}
