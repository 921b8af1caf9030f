// Package config loads generator settings for the demo driver from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Supported values for Config.Precision.
const (
	Float32 = "float32"
	Float64 = "float64"
)

// Config describes one AR process and how much of it to sample.
type Config struct {
	Offset        float64   `yaml:"offset"`
	NoiseVariance float64   `yaml:"noise_variance"`
	Coefficients  []float64 `yaml:"coefficients"` // most recent lag first
	Precision     string    `yaml:"precision"`    // float32 or float64
	Seed          *uint64   `yaml:"seed"`         // nil: global random source

	Samples int `yaml:"samples"`
	BurnIn  int `yaml:"burn_in"` // values drawn and discarded before sampling

	// Optional timestamps for output; Start empty means index only.
	Start    string `yaml:"start"`    // RFC 3339
	Interval string `yaml:"interval"` // time.ParseDuration, e.g. "1h"
}

// Default returns a white noise configuration with unit variance.
func Default() *Config {
	return &Config{
		NoiseVariance: 1,
		Precision:     Float64,
		Samples:       100,
		Interval:      "1h",
	}
}

// Load reads and validates a YAML configuration file. Fields missing from
// the file keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML configuration.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can build a generator.
func (c *Config) Validate() error {
	if math.IsNaN(c.NoiseVariance) || math.IsInf(c.NoiseVariance, 0) || c.NoiseVariance < 0 {
		return fmt.Errorf("%w: noise_variance must be finite and non-negative, got %v", ErrInvalidConfig, c.NoiseVariance)
	}
	switch c.Precision {
	case Float32, Float64:
	default:
		return fmt.Errorf("%w: precision must be %q or %q, got %q", ErrInvalidConfig, Float32, Float64, c.Precision)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidConfig, c.Samples)
	}
	if c.BurnIn < 0 {
		return fmt.Errorf("%w: burn_in must not be negative, got %d", ErrInvalidConfig, c.BurnIn)
	}
	if c.Start != "" {
		if _, err := c.StartTime(); err != nil {
			return fmt.Errorf("%w: start: %v", ErrInvalidConfig, err)
		}
		d, err := c.IntervalDuration()
		if err != nil {
			return fmt.Errorf("%w: interval: %v", ErrInvalidConfig, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: interval must be positive, got %s", ErrInvalidConfig, c.Interval)
		}
	}
	return nil
}

// StartTime parses Start. The zero time is returned when Start is empty.
func (c *Config) StartTime() (time.Time, error) {
	if c.Start == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, c.Start)
}

// IntervalDuration parses Interval.
func (c *Config) IntervalDuration() (time.Duration, error) {
	return time.ParseDuration(c.Interval)
}
