// Package config loads generator settings for the demo driver from YAML.
//
//	offset: 5.0
//	noise_variance: 1.0
//	coefficients: [0.5]   # most recent lag first
//	precision: float64    # or float32
//	seed: 42              # omit for the global random source
//	samples: 100
//	burn_in: 0
//	start: 2024-01-01T00:00:00Z  # optional, adds timestamps
//	interval: 1h
//
// Load and Parse start from Default, so omitted keys keep their defaults.
package config
