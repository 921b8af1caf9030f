// Package goar generates synthetic time series from autoregressive processes.
//
// An AR(N) process produces each value from its N previous values, a
// constant offset and Gaussian white noise. GoAR keeps the last N values in
// a window and produces the next one on demand, so a series of any length
// can be drawn one value at a time.
//
// # Features
//
//   - Generic generator over float32 and float64
//   - Infinite lazy sequences via iter.Seq
//   - Reproducible sampling with seeded math/rand/v2 sources
//   - Pluggable noise for deterministic runs
//   - Sample diagnostics (ACF, PACF, Ljung-Box)
//   - CSV output with index or timestamps
//
// # Quick Start
//
//	gen, err := ar.New(5.0, 1.0, []float64{0.5}) // c=5, variance 1, phi=[0.5]
//	if err != nil {
//	    log.Fatal(err)
//	}
//	x := gen.Step()
//	series := timeseries.Collect(gen.All(), 100)
//
// # Packages
//
//   - ar: The AR sample generator
//   - timeseries: Finite series container and CSV output
//   - stats: Autocorrelation and white noise diagnostics
//   - config: YAML configuration for the demo driver
//
// # References
//
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
//   - https://en.wikipedia.org/wiki/Autoregressive_model
package goar
