// Package ar implements a univariate AutoRegressive (AR) sample generator.
//
// An AR(N) process produces each value as a weighted sum of its N previous
// values plus a constant offset and Gaussian white noise:
//
//	x[t] = c + phi[0]*x[t-1] + ... + phi[N-1]*x[t-N] + eps[t]
//
// The process starts at rest: the window of previous values is all zeros.
//
// # Basic Usage
//
// Create an AR(1) generator and draw samples:
//
//	// c = 5, noise variance 1, phi = [0.5]
//	gen, err := ar.New(5.0, 1.0, []float64{0.5})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Next value
//	x := gen.Step()
//
//	// Next 10 values
//	xs := gen.Take(10)
//
// # Sequences
//
// All exposes the generator as an infinite iter.Seq. Each value pulled is
// one Step, so the consumer decides when to stop:
//
//	for x := range gen.All() {
//	    if x > 10 {
//	        break
//	    }
//	}
//
// Ranging again continues where the previous loop stopped. The only way to
// start over from rest is to build a new Generator.
//
// # Precision
//
// Generator is parameterized over float32 and float64. The type is fixed by
// the arguments to New:
//
//	gen32, _ := ar.New(float32(0), float32(1), []float32{0.9, -0.8})
//
// # Reproducibility
//
// By default noise comes from the global math/rand/v2 source. Use WithSeed or
// WithSource for reproducible runs, and WithNoise to supply the draws directly.
//
//	gen, _ := ar.New(0.0, 1.0, []float64{0.3}, ar.WithSeed(42))
package ar
