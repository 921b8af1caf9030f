// Package ar implements a univariate autoregressive (AR) sample generator.
package ar

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidParameter is returned by New when the model parameters cannot
// produce a valid noise distribution.
var ErrInvalidParameter = errors.New("ar: invalid parameter")

// Generator produces samples from the AR(N) process
//
//	x[t] = c + phi[0]*x[t-1] + ... + phi[N-1]*x[t-N] + eps[t]
//
// where eps is zero-mean Gaussian white noise. A Generator is not safe for
// concurrent use; give each goroutine its own instance and source.
type Generator[F constraints.Float] struct {
	offset       F
	coefficients []F // phi, most recent lag first
	window       []F // last N outputs, most recent first
	noise        Noise
}

// New creates a generator with the given offset (c), white noise variance and
// coefficients (phi). The coefficients are copied and the window starts at
// zero. The number of coefficients is the order of the process and may be 0.
func New[F constraints.Float](offset, noiseVariance F, coefficients []F, opts ...Option) (*Generator[F], error) {
	v := float64(noiseVariance)
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil, fmt.Errorf("%w: noise variance must be finite and non-negative, got %v", ErrInvalidParameter, v)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	noise := o.noise
	if noise == nil {
		noise = distuv.Normal{Mu: 0, Sigma: math.Sqrt(v), Src: o.src}
	}

	phi := make([]F, len(coefficients))
	copy(phi, coefficients)

	return &Generator[F]{
		offset:       offset,
		coefficients: phi,
		window:       make([]F, len(phi)),
		noise:        noise,
	}, nil
}

// Step draws one noise sample, computes the next value of the process,
// pushes it to the front of the window and returns it.
func (g *Generator[F]) Step() F {
	eps := F(g.noise.Rand())

	var sum F
	for i, x := range g.window {
		sum += x * g.coefficients[i]
	}
	next := g.offset + sum + eps

	if n := len(g.window); n > 0 {
		copy(g.window[1:], g.window[:n-1])
		g.window[0] = next
	}
	return next
}

// All returns an infinite sequence backed by g. Every value pulled from the
// sequence is exactly one call to Step; nothing is generated ahead of time.
// Ranging over it again continues from the generator's current state.
func (g *Generator[F]) All() iter.Seq[F] {
	return func(yield func(F) bool) {
		for yield(g.Step()) {
		}
	}
}

// Take returns the next k values of the process.
func (g *Generator[F]) Take(k int) []F {
	if k <= 0 {
		return []F{}
	}
	out := make([]F, k)
	for i := range out {
		out[i] = g.Step()
	}
	return out
}

// Order returns the number of lagged values the process depends on.
func (g *Generator[F]) Order() int {
	return len(g.coefficients)
}

// Offset returns the constant term c.
func (g *Generator[F]) Offset() F {
	return g.offset
}

// Coefficients returns a copy of the AR coefficients.
func (g *Generator[F]) Coefficients() []F {
	result := make([]F, len(g.coefficients))
	copy(result, g.coefficients)
	return result
}

// Window returns a copy of the most recent outputs, most recent first.
func (g *Generator[F]) Window() []F {
	result := make([]F, len(g.window))
	copy(result, g.window)
	return result
}
