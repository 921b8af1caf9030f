package ar

import (
	"math/rand/v2"
)

// Noise is a source of white noise draws. distuv.Normal satisfies it.
type Noise interface {
	Rand() float64
}

// Option configures a Generator.
type Option func(*options)

type options struct {
	src   rand.Source
	noise Noise
}

// WithSource draws the Gaussian noise from src instead of the global source.
func WithSource(src rand.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithSeed draws the Gaussian noise from a PCG source seeded with seed.
// Generators built with the same seed and parameters produce the same values.
func WithSeed(seed uint64) Option {
	return WithSource(rand.NewPCG(seed, seed))
}

// WithNoise replaces the Gaussian noise with n. The noise variance passed to
// New is still validated but otherwise unused.
func WithNoise(n Noise) Option {
	return func(o *options) {
		o.noise = n
	}
}

// FixedNoise is a Noise that replays a fixed list of draws, cycling when it
// runs out. An empty FixedNoise always returns 0.
type FixedNoise struct {
	values []float64
	pos    int
}

// NewFixed returns a FixedNoise replaying values in order.
func NewFixed(values ...float64) *FixedNoise {
	return &FixedNoise{values: values}
}

// Rand returns the next fixed draw.
func (f *FixedNoise) Rand() float64 {
	if len(f.values) == 0 {
		return 0
	}
	v := f.values[f.pos%len(f.values)]
	f.pos++
	return v
}
