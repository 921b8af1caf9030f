package ar

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAR(t *testing.T) {
	gen, err := New(1.5, 2.0, []float64{0.3, -0.2})
	require.NoError(t, err)

	assert.Equal(t, 2, gen.Order())
	assert.Equal(t, 1.5, gen.Offset())
	assert.Equal(t, []float64{0.3, -0.2}, gen.Coefficients())
	assert.Equal(t, []float64{0, 0}, gen.Window(), "window should start at rest")
}

func TestNewInvalidVariance(t *testing.T) {
	tests := []struct {
		name     string
		variance float64
	}{
		{"negative", -1},
		{"tiny negative", -1e-300},
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := New(0, tt.variance, []float64{0.5})
			require.Error(t, err)
			assert.Nil(t, gen)
			assert.True(t, errors.Is(err, ErrInvalidParameter), "got %v", err)
		})
	}
}

func TestNewInvalidVarianceWithCustomNoise(t *testing.T) {
	_, err := New(0, -1, []float64{}, WithNoise(NewFixed(1)))
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestZeroVarianceScenario(t *testing.T) {
	gen, err := New(5.0, 0.0, []float64{0.5})
	require.NoError(t, err)

	assert.Equal(t, 5.0, gen.Step())
	assert.Equal(t, 7.5, gen.Step())
	assert.Equal(t, 8.75, gen.Step())
	assert.Equal(t, []float64{8.75}, gen.Window())
}

func TestZeroVarianceScenarioFloat32(t *testing.T) {
	gen, err := New(float32(5), float32(0), []float32{0.5})
	require.NoError(t, err)

	assert.Equal(t, float32(5), gen.Step())
	assert.Equal(t, float32(7.5), gen.Step())
	assert.Equal(t, float32(8.75), gen.Step())
}

func TestStepFixedNoise(t *testing.T) {
	c := 0.25
	phi := []float64{0.5, -0.25, 0.125}
	eps := []float64{1, -2, 0.5, 3, -1, 0}

	gen, err := New(c, 1.0, phi, WithNoise(NewFixed(eps...)))
	require.NoError(t, err)

	// Evaluate the recurrence independently over the full history.
	history := []float64{}
	for step, e := range eps {
		want := c + e
		for i := range phi {
			lag := len(history) - 1 - i
			if lag >= 0 {
				want += phi[i] * history[lag]
			}
		}
		history = append(history, want)

		got := gen.Step()
		assert.InDelta(t, want, got, 1e-12, "step %d", step)
	}

	// Window holds the last three outputs, most recent first.
	n := len(history)
	assert.InDeltaSlice(t, []float64{history[n-1], history[n-2], history[n-3]}, gen.Window(), 1e-12)
}

func TestOrderZero(t *testing.T) {
	gen, err := New(3.0, 1.0, nil, WithNoise(NewFixed(0.5, -0.5)))
	require.NoError(t, err)

	assert.Equal(t, 0, gen.Order())
	assert.Equal(t, 3.5, gen.Step())
	assert.Equal(t, 2.5, gen.Step())
	assert.Empty(t, gen.Window())
}

func TestWindowLength(t *testing.T) {
	for _, order := range []int{0, 1, 2, 5, 17} {
		phi := make([]float64, order)
		for i := range phi {
			phi[i] = 0.5 / float64(order)
		}

		gen, err := New(0.0, 1.0, phi, WithSeed(uint64(order)))
		require.NoError(t, err)

		for i := 0; i < 3*order+10; i++ {
			gen.Step()
			require.Len(t, gen.window, order)
			require.Len(t, gen.coefficients, order)
		}
	}
}

func TestCoefficientsCopied(t *testing.T) {
	phi := []float64{0.5}
	gen, err := New(5.0, 0.0, phi)
	require.NoError(t, err)

	phi[0] = 100
	assert.Equal(t, []float64{0.5}, gen.Coefficients())

	gen.Step()
	assert.Equal(t, 7.5, gen.Step(), "mutating the caller's slice must not change the model")

	// Accessors hand out copies too.
	gen.Coefficients()[0] = 42
	gen.Window()[0] = 42
	assert.Equal(t, []float64{0.5}, gen.Coefficients())
	assert.Equal(t, []float64{7.5}, gen.Window())
}

func TestLongRunMean(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long run in short mode")
	}

	tests := []struct {
		name string
		phi  []float64
	}{
		{"white noise", []float64{}},
		{"AR1 0.3", []float64{0.3}},
		{"AR1 0.9", []float64{0.9}},
		{"AR2 0.3 0.3", []float64{0.3, 0.3}},
		{"AR2 0.9 -0.8", []float64{0.9, -0.8}},
	}

	const n = 1000000
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := New(0.0, 1.0, tt.phi, WithSeed(uint64(1000+i)))
			require.NoError(t, err)

			sum := 0.0
			for _, x := range gen.Take(n) {
				sum += x
			}
			mean := sum / n
			assert.Less(t, math.Abs(mean), 1.0, "long run mean %f", mean)
		})
	}
}

func TestLongRunMeanDefaultSource(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long run in short mode")
	}

	gen, err := New(float32(0), float32(1), []float32{0.9, -0.8})
	require.NoError(t, err)

	var sum float64
	for _, x := range gen.Take(1000000) {
		sum += float64(x)
	}
	assert.Less(t, math.Abs(sum/1000000), 1.0)
}

func TestSeedReproducible(t *testing.T) {
	a, err := New(1.0, 2.0, []float64{0.6, 0.2}, WithSeed(7))
	require.NoError(t, err)
	b, err := New(1.0, 2.0, []float64{0.6, 0.2}, WithSeed(7))
	require.NoError(t, err)
	c, err := New(1.0, 2.0, []float64{0.6, 0.2}, WithSeed(8))
	require.NoError(t, err)

	xa := a.Take(50)
	assert.Equal(t, xa, b.Take(50))
	assert.NotEqual(t, xa, c.Take(50))
}

func TestNoiseVariance(t *testing.T) {
	// With no coefficients the output is offset plus noise, so its sample
	// variance estimates the configured noise variance.
	const variance = 4.0
	gen, err := New(10.0, variance, nil, WithSeed(99))
	require.NoError(t, err)

	xs := gen.Take(200000)
	mean, sumSq := 0.0, 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	for _, x := range xs {
		sumSq += (x - mean) * (x - mean)
	}
	got := sumSq / float64(len(xs)-1)

	assert.InDelta(t, 10.0, mean, 0.05)
	assert.InDelta(t, variance, got, 0.1)
}

func TestAllLazy(t *testing.T) {
	noise := NewFixed(1, 2, 3, 4, 5, 6)
	gen, err := New(0.0, 1.0, []float64{0}, WithNoise(noise))
	require.NoError(t, err)

	var got []float64
	for x := range gen.All() {
		got = append(got, x)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []float64{1, 2, 3}, got)
	assert.Equal(t, 3, noise.pos, "no values should be drawn ahead of the consumer")

	// A second range continues from where the first one stopped.
	for x := range gen.All() {
		assert.Equal(t, 4.0, x)
		break
	}
	assert.Equal(t, 5.0, gen.Step())
}

func TestAllMatchesStep(t *testing.T) {
	a, err := New(0.5, 1.0, []float64{0.4, 0.1}, WithSeed(3))
	require.NoError(t, err)
	b, err := New(0.5, 1.0, []float64{0.4, 0.1}, WithSeed(3))
	require.NoError(t, err)

	i := 0
	for x := range a.All() {
		require.Equal(t, b.Step(), x, "pull %d", i)
		i++
		if i == 100 {
			break
		}
	}
}

func TestTake(t *testing.T) {
	gen, err := New(5.0, 0.0, []float64{0.5})
	require.NoError(t, err)

	assert.Empty(t, gen.Take(0))
	assert.Empty(t, gen.Take(-3))
	assert.Equal(t, []float64{5, 7.5, 8.75}, gen.Take(3))
	assert.Equal(t, []float64{9.375}, gen.Take(1))
}

func TestUnstableGrows(t *testing.T) {
	gen, err := New(1.0, 0.0, []float64{1.5})
	require.NoError(t, err)

	xs := gen.Take(60)
	for i := 1; i < len(xs); i++ {
		assert.Greater(t, xs[i], xs[i-1])
	}
	assert.Greater(t, xs[len(xs)-1], 1e9)
}

func TestFixedNoise(t *testing.T) {
	empty := NewFixed()
	assert.Equal(t, 0.0, empty.Rand())

	f := NewFixed(1, 2)
	assert.Equal(t, []float64{1, 2, 1, 2}, []float64{f.Rand(), f.Rand(), f.Rand(), f.Rand()})
}
