package ifs_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fractalis/geom"
	"github.com/katalvlaran/fractalis/ifs"
)

// TestNewSystem_Invalid covers every validation rule.
func TestNewSystem_Invalid(t *testing.T) {
	half := ifs.Map{A: 0.5, D: 0.5, P: 0.5}
	cases := map[string][]ifs.Map{
		"empty":         nil,
		"sum below one": {half},
		"sum above one": {half, half, half},
		"negative p":    {{A: 0.5, P: -0.5}, {A: 0.5, P: 1.5}},
		"p above one":   {{A: 0.5, P: 1.2}},
		"nan":           {{A: math.NaN(), P: 1}},
		"inf offset":    {{A: 0.5, E: math.Inf(-1), P: 1}},
	}
	for name, maps := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ifs.NewSystem(maps...)
			assert.ErrorIs(t, err, ifs.ErrInvalidInput)
		})
	}
}

// TestNewSystem_Tolerance accepts sums within ProbabilityTolerance.
func TestNewSystem_Tolerance(t *testing.T) {
	sys, err := ifs.NewSystem(
		ifs.Map{A: 0.5, P: 0.3333333},
		ifs.Map{A: 0.5, P: 0.3333333},
		ifs.Map{A: 0.5, P: 0.3333334},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, sys.Len())
}

// TestNewSystem_CopiesMaps detaches the system from the caller's slice.
func TestNewSystem_CopiesMaps(t *testing.T) {
	maps := []ifs.Map{{A: 0.5, D: 0.5, P: 1}}
	sys, err := ifs.NewSystem(maps...)
	require.NoError(t, err)
	maps[0].A = 9
	assert.Equal(t, 0.5, sys.Maps()[0].A)
}

// TestMap_Apply checks the affine formula.
func TestMap_Apply(t *testing.T) {
	m := ifs.Map{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	assert.Equal(t, geom.Pt(1*2+2*3+5, 3*2+4*3+6), m.Apply(geom.Pt(2, 3)))
}

// TestSample_Invalid rejects negative counts and the zero System.
func TestSample_Invalid(t *testing.T) {
	_, err := ifs.Sample(ifs.BarnsleyFern(), -1, 0, nil)
	assert.ErrorIs(t, err, ifs.ErrInvalidInput)
	_, err = ifs.Sample(ifs.BarnsleyFern(), 10, -1, nil)
	assert.ErrorIs(t, err, ifs.ErrInvalidInput)
	_, err = ifs.Sample(ifs.System{}, 10, 0, nil)
	assert.ErrorIs(t, err, ifs.ErrInvalidInput)
}

// TestSample_Reproducible gives identical points for identical seeds.
func TestSample_Reproducible(t *testing.T) {
	sys := ifs.BarnsleyFern()
	a, err := ifs.Sample(sys, 5000, 100, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := ifs.Sample(sys, 5000, 100, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Len(t, a, 5000)
	assert.True(t, cmp.Equal(a, b))

	c, err := ifs.Sample(sys, 5000, 100, rand.New(rand.NewSource(43)))
	require.NoError(t, err)
	assert.False(t, cmp.Equal(a, c))
}

// TestSample_NilRNGIsDefaultStream matches an explicit default seed.
func TestSample_NilRNGIsDefaultStream(t *testing.T) {
	sys := ifs.ProbabilityTree()
	a, err := ifs.Sample(sys, 1000, 10, nil)
	require.NoError(t, err)
	b, err := ifs.Sample(sys, 1000, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestSample_BurnInDiscardsPrefix keeps exactly the tail of a longer run.
func TestSample_BurnInDiscardsPrefix(t *testing.T) {
	sys := ifs.BarnsleyFern()
	full, err := ifs.Sample(sys, 600, 0, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	tail, err := ifs.Sample(sys, 500, 100, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, full[100:], tail)

	empty, err := ifs.Sample(sys, 0, 100, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestSample_FernBounds keeps the fern inside its known bounding box.
func TestSample_FernBounds(t *testing.T) {
	pts, err := ifs.Sample(ifs.BarnsleyFern(), 20000, 100, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	lo, hi, ok := pts.Bounds()
	require.True(t, ok)
	assert.GreaterOrEqual(t, lo.X, -2.2)
	assert.LessOrEqual(t, hi.X, 2.75)
	assert.GreaterOrEqual(t, lo.Y, 0.0)
	assert.LessOrEqual(t, hi.Y, 10.0)
	assert.Greater(t, hi.Y, 9.0, "the fern tip must be reached")
}

// TestSample_SelectionFrequency splits [0,1] into halves chosen with equal weight.
func TestSample_SelectionFrequency(t *testing.T) {
	sys, err := ifs.NewSystem(
		ifs.Map{A: 0.5, P: 0.5},
		ifs.Map{A: 0.5, E: 0.5, P: 0.5},
	)
	require.NoError(t, err)
	pts, err := ifs.Sample(sys, 20000, 10, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	left := 0
	for _, p := range pts {
		require.True(t, p.X >= 0 && p.X <= 1)
		if p.X < 0.5 {
			left++
		}
	}
	frac := float64(left) / float64(len(pts))
	assert.InDelta(t, 0.5, frac, 0.03)
}

// TestSample_ZeroProbabilityNeverChosen never visits a P=0 map's image.
func TestSample_ZeroProbabilityNeverChosen(t *testing.T) {
	sys, err := ifs.NewSystem(
		ifs.Map{E: 100, F: 100, P: 0},
		ifs.Map{A: 0.5, D: 0.5, P: 1},
		ifs.Map{E: -100, F: -100, P: 0},
	)
	require.NoError(t, err)
	pts, err := ifs.Sample(sys, 2000, 0, nil)
	require.NoError(t, err)
	for _, p := range pts {
		require.InDelta(t, 0, p.X, 1, "point %v", p)
		require.InDelta(t, 0, p.Y, 1, "point %v", p)
	}
}

// TestSampleChains checks layout, determinism and validation.
func TestSampleChains(t *testing.T) {
	sys := ifs.BarnsleyFern()
	a, err := ifs.SampleChains(sys, 4, 1000, 50, 99)
	require.NoError(t, err)
	require.Len(t, a, 4000)
	b, err := ifs.SampleChains(sys, 4, 1000, 50, 99)
	require.NoError(t, err)
	assert.Equal(t, a, b, "chains must not depend on scheduling")

	// Chains are independent streams.
	assert.NotEqual(t, a[:1000], a[1000:2000])

	// Seed 0 is the default seed.
	z0, err := ifs.SampleChains(sys, 2, 100, 0, 0)
	require.NoError(t, err)
	z1, err := ifs.SampleChains(sys, 2, 100, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, z0, z1)

	_, err = ifs.SampleChains(sys, 0, 10, 0, 1)
	assert.ErrorIs(t, err, ifs.ErrInvalidInput)
	_, err = ifs.SampleChains(sys, 2, -1, 0, 1)
	assert.ErrorIs(t, err, ifs.ErrInvalidInput)
}
