package boxdim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fractalis/boxdim"
	"github.com/katalvlaran/fractalis/occupancy"
)

// TestEstimateDimension_Carpet recovers ln 8 / ln 3 on power-of-3 sizes.
func TestEstimateDimension_Carpet(t *testing.T) {
	g, err := occupancy.Carpet(5)
	require.NoError(t, err)
	res, err := boxdim.EstimateDimension(g, boxdim.Options{MinSize: 1, MaxSize: 81, NumSizes: 5})
	require.NoError(t, err)

	want := math.Log(8) / math.Log(3)
	assert.InDelta(t, want, res.Dimension, 0.05)
	assert.InDelta(t, want, res.Dimension, 1e-9, "exact self-similar counts give an exact fit")
	assert.InDelta(t, 1, res.RSquared, 1e-12)
	assert.Equal(t, -res.Slope, res.Dimension)
	assert.Equal(t, []int{81, 27, 9, 3, 1}, res.Table.Sizes())
	assert.InDelta(t, 5*math.Log(8), res.Intercept, 1e-9, "N(1) = 8^5")
}

// TestEstimateDimension_CarpetDefaults stays near the analytic value with
// sizes that do not align with the construction.
func TestEstimateDimension_CarpetDefaults(t *testing.T) {
	g, err := occupancy.Carpet(5)
	require.NoError(t, err)
	res, err := boxdim.EstimateDimension(g, boxdim.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, res.Table, 10)
	assert.Equal(t, 121, res.Table[0].Size, "auto MaxSize is min(H,W)/2")
	assert.Greater(t, res.Dimension, 1.6)
	assert.Less(t, res.Dimension, 2.05)
}

// TestEstimateDimension_Gasket recovers ln 3 / ln 2.
func TestEstimateDimension_Gasket(t *testing.T) {
	g, err := occupancy.Gasket(8)
	require.NoError(t, err)
	res, err := boxdim.EstimateDimension(g, boxdim.Options{MinSize: 1, MaxSize: 128, NumSizes: 8})
	require.NoError(t, err)
	assert.InDelta(t, math.Log(3)/math.Log(2), res.Dimension, 1e-9)
}

// TestEstimateDimension_Smooth gives 2 for a filled square and 1 for a line.
func TestEstimateDimension_Smooth(t *testing.T) {
	full, err := occupancy.Full(64, 64)
	require.NoError(t, err)
	res, err := boxdim.EstimateDimension(full, boxdim.Options{MinSize: 1, MaxSize: 32, NumSizes: 6})
	require.NoError(t, err)
	assert.InDelta(t, 2, res.Dimension, 1e-12)

	line, err := occupancy.Blank(64, 64)
	require.NoError(t, err)
	for c := 0; c < 64; c++ {
		require.NoError(t, line.Set(0, c, true))
	}
	res, err = boxdim.EstimateDimension(line, boxdim.Options{MinSize: 1, MaxSize: 32, NumSizes: 6})
	require.NoError(t, err)
	assert.InDelta(t, 1, res.Dimension, 1e-12)
}

// TestEstimateDimension_InsufficientData covers every degenerate case.
func TestEstimateDimension_InsufficientData(t *testing.T) {
	full, err := occupancy.Full(10, 10)
	require.NoError(t, err)

	_, err = boxdim.EstimateDimension(full, boxdim.Options{MinSize: 3, MaxSize: 3, NumSizes: 4})
	assert.ErrorIs(t, err, boxdim.ErrInsufficientData, "single size")

	_, err = boxdim.EstimateDimension(full, boxdim.Options{MinSize: 1, MaxSize: 20, NumSizes: 3})
	assert.ErrorIs(t, err, boxdim.ErrInsufficientData, "size larger than the grid counts zero")

	blank, err := occupancy.Blank(16, 16)
	require.NoError(t, err)
	res, err := boxdim.EstimateDimension(blank, boxdim.DefaultOptions())
	assert.ErrorIs(t, err, boxdim.ErrInsufficientData, "empty grid")
	assert.NotEmpty(t, res.Table, "the table is still reported")

	tiny, err := occupancy.Full(1, 1)
	require.NoError(t, err)
	_, err = boxdim.EstimateDimension(tiny, boxdim.DefaultOptions())
	assert.ErrorIs(t, err, boxdim.ErrInsufficientData, "grid too small for auto max")
}

// TestEstimateDimension_InvalidInput rejects malformed options.
func TestEstimateDimension_InvalidInput(t *testing.T) {
	full, err := occupancy.Full(16, 16)
	require.NoError(t, err)

	_, err = boxdim.EstimateDimension(nil, boxdim.DefaultOptions())
	assert.ErrorIs(t, err, boxdim.ErrInvalidInput)

	for _, o := range []boxdim.Options{
		{MinSize: 0, NumSizes: 10},
		{MinSize: 1, NumSizes: 0},
		{MinSize: 1, MaxSize: -4, NumSizes: 3},
		{MinSize: 4, MaxSize: 2, NumSizes: 3},
	} {
		_, err = boxdim.EstimateDimension(full, o)
		assert.ErrorIs(t, err, boxdim.ErrInvalidInput, "%+v", o)
	}
}
