package boxdim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fractalis/boxdim"
	"github.com/katalvlaran/fractalis/occupancy"
)

func mustFull(t *testing.T, rows, cols int) *occupancy.Grid {
	t.Helper()
	g, err := occupancy.Full(rows, cols)
	require.NoError(t, err)

	return g
}

// TestCountBoxes_FullSquare yields (N/s)² for every divisor s.
func TestCountBoxes_FullSquare(t *testing.T) {
	const n = 12
	g := mustFull(t, n, n)
	sizes := []int{1, 2, 3, 4, 6, 12}
	table, err := boxdim.CountBoxes(g, sizes)
	require.NoError(t, err)
	require.Len(t, table, len(sizes))
	for _, e := range table {
		assert.Equal(t, (n/e.Size)*(n/e.Size), e.Count, "size %d", e.Size)
	}
}

// TestCountBoxes_DropsPartialTiles ignores trailing rows and columns.
func TestCountBoxes_DropsPartialTiles(t *testing.T) {
	g := mustFull(t, 10, 7)
	table, err := boxdim.CountBoxes(g, []int{3, 4, 8})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{3: 3 * 2, 4: 2 * 1, 8: 0}, table.Map())

	// A lone cell in the dropped margin is never counted.
	b, err := occupancy.Blank(9, 9)
	require.NoError(t, err)
	require.NoError(t, b.Set(8, 8, true))
	table, err = boxdim.CountBoxes(b, []int{1, 2, 3, 9})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1, 1}, table.Counts())
}

// TestCountBoxes_KeysAreDedupedRequest keeps first-occurrence order.
func TestCountBoxes_KeysAreDedupedRequest(t *testing.T) {
	g := mustFull(t, 8, 8)
	table, err := boxdim.CountBoxes(g, []int{4, 2, 4, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 1}, table.Sizes())
	assert.Len(t, table.Map(), 3)

	empty, err := boxdim.CountBoxes(g, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestCountBoxes_Carpet matches the analytic 8^(level-k) law.
func TestCountBoxes_Carpet(t *testing.T) {
	g, err := occupancy.Carpet(4)
	require.NoError(t, err)
	table, err := boxdim.CountBoxes(g, []int{1, 3, 9, 27, 81})
	require.NoError(t, err)
	assert.Equal(t, []int{4096, 512, 64, 8, 1}, table.Counts())
}

// TestCountBoxes_Invalid rejects nil grids and non-positive sizes.
func TestCountBoxes_Invalid(t *testing.T) {
	_, err := boxdim.CountBoxes(nil, []int{1})
	assert.ErrorIs(t, err, boxdim.ErrInvalidInput)

	g := mustFull(t, 4, 4)
	_, err = boxdim.CountBoxes(g, []int{2, 0})
	assert.ErrorIs(t, err, boxdim.ErrInvalidInput)
	_, err = boxdim.CountBoxes(g, []int{-3})
	assert.ErrorIs(t, err, boxdim.ErrInvalidInput)
}

// TestGeometricSizes checks spacing, rounding and deduplication.
func TestGeometricSizes(t *testing.T) {
	cases := []struct {
		max, min, n int
		want        []int
	}{
		{128, 1, 8, []int{128, 64, 32, 16, 8, 4, 2, 1}},
		{81, 1, 5, []int{81, 27, 9, 3, 1}},
		{4, 1, 10, []int{4, 3, 2, 1}},
		{7, 7, 5, []int{7}},
		{50, 2, 1, []int{50}},
		{121, 1, 10, []int{121, 71, 42, 24, 14, 8, 5, 3, 2, 1}},
	}
	for _, tc := range cases {
		got, err := boxdim.GeometricSizes(tc.max, tc.min, tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "GeometricSizes(%d,%d,%d)", tc.max, tc.min, tc.n)
	}

	for _, bad := range [][3]int{{8, 1, 0}, {8, 0, 3}, {2, 4, 3}} {
		_, err := boxdim.GeometricSizes(bad[0], bad[1], bad[2])
		assert.ErrorIs(t, err, boxdim.ErrInvalidInput, "%v", bad)
	}
}
