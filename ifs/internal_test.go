package ifs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPick_CumulativeBoundaries checks the half-open intervals of the table.
func TestPick_CumulativeBoundaries(t *testing.T) {
	sys, err := NewSystem(Map{P: 0.25}, Map{P: 0}, Map{P: 0.75}, Map{P: 0})
	require.NoError(t, err)

	assert.Equal(t, 0, sys.pick(0))
	assert.Equal(t, 0, sys.pick(0.2499))
	assert.Equal(t, 2, sys.pick(0.25))
	assert.Equal(t, 2, sys.pick(0.9999))
	// Values at or past the rounding edge fall to the last positive map.
	assert.Equal(t, 2, sys.pick(1))
}

// TestDeriveSeed_Distinct gives each stream of one parent its own seed.
func TestDeriveSeed_Distinct(t *testing.T) {
	seen := make(map[int64]bool)
	for s := uint64(0); s < 1000; s++ {
		v := deriveSeed(7, s)
		require.False(t, seen[v], "stream %d collides", s)
		seen[v] = true
	}
	assert.NotEqual(t, deriveSeed(7, 0), deriveSeed(8, 0))
}

// TestRNGFromSeed_ZeroPolicy maps seed 0 onto defaultRNGSeed.
func TestRNGFromSeed_ZeroPolicy(t *testing.T) {
	assert.Equal(t, rngFromSeed(defaultRNGSeed).Int63(), rngFromSeed(0).Int63())
}
