package ifs

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/fractalis/geom"
)

// Defaults for callers without their own sampling budget.
const (
	DefaultPoints = 100_000
	DefaultBurnIn = 100
)

// Sample runs the chaos game for totalPoints+burnIn steps from SeedPoint and
// returns the last totalPoints positions in visit order.
//
// rng == nil uses the default deterministic stream. rng is advanced exactly
// totalPoints+burnIn times.
//
// Errors: ErrInvalidInput for an unusable system or negative counts.
func Sample(sys System, totalPoints, burnIn int, rng *rand.Rand) (geom.Sequence, error) {
	if len(sys.maps) == 0 {
		return nil, fmt.Errorf("Sample: empty system: %w", ErrInvalidInput)
	}
	if totalPoints < 0 || burnIn < 0 {
		return nil, fmt.Errorf("Sample: totalPoints=%d burnIn=%d: %w", totalPoints, burnIn, ErrInvalidInput)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	out := make(geom.Sequence, totalPoints)
	run(sys, out, burnIn, rng)

	return out, nil
}

// run fills dst after discarding burnIn steps.
func run(sys System, dst geom.Sequence, burnIn int, rng *rand.Rand) {
	p := SeedPoint
	for i := 0; i < burnIn; i++ {
		p = sys.maps[sys.pick(rng.Float64())].Apply(p)
	}
	for i := range dst {
		p = sys.maps[sys.pick(rng.Float64())].Apply(p)
		dst[i] = p
	}
}

// SampleChains runs chains independent chaos games of perChain points each,
// every chain discarding its own burnIn steps, and concatenates them in
// chain order. Chain i uses a stream derived from seed and i; seed 0 means
// the default seed. Chains run concurrently.
//
// Errors: ErrInvalidInput for an unusable system, chains < 1, or negative counts.
func SampleChains(sys System, chains, perChain, burnIn int, seed int64) (geom.Sequence, error) {
	if len(sys.maps) == 0 {
		return nil, fmt.Errorf("SampleChains: empty system: %w", ErrInvalidInput)
	}
	if chains < 1 || perChain < 0 || burnIn < 0 {
		return nil, fmt.Errorf("SampleChains: chains=%d perChain=%d burnIn=%d: %w", chains, perChain, burnIn, ErrInvalidInput)
	}
	if seed == 0 {
		seed = defaultRNGSeed
	}

	out := make(geom.Sequence, chains*perChain)
	var wg sync.WaitGroup
	for c := 0; c < chains; c++ {
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(deriveSeed(seed, uint64(c))))
			run(sys, out[c*perChain:(c+1)*perChain], burnIn, rng)
		}(c)
	}
	wg.Wait()

	return out, nil
}
