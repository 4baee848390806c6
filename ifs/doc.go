// Package ifs samples attractors of iterated function systems with the
// random-iteration ("chaos game") algorithm.
//
// 🚀 What:
//
//	An IFS is a finite set of affine contractions, each with a selection
//	probability. Starting from SeedPoint, every step picks one map at random
//	(weighted by P) and applies it to the current point. After a burn-in the
//	visited points approximate the attractor, e.g. the Barnsley fern.
//
// ✨ Determinism:
//
//   - Randomness is always injected: Sample takes a *rand.Rand, SampleChains
//     takes a seed. A nil RNG or seed 0 means the fixed default stream, so
//     identical inputs give identical outputs.
//   - SampleChains splits work into independent chains whose seeds are
//     derived from the parent seed with a SplitMix64 mix. Output is the
//     concatenation in chain order, independent of goroutine scheduling.
//
// ⚙️ Selection:
//
//	One rng.Float64() per step is located in the cumulative probability table.
//	Maps with P = 0 are never selected.
//
// ⚠️ Errors:
//
//   - ErrInvalidInput: no maps, P outside [0,1], non-finite coefficients,
//     |ΣP − 1| > ProbabilityTolerance, or negative counts.
//
// 📈 Complexity: O((totalPoints + burnIn) · len(maps)) time, O(totalPoints) memory.
//
// ⚠️ Concurrency: a *rand.Rand must not be shared across goroutines; Sample
// never spawns goroutines, SampleChains gives each chain its own stream.
package ifs
