// Package boxdim estimates the box-counting (Minkowski–Bouligand) dimension
// of a binary occupancy grid.
//
// 🚀 What:
//
//	CountBoxes tiles the grid with s×s boxes anchored at (0,0) and counts the
//	boxes holding at least one foreground cell. Trailing rows and columns
//	narrower than s are dropped, never padded.
//
//	EstimateDimension counts boxes at log-uniformly spaced sizes and fits
//	ln N(s) = slope·ln s + intercept by ordinary least squares. For a fractal
//	set N(s) ∝ s^−D, so the estimate is D = −slope.
//
// ✨ Sizes:
//
//	GeometricSizes(max, min, n) places n samples evenly in log space from max
//	down to min, rounds each to the nearest integer, and drops repeats. The
//	returned sizes are strictly descending, so small grids can yield fewer
//	than n sizes.
//
// ⚙️ Implementation:
//
//	A summed-area table is built once per call; every box query is then four
//	lookups, so counting all sizes costs O(H·W + Σ_s (H/s)(W/s)).
//
// ⚠️ Errors:
//
//   - ErrInvalidInput: nil grid, size < 1, or inconsistent options.
//   - ErrInsufficientData: fewer than 2 distinct sizes, or a size whose count
//     is zero (its logarithm would be undefined).
package boxdim
