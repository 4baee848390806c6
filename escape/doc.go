// Package escape computes escape-time fields of the quadratic map z ← z² + c
// over a rectangular grid of the complex plane.
//
// 🚀 Fields:
//
//   - Mandelbrot: z₀ = 0 and c is the cell coordinate.
//   - Julia:      z₀ is the cell coordinate and c is fixed.
//
// ✨ Count semantics (masked rounds):
//
//	for round in 1..maxIter:
//	    live := |z| ≤ 2
//	    z[live] = z[live]² + c[live]
//	    count[live]++
//
// A cell leaves the live set the first round it is found outside the disc of
// radius 2 and is frozen from then on; cells that never leave hold maxIter.
// Consequently a Mandelbrot cell with |c| > 2 holds 1 (z₀ = 0 passes the
// first test) while a Julia cell with |z₀| > 2 holds 0.
//
// ⚙️ Execution:
//
//	The grid is cut into bands of rows. Workers (WithWorkers, default
//	GOMAXPROCS) claim bands; inside a band every round walks a compacted
//	list of live cells only. Each cell is owned by exactly one band, so the
//	result is identical for any worker count.
//
// 🧭 Orientation:
//
//	Column 0 samples XMin and real parts grow to the right; row 0 samples
//	YMax and imaginary parts grow upwards. Rendering rows top-down therefore
//	shows the usual mathematical picture. Both axes are inclusive linear
//	ranges: the first and last samples hit the plane edges exactly.
//
// ⚠️ Errors:
//
//   - ErrInvalidInput: non-positive size, non-finite or inverted range,
//     maxIter < 0, non-finite Julia constant, or more than MaxCells cells.
//   - The context error when WithContext's context is cancelled mid-run.
//
// 📈 Complexity: O(Width·Height·maxIter) time worst case, proportional to the
// total escape count in practice; O(Width·Height) memory.
package escape
