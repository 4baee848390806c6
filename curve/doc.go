// Package curve generates deterministic self-similar curves by repeated
// segment substitution on the complex plane.
//
// 🚀 What is segment substitution?
//
//	Start from a polyline (the seed). Every round, each segment (s, e) is
//	replaced by a fixed "motif" of shorter segments built from s, e and one
//	rotation. After n rounds the polyline approximates the limiting fractal.
//
// ✨ Families:
//   - Koch:      60° kink, 4 sub-segments of length |e−s|/3 (D = ln 4 / ln 3).
//   - Minkowski: 90° square kinks, 8 sub-segments of length |e−s|/4
//     (the "Minkowski sausage", D = 3/2).
//
// Contract:
//   - Output is one continuous chain: shared endpoints are emitted once, so
//     len(out) = (n−1)·S^level + 1 with S = family.Segments().
//   - The first and last output points are bit-identical to the seed's.
//   - Interpolation is linear combination plus multiplication by a single
//     precomputed unit complex number; no per-point trigonometry.
//
// ⚙️ Usage:
//
//	pts, err := curve.Generate(curve.SnowflakeSeed(), 4, curve.Koch)
//	seq := curve.Sequence(pts) // geom.Sequence for rasterizers/renderers
//
// Complexity: O((n−1)·S^level) time and memory.
package curve
