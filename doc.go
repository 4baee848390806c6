// Package fractalis generates, renders and measures classic fractals.
//
// 🚀 What is in the box?
//
//   - Recursive curves: Koch and Minkowski substitution on any seed polyline
//   - L-systems: parallel rewriting plus a turtle with a branch stack
//   - Iterated function systems: the chaos game over weighted affine maps
//   - Escape-time fields: Mandelbrot and Julia over a sampled complex plane
//   - Box counting: occupancy grids and a least-squares dimension estimate
//
// Subpackages:
//
//	geom/       Point and Sequence shared by every generator
//	curve/      Koch / Minkowski substitution
//	lsystem/    grammar expansion, turtle interpretation, presets
//	ifs/        affine maps, seeded chaos-game sampling
//	escape/     planes, regions, parallel escape-time fields
//	occupancy/  binary grids, rasterization, fixtures, components
//	boxdim/     box counts, geometric sizes, dimension fit
//	catalog/    YAML preset catalog (embedded default)
//	render/     grayscale and colour PNG output
//	fieldsvc/   websocket service with a memoizing cache
//
// Binaries:
//
//	cmd/fractal    CLI: render presets to PNG, estimate dimensions
//	cmd/fractald   serves fieldsvc on /ws
//
// Quick example, a Koch snowflake at level 2:
//
//	pts, _ := curve.Generate(curve.SnowflakeSeed(), 2, curve.Koch)
//	len(pts) // 3·4²+1 = 49
//
//	go get github.com/katalvlaran/fractalis
package fractalis
