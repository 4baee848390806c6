// Package occupancy provides the binary occupancy grid consumed by box-counting
// dimension estimation, together with the collaborators that produce it.
//
// What:
//
//   - Grid wraps a rectangular row-major array of 0/1 cells. Row 0 is the top
//     row; column 0 is the left column.
//   - RasterizePolyline / RasterizePoints turn generator output (curves,
//     turtle drawings, IFS point clouds) into a Grid, fitted to the
//     sequence bounds with the aspect ratio preserved.
//   - FromImage thresholds any image.Image by luminance (value > threshold → 1).
//   - Carpet and Gasket build exact self-similar fixtures with a known
//     analytic dimension (ln 8 / ln 3 and ln 3 / ln 2).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonBinary: a cell value other than 0 or 1 was supplied.
//   - ErrOutOfRange: an index lies outside the grid.
//   - ErrInvalidSize: a requested dimension or level is not positive.
//
// Complexity:
//
//   - New / FromImage / Carpet / Gasket: O(R×C) time and memory.
//   - RasterizePolyline: O(R×C + Σ segment pixel length).
package occupancy
