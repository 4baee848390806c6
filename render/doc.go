// Package render turns fractal artifacts into images. It performs no fractal
// computation: escape fields, occupancy grids and point sequences come in,
// image.Image values and PNG bytes go out.
//
// Pixel (x, y) always shows cell (row = y, col = x), so escape fields keep
// their mathematical orientation and grids keep row 0 on top.
package render
