package occupancy

import (
	"fmt"
	"image"
	"image/color"
)

// DefaultThreshold is the luminance cut used when binarizing images.
const DefaultThreshold uint8 = 128

// FromImage converts img to a Grid: a pixel whose 8-bit luminance is strictly
// greater than threshold becomes foreground. The grid shape equals the image
// bounds (rows = height, cols = width); row 0 is the top pixel row.
// Returns ErrEmptyGrid for an image with empty bounds.
// Complexity: O(W×H).
func FromImage(img image.Image, threshold uint8) (*Grid, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("FromImage(%v): %w", b, ErrEmptyGrid)
	}
	g := &Grid{rows: b.Dy(), cols: b.Dx(), cells: make([]uint8, b.Dx()*b.Dy())}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			lum := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			if lum > threshold {
				g.cells[(y-b.Min.Y)*g.cols+(x-b.Min.X)] = 1
			}
		}
	}

	return g, nil
}
