package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/fractalis/escape"
	"github.com/katalvlaran/fractalis/geom"
	"github.com/katalvlaran/fractalis/occupancy"
)

// Field maps escape counts to gray levels: cells that never escaped are
// black and escaped cells brighten with ln(1+count)/ln(1+maxIter).
func Field(f *escape.Field) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Cols(), f.Rows()))
	max := f.MaxIter()
	norm := math.Log1p(float64(max))
	counts := f.Counts()
	for i, c := range counts {
		if c >= max {
			continue
		}
		v := 255 * math.Log1p(float64(c)) / norm
		img.Pix[i] = uint8(math.Round(v))
	}

	return img
}

// FieldColor paints escaped cells with a hue cycle over the count and leaves
// the interior black.
func FieldColor(f *escape.Field) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Cols(), f.Rows()))
	max := f.MaxIter()
	for row := 0; row < f.Rows(); row++ {
		for col := 0; col < f.Cols(); col++ {
			c := f.At(row, col)
			if c >= max {
				img.SetRGBA(col, row, color.RGBA{A: 255})
				continue
			}
			img.SetRGBA(col, row, hsv(float64(c)*0.02, 1, 1))
		}
	}

	return img
}

// Grid paints foreground cells white on black.
func Grid(g *occupancy.Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Cols(), g.Rows()))
	for i, v := range g.Cells() {
		img.Pix[i] = v * 255
	}

	return img
}

// Polyline rasterizes seq as a connected path fitted into a w×h image.
func Polyline(seq geom.Sequence, w, h int) (*image.Gray, error) {
	g, err := occupancy.RasterizePolyline(seq, h, w)
	if err != nil {
		return nil, fmt.Errorf("Polyline: %w", err)
	}

	return Grid(g), nil
}

// Points rasterizes seq as isolated points fitted into a w×h image.
func Points(seq geom.Sequence, w, h int) (*image.Gray, error) {
	g, err := occupancy.RasterizePoints(seq, h, w)
	if err != nil {
		return nil, fmt.Errorf("Points: %w", err)
	}

	return Grid(g), nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("WritePNG: %w", err)
	}

	return nil
}

// SavePNG writes img to path, replacing any existing file.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SavePNG: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("SavePNG: %w", cerr)
		}
	}()

	return WritePNG(f, img)
}

// hsv converts hue (wrapped to [0,1)), saturation and value to opaque RGBA.
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
}
