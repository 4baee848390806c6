package occupancy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fractalis/geom"
)

// frame maps plane coordinates onto pixel centres of a rows×cols grid.
// The sequence bounds are fitted with a uniform scale and centred; the
// imaginary/Y axis grows upwards, so larger Y lands on smaller row indices.
type frame struct {
	min        geom.Point
	scale      float64
	padX, padY float64
	rows       int
}

func newFrame(seq geom.Sequence, rows, cols int) frame {
	min, max, _ := seq.Bounds()
	w, h := max.X-min.X, max.Y-min.Y
	spanX, spanY := float64(cols-1), float64(rows-1)

	scale := math.Inf(1)
	if w > 0 {
		scale = spanX / w
	}
	if h > 0 {
		scale = math.Min(scale, spanY/h)
	}
	if math.IsInf(scale, 1) {
		// Degenerate to a single point: place it at the centre.
		scale = 0
	}

	return frame{
		min:   min,
		scale: scale,
		padX:  (spanX - w*scale) / 2,
		padY:  (spanY - h*scale) / 2,
		rows:  rows,
	}
}

// pixel returns fractional (col, row) coordinates of p.
func (f frame) pixel(p geom.Point) (col, row float64) {
	col = (p.X-f.min.X)*f.scale + f.padX
	row = float64(f.rows-1) - ((p.Y-f.min.Y)*f.scale + f.padY)

	return col, row
}

// RasterizePolyline draws seq as a connected polyline into a fresh rows×cols grid.
// Every segment is traced with a DDA walk, so consecutive points are joined
// without gaps. An empty sequence yields a blank grid.
// Returns ErrInvalidSize for non-positive dimensions and ErrOutOfRange when
// seq contains NaN or infinite coordinates.
// Complexity: O(R×C + Σ max(|Δcol|,|Δrow|)).
func RasterizePolyline(seq geom.Sequence, rows, cols int) (*Grid, error) {
	g, f, err := prepareRaster("RasterizePolyline", seq, rows, cols)
	if err != nil || len(seq) == 0 {
		return g, err
	}
	c0, r0 := f.pixel(seq[0])
	g.mark(c0, r0)
	for _, p := range seq[1:] {
		c1, r1 := f.pixel(p)
		g.line(c0, r0, c1, r1)
		c0, r0 = c1, r1
	}

	return g, nil
}

// RasterizePoints marks every point of seq independently (no connecting
// segments); suited to IFS point clouds.
// Same validation as RasterizePolyline.
// Complexity: O(R×C + N).
func RasterizePoints(seq geom.Sequence, rows, cols int) (*Grid, error) {
	g, f, err := prepareRaster("RasterizePoints", seq, rows, cols)
	if err != nil {
		return g, err
	}
	for _, p := range seq {
		c, r := f.pixel(p)
		g.mark(c, r)
	}

	return g, nil
}

func prepareRaster(op string, seq geom.Sequence, rows, cols int) (*Grid, frame, error) {
	g, err := Blank(rows, cols)
	if err != nil {
		return nil, frame{}, fmt.Errorf("%s: %w", op, err)
	}
	for i, p := range seq {
		if !p.IsFinite() {
			return nil, frame{}, fmt.Errorf("%s: point %d %s is not finite: %w", op, i, p, ErrOutOfRange)
		}
	}
	if len(seq) == 0 {
		return g, frame{}, nil
	}

	return g, newFrame(seq, rows, cols), nil
}

// mark sets the cell nearest to fractional pixel (col, row), clamped to the grid.
func (g *Grid) mark(col, row float64) {
	c := clamp(int(math.Round(col)), 0, g.cols-1)
	r := clamp(int(math.Round(row)), 0, g.rows-1)
	g.set(r, c, true)
}

// line walks from (c0,r0) to (c1,r1) in unit pixel steps along the major axis.
func (g *Grid) line(c0, r0, c1, r1 float64) {
	dc, dr := c1-c0, r1-r0
	n := int(math.Ceil(math.Max(math.Abs(dc), math.Abs(dr))))
	if n == 0 {
		g.mark(c1, r1)
		return
	}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		g.mark(c0+t*dc, r0+t*dr)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
