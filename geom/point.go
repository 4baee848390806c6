package geom

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromComplex maps z = x + iy onto the point (x, y).
func FromComplex(z complex128) Point {
	return Point{X: real(z), Y: imag(z)}
}

// Complex returns the point as x + iy.
func (pt Point) Complex() complex128 {
	return complex(pt.X, pt.Y)
}

// Add returns the component-wise sum of two points.
func (pt Point) Add(o Point) Point {
	return Point{X: pt.X + o.X, Y: pt.Y + o.Y}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (pt Point) IsFinite() bool {
	return !math.IsNaN(pt.X) && !math.IsNaN(pt.Y) &&
		!math.IsInf(pt.X, 0) && !math.IsInf(pt.Y, 0)
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}
