package escape

import (
	"fmt"
	"math"
)

// MaxCells bounds Width·Height of a single field.
const MaxCells = 1 << 26

// Plane is a Width×Height sampling of [XMin,XMax]×[YMin,YMax].
type Plane struct {
	XMin, XMax float64
	YMin, YMax float64
	Width      int // columns
	Height     int // rows
}

// Region is a rectangle of the complex plane without a resolution.
type Region struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Plane samples the region at w×h cells.
func (r Region) Plane(w, h int) Plane {
	return Plane{XMin: r.XMin, XMax: r.XMax, YMin: r.YMin, YMax: r.YMax, Width: w, Height: h}
}

// Region drops the plane's resolution.
func (p Plane) Region() Region {
	return Region{XMin: p.XMin, XMax: p.XMax, YMin: p.YMin, YMax: p.YMax}
}

// Default regions.
var (
	// MandelbrotRegion covers the whole set.
	MandelbrotRegion = Region{XMin: -2, XMax: 1, YMin: -1.5, YMax: 1.5}
	// JuliaRegion covers the disc of radius 2 that contains every filled Julia set.
	JuliaRegion = Region{XMin: -2, XMax: 2, YMin: -2, YMax: 2}
)

// MandelbrotPlane samples MandelbrotRegion at w×h.
func MandelbrotPlane(w, h int) Plane { return MandelbrotRegion.Plane(w, h) }

// JuliaPlane samples JuliaRegion at w×h.
func JuliaPlane(w, h int) Plane { return JuliaRegion.Plane(w, h) }

// Validate reports ErrInvalidInput for unusable planes.
func (p Plane) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("plane %dx%d: %w", p.Width, p.Height, ErrInvalidInput)
	}
	if p.Width > MaxCells/p.Height {
		return fmt.Errorf("plane %dx%d exceeds %d cells: %w", p.Width, p.Height, MaxCells, ErrInvalidInput)
	}
	for _, v := range [...]float64{p.XMin, p.XMax, p.YMin, p.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("plane bound %v is not finite: %w", v, ErrInvalidInput)
		}
	}
	if p.XMin > p.XMax || p.YMin > p.YMax {
		return fmt.Errorf("plane range [%g,%g]×[%g,%g] is inverted: %w", p.XMin, p.XMax, p.YMin, p.YMax, ErrInvalidInput)
	}

	return nil
}

// Point returns the complex coordinate sampled by cell (row, col).
// Indices outside the plane extrapolate linearly.
func (p Plane) Point(row, col int) complex128 {
	return complex(p.real(col), p.imag(row))
}

// real is the inclusive linspace XMin..XMax at col.
func (p Plane) real(col int) float64 {
	if p.Width <= 1 {
		return p.XMin
	}
	if col == p.Width-1 {
		return p.XMax
	}

	return p.XMin + float64(col)*(p.XMax-p.XMin)/float64(p.Width-1)
}

// imag is the inclusive linspace YMax..YMin at row (row 0 on top).
func (p Plane) imag(row int) float64 {
	if p.Height <= 1 {
		return p.YMax
	}
	if row == p.Height-1 {
		return p.YMin
	}

	return p.YMax - float64(row)*(p.YMax-p.YMin)/float64(p.Height-1)
}
