package ifs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fractalis/geom"
)

// ProbabilityTolerance bounds |ΣP − 1| accepted by NewSystem.
const ProbabilityTolerance = 1e-6

// SeedPoint is where every chain starts.
var SeedPoint = geom.Point{X: 0.5, Y: 0}

// Map is one affine transform with its selection probability:
//
//	x' = A·x + B·y + E
//	y' = C·x + D·y + F
type Map struct {
	A, B, C, D, E, F float64
	P                float64
}

// Apply maps p through the transform.
func (m Map) Apply(p geom.Point) geom.Point {
	return geom.Point{
		X: m.A*p.X + m.B*p.Y + m.E,
		Y: m.C*p.X + m.D*p.Y + m.F,
	}
}

func (m Map) finite() bool {
	for _, v := range [...]float64{m.A, m.B, m.C, m.D, m.E, m.F, m.P} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// System is a validated set of maps with a precomputed cumulative
// probability table. The zero value is not usable; build one with NewSystem.
type System struct {
	maps []Map
	cum  []float64 // cum[i] = (P0+…+Pi)/ΣP
	last int       // last map with P > 0
}

// NewSystem validates maps and returns a System owning a copy of them.
//
// Errors: ErrInvalidInput when maps is empty, a coefficient is not finite,
// a P lies outside [0,1], or |ΣP − 1| > ProbabilityTolerance.
func NewSystem(maps ...Map) (System, error) {
	if len(maps) == 0 {
		return System{}, fmt.Errorf("NewSystem: no maps: %w", ErrInvalidInput)
	}
	var sum float64
	last := -1
	for i, m := range maps {
		if !m.finite() {
			return System{}, fmt.Errorf("NewSystem: map %d has non-finite coefficients: %w", i, ErrInvalidInput)
		}
		if m.P < 0 || m.P > 1 {
			return System{}, fmt.Errorf("NewSystem: map %d probability %g outside [0,1]: %w", i, m.P, ErrInvalidInput)
		}
		if m.P > 0 {
			last = i
		}
		sum += m.P
	}
	if math.Abs(sum-1) > ProbabilityTolerance {
		return System{}, fmt.Errorf("NewSystem: probabilities sum to %g: %w", sum, ErrInvalidInput)
	}

	sys := System{
		maps: append([]Map(nil), maps...),
		cum:  make([]float64, len(maps)),
		last: last,
	}
	var acc float64
	for i, m := range maps {
		acc += m.P
		sys.cum[i] = acc / sum
	}

	return sys, nil
}

// Maps returns a copy of the system's maps.
func (s System) Maps() []Map {
	return append([]Map(nil), s.maps...)
}

// Len returns the number of maps.
func (s System) Len() int { return len(s.maps) }

// pick returns the map index selected by u ∈ [0,1).
func (s System) pick(u float64) int {
	for i, c := range s.cum {
		if u < c {
			return i
		}
	}

	return s.last
}
