package curve

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrInvalidInput indicates a seed with fewer than two points, a negative
// level, an unknown family or a seed containing NaN/Inf.
var ErrInvalidInput = errors.New("curve: invalid input")

// Family selects the substitution motif.
type Family int

const (
	// Koch replaces a segment with 4 thirds, the middle two forming a 60° tent.
	Koch Family = iota
	// Minkowski replaces a segment with 8 quarters forming one square bump
	// above and one below the original line.
	Minkowski
)

// String returns the lower-case family name used by catalogs and the CLI.
func (f Family) String() string {
	switch f {
	case Koch:
		return "koch"
	case Minkowski:
		return "minkowski"
	default:
		return "unknown"
	}
}

// ParseFamily is the inverse of Family.String.
func ParseFamily(name string) (Family, error) {
	switch name {
	case "koch":
		return Koch, nil
	case "minkowski":
		return Minkowski, nil
	default:
		return 0, fmt.Errorf("ParseFamily(%q): %w", name, ErrInvalidInput)
	}
}

// Angle returns the characteristic kink angle in radians.
func (f Family) Angle() float64 {
	if f == Minkowski {
		return math.Pi / 2
	}

	return math.Pi / 3
}

// Segments returns how many sub-segments replace one segment per round.
func (f Family) Segments() int {
	if f == Minkowski {
		return 8
	}

	return 4
}

// divisions returns the number of equal parts the base segment is cut into.
func (f Family) divisions() float64 {
	if f == Minkowski {
		return 4
	}

	return 3
}

func (f Family) valid() bool {
	return f == Koch || f == Minkowski
}

// rotation returns the unit complex number e^{iθ} for the family angle.
func (f Family) rotation() complex128 {
	return cmplx.Rect(1, f.Angle())
}
