package curve

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/fractalis/geom"
)

// Generate applies level rounds of family substitution to seed.
//
// Algorithm (one round):
//  1. d   = (e − s) / k          (k = 3 for Koch, 4 for Minkowski)
//  2. rot = e^{iθ}, computed once per call
//  3. Koch:      s, s+d, s+d+d·rot, s+2d                       then e
//     Minkowski: s, s+d, s+d+d·rot, s+2d+d·rot, s+2d,
//     s+2d+d·conj(rot), s+3d+d·conj(rot), s+3d     then e
//  4. The trailing e is emitted only for the last segment; every other
//     segment's end is the next segment's start.
//
// Inputs:
//   - seed:   ≥2 ordered points; each consecutive pair is a seed segment.
//   - level:  ≥0 rounds. level==0 returns a copy of seed.
//   - family: Koch or Minkowski.
//
// Errors:
//   - ErrInvalidInput for len(seed)<2, level<0, unknown family or non-finite seed.
//
// Complexity: O((n−1)·S^level) time and memory, S = family.Segments().
func Generate(seed []complex128, level int, family Family) ([]complex128, error) {
	if len(seed) < 2 {
		return nil, fmt.Errorf("Generate: seed has %d points, need ≥2: %w", len(seed), ErrInvalidInput)
	}
	if level < 0 {
		return nil, fmt.Errorf("Generate: level %d < 0: %w", level, ErrInvalidInput)
	}
	if !family.valid() {
		return nil, fmt.Errorf("Generate: family %d: %w", family, ErrInvalidInput)
	}
	for i, z := range seed {
		if cmplx.IsNaN(z) || cmplx.IsInf(z) {
			return nil, fmt.Errorf("Generate: seed[%d]=%v is not finite: %w", i, z, ErrInvalidInput)
		}
	}

	cur := make([]complex128, len(seed))
	copy(cur, seed)
	if level == 0 {
		return cur, nil
	}

	if _, err := Length(len(seed), level, family); err != nil {
		return nil, err
	}

	rot := family.rotation()
	k := complex(family.divisions(), 0)
	per := family.Segments()
	for round := 0; round < level; round++ {
		next := make([]complex128, 0, (len(cur)-1)*per+1)
		for i := 0; i+1 < len(cur); i++ {
			next = subdivide(next, cur[i], cur[i+1], k, rot, family)
		}
		next = append(next, cur[len(cur)-1])
		cur = next
	}

	return cur, nil
}

// subdivide appends the motif of (s, e) to dst, excluding e itself.
func subdivide(dst []complex128, s, e, k, rot complex128, family Family) []complex128 {
	d := (e - s) / k
	up := d * rot
	switch family {
	case Minkowski:
		down := d * cmplx.Conj(rot)
		return append(dst,
			s,
			s+d,
			s+d+up,
			s+2*d+up,
			s+2*d,
			s+2*d+down,
			s+3*d+down,
			s+3*d,
		)
	default:
		return append(dst,
			s,
			s+d,
			s+d+up,
			s+2*d,
		)
	}
}

// maxPoints caps the output size Generate is willing to allocate.
const maxPoints = 1 << 28

// Length returns the exact number of points Generate produces for a seed of
// n points, without generating them: (n−1)·S^level + 1.
// Returns ErrInvalidInput when n<2, level<0 or the result would exceed the
// allocation cap.
func Length(n, level int, family Family) (int, error) {
	if n < 2 || level < 0 || !family.valid() {
		return 0, fmt.Errorf("Length(%d,%d,%s): %w", n, level, family, ErrInvalidInput)
	}
	segs := n - 1
	for i := 0; i < level; i++ {
		segs *= family.Segments()
		if segs >= maxPoints {
			return 0, fmt.Errorf("Length(%d,%d,%s): more than %d points: %w", n, level, family, maxPoints, ErrInvalidInput)
		}
	}

	return segs + 1, nil
}

// Sequence converts complex-plane output to the shared geom.Sequence model.
func Sequence(points []complex128) geom.Sequence {
	return geom.FromComplexSlice(points)
}

// UnitSegment is the seed [0, 1].
func UnitSegment() []complex128 {
	return []complex128{0, 1}
}

// SnowflakeSeed is a closed equilateral triangle (4 points, 3 segments) with
// unit sides, oriented so Koch kinks point outwards. Koch substitution on it
// yields the snowflake with 3·4^level + 1 points.
func SnowflakeSeed() []complex128 {
	h := math.Sqrt(3) / 2
	return []complex128{0, 1, complex(0.5, -h), 0}
}
