package geom

// Sequence is an ordered polyline; consecutive points form its segments.
type Sequence []Point

// FromComplexSlice converts complex-plane points into a Sequence.
// Complexity: O(n) time and memory.
func FromComplexSlice(zs []complex128) Sequence {
	out := make(Sequence, len(zs))
	for i, z := range zs {
		out[i] = FromComplex(z)
	}

	return out
}

// Complex returns the sequence as complex-plane points.
func (s Sequence) Complex() []complex128 {
	out := make([]complex128, len(s))
	for i, p := range s {
		out[i] = p.Complex()
	}

	return out
}

// Clone returns an independent copy of s.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)

	return out
}

// Length returns the summed length of all segments.
func (s Sequence) Length() float64 {
	var total float64
	for i := 1; i < len(s); i++ {
		total += s[i-1].Distance(s[i])
	}

	return total
}

// Bounds returns the axis-aligned bounding box of s.
// ok is false for an empty sequence.
// Complexity: O(n).
func (s Sequence) Bounds() (min, max Point, ok bool) {
	if len(s) == 0 {
		return Point{}, Point{}, false
	}
	min, max = s[0], s[0]
	for _, p := range s[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}

	return min, max, true
}
