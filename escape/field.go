package escape

// Field is a Rows×Cols grid of escape counts in row-major order.
// Every count lies in [0, MaxIter].
type Field struct {
	plane   Plane
	maxIter int
	counts  []int
}

// Rows returns the number of rows (plane height).
func (f *Field) Rows() int { return f.plane.Height }

// Cols returns the number of columns (plane width).
func (f *Field) Cols() int { return f.plane.Width }

// MaxIter returns the iteration budget the field was computed with.
func (f *Field) MaxIter() int { return f.maxIter }

// Plane returns the sampled plane.
func (f *Field) Plane() Plane { return f.plane }

// At returns the count of cell (row, col). It panics when out of range,
// like a slice index.
func (f *Field) At(row, col int) int {
	if row < 0 || row >= f.plane.Height || col < 0 || col >= f.plane.Width {
		panic("escape: Field.At index out of range")
	}

	return f.counts[row*f.plane.Width+col]
}

// Counts returns a row-major copy of all counts.
func (f *Field) Counts() []int {
	return append([]int(nil), f.counts...)
}

// Histogram returns h with h[k] = number of cells whose count is k,
// for k in [0, MaxIter].
func (f *Field) Histogram() []int {
	h := make([]int, f.maxIter+1)
	for _, c := range f.counts {
		h[c]++
	}

	return h
}

// Interior returns the number of cells that never escaped.
func (f *Field) Interior() int {
	n := 0
	for _, c := range f.counts {
		if c == f.maxIter {
			n++
		}
	}

	return n
}
