package occupancy

import (
	"fmt"
)

// Grid is a rectangular binary occupancy grid stored row-major.
// Cells are exactly 0 (background) or 1 (foreground).
type Grid struct {
	rows, cols int
	cells      []uint8
}

// New constructs a Grid from a non-empty, rectangular 2D slice of 0/1 values.
// It deep-copies the input.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNonBinary on invalid input.
// Complexity: O(R×C) time and memory.
func New(values [][]uint8) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	g := &Grid{rows: h, cols: w, cells: make([]uint8, h*w)}
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("New: row %d has %d cells, want %d: %w", r, len(row), w, ErrNonRectangular)
		}
		for c, v := range row {
			if v > 1 {
				return nil, fmt.Errorf("New: cell (%d,%d)=%d: %w", r, c, v, ErrNonBinary)
			}
			g.cells[r*w+c] = v
		}
	}

	return g, nil
}

// FromInts is New for int-valued input, convenient for literals in tests and fixtures.
func FromInts(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	conv := make([][]uint8, len(values))
	for r, row := range values {
		conv[r] = make([]uint8, len(row))
		for c, v := range row {
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("FromInts: cell (%d,%d)=%d: %w", r, c, v, ErrNonBinary)
			}
			conv[r][c] = uint8(v)
		}
	}

	return New(conv)
}

// Blank returns an all-background rows×cols grid.
func Blank(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Blank(%d,%d): %w", rows, cols, ErrInvalidSize)
	}

	return &Grid{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}, nil
}

// Full returns an all-foreground rows×cols grid.
func Full(rows, cols int) (*Grid, error) {
	g, err := Blank(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		g.cells[i] = 1
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell value at (row, col).
// Returns ErrOutOfRange for indices outside the grid.
func (g *Grid) At(row, col int) (uint8, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return g.cells[row*g.cols+col], nil
}

// Set marks (row, col) as foreground (on=true) or background.
// Returns ErrOutOfRange for indices outside the grid.
func (g *Grid) Set(row, col int, on bool) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	g.set(row, col, on)

	return nil
}

func (g *Grid) set(row, col int, on bool) {
	var v uint8
	if on {
		v = 1
	}
	g.cells[row*g.cols+col] = v
}

// Count returns the number of foreground cells.
// Complexity: O(R×C).
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.cells {
		n += int(v)
	}

	return n
}

// Values returns a deep copy of the grid as a 2D slice.
func (g *Grid) Values() [][]uint8 {
	out := make([][]uint8, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]uint8, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}

	return out
}

// Cells exposes the row-major backing slice (len = Rows×Cols) for read-only
// fast paths such as summed-area tables. Callers must not mutate it.
func (g *Grid) Cells() []uint8 {
	return g.cells
}
