package occupancy

import "fmt"

// maxFixtureCells caps synthetic fixtures so a typo in level cannot exhaust memory.
const maxFixtureCells = 1 << 26

// Carpet returns the Sierpinski carpet of the given level as a 3^level square.
// A cell is background when, at some base-3 digit position, both its row and
// column digits equal 1. Box counts at size 3^k are exactly 8^(level-k),
// giving the analytic dimension ln 8 / ln 3 ≈ 1.8928.
// Level 0 is a single foreground cell.
// Returns ErrInvalidSize for negative levels or grids above the fixture cap.
// Complexity: O(9^level · level).
func Carpet(level int) (*Grid, error) {
	n, err := fixtureSide("Carpet", level, 3)
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: n, cols: n, cells: make([]uint8, n*n)}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if carpetFilled(r, c) {
				g.cells[r*n+c] = 1
			}
		}
	}

	return g, nil
}

func carpetFilled(r, c int) bool {
	for r > 0 || c > 0 {
		if r%3 == 1 && c%3 == 1 {
			return false
		}
		r /= 3
		c /= 3
	}

	return true
}

// Gasket returns a Sierpinski gasket of the given level as a 2^level square:
// cell (r, c) is foreground iff r AND c == 0. Box counts at size 2^k are
// exactly 3^(level-k), giving the analytic dimension ln 3 / ln 2 ≈ 1.585.
// Returns ErrInvalidSize for negative levels or grids above the fixture cap.
// Complexity: O(4^level).
func Gasket(level int) (*Grid, error) {
	n, err := fixtureSide("Gasket", level, 2)
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: n, cols: n, cells: make([]uint8, n*n)}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if r&c == 0 {
				g.cells[r*n+c] = 1
			}
		}
	}

	return g, nil
}

func fixtureSide(op string, level, base int) (int, error) {
	if level < 0 {
		return 0, fmt.Errorf("%s(%d): negative level: %w", op, level, ErrInvalidSize)
	}
	n := 1
	for i := 0; i < level; i++ {
		n *= base
		if n*n > maxFixtureCells {
			return 0, fmt.Errorf("%s(%d): exceeds %d cells: %w", op, level, maxFixtureCells, ErrInvalidSize)
		}
	}

	return n, nil
}
