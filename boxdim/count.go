package boxdim

import (
	"fmt"

	"github.com/katalvlaran/fractalis/occupancy"
)

// summedArea is an (H+1)×(W+1) prefix-sum table: sum[r][c] holds the number
// of foreground cells in rows [0,r) and columns [0,c).
type summedArea struct {
	stride int
	sum    []int32
}

func newSummedArea(g *occupancy.Grid) summedArea {
	h, w := g.Rows(), g.Cols()
	cells := g.Cells()
	sa := summedArea{stride: w + 1, sum: make([]int32, (h+1)*(w+1))}
	for r := 0; r < h; r++ {
		var rowSum int32
		above := sa.sum[r*sa.stride:]
		cur := sa.sum[(r+1)*sa.stride:]
		for c := 0; c < w; c++ {
			rowSum += int32(cells[r*w+c])
			cur[c+1] = above[c+1] + rowSum
		}
	}

	return sa
}

// box returns the foreground count of rows [r0,r1) × cols [c0,c1).
func (sa summedArea) box(r0, c0, r1, c1 int) int32 {
	s := sa.stride
	return sa.sum[r1*s+c1] - sa.sum[r0*s+c1] - sa.sum[r1*s+c0] + sa.sum[r0*s+c0]
}

// CountBoxes returns, for each distinct size in sizes (first occurrence
// order), the number of s×s tiles of the ⌊H/s⌋×⌊W/s⌋ tiling anchored at the
// top-left corner that contain a foreground cell.
//
// Errors: ErrInvalidInput for a nil grid or any size < 1.
//
// Complexity: O(H·W) to build the summed-area table, then O((H/s)(W/s)) per size.
func CountBoxes(grid *occupancy.Grid, sizes []int) (Table, error) {
	if grid == nil {
		return nil, fmt.Errorf("CountBoxes: nil grid: %w", ErrInvalidInput)
	}
	uniq := make([]int, 0, len(sizes))
	seen := make(map[int]bool, len(sizes))
	for _, s := range sizes {
		if s < 1 {
			return nil, fmt.Errorf("CountBoxes: size %d < 1: %w", s, ErrInvalidInput)
		}
		if !seen[s] {
			seen[s] = true
			uniq = append(uniq, s)
		}
	}
	if len(uniq) == 0 {
		return Table{}, nil
	}

	sa := newSummedArea(grid)
	h, w := grid.Rows(), grid.Cols()
	table := make(Table, len(uniq))
	for i, s := range uniq {
		n := 0
		for r := 0; r+s <= h; r += s {
			for c := 0; c+s <= w; c += s {
				if sa.box(r, c, r+s, c+s) > 0 {
					n++
				}
			}
		}
		table[i] = Entry{Size: s, Count: n}
	}

	return table, nil
}
