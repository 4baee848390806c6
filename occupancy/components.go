package occupancy

// Connectivity selects which neighbours join foreground cells.
type Connectivity int

const (
	// Conn4 joins orthogonal neighbours: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 also joins diagonal neighbours.
	Conn8
)

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Components labels the connected foreground regions of g.
// Each component lists row-major cell indices in BFS order; components are
// ordered by their first cell in row-major scan.
// Time:   O(R·C·d), d = 4 or 8.
// Memory: O(R·C).
func (g *Grid) Components(conn Connectivity) [][]int {
	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}
	seen := make([]bool, len(g.cells))
	var comps [][]int
	for i0, v := range g.cells {
		if v == 0 || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			r, c := queue[qi]/g.cols, queue[qi]%g.cols
			for _, d := range offsets {
				nr, nc := r+d[0], c+d[1]
				if !g.InBounds(nr, nc) {
					continue
				}
				ni := nr*g.cols + nc
				if g.cells[ni] == 0 || seen[ni] {
					continue
				}
				seen[ni] = true
				queue = append(queue, ni)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
