package boxdim

// Entry is the occupied-box count for one box size.
type Entry struct {
	Size  int `json:"size" yaml:"size"`
	Count int `json:"count" yaml:"count"`
}

// Table lists one Entry per distinct requested size, in request order.
type Table []Entry

// Map returns the size → count view of the table.
func (t Table) Map() map[int]int {
	m := make(map[int]int, len(t))
	for _, e := range t {
		m[e.Size] = e.Count
	}

	return m
}

// Sizes returns the box sizes in table order.
func (t Table) Sizes() []int {
	out := make([]int, len(t))
	for i, e := range t {
		out[i] = e.Size
	}

	return out
}

// Counts returns the box counts in table order.
func (t Table) Counts() []int {
	out := make([]int, len(t))
	for i, e := range t {
		out[i] = e.Count
	}

	return out
}
