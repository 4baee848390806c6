package occupancy

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("occupancy: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("occupancy: all rows must have the same length")
	// ErrNonBinary indicates a cell value outside {0, 1}.
	ErrNonBinary = errors.New("occupancy: cell values must be 0 or 1")
	// ErrOutOfRange indicates a row or column index outside the grid.
	ErrOutOfRange = errors.New("occupancy: index out of range")
	// ErrInvalidSize indicates a non-positive dimension or level.
	ErrInvalidSize = errors.New("occupancy: invalid size")
)
