package boxdim

import "errors"

var (
	// ErrInvalidInput indicates a nil grid, a non-positive size or bad options.
	ErrInvalidInput = errors.New("boxdim: invalid input")

	// ErrInsufficientData indicates the regression cannot be fitted: fewer than
	// two distinct sizes, or a size with no occupied box.
	ErrInsufficientData = errors.New("boxdim: insufficient data for regression")
)
