package escape

import "errors"

// ErrInvalidInput indicates a malformed plane, iteration budget or constant.
var ErrInvalidInput = errors.New("escape: invalid input")
