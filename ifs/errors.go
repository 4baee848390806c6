package ifs

import "errors"

// ErrInvalidInput indicates a malformed map set or sampling request.
var ErrInvalidInput = errors.New("ifs: invalid input")
