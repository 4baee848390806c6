package lsystem

import "errors"

var (
	// ErrInvalidInput indicates malformed grammar or turtle arguments.
	ErrInvalidInput = errors.New("lsystem: invalid input")

	// ErrTooLarge indicates an expansion whose output would exceed MaxSymbols bytes.
	ErrTooLarge = errors.New("lsystem: expansion too large")

	// ErrEmptyStack indicates a ']' with no saved turtle state. It aborts Draw.
	ErrEmptyStack = errors.New("lsystem: pop from empty state stack")
)
