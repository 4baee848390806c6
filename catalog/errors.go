package catalog

import "errors"

var (
	// ErrUnknownPreset indicates a name missing from its catalog section.
	ErrUnknownPreset = errors.New("catalog: unknown preset")

	// ErrInvalidPreset indicates an entry that cannot be turned into a domain value.
	ErrInvalidPreset = errors.New("catalog: invalid preset")
)
