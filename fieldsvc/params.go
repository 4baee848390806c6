package fieldsvc

import (
	"fmt"

	"github.com/spf13/cast"
)

// params reads loosely typed request parameters.
type params map[string]any

func (p params) intOr(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("param %q: %v: %w", key, err, ErrBadRequest)
	}

	return n, nil
}

func (p params) int64Or(key string, def int64) (int64, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, fmt.Errorf("param %q: %v: %w", key, err, ErrBadRequest)
	}

	return n, nil
}

func (p params) floatOr(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("param %q: %v: %w", key, err, ErrBadRequest)
	}

	return f, nil
}

func (p params) stringOr(key, def string) (string, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("param %q: %v: %w", key, err, ErrBadRequest)
	}

	return s, nil
}
