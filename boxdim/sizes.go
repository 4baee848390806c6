package boxdim

import (
	"fmt"
	"math"
)

// GeometricSizes returns up to n integer box sizes spaced evenly in log
// space from max down to min (both included), rounded to the nearest integer
// and deduplicated. The result is strictly descending.
//
// Errors: ErrInvalidInput when n < 1, min < 1 or max < min.
func GeometricSizes(max, min, n int) ([]int, error) {
	if n < 1 || min < 1 || max < min {
		return nil, fmt.Errorf("GeometricSizes(max=%d, min=%d, n=%d): %w", max, min, n, ErrInvalidInput)
	}
	if n == 1 {
		return []int{max}, nil
	}

	hi, lo := math.Log(float64(max)), math.Log(float64(min))
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		var s int
		switch i {
		case 0:
			s = max
		case n - 1:
			s = min
		default:
			t := float64(i) / float64(n-1)
			s = int(math.Round(math.Exp(hi + t*(lo-hi))))
		}
		if len(out) > 0 && s >= out[len(out)-1] {
			continue
		}
		out = append(out, s)
	}

	return out, nil
}
