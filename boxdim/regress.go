package boxdim

import "fmt"

// line is an ordinary least-squares fit y = slope·x + intercept.
type line struct {
	slope, intercept float64
	rSquared         float64
}

// fitLine fits xs/ys by centring both columns on their means and solving the
// normal equation in closed form.
//
// Errors: ErrInsufficientData for fewer than two points or constant xs.
func fitLine(xs, ys []float64) (line, error) {
	n := len(xs)
	if n < 2 || len(ys) != n {
		return line{}, fmt.Errorf("fitLine: %d points: %w", n, ErrInsufficientData)
	}

	var mx, my float64
	for i := 0; i < n; i++ {
		mx += xs[i]
		my += ys[i]
	}
	inv := 1 / float64(n)
	mx *= inv
	my *= inv

	var sxx, sxy, syy float64
	for i := 0; i < n; i++ {
		dx, dy := xs[i]-mx, ys[i]-my
		sxx += dx * dx
		sxy += dx * dy
		syy += dy * dy
	}
	if sxx == 0 {
		return line{}, fmt.Errorf("fitLine: constant abscissa: %w", ErrInsufficientData)
	}

	l := line{slope: sxy / sxx}
	l.intercept = my - l.slope*mx
	// syy == 0 means every y is explained exactly.
	l.rSquared = 1
	if syy > 0 {
		l.rSquared = sxy * sxy / (sxx * syy)
	}

	return l, nil
}
