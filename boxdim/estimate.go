package boxdim

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fractalis/occupancy"
)

// Default estimation parameters.
const (
	DefaultMinSize  = 1
	DefaultNumSizes = 10
)

// Options configures EstimateDimension.
type Options struct {
	// MinSize is the smallest box side (≥ 1).
	MinSize int
	// MaxSize is the largest box side; 0 means min(H, W)/2.
	MaxSize int
	// NumSizes is how many sizes to sample before deduplication (≥ 1).
	NumSizes int
}

// DefaultOptions returns MinSize 1, MaxSize auto (0) and 10 sizes.
func DefaultOptions() Options {
	return Options{MinSize: DefaultMinSize, MaxSize: 0, NumSizes: DefaultNumSizes}
}

// Result carries the estimate together with everything needed to redraw
// the log-log plot.
type Result struct {
	Dimension float64 `json:"dimension" yaml:"dimension"` // −Slope
	Slope     float64 `json:"slope" yaml:"slope"`
	Intercept float64 `json:"intercept" yaml:"intercept"`
	RSquared  float64 `json:"r_squared" yaml:"r_squared"`
	Table     Table   `json:"table" yaml:"table"`
}

// EstimateDimension computes the box-counting dimension of grid.
//
// Implementation:
//   - Stage 1: resolve MaxSize and build GeometricSizes(MaxSize, MinSize, NumSizes).
//   - Stage 2: CountBoxes over those sizes.
//   - Stage 3: OLS fit of ln N against ln s; Dimension = −slope.
//
// Errors:
//   - ErrInvalidInput: nil grid, MinSize < 1, NumSizes < 1, negative MaxSize,
//     or an explicit MaxSize below MinSize.
//   - ErrInsufficientData: fewer than 2 distinct sizes (including grids too
//     small for the automatic MaxSize), or any zero count.
func EstimateDimension(grid *occupancy.Grid, opts Options) (Result, error) {
	if grid == nil {
		return Result{}, fmt.Errorf("EstimateDimension: nil grid: %w", ErrInvalidInput)
	}
	if opts.MinSize < 1 || opts.NumSizes < 1 || opts.MaxSize < 0 {
		return Result{}, fmt.Errorf("EstimateDimension: options %+v: %w", opts, ErrInvalidInput)
	}
	maxSize := opts.MaxSize
	if maxSize == 0 {
		maxSize = min(grid.Rows(), grid.Cols()) / 2
		if maxSize < opts.MinSize {
			return Result{}, fmt.Errorf("EstimateDimension: %dx%d grid too small for min size %d: %w",
				grid.Rows(), grid.Cols(), opts.MinSize, ErrInsufficientData)
		}
	}

	sizes, err := GeometricSizes(maxSize, opts.MinSize, opts.NumSizes)
	if err != nil {
		return Result{}, fmt.Errorf("EstimateDimension: %w", err)
	}
	if len(sizes) < 2 {
		return Result{}, fmt.Errorf("EstimateDimension: %d distinct sizes: %w", len(sizes), ErrInsufficientData)
	}

	table, err := CountBoxes(grid, sizes)
	if err != nil {
		return Result{}, fmt.Errorf("EstimateDimension: %w", err)
	}

	xs := make([]float64, len(table))
	ys := make([]float64, len(table))
	for i, e := range table {
		if e.Count == 0 {
			return Result{Table: table}, fmt.Errorf("EstimateDimension: size %d has no occupied box: %w", e.Size, ErrInsufficientData)
		}
		xs[i] = math.Log(float64(e.Size))
		ys[i] = math.Log(float64(e.Count))
	}

	fit, err := fitLine(xs, ys)
	if err != nil {
		return Result{Table: table}, fmt.Errorf("EstimateDimension: %w", err)
	}

	return Result{
		Dimension: -fit.slope,
		Slope:     fit.slope,
		Intercept: fit.intercept,
		RSquared:  fit.rSquared,
		Table:     table,
	}, nil
}
