package escape

import (
	"fmt"
	"math/cmplx"
	"sync"
	"sync/atomic"
)

// bailout is the squared escape radius.
const bailout = 4.0

// Mandelbrot computes the field of z ← z² + c with z₀ = 0 and c the cell coordinate.
func Mandelbrot(plane Plane, maxIter int, opts ...Option) (*Field, error) {
	f, err := compute(plane, maxIter, kernel{}, newConfig(opts))
	if err != nil {
		return nil, fmt.Errorf("Mandelbrot: %w", err)
	}

	return f, nil
}

// Julia computes the field of z ← z² + c with z₀ the cell coordinate and c fixed.
func Julia(c complex128, plane Plane, maxIter int, opts ...Option) (*Field, error) {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		return nil, fmt.Errorf("Julia: constant %v is not finite: %w", c, ErrInvalidInput)
	}
	f, err := compute(plane, maxIter, kernel{julia: true, c: c}, newConfig(opts))
	if err != nil {
		return nil, fmt.Errorf("Julia(%v): %w", c, err)
	}

	return f, nil
}

// kernel selects how a cell's (z₀, c) pair is derived from its coordinate.
type kernel struct {
	julia bool
	c     complex128
}

func (k kernel) start(p complex128) (z, c complex128) {
	if k.julia {
		return p, k.c
	}

	return 0, p
}

func compute(plane Plane, maxIter int, k kernel, cfg config) (*Field, error) {
	if err := plane.Validate(); err != nil {
		return nil, err
	}
	if maxIter < 0 {
		return nil, fmt.Errorf("maxIter %d < 0: %w", maxIter, ErrInvalidInput)
	}

	f := &Field{plane: plane, maxIter: maxIter, counts: make([]int, plane.Width*plane.Height)}
	bands := (plane.Height + cfg.bandRows - 1) / cfg.bandRows
	workers := cfg.workers
	if workers > bands {
		workers = bands
	}

	var (
		next int64 = -1
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var scratch bandScratch
			for {
				b := int(atomic.AddInt64(&next, 1))
				if b >= bands || cfg.ctx.Err() != nil {
					return
				}
				r0 := b * cfg.bandRows
				r1 := min(r0+cfg.bandRows, plane.Height)
				scratch.run(f, k, r0, r1)
			}
		}()
	}
	wg.Wait()

	if err := cfg.ctx.Err(); err != nil {
		return nil, err
	}

	return f, nil
}

// bandScratch holds per-worker buffers reused across bands.
type bandScratch struct {
	z, c []complex128
	live []int32
}

// run iterates rows [r0, r1) with masked rounds over a compacted live list
// and writes the counts into f.
func (s *bandScratch) run(f *Field, k kernel, r0, r1 int) {
	cols := f.plane.Width
	n := (r1 - r0) * cols
	if cap(s.z) < n {
		s.z = make([]complex128, n)
		s.c = make([]complex128, n)
		s.live = make([]int32, n)
	}
	z, c, live := s.z[:n], s.c[:n], s.live[:n]
	counts := f.counts[r0*cols : r1*cols]

	for r := r0; r < r1; r++ {
		im := f.plane.imag(r)
		for col := 0; col < cols; col++ {
			i := (r-r0)*cols + col
			z[i], c[i] = k.start(complex(f.plane.real(col), im))
			live[i] = int32(i)
		}
	}

	for round := 0; round < f.maxIter && len(live) > 0; round++ {
		kept := 0
		for _, i := range live {
			zi := z[i]
			re, im := real(zi), imag(zi)
			if re*re+im*im > bailout {
				continue
			}
			z[i] = zi*zi + c[i]
			counts[i]++
			live[kept] = i
			kept++
		}
		live = live[:kept]
	}
}
