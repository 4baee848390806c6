package escape

import (
	"context"
	"runtime"
)

// DefaultBandRows is the number of rows a worker claims at a time.
const DefaultBandRows = 8

// Option customizes a field computation.
type Option func(*config)

type config struct {
	ctx      context.Context
	workers  int
	bandRows int
}

func newConfig(opts []Option) config {
	cfg := config{
		ctx:      context.Background(),
		workers:  runtime.GOMAXPROCS(0),
		bandRows: DefaultBandRows,
	}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}

// WithWorkers sets the number of goroutines. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("escape: WithWorkers(n < 1)")
	}

	return func(c *config) { c.workers = n }
}

// WithBandRows sets how many rows a worker claims at a time. Panics if n < 1.
func WithBandRows(n int) Option {
	if n < 1 {
		panic("escape: WithBandRows(n < 1)")
	}

	return func(c *config) { c.bandRows = n }
}

// WithContext aborts the computation between bands once ctx is done.
// Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("escape: WithContext(nil)")
	}

	return func(c *config) { c.ctx = ctx }
}
