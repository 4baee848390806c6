package fieldsvc

import (
	"time"

	"github.com/sgostarter/i/l"
)

// Defaults for New.
const (
	DefaultCacheTTL  = 10 * time.Minute
	DefaultReadLimit = 64 << 10
	DefaultMaxCells  = 1 << 22
	DefaultMaxPoints = 1 << 21
	DefaultMaxWork   = 1 << 31
)

// Option customizes a Service.
type Option func(*config)

type config struct {
	cacheTTL  time.Duration
	readLimit int64
	maxCells  int
	maxPoints int
	maxWork   int64
	origins   []string
	logger    l.Wrapper
	store     Store
	tokenKey  []byte
}

func newConfig(opts []Option) config {
	cfg := config{
		cacheTTL:  DefaultCacheTTL,
		readLimit: DefaultReadLimit,
		maxCells:  DefaultMaxCells,
		maxPoints: DefaultMaxPoints,
		maxWork:   DefaultMaxWork,
		logger:    l.NewNopLoggerWrapper(),
	}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}

// WithCacheTTL sets how long results stay memoized. Panics if d <= 0.
func WithCacheTTL(d time.Duration) Option {
	if d <= 0 {
		panic("fieldsvc: WithCacheTTL(d <= 0)")
	}

	return func(c *config) { c.cacheTTL = d }
}

// WithReadLimit caps inbound message size in bytes. Panics if n <= 0.
func WithReadLimit(n int64) Option {
	if n <= 0 {
		panic("fieldsvc: WithReadLimit(n <= 0)")
	}

	return func(c *config) { c.readLimit = n }
}

// WithLimits caps escape-field cells and returned points. Panics on non-positive values.
func WithLimits(maxCells, maxPoints int) Option {
	if maxCells <= 0 || maxPoints <= 0 {
		panic("fieldsvc: WithLimits(non-positive)")
	}

	return func(c *config) {
		c.maxCells = maxCells
		c.maxPoints = maxPoints
	}
}

// WithIterationBudget caps width·height·max_iter for escape-time requests.
// Panics if n <= 0.
func WithIterationBudget(n int64) Option {
	if n <= 0 {
		panic("fieldsvc: WithIterationBudget(n <= 0)")
	}

	return func(c *config) { c.maxWork = n }
}

// WithOriginPatterns allows cross-origin websocket handshakes from the given
// host patterns (see websocket.AcceptOptions.OriginPatterns).
func WithOriginPatterns(patterns ...string) Option {
	return func(c *config) { c.origins = append([]string(nil), patterns...) }
}

// WithLogger routes connection and request logs to logger. Panics on nil.
func WithLogger(logger l.Wrapper) Option {
	if logger == nil {
		panic("fieldsvc: WithLogger(nil)")
	}

	return func(c *config) { c.logger = logger }
}

// WithStore adds a shared second-tier result cache, consulted on in-process
// misses and written after every computation. Panics on nil.
func WithStore(st Store) Option {
	if st == nil {
		panic("fieldsvc: WithStore(nil)")
	}

	return func(c *config) { c.store = st }
}

// WithTokenKey requires every websocket handshake to carry an HS256 JWT
// signed with key (see IssueToken). Panics on an empty key.
func WithTokenKey(key []byte) Option {
	if len(key) == 0 {
		panic("fieldsvc: WithTokenKey(empty)")
	}
	k := append([]byte(nil), key...)

	return func(c *config) { c.tokenKey = k }
}
