package fieldsvc_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fractalis/catalog"
	"github.com/katalvlaran/fractalis/fieldsvc"
)

func newService(t *testing.T, opts ...fieldsvc.Option) *fieldsvc.Service {
	t.Helper()
	s, err := fieldsvc.New(nil, opts...)
	require.NoError(t, err)

	return s
}

func TestHandle_MandelbrotCached(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	req := fieldsvc.Request{
		ID:     "a",
		Kind:   fieldsvc.KindMandelbrot,
		Params: map[string]any{"width": 4, "height": 3, "max_iter": 20},
	}

	first := s.Handle(ctx, req)
	require.Empty(t, first.Error)
	assert.Equal(t, "a", first.ID)
	assert.False(t, first.Cached)
	require.NotNil(t, first.Field)
	assert.Equal(t, 3, first.Field.Rows)
	assert.Equal(t, 4, first.Field.Cols)
	assert.Equal(t, 20, first.Field.MaxIter)
	assert.Len(t, first.Field.Counts, 12)

	req.ID = "b"
	second := s.Handle(ctx, req)
	require.Empty(t, second.Error)
	assert.Equal(t, "b", second.ID)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Field, second.Field)
	assert.Equal(t, 1, s.CacheLen())
}

// TestHandle_ParamCoercion checks that loosely typed values of the same
// request share one cache entry.
func TestHandle_ParamCoercion(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	a := s.Handle(ctx, fieldsvc.Request{Kind: fieldsvc.KindJulia, Preset: "spirals",
		Params: map[string]any{"width": 5, "height": 5, "max_iter": 30}})
	b := s.Handle(ctx, fieldsvc.Request{Kind: fieldsvc.KindJulia, Preset: "spirals",
		Params: map[string]any{"width": "5", "height": 5.0, "max_iter": int64(30)}})
	require.Empty(t, a.Error)
	require.Empty(t, b.Error)
	assert.True(t, b.Cached)
	assert.Equal(t, a.Field, b.Field)
}

func TestHandle_JuliaOverrides(t *testing.T) {
	s := newService(t)
	resp := s.Handle(context.Background(), fieldsvc.Request{Kind: fieldsvc.KindJulia,
		Params: map[string]any{"re": 0.0, "im": 0.0, "width": 3, "height": 3, "max_iter": 10}})
	require.Empty(t, resp.Error)
	// c=0 keeps the unit disc bounded; the centre sample is the origin.
	assert.Equal(t, 10, resp.Field.Counts[4])
	// The corners (±2, ±2) escape at once.
	assert.Equal(t, 0, resp.Field.Counts[0])
}

func TestHandle_Points(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	c := s.Handle(ctx, fieldsvc.Request{Kind: fieldsvc.KindCurve, Preset: "koch-segment",
		Params: map[string]any{"level": 2}})
	require.Empty(t, c.Error)
	assert.Len(t, c.Points, 17)

	l := s.Handle(ctx, fieldsvc.Request{Kind: fieldsvc.KindLSystem, Preset: "koch",
		Params: map[string]any{"iterations": 2}})
	require.Empty(t, l.Error)
	assert.Len(t, l.Points, 17)

	req := fieldsvc.Request{Kind: fieldsvc.KindIFS,
		Params: map[string]any{"points": 1000, "chains": 4, "seed": 7}}
	i := s.Handle(ctx, req)
	require.Empty(t, i.Error)
	assert.Len(t, i.Points, 1000)

	fresh := newService(t).Handle(ctx, req)
	require.Empty(t, fresh.Error)
	assert.False(t, fresh.Cached)
	assert.Equal(t, i.Points, fresh.Points, "same seed, same cloud")
}

func TestHandle_Dimension(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	carpet := s.Handle(ctx, fieldsvc.Request{Kind: fieldsvc.KindDimension,
		Params: map[string]any{"source": "carpet", "level": 5}})
	require.Empty(t, carpet.Error)
	require.NotNil(t, carpet.Dimension)
	assert.InDelta(t, 1.8928, carpet.Dimension.Dimension, 0.1)
	assert.NotEmpty(t, carpet.Dimension.Table)

	snow := s.Handle(ctx, fieldsvc.Request{Kind: fieldsvc.KindDimension, Preset: "koch-snowflake",
		Params: map[string]any{"source": "curve", "size": 128}})
	require.Empty(t, snow.Error)
	assert.Greater(t, snow.Dimension.Dimension, 0.9)
	assert.Less(t, snow.Dimension.Dimension, 1.6)
}

func TestHandle_Errors(t *testing.T) {
	s := newService(t, fieldsvc.WithLimits(100, 50))
	ctx := context.Background()

	cases := []struct {
		name string
		req  fieldsvc.Request
		want error
	}{
		{"unknown kind", fieldsvc.Request{Kind: "dragon"}, fieldsvc.ErrUnknownKind},
		{"unparsable param", fieldsvc.Request{Kind: fieldsvc.KindMandelbrot,
			Params: map[string]any{"width": "wide"}}, fieldsvc.ErrBadRequest},
		{"too many cells", fieldsvc.Request{Kind: fieldsvc.KindMandelbrot,
			Params: map[string]any{"width": 20, "height": 20}}, fieldsvc.ErrTooLarge},
		{"too many curve points", fieldsvc.Request{Kind: fieldsvc.KindCurve,
			Params: map[string]any{"level": 3}}, fieldsvc.ErrTooLarge},
		{"too many lsystem symbols", fieldsvc.Request{Kind: fieldsvc.KindLSystem,
			Params: map[string]any{"iterations": 4}}, fieldsvc.ErrTooLarge},
		{"too many ifs points", fieldsvc.Request{Kind: fieldsvc.KindIFS,
			Params: map[string]any{"points": 60}}, fieldsvc.ErrTooLarge},
		{"uneven chains", fieldsvc.Request{Kind: fieldsvc.KindIFS,
			Params: map[string]any{"points": 10, "chains": 3}}, fieldsvc.ErrBadRequest},
		{"unknown source", fieldsvc.Request{Kind: fieldsvc.KindDimension,
			Params: map[string]any{"source": "fog"}}, fieldsvc.ErrBadRequest},
		{"unknown preset", fieldsvc.Request{Kind: fieldsvc.KindJulia, Preset: "nope"}, catalog.ErrUnknownPreset},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := s.Handle(ctx, tc.req)
			assert.Contains(t, resp.Error, tc.want.Error())
			assert.Nil(t, resp.Field)
			assert.Nil(t, resp.Points)
		})
	}
	assert.Zero(t, s.CacheLen(), "failures are not cached")
}

func TestHandle_DimensionLimits(t *testing.T) {
	s := newService(t, fieldsvc.WithLimits(100, 50))
	ctx := context.Background()
	dim := func(params map[string]any) fieldsvc.Response {
		return s.Handle(ctx, fieldsvc.Request{Kind: fieldsvc.KindDimension, Params: params})
	}

	// fixtures ignore size, only their own side counts
	small := dim(map[string]any{"source": "carpet", "level": 2})
	require.Empty(t, small.Error)
	require.NotNil(t, small.Dimension)
	assert.Greater(t, small.Dimension.Dimension, 1.0)

	gasket := dim(map[string]any{"source": "gasket", "level": 3})
	require.Empty(t, gasket.Error)

	for name, params := range map[string]map[string]any{
		"carpet 27x27":        {"source": "carpet", "level": 3},
		"carpet tiny size":    {"source": "carpet", "level": 7, "size": 1},
		"gasket 16x16":        {"source": "gasket", "level": 4},
		"curve raster 11x11":  {"source": "curve", "size": 11},
		"ifs raster too wide": {"source": "ifs", "size": 1 << 20},
	} {
		resp := dim(params)
		assert.Contains(t, resp.Error, fieldsvc.ErrTooLarge.Error(), name)
		assert.Nil(t, resp.Dimension, name)
	}
}

func TestHandle_IFSBudget(t *testing.T) {
	s := newService(t, fieldsvc.WithLimits(100, 50))
	ctx := context.Background()

	cases := []struct {
		name   string
		params map[string]any
		want   error
	}{
		{"burn-in above limit", map[string]any{"points": 10, "burn_in": 51}, fieldsvc.ErrTooLarge},
		{"burn-in across chains", map[string]any{"points": 10, "chains": 5, "burn_in": 11}, fieldsvc.ErrTooLarge},
		{"negative burn-in", map[string]any{"points": 10, "burn_in": -1}, fieldsvc.ErrBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := s.Handle(ctx, fieldsvc.Request{Kind: fieldsvc.KindIFS, Params: tc.params})
			assert.Contains(t, resp.Error, tc.want.Error())
			assert.Nil(t, resp.Points)
		})
	}

	ok := s.Handle(ctx, fieldsvc.Request{Kind: fieldsvc.KindIFS,
		Params: map[string]any{"points": 10, "chains": 5, "burn_in": 10}})
	require.Empty(t, ok.Error)
	assert.Len(t, ok.Points, 10)
}

func TestHandle_IterationBudget(t *testing.T) {
	s := newService(t, fieldsvc.WithIterationBudget(1000))
	ctx := context.Background()

	over := s.Handle(ctx, fieldsvc.Request{Kind: fieldsvc.KindMandelbrot,
		Params: map[string]any{"width": 10, "height": 10, "max_iter": 11}})
	assert.Contains(t, over.Error, fieldsvc.ErrTooLarge.Error())

	at := s.Handle(ctx, fieldsvc.Request{Kind: fieldsvc.KindJulia,
		Params: map[string]any{"width": 10, "height": 10, "max_iter": 10}})
	require.Empty(t, at.Error)
	assert.Equal(t, 10, at.Field.MaxIter)
}

func TestHandle_CanceledIFS(t *testing.T) {
	s := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := s.Handle(ctx, fieldsvc.Request{Kind: fieldsvc.KindIFS,
		Params: map[string]any{"points": 10, "burn_in": 1000}})
	assert.Contains(t, resp.Error, context.Canceled.Error())
	assert.Nil(t, resp.Points)
	assert.Zero(t, s.CacheLen())
}

func TestHandle_Canceled(t *testing.T) {
	s := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := s.Handle(ctx, fieldsvc.Request{Kind: fieldsvc.KindMandelbrot,
		Params: map[string]any{"width": 64, "height": 64}})
	assert.Contains(t, resp.Error, context.Canceled.Error())
	assert.Zero(t, s.CacheLen())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { fieldsvc.WithCacheTTL(0) })
	assert.Panics(t, func() { fieldsvc.WithReadLimit(-1) })
	assert.Panics(t, func() { fieldsvc.WithLimits(0, 1) })
	assert.Panics(t, func() { fieldsvc.WithIterationBudget(0) })
	assert.Panics(t, func() { fieldsvc.WithLogger(nil) })
	assert.Panics(t, func() { fieldsvc.WithStore(nil) })
	assert.Panics(t, func() { fieldsvc.WithTokenKey(nil) })
}

func TestHandle_GeneratedID(t *testing.T) {
	s := newService(t)
	a := s.Handle(context.Background(), fieldsvc.Request{Kind: fieldsvc.KindCurve})
	b := s.Handle(context.Background(), fieldsvc.Request{Kind: fieldsvc.KindCurve})
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

// memStore is an in-memory Store recording TTLs.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
	ttl  time.Duration
	fail error
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	b, ok := m.data[key]
	if !ok {
		return nil, fieldsvc.ErrCacheMiss
	}

	return b, nil
}

func (m *memStore) Set(_ context.Context, key string, val []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.data[key] = val
	m.ttl = ttl

	return nil
}

// TestHandle_SharedStore: a second service sharing the store answers from it
// without recomputing.
func TestHandle_SharedStore(t *testing.T) {
	st := newMemStore()
	ctx := context.Background()
	req := fieldsvc.Request{Kind: fieldsvc.KindDimension,
		Params: map[string]any{"source": "gasket", "level": 4}}

	a := newService(t, fieldsvc.WithStore(st), fieldsvc.WithCacheTTL(time.Minute))
	first := a.Handle(ctx, req)
	require.Empty(t, first.Error)
	assert.False(t, first.Cached)
	assert.Len(t, st.data, 1)
	assert.Equal(t, time.Minute, st.ttl)

	b := newService(t, fieldsvc.WithStore(st))
	second := b.Handle(ctx, req)
	require.Empty(t, second.Error)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Dimension, second.Dimension)
	assert.Equal(t, 1, b.CacheLen(), "store hits are promoted")
}

// TestHandle_StoreFailure: store errors degrade to computing locally.
func TestHandle_StoreFailure(t *testing.T) {
	st := newMemStore()
	st.fail = errors.New("connection refused")
	s := newService(t, fieldsvc.WithStore(st))

	resp := s.Handle(context.Background(), fieldsvc.Request{Kind: fieldsvc.KindCurve})
	require.Empty(t, resp.Error)
	assert.NotEmpty(t, resp.Points)
	assert.Equal(t, 1, s.CacheLen())
}

// TestRedisStore runs against a live server named by FRACTALIS_REDIS_ADDR.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("FRACTALIS_REDIS_ADDR")
	if addr == "" {
		t.Skip("FRACTALIS_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	ctx := context.Background()
	prefix := "fractalis-test:" + t.Name() + ":"
	st := fieldsvc.NewRedisStore(client, prefix)

	_, err := st.Get(ctx, "absent")
	assert.ErrorIs(t, err, fieldsvc.ErrCacheMiss)

	require.NoError(t, st.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := st.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
	require.NoError(t, client.Del(ctx, prefix+"k").Err())
}
