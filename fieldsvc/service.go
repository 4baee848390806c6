package fieldsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/godruoyi/go-snowflake"
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/fractalis/catalog"
)

// Service computes requests against a preset catalog and memoizes results
// in an in-process cache, optionally backed by a shared Store.
// It is safe for concurrent use.
type Service struct {
	cat   *catalog.Catalog
	cache *cache.Cache
	cfg   config
	log   l.Wrapper
}

// New builds a Service. A nil catalog means catalog.Default().
func New(cat *catalog.Catalog, opts ...Option) (*Service, error) {
	if cat == nil {
		var err error
		if cat, err = catalog.Default(); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}
	cfg := newConfig(opts)

	return &Service{
		cat:   cat,
		cache: cache.New(cfg.cacheTTL, 2*cfg.cacheTTL),
		cfg:   cfg,
		log:   cfg.logger.WithFields(l.StringField(l.ClsKey, "fieldsvc")),
	}, nil
}

// CacheLen returns the number of results in the in-process cache, expired
// entries not yet collected included.
func (s *Service) CacheLen() int { return s.cache.ItemCount() }

// Handle computes one request. Errors are reported in Response.Error.
// A request without ID gets a generated one.
// Slices in the response may be shared with the cache and must not be modified.
func (s *Service) Handle(ctx context.Context, req Request) Response {
	if req.ID == "" {
		req.ID = strconv.FormatUint(snowflake.ID(), 36)
	}
	resp := Response{ID: req.ID, Kind: req.Kind}

	j, err := s.plan(req)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	if res, ok := s.lookup(ctx, j.key); ok {
		resp.fill(res)
		resp.Cached = true
		return resp
	}

	res, err := j.run(ctx)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	s.remember(ctx, j.key, res)
	resp.fill(res)

	return resp
}

// lookup checks the in-process cache, then the shared store. A store hit is
// promoted into the in-process cache.
func (s *Service) lookup(ctx context.Context, key string) (*result, bool) {
	if v, ok := s.cache.Get(key); ok {
		return v.(*result), true
	}
	if s.cfg.store == nil {
		return nil, false
	}
	data, err := s.cfg.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			s.log.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("store get")
		}
		return nil, false
	}
	var res result
	if err := json.Unmarshal(data, &res); err != nil {
		s.log.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("store decode")
		return nil, false
	}
	s.cache.Set(key, &res, cache.DefaultExpiration)

	return &res, true
}

func (s *Service) remember(ctx context.Context, key string, res *result) {
	s.cache.Set(key, res, cache.DefaultExpiration)
	if s.cfg.store == nil {
		return
	}
	data, err := json.Marshal(res)
	if err == nil {
		err = s.cfg.store.Set(ctx, key, data, s.cfg.cacheTTL)
	}
	if err != nil {
		s.log.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("store set")
	}
}

func (r *Response) fill(res *result) {
	r.Field = res.Field
	r.Points = res.Points
	r.Dimension = res.Dimension
}

// job is a validated, canonical request ready to run.
type job struct {
	key string
	run func(ctx context.Context) (*result, error)
}

func (s *Service) plan(req Request) (job, error) {
	rd := &reader{p: params(req.Params)}
	var (
		j   job
		err error
	)
	switch req.Kind {
	case KindMandelbrot:
		j, err = s.planMandelbrot(req.Preset, rd)
	case KindJulia:
		j, err = s.planJulia(req.Preset, rd)
	case KindCurve:
		j, err = s.planCurve(req.Preset, rd)
	case KindLSystem:
		j, err = s.planLSystem(req.Preset, rd)
	case KindIFS:
		j, err = s.planIFS(req.Preset, rd)
	case KindDimension:
		j, err = s.planDimension(req.Preset, rd)
	default:
		return job{}, fmt.Errorf("kind %q: %w", req.Kind, ErrUnknownKind)
	}
	if err != nil {
		return job{}, fmt.Errorf("%s: %w", req.Kind, err)
	}

	return j, nil
}

// reader keeps the first parameter error so planners can read fields in a row.
type reader struct {
	p   params
	err error
}

func (r *reader) intParam(key string, def int) int {
	if r.err != nil {
		return def
	}
	v, err := r.p.intOr(key, def)
	r.err = err

	return v
}

func (r *reader) int64Param(key string, def int64) int64 {
	if r.err != nil {
		return def
	}
	v, err := r.p.int64Or(key, def)
	r.err = err

	return v
}

func (r *reader) floatParam(key string, def float64) float64 {
	if r.err != nil {
		return def
	}
	v, err := r.p.floatOr(key, def)
	r.err = err

	return v
}

func (r *reader) stringParam(key, def string) string {
	if r.err != nil {
		return def
	}
	v, err := r.p.stringOr(key, def)
	r.err = err

	return v
}
