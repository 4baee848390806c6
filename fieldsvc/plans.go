package fieldsvc

import (
	"context"
	"fmt"

	"github.com/katalvlaran/fractalis/boxdim"
	"github.com/katalvlaran/fractalis/curve"
	"github.com/katalvlaran/fractalis/escape"
	"github.com/katalvlaran/fractalis/geom"
	"github.com/katalvlaran/fractalis/ifs"
	"github.com/katalvlaran/fractalis/lsystem"
	"github.com/katalvlaran/fractalis/occupancy"
)

// Request defaults and limits.
const (
	defaultSide      = 256
	defaultMaxIter   = 100
	defaultIFSPoints = 10_000
	carpetLevel      = 5
	gasketLevel      = 8
	symbolsPerPoint  = 4
)

func orDefault(preset, def string) string {
	if preset == "" {
		return def
	}

	return preset
}

// fieldJob is the canonical form of mandelbrot and julia requests.
type fieldJob struct {
	Julia   bool
	C       complex128
	Plane   escape.Plane
	MaxIter int
}

func (s *Service) readPlane(region escape.Region, rd *reader) (escape.Plane, int, error) {
	p := escape.Plane{
		XMin:   rd.floatParam("xmin", region.XMin),
		XMax:   rd.floatParam("xmax", region.XMax),
		YMin:   rd.floatParam("ymin", region.YMin),
		YMax:   rd.floatParam("ymax", region.YMax),
		Width:  rd.intParam("width", defaultSide),
		Height: rd.intParam("height", defaultSide),
	}
	maxIter := rd.intParam("max_iter", defaultMaxIter)
	if rd.err != nil {
		return escape.Plane{}, 0, rd.err
	}
	if p.Width > 0 && p.Height > 0 && p.Width > s.cfg.maxCells/p.Height {
		return escape.Plane{}, 0, fmt.Errorf("%dx%d cells, limit %d: %w", p.Width, p.Height, s.cfg.maxCells, ErrTooLarge)
	}
	if maxIter > 0 && p.Width > 0 && p.Height > 0 && int64(maxIter) > s.cfg.maxWork/int64(p.Width*p.Height) {
		return escape.Plane{}, 0, fmt.Errorf("%dx%d cells at max_iter %d, budget %d: %w",
			p.Width, p.Height, maxIter, s.cfg.maxWork, ErrTooLarge)
	}

	return p, maxIter, nil
}

func (s *Service) planMandelbrot(preset string, rd *reader) (job, error) {
	region, err := s.cat.Region(orDefault(preset, "mandelbrot"))
	if err != nil {
		return job{}, err
	}
	plane, maxIter, err := s.readPlane(region, rd)
	if err != nil {
		return job{}, err
	}

	return fieldJob{Plane: plane, MaxIter: maxIter}.job(), nil
}

func (s *Service) planJulia(preset string, rd *reader) (job, error) {
	c, err := s.cat.JuliaConstant(orDefault(preset, "dendrite"))
	if err != nil {
		return job{}, err
	}
	c = complex(rd.floatParam("re", real(c)), rd.floatParam("im", imag(c)))
	region, err := s.cat.Region(rd.stringParam("region", "julia"))
	if rd.err != nil {
		return job{}, rd.err
	}
	if err != nil {
		return job{}, err
	}
	plane, maxIter, err := s.readPlane(region, rd)
	if err != nil {
		return job{}, err
	}

	return fieldJob{Julia: true, C: c, Plane: plane, MaxIter: maxIter}.job(), nil
}

func (fj fieldJob) job() job {
	return job{
		key: fmt.Sprintf("field|%+v", fj),
		run: func(ctx context.Context) (*result, error) {
			var (
				f   *escape.Field
				err error
			)
			if fj.Julia {
				f, err = escape.Julia(fj.C, fj.Plane, fj.MaxIter, escape.WithContext(ctx))
			} else {
				f, err = escape.Mandelbrot(fj.Plane, fj.MaxIter, escape.WithContext(ctx))
			}
			if err != nil {
				return nil, err
			}

			return &result{Field: &Field{Rows: f.Rows(), Cols: f.Cols(), MaxIter: f.MaxIter(), Counts: f.Counts()}}, nil
		},
	}
}

func (s *Service) planCurve(preset string, rd *reader) (job, error) {
	p, err := s.cat.Curve(orDefault(preset, "koch-snowflake"))
	if err != nil {
		return job{}, err
	}
	p.Level = rd.intParam("level", p.Level)
	if rd.err != nil {
		return job{}, rd.err
	}
	n, err := curve.Length(len(p.Seed), p.Level, p.Family)
	if err != nil {
		return job{}, err
	}
	if n > s.cfg.maxPoints {
		return job{}, fmt.Errorf("%d points, limit %d: %w", n, s.cfg.maxPoints, ErrTooLarge)
	}

	return job{
		key: fmt.Sprintf("curve|%s|%d", p.Name, p.Level),
		run: func(context.Context) (*result, error) {
			pts, err := p.Generate()
			if err != nil {
				return nil, err
			}

			return &result{Points: curve.Sequence(pts)}, nil
		},
	}, nil
}

func (s *Service) planLSystem(preset string, rd *reader) (job, error) {
	p, err := s.cat.LSystem(orDefault(preset, "koch"))
	if err != nil {
		return job{}, err
	}
	p.Iterations = rd.intParam("iterations", p.Iterations)
	if rd.err != nil {
		return job{}, rd.err
	}
	n, err := lsystem.ExpandedLen(p.Grammar.Axiom, p.Grammar.Rules, p.Iterations)
	if err != nil {
		return job{}, err
	}
	if n > symbolsPerPoint*s.cfg.maxPoints {
		return job{}, fmt.Errorf("%d symbols, limit %d: %w", n, symbolsPerPoint*s.cfg.maxPoints, ErrTooLarge)
	}
	limit := s.cfg.maxPoints

	return job{
		key: fmt.Sprintf("lsystem|%s|%d", p.Name, p.Iterations),
		run: func(context.Context) (*result, error) {
			seq, err := p.Render()
			if err != nil {
				return nil, err
			}
			if len(seq) > limit {
				return nil, fmt.Errorf("%d points, limit %d: %w", len(seq), limit, ErrTooLarge)
			}

			return &result{Points: seq}, nil
		},
	}, nil
}

// ifsJob is the canonical form of ifs requests.
type ifsJob struct {
	Preset                 string
	Points, BurnIn, Chains int
	Seed                   int64
}

func (s *Service) planIFS(preset string, rd *reader) (job, error) {
	ij := ifsJob{
		Preset: orDefault(preset, "fern"),
		Points: rd.intParam("points", defaultIFSPoints),
		BurnIn: rd.intParam("burn_in", ifs.DefaultBurnIn),
		Chains: rd.intParam("chains", 1),
		Seed:   rd.int64Param("seed", 0),
	}
	if rd.err != nil {
		return job{}, rd.err
	}
	sys, err := s.cat.System(ij.Preset)
	if err != nil {
		return job{}, err
	}
	if ij.Chains < 1 || ij.Points < 0 || ij.Points%ij.Chains != 0 {
		return job{}, fmt.Errorf("points=%d chains=%d: %w", ij.Points, ij.Chains, ErrBadRequest)
	}
	if ij.Points > s.cfg.maxPoints {
		return job{}, fmt.Errorf("%d points, limit %d: %w", ij.Points, s.cfg.maxPoints, ErrTooLarge)
	}
	if ij.BurnIn < 0 {
		return job{}, fmt.Errorf("burn_in=%d: %w", ij.BurnIn, ErrBadRequest)
	}
	// every chain discards its own burn-in
	if ij.Chains > s.cfg.maxPoints || ij.BurnIn > s.cfg.maxPoints/ij.Chains {
		return job{}, fmt.Errorf("%d chains x %d burn-in steps, limit %d: %w", ij.Chains, ij.BurnIn, s.cfg.maxPoints, ErrTooLarge)
	}

	return job{
		key: fmt.Sprintf("ifs|%+v", ij),
		run: func(ctx context.Context) (*result, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			pts, err := ifs.SampleChains(sys, ij.Chains, ij.Points/ij.Chains, ij.BurnIn, ij.Seed)
			if err != nil {
				return nil, err
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			return &result{Points: pts}, nil
		},
	}, nil
}

// dimJob is the canonical form of dimension requests.
type dimJob struct {
	Source, Preset string
	Level, Size    int
	Opts           boxdim.Options
}

func (s *Service) planDimension(preset string, rd *reader) (job, error) {
	dj := dimJob{
		Source: rd.stringParam("source", "carpet"),
		Preset: preset,
		Size:   rd.intParam("size", defaultSide),
		Opts: boxdim.Options{
			MinSize:  rd.intParam("min_size", boxdim.DefaultMinSize),
			MaxSize:  rd.intParam("max_size", 0),
			NumSizes: rd.intParam("num_sizes", boxdim.DefaultNumSizes),
		},
	}
	if dj.Source == "gasket" {
		dj.Level = rd.intParam("level", gasketLevel)
	} else {
		dj.Level = rd.intParam("level", carpetLevel)
	}
	if rd.err != nil {
		return job{}, rd.err
	}

	var source func(context.Context) (*occupancy.Grid, error)
	switch dj.Source {
	case "carpet", "gasket":
		base, build := 3, occupancy.Carpet
		if dj.Source == "gasket" {
			base, build = 2, occupancy.Gasket
		}
		if err := s.checkFixture(dj.Level, base); err != nil {
			return job{}, err
		}
		dj.Preset, dj.Size = "", 0
		level := dj.Level
		source = func(context.Context) (*occupancy.Grid, error) { return build(level) }
	case "curve", "lsystem", "ifs":
		if dj.Size > 0 && dj.Size > s.cfg.maxCells/dj.Size {
			return job{}, fmt.Errorf("%dx%d raster, limit %d: %w", dj.Size, dj.Size, s.cfg.maxCells, ErrTooLarge)
		}
		dj.Level = 0
		inner, err := s.plan(Request{Kind: Kind(dj.Source), Preset: preset})
		if err != nil {
			return job{}, err
		}
		cloud := dj.Source == "ifs"
		source = func(ctx context.Context) (*occupancy.Grid, error) {
			res, err := inner.run(ctx)
			if err != nil {
				return nil, err
			}
			return rasterize(res.Points, dj.Size, cloud)
		}
	default:
		return job{}, fmt.Errorf("source %q: %w", dj.Source, ErrBadRequest)
	}

	return job{
		key: fmt.Sprintf("dimension|%+v", dj),
		run: func(ctx context.Context) (*result, error) {
			g, err := source(ctx)
			if err != nil {
				return nil, err
			}
			res, err := boxdim.EstimateDimension(g, dj.Opts)
			if err != nil {
				return nil, err
			}

			return &result{Dimension: &res}, nil
		},
	}, nil
}

// checkFixture refuses fixtures whose base^level square exceeds maxCells.
// Negative levels are left to occupancy.
func (s *Service) checkFixture(level, base int) error {
	side := 1
	for i := 0; i < level; i++ {
		side *= base
		if side > s.cfg.maxCells/side {
			return fmt.Errorf("level %d fixture, limit %d cells: %w", level, s.cfg.maxCells, ErrTooLarge)
		}
	}

	return nil
}

func rasterize(seq geom.Sequence, side int, cloud bool) (*occupancy.Grid, error) {
	if cloud {
		return occupancy.RasterizePoints(seq, side, side)
	}

	return occupancy.RasterizePolyline(seq, side, side)
}
