package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/fractalis/boxdim"
	"github.com/katalvlaran/fractalis/catalog"
	"github.com/katalvlaran/fractalis/curve"
	"github.com/katalvlaran/fractalis/escape"
	"github.com/katalvlaran/fractalis/ifs"
	"github.com/katalvlaran/fractalis/occupancy"
	"github.com/katalvlaran/fractalis/render"
)

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)

	return fs
}

// canvas holds the output flags shared by every render command.
type canvas struct {
	out           string
	width, height int
}

func (c *canvas) register(fs *flag.FlagSet, def string) {
	fs.StringVar(&c.out, "o", def, "output PNG path")
	fs.IntVar(&c.width, "width", 800, "image width in pixels")
	fs.IntVar(&c.height, "height", 800, "image height in pixels")
}

func (c *canvas) save(img image.Image, out io.Writer) error {
	if err := render.SavePNG(c.out, img); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s (%dx%d)\n", c.out, img.Bounds().Dx(), img.Bounds().Dy())

	return nil
}

func runCurve(cat *catalog.Catalog, args []string, out io.Writer) error {
	fs := newFlagSet("curve", out)
	var cv canvas
	cv.register(fs, "curve.png")
	name := fs.String("preset", "koch-snowflake", "curve preset")
	level := fs.Int("level", -1, "substitution level (default: preset level)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := cat.Curve(*name)
	if err != nil {
		return err
	}
	if *level >= 0 {
		p.Level = *level
	}
	pts, err := p.Generate()
	if err != nil {
		return err
	}
	img, err := render.Polyline(curve.Sequence(pts), cv.width, cv.height)
	if err != nil {
		return err
	}

	return cv.save(img, out)
}

func runLSystem(cat *catalog.Catalog, args []string, out io.Writer) error {
	fs := newFlagSet("lsystem", out)
	var cv canvas
	cv.register(fs, "lsystem.png")
	name := fs.String("preset", "plant", "lsystem preset")
	iterations := fs.Int("n", -1, "rewrite iterations (default: preset iterations)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := cat.LSystem(*name)
	if err != nil {
		return err
	}
	if *iterations >= 0 {
		p.Iterations = *iterations
	}
	seq, err := p.Render()
	if err != nil {
		return err
	}
	img, err := render.Polyline(seq, cv.width, cv.height)
	if err != nil {
		return err
	}

	return cv.save(img, out)
}

func runIFS(cat *catalog.Catalog, args []string, out io.Writer) error {
	fs := newFlagSet("ifs", out)
	var cv canvas
	cv.register(fs, "ifs.png")
	name := fs.String("preset", "fern", "ifs preset")
	points := fs.Int("points", ifs.DefaultPoints, "points to plot")
	burnIn := fs.Int("burn-in", ifs.DefaultBurnIn, "discarded iterations per chain")
	chains := fs.Int("chains", 1, "independent chains (points must divide evenly)")
	seed := fs.Int64("seed", 0, "random seed (0 = default stream)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sys, err := cat.System(*name)
	if err != nil {
		return err
	}
	if *chains < 1 || *points%*chains != 0 {
		return fmt.Errorf("ifs: -points %d not divisible by -chains %d", *points, *chains)
	}
	seq, err := ifs.SampleChains(sys, *chains, *points / *chains, *burnIn, *seed)
	if err != nil {
		return err
	}
	img, err := render.Points(seq, cv.width, cv.height)
	if err != nil {
		return err
	}

	return cv.save(img, out)
}

// field holds the flags shared by mandelbrot and julia.
type field struct {
	canvas
	region  string
	maxIter int
	color   bool
}

func (f *field) register(fs *flag.FlagSet, def, region string) {
	f.canvas.register(fs, def)
	fs.StringVar(&f.region, "region", region, "catalog region")
	fs.IntVar(&f.maxIter, "max-iter", 200, "iteration limit")
	fs.BoolVar(&f.color, "color", false, "colour by escape count")
}

func (f *field) draw(cat *catalog.Catalog, compute func(escape.Plane) (*escape.Field, error), out io.Writer) error {
	region, err := cat.Region(f.region)
	if err != nil {
		return err
	}
	ef, err := compute(region.Plane(f.width, f.height))
	if err != nil {
		return err
	}
	if f.color {
		return f.save(render.FieldColor(ef), out)
	}

	return f.save(render.Field(ef), out)
}

func runMandelbrot(cat *catalog.Catalog, args []string, out io.Writer) error {
	fs := newFlagSet("mandelbrot", out)
	var f field
	f.register(fs, "mandelbrot.png", "mandelbrot")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return f.draw(cat, func(p escape.Plane) (*escape.Field, error) {
		return escape.Mandelbrot(p, f.maxIter)
	}, out)
}

func runJulia(cat *catalog.Catalog, args []string, out io.Writer) error {
	fs := newFlagSet("julia", out)
	var f field
	f.register(fs, "julia.png", "julia")
	name := fs.String("c", "dendrite", "catalog julia constant")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, err := cat.JuliaConstant(*name)
	if err != nil {
		return err
	}

	return f.draw(cat, func(p escape.Plane) (*escape.Field, error) {
		return escape.Julia(c, p, f.maxIter)
	}, out)
}

func runBoxDim(_ *catalog.Catalog, args []string, out io.Writer) error {
	fs := newFlagSet("boxdim", out)
	in := fs.String("in", "", "binarize this PNG instead of a fixture")
	fixture := fs.String("fixture", "carpet", "carpet or gasket")
	level := fs.Int("level", 5, "fixture level")
	threshold := fs.Uint("threshold", uint(occupancy.DefaultThreshold), "luminance cut for -in (0..255)")
	opts := boxdim.DefaultOptions()
	fs.IntVar(&opts.MinSize, "min", opts.MinSize, "smallest box side")
	fs.IntVar(&opts.MaxSize, "max", opts.MaxSize, "largest box side (0 = min(H,W)/2)")
	fs.IntVar(&opts.NumSizes, "sizes", opts.NumSizes, "number of geometric sizes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *threshold > 255 {
		return fmt.Errorf("boxdim: -threshold %d > 255", *threshold)
	}

	g, err := loadGrid(*in, *fixture, *level, uint8(*threshold))
	if err != nil {
		return err
	}
	res, err := boxdim.EstimateDimension(g, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%6s %10s\n", "size", "count")
	for _, e := range res.Table {
		fmt.Fprintf(out, "%6d %10d\n", e.Size, e.Count)
	}
	fmt.Fprintf(out, "dimension %.4f (r² %.4f)\n", res.Dimension, res.RSquared)
	fmt.Fprintf(out, "components %d (8-connected)\n", len(g.Components(occupancy.Conn8)))

	return nil
}

func loadGrid(path, fixture string, level int, threshold uint8) (*occupancy.Grid, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, err := png.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return occupancy.FromImage(img, threshold)
	}
	switch fixture {
	case "carpet":
		return occupancy.Carpet(level)
	case "gasket":
		return occupancy.Gasket(level)
	default:
		return nil, fmt.Errorf("boxdim: unknown fixture %q", fixture)
	}
}

func runPresets(cat *catalog.Catalog, args []string, out io.Writer) error {
	fs := newFlagSet("presets", out)
	if err := fs.Parse(args); err != nil {
		return err
	}
	for _, section := range []string{"curves", "lsystems", "ifs", "regions", "julia"} {
		fmt.Fprintf(out, "%-9s %s\n", section, strings.Join(cat.Names(section), " "))
	}

	return nil
}
