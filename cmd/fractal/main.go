// Command fractal renders catalog presets to PNG and estimates box-counting
// dimensions.
//
// Usage:
//
//	fractal [-catalog file.yaml] <command> [flags]
//
// Commands: curve, lsystem, ifs, mandelbrot, julia, boxdim, presets.
// Run "fractal <command> -h" for the flags of one command.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/fractalis/catalog"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fractal: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type command struct {
	name    string
	summary string
	run     func(cat *catalog.Catalog, args []string, out io.Writer) error
}

var commands = []command{
	{"curve", "render a Koch or Minkowski curve", runCurve},
	{"lsystem", "render an L-system with the turtle", runLSystem},
	{"ifs", "render an IFS point cloud (chaos game)", runIFS},
	{"mandelbrot", "render a Mandelbrot escape-time field", runMandelbrot},
	{"julia", "render a Julia escape-time field", runJulia},
	{"boxdim", "estimate the box-counting dimension", runBoxDim},
	{"presets", "list catalog presets", runPresets},
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("fractal", flag.ContinueOnError)
	fs.SetOutput(out)
	catPath := fs.String("catalog", "", "preset catalog YAML (default: built-in)")
	fs.Usage = func() {
		fmt.Fprintln(out, "usage: fractal [-catalog file.yaml] <command> [flags]")
		for _, c := range commands {
			fmt.Fprintf(out, "  %-11s %s\n", c.name, c.summary)
		}
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return flag.ErrHelp
	}

	cat, err := loadCatalog(*catPath)
	if err != nil {
		return err
	}
	name := fs.Arg(0)
	for _, c := range commands {
		if c.name == name {
			return c.run(cat, fs.Args()[1:], out)
		}
	}
	fs.Usage()

	return fmt.Errorf("unknown command %q", name)
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return catalog.Load(f)
}
