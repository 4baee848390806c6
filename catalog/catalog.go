package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fractalis/curve"
	"github.com/katalvlaran/fractalis/escape"
	"github.com/katalvlaran/fractalis/ifs"
	"github.com/katalvlaran/fractalis/lsystem"
)

//go:embed default.yaml
var defaultYAML []byte

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultYAML))
}

// Load decodes a catalog document and validates every entry.
// Unknown fields are rejected.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return &c, nil
}

// Encode writes the catalog as YAML.
func (c *Catalog) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return enc.Close()
}

// Validate resolves every entry once and reports the first failure in
// section then name order.
func (c *Catalog) Validate() error {
	for _, name := range sortedKeys(c.Curves) {
		if _, err := c.Curve(name); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(c.LSystems) {
		if _, err := c.LSystem(name); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(c.IFS) {
		if _, err := c.System(name); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(c.Regions) {
		if _, err := c.Region(name); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(c.Julia) {
		if _, err := c.JuliaConstant(name); err != nil {
			return err
		}
	}

	return nil
}

// CurvePreset is a resolved curves entry.
type CurvePreset struct {
	Name   string
	Family curve.Family
	Seed   []complex128
	Level  int
}

// Generate runs curve.Generate on the preset.
func (p CurvePreset) Generate() ([]complex128, error) {
	return curve.Generate(p.Seed, p.Level, p.Family)
}

// Curve resolves a curves entry.
func (c *Catalog) Curve(name string) (CurvePreset, error) {
	spec, ok := c.Curves[name]
	if !ok {
		return CurvePreset{}, unknown("curve", name)
	}
	fam, err := curve.ParseFamily(spec.Family)
	if err != nil {
		return CurvePreset{}, invalid("curve", name, err)
	}
	if len(spec.Seed) < 2 || spec.Level < 0 {
		return CurvePreset{}, invalid("curve", name, curve.ErrInvalidInput)
	}
	seed := make([]complex128, len(spec.Seed))
	for i, p := range spec.Seed {
		seed[i] = complex(p[0], p[1])
	}

	return CurvePreset{Name: name, Family: fam, Seed: seed, Level: spec.Level}, nil
}

// LSystem resolves an lsystems entry into a ready lsystem.Preset.
func (c *Catalog) LSystem(name string) (lsystem.Preset, error) {
	spec, ok := c.LSystems[name]
	if !ok {
		return lsystem.Preset{}, unknown("lsystem", name)
	}
	rules, err := ruleMap(spec.Rules)
	if err != nil {
		return lsystem.Preset{}, invalid("lsystem", name, err)
	}
	if spec.Iterations < 0 {
		return lsystem.Preset{}, invalid("lsystem", name, lsystem.ErrInvalidInput)
	}

	t := lsystem.DefaultTurtleOptions()
	t.AngleStep = spec.Turtle.Angle
	t.Heading = spec.Turtle.Heading
	t.Start.X, t.Start.Y = spec.Turtle.Start[0], spec.Turtle.Start[1]
	t.TreeMode = spec.Turtle.Tree
	t.BranchAngle = spec.Turtle.Branch
	if spec.Turtle.Step != 0 {
		t.StepLength = spec.Turtle.Step
	}
	if spec.Turtle.Draw != "" {
		t.DrawSymbols = spec.Turtle.Draw
	}
	if spec.Turtle.Move != "" {
		t.MoveSymbols = spec.Turtle.Move
	}
	// An empty draw of nothing validates the turtle options eagerly.
	if _, err := lsystem.Draw("", t); err != nil {
		return lsystem.Preset{}, invalid("lsystem", name, err)
	}

	return lsystem.Preset{
		Name:       name,
		Grammar:    lsystem.Grammar{Axiom: spec.Axiom, Rules: rules},
		Iterations: spec.Iterations,
		Turtle:     t,
	}, nil
}

// ruleMap coerces YAML scalars into single-rune keys and string replacements.
func ruleMap(raw map[any]any) (map[rune]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	m, err := cast.ToStringMapStringE(raw)
	if err != nil {
		return nil, fmt.Errorf("rules: %v: %w", err, lsystem.ErrInvalidInput)
	}
	rules := make(map[rune]string, len(m))
	for k, v := range m {
		if utf8.RuneCountInString(k) != 1 {
			return nil, fmt.Errorf("rule key %q is not a single symbol: %w", k, lsystem.ErrInvalidInput)
		}
		r, _ := utf8.DecodeRuneInString(k)
		rules[r] = v
	}

	return rules, nil
}

// System resolves an ifs entry through ifs.NewSystem.
func (c *Catalog) System(name string) (ifs.System, error) {
	spec, ok := c.IFS[name]
	if !ok {
		return ifs.System{}, unknown("ifs", name)
	}
	maps := make([]ifs.Map, len(spec.Maps))
	for i, row := range spec.Maps {
		maps[i] = ifs.Map{A: row[0], B: row[1], C: row[2], D: row[3], E: row[4], F: row[5], P: row[6]}
	}
	sys, err := ifs.NewSystem(maps...)
	if err != nil {
		return ifs.System{}, invalid("ifs", name, err)
	}

	return sys, nil
}

// Region resolves a regions entry.
func (c *Catalog) Region(name string) (escape.Region, error) {
	spec, ok := c.Regions[name]
	if !ok {
		return escape.Region{}, unknown("region", name)
	}
	r := escape.Region{XMin: spec.XMin, XMax: spec.XMax, YMin: spec.YMin, YMax: spec.YMax}
	if err := r.Plane(1, 1).Validate(); err != nil {
		return escape.Region{}, invalid("region", name, err)
	}

	return r, nil
}

// JuliaConstant resolves a julia entry.
func (c *Catalog) JuliaConstant(name string) (complex128, error) {
	spec, ok := c.Julia[name]
	if !ok {
		return 0, unknown("julia", name)
	}

	if math.IsNaN(spec.Re) || math.IsInf(spec.Re, 0) || math.IsNaN(spec.Im) || math.IsInf(spec.Im, 0) {
		return 0, invalid("julia", name, escape.ErrInvalidInput)
	}

	return complex(spec.Re, spec.Im), nil
}

// Names returns the sorted entry names of one section: "curves",
// "lsystems", "ifs", "regions" or "julia". Unknown sections yield nil.
func (c *Catalog) Names(section string) []string {
	switch section {
	case "curves":
		return sortedKeys(c.Curves)
	case "lsystems":
		return sortedKeys(c.LSystems)
	case "ifs":
		return sortedKeys(c.IFS)
	case "regions":
		return sortedKeys(c.Regions)
	case "julia":
		return sortedKeys(c.Julia)
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func unknown(kind, name string) error {
	return fmt.Errorf("%s %q: %w", kind, name, ErrUnknownPreset)
}

func invalid(kind, name string, err error) error {
	return fmt.Errorf("%s %q: %w: %w", kind, name, ErrInvalidPreset, err)
}
