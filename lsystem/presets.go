package lsystem

import (
	"fmt"

	"github.com/katalvlaran/fractalis/geom"
)

// Preset bundles a grammar, its iteration count and the turtle that draws it.
type Preset struct {
	Name       string
	Grammar    Grammar
	Iterations int
	Turtle     TurtleOptions
}

// Symbols expands the preset's grammar.
func (p Preset) Symbols() (string, error) {
	s, err := p.Grammar.Expand(p.Iterations)
	if err != nil {
		return "", fmt.Errorf("Preset(%q): %w", p.Name, err)
	}

	return s, nil
}

// Render expands the grammar and draws it.
func (p Preset) Render() (geom.Sequence, error) {
	s, err := p.Symbols()
	if err != nil {
		return nil, err
	}
	seq, err := Draw(s, p.Turtle)
	if err != nil {
		return nil, fmt.Errorf("Preset(%q): %w", p.Name, err)
	}

	return seq, nil
}

// KochCurve is F → F+F--F+F with 60° turns, drawn left to right.
func KochCurve() Preset {
	t := DefaultTurtleOptions()
	t.AngleStep = 60
	t.Heading = 0
	t.StepLength = 10

	return Preset{
		Name:       "koch",
		Grammar:    Grammar{Axiom: "F", Rules: map[rune]string{'F': "F+F--F+F"}},
		Iterations: 3,
		Turtle:     t,
	}
}

// BinaryTree is 1 → 11, 0 → 1[0]0 drawn in tree mode at 45°: every '['
// opens a left branch and the matching ']' turns right for the sibling.
func BinaryTree() Preset {
	t := DefaultTurtleOptions()
	t.AngleStep = 45
	t.StepLength = 10
	t.DrawSymbols = "01"
	t.TreeMode = true

	return Preset{
		Name:       "binary-tree",
		Grammar:    Grammar{Axiom: "0", Rules: map[rune]string{'1': "11", '0': "1[0]0"}},
		Iterations: 5,
		Turtle:     t,
	}
}

// FractalPlant is the bracketed plant X → F+[[X]-X]-F[-FX]+X, F → FF at 25°.
// X only steers the growth and is never drawn.
func FractalPlant() Preset {
	t := DefaultTurtleOptions()
	t.AngleStep = 25
	t.StepLength = 5

	return Preset{
		Name: "plant",
		Grammar: Grammar{Axiom: "X", Rules: map[rune]string{
			'X': "F+[[X]-X]-F[-FX]+X",
			'F': "FF",
		}},
		Iterations: 5,
		Turtle:     t,
	}
}

// Presets returns every built-in preset keyed by name.
func Presets() map[string]Preset {
	out := make(map[string]Preset, 3)
	for _, p := range []Preset{KochCurve(), BinaryTree(), FractalPlant()} {
		out[p.Name] = p
	}

	return out
}
