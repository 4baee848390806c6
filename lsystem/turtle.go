package lsystem

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/fractalis/geom"
)

// Defaults used by DefaultTurtleOptions.
const (
	DefaultStepLength  = 1.0
	DefaultHeading     = 90.0
	DefaultAngleStep   = 90.0
	DefaultDrawSymbols = "F"
	DefaultMoveSymbols = "f"
)

// reserved symbols cannot be remapped to draw or move.
const reserved = "+-[]"

// TurtleOptions configures Draw. Angles are in degrees, counter-clockwise,
// with 0 pointing along +X.
type TurtleOptions struct {
	AngleStep   float64    // rotation applied by '+' and '-'
	StepLength  float64    // distance per draw/move symbol
	Start       geom.Point // initial position, always the first output point
	Heading     float64    // initial heading
	DrawSymbols string     // symbols that advance and record a point
	MoveSymbols string     // symbols that advance without recording
	TreeMode    bool       // '[' turns +BranchAngle, ']' turns −BranchAngle
	BranchAngle float64    // tree-mode turn; 0 means AngleStep
}

// DefaultTurtleOptions returns unit steps, heading 90° (up), 90° turns,
// "F" to draw and "f" to move, tree mode off.
func DefaultTurtleOptions() TurtleOptions {
	return TurtleOptions{
		AngleStep:   DefaultAngleStep,
		StepLength:  DefaultStepLength,
		Heading:     DefaultHeading,
		DrawSymbols: DefaultDrawSymbols,
		MoveSymbols: DefaultMoveSymbols,
	}
}

func (o TurtleOptions) validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"AngleStep", o.AngleStep},
		{"StepLength", o.StepLength},
		{"Heading", o.Heading},
		{"BranchAngle", o.BranchAngle},
		{"Start.X", o.Start.X},
		{"Start.Y", o.Start.Y},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s=%v is not finite: %w", f.name, f.v, ErrInvalidInput)
		}
	}
	if strings.ContainsAny(o.DrawSymbols, reserved) || strings.ContainsAny(o.MoveSymbols, reserved) {
		return fmt.Errorf("draw/move symbols must not contain %q: %w", reserved, ErrInvalidInput)
	}
	if strings.ContainsAny(o.DrawSymbols, o.MoveSymbols) {
		return fmt.Errorf("draw %q and move %q overlap: %w", o.DrawSymbols, o.MoveSymbols, ErrInvalidInput)
	}

	return nil
}

// symbolKind classifies one input symbol.
type symbolKind uint8

const (
	kindIgnore symbolKind = iota
	kindDraw
	kindMove
	kindLeft
	kindRight
	kindPush
	kindPop
)

// classifier maps runes to kinds; ASCII through a table, the rest via map.
type classifier struct {
	ascii [128]symbolKind
	other map[rune]symbolKind
}

func newClassifier(draw, move string) *classifier {
	c := &classifier{}
	c.ascii['+'] = kindLeft
	c.ascii['-'] = kindRight
	c.ascii['['] = kindPush
	c.ascii[']'] = kindPop
	add := func(set string, k symbolKind) {
		for _, r := range set {
			if r < 128 {
				c.ascii[r] = k
				continue
			}
			if c.other == nil {
				c.other = make(map[rune]symbolKind)
			}
			c.other[r] = k
		}
	}
	add(draw, kindDraw)
	add(move, kindMove)

	return c
}

func (c *classifier) kind(r rune) symbolKind {
	if r >= 0 && r < 128 {
		return c.ascii[r]
	}

	return c.other[r]
}

// Draw interprets symbols as turtle commands and returns the recorded path.
//
// The first point is opts.Start. Each draw symbol appends the new position;
// each ']' appends the restored position so that consumers drawing
// consecutive pairs see the jump back to the branch point.
//
// Errors:
//   - ErrInvalidInput for non-finite options or overlapping symbol sets.
//   - ErrEmptyStack (wrapped with the byte offset) on an unmatched ']'.
//
// Complexity: O(len(symbols)) time, O(points + max depth) memory.
func Draw(symbols string, opts TurtleOptions) (geom.Sequence, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("Draw: %w", err)
	}
	cls := newClassifier(opts.DrawSymbols, opts.MoveSymbols)

	// Pre-size the output with a counting pass.
	n := 1
	for _, r := range symbols {
		if k := cls.kind(r); k == kindDraw || k == kindPop {
			n++
		}
	}
	out := make(geom.Sequence, 1, n)
	out[0] = opts.Start

	branch := opts.BranchAngle
	if branch == 0 {
		branch = opts.AngleStep
	}

	var (
		pos     = opts.Start
		heading = opts.Heading
		stack   stateStack
	)
	advance := func() {
		sin, cos := math.Sincos(heading * math.Pi / 180)
		pos = geom.Point{X: pos.X + opts.StepLength*cos, Y: pos.Y + opts.StepLength*sin}
	}

	for i, r := range symbols {
		switch cls.kind(r) {
		case kindDraw:
			advance()
			out = append(out, pos)
		case kindMove:
			advance()
		case kindLeft:
			heading += opts.AngleStep
		case kindRight:
			heading -= opts.AngleStep
		case kindPush:
			stack.push(turtleState{pos: pos, heading: heading})
			if opts.TreeMode {
				heading += branch
			}
		case kindPop:
			st, ok := stack.pop()
			if !ok {
				return nil, fmt.Errorf("Draw: ']' at offset %d: %w", i, ErrEmptyStack)
			}
			pos, heading = st.pos, st.heading
			out = append(out, pos)
			if opts.TreeMode {
				heading -= branch
			}
		}
	}

	return out, nil
}
