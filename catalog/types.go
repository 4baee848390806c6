package catalog

// Catalog is the decoded YAML document.
type Catalog struct {
	Curves   map[string]CurveSpec   `yaml:"curves,omitempty"`
	LSystems map[string]LSystemSpec `yaml:"lsystems,omitempty"`
	IFS      map[string]IFSSpec     `yaml:"ifs,omitempty"`
	Regions  map[string]RegionSpec  `yaml:"regions,omitempty"`
	Julia    map[string]ComplexSpec `yaml:"julia,omitempty"`
}

// CurveSpec describes a substitution curve.
type CurveSpec struct {
	Family string       `yaml:"family"`
	Seed   [][2]float64 `yaml:"seed"`
	Level  int          `yaml:"level"`
}

// LSystemSpec describes a grammar and the turtle that draws it.
// Rules keep whatever scalar types YAML resolved; they are coerced on use.
type LSystemSpec struct {
	Axiom      string      `yaml:"axiom"`
	Rules      map[any]any `yaml:"rules"`
	Iterations int         `yaml:"iterations"`
	Turtle     TurtleSpec  `yaml:"turtle"`
}

// TurtleSpec mirrors lsystem.TurtleOptions. Zero Step, empty Draw and empty
// Move fall back to the lsystem defaults; Heading has no fallback.
type TurtleSpec struct {
	Angle   float64    `yaml:"angle"`
	Step    float64    `yaml:"step,omitempty"`
	Heading float64    `yaml:"heading"`
	Start   [2]float64 `yaml:"start,omitempty"`
	Draw    string     `yaml:"draw,omitempty"`
	Move    string     `yaml:"move,omitempty"`
	Tree    bool       `yaml:"tree,omitempty"`
	Branch  float64    `yaml:"branch,omitempty"`
}

// IFSSpec lists affine maps as [a, b, c, d, e, f, p] rows.
type IFSSpec struct {
	Maps [][7]float64 `yaml:"maps"`
}

// RegionSpec is a rectangle of the complex plane.
type RegionSpec struct {
	XMin float64 `yaml:"xmin"`
	XMax float64 `yaml:"xmax"`
	YMin float64 `yaml:"ymin"`
	YMax float64 `yaml:"ymax"`
}

// ComplexSpec is a complex constant.
type ComplexSpec struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}
