package fieldsvc

import (
	"github.com/katalvlaran/fractalis/boxdim"
	"github.com/katalvlaran/fractalis/geom"
)

// Kind names a computation.
type Kind string

// Supported kinds.
const (
	KindMandelbrot Kind = "mandelbrot"
	KindJulia      Kind = "julia"
	KindCurve      Kind = "curve"
	KindLSystem    Kind = "lsystem"
	KindIFS        Kind = "ifs"
	KindDimension  Kind = "dimension"
)

// Request is one inbound message.
type Request struct {
	ID     string         `json:"id"`
	Kind   Kind           `json:"kind"`
	Preset string         `json:"preset,omitempty"`
	Params map[string]any `json:"params,omitempty"`
}

// Response answers one Request. Exactly one of Error, Field, Points or
// Dimension is set.
type Response struct {
	ID        string         `json:"id"`
	Kind      Kind           `json:"kind"`
	Cached    bool           `json:"cached"`
	Error     string         `json:"error,omitempty"`
	Field     *Field         `json:"field,omitempty"`
	Points    geom.Sequence  `json:"points,omitempty"`
	Dimension *boxdim.Result `json:"dimension,omitempty"`
}

// Field is the wire form of an escape-time field (row-major counts).
type Field struct {
	Rows    int   `json:"rows"`
	Cols    int   `json:"cols"`
	MaxIter int   `json:"max_iter"`
	Counts  []int `json:"counts"`
}

// result is what the caches store; the shared Store holds it as JSON.
type result struct {
	Field     *Field         `json:"field,omitempty"`
	Points    geom.Sequence  `json:"points,omitempty"`
	Dimension *boxdim.Result `json:"dimension,omitempty"`
}
