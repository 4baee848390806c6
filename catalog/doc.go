// Package catalog loads named fractal presets from YAML.
//
// A catalog document has five optional sections:
//
//	curves:    name → {family, seed: [[x, y], ...], level}
//	lsystems:  name → {axiom, rules: {symbol: replacement}, iterations, turtle: {...}}
//	ifs:       name → {maps: [[a, b, c, d, e, f, p], ...]}
//	regions:   name → {xmin, xmax, ymin, ymax}
//	julia:     name → {re, im}
//
// Rule keys and values are coerced to strings, so unquoted YAML scalars such
// as `1: 11` work for digit alphabets. Typed getters (Curve, LSystem, System,
// Region, JuliaConstant) validate and return ready domain values from the curve,
// lsystem, ifs and escape packages.
//
// Default returns the embedded catalog, which mirrors the built-in presets of
// those packages.
//
// Errors:
//
//   - ErrUnknownPreset: the requested name is not in the section.
//   - ErrInvalidPreset: the entry does not describe a valid value; the
//     domain package's own sentinel is wrapped alongside.
package catalog
