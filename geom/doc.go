// Package geom holds the data model shared by every generator in fractalis:
// planar points and ordered point sequences.
//
// What:
//
//   - Point is an immutable (X, Y) value, convertible to and from complex128
//     so that generators working on the complex plane (curve, escape) and
//     generators working in Cartesian terms (lsystem, ifs) speak one language.
//   - Sequence is an ordered polyline. Insertion order is drawing order and
//     defines connectivity between consecutive points.
//
// Ownership:
//
//   - Every generator returns a freshly allocated Sequence; the caller owns it.
//   - Helpers in this package never mutate their receivers.
package geom
