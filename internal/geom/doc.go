// Package geom provides the scalar field and point primitives shared by
// the mesh factory and the transform pipeline.
//
// Every geometric kernel in this repository is generic over [Scalar],
// which admits exactly two types:
//
//   - float64: plain evaluation
//   - complex128: complex-step derivative passes, where a design
//     variable carries a small imaginary perturbation and its
//     derivative is read back from the imaginary part of the result
//
// For that to work, no kernel may branch on a coordinate value. The
// only sanctioned escape hatch is [Real], used to pick interpolation
// breakpoints and other control decisions that are not themselves
// differentiated.
//
// # Thread Safety
//
// Everything in this package is a pure function of its arguments.
package geom
