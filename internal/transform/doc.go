// Package transform is the library of composable geometric operators
// that deform a wing mesh into a target planform: twist, chord
// scaling, chordwise/spanwise shear, sweep, dihedral, span stretch and
// taper.
//
// Every operator mutates the mesh in place and is a stateless pure
// function of (mesh, parameters); the "pipeline" is nothing more than
// caller-composed sequential application. Operators that pivot about
// the quarter-chord line recompute it from the current mesh state on
// every call, so the order of application changes the result: tapering
// before sweeping is not the same wing as sweeping before tapering.
// That is a documented property of the pipeline, not a bug.
//
// All operators are generic over [geom.Scalar], so a complex-step
// derivative pass flows through every arithmetic step unchanged.
//
// # Symmetry
//
// Spanwise-varying operators take a symmetric flag. A symmetric mesh
// is a half wing with the root at the last spanwise index; a full-wing
// mesh has the root at the center index (ny-1)/2, and left/right
// offsets are computed independently about it. The convention lives in
// one shared helper so it cannot drift between operators.
//
// # Failure semantics
//
// The only checked condition is station-count agreement between a mesh
// and its per-station parameter slice, reported as [ErrStationCount].
// Degenerate geometry (zero span, coincident quarter-chord stations)
// is an unchecked precondition: it propagates as non-finite
// coordinates rather than an error, a deliberate trade-off for a
// kernel invoked thousands of times inside an optimization loop.
package transform

import "errors"

// ErrStationCount reports a per-station parameter slice whose length
// does not match the mesh's spanwise station count.
var ErrStationCount = errors.New("transform: station count mismatch")
