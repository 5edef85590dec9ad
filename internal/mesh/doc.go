// Package mesh builds and holds the structured nodal grid describing a
// lifting surface.
//
// A [Mesh] is an (nx, ny) grid of 3D points in meters: chordwise index
// 0 is the leading edge row, nx-1 the trailing edge row. Spanwise
// ordering is a caller convention; the transform operators document
// which end they treat as the root.
//
// The factory functions are:
//
//   - [Rect]: flat rectangular planform from counts, span and chord
//   - [FromReference]: realistic planform interpolated from a named
//     reference airfoil table (see package airfoil)
//   - [RefineChordwise]: re-discretizes a two-row mesh to nx rows
//
// All spanwise and chordwise discretizations share one spacing-blend
// machinery: a parameter in [0,1] interpolates between uniform node
// spacing (0) and cosine spacing clustered at the tips/edges (1).
//
// Generators produce full wings with an odd spanwise count; the half
// distribution is mirrored about the centerline, which keeps the mesh
// exactly symmetric about y=0 for every blend value.
package mesh
