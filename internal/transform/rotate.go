package transform

import (
	"fmt"

	"github.com/san-kum/aeromesh/internal/geom"
	"github.com/san-kum/aeromesh/internal/mesh"
)

// Rotate twists each chordwise row about its local quarter-chord
// point. twist holds one angle per spanwise station, in degrees.
//
// With aboutLocalAxis set, an extra roll angle is derived per station
// from the local slope of the quarter-chord line, atan(dz/dy) between
// adjacent stations, so the twist stays perpendicular to the wing
// (winglets). The root-adjacent slope is pinned to zero so the root is
// never rotated. Adjacent stations sharing the same y make that slope
// divide by zero; the result is non-finite, per the package's
// unchecked-precondition policy.
func Rotate[T geom.Scalar](m *mesh.Mesh[T], twist []T, symmetric, aboutLocalAxis bool) error {
	ny := m.Ny()
	if len(twist) != ny {
		return fmt.Errorf("rotate: %d twist stations for %d mesh stations: %w", len(twist), ny, ErrStationCount)
	}

	qc := m.QuarterChord()

	roll := make([]T, ny)
	if aboutLocalAxis {
		root := rootIndex(ny, symmetric)
		if symmetric {
			for j := 0; j < ny-1; j++ {
				roll[j] = geom.Atan((qc[j].Z - qc[j+1].Z) / (qc[j].Y - qc[j+1].Y))
			}
		} else {
			for j := 0; j < root; j++ {
				roll[j] = geom.Atan((qc[j].Z - qc[j+1].Z) / (qc[j].Y - qc[j+1].Y))
			}
			for j := root + 1; j < ny; j++ {
				roll[j] = geom.Atan((qc[j].Z - qc[j-1].Z) / (qc[j].Y - qc[j-1].Y))
			}
		}
	}

	// Per-station rotation matrix combining twist about y with the
	// local roll about x.
	mats := make([][3][3]T, ny)
	for j := 0; j < ny; j++ {
		sy := geom.Sin(geom.Radians(twist[j]))
		cy := geom.Cos(geom.Radians(twist[j]))
		sx := geom.Sin(roll[j])
		cx := geom.Cos(roll[j])
		mats[j] = [3][3]T{
			{cy, 0, sy},
			{sx * sy, cx, -sx * cy},
			{-cx * sy, sx, cx * cy},
		}
	}

	for i := 0; i < m.Nx(); i++ {
		row := m.Row(i)
		for j := range row {
			v := row[j].Sub(qc[j])
			r := &mats[j]
			row[j] = geom.Point[T]{
				X: r[0][0]*v.X + r[0][1]*v.Y + r[0][2]*v.Z,
				Y: r[1][0]*v.X + r[1][1]*v.Y + r[1][2]*v.Z,
				Z: r[2][0]*v.X + r[2][1]*v.Y + r[2][2]*v.Z,
			}.Add(qc[j])
		}
	}
	return nil
}
