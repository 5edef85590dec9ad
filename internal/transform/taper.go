package transform

import (
	"github.com/san-kum/aeromesh/internal/geom"
	"github.com/san-kum/aeromesh/internal/mesh"
)

// Taper alters the spanwise chord linearly to produce a tapered wing,
// scaling every coordinate component about the station's quarter-chord
// point. ratio 1 leaves the mesh numerically unchanged; 0 tapers to a
// point.
//
// The per-station scale envelope is a piecewise-linear interpolation
// against spanwise position along the quarter-chord line: a symmetric
// mesh uses a single segment from ratio at the tip to 1 at the root; a
// full wing uses a two-segment tent, 1 at the center and ratio at both
// tips. Segment selection and clamping inspect real parts only.
func Taper[T geom.Scalar](m *mesh.Mesh[T], ratio T, symmetric bool) {
	qc := m.QuarterChord()
	ny := m.Ny()
	span := qc[ny-1].Y - qc[0].Y

	one := geom.FromReal[T](1)
	env := make([]T, ny)
	if symmetric {
		for j := range env {
			env[j] = segment(qc[j].Y, -span, ratio, 0, one)
		}
	} else {
		half := span * geom.FromReal[T](0.5)
		for j := range env {
			if geom.Real(qc[j].Y) < 0 {
				env[j] = segment(qc[j].Y, -half, ratio, 0, one)
			} else {
				env[j] = segment(qc[j].Y, 0, one, half, ratio)
			}
		}
	}

	for i := 0; i < m.Nx(); i++ {
		row := m.Row(i)
		for j := range row {
			row[j] = row[j].Sub(qc[j]).Scale(env[j]).Add(qc[j])
		}
	}
}

// segment evaluates the line through (x0,f0)-(x1,f1) at x, clamped to
// the endpoint values. Clamping compares real parts only so derivative
// information in x, f0 and f1 is never truncated.
func segment[T geom.Scalar](x, x0, f0, x1, f1 T) T {
	if geom.Real(x) <= geom.Real(x0) {
		return f0
	}
	if geom.Real(x) >= geom.Real(x1) {
		return f1
	}
	return f0 + (f1-f0)*(x-x0)/(x1-x0)
}
