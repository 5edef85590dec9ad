package transform

import (
	"github.com/san-kum/aeromesh/internal/geom"
	"github.com/san-kum/aeromesh/internal/mesh"
)

// Sweep applies shearing sweep: every point's x coordinate shifts by
// tan(angle) times the station's spanwise distance from the root,
// measured on the leading edge. Positive angles sweep back. angleDeg
// is in degrees.
func Sweep[T geom.Scalar](m *mesh.Mesh[T], angleDeg T, symmetric bool) {
	tanTheta := geom.Tan(geom.Radians(angleDeg))
	d := spanOffsets(m.LeadingEdge(), symmetric)

	for i := 0; i < m.Nx(); i++ {
		row := m.Row(i)
		for j := range row {
			row[j].X += tanTheta * d[j]
		}
	}
}

// Dihedral applies dihedral angle: identical in structure to [Sweep]
// but perturbing z. Positive angles up. angleDeg is in degrees.
func Dihedral[T geom.Scalar](m *mesh.Mesh[T], angleDeg T, symmetric bool) {
	tanTheta := geom.Tan(geom.Radians(angleDeg))
	d := spanOffsets(m.LeadingEdge(), symmetric)

	for i := 0; i < m.Nx(); i++ {
		row := m.Row(i)
		for j := range row {
			row[j].Z += tanTheta * d[j]
		}
	}
}

// Stretch rescales the spanwise coordinates uniformly so the
// quarter-chord line spans exactly span. Callers always give the full
// span; a symmetric mesh represents one half, so the target is halved
// first. The relative station distribution is preserved.
func Stretch[T geom.Scalar](m *mesh.Mesh[T], span T, symmetric bool) {
	if symmetric {
		span = span * geom.FromReal[T](0.5)
	}

	qc := m.QuarterChord()
	prev := qc[m.Ny()-1].Y - qc[0].Y

	for i := 0; i < m.Nx(); i++ {
		row := m.Row(i)
		for j := range row {
			row[j].Y = qc[j].Y / prev * span
		}
	}
}
