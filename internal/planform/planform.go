// Package planform computes derived planform quantities from a wing
// mesh: span, chord distribution, projected area, aspect ratio and
// mean aerodynamic chord. Downstream aerodynamic and structural
// solvers read these alongside the mesh itself.
//
// All functions are generic over the scalar field, so derivative
// passes flow through unchanged.
package planform

import (
	"github.com/san-kum/aeromesh/internal/geom"
	"github.com/san-kum/aeromesh/internal/mesh"
)

// Span returns the full wingspan measured along the quarter-chord
// line. A symmetric mesh holds one half, so its extent is doubled.
func Span[T geom.Scalar](m *mesh.Mesh[T], symmetric bool) T {
	qc := m.QuarterChord()
	s := qc[m.Ny()-1].Y - qc[0].Y
	if symmetric {
		s = s * geom.FromReal[T](2)
	}
	return s
}

// Chords returns the straight-line leading-to-trailing-edge distance
// at every spanwise station.
func Chords[T geom.Scalar](m *mesh.Mesh[T]) []T {
	le := m.LeadingEdge()
	te := m.TrailingEdge()
	c := make([]T, m.Ny())
	for j := range c {
		c[j] = te[j].Sub(le[j]).Norm()
	}
	return c
}

// Area returns the planform area by trapezoidal integration of the
// chord distribution over the quarter-chord spanwise coordinate. A
// symmetric mesh's half-wing area is doubled.
func Area[T geom.Scalar](m *mesh.Mesh[T], symmetric bool) T {
	qc := m.QuarterChord()
	c := Chords(m)

	half := geom.FromReal[T](0.5)
	var area T
	for j := 0; j < m.Ny()-1; j++ {
		area += half * (c[j] + c[j+1]) * (qc[j+1].Y - qc[j].Y)
	}
	if symmetric {
		area = area * geom.FromReal[T](2)
	}
	return area
}

// AspectRatio returns span squared over area.
func AspectRatio[T geom.Scalar](m *mesh.Mesh[T], symmetric bool) T {
	s := Span(m, symmetric)
	return s * s / Area(m, symmetric)
}

// MeanAeroChord returns the mean aerodynamic chord,
// integral(c^2 dy) / integral(c dy), both integrals trapezoidal over
// the quarter-chord spanwise coordinate.
func MeanAeroChord[T geom.Scalar](m *mesh.Mesh[T]) T {
	qc := m.QuarterChord()
	c := Chords(m)

	half := geom.FromReal[T](0.5)
	var num, den T
	for j := 0; j < m.Ny()-1; j++ {
		dy := qc[j+1].Y - qc[j].Y
		num += half * (c[j]*c[j] + c[j+1]*c[j+1]) * dy
		den += half * (c[j] + c[j+1]) * dy
	}
	return num / den
}
