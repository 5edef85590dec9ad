package transform

import (
	"fmt"

	"github.com/san-kum/aeromesh/internal/geom"
	"github.com/san-kum/aeromesh/internal/mesh"
)

// ScaleX scales each station's chordwise offset from its quarter-chord
// point by the per-station factor, changing the chord while keeping
// the quarter-chord location fixed.
func ScaleX[T geom.Scalar](m *mesh.Mesh[T], chord []T) error {
	if len(chord) != m.Ny() {
		return fmt.Errorf("scale_x: %d chord stations for %d mesh stations: %w", len(chord), m.Ny(), ErrStationCount)
	}

	qc := m.QuarterChord()
	for i := 0; i < m.Nx(); i++ {
		row := m.Row(i)
		for j := range row {
			row[j].X = (row[j].X-qc[j].X)*chord[j] + qc[j].X
		}
	}
	return nil
}

// ShearX translates every chordwise point at station j by dx[j] in x
// (distributed sweep).
func ShearX[T geom.Scalar](m *mesh.Mesh[T], dx []T) error {
	if len(dx) != m.Ny() {
		return fmt.Errorf("shear_x: %d offsets for %d mesh stations: %w", len(dx), m.Ny(), ErrStationCount)
	}

	for i := 0; i < m.Nx(); i++ {
		row := m.Row(i)
		for j := range row {
			row[j].X += dx[j]
		}
	}
	return nil
}

// ShearZ translates every chordwise point at station j by dz[j] in z
// (distributed dihedral).
func ShearZ[T geom.Scalar](m *mesh.Mesh[T], dz []T) error {
	if len(dz) != m.Ny() {
		return fmt.Errorf("shear_z: %d offsets for %d mesh stations: %w", len(dz), m.Ny(), ErrStationCount)
	}

	for i := 0; i < m.Nx(); i++ {
		row := m.Row(i)
		for j := range row {
			row[j].Z += dz[j]
		}
	}
	return nil
}
