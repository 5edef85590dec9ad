package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/aeromesh/internal/mesh"
)

func TestRotateZeroTwistIsIdentity(t *testing.T) {
	for _, symmetric := range []bool{false, true} {
		m := mesh.Rect[float64](3, 5, 10, 2, 0, 0)
		want := m.Clone()

		if err := Rotate(m, make([]float64, 5), symmetric, false); err != nil {
			t.Fatalf("symmetric=%v: %v", symmetric, err)
		}

		for i := 0; i < m.Nx(); i++ {
			for j := 0; j < m.Ny(); j++ {
				if *m.At(i, j) != *want.At(i, j) {
					t.Errorf("symmetric=%v: node (%d,%d) moved: %+v", symmetric, i, j, *m.At(i, j))
				}
			}
		}
	}
}

func TestRotateNinetyDegrees(t *testing.T) {
	m := mesh.Rect[float64](2, 3, 10, 2, 0, 0)

	twist := []float64{90, 90, 90}
	if err := Rotate(m, twist, false, false); err != nil {
		t.Fatal(err)
	}

	// Chord folds into z about the quarter chord at x=0.5: the leading
	// edge ends up at (0.5, y, 0.5), the trailing edge at (0.5, y, -1.5).
	for j := 0; j < 3; j++ {
		le := m.At(0, j)
		te := m.At(1, j)
		if math.Abs(le.X-0.5) > 1e-12 || math.Abs(le.Z-0.5) > 1e-12 {
			t.Errorf("leading edge at station %d: (%g, %g), want (0.5, 0.5)", j, le.X, le.Z)
		}
		if math.Abs(te.X-0.5) > 1e-12 || math.Abs(te.Z+1.5) > 1e-12 {
			t.Errorf("trailing edge at station %d: (%g, %g), want (0.5, -1.5)", j, te.X, te.Z)
		}
	}
}

func TestRotatePreservesQuarterChord(t *testing.T) {
	m := mesh.Rect[float64](3, 5, 10, 2, 0, 0)
	before := m.QuarterChord()

	if err := Rotate(m, []float64{1, 3, 5, 3, 1}, false, false); err != nil {
		t.Fatal(err)
	}

	after := m.QuarterChord()
	for j := range after {
		d := after[j].Sub(before[j])
		if math.Abs(d.X) > 1e-12 || math.Abs(d.Y) > 1e-12 || math.Abs(d.Z) > 1e-12 {
			t.Errorf("quarter chord moved at station %d by %+v", j, d)
		}
	}
}

func TestRotateAboutLocalAxisRootFixed(t *testing.T) {
	// Half wing with dihedral: the local slope is nonzero everywhere
	// except at the root, which must never be rotated.
	m := halfWing(t)
	Dihedral(m, 10, true)
	rootRowBefore := []float64{m.At(0, 2).Z, m.At(1, 2).Z}

	if err := Rotate(m, make([]float64, 3), true, true); err != nil {
		t.Fatal(err)
	}

	if m.At(0, 2).Z != rootRowBefore[0] || m.At(1, 2).Z != rootRowBefore[1] {
		t.Error("root station moved under local-axis rotation")
	}
}

func TestRotateStationCountMismatch(t *testing.T) {
	m := mesh.Rect[float64](2, 5, 10, 2, 0, 0)
	err := Rotate(m, []float64{1, 2}, false, false)
	if !errors.Is(err, ErrStationCount) {
		t.Fatalf("expected ErrStationCount, got %v", err)
	}
}

func TestRotateComplexStepDerivative(t *testing.T) {
	// Thread a complex-step perturbation through the twist of the tip
	// station and compare against the analytic derivative of the
	// leading edge z coordinate: z = -sin(theta) * (x_le - x_qc).
	const h = 1e-30
	m := mesh.Rect[complex128](2, 3, 10, 2, 0, 0)

	theta := 12.0
	twist := []complex128{0, 0, complex(theta, h)}
	if err := Rotate(m, twist, false, false); err != nil {
		t.Fatal(err)
	}

	got := imag(m.At(0, 2).Z) / h
	rad := theta * math.Pi / 180
	want := -math.Cos(rad) * math.Pi / 180 * (0 - 0.5)
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("d z_le / d theta = %g, want %g", got, want)
	}
}

// halfWing builds a 2x3 half-wing mesh spanning y in [-5, 0] with the
// root at the last station.
func halfWing(t *testing.T) *mesh.Mesh[float64] {
	t.Helper()
	m := mesh.New[float64](2, 3)
	ys := []float64{-5, -2.5, 0}
	for j, y := range ys {
		m.At(0, j).Y = y
		m.At(1, j).Y = y
		m.At(1, j).X = 2
	}
	return m
}
