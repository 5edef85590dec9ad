package transform_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/aeromesh/internal/mesh"
	"github.com/san-kum/aeromesh/internal/transform"
)

var _ = Describe("pipeline composition", func() {
	newWing := func() *mesh.Mesh[float64] {
		return mesh.Rect[float64](3, 5, 10, 2, 0, 0)
	}

	It("is order dependent, because the quarter chord is recomputed per call", func() {
		a := newWing()
		transform.Stretch(a, 25, false)
		transform.Sweep(a, 30, false)

		b := newWing()
		transform.Sweep(b, 30, false)
		transform.Stretch(b, 25, false)

		// Sweeping after the stretch sees the larger span and shifts
		// the tips further back.
		Expect(a.At(0, 0).X).To(BeNumerically(">", b.At(0, 0).X+1))
	})

	It("keeps every coordinate finite through the full operator stack", func() {
		m := newWing()

		transform.Taper(m, 0.4, false)
		Expect(transform.ScaleX(m, []float64{0.8, 1, 1.2, 1, 0.8})).To(Succeed())
		transform.Sweep(m, 25, false)
		Expect(transform.ShearX(m, []float64{0.1, 0, 0, 0, 0.1})).To(Succeed())
		transform.Stretch(m, 14, false)
		transform.Dihedral(m, 4, false)
		Expect(transform.ShearZ(m, []float64{0.2, 0.1, 0, 0.1, 0.2})).To(Succeed())
		Expect(transform.Rotate(m, []float64{-2, -1, 0, -1, -2}, false, true)).To(Succeed())

		for i := 0; i < m.Nx(); i++ {
			for j := 0; j < m.Ny(); j++ {
				p := m.At(i, j)
				for _, v := range []float64{p.X, p.Y, p.Z} {
					Expect(math.IsNaN(v)).To(BeFalse(), "node (%d,%d)", i, j)
					Expect(math.IsInf(v, 0)).To(BeFalse(), "node (%d,%d)", i, j)
				}
			}
		}
	})

	It("rejects per-station parameters of the wrong length at the call boundary", func() {
		m := newWing()
		short := []float64{1, 2}

		Expect(transform.Rotate(m, short, false, false)).To(MatchError(transform.ErrStationCount))
		Expect(transform.ScaleX(m, short)).To(MatchError(transform.ErrStationCount))
		Expect(transform.ShearX(m, short)).To(MatchError(transform.ErrStationCount))
		Expect(transform.ShearZ(m, short)).To(MatchError(transform.ErrStationCount))
	})

	It("propagates a complex-step perturbation through a chained deformation", func() {
		const h = 1e-30
		m := mesh.Rect[complex128](2, 5, 10, 2, 0, 0)

		transform.Taper(m, complex(0.6, h), false)
		transform.Sweep(m, 20, false)

		// The tip chord depends linearly on the taper ratio; sweep must
		// not disturb the derivative riding in the imaginary parts.
		chord := m.At(1, 0).X - m.At(0, 0).X
		Expect(imag(chord) / h).To(BeNumerically("~", 2.0, 1e-9))
	})
})
