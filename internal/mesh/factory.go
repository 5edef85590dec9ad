package mesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/san-kum/aeromesh/internal/airfoil"
	"github.com/san-kum/aeromesh/internal/geom"
)

// inchToMeter converts the reference datasets' native length unit.
const inchToMeter = 0.0254

// Rect generates a flat, untwisted, unswept rectangular planform with
// the leading edge at x=0 and z=0 everywhere. The spanwise coordinates
// are a mirrored half-span distribution scaled to span, so the mesh is
// exactly symmetric about y=0 for any spanBlend. Grid extents follow
// the distributions: ny must be odd unless it is 1, and a nonzero
// chordBlend mirrors the chordwise spacing too, so an even nx yields a
// mesh with nx-1 rows.
func Rect[T geom.Scalar](nx, ny int, span, chord, spanBlend, chordBlend float64) *Mesh[T] {
	spanDist := fullDistribution(ny, spanBlend)
	floats.Scale(span, spanDist)

	chordDist := chordwiseDistribution(nx, chordBlend)
	floats.Scale(chord, chordDist)

	m := New[T](len(chordDist), len(spanDist))
	for i, xc := range chordDist {
		row := m.Row(i)
		x := geom.FromReal[T](xc)
		for j := range row {
			row[j] = geom.Point[T]{X: x, Y: geom.FromReal[T](spanDist[j])}
		}
	}
	return m
}

// FromReference generates a full-wing mesh from the named reference
// airfoil table. The table's leading and trailing edges are converted
// from inches to meters, interpolated onto the blended span
// distribution against the table's eta values (clamped, never
// extrapolated), and mirrored across the centerline. When nx > 2 the
// two-row result is refined chordwise.
//
// The returned eta and twist slices are the dataset's spanwise
// stations and twist angles, with twist reversed into root-to-tip
// order; callers use them to seed twist interpolation.
func FromReference[T geom.Scalar](name string, nx, ny int, spanBlend, chordBlend float64) (*Mesh[T], []float64, []float64, error) {
	table, err := airfoil.Lookup(name)
	if err != nil {
		return nil, nil, nil, err
	}

	n := len(table.Stations)
	eta := make([]float64, n)
	edges := [2][3][]float64{} // [le|te][x|y|z] in meters
	for e := 0; e < 2; e++ {
		for c := 0; c < 3; c++ {
			edges[e][c] = make([]float64, n)
		}
	}
	for k, st := range table.Stations {
		eta[k] = st.Eta
		le := [3]float64{st.LE[0], st.LE[1], st.LE[2]}
		te := [3]float64{st.LE[0] + st.Chord, st.LE[1], st.LE[2]}
		for c := 0; c < 3; c++ {
			edges[0][c][k] = le[c] * inchToMeter
			edges[1][c][k] = te[c] * inchToMeter
		}
	}

	// Span fractions to sample, ascending root to tip.
	ny2 := (ny + 1) / 2
	lins := referenceDistribution(ny2, spanBlend)

	half := New[T](2, ny2)
	for e := 0; e < 2; e++ {
		row := half.Row(e)
		for c := 0; c < 3; c++ {
			var pl interp.PiecewiseLinear
			if err := pl.Fit(eta, edges[e][c]); err != nil {
				return nil, nil, nil, fmt.Errorf("reference shape %s: %w", name, err)
			}
			for j := 0; j < ny2; j++ {
				v := interpClamped(&pl, lins[j], eta)
				switch c {
				case 0:
					row[j].X = geom.FromReal[T](v)
				case 1:
					row[j].Y = geom.FromReal[T](v)
				case 2:
					row[j].Z = geom.FromReal[T](v)
				}
			}
		}
	}

	// Mirror the interpolated half into a full wing, dropping the
	// duplicated centerline column.
	full := New[T](2, 2*ny2-1)
	for e := 0; e < 2; e++ {
		src := half.Row(e)
		dst := full.Row(e)
		for j := 0; j < ny2; j++ {
			p := src[ny2-1-j]
			p.Y = -p.Y
			dst[j] = p
		}
		for j := 1; j < ny2; j++ {
			dst[ny2-1+j] = src[j]
		}
	}

	if nx > 2 {
		full = RefineChordwise(full, nx, chordBlend)
	}

	// The dataset stores twist tip to root; hand it back root to tip.
	twist := make([]float64, n)
	for k := range twist {
		twist[k] = table.Stations[n-1-k].Twist
	}
	return full, eta, twist, nil
}

// referenceDistribution blends full cosine spacing cos(beta) with
// uniform spacing over [0, 1] and returns it ascending root to tip.
func referenceDistribution(n int, blend float64) []float64 {
	if n == 1 {
		return []float64{blend}
	}
	beta := make([]float64, n)
	floats.Span(beta, 0, math.Pi/2)

	uniform := linspace(0, 1, n)
	floats.Reverse(uniform)

	lins := make([]float64, n)
	for i := range lins {
		lins[i] = blend*math.Cos(beta[i]) + (1-blend)*uniform[i]
	}
	floats.Reverse(lins)
	return lins
}

// interpClamped evaluates the fit at x clamped to the table's eta
// range, matching the no-extrapolation contract of the dataset.
func interpClamped(pl *interp.PiecewiseLinear, x float64, eta []float64) float64 {
	if x < eta[0] {
		x = eta[0]
	}
	if x > eta[len(eta)-1] {
		x = eta[len(eta)-1]
	}
	return pl.Predict(x)
}

// RefineChordwise re-discretizes a leading/trailing-edge-only mesh to
// nx chordwise rows by blending (1-w)*leading + w*trailing, with w on
// the chordwise spacing distribution. The leading and trailing rows
// are copied exactly, never recomputed by the blend. Returns a new
// mesh; the input is left untouched.
func RefineChordwise[T geom.Scalar](m *Mesh[T], nx int, chordBlend float64) *Mesh[T] {
	w := chordwiseDistribution(nx, chordBlend)

	le := m.LeadingEdge()
	te := m.TrailingEdge()

	out := New[T](nx, m.Ny())
	copy(out.Row(0), le)
	copy(out.Row(nx-1), te)

	one := geom.FromReal[T](1)
	for i := 1; i < nx-1; i++ {
		wi := geom.FromReal[T](w[i])
		row := out.Row(i)
		for j := range row {
			row[j] = le[j].Scale(one - wi).Add(te[j].Scale(wi))
		}
	}
	return out
}
