package mesh

import "github.com/san-kum/aeromesh/internal/geom"

// Mesh is a structured (nx, ny) grid of nodes. Nodes are stored
// row-major by chordwise station so a chordwise row is a contiguous
// slice. Transform operators mutate the grid in place; only
// [RefineChordwise] ever produces a grid with a different nx.
type Mesh[T geom.Scalar] struct {
	nx, ny int
	pts    []geom.Point[T]
}

// New allocates a zeroed nx-by-ny mesh.
func New[T geom.Scalar](nx, ny int) *Mesh[T] {
	return &Mesh[T]{nx: nx, ny: ny, pts: make([]geom.Point[T], nx*ny)}
}

func (m *Mesh[T]) Nx() int { return m.nx }
func (m *Mesh[T]) Ny() int { return m.ny }

// At returns the node at chordwise station i, spanwise station j.
func (m *Mesh[T]) At(i, j int) *geom.Point[T] {
	return &m.pts[i*m.ny+j]
}

// Row returns the chordwise row at station i as a shared slice.
func (m *Mesh[T]) Row(i int) []geom.Point[T] {
	return m.pts[i*m.ny : (i+1)*m.ny]
}

// LeadingEdge returns the row at chordwise index 0.
func (m *Mesh[T]) LeadingEdge() []geom.Point[T] { return m.Row(0) }

// TrailingEdge returns the row at chordwise index nx-1.
func (m *Mesh[T]) TrailingEdge() []geom.Point[T] { return m.Row(m.nx - 1) }

// QuarterChord returns the per-station aerodynamic reference point,
// 0.25*trailing + 0.75*leading. It is recomputed from the current grid
// on every call and never cached, so chaining operators in a different
// order gives different results. That is a deliberate property of the
// pipeline, not a defect.
func (m *Mesh[T]) QuarterChord() []geom.Point[T] {
	le := m.LeadingEdge()
	te := m.TrailingEdge()
	qc := make([]geom.Point[T], m.ny)
	quarter := geom.FromReal[T](0.25)
	threeQuarter := geom.FromReal[T](0.75)
	for j := range qc {
		qc[j] = te[j].Scale(quarter).Add(le[j].Scale(threeQuarter))
	}
	return qc
}

// LeftHalf returns a new mesh holding the left half of a full wing:
// spanwise columns 0 through the center index (ny-1)/2 inclusive. The
// centerline lands at the last spanwise index, which is where the
// symmetric transform operators expect the root.
func (m *Mesh[T]) LeftHalf() *Mesh[T] {
	ny2 := (m.ny + 1) / 2
	out := New[T](m.nx, ny2)
	for i := 0; i < m.nx; i++ {
		copy(out.Row(i), m.Row(i)[:ny2])
	}
	return out
}

// Clone returns an independent deep copy of the mesh.
func (m *Mesh[T]) Clone() *Mesh[T] {
	c := New[T](m.nx, m.ny)
	copy(c.pts, m.pts)
	return c
}
