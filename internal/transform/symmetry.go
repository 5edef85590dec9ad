package transform

import "github.com/san-kum/aeromesh/internal/geom"

// rootIndex returns the spanwise station treated as the wing root:
// the last index for symmetric half-wing meshes, the center index for
// full-wing meshes.
func rootIndex(ny int, symmetric bool) int {
	if symmetric {
		return ny - 1
	}
	return (ny - 1) / 2
}

// spanOffsets returns each station's spanwise distance from the root,
// measured on the given row's y coordinates. The sign convention is
// chosen per side by index, never by value, so complex perturbations
// pass through untouched. The root station's offset is exactly zero.
func spanOffsets[T geom.Scalar](row []geom.Point[T], symmetric bool) []T {
	root := rootIndex(len(row), symmetric)
	y0 := row[root].Y

	d := make([]T, len(row))
	for j := range row {
		if symmetric || j < root {
			d[j] = -(row[j].Y - y0)
		} else {
			d[j] = row[j].Y - y0
		}
	}
	return d
}
