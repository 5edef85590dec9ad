package geom

// Point is a single mesh node in meters. Axis conventions are fixed:
// x chordwise/downstream, y spanwise, z vertical.
type Point[T Scalar] struct {
	X, Y, Z T
}

func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

func (p Point[T]) Scale(s T) Point[T] {
	return Point[T]{p.X * s, p.Y * s, p.Z * s}
}

// Norm returns the Euclidean length of p as a vector.
func (p Point[T]) Norm() T {
	return Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}
