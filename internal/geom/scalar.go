package geom

import (
	"math"
	"math/cmplx"
)

// Scalar is the numeric field the mesh kernels operate over. float64
// for evaluation, complex128 for complex-step derivatives. The
// constraint is deliberately closed so the type switches below are
// exhaustive.
type Scalar interface {
	float64 | complex128
}

// FromReal lifts a real configuration value into the scalar field.
func FromReal[T Scalar](v float64) T {
	var zero T
	switch any(zero).(type) {
	case float64:
		return any(v).(T)
	default:
		return any(complex(v, 0)).(T)
	}
}

// Real returns the real part of x. This is the only sanctioned way to
// inspect a coordinate value; use it for control decisions only, never
// inside differentiated arithmetic.
func Real[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case float64:
		return v
	default:
		return real(v.(complex128))
	}
}

// Radians converts an angle in degrees to radians.
func Radians[T Scalar](deg T) T {
	return deg * FromReal[T](math.Pi/180)
}

func Sin[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float64:
		return any(math.Sin(v)).(T)
	default:
		return any(cmplx.Sin(v.(complex128))).(T)
	}
}

func Cos[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float64:
		return any(math.Cos(v)).(T)
	default:
		return any(cmplx.Cos(v.(complex128))).(T)
	}
}

func Tan[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float64:
		return any(math.Tan(v)).(T)
	default:
		return any(cmplx.Tan(v.(complex128))).(T)
	}
}

func Atan[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float64:
		return any(math.Atan(v)).(T)
	default:
		return any(cmplx.Atan(v.(complex128))).(T)
	}
}

func Sqrt[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float64:
		return any(math.Sqrt(v)).(T)
	default:
		return any(cmplx.Sqrt(v.(complex128))).(T)
	}
}
