package mesh

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// halfDistribution returns n samples of the blended half-wing spacing,
// descending from 0.5 at the root to 0 at the tip. blend weighs the
// cosine term 0.5*cos(beta), beta linear in [0, pi/2], against uniform
// spacing; blend 0 reduces exactly to linear spacing.
func halfDistribution(n int, blend float64) []float64 {
	if n == 1 {
		return []float64{blend * 0.5}
	}
	beta := make([]float64, n)
	floats.Span(beta, 0, math.Pi/2)

	uniform := make([]float64, n)
	floats.Span(uniform, 0, 0.5)
	floats.Reverse(uniform)

	half := make([]float64, n)
	for i := range half {
		half[i] = blend*0.5*math.Cos(beta[i]) + (1-blend)*uniform[i]
	}
	return half
}

// fullDistribution mirrors the half-wing distribution across the
// centerline: ascending values in [-0.5, 0.5], exactly symmetric about
// zero for any blend. n must be odd; the result then has n entries.
func fullDistribution(n int, blend float64) []float64 {
	n2 := (n + 1) / 2
	half := halfDistribution(n2, blend)

	full := make([]float64, 0, 2*n2-1)
	for i := 0; i < n2-1; i++ {
		full = append(full, -half[i])
	}
	for i := n2 - 1; i >= 0; i-- {
		full = append(full, half[i])
	}
	return full
}

// chordwiseDistribution returns the mirrored blend distribution offset
// to [0, 1], ascending leading to trailing edge. blend 0 is exactly
// uniform; nonzero blends require an odd n.
func chordwiseDistribution(n int, blend float64) []float64 {
	if blend == 0 {
		return linspace(0, 1, n)
	}
	w := fullDistribution(n, blend)
	for i := range w {
		w[i] += 0.5
	}
	return w
}

func linspace(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	dst := make([]float64, n)
	floats.Span(dst, lo, hi)
	return dst
}
