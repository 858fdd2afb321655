package softmath

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	sf "github.com/nilpunch/soft-math/softfloat"
)

// Host-float oracle for the approximation suites. The tolerance follows
// the conformance rule max(1e-6*2^ceil(log2(|want|+1)), 1e-6), times a
// per-family scale: 1 for the exponential and logarithmic family, 5000 for
// trigonometry.

func hostTol(want, scale float64) float64 {
	ae := math.Abs(want)
	return math.Max(1e-6*math.Pow(2, math.Ceil(math.Log2(ae+1))), 1e-6) * scale
}

func matchesHost(got sf.F32, want, scale float64) bool {
	switch {
	case math.IsNaN(want):
		return got.IsNaN()
	case math.IsInf(want, 0) || math.Abs(want) > math.MaxFloat32:
		g := float64(got.Float32())
		if math.IsInf(g, 0) {
			return (g > 0) == (want > 0)
		}
		return math.Abs(g) > 3.0e38 && (g > 0) == (want > 0)
	}
	g := float64(got.Float32())
	if math.IsNaN(g) || math.IsInf(g, 0) {
		return false
	}
	return scalar.EqualWithinAbs(g, want, hostTol(want, scale))
}

type xorshift64 uint64

func (s *xorshift64) next() uint64 {
	x := uint64(*s)
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	*s = xorshift64(x)
	return x
}

// uniform returns a deterministic sample in [lo, hi).
func (s *xorshift64) uniform(lo, hi float64) sf.F32 {
	u := float64(s.next()>>11) / (1 << 53)
	return sf.FromFloat32(float32(lo + u*(hi-lo)))
}

// logUniform returns a positive sample log-uniform over decades [lo, hi].
func (s *xorshift64) logUniform(lo, hi float64) sf.F32 {
	u := float64(s.next()>>11) / (1 << 53)
	return sf.FromFloat32(float32(math.Pow(10, lo+u*(hi-lo))))
}

func hostFloat(f sf.F32) float64 {
	return float64(f.Float32())
}
