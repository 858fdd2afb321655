package softfloat

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Test-side oracle helpers. Comparing against the host float is the one
// place the FPU is allowed: the conformance rule accepts the soft result
// when it lands within max(1e-6*2^ceil(log2(|want|+1)), 1e-6) of the host
// result, with class matching for NaN and the infinities.

func hostTol(want float64) float64 {
	ae := math.Abs(want)
	return math.Max(1e-6*math.Pow(2, math.Ceil(math.Log2(ae+1))), 1e-6)
}

// matchesHost reports whether a soft result agrees with the host result
// under the conformance rule. Results beyond ±3e38 are accepted for an
// infinite host result: truncation and round-to-nearest legitimately
// diverge at the overflow boundary.
func matchesHost(got F32, want float64) bool {
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
	return scalar.EqualWithinAbs(g, want, hostTol(want))
}

// xorshift64 is the deterministic sampling source for the randomized
// suites; a fixed seed keeps failures reproducible across runs and
// platforms.
type xorshift64 uint64

func (s *xorshift64) next() uint64 {
	x := uint64(*s)
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	*s = xorshift64(x)
	return x
}

var sampleBands = [6]float64{1e-40, 1e-10, 1, 1e5, 1e9, 1e38}

// sampleF32 draws a finite float32 whose magnitude is uniform within a
// randomly chosen band, both signs.
func sampleF32(s *xorshift64) F32 {
	band := sampleBands[s.next()%uint64(len(sampleBands))]
	u := float64(s.next()>>11) / (1 << 53) // uniform in [0, 1)
	v := (u*2 - 1) * band
	return FromFloat32(float32(v))
}

// sampleRaw draws an arbitrary 32-bit pattern, NaNs and infinities
// included.
func sampleRaw(s *xorshift64) F32 {
	return FromRaw(uint32(s.next()))
}

func hostFloat(f F32) float64 {
	return float64(f.Float32())
}
