package conformance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	sf "github.com/nilpunch/soft-math/softfloat"
)

// Tolerance implements the conformance rule: the permitted absolute error
// for an expected value, max(1e-6*2^ceil(log2(|want|+1)), 1e-6) times the
// family scale.
func Tolerance(want, scale float64) float64 {
	ae := math.Abs(want)
	return math.Max(1e-6*math.Pow(2, math.Ceil(math.Log2(ae+1))), 1e-6) * scale
}

// Agrees decides whether a soft result matches the host expectation under
// the tolerance rule. NaN and infinity match by class; finite results
// beyond ±3e38 are accepted against an infinite expectation because
// truncation and round-to-nearest diverge at the overflow boundary.
func Agrees(got sf.F32, want, scale float64) bool {
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
	return scalar.EqualWithinAbs(g, want, Tolerance(want, scale))
}

// Check runs one case through the soft implementation and the host oracle.
// The case's Want field is not consulted; Replay does the bit-exact
// comparison against recorded results.
func Check(c Case) (Verdict, error) {
	op, ok := Ops[c.Op]
	if !ok {
		return Verdict{}, fmt.Errorf("unknown op %q", c.Op)
	}

	a := sf.FromRaw(c.A)
	b := sf.FromRaw(c.B)
	got := op.Soft(a, b)

	v := Verdict{Case: c, Got: got.Raw()}
	scale := op.Scale
	ha := float64(a.Float32())
	hb := float64(b.Float32())
	if op.Loosen != nil {
		scale *= op.Loosen(ha, hb)
	}
	v.OK = Agrees(got, op.Host(ha, hb), scale)
	return v, nil
}
