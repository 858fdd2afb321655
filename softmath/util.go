package softmath

import (
	sf "github.com/nilpunch/soft-math/softfloat"
)

// Clamp limits v to [lo, hi]. NaN propagates.
func Clamp(v, lo, hi sf.F32) sf.F32 {
	if v.IsNaN() || lo.IsNaN() || hi.IsNaN() {
		return sf.NaN()
	}
	if v.Lt(lo) {
		return lo
	}
	if v.Gt(hi) {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v sf.F32) sf.F32 {
	return Clamp(v, sf.Zero(), sf.One())
}

// Lerp interpolates linearly from a to b by t, without clamping t.
func Lerp(a, b, t sf.F32) sf.F32 {
	return a.Add(b.Sub(a).Mul(t))
}

// Sign returns 1 for positive v, -1 for negative v, and v itself for zeros
// and NaN.
func Sign(v sf.F32) sf.F32 {
	if v.IsNaN() || v.IsZero() {
		return v
	}
	if v.IsNegative() {
		return sf.MinusOne()
	}
	return sf.One()
}

// Radians converts degrees to radians.
func Radians(deg sf.F32) sf.F32 {
	return deg.Mul(sf.Deg2Rad())
}

// Degrees converts radians to degrees.
func Degrees(rad sf.F32) sf.F32 {
	return rad.Mul(sf.Rad2Deg())
}

// ApproxEqual reports whether a and b differ by no more than the
// calculation epsilon scaled to the larger magnitude.
func ApproxEqual(a, b sf.F32) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	diff := a.Sub(b).Abs()
	scale := sf.Max2(a.Abs(), b.Abs())
	if scale.Lt(sf.One()) {
		scale = sf.One()
	}
	return diff.Le(scale.Mul(sf.CalcEpsilon()))
}
