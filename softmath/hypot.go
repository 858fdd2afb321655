package softmath

import (
	sf "github.com/nilpunch/soft-math/softfloat"
)

// Hypot returns sqrt(x*x + y*y). Operands far outside the central exponent
// range are rescaled by an exact power of two before squaring so the
// intermediate products cannot overflow or flush to zero.
//
// Special cases:
//
//	Hypot(±Inf, y) = +Inf even when y is NaN
//	Hypot(x, ±Inf) = +Inf
//	Hypot(NaN, y)  = NaN
func Hypot(x, y sf.F32) sf.F32 {
	x, y = x.Abs(), y.Abs()
	if x.IsInfinity() || y.IsInfinity() {
		return sf.Inf()
	}
	if x.IsNaN() || y.IsNaN() {
		return sf.NaN()
	}
	if y.Gt(x) {
		x, y = y, x
	}
	if x.IsZero() {
		return sf.Zero()
	}

	var rescale int32
	switch ex := int32(x.Raw() >> 23 & 0xFF); {
	case ex > 127+60:
		x, y = ldexp(x, -70), ldexp(y, -70)
		rescale = 70
	case ex < 127-60:
		x, y = ldexp(x, 70), ldexp(y, 70)
		rescale = -70
	}
	r := x.Mul(x).Add(y.Mul(y)).Sqrt()
	return ldexp(r, rescale)
}
