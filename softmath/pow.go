package softmath

import (
	sf "github.com/nilpunch/soft-math/softfloat"
)

// integerParity reports whether y is an integer and, if so, whether it is
// odd. Magnitudes at or above 2^24 are spaced by at least 2 and even.
func integerParity(y sf.F32) (isInt, isOdd bool) {
	t := y.Trunc()
	if t.Ne(y) {
		return false, false
	}
	e := int32(t.Raw()>>23&0xFF) - 127
	if e < 0 || e > 23 {
		return true, false
	}
	return true, (t.Raw()&0x007FFFFF|1<<23)>>uint(23-e)&1 == 1
}

// Pow returns x**y, computed as Exp2(y*Log2(|x|)) with the sign restored
// for negative x raised to integer powers.
//
// Special cases, in order:
//
//	Pow(x, ±0)     = 1 for any x, including NaN
//	Pow(1, y)      = 1 for any y, including NaN
//	Pow(NaN, y)    = NaN
//	Pow(x, NaN)    = NaN
//	Pow(±1, ±Inf)  = 1
//	Pow(x, +Inf)   = +Inf for |x| > 1, +0 for |x| < 1
//	Pow(x, -Inf)   = +0 for |x| > 1, +Inf for |x| < 1
//	Pow(+Inf, y)   = +Inf for y > 0, +0 for y < 0
//	Pow(-Inf, y)   = like Pow(-0, -y) mirrored: sign follows odd integer y
//	Pow(±0, y<0)   = ±Inf for odd integer y, +Inf otherwise
//	Pow(±0, y>0)   = ±0 for odd integer y, +0 otherwise
//	Pow(x<0, y)    = NaN for non-integer y
func Pow(x, y sf.F32) sf.F32 {
	if y.IsZero() {
		return sf.One()
	}
	if x.Raw() == sf.One().Raw() {
		return sf.One()
	}
	if x.IsNaN() || y.IsNaN() {
		return sf.NaN()
	}

	if y.IsInfinity() {
		ax := x.Abs()
		switch {
		case ax.Eq(sf.One()):
			return sf.One()
		case ax.Gt(sf.One()) == y.IsPositiveInfinity():
			return sf.Inf()
		}
		return sf.Zero()
	}

	yInt, yOdd := integerParity(y)

	if x.IsInfinity() {
		if x.IsPositiveInfinity() {
			if y.IsNegative() {
				return sf.Zero()
			}
			return sf.Inf()
		}
		if y.IsPositive() {
			if yInt && yOdd {
				return sf.NegInf()
			}
			return sf.Inf()
		}
		if yInt && yOdd {
			return sf.NegZero()
		}
		return sf.Zero()
	}

	if x.IsZero() {
		if y.IsNegative() {
			if yInt && yOdd {
				return sf.FromRaw(x.Raw() | sf.Inf().Raw()) // infinity with x's sign
			}
			return sf.Inf()
		}
		if yInt && yOdd {
			return x
		}
		return sf.Zero()
	}

	negResult := false
	if x.IsNegative() {
		if !yInt {
			return sf.NaN()
		}
		negResult = yOdd
		x = x.Abs()
	}

	r := Exp2(y.Mul(Log2(x)))
	if negResult {
		r = r.Neg()
	}
	return r
}
