package softmath

import (
	sf "github.com/nilpunch/soft-math/softfloat"
)

// Arctangent polynomial approximating atan(v)/v on [0, 1], even powers.
var atanPoly = [8]uint32{
	0x3F7FFFFE, // 0.99999988
	0xBEAAA8CF, // -0.33331916
	0x3E4C7B54, // 0.19968921
	0xBE0F8549, // -0.14015688
	0x3DCADB2A, // 0.099050835
	0xBD732A49, // -0.059366498
	0x3CC6061B, // 0.024172833
	0xBB9918B7, // -0.0046721357
}

const rawThreePiOver4 = 0x4016CBE4

// Atan returns the arctangent of x in [-pi/2, pi/2].
//
// Arguments above 1 in magnitude reduce through the identity
// atan(x) = pi/2 - atan(1/x); the sign is restored afterwards.
//
// Special cases:
//
//	Atan(NaN)  = NaN
//	Atan(±Inf) = ±pi/2
func Atan(x sf.F32) sf.F32 {
	if x.IsNaN() {
		return sf.NaN()
	}
	sign := x.Raw() & 0x80000000
	ax := x.Abs()
	big := ax.Gt(sf.One())
	v := ax
	if big {
		v = sf.One().Div(ax) // +Inf reduces to 0 here
	}
	z := v.Mul(v)
	p := sf.FromRaw(atanPoly[7])
	for i := 6; i >= 0; i-- {
		p = sf.FromRaw(atanPoly[i]).Add(z.Mul(p))
	}
	res := v.Mul(p)
	if big {
		res = sf.PiOver2().Sub(res)
	}
	return sf.FromRaw(res.Raw() | sign)
}

// Atan2 returns the four-quadrant arctangent of y/x.
//
// Special cases:
//
//	Atan2(NaN, x)      = NaN, Atan2(y, NaN) = NaN
//	Atan2(±0, ±0)      = ±0 with the sign of y
//	Atan2(±0, x > 0)   = ±0
//	Atan2(±0, x < 0)   = ±pi
//	Atan2(y > 0, ±0)   = pi/2, Atan2(y < 0, ±0) = -pi/2
//	Atan2(±Inf, +Inf)  = ±pi/4, Atan2(±Inf, -Inf) = ±3pi/4
//	Atan2(±Inf, x)     = ±pi/2 for finite x
//	Atan2(y, +Inf)     = ±0, Atan2(y, -Inf) = ±pi for finite y
func Atan2(y, x sf.F32) sf.F32 {
	if x.IsNaN() || y.IsNaN() {
		return sf.NaN()
	}
	ySign := y.Raw() & 0x80000000
	yInf, xInf := y.IsInfinity(), x.IsInfinity()

	switch {
	case yInf && xInf:
		if x.IsPositiveInfinity() {
			return sf.FromRaw(ySign | sf.PiOver4().Raw())
		}
		return sf.FromRaw(ySign | rawThreePiOver4)
	case y.IsZero():
		switch {
		case x.IsZero():
			return sf.FromRaw(ySign)
		case x.IsNegative():
			return sf.FromRaw(ySign | sf.Pi().Raw())
		}
		return y
	case x.IsZero():
		return sf.FromRaw(ySign | sf.PiOver2().Raw())
	case xInf:
		if x.IsPositiveInfinity() {
			return sf.FromRaw(ySign)
		}
		return sf.FromRaw(ySign | sf.Pi().Raw())
	case yInf:
		return sf.FromRaw(ySign | sf.PiOver2().Raw())
	}

	a := Atan(y.Div(x))
	if x.IsNegative() {
		if ySign != 0 {
			return a.Sub(sf.Pi())
		}
		return a.Add(sf.Pi())
	}
	return a
}

// Acos returns the arccosine of x in [0, pi] through the atan2-based
// formulation acos(x) = atan2(sqrt(1-x*x), x).
//
// Special cases:
//
//	Acos(NaN)     = NaN
//	Acos(|x| > 1) = NaN
func Acos(x sf.F32) sf.F32 {
	if x.IsNaN() || x.Abs().Gt(sf.One()) {
		return sf.NaN()
	}
	s := sf.One().Sub(x.Mul(x)).Sqrt()
	return Atan2(s, x)
}

// Asin returns the arcsine of x in [-pi/2, pi/2] as pi/2 - Acos(x).
//
// Special cases:
//
//	Asin(NaN)     = NaN
//	Asin(|x| > 1) = NaN
func Asin(x sf.F32) sf.F32 {
	if x.IsNaN() || x.Abs().Gt(sf.One()) {
		return sf.NaN()
	}
	return sf.PiOver2().Sub(Acos(x))
}
