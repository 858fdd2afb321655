package softmath

import (
	sf "github.com/nilpunch/soft-math/softfloat"
)

// Exponential constants, raw binary32 words. ln2 is split into a high part
// with trailing zero bits and a low correction so that k*ln2Hi is exact for
// the k produced by the reduction.
const (
	rawLn2Hi  = 0x3F317180 // 6.9313812256e-01
	rawLn2Lo  = 0x3717F7D1 // 9.0580006145e-06
	rawInvLn2 = 0x3FB8AA3B // 1.4426950216e+00

	rawExpOverflow  = 0x42B17218 // 88.722839, exp saturates to +Inf at or above
	rawExpUnderflow = 0xC2CFF1B4 // -103.972077, exp flushes to +0 at or below

	rawHalfLn2       = 0x3EB17218 // 0.5*ln2
	rawThreeHalfLn2  = 0x3F851592 // 1.5*ln2
	rawExpTinyThresh = 0x39000000 // below this 1+x is exact enough

	rawExpP1 = 0x3E2AAA8F // 1.6666625440e-01
	rawExpP2 = 0xBB355215 // -2.7667332906e-03
)

// Exp returns e**x.
//
// Special cases:
//
//	Exp(NaN)  = NaN
//	Exp(+Inf) = +Inf
//	Exp(-Inf) = +0
//
// Method: reduce x = k*ln2 + r with |r| <= 0.5*ln2, approximate
// exp(r) with a small rational expression, then scale by 2^k.
func Exp(x sf.F32) sf.F32 {
	switch {
	case x.IsNaN():
		return sf.NaN()
	case x.IsPositiveInfinity():
		return x
	case x.IsNegativeInfinity():
		return sf.Zero()
	case x.Ge(sf.FromRaw(rawExpOverflow)):
		return sf.Inf()
	case x.Le(sf.FromRaw(rawExpUnderflow)):
		return sf.Zero()
	}

	one := sf.One()
	half := sf.Half()
	two := sf.Two()
	ln2Hi := sf.FromRaw(rawLn2Hi)
	ln2Lo := sf.FromRaw(rawLn2Lo)

	ax := x.Abs()
	var k int32
	hi, lo := x, sf.Zero()
	switch {
	case ax.Gt(sf.FromRaw(rawHalfLn2)):
		if ax.Lt(sf.FromRaw(rawThreeHalfLn2)) {
			if x.IsNegative() {
				k, hi, lo = -1, x.Add(ln2Hi), ln2Lo.Neg()
			} else {
				k, hi, lo = 1, x.Sub(ln2Hi), ln2Lo
			}
		} else {
			t := sf.FromRaw(rawInvLn2).Mul(x)
			if x.IsNegative() {
				t = t.Sub(half)
			} else {
				t = t.Add(half)
			}
			k = t.Int32()
			kf := sf.FromInt32(k)
			hi = x.Sub(kf.Mul(ln2Hi))
			lo = kf.Mul(ln2Lo)
		}
		x = hi.Sub(lo)
	case ax.Lt(sf.FromRaw(rawExpTinyThresh)):
		return one.Add(x)
	}

	t := x.Mul(x)
	p1 := sf.FromRaw(rawExpP1)
	p2 := sf.FromRaw(rawExpP2)
	c := x.Sub(t.Mul(p1.Add(t.Mul(p2))))
	if k == 0 {
		return one.Sub(x.Mul(c).Div(c.Sub(two)).Sub(x))
	}
	y := one.Sub(lo.Sub(x.Mul(c).Div(two.Sub(c))).Sub(hi))
	return ldexp(y, k)
}

// exp2 polynomial: Taylor coefficients of 2^f on [-0.5, 0.5], ln2^i/i!.
var exp2Poly = [8]uint32{
	0x3F800000, // 1
	0x3F317218, // ln2
	0x3E75FDF0, // ln2^2/2
	0x3D635847, // ln2^3/6
	0x3C1D955B, // ln2^4/24
	0x3AAEC3FF, // ln2^5/120
	0x39218489, // ln2^6/720
	0x377FE5FE, // ln2^7/5040
}

// Exp2 returns 2**x.
//
// Special cases mirror Exp; results saturate to +Inf at x >= 128 and flush
// to +0 at x <= -150.
func Exp2(x sf.F32) sf.F32 {
	switch {
	case x.IsNaN():
		return sf.NaN()
	case x.IsPositiveInfinity():
		return x
	case x.IsNegativeInfinity():
		return sf.Zero()
	case x.Ge(sf.FromRaw(0x43000000)): // 128
		return sf.Inf()
	case x.Le(sf.FromRaw(0xC3160000)): // -150
		return sf.Zero()
	}
	k := x.Round().Int32()
	f := x.Sub(sf.FromInt32(k))
	p := sf.FromRaw(exp2Poly[len(exp2Poly)-1])
	for i := len(exp2Poly) - 2; i >= 0; i-- {
		p = sf.FromRaw(exp2Poly[i]).Add(f.Mul(p))
	}
	return ldexp(p, k)
}

// expm1 rational coefficients, scaled per the SunPro derivation.
const (
	rawEm1Overflow = 0x42B2D4FC // 89.415985
	rawLn2X27      = 0x4195B844 // 27*ln2
	rawEm1Tiny     = 0x33000000 // 2^-25

	rawEm1Q1 = 0xBD088889
	rawEm1Q2 = 0x3AD00D01
	rawEm1Q3 = 0xB8A670CD
	rawEm1Q4 = 0x36867E54
	rawEm1Q5 = 0xB457EDBB
)

// Expm1 returns e**x - 1. It is more accurate than Exp(x).Sub(One()) when x
// is near zero.
//
// Special cases:
//
//	Expm1(NaN)  = NaN
//	Expm1(+Inf) = +Inf
//	Expm1(-Inf) = -1
func Expm1(x sf.F32) sf.F32 {
	switch {
	case x.IsNaN():
		return sf.NaN()
	case x.IsPositiveInfinity():
		return x
	case x.IsNegativeInfinity():
		return sf.MinusOne()
	}

	one := sf.One()
	half := sf.Half()
	two := sf.Two()
	ln2Hi := sf.FromRaw(rawLn2Hi)
	ln2Lo := sf.FromRaw(rawLn2Lo)

	neg := x.IsNegative()
	ax := x.Abs()
	if ax.Ge(sf.FromRaw(rawLn2X27)) {
		if neg {
			return sf.MinusOne() // x below -27*ln2 is -1 to the last bit
		}
		if ax.Ge(sf.FromRaw(rawEm1Overflow)) {
			return sf.Inf()
		}
	}

	var k int32
	c := sf.Zero()
	switch {
	case ax.Gt(sf.FromRaw(rawHalfLn2)):
		var hi, lo sf.F32
		if ax.Lt(sf.FromRaw(rawThreeHalfLn2)) {
			if neg {
				k, hi, lo = -1, x.Add(ln2Hi), ln2Lo.Neg()
			} else {
				k, hi, lo = 1, x.Sub(ln2Hi), ln2Lo
			}
		} else {
			t := sf.FromRaw(rawInvLn2).Mul(x)
			if neg {
				t = t.Sub(half)
			} else {
				t = t.Add(half)
			}
			k = t.Int32()
			tf := sf.FromInt32(k)
			hi = x.Sub(tf.Mul(ln2Hi))
			lo = tf.Mul(ln2Lo)
		}
		x = hi.Sub(lo)
		c = hi.Sub(x).Sub(lo)
	case ax.Lt(sf.FromRaw(rawEm1Tiny)):
		return x
	}

	hfx := half.Mul(x)
	hxs := x.Mul(hfx)
	p := sf.FromRaw(rawEm1Q5)
	for _, q := range [4]uint32{rawEm1Q4, rawEm1Q3, rawEm1Q2, rawEm1Q1} {
		p = sf.FromRaw(q).Add(hxs.Mul(p))
	}
	r1 := one.Add(hxs.Mul(p))
	t := sf.FromInt32(3).Sub(r1.Mul(hfx))
	e := hxs.Mul(r1.Sub(t).Div(sf.FromInt32(6).Sub(x.Mul(t))))
	if k == 0 {
		return x.Sub(x.Mul(e).Sub(hxs))
	}

	e = x.Mul(e.Sub(c)).Sub(c)
	e = e.Sub(hxs)
	switch {
	case k == -1:
		return half.Mul(x.Sub(e)).Sub(half)
	case k == 1:
		if x.Lt(sf.FromRaw(0xBE800000)) { // x < -0.25
			return two.Neg().Mul(e.Sub(x.Add(half)))
		}
		return one.Add(two.Mul(x.Sub(e)))
	case k <= -2 || k > 56:
		y := one.Sub(e.Sub(x))
		return ldexp(y, k).Sub(one)
	case k < 20:
		t := one.Sub(ldexp(one, -k)) // 1 - 2^-k, exact
		return ldexp(t.Sub(e.Sub(x)), k)
	}
	t = ldexp(one, -k)
	y := x.Sub(e.Add(t)).Add(one)
	return ldexp(y, k)
}
