package softmath

import (
	sf "github.com/nilpunch/soft-math/softfloat"
)

// Logarithm constants, raw binary32 words.
const (
	rawLg1 = 0x3F2AAAAA // 6.6666662693e-01
	rawLg2 = 0x3ECCCE13 // 4.0000972152e-01
	rawLg3 = 0x3E91E9EE // 2.8498786688e-01
	rawLg4 = 0x3E789E26 // 2.4279078841e-01

	rawSqrtHalfish = 0x3F3504F3 // sqrt(2)/2 pivot of the reduction
	rawTwoPow25    = 0x4C000000 // subnormal prescale

	rawIvLn2Hi = 0x3FB8B000 // 1.4428710938e+00
	rawIvLn2Lo = 0xB9389AD4 // -1.7605285393e-04
)

// logReduce brings a positive finite x into 2^k * (1+f) with 1+f in
// [sqrt(2)/2, sqrt(2)), returning k and f. Subnormals are prescaled by 2^25
// with the shift folded into k.
func logReduce(x sf.F32) (k int32, f sf.F32) {
	ix := x.Raw()
	if ix < 0x00800000 {
		x = x.Mul(sf.FromRaw(rawTwoPow25))
		k -= 25
		ix = x.Raw()
	}
	ix += 0x3F800000 - rawSqrtHalfish
	k += int32(ix>>23) - 127
	ix = ix&0x007FFFFF + rawSqrtHalfish
	return k, sf.FromRaw(ix).Sub(sf.One())
}

// logPoly evaluates the shared minimax remainder R of the log family over
// s = f/(2+f).
func logPoly(s sf.F32) sf.F32 {
	z := s.Mul(s)
	w := z.Mul(z)
	t1 := w.Mul(sf.FromRaw(rawLg2).Add(w.Mul(sf.FromRaw(rawLg4))))
	t2 := z.Mul(sf.FromRaw(rawLg1).Add(w.Mul(sf.FromRaw(rawLg3))))
	return t2.Add(t1)
}

// Log returns the natural logarithm of x.
//
// Special cases:
//
//	Log(NaN)   = NaN
//	Log(x < 0) = NaN
//	Log(±0)    = -Inf
//	Log(+Inf)  = +Inf
//	Log(1)     = +0
func Log(x sf.F32) sf.F32 {
	switch {
	case x.IsNaN():
		return sf.NaN()
	case x.IsZero():
		return sf.NegInf()
	case x.IsNegative():
		return sf.NaN()
	case x.IsPositiveInfinity():
		return x
	}

	k, f := logReduce(x)
	s := f.Div(sf.Two().Add(f))
	r := logPoly(s)
	hfsq := sf.Half().Mul(f).Mul(f)
	dk := sf.FromInt32(k)
	ln2Hi := sf.FromRaw(rawLn2Hi)
	ln2Lo := sf.FromRaw(rawLn2Lo)
	return s.Mul(hfsq.Add(r)).Add(dk.Mul(ln2Lo)).Sub(hfsq).Add(f).Add(dk.Mul(ln2Hi))
}

// Log2 returns the base-2 logarithm of x through a dedicated reduction; it
// is not Log(x)*Log2E. Exact powers of two yield exact integers.
//
// Special cases are those of Log.
func Log2(x sf.F32) sf.F32 {
	switch {
	case x.IsNaN():
		return sf.NaN()
	case x.IsZero():
		return sf.NegInf()
	case x.IsNegative():
		return sf.NaN()
	case x.IsPositiveInfinity():
		return x
	}

	k, f := logReduce(x)
	s := f.Div(sf.Two().Add(f))
	r := logPoly(s)
	hfsq := sf.Half().Mul(f).Mul(f)

	// Split log(1+f) into hi+lo parts and multiply each by 1/ln2 parts to
	// keep the integer contribution k exact.
	hi := f.Sub(hfsq)
	hi = sf.FromRaw(hi.Raw() & 0xFFFFF000)
	lo := f.Sub(hi).Sub(hfsq).Add(s.Mul(hfsq.Add(r)))
	ivHi := sf.FromRaw(rawIvLn2Hi)
	ivLo := sf.FromRaw(rawIvLn2Lo)
	dk := sf.FromInt32(k)
	return lo.Add(hi).Mul(ivLo).Add(lo.Mul(ivHi)).Add(hi.Mul(ivHi)).Add(dk)
}

// Log1p returns the natural logarithm of 1+x. It is more accurate than
// Log(One().Add(x)) when x is near zero.
//
// Special cases:
//
//	Log1p(NaN)    = NaN
//	Log1p(x < -1) = NaN
//	Log1p(-1)     = -Inf
//	Log1p(+Inf)   = +Inf
func Log1p(x sf.F32) sf.F32 {
	switch {
	case x.IsNaN():
		return sf.NaN()
	case x.IsPositiveInfinity():
		return x
	case x.Raw() == 0xBF800000:
		return sf.NegInf()
	case x.IsNegative() && x.Abs().Gt(sf.One()):
		return sf.NaN()
	}

	one := sf.One()
	ix := x.Raw()
	k := int32(1)
	c, f := sf.Zero(), x
	if ix < 0x3ED413D0 || ix>>31 == 1 { // 1+x < sqrt(2)
		if ix<<1 < 0x33800000<<1 { // |x| < 2^-24
			return x
		}
		if ix <= 0xBE95F619 { // x > -0.2929
			k = 0
		}
	}
	if k != 0 {
		u := one.Add(x)
		iu := u.Raw() + (0x3F800000 - rawSqrtHalfish)
		k = int32(iu>>23) - 127
		// Correction for the rounding of 1+x, valid while u stays close.
		if k < 25 {
			if k >= 2 {
				c = one.Sub(u.Sub(x))
			} else {
				c = x.Sub(u.Sub(one))
			}
			c = c.Div(u)
		} else {
			c = sf.Zero()
		}
		iu = iu&0x007FFFFF + rawSqrtHalfish
		f = sf.FromRaw(iu).Sub(one)
	}

	s := f.Div(sf.Two().Add(f))
	r := logPoly(s)
	hfsq := sf.Half().Mul(f).Mul(f)
	dk := sf.FromInt32(k)
	ln2Hi := sf.FromRaw(rawLn2Hi)
	ln2Lo := sf.FromRaw(rawLn2Lo)
	return s.Mul(hfsq.Add(r)).Add(dk.Mul(ln2Lo).Add(c)).Sub(hfsq).Add(f).Add(dk.Mul(ln2Hi))
}
