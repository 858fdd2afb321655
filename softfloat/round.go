package softfloat

// Trunc rounds toward zero by masking the fractional mantissa bits.
// Values of magnitude below 1 become a zero of the same sign; the
// infinities pass through unchanged and any NaN becomes the canonical NaN.
func (f F32) Trunc() F32 {
	if f.IsNaN() {
		return NaN()
	}
	e := int32(f.rawExp()) - expBias
	switch {
	case e >= expShift: // integral already, covers the infinities
		return f
	case e < 0:
		return F32{bits: f.sign()}
	}
	return F32{bits: f.bits &^ (1<<uint(expShift-e) - 1)}
}

// Floor rounds toward negative infinity.
func (f F32) Floor() F32 {
	if f.IsNaN() {
		return NaN()
	}
	t := f.Trunc()
	if f.IsNegative() && f.Ne(t) {
		return t.Sub(One())
	}
	return t
}

// Ceil rounds toward positive infinity.
func (f F32) Ceil() F32 {
	if f.IsNaN() {
		return NaN()
	}
	t := f.Trunc()
	if f.IsPositive() && f.Ne(t) {
		return t.Add(One())
	}
	return t
}

// Round rounds to the nearest integer, ties to even. When the input's
// significand cannot represent the midpoint exactly the tie decision
// follows the representable fraction, which may land one off from a true
// ties-to-even; this is the established behavior.
func (f F32) Round() F32 {
	if f.IsNaN() {
		return NaN()
	}
	if f.IsInfinity() {
		return f
	}
	t := f.Trunc()
	frac := f.Sub(t).Abs()
	switch {
	case frac.Gt(Half()):
		return t.awayFromZero(f.sign())
	case frac.Lt(Half()):
		return t
	}
	if t.integerIsOdd() {
		return t.awayFromZero(f.sign())
	}
	return t
}

// awayFromZero moves an integral value one unit away from zero in the
// direction given by sign.
func (f F32) awayFromZero(sign uint32) F32 {
	if sign != 0 {
		return f.Sub(One())
	}
	return f.Add(One())
}

// integerIsOdd reports whether an integral value has an odd low digit.
// Magnitudes at or above 2^24 are spaced by at least 2 and always even.
func (f F32) integerIsOdd() bool {
	e := int32(f.rawExp()) - expBias
	if e < 0 || e > expShift {
		return false
	}
	return (f.frac()|implicitBit)>>uint(expShift-e)&1 == 1
}

// Fmod returns the fused modulo f - Trunc(f/g)*g, carrying the sign of f.
//
// Special cases:
//
//	Fmod(NaN, g)  = NaN
//	Fmod(f, NaN)  = NaN
//	Fmod(±Inf, g) = NaN
//	Fmod(f, 0)    = NaN
//	Fmod(f, ±Inf) = f for finite f
func Fmod(f, g F32) F32 {
	switch {
	case f.IsNaN() || g.IsNaN():
		return NaN()
	case f.IsInfinity() || g.IsZero():
		return NaN()
	case g.IsInfinity():
		return f
	case f.IsZero():
		return f
	}
	r := f.Sub(f.Div(g).Trunc().Mul(g))
	if r.IsZero() {
		return F32{bits: f.sign()} // zero remainder keeps the sign of f
	}
	return r
}

// Mod is Fmod as a method; it implements the % of the original operator
// surface.
func (f F32) Mod(g F32) F32 {
	return Fmod(f, g)
}

// RemQuo returns the remainder f - q*g together with the truncated
// quotient q = Trunc(f/g) as an int32. The quotient wraps like Int32 when
// out of range.
func RemQuo(f, g F32) (rem F32, quo int32) {
	if f.IsNaN() || g.IsNaN() || f.IsInfinity() || g.IsZero() {
		return NaN(), 0
	}
	quo = f.Div(g).Trunc().Int32()
	rem = f.Sub(FromInt32(quo).Mul(g))
	return rem, quo
}
