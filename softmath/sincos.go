package softmath

import (
	sf "github.com/nilpunch/soft-math/softfloat"
)

// Range reduction constants. pi/2 is split into a 17-bit high part and a
// low correction so that n*pio2Hi stays exact for moderate n.
const (
	rawTwoOverPi = 0x3F22F983 // 2/pi
	rawPio2Hi    = 0x3FC90F80 // 1.5707855225
	rawPio2Lo    = 0x37354443 // 1.0804334124e-05
)

// Sine polynomial coefficients on [-pi/4, pi/4], odd powers above x.
var sinPoly = [4]uint32{
	0xBE2AAAAB, // -1/3!
	0x3C088889, // 1/5!
	0xB9500D01, // -1/7!
	0x363938B8, // 1/9!
}

// Cosine polynomial coefficients on [-pi/4, pi/4], even powers above x^2.
var cosPoly = [3]uint32{
	0x3D2AAAAB, // 1/4!
	0xBAB60B61, // -1/6!
	0x37D00D01, // 1/8!
}

// reducePiOver2 maps x into r in [-pi/4, pi/4] with x = n*pi/2 + r and
// returns the quadrant count n. The two-part pi/2 keeps the reduction
// accurate for arguments up to a few hundred; far beyond that the result
// is still deterministic but no longer close to the mathematical value.
func reducePiOver2(x sf.F32) (n int32, r sf.F32) {
	if x.Abs().Le(sf.PiOver4()) {
		return 0, x
	}
	n = x.Mul(sf.FromRaw(rawTwoOverPi)).Round().Int32()
	nf := sf.FromInt32(n)
	r = x.Sub(nf.Mul(sf.FromRaw(rawPio2Hi))).Sub(nf.Mul(sf.FromRaw(rawPio2Lo)))
	return n, r
}

// sinKernel evaluates sin(r) for r in [-pi/4, pi/4].
func sinKernel(r sf.F32) sf.F32 {
	if r.Abs().Lt(sf.FromRaw(0x39800000)) { // |r| < 2^-12: sin(r) is r, -0 included
		return r
	}
	z := r.Mul(r)
	p := sf.FromRaw(sinPoly[3])
	for i := 2; i >= 0; i-- {
		p = sf.FromRaw(sinPoly[i]).Add(z.Mul(p))
	}
	return r.Add(r.Mul(z).Mul(p))
}

// cosKernel evaluates cos(r) for r in [-pi/4, pi/4].
func cosKernel(r sf.F32) sf.F32 {
	z := r.Mul(r)
	p := sf.FromRaw(cosPoly[2])
	for i := 1; i >= 0; i-- {
		p = sf.FromRaw(cosPoly[i]).Add(z.Mul(p))
	}
	return sf.One().Sub(sf.Half().Mul(z)).Add(z.Mul(z).Mul(p))
}

// Sin returns the sine of x (x in radians).
//
// Special cases:
//
//	Sin(NaN)  = NaN
//	Sin(±Inf) = NaN
func Sin(x sf.F32) sf.F32 {
	if x.IsNaN() || x.IsInfinity() {
		return sf.NaN()
	}
	n, r := reducePiOver2(x)
	switch n & 3 {
	case 0:
		return sinKernel(r)
	case 1:
		return cosKernel(r)
	case 2:
		return sinKernel(r).Neg()
	}
	return cosKernel(r).Neg()
}

// Cos returns the cosine of x, computed as Sin(x + pi/2).
//
// Special cases:
//
//	Cos(NaN)  = NaN
//	Cos(±Inf) = NaN
func Cos(x sf.F32) sf.F32 {
	if x.IsNaN() || x.IsInfinity() {
		return sf.NaN()
	}
	return Sin(x.Add(sf.PiOver2()))
}

// Tan returns the tangent of x as Sin(x)/Cos(x). There is no dedicated
// reduction, so accuracy degrades near odd multiples of pi/2 where the
// cosine crosses zero.
//
// Special cases:
//
//	Tan(NaN)  = NaN
//	Tan(±Inf) = NaN
func Tan(x sf.F32) sf.F32 {
	if x.IsNaN() || x.IsInfinity() {
		return sf.NaN()
	}
	return Sin(x).Div(Cos(x))
}
