package softfloat

import "math/bits"

// Alignment keeps 6 guard bits below the significand. The final result is
// truncated after normalization; there is no round-to-even tie-break. That
// is the established behavior of this format and must not be "fixed".
const guardBits = 6

// Add returns f + g.
//
// Special cases follow IEEE-754 with a canonical NaN:
//
//	NaN + x     = NaN
//	+Inf + -Inf = NaN
//	±Inf + x    = ±Inf for finite x
//	+0 + -0     = +0, -0 + -0 = -0
//
// If the operand exponents differ by more than 25 the smaller operand is
// below the rounding threshold and the larger is returned unchanged.
func (f F32) Add(g F32) F32 {
	return F32{bits: addBits(f.bits, g.bits)}
}

// Sub returns f - g, computed as f + (-g).
func (f F32) Sub(g F32) F32 {
	return F32{bits: addBits(f.bits, g.bits^signMask)}
}

func addBits(a, b uint32) uint32 {
	aExp := a >> expShift & 0xFF
	bExp := b >> expShift & 0xFF

	if aExp == 0xFF || bExp == 0xFF {
		switch {
		case isNaNBits(a) || isNaNBits(b):
			return rawNaN
		case aExp == 0xFF && bExp == 0xFF:
			if a == b {
				return a // same-signed infinities
			}
			return rawNaN // +Inf + -Inf
		case aExp == 0xFF:
			return a
		}
		return b
	}

	if a&^signMask == 0 && b&^signMask == 0 {
		// Only -0 + -0 keeps the negative sign.
		return a & b
	}

	big, small := a, b
	bigExp, smallExp := int32(aExp), int32(bExp)
	if bigExp < smallExp {
		big, small = small, big
		bigExp, smallExp = smallExp, bigExp
	}
	// Subnormals live at effective exponent 1 without the implicit bit.
	if bigExp == 0 {
		bigExp = 1
	}
	if smallExp == 0 {
		smallExp = 1
	}

	gap := bigExp - smallExp
	if gap > 25 {
		return big
	}

	m1 := int32(significand(big))
	m2 := int32(significand(small))
	if big&signMask != 0 {
		m1 = -m1
	}
	if small&signMask != 0 {
		m2 = -m2
	}

	m1 <<= guardBits
	m2 <<= guardBits
	m2 >>= uint(gap) // arithmetic shift, keeps the sign

	sum := m1 + m2
	if sum == 0 {
		return rawZero // exact cancellation is +0
	}

	var sign uint32
	mag := uint32(sum)
	if sum < 0 {
		sign = signMask
		mag = uint32(-sum)
	}

	// Renormalize so the top significand bit sits at position 23+guardBits.
	msb := 31 - int32(bits.LeadingZeros32(mag))
	exp := bigExp + msb - (expShift + guardBits)
	switch {
	case msb > expShift+guardBits:
		mag >>= uint(msb - (expShift + guardBits))
	case msb < expShift+guardBits:
		mag <<= uint((expShift + guardBits) - msb)
	}
	mant := mag >> guardBits

	return assemble(sign, exp, mant)
}

// significand returns the 24-bit significand of a finite value: the raw
// mantissa with the implicit leading bit restored for normals, as-is for
// subnormals and zeros.
func significand(bits uint32) uint32 {
	m := bits & fracMask
	if bits&expMask != 0 {
		m |= implicitBit
	}
	return m
}

// assemble packs sign, biased exponent and a significand in [2^23, 2^24)
// into a raw word, clamping overflow to infinity and shifting underflow
// into the subnormal range (or to a signed zero). Low bits discarded by the
// subnormal shift are truncated.
func assemble(sign uint32, exp int32, mant uint32) uint32 {
	if exp >= 0xFF {
		return sign | rawPosInf
	}
	if exp <= 0 {
		shift := uint32(1 - exp)
		if shift > 24 {
			return sign
		}
		return sign | mant>>shift
	}
	return sign | uint32(exp)<<expShift | mant&fracMask
}

func isNaNBits(bits uint32) bool {
	return bits&expMask == expMask && bits&fracMask != 0
}
