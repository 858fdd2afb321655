package softmath

import (
	sf "github.com/nilpunch/soft-math/softfloat"
)

// pow2 returns 2^k for k in the normal range [-126, 127].
func pow2(k int32) sf.F32 {
	return sf.FromRaw(uint32(127+k) << 23)
}

// ldexp multiplies f by 2^k through at most three exact power-of-two
// multiplications, so overflow saturates to infinity and underflow rounds
// through the subnormal range exactly like any other multiplication.
func ldexp(f sf.F32, k int32) sf.F32 {
	for k > 127 {
		f = f.Mul(pow2(127))
		k -= 127
	}
	for k < -126 {
		f = f.Mul(pow2(-126))
		k += 126
	}
	return f.Mul(pow2(k))
}
