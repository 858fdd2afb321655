package softfloat

import (
	"math"
	"math/bits"
	"strconv"
)

// FromFloat32 reinterprets the bit pattern of a native float32. No
// arithmetic is performed on the value.
func FromFloat32(v float32) F32 {
	return F32{bits: math.Float32bits(v)}
}

// Float32 reinterprets f as a native float32. No arithmetic is performed;
// the caller owns whatever the host FPU does with the result.
func (f F32) Float32() float32 {
	return math.Float32frombits(f.bits)
}

// FromInt32 converts a signed 32-bit integer. Values of magnitude above
// 2^24 are truncated toward zero to the nearest representable magnitude.
func FromInt32(v int32) F32 {
	if v == 0 {
		return F32{}
	}
	if v == math.MinInt32 {
		return F32{bits: 0xCF000000} // -2^31, the one magnitude with no positive twin
	}
	var sign uint32
	u := uint32(v)
	if v < 0 {
		sign = signMask
		u = uint32(-v)
	}
	return F32{bits: sign | fromMagnitude(u)}
}

// FromUint32 converts an unsigned 32-bit integer.
func FromUint32(u uint32) F32 {
	if u == 0 {
		return F32{}
	}
	return F32{bits: fromMagnitude(u)}
}

// fromMagnitude encodes a non-zero integer magnitude, truncating mantissa
// bits that do not fit.
func fromMagnitude(u uint32) uint32 {
	msb := 31 - int32(bits.LeadingZeros32(u))
	exp := uint32(expBias + msb)
	var mant uint32
	if msb > expShift {
		mant = u >> uint(msb-expShift)
	} else {
		mant = u << uint(expShift-msb)
	}
	return exp<<expShift | mant&fracMask
}

// Int32 converts f toward zero. The fractional part is discarded; values
// whose magnitude exceeds the 32-bit range produce the wrapped result of
// the shift procedure, and NaN and the infinities produce 0. Callers
// needing a checked conversion must guard.
func (f F32) Int32() int32 {
	u := f.truncMagnitude()
	if f.bits&signMask != 0 {
		return -int32(u)
	}
	return int32(u)
}

// Uint32 converts f toward zero, wrapping negative values modulo 2^32.
func (f F32) Uint32() uint32 {
	u := f.truncMagnitude()
	if f.bits&signMask != 0 {
		return -u
	}
	return u
}

func (f F32) truncMagnitude() uint32 {
	e := int32(f.rawExp()) - expBias
	if e < 0 {
		return 0
	}
	mant := f.frac() | implicitBit
	if e <= expShift {
		return mant >> uint(expShift-e)
	}
	shift := uint(e - expShift)
	if shift >= 32 {
		return 0
	}
	return mant << shift
}

// String formats f in decimal by deferring to the host formatter. This is
// the single permitted use of the host FPU and exists for diagnostics only.
func (f F32) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'g', -1, 32)
}
