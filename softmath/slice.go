package softmath

import (
	sf "github.com/nilpunch/soft-math/softfloat"
)

// Batch kernels for simulation inner loops. Each is exactly the scalar
// operation applied elementwise in index order; nothing is reassociated, so
// results stay bit-identical to a hand-written loop.

// AddSlice performs dst[i] = dst[i] + src[i].
func AddSlice(dst, src []sf.F32) {
	i := 0
	for ; i <= len(dst)-4; i += 4 {
		dst[i] = dst[i].Add(src[i])
		dst[i+1] = dst[i+1].Add(src[i+1])
		dst[i+2] = dst[i+2].Add(src[i+2])
		dst[i+3] = dst[i+3].Add(src[i+3])
	}
	for ; i < len(dst); i++ {
		dst[i] = dst[i].Add(src[i])
	}
}

// ScaleSlice performs dst[i] = dst[i] * scale.
func ScaleSlice(dst []sf.F32, scale sf.F32) {
	i := 0
	for ; i <= len(dst)-4; i += 4 {
		dst[i] = dst[i].Mul(scale)
		dst[i+1] = dst[i+1].Mul(scale)
		dst[i+2] = dst[i+2].Mul(scale)
		dst[i+3] = dst[i+3].Mul(scale)
	}
	for ; i < len(dst); i++ {
		dst[i] = dst[i].Mul(scale)
	}
}

// DotSlice accumulates the dot product of a and b in index order.
func DotSlice(a, b []sf.F32) sf.F32 {
	sum := sf.Zero()
	for i := range a {
		sum = sum.Add(a[i].Mul(b[i]))
	}
	return sum
}

// ExpSlice performs dst[i] = Exp(src[i]).
func ExpSlice(dst, src []sf.F32) {
	for i := range src {
		dst[i] = Exp(src[i])
	}
}

// SinSlice performs dst[i] = Sin(src[i]).
func SinSlice(dst, src []sf.F32) {
	for i := range src {
		dst[i] = Sin(src[i])
	}
}
