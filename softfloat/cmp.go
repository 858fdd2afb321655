package softfloat

import "math"

// orderKey maps a raw word into a signed integer whose natural ordering
// agrees with numeric ordering for every non-NaN value. Both zeros map to
// the same key.
func orderKey(bits uint32) int32 {
	v := int32(bits)
	if v < 0 {
		return math.MinInt32 - v
	}
	return v
}

// Eq reports f == g. NaN compares unequal to everything including itself;
// +0 equals -0.
func (f F32) Eq(g F32) bool {
	if f.IsNaN() || g.IsNaN() {
		return false
	}
	return orderKey(f.bits) == orderKey(g.bits)
}

// Ne reports f != g. NaN compares unequal to everything including itself.
func (f F32) Ne(g F32) bool {
	if f.IsNaN() || g.IsNaN() {
		return true
	}
	return orderKey(f.bits) != orderKey(g.bits)
}

// Lt reports f < g; false if either operand is NaN.
func (f F32) Lt(g F32) bool {
	if f.IsNaN() || g.IsNaN() {
		return false
	}
	return orderKey(f.bits) < orderKey(g.bits)
}

// Le reports f <= g; false if either operand is NaN.
func (f F32) Le(g F32) bool {
	if f.IsNaN() || g.IsNaN() {
		return false
	}
	return orderKey(f.bits) <= orderKey(g.bits)
}

// Gt reports f > g; false if either operand is NaN.
func (f F32) Gt(g F32) bool {
	return g.Lt(f)
}

// Ge reports f >= g; false if either operand is NaN.
func (f F32) Ge(g F32) bool {
	return g.Le(f)
}

// Cmp is the total-order comparison: -1, 0 or +1. Unlike the ordering
// operators it treats any two NaNs as equal, and sorts NaN before every
// other value.
func (f F32) Cmp(g F32) int {
	fn, gn := f.IsNaN(), g.IsNaN()
	switch {
	case fn && gn:
		return 0
	case fn:
		return -1
	case gn:
		return 1
	}
	fk, gk := orderKey(f.bits), orderKey(g.bits)
	switch {
	case fk < gk:
		return -1
	case fk > gk:
		return 1
	}
	return 0
}

// Equals is the structural equality used for dictionary membership: +0
// equals -0, any NaN equals any NaN, and the two infinities are distinct.
// It differs from Eq only on NaN.
func (f F32) Equals(g F32) bool {
	if f.IsNaN() {
		return g.IsNaN()
	}
	if g.IsNaN() {
		return false
	}
	return orderKey(f.bits) == orderKey(g.bits)
}

// Hash returns a hash code consistent with Equals: 0 for either zero, the
// canonical NaN word for any NaN, and the raw word otherwise.
func (f F32) Hash() uint32 {
	switch {
	case f.IsZero():
		return 0
	case f.IsNaN():
		return rawNaN
	}
	return f.bits
}

// Min2 returns the smaller of f and g; NaN if either is NaN.
func Min2(f, g F32) F32 {
	if f.IsNaN() || g.IsNaN() {
		return NaN()
	}
	if g.Lt(f) {
		return g
	}
	return f
}

// Max2 returns the larger of f and g; NaN if either is NaN.
func Max2(f, g F32) F32 {
	if f.IsNaN() || g.IsNaN() {
		return NaN()
	}
	if g.Gt(f) {
		return g
	}
	return f
}
