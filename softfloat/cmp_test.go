package softfloat

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderingOperators(t *testing.T) {
	one := One()
	two := Two()
	negOne := MinusOne()

	assert.True(t, one.Lt(two))
	assert.True(t, negOne.Lt(one))
	assert.True(t, NegInf().Lt(negOne))
	assert.True(t, two.Gt(one))
	assert.True(t, Inf().Gt(Max()))
	assert.True(t, one.Le(one))
	assert.True(t, one.Ge(one))
	assert.False(t, one.Lt(one))

	// NaN is unordered: every ordering operator answers false.
	n := NaN()
	assert.False(t, n.Lt(one))
	assert.False(t, n.Gt(one))
	assert.False(t, n.Le(one))
	assert.False(t, n.Ge(one))
	assert.False(t, one.Lt(n))
	assert.False(t, n.Eq(n))
	assert.True(t, n.Ne(n))
}

func TestZeroComparesEqual(t *testing.T) {
	assert.True(t, Zero().Eq(NegZero()))
	assert.True(t, NegZero().Eq(Zero()))
	assert.False(t, Zero().Lt(NegZero()))
	assert.False(t, NegZero().Lt(Zero()))
	assert.Equal(t, 0, Zero().Cmp(NegZero()))
}

func TestInfinityEquality(t *testing.T) {
	assert.True(t, Inf().Eq(Inf()))
	assert.True(t, NegInf().Eq(NegInf()))
	assert.False(t, Inf().Eq(NegInf()))
}

func TestCmpTotalOrder(t *testing.T) {
	// Cmp treats NaNs as equal to each other and before everything else.
	assert.Equal(t, 0, NaN().Cmp(FromRaw(0x7FC00001)))
	assert.Equal(t, -1, NaN().Cmp(NegInf()))
	assert.Equal(t, 1, NegInf().Cmp(NaN()))

	vals := []F32{One(), NegInf(), NaN(), Zero(), MinusOne(), Inf(), FromFloat32(0.5)}
	sort.Slice(vals, func(i, j int) bool { return vals[i].Cmp(vals[j]) < 0 })
	raws := make([]uint32, len(vals))
	for i, v := range vals {
		raws[i] = v.Raw()
	}
	assert.Equal(t, []uint32{
		0xFFC00000, 0xFF800000, 0xBF800000, 0x00000000,
		0x3F000000, 0x3F800000, 0x7F800000,
	}, raws)
}

func TestMonotonicity(t *testing.T) {
	var s xorshift64 = 8
	for i := 0; i < 20000; i++ {
		a, b, c := sampleF32(&s), sampleF32(&s), sampleF32(&s)
		if a.Lt(b) && b.Lt(c) && !a.Lt(c) {
			t.Fatalf("transitivity broken for %#x < %#x < %#x", a.Raw(), b.Raw(), c.Raw())
		}
	}
}

func TestStructuralEquality(t *testing.T) {
	assert.True(t, Zero().Equals(NegZero()))
	assert.True(t, NaN().Equals(FromRaw(0x7FC00001)))
	assert.True(t, NaN().Equals(NaN().Neg()))
	assert.True(t, Inf().Equals(Inf()))
	assert.False(t, Inf().Equals(NegInf()))
	assert.False(t, NaN().Equals(Inf()))
	assert.True(t, One().Equals(One()))
	assert.False(t, One().Equals(Two()))
}

func TestHash(t *testing.T) {
	assert.Equal(t, uint32(0), Zero().Hash())
	assert.Equal(t, uint32(0), NegZero().Hash())
	assert.Equal(t, uint32(0xFFC00000), NaN().Hash())
	assert.Equal(t, uint32(0xFFC00000), FromRaw(0x7FC00001).Hash())
	assert.Equal(t, uint32(0x3F800000), One().Hash())

	// Hash is consistent with Equals.
	var s xorshift64 = 9
	for i := 0; i < 20000; i++ {
		a, b := sampleRaw(&s), sampleRaw(&s)
		if a.Equals(b) && a.Hash() != b.Hash() {
			t.Fatalf("equal values hash differently: %#x, %#x", a.Raw(), b.Raw())
		}
	}
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, One().Raw(), Min2(One(), Two()).Raw())
	assert.Equal(t, Two().Raw(), Max2(One(), Two()).Raw())
	assert.True(t, Min2(One(), NaN()).IsNaN())
	assert.True(t, Max2(NaN(), One()).IsNaN())
}
