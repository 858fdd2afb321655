package softfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromInt32(t *testing.T) {
	cases := []struct {
		in   int32
		want uint32
	}{
		{0, 0x00000000},
		{1, 0x3F800000},
		{-1, 0xBF800000},
		{2, 0x40000000},
		{10, 0x41200000},
		{-10, 0xC1200000},
		{16777216, 0x4B800000},  // 2^24
		{16777217, 0x4B800000},  // 2^24+1 truncates down
		{-16777217, 0xCB800000}, //
		{math.MinInt32, 0xCF000000},
		{math.MaxInt32, 0x4EFFFFFF},
	}
	for _, tc := range cases {
		got := FromInt32(tc.in)
		assert.Equalf(t, tc.want, got.Raw(), "FromInt32(%d)", tc.in)
	}
}

func TestFromUint32(t *testing.T) {
	assert.Equal(t, uint32(0x00000000), FromUint32(0).Raw())
	assert.Equal(t, uint32(0x3F800000), FromUint32(1).Raw())
	assert.Equal(t, uint32(0x4B800000), FromUint32(1<<24).Raw())
	assert.Equal(t, uint32(0x4F000000), FromUint32(1<<31).Raw())
	assert.Equal(t, uint32(0x4F7FFFFF), FromUint32(math.MaxUint32).Raw())
}

func TestIntConversionRoundTrip(t *testing.T) {
	var s xorshift64 = 10
	for i := 0; i < 50000; i++ {
		v := int32(s.next())
		f := FromInt32(v)
		// Values within the 24-bit significand convert exactly.
		if v < 1<<24 && v > -(1<<24) {
			if got := f.Int32(); got != v {
				t.Fatalf("Int32(FromInt32(%d)) = %d", v, got)
			}
			hostBits := math.Float32bits(float32(v))
			if f.Raw() != hostBits {
				t.Fatalf("FromInt32(%d) = %#x, host %#x", v, f.Raw(), hostBits)
			}
		}
	}
}

func TestToIntEdge(t *testing.T) {
	assert.Equal(t, int32(0), FromFloat32(0.99).Int32())
	assert.Equal(t, int32(0), FromFloat32(-0.99).Int32())
	assert.Equal(t, int32(3), FromFloat32(3.999).Int32())
	assert.Equal(t, int32(-3), FromFloat32(-3.999).Int32())
	assert.Equal(t, int32(0), Zero().Int32())
	assert.Equal(t, int32(0), NegZero().Int32())
	assert.Equal(t, int32(0), AbsoluteEpsilon().Int32())
	assert.Equal(t, uint32(7), FromFloat32(7.9).Uint32())
	// Negative values wrap modulo 2^32 under Uint32.
	assert.Equal(t, ^uint32(0), FromFloat32(-1.0).Uint32())
}

func TestFromInt32MatchesHost(t *testing.T) {
	var s xorshift64 = 11
	for i := 0; i < 50000; i++ {
		v := int32(s.next() >> 32)
		soft := FromInt32(v)
		host := math.Float32bits(float32(v))
		// The host rounds to nearest while the conversion truncates; both
		// agree whenever the integer fits the significand, and stay within
		// one ulp otherwise.
		if soft.Raw() != host {
			diff := int64(soft.Raw()) - int64(host)
			if diff != -1 && diff != 1 {
				t.Fatalf("FromInt32(%d) = %#x, host %#x", v, soft.Raw(), host)
			}
		}
	}
}
