package softmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	sf "github.com/nilpunch/soft-math/softfloat"
)

const trigScale = 5000 // 5e-3 scaled tolerance for trigonometry

func TestSinSpecials(t *testing.T) {
	assert.True(t, Sin(sf.NaN()).IsNaN())
	assert.True(t, Sin(sf.Inf()).IsNaN())
	assert.True(t, Sin(sf.NegInf()).IsNaN())
	assert.Equal(t, sf.Zero().Raw(), Sin(sf.Zero()).Raw())
	assert.Equal(t, sf.NegZero().Raw(), Sin(sf.NegZero()).Raw())
}

func TestSinCosKnownAngles(t *testing.T) {
	cases := []struct {
		name     string
		x        sf.F32
		sin, cos float64
	}{
		{"zero", sf.Zero(), 0, 1},
		{"pi/6", sf.Pi().Div(sf.FromInt32(6)), 0.5, math.Sqrt(3) / 2},
		{"pi/4", sf.PiOver4(), math.Sqrt2 / 2, math.Sqrt2 / 2},
		{"pi/2", sf.PiOver2(), 1, 0},
		{"pi", sf.Pi(), 0, -1},
		{"3pi/2", sf.Pi().Mul(sf.FromFloat32(1.5)), -1, 0},
		{"2pi", sf.TwoPi(), 0, 1},
		{"-pi/2", sf.PiOver2().Neg(), -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.sin, hostFloat(Sin(tc.x)), 5e-3)
			assert.InDelta(t, tc.cos, hostFloat(Cos(tc.x)), 5e-3)
		})
	}
}

func TestSinMatchesHost(t *testing.T) {
	var s xorshift64 = 41
	for i := 0; i < 50000; i++ {
		x := s.uniform(-100, 100)
		got := Sin(x)
		if !matchesHost(got, math.Sin(hostFloat(x)), trigScale) {
			t.Fatalf("Sin(%v) = %v, host %v", x, got, math.Sin(hostFloat(x)))
		}
	}
}

func TestCosMatchesHost(t *testing.T) {
	var s xorshift64 = 42
	for i := 0; i < 50000; i++ {
		x := s.uniform(-100, 100)
		got := Cos(x)
		if !matchesHost(got, math.Cos(hostFloat(x)), trigScale) {
			t.Fatalf("Cos(%v) = %v, host %v", x, got, math.Cos(hostFloat(x)))
		}
	}
}

func TestTanAwayFromSingularities(t *testing.T) {
	var s xorshift64 = 43
	for i := 0; i < 50000; i++ {
		x := s.uniform(-1.2, 1.2)
		got := Tan(x)
		want := math.Tan(hostFloat(x))
		// tan = sin/cos: tolerance grows with the magnitude of the result.
		tol := hostTol(want, trigScale) * math.Max(1, math.Abs(want))
		if math.Abs(hostFloat(got)-want) > tol {
			t.Fatalf("Tan(%v) = %v, host %v", x, got, want)
		}
	}
	assert.True(t, Tan(sf.NaN()).IsNaN())
	assert.True(t, Tan(sf.Inf()).IsNaN())
}

func TestSinSymmetry(t *testing.T) {
	var s xorshift64 = 44
	for i := 0; i < 20000; i++ {
		x := s.uniform(-50, 50)
		a := Sin(x)
		b := Sin(x.Neg()).Neg()
		if math.Abs(hostFloat(a)-hostFloat(b)) > 5e-3 {
			t.Fatalf("Sin(-x) != -Sin(x) at %v: %v vs %v", x, a, b)
		}
	}
}

func BenchmarkSin(b *testing.B) {
	x := sf.FromFloat32(1.234)
	for i := 0; i < b.N; i++ {
		Sin(x)
	}
}
