// Package softrand provides a deterministic pseudo-random source emitting
// softfloat.F32 values. The same seed yields the same sequence on every
// platform, which keeps randomized simulation content in lockstep.
package softrand

import (
	sf "github.com/nilpunch/soft-math/softfloat"
	"github.com/nilpunch/soft-math/softgeo"
	"github.com/nilpunch/soft-math/softmath"
)

// seedFallback replaces a zero seed, which would pin xorshift at zero
// forever.
const seedFallback = 0x9E3779B97F4A7C15

// Rand is a 64-bit xorshift generator. It is not safe for concurrent use;
// give each worker its own instance.
type Rand struct {
	state uint64
}

// New creates a generator from an explicit seed.
func New(seed uint64) *Rand {
	if seed == 0 {
		seed = seedFallback
	}
	return &Rand{state: seed}
}

// Uint64 advances the generator.
func (r *Rand) Uint64() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Uint32 returns the high word of the next state, which mixes better than
// the low word for xorshift.
func (r *Rand) Uint32() uint32 {
	return uint32(r.Uint64() >> 32)
}

// F32 returns a uniform value in [0, 1). The mantissa is filled directly:
// 1.m in [1, 2) minus one, so every result is an exact dyadic sample.
func (r *Rand) F32() sf.F32 {
	bits := 0x3F800000 | r.Uint32()>>9
	return sf.FromRaw(bits).Sub(sf.One())
}

// Range returns a uniform value in [lo, hi).
func (r *Rand) Range(lo, hi sf.F32) sf.F32 {
	return softmath.Lerp(lo, hi, r.F32())
}

// Angle returns a uniform angle in [0, 2*pi).
func (r *Rand) Angle() sf.F32 {
	return r.F32().Mul(sf.TwoPi())
}

// OnSphere returns a point uniformly distributed on the unit sphere,
// using the cylinder-area mapping.
func (r *Rand) OnSphere() softgeo.Vector3 {
	z := r.Range(sf.MinusOne(), sf.One())
	theta := r.Angle()
	s := sf.One().Sub(z.Mul(z)).Sqrt()
	return softgeo.Vec3(
		s.Mul(softmath.Cos(theta)),
		s.Mul(softmath.Sin(theta)),
		z,
	)
}
