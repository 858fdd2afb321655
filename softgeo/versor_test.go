package softgeo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	sf "github.com/nilpunch/soft-math/softfloat"
	"github.com/nilpunch/soft-math/softmath"
)

func TestQuaternionIdentity(t *testing.T) {
	q := Quat(sf.FromFloat32(0.1), sf.FromFloat32(0.2), sf.FromFloat32(0.3), sf.FromFloat32(0.9))
	assert.True(t, q.Mul(QuatIdentity()).Equals(q))
	assert.True(t, QuatIdentity().Mul(q).Equals(q))
}

func TestQuaternionConjugateNorm(t *testing.T) {
	q := Quat(sf.One(), sf.Two(), sf.FromFloat32(3), sf.FromFloat32(4))
	// q * conj(q) = |q|^2 on the scalar axis.
	p := q.Mul(q.Conjugate())
	assert.InDelta(t, 30, float64(p.W.Float32()), 1e-4)
	assert.InDelta(t, 0, float64(p.X.Float32()), 1e-4)
	assert.InDelta(t, 30, float64(q.SqrNorm().Float32()), 1e-4)
}

func TestVersorRotateBasis(t *testing.T) {
	// 90 degrees around Y carries +X to -Z.
	r := VersorFromAxisAngle(Vec3Up(), sf.PiOver2())
	got := r.Rotate(Vec3Right())
	assertVecInDelta(t, [3]float64{0, 0, -1}, got, 5e-3)

	// 180 degrees around Z flips X and Y.
	r = VersorFromAxisAngle(Vec3Forward(), sf.Pi())
	got = r.Rotate(v3(1, 2, 0))
	assertVecInDelta(t, [3]float64{-1, -2, 0}, got, 5e-3)
}

func TestVersorInverseRoundTrip(t *testing.T) {
	axis := v3(1, 1, 0).Normalized()
	r := VersorFromAxisAngle(axis, sf.FromFloat32(0.7))
	p := v3(0.3, -1.2, 2.5)
	back := r.Inverse().Rotate(r.Rotate(p))
	assertVecInDelta(t, [3]float64{0.3, -1.2, 2.5}, back, 1e-2)
}

func TestVersorCompose(t *testing.T) {
	// Two 45-degree turns equal one 90-degree turn.
	half := VersorFromAxisAngle(Vec3Up(), sf.PiOver4())
	full := VersorFromAxisAngle(Vec3Up(), sf.PiOver2())
	composed := half.Mul(half)
	a := composed.Rotate(Vec3Right())
	b := full.Rotate(Vec3Right())
	assert.InDelta(t, float64(b.X.Float32()), float64(a.X.Float32()), 1e-2)
	assert.InDelta(t, float64(b.Z.Float32()), float64(a.Z.Float32()), 1e-2)
}

func TestVersorRotatePreservesLength(t *testing.T) {
	r := VersorFromAxisAngle(v3(0, 1, 1).Normalized(), sf.FromFloat32(1.1))
	p := v3(3, -4, 12)
	got := r.Rotate(p).Magnitude()
	assert.InDelta(t, 13, float64(got.Float32()), 1e-2)
}

func TestToAxisAngle(t *testing.T) {
	r := VersorFromAxisAngle(Vec3Up(), sf.One())
	axis, angle := r.ToAxisAngle()
	assert.InDelta(t, 1, float64(angle.Float32()), 5e-3)
	assertVecInDelta(t, [3]float64{0, 1, 0}, axis, 5e-3)

	axis, angle = VersorIdentity().ToAxisAngle()
	assert.Equal(t, sf.Zero().Raw(), angle.Raw())
	assert.True(t, axis.Equals(Vec3Up()))
}

func TestSlerp(t *testing.T) {
	a := VersorIdentity()
	b := VersorFromAxisAngle(Vec3Up(), sf.PiOver2())

	assert.InDelta(t, 1, float64(a.Slerp(b, sf.Zero()).Dot(a).Float32()), 5e-3)
	assert.InDelta(t, 1, float64(a.Slerp(b, sf.One()).Dot(b).Float32()), 5e-3)

	// Halfway is the 45-degree rotation.
	mid := a.Slerp(b, sf.Half())
	want := VersorFromAxisAngle(Vec3Up(), sf.PiOver4())
	assert.InDelta(t, 1, float64(mid.Dot(want).Float32()), 5e-3)

	// Nearly identical rotations take the nlerp path without dividing by
	// a vanishing sine.
	c := VersorFromAxisAngle(Vec3Up(), sf.FromFloat32(1e-8))
	m := a.Slerp(c, sf.Half())
	assert.InDelta(t, 1, float64(m.Dot(a).Float32()), 5e-3)
}

func TestVersorAngleArithmetic(t *testing.T) {
	// Rotating a vector by angle theta around Y moves it by theta in the
	// XZ plane.
	for _, deg := range []float32{10, 30, 45, 60, 90, 120, 179} {
		angle := softmath.Radians(sf.FromFloat32(deg))
		r := VersorFromAxisAngle(Vec3Up(), angle)
		got := r.Rotate(Vec3Right())
		wantX := math.Cos(float64(angle.Float32()))
		wantZ := -math.Sin(float64(angle.Float32()))
		assert.InDelta(t, wantX, float64(got.X.Float32()), 1e-2, "deg %v", deg)
		assert.InDelta(t, wantZ, float64(got.Z.Float32()), 1e-2, "deg %v", deg)
	}
}
