package softgeo

import (
	sf "github.com/nilpunch/soft-math/softfloat"
	"github.com/nilpunch/soft-math/softmath"
)

// Versor is a unit quaternion representing a rotation. Quaternion.Normalized
// and Versor.Normalized rescale to unit length; VersorFromAxisAngle does not
// rescale and is unit length only for a unit axis. The arithmetic preserves
// unit length up to rounding, and long chains of composition should be
// renormalized by the caller.
type Versor struct {
	X, Y, Z, W sf.F32
}

// VersorIdentity returns the no-rotation versor.
func VersorIdentity() Versor {
	return Versor{W: sf.One()}
}

// VersorFromAxisAngle builds a rotation of angle radians around axis,
// which is assumed to be unit length.
func VersorFromAxisAngle(axis Vector3, angle sf.F32) Versor {
	half := angle.Mul(sf.Half())
	s := softmath.Sin(half)
	return Versor{
		X: axis.X.Mul(s),
		Y: axis.Y.Mul(s),
		Z: axis.Z.Mul(s),
		W: softmath.Cos(half),
	}
}

func (v Versor) quat() Quaternion {
	return Quaternion{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}

// Mul composes two rotations; the result applies o first, then v.
func (v Versor) Mul(o Versor) Versor {
	q := v.quat().Mul(o.quat())
	return Versor{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// Inverse returns the reverse rotation. For a unit quaternion that is the
// conjugate.
func (v Versor) Inverse() Versor {
	return Versor{X: v.X.Neg(), Y: v.Y.Neg(), Z: v.Z.Neg(), W: v.W}
}

// Dot returns the 4-component dot product.
func (v Versor) Dot(o Versor) sf.F32 {
	return v.quat().Dot(o.quat())
}

// Rotate applies the rotation to p via q * (p, 0) * q^-1.
func (v Versor) Rotate(p Vector3) Vector3 {
	q := v.quat()
	r := q.Mul(Quaternion{X: p.X, Y: p.Y, Z: p.Z}).Mul(q.Conjugate())
	return Vector3{X: r.X, Y: r.Y, Z: r.Z}
}

// Normalized rescales to unit length, countering rounding drift.
func (v Versor) Normalized() Versor {
	return v.quat().Normalized()
}

// ToAxisAngle decomposes the rotation into a unit axis and an angle in
// [0, 2*pi]. The identity reports the +Y axis with a zero angle.
func (v Versor) ToAxisAngle() (Vector3, sf.F32) {
	w := softmath.Clamp(v.W, sf.MinusOne(), sf.One())
	angle := sf.Two().Mul(softmath.Acos(w))
	s := sf.One().Sub(w.Mul(w)).Sqrt()
	if s.Lt(sf.CalcEpsilon()) {
		return Vec3Up(), sf.Zero()
	}
	inv := sf.One().Div(s)
	return Vec3(v.X.Mul(inv), v.Y.Mul(inv), v.Z.Mul(inv)), angle
}

// Slerp interpolates between rotations along the shortest arc. Nearly
// parallel versors fall back to a normalized linear blend, where the sin
// of the arc is too small to divide by.
func (v Versor) Slerp(o Versor, t sf.F32) Versor {
	d := v.Dot(o)
	// Take the short way around: flip one endpoint on a negative dot.
	if d.IsNegative() {
		o = Versor{X: o.X.Neg(), Y: o.Y.Neg(), Z: o.Z.Neg(), W: o.W.Neg()}
		d = d.Neg()
	}
	d = softmath.Clamp(d, sf.MinusOne(), sf.One())

	theta := softmath.Acos(d)
	sinTheta := softmath.Sin(theta)
	if sinTheta.Lt(sf.CalcEpsilon()) {
		q := v.quat().Scale(sf.One().Sub(t)).Add(o.quat().Scale(t))
		return q.Normalized()
	}
	wa := softmath.Sin(sf.One().Sub(t).Mul(theta)).Div(sinTheta)
	wb := softmath.Sin(t.Mul(theta)).Div(sinTheta)
	q := v.quat().Scale(wa).Add(o.quat().Scale(wb))
	return Versor{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// Equals reports componentwise structural equality.
func (v Versor) Equals(o Versor) bool {
	return v.quat().Equals(o.quat())
}

func (v Versor) String() string {
	return v.quat().String()
}
