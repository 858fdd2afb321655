package softgeo

import (
	sf "github.com/nilpunch/soft-math/softfloat"
)

// Quaternion is a general (not necessarily unit) quaternion with vector
// part (X, Y, Z) and scalar part W.
type Quaternion struct {
	X, Y, Z, W sf.F32
}

// Quat builds a quaternion from components.
func Quat(x, y, z, w sf.F32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// QuatIdentity returns the multiplicative identity.
func QuatIdentity() Quaternion {
	return Quaternion{W: sf.One()}
}

// Add returns q + o componentwise.
func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{
		X: q.X.Add(o.X), Y: q.Y.Add(o.Y), Z: q.Z.Add(o.Z), W: q.W.Add(o.W),
	}
}

// Scale multiplies every component by s.
func (q Quaternion) Scale(s sf.F32) Quaternion {
	return Quaternion{
		X: q.X.Mul(s), Y: q.Y.Mul(s), Z: q.Z.Mul(s), W: q.W.Mul(s),
	}
}

// Mul returns the Hamilton product q * o.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W.Mul(o.X).Add(q.X.Mul(o.W)).Add(q.Y.Mul(o.Z)).Sub(q.Z.Mul(o.Y)),
		Y: q.W.Mul(o.Y).Sub(q.X.Mul(o.Z)).Add(q.Y.Mul(o.W)).Add(q.Z.Mul(o.X)),
		Z: q.W.Mul(o.Z).Add(q.X.Mul(o.Y)).Sub(q.Y.Mul(o.X)).Add(q.Z.Mul(o.W)),
		W: q.W.Mul(o.W).Sub(q.X.Mul(o.X)).Sub(q.Y.Mul(o.Y)).Sub(q.Z.Mul(o.Z)),
	}
}

// Conjugate negates the vector part.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: q.X.Neg(), Y: q.Y.Neg(), Z: q.Z.Neg(), W: q.W}
}

// Dot returns the 4-component dot product.
func (q Quaternion) Dot(o Quaternion) sf.F32 {
	return q.X.Mul(o.X).Add(q.Y.Mul(o.Y)).Add(q.Z.Mul(o.Z)).Add(q.W.Mul(o.W))
}

// SqrNorm returns the squared norm.
func (q Quaternion) SqrNorm() sf.F32 {
	return q.Dot(q)
}

// Norm returns the norm.
func (q Quaternion) Norm() sf.F32 {
	return q.SqrNorm().Sqrt()
}

// Normalized scales q to unit norm; degenerate quaternions collapse to
// the identity.
func (q Quaternion) Normalized() Versor {
	n := q.Norm()
	if n.Lt(sf.CalcEpsilon()) {
		return VersorIdentity()
	}
	inv := sf.One().Div(n)
	s := q.Scale(inv)
	return Versor{X: s.X, Y: s.Y, Z: s.Z, W: s.W}
}

// Equals reports componentwise structural equality.
func (q Quaternion) Equals(o Quaternion) bool {
	return q.X.Equals(o.X) && q.Y.Equals(o.Y) && q.Z.Equals(o.Z) && q.W.Equals(o.W)
}

func (q Quaternion) String() string {
	return "(" + q.X.String() + ", " + q.Y.String() + ", " + q.Z.String() + ", " + q.W.String() + ")"
}
