// Package softgeo provides 3D vector and quaternion types composed from
// softfloat.F32. Every component operation routes through the software
// float core, so geometry stays bit-deterministic across platforms.
package softgeo

import (
	sf "github.com/nilpunch/soft-math/softfloat"
	"github.com/nilpunch/soft-math/softmath"
)

// Vector3 is a 3-component vector of software floats.
type Vector3 struct {
	X, Y, Z sf.F32
}

// Vec3 builds a vector from components.
func Vec3(x, y, z sf.F32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vec3Zero returns the zero vector.
func Vec3Zero() Vector3 {
	return Vector3{}
}

// Vec3One returns (1, 1, 1).
func Vec3One() Vector3 {
	return Vector3{X: sf.One(), Y: sf.One(), Z: sf.One()}
}

// Vec3Up returns the +Y unit vector.
func Vec3Up() Vector3 {
	return Vector3{Y: sf.One()}
}

// Vec3Right returns the +X unit vector.
func Vec3Right() Vector3 {
	return Vector3{X: sf.One()}
}

// Vec3Forward returns the +Z unit vector.
func Vec3Forward() Vector3 {
	return Vector3{Z: sf.One()}
}

// Add returns v + o componentwise.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X.Add(o.X), Y: v.Y.Add(o.Y), Z: v.Z.Add(o.Z)}
}

// Sub returns v - o componentwise.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X.Sub(o.X), Y: v.Y.Sub(o.Y), Z: v.Z.Sub(o.Z)}
}

// Neg returns the componentwise negation.
func (v Vector3) Neg() Vector3 {
	return Vector3{X: v.X.Neg(), Y: v.Y.Neg(), Z: v.Z.Neg()}
}

// Scale returns v with every component multiplied by s.
func (v Vector3) Scale(s sf.F32) Vector3 {
	return Vector3{X: v.X.Mul(s), Y: v.Y.Mul(s), Z: v.Z.Mul(s)}
}

// Dot returns the dot product, accumulated in component order.
func (v Vector3) Dot(o Vector3) sf.F32 {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)).Add(v.Z.Mul(o.Z))
}

// Cross returns the cross product v x o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y.Mul(o.Z).Sub(v.Z.Mul(o.Y)),
		Y: v.Z.Mul(o.X).Sub(v.X.Mul(o.Z)),
		Z: v.X.Mul(o.Y).Sub(v.Y.Mul(o.X)),
	}
}

// SqrMagnitude returns the squared length.
func (v Vector3) SqrMagnitude() sf.F32 {
	return v.Dot(v)
}

// Magnitude returns the length.
func (v Vector3) Magnitude() sf.F32 {
	return v.SqrMagnitude().Sqrt()
}

// Normalized returns v scaled to unit length. Vectors shorter than the
// calculation epsilon normalize to zero rather than blowing up.
func (v Vector3) Normalized() Vector3 {
	m := v.Magnitude()
	if m.Lt(sf.CalcEpsilon()) {
		return Vector3{}
	}
	inv := sf.One().Div(m)
	return v.Scale(inv)
}

// Distance returns the length of o - v.
func (v Vector3) Distance(o Vector3) sf.F32 {
	return o.Sub(v).Magnitude()
}

// Lerp interpolates componentwise from v to o by t, without clamping.
func (v Vector3) Lerp(o Vector3, t sf.F32) Vector3 {
	return Vector3{
		X: softmath.Lerp(v.X, o.X, t),
		Y: softmath.Lerp(v.Y, o.Y, t),
		Z: softmath.Lerp(v.Z, o.Z, t),
	}
}

// Project returns the projection of v onto the direction of n. A
// degenerate n projects to zero.
func (v Vector3) Project(n Vector3) Vector3 {
	d := n.SqrMagnitude()
	if d.Lt(sf.CalcEpsilonSqr()) {
		return Vector3{}
	}
	return n.Scale(v.Dot(n).Div(d))
}

// Reflect mirrors v against the plane with unit normal n.
func (v Vector3) Reflect(n Vector3) Vector3 {
	two := sf.Two()
	return v.Sub(n.Scale(two.Mul(v.Dot(n))))
}

// Equals reports componentwise structural equality.
func (v Vector3) Equals(o Vector3) bool {
	return v.X.Equals(o.X) && v.Y.Equals(o.Y) && v.Z.Equals(o.Z)
}

// ApproxEqual reports componentwise agreement within the calculation
// epsilon.
func (v Vector3) ApproxEqual(o Vector3) bool {
	return softmath.ApproxEqual(v.X, o.X) &&
		softmath.ApproxEqual(v.Y, o.Y) &&
		softmath.ApproxEqual(v.Z, o.Z)
}

func (v Vector3) String() string {
	return "(" + v.X.String() + ", " + v.Y.String() + ", " + v.Z.String() + ")"
}
