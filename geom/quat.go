package geom

import "math"

// Quat is a rotation quaternion in (w, x, y, z) order.
type Quat [4]float64

// Norm returns the quaternion magnitude.
func (q Quat) Norm() float64 {
	return math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
}

// Shoemake maps three uniform samples u0,u1,u2 ∈ [0,1) to a unit
// quaternion uniformly distributed over SO(3) (Shoemake's subgroup
// algorithm). Feeding it a low-discrepancy or pseudo-random triple
// sequence yields a well-spread rotation set.
func Shoemake(u0, u1, u2 float64) Quat {
	s1 := math.Sqrt(1 - u0)
	s2 := math.Sqrt(u0)
	t1 := 2 * math.Pi * u1
	t2 := 2 * math.Pi * u2

	return Quat{
		s2 * math.Cos(t2),
		s1 * math.Sin(t1),
		s1 * math.Cos(t1),
		s2 * math.Sin(t2),
	}
}

// RotateByQuat rotates direction (or origin-relative position) v by unit
// quaternion q, computing q·v·q⁻¹ expanded into vector algebra.
func RotateByQuat(v Vec3, q Quat) Vec3 {
	u := Vec3{q[1], q[2], q[3]}
	w := q[0]

	// v' = 2(u·v)u + (w² − u·u)v + 2w(u×v)
	return u.Scale(2 * u.Dot(v)).
		Add(v.Scale(w*w - u.Dot(u))).
		Add(u.Cross(v).Scale(2 * w))
}

// AxisAngle builds the unit quaternion rotating by theta radians about
// axis (normalized internally).
func AxisAngle(axis Vec3, theta float64) Quat {
	sin, cos := math.Sincos(theta / 2)
	a := axis.Unit()

	return Quat{cos, a[0] * sin, a[1] * sin, a[2] * sin}
}
