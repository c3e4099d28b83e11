package geom

import "math"

// Vec3 is a point or direction in 3-D Cartesian space (Å).
type Vec3 [3]float64

// Add returns v + u.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Sub returns v − u.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Dot returns the scalar product v · u.
func (v Vec3) Dot(u Vec3) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Cross returns the vector product v × u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns v normalized to length 1.
// A zero vector is returned unchanged (length stays 0).
func (v Vec3) Unit() Vec3 {
	n := v.Norm()
	if n == 0 {
		return v
	}

	return v.Scale(1 / n)
}

// Dist returns the Euclidean distance between points v and u.
func (v Vec3) Dist(u Vec3) float64 {
	return v.Sub(u).Norm()
}

// Angle returns the angle at vertex c between rays c→p and c→q, in
// radians within [0, π]. Inputs are positions, not direction vectors.
//
// Degenerate rays (p==c or q==c) yield 0.
func Angle(p, c, q Vec3) float64 {
	a := p.Sub(c).Unit()
	b := q.Sub(c).Unit()

	// Clamp against FP drift before acos.
	d := a.Dot(b)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}

	return math.Acos(d)
}

// Dihedral returns the signed torsion angle (radians, (−π, π]) defined by
// the four points p0–p1–p2–p3, i.e. the angle between the p0p1p2 and
// p1p2p3 planes viewed along the p1→p2 axis. Eclipsed geometries read 0,
// anti geometries π; the sign follows the right-hand rule about p1→p2
// (positive when the p3 projection is the p0 projection rotated by a
// positive right-handed turn).
func Dihedral(p0, p1, p2, p3 Vec3) float64 {
	b0 := p0.Sub(p1)
	b1 := p2.Sub(p1).Unit()
	b2 := p3.Sub(p2)

	// Projections of b0 and b2 onto the plane perpendicular to b1.
	v := b0.Sub(b1.Scale(b0.Dot(b1)))
	w := b2.Sub(b1.Scale(b2.Dot(b1)))

	x := v.Dot(w)
	y := b1.Cross(v).Dot(w)

	return math.Atan2(y, x)
}

// RotateAboutAxis rotates point p by theta radians about the axis running
// from a to b (right-hand rule looking from a toward b), via the
// Rodrigues rotation formula.
func RotateAboutAxis(p, a, b Vec3, theta float64) Vec3 {
	k := b.Sub(a).Unit()
	v := p.Sub(a)

	sin, cos := math.Sincos(theta)
	rot := v.Scale(cos).
		Add(k.Cross(v).Scale(sin)).
		Add(k.Scale(k.Dot(v) * (1 - cos)))

	return rot.Add(a)
}
