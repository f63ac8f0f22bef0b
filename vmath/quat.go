package vmath

import (
	"math"
)

// Quat is a unit quaternion representing a rotation offset
// W is the scalar part; the zero value is NOT a valid rotation, use QIdentity
type Quat struct {
	W, X, Y, Z float64
}

// QIdentity returns the no-rotation quaternion
func QIdentity() Quat {
	return Quat{W: 1}
}

// QMul composes two rotations: result applies b, then a
func QMul(a, b Quat) Quat {
	return Quat{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// QDot returns the 4D dot product
func QDot(a, b Quat) float64 {
	return a.W*b.W + a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// QNormalize rescales to unit length, identity if degenerate
func QNormalize(q Quat) Quat {
	mag := math.Sqrt(QDot(q, q))
	if mag == 0 {
		return QIdentity()
	}
	inv := 1.0 / mag
	return Quat{q.W * inv, q.X * inv, q.Y * inv, q.Z * inv}
}

// QFromAxisAngle builds a rotation of angle radians around axis
// Axis need not be normalized; zero axis yields identity
func QFromAxisAngle(axis Vec3F, angle float64) Quat {
	n := V3FNormalize(axis)
	if n == (Vec3F{}) {
		return QIdentity()
	}
	half := angle * 0.5
	s := math.Sin(half)
	return Quat{
		W: math.Cos(half),
		X: n.X * s,
		Y: n.Y * s,
		Z: n.Z * s,
	}
}

// QAngle returns the rotation angle in radians, in [0, π]
func QAngle(q Quat) float64 {
	w := math.Abs(q.W)
	if w > 1 {
		w = 1
	}
	return 2 * math.Acos(w)
}

// QSlerpIdentity interpolates from identity toward q by fraction t
// t <= 0 yields identity, t >= 1 yields q (normalized), shortest arc between
func QSlerpIdentity(q Quat, t float64) Quat {
	if t <= 0 {
		return QIdentity()
	}
	q = QNormalize(q)
	if t >= 1 {
		return q
	}

	// Shortest arc: q and -q are the same rotation
	cosTheta := q.W
	if cosTheta < 0 {
		q = Quat{-q.W, -q.X, -q.Y, -q.Z}
		cosTheta = -cosTheta
	}
	if cosTheta > 1 {
		cosTheta = 1
	}

	theta := math.Acos(cosTheta)
	sinTheta := math.Sin(theta)
	if sinTheta < 1e-9 {
		// Nearly identity, linear blend is exact enough
		return QNormalize(Quat{
			W: 1 + (q.W-1)*t,
			X: q.X * t,
			Y: q.Y * t,
			Z: q.Z * t,
		})
	}

	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return Quat{
		W: wa + wb*q.W,
		X: wb * q.X,
		Y: wb * q.Y,
		Z: wb * q.Z,
	}
}
