package math

import "github.com/chewxy/math32"

type Quaternion struct {
	X, Y, Z, W float32
}

func QuaternionIdentity() Quaternion {
	return Quaternion{X: 0, Y: 0, Z: 0, W: 1}
}

func QuaternionFromAxisAngle(axis Vec3, angle float32) Quaternion {
	s, c := math32.Sincos(angle / 2)

	axis = axis.Normalize()
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: c,
	}
}

// QuaternionFromEuler uses intrinsic XYZ order.
func QuaternionFromEuler(euler Vec3) Quaternion {
	qx := QuaternionFromAxisAngle(Vec3Right, euler.X)
	qy := QuaternionFromAxisAngle(Vec3Up, euler.Y)
	qz := QuaternionFromAxisAngle(Vec3Front, euler.Z)
	return qx.Mul(qy).Mul(qz)
}

// Mul returns the Hamilton product; the result rotates by other first, then q.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

func (q Quaternion) Normalize() Quaternion {
	length := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if length > 0 {
		inv := 1 / length
		return Quaternion{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
	}
	return q
}

// ToMat4 returns the row-vector rotation matrix.
func (q Quaternion) ToMat4() Mat4 {
	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z
	xy := q.X * q.Y
	xz := q.X * q.Z
	yz := q.Y * q.Z
	wx := q.W * q.X
	wy := q.W * q.Y
	wz := q.W * q.Z

	return Mat4{
		{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0},
		{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0},
		{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0},
		{0, 0, 0, 1},
	}
}

func (q Quaternion) Array() [4]float32 {
	return [4]float32{q.X, q.Y, q.Z, q.W}
}
