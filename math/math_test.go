package math

import (
	"testing"

	"github.com/chewxy/math32"
)

const tolerance = float32(0.0001)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	// Addition
	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	// Subtraction
	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	dot := v1.Dot(v2)
	if dot != 32 {
		t.Errorf("Dot: expected 32, got %v", dot)
	}

	// Right x Up = Front in a right-handed system
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := NewVec3(1, 5, -2)
	b := NewVec3(3, -1, 0)
	if got := a.Min(b); got != NewVec3(1, -1, -2) {
		t.Errorf("Min: got %v", got)
	}
	if got := a.Max(b); got != NewVec3(3, 5, 0) {
		t.Errorf("Max: got %v", got)
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	if m[3][0] != 1 || m[3][1] != 2 || m[3][2] != 3 {
		t.Errorf("Translation: expected (1,2,3), got (%v,%v,%v)", m[3][0], m[3][1], m[3][2])
	}

	if got := m.MulPoint(Vec3Zero); got != translation {
		t.Errorf("Translation: expected %v, got %v", translation, got)
	}
}

func TestMat4ComposeOrder(t *testing.T) {
	// rotate a quarter turn about Y, then move along X
	m := Mat4Compose(NewVec3(10, 0, 0), QuaternionFromAxisAngle(Vec3Up, math32.Pi/2), Vec3One)
	got := m.MulPoint(NewVec3(1, 0, 0))
	if !got.ApproxEqual(NewVec3(10, 0, -1), tolerance) {
		t.Errorf("Compose: expected (10,0,-1), got %v", got)
	}

	// child then parent
	parent := Mat4Translation(NewVec3(0, 5, 0))
	child := Mat4Translation(NewVec3(1, 0, 0))
	world := child.Mul(parent)
	if got := world.MulPoint(Vec3Zero); !got.ApproxEqual(NewVec3(1, 5, 0), tolerance) {
		t.Errorf("Mul order: expected (1,5,0), got %v", got)
	}
}

func TestQuaternionMatchesEuler(t *testing.T) {
	angle := float32(0.7)
	v := NewVec3(0.3, -1, 2)

	fromAxis := QuaternionFromAxisAngle(Vec3Up, angle).ToMat4().MulPoint(v)
	fromEuler := QuaternionFromEuler(NewVec3(0, angle, 0)).ToMat4().MulPoint(v)
	if !fromAxis.ApproxEqual(fromEuler, tolerance) {
		t.Errorf("rotation mismatch: axis %v, euler %v", fromAxis, fromEuler)
	}
	if l := fromAxis.Length(); math32.Abs(l-v.Length()) > tolerance {
		t.Errorf("rotation changed length: %v", l)
	}
}

func TestRowVectorMultiply(t *testing.T) {
	p := Vec4{X: 1, Y: 2, Z: 3, W: 1}.MulMat(Mat4Translation(NewVec3(10, 20, 30)))
	if p != (Vec4{X: 11, Y: 22, Z: 33, W: 1}) {
		t.Errorf("MulMat: expected (11,22,33,1), got %v", p)
	}
}

func TestQuaternionRotation(t *testing.T) {
	// 90 degrees around Y takes +X to -Z
	q := QuaternionFromAxisAngle(Vec3Up, math32.Pi/2)
	result := q.ToMat4().MulPoint(Vec3Right)
	if !result.ApproxEqual(NewVec3(0, 0, -1), 0.001) {
		t.Errorf("Quaternion rotation: expected approximately (0,0,-1), got %v", result)
	}
}

func TestQuaternionFromEulerSingleAxis(t *testing.T) {
	q := QuaternionFromEuler(NewVec3(math32.Pi/2, 0, 0))
	got := q.ToMat4().MulPoint(Vec3Up)
	if !got.ApproxEqual(Vec3Front, 0.001) {
		t.Errorf("Euler X: expected +Z, got %v", got)
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	m := Mat4LookAt(eye, Vec3Zero, Vec3Up)

	// the eye maps to the origin of view space
	if got := m.MulPoint(eye); !got.ApproxEqual(Vec3Zero, 0.001) {
		t.Errorf("LookAt: expected eye to transform to origin, got %v", got)
	}
	// the target lies down -Z
	if got := m.MulPoint(Vec3Zero); !got.ApproxEqual(NewVec3(0, 0, -5), 0.001) {
		t.Errorf("LookAt: expected target at (0,0,-5), got %v", got)
	}
}

func TestMat4Array(t *testing.T) {
	m := Mat4Translation(NewVec3(7, 8, 9))
	a := m.Array()
	if a[12] != 7 || a[13] != 8 || a[14] != 9 {
		t.Errorf("Array: translation not in elements 12..14: %v", a)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4Identity()
	m2 := QuaternionFromAxisAngle(Vec3Up, 0.3).ToMat4()

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}
