package scene

import (
	"github.com/chewxy/math32"

	"bank-interior/math"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

// EmptyAABB is inverted so that the first Extend sets both corners.
func EmptyAABB() AABB {
	inf := math32.Inf(1)
	return AABB{
		Min: math.Vec3{X: inf, Y: inf, Z: inf},
		Max: math.Vec3{X: -inf, Y: -inf, Z: -inf},
	}
}

func (box AABB) IsEmpty() bool {
	return box.Min.X > box.Max.X || box.Min.Y > box.Max.Y || box.Min.Z > box.Max.Z
}

func (box AABB) ExtendPoint(p math.Vec3) AABB {
	return AABB{Min: box.Min.Min(p), Max: box.Max.Max(p)}
}

func (box AABB) Union(other AABB) AABB {
	if other.IsEmpty() {
		return box
	}
	return AABB{Min: box.Min.Min(other.Min), Max: box.Max.Max(other.Max)}
}

func (box AABB) Center() math.Vec3 {
	return box.Min.Add(box.Max).Mul(0.5)
}

func (box AABB) Size() math.Vec3 {
	return box.Max.Sub(box.Min)
}

// Transform returns the AABB enclosing all 8 transformed corners.
func (box AABB) Transform(m math.Mat4) AABB {
	if box.IsEmpty() {
		return box
	}
	mn, mx := box.Min, box.Max
	out := EmptyAABB()
	for i := 0; i < 8; i++ {
		c := mn
		if i&1 != 0 {
			c.X = mx.X
		}
		if i&2 != 0 {
			c.Y = mx.Y
		}
		if i&4 != 0 {
			c.Z = mx.Z
		}
		out = out.ExtendPoint(m.MulPoint(c))
	}
	return out
}

// ClipPlane is a half-space with Normal pointing inside.
type ClipPlane struct {
	Normal math.Vec3
	D      float32
}

func (p ClipPlane) DistanceTo(pt math.Vec3) float32 {
	return p.Normal.Dot(pt) + p.D
}

// Frustum holds the six clip planes of a view frustum.
type Frustum struct {
	Planes [6]ClipPlane // Left, Right, Bottom, Top, Near, Far
}

// FrustumFromVP extracts normalized planes from a row-vector view-projection
// matrix. Clip-space row i of the column-vector form is column i here.
func FrustumFromVP(vp math.Mat4) Frustum {
	col := func(i int) math.Vec4 {
		return math.Vec4{X: vp[0][i], Y: vp[1][i], Z: vp[2][i], W: vp[3][i]}
	}
	r0, r1, r2, r3 := col(0), col(1), col(2), col(3)

	var f Frustum
	f.Planes[0] = normalizePlane(r3.X+r0.X, r3.Y+r0.Y, r3.Z+r0.Z, r3.W+r0.W)
	f.Planes[1] = normalizePlane(r3.X-r0.X, r3.Y-r0.Y, r3.Z-r0.Z, r3.W-r0.W)
	f.Planes[2] = normalizePlane(r3.X+r1.X, r3.Y+r1.Y, r3.Z+r1.Z, r3.W+r1.W)
	f.Planes[3] = normalizePlane(r3.X-r1.X, r3.Y-r1.Y, r3.Z-r1.Z, r3.W-r1.W)
	f.Planes[4] = normalizePlane(r3.X+r2.X, r3.Y+r2.Y, r3.Z+r2.Z, r3.W+r2.W)
	f.Planes[5] = normalizePlane(r3.X-r2.X, r3.Y-r2.Y, r3.Z-r2.Z, r3.W-r2.W)
	return f
}

func normalizePlane(a, b, c, d float32) ClipPlane {
	l := math.Vec3{X: a, Y: b, Z: c}.Length()
	if l == 0 {
		return ClipPlane{}
	}
	return ClipPlane{Normal: math.Vec3{X: a / l, Y: b / l, Z: c / l}, D: d / l}
}

// IntersectsFrustum returns false if the AABB is completely outside the frustum.
func (box AABB) IntersectsFrustum(f *Frustum) bool {
	for i := 0; i < 6; i++ {
		p := f.Planes[i]
		// positive vertex: the corner furthest along the plane normal
		pv := box.Max
		if p.Normal.X < 0 {
			pv.X = box.Min.X
		}
		if p.Normal.Y < 0 {
			pv.Y = box.Min.Y
		}
		if p.Normal.Z < 0 {
			pv.Z = box.Min.Z
		}
		if p.DistanceTo(pv) < 0 {
			return false
		}
	}
	return true
}
