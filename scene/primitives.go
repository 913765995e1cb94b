package scene

import (
	"github.com/chewxy/math32"

	"bank-interior/core"
	"bank-interior/math"
)

func boxMesh(width, height, depth float32) *Mesh {
	w, h, d := width/2, height/2, depth/2

	type face struct {
		normal     math.Vec3
		u, v       math.Vec3
		halfU      float32
		halfV      float32
		halfNormal float32
	}
	faces := []face{
		{math.NewVec3(1, 0, 0), math.NewVec3(0, 0, -1), math.NewVec3(0, 1, 0), d, h, w},
		{math.NewVec3(-1, 0, 0), math.NewVec3(0, 0, 1), math.NewVec3(0, 1, 0), d, h, w},
		{math.NewVec3(0, 1, 0), math.NewVec3(1, 0, 0), math.NewVec3(0, 0, -1), w, d, h},
		{math.NewVec3(0, -1, 0), math.NewVec3(1, 0, 0), math.NewVec3(0, 0, 1), w, d, h},
		{math.NewVec3(0, 0, 1), math.NewVec3(1, 0, 0), math.NewVec3(0, 1, 0), w, h, d},
		{math.NewVec3(0, 0, -1), math.NewVec3(-1, 0, 0), math.NewVec3(0, 1, 0), w, h, d},
	}

	vertices := make([]core.Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, f := range faces {
		base := uint32(len(vertices))
		center := f.normal.Mul(f.halfNormal)
		for _, c := range corners {
			pos := center.Add(f.u.Mul(c[0] * f.halfU)).Add(f.v.Mul(c[1] * f.halfV))
			vertices = append(vertices, core.Vertex{
				Position: pos,
				Normal:   f.normal,
				UV:       math.Vec2{X: (c[0] + 1) / 2, Y: (c[1] + 1) / 2},
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return CreateMeshFromData(vertices, indices)
}

// frustumMesh builds a capped, possibly tapered cylinder along Y. A zero top
// radius yields a cone.
func frustumMesh(radiusTop, radiusBottom, height float32, segments int) *Mesh {
	var vertices []core.Vertex
	var indices []uint32
	halfHeight := height / 2
	slope := (radiusBottom - radiusTop) / height

	for i := 0; i <= segments; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(segments)
		sinT, cosT := math32.Sincos(theta)
		normal := math.Vec3{X: sinT, Y: slope, Z: cosT}.Normalize()
		u := float32(i) / float32(segments)

		vertices = append(vertices,
			core.Vertex{
				Position: math.Vec3{X: sinT * radiusBottom, Y: -halfHeight, Z: cosT * radiusBottom},
				Normal:   normal,
				UV:       math.Vec2{X: u, Y: 0},
			},
			core.Vertex{
				Position: math.Vec3{X: sinT * radiusTop, Y: halfHeight, Z: cosT * radiusTop},
				Normal:   normal,
				UV:       math.Vec2{X: u, Y: 1},
			},
		)
	}
	for i := 0; i < segments; i++ {
		b := uint32(i * 2)
		indices = append(indices, b, b+2, b+3, b, b+3, b+1)
	}

	addCap := func(radius, y float32, normal math.Vec3, top bool) {
		center := uint32(len(vertices))
		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{X: 0, Y: y, Z: 0},
			Normal:   normal,
			UV:       math.Vec2{X: 0.5, Y: 0.5},
		})
		for i := 0; i <= segments; i++ {
			theta := float32(i) * 2 * math32.Pi / float32(segments)
			sinT, cosT := math32.Sincos(theta)
			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{X: sinT * radius, Y: y, Z: cosT * radius},
				Normal:   normal,
				UV:       math.Vec2{X: sinT*0.5 + 0.5, Y: cosT*0.5 + 0.5},
			})
		}
		for i := 0; i < segments; i++ {
			a := center + 1 + uint32(i)
			if top {
				indices = append(indices, center, a, a+1)
			} else {
				indices = append(indices, center, a+1, a)
			}
		}
	}
	if radiusTop > 0 {
		addCap(radiusTop, halfHeight, math.Vec3Up, true)
	}
	if radiusBottom > 0 {
		addCap(radiusBottom, -halfHeight, math.Vec3Up.Negate(), false)
	}

	return CreateMeshFromData(vertices, indices)
}

func planeMesh(width, height float32) *Mesh {
	w, h := width/2, height/2
	n := math.Vec3Front
	vertices := []core.Vertex{
		{Position: math.Vec3{X: -w, Y: -h}, Normal: n, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: w, Y: -h}, Normal: n, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: w, Y: h}, Normal: n, UV: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: -w, Y: h}, Normal: n, UV: math.Vec2{X: 0, Y: 1}},
	}
	return CreateMeshFromData(vertices, []uint32{0, 1, 2, 0, 2, 3})
}

func ringMesh(inner, outer float32, segments int) *Mesh {
	var vertices []core.Vertex
	var indices []uint32
	n := math.Vec3Front

	for i := 0; i <= segments; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(segments)
		sinT, cosT := math32.Sincos(theta)
		for _, r := range [2]float32{inner, outer} {
			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{X: cosT * r, Y: sinT * r},
				Normal:   n,
				UV:       math.Vec2{X: (cosT*r/outer + 1) / 2, Y: (sinT*r/outer + 1) / 2},
			})
		}
	}
	for i := 0; i < segments; i++ {
		in := uint32(i * 2)
		out := in + 1
		indices = append(indices, in, out, out+2, in, out+2, in+2)
	}
	return CreateMeshFromData(vertices, indices)
}

func sphereMesh(radius float32, widthSegments, heightSegments int) *Mesh {
	var vertices []core.Vertex
	var indices []uint32

	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		sinV, cosV := math32.Sincos(v * math32.Pi)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			sinU, cosU := math32.Sincos(u * 2 * math32.Pi)
			normal := math.Vec3{X: -cosU * sinV, Y: cosV, Z: sinU * sinV}
			vertices = append(vertices, core.Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
				UV:       math.Vec2{X: u, Y: 1 - v},
			})
		}
	}

	row := uint32(widthSegments + 1)
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(iy)*row + uint32(ix) + 1
			b := uint32(iy)*row + uint32(ix)
			c := uint32(iy+1)*row + uint32(ix)
			d := uint32(iy+1)*row + uint32(ix) + 1
			if iy != 0 {
				indices = append(indices, a, b, d)
			}
			if iy != heightSegments-1 {
				indices = append(indices, b, c, d)
			}
		}
	}
	return CreateMeshFromData(vertices, indices)
}
