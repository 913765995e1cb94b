package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-interior/core"
	"bank-interior/math"
)

func TestClampDimension(t *testing.T) {
	assert.Equal(t, float32(2.5), ClampDimension(2.5))
	assert.Equal(t, MinDimension, ClampDimension(0))
	assert.Equal(t, MinDimension, ClampDimension(-3))
	assert.Equal(t, MinDimension, ClampDimension(math32.NaN()))
	assert.Equal(t, MinDimension, ClampDimension(math32.Inf(-1)))
	assert.Equal(t, MaxDimension, ClampDimension(math32.Inf(1)))
}

func TestCheckDimension(t *testing.T) {
	assert.NoError(t, CheckDimension(0.1))
	for _, bad := range []float32{0, -1, math32.NaN(), math32.Inf(1)} {
		err := CheckDimension(bad)
		assert.ErrorIs(t, err, ErrInvalidDimension, "value %v", bad)
	}
}

func TestGeometryConstructorsClamp(t *testing.T) {
	b := NewBox(-1, 0, math32.NaN())
	assert.Equal(t, Box{MinDimension, MinDimension, MinDimension}, b)

	c := NewCylinder(0.2, 0.1, 1, 1)
	assert.Equal(t, 3, c.Segments)

	r := NewRing(2, 1, 32)
	assert.Greater(t, r.OuterRadius, r.InnerRadius)

	s := NewSphere(1, 0, 0)
	assert.Equal(t, 3, s.WidthSegments)
	assert.Equal(t, 2, s.HeightSegments)
}

func TestGeometryMeshesMatchBounds(t *testing.T) {
	geoms := []Geometry{
		NewBox(2, 1, 0.5),
		NewCylinder(0.15, 0.12, 0.2, 16),
		NewCone(0.2, 0.4, 8),
		NewPlane(50, 35),
		NewRing(5.95, 6, 32),
		NewSphere(0.03, 8, 8),
	}
	for _, g := range geoms {
		t.Run(g.Kind().String(), func(t *testing.T) {
			mesh := g.Mesh()
			require.NotEmpty(t, mesh.Vertices)
			require.Zero(t, len(mesh.Indices)%3)
			for _, idx := range mesh.Indices {
				require.Less(t, int(idx), len(mesh.Vertices))
			}
			want := g.Bounds()
			got := mesh.LocalAABB
			// tessellation never leaves the analytic bounds
			assert.True(t, got.Min.ApproxEqual(got.Min.Max(want.Min), 1e-4), "min %v outside %v", got.Min, want.Min)
			assert.True(t, got.Max.ApproxEqual(got.Max.Min(want.Max), 1e-4), "max %v outside %v", got.Max, want.Max)
		})
	}
}

func TestBoxMeshExtents(t *testing.T) {
	mesh := NewBox(2.2, 0.15, 1.4).Mesh()
	assert.Len(t, mesh.Vertices, 24)
	assert.Equal(t, 12, mesh.TriangleCount())
	assert.True(t, mesh.LocalAABB.Max.ApproxEqual(math.NewVec3(1.1, 0.075, 0.7), 1e-6))
}

func TestGeometryIsComparable(t *testing.T) {
	cache := map[Geometry]int{}
	cache[NewBox(1, 2, 3)]++
	cache[NewBox(1, 2, 3)]++
	cache[NewCone(1, 2, 8)]++
	assert.Len(t, cache, 2)
	assert.Equal(t, 2, cache[NewBox(1, 2, 3)])
}

func TestWalkComposesTransforms(t *testing.T) {
	group := NewNode("group")
	group.SetPosition(math.NewVec3(10, 0, 5))
	group.SetRotation(math.QuaternionFromAxisAngle(math.Vec3Up, math32.Pi/2))

	leaf := NewMeshNode("leaf", NewBox(1, 1, 1), NewMaterial("m", core.ColorWhite, 1, 0))
	leaf.SetPosition(math.NewVec3(1, 2, 0))
	group.AddChild(leaf)

	var world math.Mat4
	group.Walk(func(n *Node, w math.Mat4) {
		if n == leaf {
			world = w
		}
	})
	// (1,2,0) turned a quarter about Y is (0,2,-1), then offset by the group
	got := world.MulPoint(math.Vec3Zero)
	assert.True(t, got.ApproxEqual(math.NewVec3(10, 2, 4), 1e-5), "got %v", got)
}

func TestRigidBodyComposition(t *testing.T) {
	build := func() *Node {
		g := NewNode("g")
		for i := 0; i < 3; i++ {
			c := NewMeshNode("c", NewBox(0.2, 0.2, 0.2), NewMaterial("m", core.ColorWhite, 1, 0))
			c.SetPosition(math.NewVec3(float32(i), 0.5, -float32(i)))
			g.AddChild(c)
		}
		return g
	}

	a := build()
	b := build()
	b.SetPosition(math.NewVec3(-4, 0, 7))
	b.SetEuler(0, 1.1, 0)

	offset := b.LocalMatrix()
	var worldA, worldB []math.Mat4
	a.Walk(func(_ *Node, w math.Mat4) { worldA = append(worldA, w) })
	b.Walk(func(_ *Node, w math.Mat4) { worldB = append(worldB, w) })
	require.Len(t, worldB, len(worldA))
	for i := range worldA {
		assert.True(t, worldA[i].Mul(offset).ApproxEqual(worldB[i], 1e-5), "descendant %d left behind", i)
	}
}

func TestWorldBounds(t *testing.T) {
	g := NewNode("g")
	leaf := NewMeshNode("leaf", NewBox(2, 2, 2), NewMaterial("m", core.ColorWhite, 1, 0))
	leaf.SetPosition(math.NewVec3(0, 1, 0))
	g.AddChild(leaf)
	g.SetPosition(math.NewVec3(5, 0, 0))

	b := g.WorldBounds()
	assert.True(t, b.Min.ApproxEqual(math.NewVec3(4, 0, -1), 1e-5), "min %v", b.Min)
	assert.True(t, b.Max.ApproxEqual(math.NewVec3(6, 2, 1), 1e-5), "max %v", b.Max)
	assert.True(t, NewNode("empty").WorldBounds().IsEmpty())
}

func TestFindAndCount(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	a.AddChild(NewNode("b"), NewNode("c"))
	root.AddChild(a)
	assert.Equal(t, 4, root.Count())
	assert.Equal(t, "c", root.Find("c").Name)
	assert.Nil(t, root.Find("missing"))
}

func TestCensus(t *testing.T) {
	s := NewScene()
	for _, k := range []Kind{"sofa", "sofa", "desk", ""} {
		n := NewNode(string(k))
		n.Kind = k
		s.AddNode(n)
	}
	assert.Equal(t, map[Kind]int{"sofa": 2, "desk": 1}, s.Census())
	assert.Len(t, s.FindKind("sofa"), 2)
}

func TestCameraAspectGuard(t *testing.T) {
	c := NewCamera(60, 1, 0.1, 1000)
	c.UpdateAspectRatio(1920, 1080)
	assert.InDelta(t, 1920.0/1080.0, c.AspectRatio, 1e-6)
	c.UpdateAspectRatio(800, 0)
	assert.InDelta(t, 1920.0/1080.0, c.AspectRatio, 1e-6)
}

func TestFrustumCulling(t *testing.T) {
	c := NewCamera(60, 1, 0.1, 100)
	c.Position = math.NewVec3(0, 0, 10)
	c.LookAt(math.Vec3Zero)
	f := FrustumFromVP(c.GetViewProjectionMatrix())

	inside := AABB{Min: math.NewVec3(-1, -1, -1), Max: math.NewVec3(1, 1, 1)}
	behind := AABB{Min: math.NewVec3(-1, -1, 20), Max: math.NewVec3(1, 1, 22)}
	assert.True(t, inside.IntersectsFrustum(&f))
	assert.False(t, behind.IntersectsFrustum(&f))
}

func TestShadowViewLooksAtTarget(t *testing.T) {
	l := NewDirectionalLight("key", core.ColorWhite, 1, math.NewVec3(15, 25, 10))
	view := l.ShadowView()
	got := view.MulPoint(l.Target)
	// target lies straight ahead on -Z in light space
	assert.InDelta(t, 0, got.X, 1e-4)
	assert.InDelta(t, 0, got.Y, 1e-4)
	assert.InDelta(t, -l.Position.Length(), got.Z, 1e-3)
}
