package assembly

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-interior/materials"
	"bank-interior/math"
	"bank-interior/scene"
)

func newTestBuilder() *Builder {
	return NewBuilder(materials.Default())
}

func childNamed(t *testing.T, n *scene.Node, name string) *scene.Node {
	t.Helper()
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("%s has no child %q", n.Name, name)
	return nil
}

func worldPosition(root, target *scene.Node) math.Vec3 {
	var out math.Vec3
	root.Walk(func(n *scene.Node, world math.Mat4) {
		if n == target {
			out = world.Translation()
		}
	})
	return out
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	b := newTestBuilder()
	p := Placement{X: 3, Z: -2, RotationY: 0.5}
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			first, err := b.Generate(kind, p)
			require.NoError(t, err)
			second, err := b.Generate(kind, p)
			require.NoError(t, err)

			assert.Equal(t, first, second)
			assert.Equal(t, kind, first.Kind)
			assert.NotEmpty(t, first.Children)
		})
	}
}

func TestPlacementOnlyMovesTheRoot(t *testing.T) {
	b := newTestBuilder()
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			here, _ := b.Generate(kind, At(0, 0))
			there, _ := b.Generate(kind, Placement{X: -14, Z: 3, RotationY: math32.Pi})

			// sub-part offsets are independent of where the assembly goes
			assert.Equal(t, here.Children, there.Children)
			assert.NotEqual(t, here.Transform, there.Transform)
		})
	}
}

func TestRotatedAssemblyMovesRigidly(t *testing.T) {
	b := newTestBuilder()
	desk := b.CashDesk(At(9, -8).Rotated(math32.Pi / 2))
	chair := childNamed(t, desk, string(KindChair))

	// chair sits 0.8 behind the desk; a quarter turn swings it onto -X
	got := worldPosition(desk, chair)
	assert.True(t, got.ApproxEqual(math.NewVec3(9-0.8, 0, -8), 1e-5), "got %v", got)
}

func TestUnknownKind(t *testing.T) {
	_, err := newTestBuilder().Generate("vault", At(0, 0))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestCashDeskEmbedsChair(t *testing.T) {
	desk := newTestBuilder().CashDesk(At(-9, -8))
	chair := childNamed(t, desk, string(KindChair))
	assert.Equal(t, KindChair, chair.Kind)
	assert.Equal(t, math.NewVec3(0, 0, -0.8), chair.Transform.Position)

	got := worldPosition(desk, chair)
	assert.True(t, got.ApproxEqual(math.NewVec3(-9, 0, -8.8), 1e-5), "got %v", got)
}

func TestOfficeChairWheels(t *testing.T) {
	chair := newTestBuilder().OfficeChair(At(0, 0))
	wheels := 0
	for _, c := range chair.Children {
		if c.Name == "wheel" {
			wheels++
			r := math32.Hypot(c.Transform.Position.X, c.Transform.Position.Z)
			assert.InDelta(t, 0.12, r, 1e-5)
		}
	}
	assert.Equal(t, 5, wheels)
}

func TestMeetingRoomChairs(t *testing.T) {
	room := newTestBuilder().MeetingRoom(At(22, -10))
	var chairs []math.Vec3
	for _, c := range room.Children {
		if c.Kind == KindChair {
			chairs = append(chairs, c.Transform.Position)
		}
	}
	require.Len(t, chairs, 4)
	assert.Contains(t, chairs, math.NewVec3(-1, 0, -0.6))
	assert.Contains(t, chairs, math.NewVec3(1, 0, 0.6))

	glass := childNamed(t, room, "glass_back")
	assert.True(t, glass.Material.Transparent)
	assert.Equal(t, scene.NewBox(4, 2.5, 0.05), glass.Geometry)
}

func TestConsultationTable(t *testing.T) {
	table := newTestBuilder().ConsultationTable(At(-12, 6))
	legs, chairs := 0, 0
	for _, c := range table.Children {
		switch {
		case c.Name == "leg":
			legs++
		case c.Kind == KindChair:
			chairs++
		}
	}
	assert.Equal(t, 4, legs)
	assert.Equal(t, 2, chairs)
	assert.True(t, childNamed(t, table, "tablet_screen").Material.IsEmissive())
}

func TestSizeOverrides(t *testing.T) {
	b := newTestBuilder()

	screen := b.WallScreen(Placement{X: 0, Z: -17.4, Elevation: 4, Width: 4, Height: 2.5})
	assert.Equal(t, scene.NewBox(4, 2.5, 0.08), childNamed(t, screen, "display").Geometry)
	assert.Equal(t, float32(4), screen.Transform.Position.Y)

	def := b.WallScreen(At(0, 0))
	assert.Equal(t, scene.NewBox(2.5, 1.5, 0.08), childNamed(t, def, "display").Geometry)
	assert.Equal(t, float32(DefaultScreenElevation), def.Transform.Position.Y)

	cab := b.Cabinet(At(22, 0))
	body := childNamed(t, cab, "body")
	assert.Equal(t, scene.NewBox(0.8, 2, 0.6), body.Geometry)
	assert.Equal(t, float32(1), body.Transform.Position.Y)
	assert.True(t, body.CastShadow && body.ReceiveShadow)
}

func TestDegenerateSizesAreClamped(t *testing.T) {
	b := newTestBuilder()
	cab := b.Cabinet(Placement{Width: -2, Height: math32.NaN(), Depth: math32.Inf(1)})
	body := childNamed(t, cab, "body").Geometry.(scene.Box)
	assert.Equal(t, scene.MinDimension, body.Width)
	assert.Equal(t, scene.MinDimension, body.Height)
	assert.Equal(t, scene.MaxDimension, body.Depth)

	// a sign narrower than its lettering margin still yields a valid band
	sign := b.Sign(Placement{Width: 0.1, Height: 0.2})
	band := childNamed(t, sign, "band").Geometry.(scene.Box)
	assert.Equal(t, scene.MinDimension, band.Width)
}

func TestCeilingFixturesHangFromAnchor(t *testing.T) {
	b := newTestBuilder()
	lamp := b.CeilingLight(At(-20, -12))
	assert.Equal(t, math.NewVec3(-20, DefaultCeilingHeight, -12), lamp.Transform.Position)
	bounds := lamp.WorldBounds()
	assert.InDelta(t, DefaultCeilingHeight, bounds.Max.Y, 1e-5)
	assert.Less(t, bounds.Min.Y, float32(DefaultCeilingHeight))

	low := b.CeilingLight(At(0, 0).Mounted(4))
	assert.Equal(t, float32(4), low.Transform.Position.Y)
}

func TestCarpetLayering(t *testing.T) {
	carpet := newTestBuilder().Carpet(Placement{X: -6, Z: -8, Width: 12, Depth: 3})
	rug := childNamed(t, carpet, "rug")
	border := childNamed(t, carpet, "border")

	assert.Greater(t, rug.Transform.Position.Y, float32(0))
	assert.Greater(t, border.Transform.Position.Y, rug.Transform.Position.Y)
	assert.Equal(t, scene.NewRing(5.95, 6, 32), border.Geometry)

	// the decal lies flat: its plane normal points up
	normal := rug.Transform.Rotation.ToMat4().MulPoint(math.Vec3Front)
	assert.True(t, normal.ApproxEqual(math.Vec3Up, 1e-5), "normal %v", normal)
}

func TestGeneratorsShareMaterials(t *testing.T) {
	pal := materials.Default()
	b := NewBuilder(pal)
	for _, kind := range Kinds() {
		_, err := b.Generate(kind, At(1, 1))
		require.NoError(t, err)
	}
	desk := b.CashDesk(At(0, 0))
	assert.Same(t, pal.Black, childNamed(t, desk, "base").Material)
	assert.Same(t, pal.Red, childNamed(t, desk, "accent").Material)

	// generation never writes to shared descriptors
	assert.Equal(t, materials.Default(), pal)
}

func TestPlacementValidate(t *testing.T) {
	assert.NoError(t, At(3, 4).Validate())
	assert.NoError(t, Placement{Width: 2, Height: 1}.Validate())

	err := Placement{Width: -1}.Validate()
	assert.ErrorIs(t, err, scene.ErrInvalidDimension)
	assert.Contains(t, err.Error(), "width")

	assert.Error(t, Placement{X: math32.NaN()}.Validate())
	assert.Error(t, Placement{RotationY: math32.Inf(1)}.Validate())
}
