package environment

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-interior/materials"
	"bank-interior/math"
	"bank-interior/scene"
)

func shellNamed(t *testing.T, nodes []*scene.Node, name string) *scene.Node {
	t.Helper()
	for _, n := range nodes {
		if n.Name == name {
			return n
		}
	}
	t.Fatalf("shell has no %q", name)
	return nil
}

func TestShellFollowsBounds(t *testing.T) {
	for _, b := range []FloorBounds{DefaultFloorBounds(), {Width: 40, Height: 30}, {Width: 12, Height: 60}} {
		shell := DefaultShell()
		nodes := BuildShell(b, shell, materials.Default())
		hw, hd := b.HalfWidth(), b.HalfDepth()

		floor := shellNamed(t, nodes, "floor").WorldBounds()
		assert.True(t, floor.Min.ApproxEqual(math.NewVec3(-hw, 0, -hd), 1e-4), "floor min %v", floor.Min)
		assert.True(t, floor.Max.ApproxEqual(math.NewVec3(hw, 0, hd), 1e-4), "floor max %v", floor.Max)

		back := shellNamed(t, nodes, "wall_back").WorldBounds()
		assert.InDelta(t, -hd, back.Center().Z, 1e-4)
		assert.InDelta(t, b.Width, back.Size().X, 1e-4)
		assert.InDelta(t, shell.WallHeight, back.Max.Y, 1e-4)

		left := shellNamed(t, nodes, "wall_left").WorldBounds()
		right := shellNamed(t, nodes, "wall_right").WorldBounds()
		assert.InDelta(t, -hw, left.Center().X, 1e-4)
		assert.InDelta(t, hw, right.Center().X, 1e-4)
		assert.InDelta(t, b.Height, left.Size().Z, 1e-4)

		// side plinths run the full depth after their quarter turn
		plinth := shellNamed(t, nodes, "plinth_left").WorldBounds()
		assert.InDelta(t, b.Height, plinth.Size().Z, 1e-3)
		assert.InDelta(t, shell.PlinthDepth, plinth.Size().X, 1e-3)
		assert.InDelta(t, -hw, plinth.Center().X, 1e-4)

		ceiling := shellNamed(t, nodes, "ceiling").WorldBounds()
		assert.InDelta(t, shell.WallHeight, ceiling.Center().Y, 1e-4)
	}
}

func TestShellFrontIsOpen(t *testing.T) {
	nodes := BuildShell(DefaultFloorBounds(), DefaultShell(), materials.Default())
	walls := 0
	for _, n := range nodes {
		if n.Kind == KindWall {
			walls++
			assert.NotEqual(t, "wall_front", n.Name)
			assert.True(t, n.CastShadow)
			assert.True(t, n.ReceiveShadow)
		}
	}
	assert.Equal(t, 3, walls)
	assert.True(t, shellNamed(t, nodes, "floor").ReceiveShadow)
}

func TestGridPoints(t *testing.T) {
	g := Grid{XFrom: -15, XTo: 15, XStep: 5, ZFrom: -10, ZTo: 10, ZStep: 5}
	pts := g.Points()
	require.Len(t, pts, 35)
	assert.Equal(t, [2]float32{-15, -10}, pts[0])
	assert.Equal(t, [2]float32{-15, -5}, pts[1])
	assert.Equal(t, [2]float32{15, 10}, pts[34])

	assert.Nil(t, Grid{XFrom: 1, XTo: 0, XStep: 1, ZStep: 1}.Points())
	assert.Nil(t, Grid{XTo: 4, ZTo: 4}.Points())
}

func TestGridRejectsBadRanges(t *testing.T) {
	base := Grid{XFrom: -15, XTo: 15, XStep: 5, ZFrom: -10, ZTo: 10, ZStep: 5}

	nan := base
	nan.XFrom = math32.NaN()
	assert.ErrorIs(t, nan.Validate(), scene.ErrInvalidDimension)
	assert.Nil(t, nan.Points())

	inf := base
	inf.ZTo = math32.Inf(1)
	assert.ErrorIs(t, inf.Validate(), scene.ErrInvalidDimension)

	dense := base
	dense.XFrom, dense.XTo, dense.XStep = -5000, 5000, 1e-3
	err := dense.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "points per axis")
	assert.Nil(t, dense.Xs())

	cfg := DefaultRigConfig()
	cfg.Points.Grid.ZFrom = math32.NaN()
	_, err = BuildRig(cfg, DefaultFloorBounds())
	assert.ErrorIs(t, err, scene.ErrInvalidDimension)
}

func TestShadowCoverage(t *testing.T) {
	b := DefaultFloorBounds()
	wide := scene.ShadowCamera{Left: -40, Right: 40, Top: 40, Bottom: -40}
	assert.NoError(t, CheckShadowCoverage(wide, b))

	narrow := scene.ShadowCamera{Left: -20, Right: 20, Top: 20, Bottom: -20}
	assert.ErrorIs(t, CheckShadowCoverage(narrow, b), ErrShadowFrustum)

	cfg := DefaultRigConfig()
	cfg.Key.Extent = 20
	_, err := BuildRig(cfg, b)
	assert.ErrorIs(t, err, ErrShadowFrustum)
}

func TestDefaultRig(t *testing.T) {
	rig, err := BuildRig(DefaultRigConfig(), DefaultFloorBounds())
	require.NoError(t, err)

	assert.Equal(t, float32(0.5), rig.Ambient.Intensity)
	assert.True(t, rig.Key.CastShadow)
	assert.Equal(t, 4096, rig.Key.Shadow.MapSize)
	assert.Equal(t, float32(-40), rig.Key.Shadow.Camera.Left)
	assert.False(t, rig.Fill.CastShadow)

	require.Len(t, rig.Points, 35)
	for _, l := range rig.Points {
		assert.Equal(t, scene.LightPoint, l.Type)
		assert.Equal(t, float32(6.5), l.Position.Y)
		assert.Equal(t, float32(20), l.Distance)
		assert.Equal(t, 512, l.Shadow.MapSize)
	}
	assert.Len(t, rig.Lights(), 38)
}

func TestSetup(t *testing.T) {
	s := scene.NewScene()
	cfg := DefaultConfig()
	_, err := Setup(s, cfg, materials.Default())
	require.NoError(t, err)

	assert.Equal(t, cfg.Background, s.Background)
	require.NotNil(t, s.Fog)
	assert.Equal(t, float32(50), s.Fog.Near)
	assert.Equal(t, float32(100), s.Fog.Far)
	assert.Len(t, s.LightsOf(scene.LightDirectional), 2)
	assert.Len(t, s.LightsOf(scene.LightPoint), 35)
	assert.Equal(t, 3, s.Census()[KindWall])

	cfg.Bounds.Width = 0
	_, err = Setup(scene.NewScene(), cfg, materials.Default())
	assert.ErrorIs(t, err, scene.ErrInvalidDimension)
}
