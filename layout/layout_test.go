package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"bank-interior/assembly"
	"bank-interior/environment"
	"bank-interior/materials"
	"bank-interior/scene"
)

func buildDefault(t *testing.T) *scene.Scene {
	t.Helper()
	env := environment.DefaultConfig()
	s, err := Build(DefaultPlan(env.Bounds), env, materials.Default())
	require.NoError(t, err)
	return s
}

func TestDefaultCensus(t *testing.T) {
	census := buildDefault(t).Census()

	want := map[scene.Kind]int{
		assembly.KindCashDesk:          4,
		assembly.KindConsultationTable: 4,
		assembly.KindSofa:              6,
		assembly.KindCoffeeTable:       4,
		assembly.KindPlant:             5,
		assembly.KindWallScreen:        5,
		assembly.KindTerminal:          4,
		assembly.KindReception:         1,
		assembly.KindSign:              5,
		assembly.KindCabinet:           2,
		assembly.KindMeetingRoom:       2,
		assembly.KindDoorway:           1,
		assembly.KindPartition:         3,
		assembly.KindCarpet:            4,
		assembly.KindCeilingLight:      30,
		assembly.KindWallLight:         12,
		environment.KindFloor:          1,
		environment.KindWall:           3,
		environment.KindCeiling:        1,
		environment.KindPlinth:         4,
	}
	assert.Equal(t, want, census)

	// chairs only exist inside desks, tables and meeting rooms
	assert.Zero(t, census[assembly.KindChair])
}

func TestBuildIsDeterministic(t *testing.T) {
	assert.Equal(t, buildDefault(t), buildDefault(t))
}

func TestCarpetsFollowTheShell(t *testing.T) {
	root := buildDefault(t).Root
	shell := len(environment.BuildShell(environment.DefaultFloorBounds(), environment.DefaultShell(), materials.Default()))

	for i, n := range root.Children {
		switch {
		case i < shell:
			assert.NotEqual(t, assembly.KindCarpet, n.Kind)
		case i < shell+4:
			assert.Equal(t, assembly.KindCarpet, n.Kind)
		default:
			assert.NotEqual(t, assembly.KindCarpet, n.Kind, "child %d", i)
		}
	}
}

func TestFixturesFollowBounds(t *testing.T) {
	b := environment.FloorBounds{Width: 60, Height: 40}
	plan := DefaultPlan(b)

	for _, p := range plan.Tables[assembly.KindCabinet] {
		assert.InDelta(t, 27, abs(p.X), 1e-5)
	}
	assert.InDelta(t, 19.5, plan.Tables[assembly.KindDoorway][0].Z, 1e-5)
	assert.InDelta(t, -19.9, plan.Tables[assembly.KindWallScreen][0].Z, 1e-5)

	sconces := wallLights(plan, b, environment.DefaultShell())
	require.Len(t, sconces, 12)
	assert.InDelta(t, -19.85, sconces[0].Z, 1e-5)
	assert.InDelta(t, -29.85, sconces[4].X, 1e-5)
	assert.InDelta(t, 29.85, sconces[5].X, 1e-5)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestCeilingLightsHangAtWallHeight(t *testing.T) {
	env := environment.DefaultConfig()
	env.Shell.WallHeight = 9
	s, err := Build(DefaultPlan(env.Bounds), env, materials.Default())
	require.NoError(t, err)

	lights := s.FindKind(assembly.KindCeilingLight)
	require.Len(t, lights, 30)
	for _, n := range lights {
		assert.Equal(t, float32(9), n.Transform.Position.Y)
	}
}

func TestYAMLReplacesTables(t *testing.T) {
	plan := DefaultPlan(environment.DefaultFloorBounds())
	doc := `
tables:
  cash_desk:
    - {x: -4, z: -8}
    - {x: 4, z: -8}
ceiling_lights:
  x_step: 10
`
	require.NoError(t, yaml.Unmarshal([]byte(doc), &plan))
	require.NoError(t, plan.Validate())

	assert.Len(t, plan.Tables[assembly.KindCashDesk], 2)
	assert.Len(t, plan.Tables[assembly.KindSofa], 6)
	assert.Len(t, plan.CeilingLights.Points(), 25)

	env := environment.DefaultConfig()
	s, err := Build(plan, env, materials.Default())
	require.NoError(t, err)
	assert.Equal(t, 2, s.Census()[assembly.KindCashDesk])
}

func TestValidateRejectsBadTables(t *testing.T) {
	plan := DefaultPlan(environment.DefaultFloorBounds())
	plan.Tables[assembly.KindCashDesk][1].Width = -2
	err := plan.Validate()
	assert.ErrorIs(t, err, scene.ErrInvalidDimension)
	assert.Contains(t, err.Error(), "cash_desk[1]: width")

	plan = DefaultPlan(environment.DefaultFloorBounds())
	plan.Tables["vault"] = []assembly.Placement{assembly.At(0, 0)}
	assert.ErrorIs(t, plan.Validate(), assembly.ErrUnknownKind)

	plan = DefaultPlan(environment.DefaultFloorBounds())
	plan.WallLights.XStep = 0
	_, err = Build(plan, environment.DefaultConfig(), materials.Default())
	assert.ErrorIs(t, err, scene.ErrInvalidDimension)

	plan = DefaultPlan(environment.DefaultFloorBounds())
	require.NoError(t, yaml.Unmarshal([]byte("ceiling_lights: {x_from: .nan}"), &plan))
	err = plan.Validate()
	assert.ErrorIs(t, err, scene.ErrInvalidDimension)
	assert.Contains(t, err.Error(), "ceiling_lights: grid x_from")
	_, err = Build(plan, environment.DefaultConfig(), materials.Default())
	assert.ErrorIs(t, err, scene.ErrInvalidDimension)

	plan = DefaultPlan(environment.DefaultFloorBounds())
	plan.WallLights.ZFrom, plan.WallLights.ZTo, plan.WallLights.ZStep = -9000, 9000, 0.01
	assert.ErrorContains(t, plan.Validate(), "points per axis")
}
