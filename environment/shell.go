package environment

import (
	"fmt"

	"github.com/chewxy/math32"

	"bank-interior/materials"
	"bank-interior/math"
	"bank-interior/scene"
)

const (
	KindFloor   scene.Kind = "floor"
	KindWall    scene.Kind = "wall"
	KindCeiling scene.Kind = "ceiling"
	KindPlinth  scene.Kind = "plinth"
)

// Shell holds the vertical dimensions of the room.
type Shell struct {
	WallHeight    float32 `yaml:"wall_height"`
	WallThickness float32 `yaml:"wall_thickness"`
	PlinthHeight  float32 `yaml:"plinth_height"`
	PlinthDepth   float32 `yaml:"plinth_depth"`
}

func DefaultShell() Shell {
	return Shell{
		WallHeight:    7,
		WallThickness: 0.3,
		PlinthHeight:  0.15,
		PlinthDepth:   0.05,
	}
}

func (s Shell) Validate() error {
	fields := []struct {
		name string
		val  float32
	}{
		{"wall_height", s.WallHeight},
		{"wall_thickness", s.WallThickness},
		{"plinth_height", s.PlinthHeight},
		{"plinth_depth", s.PlinthDepth},
	}
	for _, f := range fields {
		if err := scene.CheckDimension(f.val); err != nil {
			return fmt.Errorf("shell %s: %w", f.name, err)
		}
	}
	return nil
}

func shellNode(kind scene.Kind, name string, g scene.Geometry, m *scene.Material, pos math.Vec3) *scene.Node {
	n := scene.NewMeshNode(name, g, m)
	n.Kind = kind
	n.SetPosition(pos)
	return n
}

// BuildShell returns the floor, the back, left and right walls, the ceiling
// and four plinths. The front (+Z) side is left open.
func BuildShell(b FloorBounds, s Shell, pal *materials.Palette) []*scene.Node {
	hw, hd := b.HalfWidth(), b.HalfDepth()

	floor := shellNode(KindFloor, "floor", scene.NewPlane(b.Width, b.Height), pal.Floor, math.Vec3Zero)
	floor.SetEuler(-math32.Pi/2, 0, 0)
	floor.ReceiveShadow = true

	wall := func(name string, g scene.Geometry, x, z float32) *scene.Node {
		n := shellNode(KindWall, name, g, pal.Wall, math.NewVec3(x, s.WallHeight/2, z))
		n.CastShadow = true
		n.ReceiveShadow = true
		return n
	}
	back := wall("wall_back", scene.NewBox(b.Width, s.WallHeight, s.WallThickness), 0, -hd)
	left := wall("wall_left", scene.NewBox(s.WallThickness, s.WallHeight, b.Height), -hw, 0)
	right := wall("wall_right", scene.NewBox(s.WallThickness, s.WallHeight, b.Height), hw, 0)

	ceiling := shellNode(KindCeiling, "ceiling", scene.NewPlane(b.Width, b.Height), pal.Ceiling, math.NewVec3(0, s.WallHeight, 0))
	ceiling.SetEuler(math32.Pi/2, 0, 0)

	plinth := func(name string, length, x, z, rotation float32) *scene.Node {
		n := shellNode(KindPlinth, name, scene.NewBox(length, s.PlinthHeight, s.PlinthDepth), pal.Black, math.NewVec3(x, s.PlinthHeight/2, z))
		if rotation != 0 {
			n.SetEuler(0, rotation, 0)
		}
		return n
	}

	return []*scene.Node{
		floor,
		back, left, right,
		ceiling,
		plinth("plinth_back", b.Width, 0, -hd, 0),
		plinth("plinth_front", b.Width, 0, hd, 0),
		plinth("plinth_left", b.Height, -hw, 0, math32.Pi/2),
		plinth("plinth_right", b.Height, hw, 0, math32.Pi/2),
	}
}
