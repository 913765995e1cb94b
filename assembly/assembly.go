// Package assembly builds the furniture and fixtures of the branch interior.
//
// Every generator is a pure function of its Placement: it returns one
// composite node whose origin is the documented anchor of the assembly, with
// all parts at fixed offsets from that anchor. Nothing is attached to a
// scene; the caller decides where the node goes.
package assembly

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chewxy/math32"

	"bank-interior/materials"
	"bank-interior/math"
	"bank-interior/scene"
)

// Placement positions an assembly on the floor plan. Y is implicit: floor
// standing assemblies sit on the floor and wall or ceiling mounted ones use
// Elevation, falling back to their own default when it is zero. Zero size
// fields select the assembly's default size.
type Placement struct {
	X         float32 `yaml:"x"`
	Z         float32 `yaml:"z"`
	Elevation float32 `yaml:"elevation,omitempty"`
	RotationY float32 `yaml:"rotation,omitempty"`

	Width  float32 `yaml:"width,omitempty"`
	Height float32 `yaml:"height,omitempty"`
	Depth  float32 `yaml:"depth,omitempty"`
}

// At is shorthand for a floor placement without rotation.
func At(x, z float32) Placement {
	return Placement{X: x, Z: z}
}

// Rotated returns a copy of p turned about the vertical axis.
func (p Placement) Rotated(rotationY float32) Placement {
	p.RotationY = rotationY
	return p
}

// Sized returns a copy of p with size overrides.
func (p Placement) Sized(width, height, depth float32) Placement {
	p.Width, p.Height, p.Depth = width, height, depth
	return p
}

// Mounted returns a copy of p at the given anchor height.
func (p Placement) Mounted(elevation float32) Placement {
	p.Elevation = elevation
	return p
}

// Validate rejects non-finite values and negative sizes. Zero sizes are
// allowed and mean "default".
func (p Placement) Validate() error {
	fields := []struct {
		name  string
		value float32
		size  bool
	}{
		{"x", p.X, false},
		{"z", p.Z, false},
		{"elevation", p.Elevation, false},
		{"rotation", p.RotationY, false},
		{"width", p.Width, true},
		{"height", p.Height, true},
		{"depth", p.Depth, true},
	}
	for _, f := range fields {
		if f.size && f.value == 0 {
			continue
		}
		if f.size {
			if err := scene.CheckDimension(f.value); err != nil {
				return fmt.Errorf("%s: %w", f.name, err)
			}
			continue
		}
		if math32.IsNaN(f.value) || f.value > scene.MaxDimension || f.value < -scene.MaxDimension {
			return fmt.Errorf("%s: %w %v", f.name, scene.ErrInvalidDimension, f.value)
		}
	}
	return nil
}

func pick(override, def float32) float32 {
	if override == 0 {
		return def
	}
	return scene.ClampDimension(override)
}

// Assembly kinds. They double as the names used in layout files.
const (
	KindChair             scene.Kind = "chair"
	KindCashDesk          scene.Kind = "cash_desk"
	KindConsultationTable scene.Kind = "consultation_table"
	KindSofa              scene.Kind = "sofa"
	KindCoffeeTable       scene.Kind = "coffee_table"
	KindPlant             scene.Kind = "plant"
	KindWallScreen        scene.Kind = "wall_screen"
	KindTerminal          scene.Kind = "terminal"
	KindReception         scene.Kind = "reception"
	KindSign              scene.Kind = "sign"
	KindCabinet           scene.Kind = "cabinet"
	KindMeetingRoom       scene.Kind = "meeting_room"
	KindDoorway           scene.Kind = "doorway"
	KindCeilingLight      scene.Kind = "ceiling_light"
	KindWallLight         scene.Kind = "wall_light"
	KindPartition         scene.Kind = "partition"
	KindCarpet            scene.Kind = "carpet"
)

var ErrUnknownKind = errors.New("unknown assembly kind")

// Builder holds the shared palette every generator draws from.
type Builder struct {
	Palette *materials.Palette
}

func NewBuilder(palette *materials.Palette) *Builder {
	return &Builder{Palette: palette}
}

type generator func(b *Builder, p Placement) *scene.Node

var generators = map[scene.Kind]generator{
	KindChair:             (*Builder).OfficeChair,
	KindCashDesk:          (*Builder).CashDesk,
	KindConsultationTable: (*Builder).ConsultationTable,
	KindSofa:              (*Builder).Sofa,
	KindCoffeeTable:       (*Builder).CoffeeTable,
	KindPlant:             (*Builder).Plant,
	KindWallScreen:        (*Builder).WallScreen,
	KindTerminal:          (*Builder).Terminal,
	KindReception:         (*Builder).Reception,
	KindSign:              (*Builder).Sign,
	KindCabinet:           (*Builder).Cabinet,
	KindMeetingRoom:       (*Builder).MeetingRoom,
	KindDoorway:           (*Builder).Doorway,
	KindCeilingLight:      (*Builder).CeilingLight,
	KindWallLight:         (*Builder).WallLight,
	KindPartition:         (*Builder).Partition,
	KindCarpet:            (*Builder).Carpet,
}

// Kinds lists every generator kind in sorted order.
func Kinds() []scene.Kind {
	out := make([]scene.Kind, 0, len(generators))
	for k := range generators {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Generate dispatches to the generator for kind.
func (b *Builder) Generate(kind scene.Kind, p Placement) (*scene.Node, error) {
	gen, ok := generators[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	return gen(b, p), nil
}

// group creates the assembly root and places it.
func group(kind scene.Kind, p Placement, y float32) *scene.Node {
	n := scene.NewNode(string(kind))
	n.Kind = kind
	n.SetPosition(math.NewVec3(p.X, y, p.Z))
	if p.RotationY != 0 {
		n.SetRotation(math.QuaternionFromAxisAngle(math.Vec3Up, p.RotationY))
	}
	return n
}

// part is a drawable child at a fixed offset from its assembly anchor.
func part(name string, g scene.Geometry, m *scene.Material, x, y, z float32) *scene.Node {
	n := scene.NewMeshNode(name, g, m)
	n.SetPosition(math.NewVec3(x, y, z))
	return n
}

// solid is a part that casts shadows.
func solid(name string, g scene.Geometry, m *scene.Material, x, y, z float32) *scene.Node {
	n := part(name, g, m, x, y, z)
	n.CastShadow = true
	return n
}

func tilted(n *scene.Node, x, y, z float32) *scene.Node {
	n.SetEuler(x, y, z)
	return n
}

func box(w, h, d float32) scene.Box { return scene.NewBox(w, h, d) }

func cylinder(r, h float32, segments int) scene.Cylinder {
	return scene.NewCylinder(r, r, h, segments)
}
