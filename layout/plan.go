// Package layout places the branch's assemblies on the floor.
package layout

import (
	"fmt"
	"sort"

	"github.com/chewxy/math32"

	"bank-interior/assembly"
	"bank-interior/environment"
	"bank-interior/scene"
)

// Plan is the complete floor plan: one placement table per assembly kind
// plus the generated light grids.
type Plan struct {
	Tables map[scene.Kind][]assembly.Placement `yaml:"tables"`

	// CeilingLights is a grid of fixtures hung at the wall height.
	CeilingLights environment.Grid `yaml:"ceiling_lights"`

	// WallLights uses its X range along the back wall and its Z range along
	// both side walls.
	WallLights      environment.Grid `yaml:"wall_lights"`
	SconceElevation float32          `yaml:"sconce_elevation"`
}

// DefaultPlan returns the branch floor plan. Fixtures that hang on a wall
// or stand against one are positioned from b.
func DefaultPlan(b environment.FloorBounds) Plan {
	hw, hd := b.HalfWidth(), b.HalfDepth()
	at := assembly.At
	pi := math32.Pi

	back, front := -hd+0.1, hd-0.1
	signZ := -hd + 0.2
	side := hw - 3

	return Plan{
		Tables: map[scene.Kind][]assembly.Placement{
			assembly.KindCarpet: {
				at(-6, -8).Sized(12, 0, 3),
				at(0, 5).Sized(20, 0, 4),
				at(-12, 0).Sized(4, 0, 6),
				at(12, 0).Sized(4, 0, 6),
			},
			assembly.KindPartition: {
				at(-6, -5),
				at(6, -5),
				at(0, 0).Rotated(pi / 2),
			},
			assembly.KindCashDesk: {
				at(-9, -8), at(-3, -8), at(3, -8), at(9, -8),
			},
			assembly.KindConsultationTable: {
				at(-12, 6), at(-4, 6), at(4, 6), at(12, 6),
			},
			assembly.KindSofa: {
				at(-14, -3), at(-14, 0), at(-14, 3),
				at(14, -3).Rotated(pi), at(14, 0).Rotated(pi), at(14, 3).Rotated(pi),
			},
			assembly.KindCoffeeTable: {
				at(-14, -1.5), at(-14, 1.5), at(14, -1.5), at(14, 1.5),
			},
			assembly.KindPlant: {
				at(-18, -10), at(-18, 10), at(18, -10), at(18, 10), at(0, -12),
			},
			assembly.KindWallScreen: {
				at(-18, back).Mounted(3.5).Sized(3, 2, 0),
				at(18, back).Mounted(3.5).Sized(3, 2, 0),
				at(0, back).Mounted(4).Sized(4, 2.5, 0),
				at(-18, front).Mounted(3.5).Rotated(pi).Sized(2.5, 1.8, 0),
				at(18, front).Mounted(3.5).Rotated(pi).Sized(2.5, 1.8, 0),
			},
			assembly.KindTerminal: {
				at(-18, 10), at(-12, 10), at(12, 10), at(18, 10),
			},
			assembly.KindReception: {
				at(0, 15),
			},
			assembly.KindSign: {
				at(0, back).Mounted(5).Sized(6, 1.5, 0),
				at(-6, signZ).Mounted(1.5).Sized(2, 0.6, 0),
				at(6, signZ).Mounted(1.5).Sized(2, 0.6, 0),
				at(-18, signZ).Mounted(2).Sized(1.5, 0.5, 0),
				at(18, signZ).Mounted(2).Sized(1.5, 0.5, 0),
			},
			assembly.KindCabinet: {
				at(-side, 0).Sized(0.8, 2, 0.6),
				at(side, 0).Sized(0.8, 2, 0.6),
			},
			assembly.KindMeetingRoom: {
				at(-side, -10).Sized(4, 0, 3),
				at(side, -10).Sized(4, 0, 3),
			},
			assembly.KindDoorway: {
				at(0, hd-0.5).Sized(2, 2.5, 0),
			},
		},
		CeilingLights:   environment.Grid{XFrom: -20, XTo: 20, XStep: 8, ZFrom: -12, ZTo: 12, ZStep: 6},
		WallLights:      environment.Grid{XFrom: -12, XTo: 12, XStep: 8, ZFrom: -12, ZTo: 12, ZStep: 8},
		SconceElevation: assembly.DefaultSconceElevation,
	}
}

// Kinds returns the kinds that have a table, sorted.
func (p Plan) Kinds() []scene.Kind {
	out := make([]scene.Kind, 0, len(p.Tables))
	for k := range p.Tables {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func knownKind(k scene.Kind) bool {
	for _, known := range assembly.Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Validate checks every table entry and both grids.
func (p Plan) Validate() error {
	for _, kind := range p.Kinds() {
		if !knownKind(kind) {
			return fmt.Errorf("layout: %w %q", assembly.ErrUnknownKind, kind)
		}
		for i, pl := range p.Tables[kind] {
			if err := pl.Validate(); err != nil {
				return fmt.Errorf("layout: %s[%d]: %w", kind, i, err)
			}
		}
	}
	if err := p.CeilingLights.Validate(); err != nil {
		return fmt.Errorf("layout: ceiling_lights: %w", err)
	}
	if err := p.WallLights.Validate(); err != nil {
		return fmt.Errorf("layout: wall_lights: %w", err)
	}
	if err := scene.CheckDimension(p.SconceElevation); err != nil {
		return fmt.Errorf("layout: sconce_elevation: %w", err)
	}
	return nil
}
