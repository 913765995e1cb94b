package layout

import (
	"github.com/chewxy/math32"

	"bank-interior/assembly"
	"bank-interior/environment"
	"bank-interior/materials"
	"bank-interior/scene"
)

// Build creates a scene from the plan. The room shell and lights go in
// first, then the carpets that lie on the floor, then every other table in
// kind order, then the light fixtures.
func Build(plan Plan, env environment.Config, pal *materials.Palette) (*scene.Scene, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	s := scene.NewScene()
	if _, err := environment.Setup(s, env, pal); err != nil {
		return nil, err
	}

	b := assembly.NewBuilder(pal)
	place := func(kind scene.Kind, placements []assembly.Placement) error {
		for _, p := range placements {
			n, err := b.Generate(kind, p)
			if err != nil {
				return err
			}
			s.AddNode(n)
		}
		return nil
	}

	if err := place(assembly.KindCarpet, plan.Tables[assembly.KindCarpet]); err != nil {
		return nil, err
	}
	for _, kind := range plan.Kinds() {
		if kind == assembly.KindCarpet {
			continue
		}
		if err := place(kind, plan.Tables[kind]); err != nil {
			return nil, err
		}
	}

	if err := place(assembly.KindCeilingLight, ceilingLights(plan, env.Shell)); err != nil {
		return nil, err
	}
	if err := place(assembly.KindWallLight, wallLights(plan, env.Bounds, env.Shell)); err != nil {
		return nil, err
	}
	return s, nil
}

func ceilingLights(plan Plan, shell environment.Shell) []assembly.Placement {
	var out []assembly.Placement
	for _, xz := range plan.CeilingLights.Points() {
		out = append(out, assembly.At(xz[0], xz[1]).Mounted(shell.WallHeight))
	}
	return out
}

// wallLights puts sconces on the inner faces of the back and side walls,
// each turned to face into the room.
func wallLights(plan Plan, b environment.FloorBounds, shell environment.Shell) []assembly.Placement {
	g := plan.WallLights
	inset := shell.WallThickness / 2
	backZ := -b.HalfDepth() + inset
	sideX := b.HalfWidth() - inset

	var out []assembly.Placement
	for _, x := range g.Xs() {
		out = append(out, assembly.At(x, backZ).Mounted(plan.SconceElevation))
	}
	for _, z := range g.Zs() {
		out = append(out,
			assembly.At(-sideX, z).Mounted(plan.SconceElevation).Rotated(math32.Pi/2),
			assembly.At(sideX, z).Mounted(plan.SconceElevation).Rotated(-math32.Pi/2),
		)
	}
	return out
}
