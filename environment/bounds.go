package environment

import (
	"fmt"

	"github.com/chewxy/math32"

	"bank-interior/scene"
)

// FloorBounds is the room footprint centred on the origin. Height is the
// extent along Z. Walls, plinths and the ceiling all derive from it.
type FloorBounds struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

func DefaultFloorBounds() FloorBounds {
	return FloorBounds{Width: 50, Height: 35}
}

func (b FloorBounds) Validate() error {
	if err := scene.CheckDimension(b.Width); err != nil {
		return fmt.Errorf("floor width: %w", err)
	}
	if err := scene.CheckDimension(b.Height); err != nil {
		return fmt.Errorf("floor height: %w", err)
	}
	return nil
}

func (b FloorBounds) HalfWidth() float32 { return b.Width / 2 }
func (b FloorBounds) HalfDepth() float32 { return b.Height / 2 }

// Grid is an inclusive range of floor positions with fixed strides.
type Grid struct {
	XFrom float32 `yaml:"x_from"`
	XTo   float32 `yaml:"x_to"`
	XStep float32 `yaml:"x_step"`
	ZFrom float32 `yaml:"z_from"`
	ZTo   float32 `yaml:"z_to"`
	ZStep float32 `yaml:"z_step"`
}

// maxGridPoints caps each axis of a Grid.
const maxGridPoints = 1024

func (g Grid) Validate() error {
	for _, v := range []struct {
		name string
		val  float32
	}{{"x_step", g.XStep}, {"z_step", g.ZStep}} {
		if err := scene.CheckDimension(v.val); err != nil {
			return fmt.Errorf("grid %s: %w", v.name, err)
		}
	}
	for _, v := range []struct {
		name string
		val  float32
	}{{"x_from", g.XFrom}, {"x_to", g.XTo}, {"z_from", g.ZFrom}, {"z_to", g.ZTo}} {
		if math32.IsNaN(v.val) || v.val > scene.MaxDimension || v.val < -scene.MaxDimension {
			return fmt.Errorf("grid %s: %w %v", v.name, scene.ErrInvalidDimension, v.val)
		}
	}
	if g.XTo < g.XFrom || g.ZTo < g.ZFrom {
		return fmt.Errorf("grid: empty range x[%v,%v] z[%v,%v]", g.XFrom, g.XTo, g.ZFrom, g.ZTo)
	}
	if (g.XTo-g.XFrom)/g.XStep >= maxGridPoints || (g.ZTo-g.ZFrom)/g.ZStep >= maxGridPoints {
		return fmt.Errorf("grid: more than %d points per axis", maxGridPoints)
	}
	return nil
}

func axis(from, to, step float32) []float32 {
	// tolerate float drift at the inclusive end
	n := int(math32.Floor((to-from)/step+1e-4)) + 1
	out := make([]float32, n)
	for i := range out {
		out[i] = from + float32(i)*step
	}
	return out
}

// Xs returns the grid columns. An invalid grid has none.
func (g Grid) Xs() []float32 {
	if g.Validate() != nil {
		return nil
	}
	return axis(g.XFrom, g.XTo, g.XStep)
}

// Zs returns the grid rows. An invalid grid has none.
func (g Grid) Zs() []float32 {
	if g.Validate() != nil {
		return nil
	}
	return axis(g.ZFrom, g.ZTo, g.ZStep)
}

// Points returns X-major grid positions as (x, z) pairs.
func (g Grid) Points() [][2]float32 {
	xs, zs := g.Xs(), g.Zs()
	if len(xs) == 0 || len(zs) == 0 {
		return nil
	}
	out := make([][2]float32, 0, len(xs)*len(zs))
	for _, x := range xs {
		for _, z := range zs {
			out = append(out, [2]float32{x, z})
		}
	}
	return out
}
