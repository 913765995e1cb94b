package core

import (
	"github.com/chewxy/math32"

	"bank-interior/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// ColorHex converts a 0xRRGGBB literal to an opaque Color.
func ColorHex(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xff) / 255,
		G: float32((hex>>8)&0xff) / 255,
		B: float32(hex&0xff) / 255,
		A: 1,
	}
}

// Hex is the inverse of ColorHex; alpha is ignored.
func (c Color) Hex() uint32 {
	to8 := func(v float32) uint32 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint32(v*255 + 0.5)
	}
	return to8(c.R)<<16 | to8(c.G)<<8 | to8(c.B)
}

// Linear decodes the sRGB channels; alpha is kept as is.
func (c Color) Linear() Color {
	return Color{srgbToLinear(c.R), srgbToLinear(c.G), srgbToLinear(c.B), c.A}
}

func srgbToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math32.Pow((c+0.055)/1.055, 2.4)
}

func (c Color) Vec3() math.Vec3 {
	return math.Vec3{X: c.R, Y: c.G, Z: c.B}
}

type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
}

type Transform struct {
	Position math.Vec3
	Rotation math.Quaternion
	Scale    math.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: math.Vec3Zero,
		Rotation: math.QuaternionIdentity(),
		Scale:    math.Vec3One,
	}
}

// GetMatrix returns the local matrix: scale, then rotation, then translation.
func (t Transform) GetMatrix() math.Mat4 {
	return math.Mat4Compose(t.Position, t.Rotation, t.Scale)
}
