package scene

import (
	"fmt"

	"bank-interior/core"
	"bank-interior/math"
)

type LightType int

const (
	LightAmbient LightType = iota
	LightDirectional
	LightPoint
)

func (t LightType) String() string {
	switch t {
	case LightAmbient:
		return "ambient"
	case LightDirectional:
		return "directional"
	case LightPoint:
		return "point"
	}
	return fmt.Sprintf("LightType(%d)", int(t))
}

// ShadowCamera is the orthographic volume of a directional shadow, in light
// space.
type ShadowCamera struct {
	Left, Right, Top, Bottom float32
	Near, Far                float32
}

type Shadow struct {
	MapSize    int
	Bias       float32
	NormalBias float32
	Camera     ShadowCamera
}

type Light struct {
	Name      string
	Type      LightType
	Color     core.Color
	Intensity float32

	// Position is ignored for ambient lights. Directional lights shine from
	// Position towards Target.
	Position math.Vec3
	Target   math.Vec3

	// Distance is the point light cut-off range; 0 means unlimited.
	Distance float32
	Decay    float32

	CastShadow bool
	Shadow     Shadow
}

func NewAmbientLight(color core.Color, intensity float32) *Light {
	return &Light{Name: "ambient", Type: LightAmbient, Color: color, Intensity: intensity}
}

func NewDirectionalLight(name string, color core.Color, intensity float32, position math.Vec3) *Light {
	return &Light{
		Name:      name,
		Type:      LightDirectional,
		Color:     color,
		Intensity: intensity,
		Position:  position,
		Target:    math.Vec3Zero,
	}
}

func NewPointLight(name string, color core.Color, intensity, distance float32, position math.Vec3) *Light {
	return &Light{
		Name:      name,
		Type:      LightPoint,
		Color:     color,
		Intensity: intensity,
		Position:  position,
		Distance:  distance,
		Decay:     1,
	}
}

// Direction is the unit vector the light travels along.
func (l *Light) Direction() math.Vec3 {
	return l.Target.Sub(l.Position).Normalize()
}

// ShadowView is the light-space view matrix used for the shadow pass.
func (l *Light) ShadowView() math.Mat4 {
	up := math.Vec3Up
	if d := l.Direction(); d.Cross(up).Length() < 1e-4 {
		up = math.Vec3Front
	}
	return math.Mat4LookAt(l.Position, l.Target, up)
}

func (l *Light) ShadowProjection() math.Mat4 {
	c := l.Shadow.Camera
	return math.Mat4Orthographic(c.Left, c.Right, c.Bottom, c.Top, c.Near, c.Far)
}
