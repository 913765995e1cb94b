package scene

import (
	"github.com/chewxy/math32"

	"bank-interior/math"
)

// Camera is a perspective camera aimed at Target.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	FOV         float32 // vertical, degrees
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(fov, aspectRatio, nearPlane, farPlane float32) *Camera {
	return &Camera{
		Position:    math.NewVec3(0, 0, 1),
		Target:      math.Vec3Zero,
		Up:          math.Vec3Up,
		FOV:         fov,
		AspectRatio: aspectRatio,
		NearPlane:   nearPlane,
		FarPlane:    farPlane,
	}
}

// UpdateAspectRatio ignores zero or negative heights (minimized windows).
func (c *Camera) UpdateAspectRatio(width, height int) {
	if width > 0 && height > 0 {
		c.AspectRatio = float32(width) / float32(height)
	}
}

func (c *Camera) LookAt(target math.Vec3) {
	c.Target = target
}

func (c *Camera) GetViewMatrix() math.Mat4 {
	return math.Mat4LookAt(c.Position, c.Target, c.Up)
}

func (c *Camera) GetProjectionMatrix() math.Mat4 {
	return math.Mat4Perspective(c.FOV*math32.Pi/180, c.AspectRatio, c.NearPlane, c.FarPlane)
}

// GetViewProjectionMatrix applies the view, then the projection.
func (c *Camera) GetViewProjectionMatrix() math.Mat4 {
	return c.GetViewMatrix().Mul(c.GetProjectionMatrix())
}

func (c *Camera) GetForward() math.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}
