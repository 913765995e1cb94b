package scene

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"bank-interior/math"
)

// GeometryKind tags the closed set of shapes a node can draw.
type GeometryKind int

const (
	GeometryBox GeometryKind = iota
	GeometryCylinder
	GeometryCone
	GeometryPlane
	GeometryRing
	GeometrySphere
)

func (k GeometryKind) String() string {
	switch k {
	case GeometryBox:
		return "box"
	case GeometryCylinder:
		return "cylinder"
	case GeometryCone:
		return "cone"
	case GeometryPlane:
		return "plane"
	case GeometryRing:
		return "ring"
	case GeometrySphere:
		return "sphere"
	}
	return fmt.Sprintf("geometry(%d)", int(k))
}

const (
	// MinDimension is the smallest extent any geometry is built with.
	MinDimension = float32(1e-3)
	// MaxDimension caps runaway extents.
	MaxDimension = float32(1e4)
)

var ErrInvalidDimension = errors.New("invalid dimension")

// CheckDimension returns ErrInvalidDimension for non-finite or non-positive values.
func CheckDimension(v float32) error {
	if math32.IsNaN(v) || math32.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w %v", ErrInvalidDimension, v)
	}
	return nil
}

// ClampDimension maps v into [MinDimension, MaxDimension]; NaN becomes MinDimension.
func ClampDimension(v float32) float32 {
	switch {
	case math32.IsNaN(v), v < MinDimension:
		return MinDimension
	case v > MaxDimension:
		return MaxDimension
	}
	return v
}

func clampSegments(n, min int) int {
	if n < min {
		return min
	}
	return n
}

// Geometry is implemented by Box, Cylinder, Cone, Plane, Ring and Sphere.
// All variants are comparable values and can key caches.
type Geometry interface {
	Kind() GeometryKind
	// Bounds is the local-space AABB centred on the shape origin.
	Bounds() AABB
	// Mesh tessellates the shape into triangles.
	Mesh() *Mesh
}

// Box is centred on its origin.
type Box struct {
	Width, Height, Depth float32
}

func NewBox(width, height, depth float32) Box {
	return Box{Width: ClampDimension(width), Height: ClampDimension(height), Depth: ClampDimension(depth)}
}

func (b Box) Kind() GeometryKind { return GeometryBox }

func (b Box) Bounds() AABB {
	h := math.NewVec3(b.Width/2, b.Height/2, b.Depth/2)
	return AABB{Min: h.Negate(), Max: h}
}

func (b Box) Mesh() *Mesh { return boxMesh(b.Width, b.Height, b.Depth) }

// Cylinder runs along Y and may taper between its two radii.
type Cylinder struct {
	RadiusTop, RadiusBottom, Height float32
	Segments                        int
}

func NewCylinder(radiusTop, radiusBottom, height float32, segments int) Cylinder {
	return Cylinder{
		RadiusTop:    ClampDimension(radiusTop),
		RadiusBottom: ClampDimension(radiusBottom),
		Height:       ClampDimension(height),
		Segments:     clampSegments(segments, 3),
	}
}

func (c Cylinder) Kind() GeometryKind { return GeometryCylinder }

func (c Cylinder) Bounds() AABB {
	r := math32.Max(c.RadiusTop, c.RadiusBottom)
	return AABB{Min: math.NewVec3(-r, -c.Height/2, -r), Max: math.NewVec3(r, c.Height/2, r)}
}

func (c Cylinder) Mesh() *Mesh {
	return frustumMesh(c.RadiusTop, c.RadiusBottom, c.Height, c.Segments)
}

// Cone has its apex at +Height/2.
type Cone struct {
	Radius, Height float32
	Segments       int
}

func NewCone(radius, height float32, segments int) Cone {
	return Cone{Radius: ClampDimension(radius), Height: ClampDimension(height), Segments: clampSegments(segments, 3)}
}

func (c Cone) Kind() GeometryKind { return GeometryCone }

func (c Cone) Bounds() AABB {
	return AABB{Min: math.NewVec3(-c.Radius, -c.Height/2, -c.Radius), Max: math.NewVec3(c.Radius, c.Height/2, c.Radius)}
}

func (c Cone) Mesh() *Mesh { return frustumMesh(0, c.Radius, c.Height, c.Segments) }

// Plane lies in XY facing +Z.
type Plane struct {
	Width, Height float32
}

func NewPlane(width, height float32) Plane {
	return Plane{Width: ClampDimension(width), Height: ClampDimension(height)}
}

func (p Plane) Kind() GeometryKind { return GeometryPlane }

func (p Plane) Bounds() AABB {
	return AABB{Min: math.NewVec3(-p.Width/2, -p.Height/2, 0), Max: math.NewVec3(p.Width/2, p.Height/2, 0)}
}

func (p Plane) Mesh() *Mesh { return planeMesh(p.Width, p.Height) }

// Ring is a flat annulus in XY facing +Z.
type Ring struct {
	InnerRadius, OuterRadius float32
	Segments                 int
}

// NewRing accepts a zero inner radius; the outer radius always exceeds it.
func NewRing(inner, outer float32, segments int) Ring {
	if math32.IsNaN(inner) || inner < 0 {
		inner = 0
	}
	inner = math32.Min(inner, MaxDimension)
	outer = ClampDimension(outer)
	if outer < inner+MinDimension {
		outer = inner + MinDimension
	}
	return Ring{InnerRadius: inner, OuterRadius: outer, Segments: clampSegments(segments, 3)}
}

func (r Ring) Kind() GeometryKind { return GeometryRing }

func (r Ring) Bounds() AABB {
	return AABB{Min: math.NewVec3(-r.OuterRadius, -r.OuterRadius, 0), Max: math.NewVec3(r.OuterRadius, r.OuterRadius, 0)}
}

func (r Ring) Mesh() *Mesh { return ringMesh(r.InnerRadius, r.OuterRadius, r.Segments) }

type Sphere struct {
	Radius                        float32
	WidthSegments, HeightSegments int
}

func NewSphere(radius float32, widthSegments, heightSegments int) Sphere {
	return Sphere{
		Radius:         ClampDimension(radius),
		WidthSegments:  clampSegments(widthSegments, 3),
		HeightSegments: clampSegments(heightSegments, 2),
	}
}

func (s Sphere) Kind() GeometryKind { return GeometrySphere }

func (s Sphere) Bounds() AABB {
	r := math.NewVec3(s.Radius, s.Radius, s.Radius)
	return AABB{Min: r.Negate(), Max: r}
}

func (s Sphere) Mesh() *Mesh { return sphereMesh(s.Radius, s.WidthSegments, s.HeightSegments) }
