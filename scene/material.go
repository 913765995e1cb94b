package scene

import "bank-interior/core"

// Material is a metallic-roughness surface descriptor. Nodes share
// descriptors by pointer and never modify them after construction.
type Material struct {
	Name      string
	Color     core.Color
	Roughness float32 // 0 = mirror, 1 = fully rough
	Metalness float32 // 0 = dielectric, 1 = metal

	Emissive          core.Color
	EmissiveIntensity float32

	Transparent bool
	Opacity     float32
}

// NewMaterial returns an opaque, non-emissive descriptor.
func NewMaterial(name string, color core.Color, roughness, metalness float32) *Material {
	return &Material{
		Name:      name,
		Color:     color,
		Roughness: roughness,
		Metalness: metalness,
		Emissive:  core.ColorBlack,
		Opacity:   1,
	}
}

// IsEmissive reports whether the material adds its own light.
func (m *Material) IsEmissive() bool {
	return m.EmissiveIntensity > 0 && (m.Emissive.R > 0 || m.Emissive.G > 0 || m.Emissive.B > 0)
}
