package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"bank-interior/core"
	"bank-interior/internal/opengl"
	"bank-interior/math"
	"bank-interior/scene"
)

func linear(c core.Color) mgl32.Vec3 {
	l := c.Linear()
	return mgl32.Vec3{l.R, l.G, l.B}
}

func vec3(v math.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// toGL converts a row-vector matrix to the column-vector form GL expects.
// The memory layout is the same; only the multiplication order flips.
func toGL(m math.Mat4) mgl32.Mat4 {
	return mgl32.Mat4(m.Array())
}

// frameLights splits the scene lights into shader inputs. The first
// shadow-casting directional light owns the shadow map.
func frameLights(lights []*scene.Light) (ambient mgl32.Vec3, dirs []opengl.DirectionalLight, points []opengl.PointLight, key *scene.Light, keyIndex int) {
	keyIndex = -1
	for _, l := range lights {
		if l == nil {
			continue
		}
		radiance := linear(l.Color).Mul(l.Intensity)
		switch l.Type {
		case scene.LightAmbient:
			ambient = ambient.Add(radiance)
		case scene.LightDirectional:
			if len(dirs) == opengl.MaxDirectionalLights {
				continue
			}
			if key == nil && l.CastShadow {
				key, keyIndex = l, len(dirs)
			}
			dirs = append(dirs, opengl.DirectionalLight{Direction: vec3(l.Direction()), Radiance: radiance})
		case scene.LightPoint:
			points = append(points, opengl.PointLight{
				Position: vec3(l.Position),
				Radiance: radiance,
				Distance: l.Distance,
				Decay:    l.Decay,
			})
		}
	}
	return ambient, dirs, points, key, keyIndex
}

func surface(n *scene.Node) opengl.Surface {
	m := n.Material
	opacity := m.Opacity
	if !m.Transparent {
		opacity = 1
	}
	var emissive mgl32.Vec3
	if m.IsEmissive() {
		emissive = linear(m.Emissive).Mul(m.EmissiveIntensity)
	}
	return opengl.Surface{
		Albedo:        linear(m.Color),
		Opacity:       opacity,
		Roughness:     m.Roughness,
		Metalness:     m.Metalness,
		Emissive:      emissive,
		ReceiveShadow: n.ReceiveShadow,
	}
}
