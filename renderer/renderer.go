// Package renderer draws a scene through the OpenGL backend. RenderEngine
// is the surface the viewer renders into.
package renderer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"

	"bank-interior/internal/opengl"
	"bank-interior/scene"
)

var ErrNoScene = errors.New("no scene or camera")

// Stats describes the most recent frame.
type Stats struct {
	Objects   int
	Triangles int
	Culled    int
	Casters   int
}

// RenderEngine is the high-level renderer that drives the OpenGL backend.
type RenderEngine struct {
	Options Options

	gl     *opengl.Renderer
	meshes map[scene.Geometry]*opengl.GPUMesh

	width, height int
	pixelRatio    float32

	filter opengl.ShadowFilter
	tone   opengl.ToneMapping
	stats  Stats
	logger *slog.Logger
}

// NewRenderEngine initialises OpenGL on the current context.
func NewRenderEngine(opts Options, logger *slog.Logger) (*RenderEngine, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("renderer options: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	glRenderer, err := opengl.NewRenderer(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL renderer: %w", err)
	}
	filter, _ := opts.filter()
	tone, _ := opts.toneMapping()

	return &RenderEngine{
		Options:    opts,
		gl:         glRenderer,
		meshes:     make(map[scene.Geometry]*opengl.GPUMesh),
		pixelRatio: 1,
		filter:     filter,
		tone:       tone,
		logger:     logger,
	}, nil
}

// SetSize sets the output size in window coordinates.
func (re *RenderEngine) SetSize(width, height int) {
	re.width, re.height = width, height
	re.applyViewport()
}

// SetPixelRatio sets framebuffer pixels per window coordinate.
func (re *RenderEngine) SetPixelRatio(ratio float32) {
	if !(ratio > 0) {
		ratio = 1
	}
	re.pixelRatio = ratio
	re.applyViewport()
}

func (re *RenderEngine) applyViewport() {
	w := int(math32.Floor(float32(re.width)*re.pixelRatio + 0.5))
	h := int(math32.Floor(float32(re.height)*re.pixelRatio + 0.5))
	re.gl.SetViewport(w, h)
}

func (re *RenderEngine) mesh(g scene.Geometry) *opengl.GPUMesh {
	if gpu, ok := re.meshes[g]; ok {
		return gpu
	}
	gpu := opengl.UploadMesh(g.Mesh())
	re.meshes[g] = gpu
	return gpu
}

// Render draws one frame: the key light's shadow map, then opaque and
// finally transparent geometry.
func (re *RenderEngine) Render(s *scene.Scene, cam *scene.Camera) error {
	if s == nil || s.Root == nil || cam == nil {
		return ErrNoScene
	}

	ambient, dirs, points, key, keyIndex := frameLights(s.Lights)
	dl := buildDrawList(s, cam, re.Options.FrustumCulling)

	frame := &opengl.Frame{
		Background:  s.Background,
		View:        toGL(cam.GetViewMatrix()),
		Projection:  toGL(cam.GetProjectionMatrix()),
		CameraPos:   vec3(cam.Position),
		Ambient:     ambient,
		Directional: dirs,
		Points:      points,
		Fog:         s.Fog,
		ToneMapping: re.tone,
		Exposure:    re.Options.Exposure,
	}

	if re.Options.Shadows && key != nil {
		fresh := !re.gl.HasShadowMap()
		if err := re.gl.EnableShadows(key.Shadow.MapSize); err != nil {
			return fmt.Errorf("shadows: %w", err)
		}
		if fresh {
			re.logger.Info("shadow map enabled", "light", key.Name, "size", key.Shadow.MapSize, "filter", re.Options.ShadowFilter)
		}
		lightVP := toGL(key.ShadowView().Mul(key.ShadowProjection()))
		re.gl.BeginShadowPass(lightVP)
		for _, it := range dl.casters {
			re.gl.DrawShadow(re.mesh(it.node.Geometry), toGL(it.world))
		}
		re.gl.EndShadowPass()
		frame.Shadow = &opengl.Shadow{
			Light:      keyIndex,
			LightVP:    lightVP,
			Bias:       key.Shadow.Bias,
			NormalBias: key.Shadow.NormalBias,
			Filter:     re.filter,
		}
	}

	re.gl.BeginFrame(frame)
	stats := Stats{Culled: dl.culled, Casters: len(dl.casters)}
	draw := func(it drawItem) {
		gpu := re.mesh(it.node.Geometry)
		re.gl.DrawMesh(gpu, toGL(it.world), surface(it.node))
		if gpu != nil {
			stats.Objects++
			stats.Triangles += int(gpu.IndexCount) / 3
		}
	}
	for _, it := range dl.opaque {
		draw(it)
	}
	if len(dl.transparent) > 0 {
		re.gl.BeginTransparent()
		for _, it := range dl.transparent {
			draw(it)
		}
		re.gl.EndTransparent()
	}
	re.stats = stats

	return re.gl.Err()
}

// Stats returns counters from the most recent Render call.
func (re *RenderEngine) Stats() Stats {
	return re.stats
}

func (re *RenderEngine) Destroy() {
	for g, gpu := range re.meshes {
		if gpu != nil {
			gpu.Destroy()
		}
		delete(re.meshes, g)
	}
	re.gl.Destroy()
}
