// Package opengl is the OpenGL 4.1 core backend of the renderer.
package opengl

import (
	"fmt"
	"log/slog"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"bank-interior/core"
	"bank-interior/scene"
)

type ToneMapping int32

const (
	ToneMappingNone ToneMapping = iota
	ToneMappingACES
)

// ShadowFilter selects the PCF kernel.
type ShadowFilter int32

const (
	ShadowPCF     ShadowFilter = iota // 3x3
	ShadowPCFSoft                     // 5x5
)

func (f ShadowFilter) kernel() int32 {
	if f == ShadowPCFSoft {
		return 2
	}
	return 1
}

type DirectionalLight struct {
	Direction mgl32.Vec3
	Radiance  mgl32.Vec3
}

type PointLight struct {
	Position mgl32.Vec3
	Radiance mgl32.Vec3
	Distance float32
	Decay    float32
}

// Shadow describes the directional light that owns the shadow map.
type Shadow struct {
	Light      int
	LightVP    mgl32.Mat4
	Bias       float32
	NormalBias float32
	Filter     ShadowFilter
}

// Frame carries everything that is constant across one frame's draws.
type Frame struct {
	Background  core.Color
	View        mgl32.Mat4
	Projection  mgl32.Mat4
	CameraPos   mgl32.Vec3
	Ambient     mgl32.Vec3
	Directional []DirectionalLight
	Points      []PointLight
	Shadow      *Shadow
	Fog         *scene.Fog
	ToneMapping ToneMapping
	Exposure    float32
}

// Surface is the per-draw material state, in linear colour.
type Surface struct {
	Albedo        mgl32.Vec3
	Opacity       float32
	Roughness     float32
	Metalness     float32
	Emissive      mgl32.Vec3
	ReceiveShadow bool
}

type uniforms struct {
	model, normalMatrix, view, projection, lightViewProj int32
	shadowNormalBias                                     int32

	ambient, cameraPos                           int32
	dirLightCount, dirLightDir, dirLightRadiance int32
	pointLightCount, pointLightPos               int32
	pointLightRadiance, pointLightFalloff        int32
	matAlbedo, matOpacity, matRoughness          int32
	matMetallic, matEmissive                     int32
	shadowMap, shadowLight, receiveShadow        int32
	shadowBias, shadowTexel, shadowKernel        int32
	toneMapping, exposure                        int32
	fogEnabled, fogColor, fogNear, fogFar        int32
}

// Renderer is the OpenGL rendering backend.
type Renderer struct {
	program uint32
	u       uniforms

	shadowProg        uint32
	shadowLightMVPLoc int32
	shadowMap         *ShadowMap
	lightVP           mgl32.Mat4

	viewportW, viewportH int32
	shadowActive         bool

	logger *slog.Logger
}

// NewRenderer initialises OpenGL. The window's context must be current.
func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("main shader: %w", err)
	}
	shadowProg, err := newProgram(depthVertSrc, depthFragSrc)
	if err != nil {
		gl.DeleteProgram(prog)
		return nil, fmt.Errorf("depth shader: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.MULTISAMPLE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r := &Renderer{
		program:           prog,
		shadowProg:        shadowProg,
		shadowLightMVPLoc: uniform(shadowProg, "lightMVP"),
		logger:            logger,
		u: uniforms{
			model:              uniform(prog, "model"),
			normalMatrix:       uniform(prog, "normalMatrix"),
			view:               uniform(prog, "view"),
			projection:         uniform(prog, "projection"),
			lightViewProj:      uniform(prog, "lightViewProj"),
			shadowNormalBias:   uniform(prog, "shadowNormalBias"),
			ambient:            uniform(prog, "ambient"),
			cameraPos:          uniform(prog, "cameraPos"),
			dirLightCount:      uniform(prog, "dirLightCount"),
			dirLightDir:        uniform(prog, "dirLightDir[0]"),
			dirLightRadiance:   uniform(prog, "dirLightRadiance[0]"),
			pointLightCount:    uniform(prog, "pointLightCount"),
			pointLightPos:      uniform(prog, "pointLightPos[0]"),
			pointLightRadiance: uniform(prog, "pointLightRadiance[0]"),
			pointLightFalloff:  uniform(prog, "pointLightFalloff[0]"),
			matAlbedo:          uniform(prog, "matAlbedo"),
			matOpacity:         uniform(prog, "matOpacity"),
			matRoughness:       uniform(prog, "matRoughness"),
			matMetallic:        uniform(prog, "matMetallic"),
			matEmissive:        uniform(prog, "matEmissive"),
			shadowMap:          uniform(prog, "shadowMap"),
			shadowLight:        uniform(prog, "shadowLight"),
			receiveShadow:      uniform(prog, "receiveShadow"),
			shadowBias:         uniform(prog, "shadowBias"),
			shadowTexel:        uniform(prog, "shadowTexel"),
			shadowKernel:       uniform(prog, "shadowKernel"),
			toneMapping:        uniform(prog, "toneMapping"),
			exposure:           uniform(prog, "exposure"),
			fogEnabled:         uniform(prog, "fogEnabled"),
			fogColor:           uniform(prog, "fogColor"),
			fogNear:            uniform(prog, "fogNear"),
			fogFar:             uniform(prog, "fogFar"),
		},
	}

	gl.UseProgram(prog)
	gl.Uniform1i(r.u.shadowMap, 1)
	gl.Uniform1i(r.u.shadowLight, -1)
	ident := mgl32.Ident4()
	gl.UniformMatrix4fv(r.u.lightViewProj, 1, false, &ident[0])
	return r, nil
}

// SetViewport sets the framebuffer area the main pass draws into.
func (r *Renderer) SetViewport(width, height int) {
	r.viewportW = int32(width)
	r.viewportH = int32(height)
	gl.Viewport(0, 0, r.viewportW, r.viewportH)
}

// EnableShadows (re)creates the shadow map at the given resolution.
func (r *Renderer) EnableShadows(size int) error {
	if r.shadowMap != nil {
		if int(r.shadowMap.Size) == size {
			return nil
		}
		r.shadowMap.Destroy()
		r.shadowMap = nil
	}
	sm, err := NewShadowMap(size)
	if err != nil {
		return err
	}
	r.shadowMap = sm
	r.logger.Info("shadow map ready", "size", size)
	return nil
}

func (r *Renderer) HasShadowMap() bool {
	return r.shadowMap != nil
}

// BeginFrame clears the framebuffer and uploads the per-frame uniforms.
func (r *Renderer) BeginFrame(f *Frame) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, r.viewportW, r.viewportH)
	gl.ClearColor(f.Background.R, f.Background.G, f.Background.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Disable(gl.BLEND)
	gl.DepthMask(true)

	gl.UseProgram(r.program)
	u := r.u
	gl.UniformMatrix4fv(u.view, 1, false, &f.View[0])
	gl.UniformMatrix4fv(u.projection, 1, false, &f.Projection[0])
	gl.Uniform3fv(u.cameraPos, 1, &f.CameraPos[0])
	gl.Uniform3fv(u.ambient, 1, &f.Ambient[0])

	dirs := f.Directional
	if len(dirs) > MaxDirectionalLights {
		dirs = dirs[:MaxDirectionalLights]
	}
	var dirBuf, dirRad [MaxDirectionalLights]mgl32.Vec3
	for i, d := range dirs {
		dirBuf[i], dirRad[i] = d.Direction, d.Radiance
	}
	gl.Uniform1i(u.dirLightCount, int32(len(dirs)))
	gl.Uniform3fv(u.dirLightDir, MaxDirectionalLights, &dirBuf[0][0])
	gl.Uniform3fv(u.dirLightRadiance, MaxDirectionalLights, &dirRad[0][0])

	points := f.Points
	if len(points) > MaxPointLights {
		r.logger.Warn("too many point lights", "count", len(points), "max", MaxPointLights)
		points = points[:MaxPointLights]
	}
	var pos, rad [MaxPointLights]mgl32.Vec3
	var falloff [MaxPointLights]mgl32.Vec2
	for i, p := range points {
		pos[i], rad[i] = p.Position, p.Radiance
		falloff[i] = mgl32.Vec2{p.Distance, p.Decay}
	}
	gl.Uniform1i(u.pointLightCount, int32(len(points)))
	gl.Uniform3fv(u.pointLightPos, MaxPointLights, &pos[0][0])
	gl.Uniform3fv(u.pointLightRadiance, MaxPointLights, &rad[0][0])
	gl.Uniform2fv(u.pointLightFalloff, MaxPointLights, &falloff[0][0])

	r.shadowActive = f.Shadow != nil && r.shadowMap != nil
	if r.shadowActive {
		s := f.Shadow
		gl.ActiveTexture(gl.TEXTURE1)
		gl.BindTexture(gl.TEXTURE_2D, r.shadowMap.DepthTex)
		gl.UniformMatrix4fv(u.lightViewProj, 1, false, &s.LightVP[0])
		gl.Uniform1i(u.shadowLight, int32(s.Light))
		gl.Uniform1f(u.shadowBias, s.Bias)
		gl.Uniform1f(u.shadowNormalBias, s.NormalBias)
		gl.Uniform1f(u.shadowTexel, r.shadowMap.Texel())
		gl.Uniform1i(u.shadowKernel, s.Filter.kernel())
	} else {
		gl.Uniform1i(u.shadowLight, -1)
		gl.Uniform1f(u.shadowNormalBias, 0)
	}

	gl.Uniform1i(u.toneMapping, int32(f.ToneMapping))
	gl.Uniform1f(u.exposure, f.Exposure)

	if f.Fog != nil {
		gl.Uniform1i(u.fogEnabled, 1)
		gl.Uniform3f(u.fogColor, f.Fog.Color.R, f.Fog.Color.G, f.Fog.Color.B)
		gl.Uniform1f(u.fogNear, f.Fog.Near)
		gl.Uniform1f(u.fogFar, f.Fog.Far)
	} else {
		gl.Uniform1i(u.fogEnabled, 0)
	}
}

// BeginTransparent switches to alpha blending without depth writes.
func (r *Renderer) BeginTransparent() {
	gl.Enable(gl.BLEND)
	gl.DepthMask(false)
}

// EndTransparent restores opaque state.
func (r *Renderer) EndTransparent() {
	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
}

// DrawMesh draws gpu with the given world matrix and surface.
func (r *Renderer) DrawMesh(gpu *GPUMesh, model mgl32.Mat4, s Surface) {
	if gpu == nil {
		return
	}
	u := r.u
	normal := model.Mat3().Inv().Transpose()
	gl.UniformMatrix4fv(u.model, 1, false, &model[0])
	gl.UniformMatrix3fv(u.normalMatrix, 1, false, &normal[0])

	gl.Uniform3fv(u.matAlbedo, 1, &s.Albedo[0])
	gl.Uniform1f(u.matOpacity, s.Opacity)
	gl.Uniform1f(u.matRoughness, s.Roughness)
	gl.Uniform1f(u.matMetallic, s.Metalness)
	gl.Uniform3fv(u.matEmissive, 1, &s.Emissive[0])
	receive := int32(0)
	if s.ReceiveShadow && r.shadowActive {
		receive = 1
	}
	gl.Uniform1i(u.receiveShadow, receive)

	gpu.draw()
}

func (r *Renderer) Destroy() {
	if r.shadowMap != nil {
		r.shadowMap.Destroy()
		r.shadowMap = nil
	}
	gl.DeleteProgram(r.program)
	gl.DeleteProgram(r.shadowProg)
}

// Err reports the first pending OpenGL error, if any.
func (r *Renderer) Err() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl error 0x%X", code)
	}
	return nil
}
