package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ShadowMap is a depth-only framebuffer rendered from a directional light.
type ShadowMap struct {
	FBO      uint32
	DepthTex uint32
	Size     int32
}

// NewShadowMap creates a size x size depth target sampled with hardware
// depth comparison.
func NewShadowMap(size int) (*ShadowMap, error) {
	if size <= 0 {
		return nil, fmt.Errorf("shadow map size %d", size)
	}
	sm := &ShadowMap{Size: int32(size)}

	gl.GenTextures(1, &sm.DepthTex)
	gl.BindTexture(gl.TEXTURE_2D, sm.DepthTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT32F, sm.Size, sm.Size, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	// outside the map counts as lit
	border := [4]float32{1, 1, 1, 1}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &border[0])
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_FUNC, gl.LEQUAL)

	gl.GenFramebuffers(1, &sm.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.FBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, sm.DepthTex, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		sm.Destroy()
		return nil, fmt.Errorf("shadow FBO incomplete: status=0x%X", status)
	}
	return sm, nil
}

// Texel is the size of one shadow map texel in texture coordinates.
func (sm *ShadowMap) Texel() float32 {
	return 1 / float32(sm.Size)
}

func (sm *ShadowMap) Destroy() {
	if sm.FBO != 0 {
		gl.DeleteFramebuffers(1, &sm.FBO)
		sm.FBO = 0
	}
	if sm.DepthTex != 0 {
		gl.DeleteTextures(1, &sm.DepthTex)
		sm.DepthTex = 0
	}
}

// BeginShadowPass renders subsequent DrawShadow calls into the shadow map
// from the light's view-projection.
func (r *Renderer) BeginShadowPass(lightVP mgl32.Mat4) {
	if r.shadowMap == nil {
		return
	}
	r.lightVP = lightVP
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.shadowMap.FBO)
	gl.Viewport(0, 0, r.shadowMap.Size, r.shadowMap.Size)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.shadowProg)
}

func (r *Renderer) DrawShadow(gpu *GPUMesh, model mgl32.Mat4) {
	if r.shadowMap == nil || gpu == nil {
		return
	}
	mvp := r.lightVP.Mul4(model)
	gl.UniformMatrix4fv(r.shadowLightMVPLoc, 1, false, &mvp[0])
	gpu.draw()
}

// EndShadowPass restores the default framebuffer and viewport.
func (r *Renderer) EndShadowPass() {
	if r.shadowMap == nil {
		return
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, r.viewportW, r.viewportH)
}
