package opengl

import (
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"bank-interior/core"
	"bank-interior/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// UploadMesh copies a CPU mesh into new GPU buffers. It returns nil for an
// empty mesh.
func UploadMesh(mesh *scene.Mesh) *GPUMesh {
	if mesh == nil || len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))
	gpu := &GPUMesh{IndexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*int(stride), gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	var v core.Vertex
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Position))))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Normal))))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.UV))))

	gl.GenBuffers(1, &gpu.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return gpu
}

func (g *GPUMesh) draw() {
	gl.BindVertexArray(g.VAO)
	gl.DrawElements(gl.TRIANGLES, g.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy frees the buffers.
func (g *GPUMesh) Destroy() {
	gl.DeleteBuffers(1, &g.VBO)
	gl.DeleteBuffers(1, &g.EBO)
	gl.DeleteVertexArrays(1, &g.VAO)
}
