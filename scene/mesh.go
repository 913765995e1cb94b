package scene

import (
	"bank-interior/core"
)

// Mesh holds CPU-side vertex/index data.
// GPU upload is managed by the renderer backend.
type Mesh struct {
	Vertices  []core.Vertex
	Indices   []uint32
	LocalAABB AABB
}

// CreateMeshFromData builds a Mesh and pre-computes its local-space AABB.
func CreateMeshFromData(vertices []core.Vertex, indices []uint32) *Mesh {
	m := &Mesh{
		Vertices: vertices,
		Indices:  indices,
	}
	m.LocalAABB = EmptyAABB()
	for _, v := range vertices {
		m.LocalAABB = m.LocalAABB.ExtendPoint(v.Position)
	}
	return m
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
