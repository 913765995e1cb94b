package renderer

import (
	"sort"

	"bank-interior/math"
	"bank-interior/scene"
)

type drawItem struct {
	node  *scene.Node
	world math.Mat4
	// distance from the camera to the centre of the world bounds
	depth float32
}

type drawList struct {
	opaque      []drawItem
	transparent []drawItem
	casters     []drawItem
	culled      int
}

func isTransparent(m *scene.Material) bool {
	return m.Transparent
}

// buildDrawList flattens the scene into opaque items front to back and
// transparent items back to front. Shadow casters are collected before
// culling since they can shade visible geometry from off screen.
func buildDrawList(s *scene.Scene, cam *scene.Camera, cull bool) drawList {
	var dl drawList
	frustum := scene.FrustumFromVP(cam.GetViewProjectionMatrix())

	s.Root.Walk(func(n *scene.Node, world math.Mat4) {
		if !n.IsDrawable() {
			return
		}
		bounds := n.Geometry.Bounds().Transform(world)
		item := drawItem{node: n, world: world, depth: bounds.Center().Distance(cam.Position)}

		if n.CastShadow {
			dl.casters = append(dl.casters, item)
		}
		if cull && !bounds.IntersectsFrustum(&frustum) {
			dl.culled++
			return
		}
		if isTransparent(n.Material) {
			dl.transparent = append(dl.transparent, item)
		} else {
			dl.opaque = append(dl.opaque, item)
		}
	})

	sort.SliceStable(dl.opaque, func(i, j int) bool { return dl.opaque[i].depth < dl.opaque[j].depth })
	sort.SliceStable(dl.transparent, func(i, j int) bool { return dl.transparent[i].depth > dl.transparent[j].depth })
	return dl
}
