package scene

import (
	"bank-interior/core"
	"bank-interior/math"
)

// Kind labels what a top-level node represents (cash desk, sofa, wall...).
type Kind string

// Node is an element of the scene tree. A node owns its children outright;
// there are no parent links and a node is never shared between parents.
// A node with a Geometry is drawable; any node may also group children.
type Node struct {
	Name      string
	Kind      Kind
	Transform core.Transform
	Children  []*Node

	Geometry Geometry
	Material *Material

	CastShadow    bool
	ReceiveShadow bool
}

func NewNode(name string) *Node {
	return &Node{
		Name:      name,
		Transform: core.NewTransform(),
	}
}

func NewMeshNode(name string, geometry Geometry, material *Material) *Node {
	n := NewNode(name)
	n.Geometry = geometry
	n.Material = material
	return n
}

func (n *Node) AddChild(children ...*Node) {
	n.Children = append(n.Children, children...)
}

func (n *Node) SetPosition(pos math.Vec3) {
	n.Transform.Position = pos
}

func (n *Node) SetRotation(rot math.Quaternion) {
	n.Transform.Rotation = rot
}

// SetEuler sets the rotation from XYZ Euler angles in radians.
func (n *Node) SetEuler(x, y, z float32) {
	n.Transform.Rotation = math.QuaternionFromEuler(math.NewVec3(x, y, z))
}

func (n *Node) IsDrawable() bool {
	return n.Geometry != nil && n.Material != nil
}

func (n *Node) LocalMatrix() math.Mat4 {
	return n.Transform.GetMatrix()
}

// Traverse visits n and its descendants depth-first.
func (n *Node) Traverse(callback func(*Node)) {
	callback(n)
	for _, child := range n.Children {
		child.Traverse(callback)
	}
}

// Walk visits every node with its composed world matrix, treating n as a
// root placed at the origin.
func (n *Node) Walk(callback func(node *Node, world math.Mat4)) {
	n.WalkFrom(math.Mat4Identity(), callback)
}

// WalkFrom is Walk for a subtree whose parent sits at parentWorld.
func (n *Node) WalkFrom(parentWorld math.Mat4, callback func(node *Node, world math.Mat4)) {
	world := n.LocalMatrix().Mul(parentWorld)
	callback(n, world)
	for _, child := range n.Children {
		child.WalkFrom(world, callback)
	}
}

// Find finds a node by name
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Count returns the number of nodes in the subtree including n.
func (n *Node) Count() int {
	count := 0
	n.Traverse(func(*Node) { count++ })
	return count
}

// WorldBounds is the union of every drawable's bounds, in the frame n is
// placed in.
func (n *Node) WorldBounds() AABB {
	out := EmptyAABB()
	n.Walk(func(node *Node, world math.Mat4) {
		if node.Geometry != nil {
			out = out.Union(node.Geometry.Bounds().Transform(world))
		}
	})
	return out
}
