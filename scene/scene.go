package scene

import (
	"bank-interior/core"
)

// Fog blends linearly from Near to Far.
type Fog struct {
	Color     core.Color
	Near, Far float32
}

// Scene is the root of everything that gets drawn plus its lights.
type Scene struct {
	Root       *Node
	Lights     []*Light
	Background core.Color
	Fog        *Fog
}

func NewScene() *Scene {
	return &Scene{
		Root:       NewNode("Root"),
		Lights:     make([]*Light, 0),
		Background: core.ColorBlack,
	}
}

func (s *Scene) AddNode(node *Node) {
	s.Root.AddChild(node)
}

func (s *Scene) AddLight(light *Light) {
	s.Lights = append(s.Lights, light)
}

// LightsOf returns the lights of one type in insertion order.
func (s *Scene) LightsOf(t LightType) []*Light {
	var out []*Light
	for _, l := range s.Lights {
		if l.Type == t {
			out = append(out, l)
		}
	}
	return out
}

// Census counts the root's direct children by Kind. Unlabelled nodes are
// not counted.
func (s *Scene) Census() map[Kind]int {
	counts := make(map[Kind]int)
	for _, child := range s.Root.Children {
		if child.Kind != "" {
			counts[child.Kind]++
		}
	}
	return counts
}

// FindKind returns the root children labelled k, in insertion order.
func (s *Scene) FindKind(k Kind) []*Node {
	var out []*Node
	for _, child := range s.Root.Children {
		if child.Kind == k {
			out = append(out, child)
		}
	}
	return out
}
