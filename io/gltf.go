// Package io writes built interiors to glTF 2.0 so they can be inspected
// in external viewers and DCC tools.
package io

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"bank-interior/core"
	"bank-interior/scene"
)

var ErrNoScene = errors.New("io: nil scene")

const generator = "bank-interior"

// meshKey identifies one glTF mesh. The primitive carries the material,
// so nodes share a mesh only when geometry and material both match.
type meshKey struct {
	geometry scene.Geometry
	material *scene.Material
}

type exporter struct {
	doc       *gltf.Document
	meshes    map[meshKey]int
	materials map[*scene.Material]int
}

// Document converts the scene tree into a glTF document. Lights are not
// exported; node kinds are kept in each node's extras.
func Document(s *scene.Scene) (*gltf.Document, error) {
	if s == nil || s.Root == nil {
		return nil, ErrNoScene
	}
	doc := gltf.NewDocument()
	doc.Asset.Generator = generator

	e := &exporter{
		doc:       doc,
		meshes:    make(map[meshKey]int),
		materials: make(map[*scene.Material]int),
	}
	root := e.node(s.Root)
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, root)
	return doc, nil
}

// ExportGLTF writes the scene to path. A .glb extension selects the binary
// container; anything else produces a self-contained .gltf with the
// buffer embedded as a data URI.
func ExportGLTF(s *scene.Scene, path string) error {
	doc, err := Document(s)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		if err := gltf.SaveBinary(doc, path); err != nil {
			return fmt.Errorf("io: save %s: %w", path, err)
		}
		return nil
	}
	for _, b := range doc.Buffers {
		if b.URI == "" {
			b.EmbeddedResource()
		}
	}
	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("io: save %s: %w", path, err)
	}
	return nil
}

// node appends n and its subtree, returning n's index.
func (e *exporter) node(n *scene.Node) int {
	t := n.Transform
	gn := &gltf.Node{
		Name:        n.Name,
		Translation: [3]float64{float64(t.Position.X), float64(t.Position.Y), float64(t.Position.Z)},
		Rotation:    [4]float64{float64(t.Rotation.X), float64(t.Rotation.Y), float64(t.Rotation.Z), float64(t.Rotation.W)},
		Scale:       [3]float64{float64(t.Scale.X), float64(t.Scale.Y), float64(t.Scale.Z)},
	}
	if n.Kind != "" {
		gn.Extras = map[string]any{"kind": string(n.Kind)}
	}
	if n.IsDrawable() {
		gn.Mesh = gltf.Index(e.mesh(n.Geometry, n.Material))
	}

	idx := len(e.doc.Nodes)
	e.doc.Nodes = append(e.doc.Nodes, gn)
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		gn.Children = append(gn.Children, e.node(c))
	}
	return idx
}

func (e *exporter) mesh(g scene.Geometry, m *scene.Material) int {
	k := meshKey{g, m}
	if idx, ok := e.meshes[k]; ok {
		return idx
	}

	data := g.Mesh()
	positions := make([][3]float32, len(data.Vertices))
	normals := make([][3]float32, len(data.Vertices))
	uvs := make([][2]float32, len(data.Vertices))
	for i, v := range data.Vertices {
		positions[i] = [3]float32{v.Position.X, v.Position.Y, v.Position.Z}
		normals[i] = [3]float32{v.Normal.X, v.Normal.Y, v.Normal.Z}
		uvs[i] = [2]float32{v.UV.X, v.UV.Y}
	}

	prim := &gltf.Primitive{
		Indices: gltf.Index(modeler.WriteIndices(e.doc, data.Indices)),
		Attributes: map[string]int{
			"POSITION":   modeler.WritePosition(e.doc, positions),
			"NORMAL":     modeler.WriteNormal(e.doc, normals),
			"TEXCOORD_0": modeler.WriteTextureCoord(e.doc, uvs),
		},
	}
	if mi := e.material(m); mi >= 0 {
		prim.Material = gltf.Index(mi)
	}

	idx := len(e.doc.Meshes)
	e.doc.Meshes = append(e.doc.Meshes, &gltf.Mesh{
		Name:       fmt.Sprintf("%s_%d", g.Kind(), idx),
		Primitives: []*gltf.Primitive{prim},
	})
	e.meshes[k] = idx
	return idx
}

// material returns the glTF material index for m, or -1 for nil.
func (e *exporter) material(m *scene.Material) int {
	if m == nil {
		return -1
	}
	if idx, ok := e.materials[m]; ok {
		return idx
	}

	base := m.Color.Linear()
	gm := &gltf.Material{
		Name: m.Name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{float64(base.R), float64(base.G), float64(base.B), 1},
			MetallicFactor:  gltf.Float(float64(m.Metalness)),
			RoughnessFactor: gltf.Float(float64(m.Roughness)),
		},
	}
	if m.Transparent {
		gm.AlphaMode = gltf.AlphaBlend
		gm.PBRMetallicRoughness.BaseColorFactor[3] = float64(m.Opacity)
	}
	if m.IsEmissive() {
		gm.EmissiveFactor = emissiveFactor(m.Emissive, m.EmissiveIntensity)
	}

	idx := len(e.doc.Materials)
	e.doc.Materials = append(e.doc.Materials, gm)
	e.materials[m] = idx
	return idx
}

// emissiveFactor folds intensity into the linear colour. Core glTF caps
// the factor at 1.
func emissiveFactor(c core.Color, intensity float32) [3]float64 {
	l := c.Linear()
	clamp := func(v float32) float64 {
		v *= intensity
		if v > 1 {
			return 1
		}
		return float64(v)
	}
	return [3]float64{clamp(l.R), clamp(l.G), clamp(l.B)}
}
