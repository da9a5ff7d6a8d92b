// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Vertex is one vertex record: a position in model space, tightly
// packed with no padding. This exact in-memory layout is uploaded to
// the GPU and matched by the pipeline's vertex attribute description.
type Vertex struct {
	X, Y, Z float32
}

// VertexStride is the byte stride of one [Vertex] record.
const VertexStride = 12

// Material is one material record: ambient, diffuse, and specular
// color groups. The source scene only supplies a base color factor,
// which populates Ambient; Diffuse and Specular are zero-filled.
type Material struct {
	Ambient  [4]float32
	Diffuse  [4]float32
	Specular [4]float32
}

// MaterialStride is the byte stride of one [Material] record.
const MaterialStride = 48

// Box3 is an axis-aligned bounding box over ingested positions.
type Box3 struct {
	Min, Max Vertex
}

// Data is the result of ingesting a scene document: the flat vertex
// and material records in document order, plus the bounding box of
// all positions.
type Data struct {
	// Vertices in document order: meshes outer, primitives inner,
	// accessor positions innermost.
	Vertices []Vertex

	// Materials in the exact order of the document's material list;
	// the GPU buffer indexes them implicitly by position, so no
	// reordering or deduplication is allowed.
	Materials []Material

	// Bounds is the axis-aligned bounding box of all Vertices;
	// zero if there are none.
	Bounds Box3
}

// Ingest converts a parsed scene document into flat vertex and
// material records.
func Ingest(doc *gltf.Document) (*Data, error) {
	verts, err := Vertices(doc)
	if err != nil {
		return nil, err
	}
	d := &Data{
		Vertices:  verts,
		Materials: Materials(doc),
		Bounds:    bounds(verts),
	}
	return d, nil
}

// Vertices extracts one vertex record per position, iterating every
// primitive of every mesh in document order and concatenating their
// position accessors in iteration order. A primitive without a
// position accessor contributes no vertices; that is not an error.
// Primitives are assumed to be already-expanded, non-indexed triangle
// lists: index buffers are not expanded.
func Vertices(doc *gltf.Document) ([]Vertex, error) {
	var verts []Vertex
	for mi, ms := range doc.Meshes {
		for pi, pr := range ms.Primitives {
			ai, ok := pr.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			if pr.Indices != nil {
				slog.Warn("scene: indexed primitive; positions read as-is without index expansion", "mesh", mi, "primitive", pi)
			}
			pos, err := modeler.ReadPosition(doc, doc.Accessors[ai], nil)
			if err != nil {
				return nil, fmt.Errorf("scene: mesh %d primitive %d: %w", mi, pi, err)
			}
			for _, p := range pos {
				verts = append(verts, Vertex{p[0], p[1], p[2]})
			}
		}
	}
	return verts, nil
}

// defaultBaseColor is the glTF default when a material does not
// specify a base color factor.
var defaultBaseColor = [4]float32{1, 1, 1, 1}

// Materials extracts one material record per document material, in
// document order, with the base color factor in the Ambient field.
func Materials(doc *gltf.Document) []Material {
	mats := make([]Material, 0, len(doc.Materials))
	for _, mt := range doc.Materials {
		bc := defaultBaseColor
		if mt.PBRMetallicRoughness != nil && mt.PBRMetallicRoughness.BaseColorFactor != nil {
			bc = *mt.PBRMetallicRoughness.BaseColorFactor
		}
		mats = append(mats, Material{Ambient: bc})
	}
	return mats
}

// bounds returns the axis-aligned bounding box over the given
// vertices, or a zero box if there are none.
func bounds(verts []Vertex) Box3 {
	if len(verts) == 0 {
		return Box3{}
	}
	b := Box3{Min: verts[0], Max: verts[0]}
	for _, v := range verts[1:] {
		b.Min.X = math32.Min(b.Min.X, v.X)
		b.Min.Y = math32.Min(b.Min.Y, v.Y)
		b.Min.Z = math32.Min(b.Min.Z, v.Z)
		b.Max.X = math32.Max(b.Max.X, v.X)
		b.Max.Y = math32.Max(b.Max.Y, v.Y)
		b.Max.Z = math32.Max(b.Max.Z, v.Z)
	}
	return b
}

// Size returns the extent of the box along each axis.
func (b Box3) Size() Vertex {
	return Vertex{b.Max.X - b.Min.X, b.Max.Y - b.Min.Y, b.Max.Z - b.Min.Z}
}
