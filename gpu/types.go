// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Types is the list of GPU data types usable as vertex attributes.
type Types int32

const (
	UndefinedType Types = iota

	Float32
	Float32Vector2
	Float32Vector3
	Float32Vector4
)

// Bytes returns the number of bytes for this type.
func (tp Types) Bytes() int {
	return typeSizes[tp]
}

// VertexFormat returns the WebGPU VertexFormat for this type.
func (tp Types) VertexFormat() wgpu.VertexFormat {
	return typeToVertexFormat[tp]
}

var typeSizes = map[Types]int{
	Float32:        4,
	Float32Vector2: 8,
	Float32Vector3: 12,
	Float32Vector4: 16,
}

var typeToVertexFormat = map[Types]wgpu.VertexFormat{
	UndefinedType:  wgpu.VertexFormatUndefined,
	Float32:        wgpu.VertexFormatFloat32,
	Float32Vector2: wgpu.VertexFormatFloat32x2,
	Float32Vector3: wgpu.VertexFormatFloat32x3,
	Float32Vector4: wgpu.VertexFormatFloat32x4,
}
