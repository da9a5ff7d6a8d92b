// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// VertexBuffer is a GPU-resident buffer of vertex records, uploaded
// once at creation and read-only thereafter. N records the number of
// vertex records, which is the draw call's vertex range.
type VertexBuffer struct {
	// name for labeling and debugging
	Name string

	// N is the number of vertex records in the buffer.
	N uint32

	buffer *wgpu.Buffer
}

// NewVertexBuffer creates a vertex buffer on the given device from the
// given records, tagged for vertex-stage input. The records must be
// tightly packed: their in-memory layout is uploaded as-is.
func NewVertexBuffer[E any](dev *Device, name string, data []E) (*VertexBuffer, error) {
	contents := wgpu.ToBytes(data)
	buf, err := dev.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    name,
		Contents: contents,
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu.NewVertexBuffer %s: %w", name, err)
	}
	return &VertexBuffer{Name: name, N: uint32(len(data)), buffer: buf}, nil
}

// BindVertex binds this buffer at vertex slot 0 in the given render pass.
func (vb *VertexBuffer) BindVertex(rp *wgpu.RenderPassEncoder) {
	rp.SetVertexBuffer(0, vb.buffer, 0, wgpu.WholeSize)
}

// Draw issues one non-indexed draw covering the full vertex range,
// one instance.
func (vb *VertexBuffer) Draw(rp *wgpu.RenderPassEncoder) {
	rp.Draw(vb.N, 1, 0, 0)
}

func (vb *VertexBuffer) Release() {
	if vb == nil {
		return
	}
	if vb.buffer != nil {
		vb.buffer.Release()
		vb.buffer = nil
	}
}

// MaterialBindGroupLayout returns the bind group layout for the
// material buffer: one binding, visible only to the fragment stage,
// typed as a read-only storage buffer, no dynamic offset and no
// minimum-size constraint. The same layout object must be shared
// between pipeline construction and [NewMaterialBuffer] so the two
// sides stay consistent.
func MaterialBindGroupLayout(dev *Device, name string) (*wgpu.BindGroupLayout, error) {
	lay, err := dev.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: name,
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: wgpu.ShaderStageFragment,
			Buffer: wgpu.BufferBindingLayout{
				Type:             wgpu.BufferBindingTypeReadOnlyStorage,
				HasDynamicOffset: false,
				MinBindingSize:   0,
			},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu.MaterialBindGroupLayout %s: %w", name, err)
	}
	return lay, nil
}

// MaterialBuffer is a GPU-resident storage buffer of material records
// together with the bind group that makes it visible to the fragment
// stage, uploaded once at creation and read-only thereafter.
// The records keep the exact order they were given in.
type MaterialBuffer struct {
	// name for labeling and debugging
	Name string

	// N is the number of material records in the buffer.
	N int

	buffer    *wgpu.Buffer
	bindGroup *wgpu.BindGroup
}

// NewMaterialBuffer creates a storage buffer on the given device from
// the given records, tagged for storage-buffer binding, and a bind
// group for it against the given layout (see [MaterialBindGroupLayout]).
func NewMaterialBuffer[E any](dev *Device, name string, data []E, lay *wgpu.BindGroupLayout) (*MaterialBuffer, error) {
	contents := wgpu.ToBytes(data)
	buf, err := dev.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    name,
		Contents: contents,
		Usage:    wgpu.BufferUsageStorage,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu.NewMaterialBuffer %s: %w", name, err)
	}
	bg, err := dev.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  name,
		Layout: lay,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  buf,
			Offset:  0,
			Size:    wgpu.WholeSize,
		}},
	})
	if err != nil {
		buf.Release()
		return nil, fmt.Errorf("gpu.NewMaterialBuffer %s: %w", name, err)
	}
	return &MaterialBuffer{Name: name, N: len(data), buffer: buf, bindGroup: bg}, nil
}

// BindGroup binds the material bind group at group index 0 in the
// given render pass.
func (mb *MaterialBuffer) BindGroup(rp *wgpu.RenderPassEncoder) {
	rp.SetBindGroup(0, mb.bindGroup, nil)
}

func (mb *MaterialBuffer) Release() {
	if mb == nil {
		return
	}
	if mb.bindGroup != nil {
		mb.bindGroup.Release()
		mb.bindGroup = nil
	}
	if mb.buffer != nil {
		mb.buffer.Release()
		mb.buffer = nil
	}
}
