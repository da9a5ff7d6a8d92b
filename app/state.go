// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"github.com/facet3d/facet/gpu"
	"github.com/facet3d/facet/scene"
)

// State bundles the GPU-side objects built once at startup: the
// surface, the pipeline, the scene's vertex and material buffers, and
// the frame renderer and interaction driving them.
type State struct {
	GPU       *gpu.GPU
	Surface   *gpu.Surface
	Pipeline  *gpu.GraphicsPipeline
	Vertices  *gpu.VertexBuffer
	Materials *gpu.MaterialBuffer // nil when the scene has none

	Frames      *Frames
	Interaction *Interaction
}

// NewState wires a ready-to-render State for the given scene data on
// the given surface. shaderCode is the WGSL source used for both
// shader stages; it must declare the material storage buffer at
// group 0 binding 0 exactly when the scene has materials, as the
// caller selects the matching variant.
func NewState(gp *gpu.GPU, sf *gpu.Surface, data *scene.Data, shaderCode string) (*State, error) {
	dev := sf.Device
	pl := gpu.NewGraphicsPipeline("scene", dev, sf.Format.Format)
	sh := pl.AddShader("scene")
	if err := sh.OpenCode(shaderCode); err != nil {
		pl.Release()
		return nil, err
	}
	pl.AddEntry(sh, gpu.VertexShader, "vs_main")
	pl.AddEntry(sh, gpu.FragmentShader, "fs_main")

	var mb *gpu.MaterialBuffer
	if len(data.Materials) > 0 {
		lay, err := gpu.MaterialBindGroupLayout(dev, "materials")
		if err != nil {
			pl.Release()
			return nil, err
		}
		pl.SetMaterialLayout(lay)
		mb, err = gpu.NewMaterialBuffer(dev, "materials", data.Materials, lay)
		if err != nil {
			pl.Release()
			return nil, err
		}
	}
	if err := pl.Config(); err != nil {
		mb.Release()
		pl.Release()
		return nil, err
	}
	vb, err := gpu.NewVertexBuffer(dev, "positions", data.Vertices)
	if err != nil {
		mb.Release()
		pl.Release()
		return nil, err
	}

	fr := NewFrames(dev, sf, pl, vb, mb)
	return &State{
		GPU:         gp,
		Surface:     sf,
		Pipeline:    pl,
		Vertices:    vb,
		Materials:   mb,
		Frames:      fr,
		Interaction: NewInteraction(fr),
	}, nil
}

// Release frees all GPU resources held by the state, waiting for
// submitted work to drain first.
func (st *State) Release() {
	if st == nil {
		return
	}
	if st.Surface != nil && st.Surface.Device != nil {
		st.Surface.Device.WaitDone()
	}
	st.Vertices.Release()
	st.Materials.Release()
	st.Pipeline.Release()
	st.Surface.Release()
	st.GPU.Release()
}
