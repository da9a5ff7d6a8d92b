// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/facet3d/facet/base/errors"
)

// GraphicsPipeline manages the shader program and fixed-function state
// for one kind of draw call: a single per-vertex position attribute,
// an optional material storage-buffer bind group, and fixed rasterizer
// and blend settings. The pipeline is immutable once built by
// [GraphicsPipeline.Config]: any change to shader, vertex layout, or
// target format requires building a new one.
type GraphicsPipeline struct {
	// unique name of this pipeline
	Name string

	// Shaders contains the shader code loaded for this pipeline.
	// A single shader can have multiple entry points: see Entries.
	Shaders map[string]*Shader

	// Entries contains the entry points into shader code,
	// which are what is actually called.
	Entries map[string]*ShaderEntry

	// VertexType is the type of the single vertex attribute,
	// at shader location 0. Float32Vector3 by default.
	VertexType Types

	// Primitive has the settings for graphics primitives:
	// triangle list, counter-clockwise front face, back-face culling.
	Primitive wgpu.PrimitiveState

	Multisample wgpu.MultisampleState

	// alphaBlend selects standard alpha blending instead of opaque
	// replace. Set when a material layout is bound; can be overridden
	// with SetAlphaBlend before Config.
	alphaBlend bool

	// target color format; must match the surface format exactly.
	format wgpu.TextureFormat

	// bind group layout for the material buffer; nil if no materials.
	materialLayout *wgpu.BindGroupLayout

	device *Device

	layout         *wgpu.PipelineLayout
	renderPipeline *wgpu.RenderPipeline
}

// NewGraphicsPipeline returns a new GraphicsPipeline for the given
// device, targeting the given color format, with default graphics
// settings.
func NewGraphicsPipeline(name string, dev *Device, format wgpu.TextureFormat) *GraphicsPipeline {
	pl := &GraphicsPipeline{Name: name, device: dev, format: format}
	pl.SetGraphicsDefaults()
	return pl
}

// SetGraphicsDefaults configures all the default settings:
// triangle-list topology, counter-clockwise front face, back-face
// culling, single sample, position vertex type, opaque blending.
func (pl *GraphicsPipeline) SetGraphicsDefaults() *GraphicsPipeline {
	pl.VertexType = Float32Vector3
	pl.Primitive = wgpu.PrimitiveState{
		Topology:  wgpu.PrimitiveTopologyTriangleList,
		FrontFace: wgpu.FrontFaceCCW,
		CullMode:  wgpu.CullModeBack,
	}
	pl.Multisample = wgpu.MultisampleState{
		Count:                  1,
		Mask:                   0xFFFFFFFF,
		AlphaToCoverageEnabled: false,
	}
	pl.alphaBlend = false
	return pl
}

// SetFrontFace sets the winding order for what counts as a front face.
func (pl *GraphicsPipeline) SetFrontFace(face wgpu.FrontFace) *GraphicsPipeline {
	pl.Primitive.FrontFace = face
	return pl
}

// SetCullMode sets the face culling mode.
func (pl *GraphicsPipeline) SetCullMode(mode wgpu.CullMode) *GraphicsPipeline {
	pl.Primitive.CullMode = mode
	return pl
}

// SetAlphaBlend determines the color blending function: either
// 1-source-alpha blending or no blending (new color overwrites old).
func (pl *GraphicsPipeline) SetAlphaBlend(alphaBlend bool) *GraphicsPipeline {
	pl.alphaBlend = alphaBlend
	return pl
}

// SetMaterialLayout sets the bind group layout for the material
// storage buffer, bound at group 0, and turns on alpha blending,
// which is the standard setting for the material path.
// Must be called before Config.
func (pl *GraphicsPipeline) SetMaterialLayout(lay *wgpu.BindGroupLayout) *GraphicsPipeline {
	pl.materialLayout = lay
	pl.alphaBlend = true
	return pl
}

// AddShader adds a Shader with the given name to the pipeline.
func (pl *GraphicsPipeline) AddShader(name string) *Shader {
	if pl.Shaders == nil {
		pl.Shaders = make(map[string]*Shader)
	}
	if sh, has := pl.Shaders[name]; has {
		slog.Error("gpu.GraphicsPipeline AddShader", "Shader", name, "already exists in pipeline", pl.Name)
		return sh
	}
	sh := NewShader(name, pl.device)
	pl.Shaders[name] = sh
	return sh
}

// AddEntry adds a ShaderEntry for the given shader, stage, and entry
// function name.
func (pl *GraphicsPipeline) AddEntry(sh *Shader, typ ShaderTypes, entry string) *ShaderEntry {
	if pl.Entries == nil {
		pl.Entries = make(map[string]*ShaderEntry)
	}
	name := sh.Name + ":" + entry
	if se, has := pl.Entries[name]; has {
		slog.Error("gpu.GraphicsPipeline AddEntry", "ShaderEntry", name, "already exists in pipeline", pl.Name)
		return se
	}
	se := NewShaderEntry(sh, typ, entry)
	pl.Entries[name] = se
	return se
}

// EntryByType returns the ShaderEntry for the given stage.
// Returns nil if not found.
func (pl *GraphicsPipeline) EntryByType(typ ShaderTypes) *ShaderEntry {
	for _, se := range pl.Entries {
		if se.Type == typ {
			return se
		}
	}
	return nil
}

// VertexEntry returns the [ShaderEntry] for [VertexShader].
func (pl *GraphicsPipeline) VertexEntry() *ShaderEntry {
	return pl.EntryByType(VertexShader)
}

// FragmentEntry returns the [ShaderEntry] for [FragmentShader].
func (pl *GraphicsPipeline) FragmentEntry() *ShaderEntry {
	return pl.EntryByType(FragmentShader)
}

// vertexLayout returns the single vertex buffer layout: one attribute
// of VertexType at shader location 0, per-vertex step mode.
func (pl *GraphicsPipeline) vertexLayout() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{{
		ArrayStride: uint64(pl.VertexType.Bytes()),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{{
			Format:         pl.VertexType.VertexFormat(),
			Offset:         0,
			ShaderLocation: 0,
		}},
	}}
}

// blendState returns the effective color blend state: standard alpha
// blending on the material path, opaque replace otherwise.
func (pl *GraphicsPipeline) blendState() wgpu.BlendState {
	if !pl.alphaBlend {
		return wgpu.BlendStateReplace
	}
	return wgpu.BlendState{
		Color: wgpu.BlendComponent{
			SrcFactor: wgpu.BlendFactorSrcAlpha,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
			Operation: wgpu.BlendOperationAdd,
		},
		Alpha: wgpu.BlendComponent{
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
			Operation: wgpu.BlendOperationAdd,
		},
	}
}

// Config builds the render pipeline, once the shaders have been loaded
// and any material layout set. The pipeline is never rebuilt: calling
// Config again on a built pipeline is a no-op.
func (pl *GraphicsPipeline) Config() error {
	if pl.renderPipeline != nil {
		return nil
	}
	ve := pl.VertexEntry()
	fe := pl.FragmentEntry()
	if ve == nil || fe == nil {
		return errors.Log(fmt.Errorf("gpu.GraphicsPipeline %s: requires both a vertex and a fragment entry", pl.Name))
	}
	var bgls []*wgpu.BindGroupLayout
	if pl.materialLayout != nil {
		bgls = append(bgls, pl.materialLayout)
	}
	lay, err := pl.device.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            pl.Name,
		BindGroupLayouts: bgls,
	})
	if err != nil {
		return errors.Log(err)
	}
	pl.layout = lay

	blend := pl.blendState()
	pd := &wgpu.RenderPipelineDescriptor{
		Label:       pl.Name,
		Layout:      pl.layout,
		Primitive:   pl.Primitive,
		Multisample: pl.Multisample,
		Vertex: wgpu.VertexState{
			Module:     ve.Shader.module,
			EntryPoint: ve.Entry,
			Buffers:    pl.vertexLayout(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     fe.Shader.module,
			EntryPoint: fe.Entry,
			Targets: []wgpu.ColorTargetState{{
				Format:    pl.format,
				Blend:     &blend,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	}
	rp, err := pl.device.Device.CreateRenderPipeline(pd)
	if err != nil {
		return errors.Log(err)
	}
	pl.renderPipeline = rp
	return nil
}

// BindPipeline binds this pipeline as the one to use for subsequent
// commands in the given render pass, building it first if needed.
func (pl *GraphicsPipeline) BindPipeline(rp *wgpu.RenderPassEncoder) error {
	if pl.renderPipeline == nil {
		if err := pl.Config(); err != nil {
			return err
		}
	}
	rp.SetPipeline(pl.renderPipeline)
	return nil
}

func (pl *GraphicsPipeline) Release() {
	if pl == nil {
		return
	}
	for _, sh := range pl.Shaders {
		sh.Release()
	}
	pl.Shaders = nil
	pl.Entries = nil
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
}
