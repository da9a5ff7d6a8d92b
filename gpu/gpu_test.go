// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"
	"image"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestPreferredFormat(t *testing.T) {
	ft := PreferredFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatRGBA8Unorm,
		wgpu.TextureFormatBGRA8UnormSrgb,
		wgpu.TextureFormatRGBA8UnormSrgb,
	})
	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, ft)

	// no srgb format reported: first available wins
	ft = PreferredFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatBGRA8Unorm,
		wgpu.TextureFormatRGBA8Unorm,
	})
	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, ft)
}

func TestClassifyAcquireError(t *testing.T) {
	assert.Nil(t, ClassifyAcquireError(nil))
	assert.Equal(t, ErrSurfaceTimeout, ClassifyAcquireError(errors.New("Surface timed out")))
	assert.Equal(t, ErrSurfaceTimeout, ClassifyAcquireError(errors.New("acquisition timeout")))
	assert.Equal(t, ErrSurfaceLost, ClassifyAcquireError(errors.New("Surface is outdated")))
	assert.Equal(t, ErrSurfaceLost, ClassifyAcquireError(errors.New("Surface was lost")))
	assert.Equal(t, ErrSurfaceLost, ClassifyAcquireError(errors.New("suboptimal present")))
	oom := ClassifyAcquireError(errors.New("out of memory"))
	assert.True(t, errors.Is(oom, ErrSurfaceOutOfMemory))

	// anything unrecognized is fatal, with the binding's message kept
	unknown := ClassifyAcquireError(errors.New("device error 17"))
	assert.True(t, errors.Is(unknown, ErrSurfaceOutOfMemory))
	assert.Contains(t, unknown.Error(), "device error 17")
}

func TestTypeSizes(t *testing.T) {
	assert.Equal(t, 12, Float32Vector3.Bytes())
	assert.Equal(t, 16, Float32Vector4.Bytes())
	assert.Equal(t, wgpu.VertexFormatFloat32x3, Float32Vector3.VertexFormat())
}

func TestVertexLayout(t *testing.T) {
	pl := NewGraphicsPipeline("test", nil, wgpu.TextureFormatRGBA8UnormSrgb)
	vl := pl.vertexLayout()
	assert.Len(t, vl, 1)
	assert.Equal(t, uint64(12), vl[0].ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, vl[0].StepMode)
	assert.Len(t, vl[0].Attributes, 1)
	assert.Equal(t, uint32(0), vl[0].Attributes[0].ShaderLocation)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, vl[0].Attributes[0].Format)
}

func TestPipelineDefaults(t *testing.T) {
	pl := NewGraphicsPipeline("test", nil, wgpu.TextureFormatRGBA8UnormSrgb)
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, pl.Primitive.Topology)
	assert.Equal(t, wgpu.FrontFaceCCW, pl.Primitive.FrontFace)
	assert.Equal(t, wgpu.CullModeBack, pl.Primitive.CullMode)
	assert.Equal(t, uint32(1), pl.Multisample.Count)

	// opaque path: replace blending
	assert.Equal(t, wgpu.BlendStateReplace, pl.blendState())

	// material path: standard alpha blending
	pl.SetAlphaBlend(true)
	bs := pl.blendState()
	assert.Equal(t, wgpu.BlendFactorSrcAlpha, bs.Color.SrcFactor)
	assert.Equal(t, wgpu.BlendFactorOneMinusSrcAlpha, bs.Color.DstFactor)
}

func TestTextureFormat(t *testing.T) {
	var tf TextureFormat
	tf.Defaults()
	assert.Equal(t, wgpu.TextureFormatRGBA8UnormSrgb, tf.Format)
	tf.SetSize(1024, 768)
	assert.Equal(t, image.Point{1024, 768}, tf.Size)
	w, h := tf.Size32()
	assert.Equal(t, uint32(1024), w)
	assert.Equal(t, uint32(768), h)
	assert.InDelta(t, 1.333, tf.Aspect(), 0.001)
}

func TestPresentMode(t *testing.T) {
	modes := []wgpu.PresentMode{wgpu.PresentModeFifo, wgpu.PresentModeMailbox}
	assert.Equal(t, wgpu.PresentModeFifo, presentMode(modes, true))
	assert.Equal(t, wgpu.PresentModeMailbox, presentMode(modes, false))

	// fifo-only surface: nothing faster on offer
	fifo := []wgpu.PresentMode{wgpu.PresentModeFifo}
	assert.Equal(t, wgpu.PresentModeFifo, presentMode(fifo, false))
	assert.Equal(t, wgpu.PresentModeFifo, presentMode(nil, false))
}

func TestClampSize(t *testing.T) {
	// zero or negative dimensions are rejected: minimized windows
	// must not reconfigure the surface
	_, ok := clampSize(image.Pt(0, 480), 8192)
	assert.False(t, ok)
	_, ok = clampSize(image.Pt(640, 0), 8192)
	assert.False(t, ok)
	_, ok = clampSize(image.Pt(-1, -1), 8192)
	assert.False(t, ok)

	sz, ok := clampSize(image.Pt(640, 480), 8192)
	assert.True(t, ok)
	assert.Equal(t, image.Pt(640, 480), sz)

	// oversized requests clamp to the adapter texture limit
	sz, ok = clampSize(image.Pt(100000, 480), 8192)
	assert.True(t, ok)
	assert.Equal(t, image.Pt(8192, 480), sz)

	// zero limit means no limit reported; pass through
	sz, ok = clampSize(image.Pt(100000, 480), 0)
	assert.True(t, ok)
	assert.Equal(t, image.Pt(100000, 480), sz)
}

func TestPipelineConfigEntries(t *testing.T) {
	// building without both shader stages must fail before any
	// device call is made
	pl := NewGraphicsPipeline("test", nil, wgpu.TextureFormatRGBA8UnormSrgb)
	assert.Error(t, pl.Config())
}
