// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app drives the per-frame render loop over the gpu layer:
// frame acquisition with surface-loss recovery, a single render pass
// per frame, and pointer interaction with the clear color.
package app

import (
	"image"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/facet3d/facet/base/errors"
	"github.com/facet3d/facet/gpu"
)

// Target is the presentation target that frames are acquired from and
// presented to. *gpu.Surface implements it; tests substitute a fake.
type Target interface {
	// AcquireNextTexture returns a view of the next presentable
	// frame, or a classified acquisition error (see gpu.ClassifyAcquireError).
	AcquireNextTexture() (*wgpu.TextureView, error)

	// Reconfigure re-applies the stored surface configuration,
	// recovering a lost or outdated surface at its last known size.
	Reconfigure()

	// Present presents the acquired frame.
	Present()

	// SetSize resizes the target, returning false for rejected
	// (zero-dimension) sizes.
	SetSize(size image.Point) bool

	// Size returns the current target size in pixels.
	Size() image.Point
}

// Frames renders one frame at a time to a [Target]: acquire, record a
// single render pass with a single draw call, submit, present.
// Acquisition failures are handled per the error taxonomy: a lost or
// outdated surface triggers exactly one reconfigure and drops the
// frame, a timeout drops the frame only, and out-of-memory is
// returned as fatal. GPU resources are read-only here; nothing is
// retained across frames.
type Frames struct {
	// ClearColor initializes the color attachment at the start of
	// each frame's render pass. Mutated by [Interaction].
	ClearColor wgpu.Color

	target    Target
	device    *gpu.Device
	pipeline  *gpu.GraphicsPipeline
	vertices  *gpu.VertexBuffer
	materials *gpu.MaterialBuffer // nil when the scene has no materials

	// encode records and submits one frame's commands; a field so
	// tests can count submissions without a GPU.
	encode func(view *wgpu.TextureView) error
}

// NewFrames returns a Frames renderer drawing the given vertex buffer
// with the given pipeline to the target. materials may be nil.
func NewFrames(dev *gpu.Device, target Target, pl *gpu.GraphicsPipeline, vb *gpu.VertexBuffer, mb *gpu.MaterialBuffer) *Frames {
	fr := &Frames{
		ClearColor: wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1},
		target:     target,
		device:     dev,
		pipeline:   pl,
		vertices:   vb,
		materials:  mb,
	}
	fr.encode = fr.encodeFrame
	return fr
}

// Target returns the presentation target.
func (fr *Frames) Target() Target {
	return fr.target
}

// RenderFrame runs one frame. A nil return means the frame was either
// presented or skipped recoverably; a non-nil return is fatal and the
// caller must stop the run loop.
func (fr *Frames) RenderFrame() error {
	view, err := fr.target.AcquireNextTexture()
	if err != nil {
		switch {
		case errors.Is(err, gpu.ErrSurfaceLost):
			fr.target.Reconfigure()
			return nil
		case errors.Is(err, gpu.ErrSurfaceTimeout):
			slog.Warn("app: frame acquisition timed out; frame skipped")
			return nil
		default:
			return err
		}
	}
	if err := fr.encode(view); err != nil {
		return err
	}
	fr.target.Present()
	return nil
}

// encodeFrame records one command sequence for the acquired frame:
// a single render pass with one color attachment cleared to
// ClearColor, the pipeline, material group (if present), and vertex
// buffer bound, and one non-indexed draw over the full vertex range.
func (fr *Frames) encodeFrame(view *wgpu.TextureView) error {
	defer view.Release()
	cmd, err := fr.device.Device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	rp := cmd.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "frame",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: fr.ClearColor,
		}},
	})
	if err := fr.pipeline.BindPipeline(rp); err != nil {
		rp.Release()
		cmd.Release()
		return err
	}
	if fr.materials != nil {
		fr.materials.BindGroup(rp)
	}
	fr.vertices.BindVertex(rp)
	fr.vertices.Draw(rp)
	rp.End()
	rp.Release() // must happen before Finish
	cmdBuffer, err := cmd.Finish(nil)
	if err != nil {
		cmd.Release()
		return err
	}
	fr.device.Queue.Submit(cmdBuffer)
	cmdBuffer.Release()
	cmd.Release()
	return nil
}
