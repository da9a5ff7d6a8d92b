// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"image"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"

	"github.com/facet3d/facet/base/errors"
	"github.com/facet3d/facet/gpu"
)

// fakeTarget satisfies Target without a GPU, recording the calls a
// frame makes so the loop's reactions can be asserted.
type fakeTarget struct {
	size       image.Point
	acquireErr error

	acquires     int
	reconfigures int
	presents     int
}

func (ft *fakeTarget) AcquireNextTexture() (*wgpu.TextureView, error) {
	ft.acquires++
	if ft.acquireErr != nil {
		return nil, ft.acquireErr
	}
	return nil, nil
}

func (ft *fakeTarget) Reconfigure() { ft.reconfigures++ }

func (ft *fakeTarget) Present() { ft.presents++ }

func (ft *fakeTarget) SetSize(size image.Point) bool {
	if size.X <= 0 || size.Y <= 0 {
		return false
	}
	ft.size = size
	return true
}

func (ft *fakeTarget) Size() image.Point { return ft.size }

// fakeFrames returns a Frames over a fake target with command
// encoding stubbed out, plus a counter of encoded frames.
func fakeFrames(ft *fakeTarget) (*Frames, *int) {
	fr := NewFrames(nil, ft, nil, nil, nil)
	encodes := 0
	fr.encode = func(view *wgpu.TextureView) error {
		encodes++
		return nil
	}
	return fr, &encodes
}

func TestRenderFrame(t *testing.T) {
	ft := &fakeTarget{size: image.Pt(640, 480)}
	fr, encodes := fakeFrames(ft)

	assert.NoError(t, fr.RenderFrame())
	assert.Equal(t, 1, ft.acquires)
	assert.Equal(t, 1, *encodes)
	assert.Equal(t, 1, ft.presents)
	assert.Equal(t, 0, ft.reconfigures)
}

func TestRenderFrameLost(t *testing.T) {
	ft := &fakeTarget{size: image.Pt(640, 480), acquireErr: gpu.ErrSurfaceLost}
	fr, encodes := fakeFrames(ft)

	// a lost surface reconfigures exactly once and drops the frame
	assert.NoError(t, fr.RenderFrame())
	assert.Equal(t, 1, ft.reconfigures)
	assert.Equal(t, 0, *encodes)
	assert.Equal(t, 0, ft.presents)

	// each lost frame reconfigures again; recovery ends the cycle
	assert.NoError(t, fr.RenderFrame())
	assert.Equal(t, 2, ft.reconfigures)
	ft.acquireErr = nil
	assert.NoError(t, fr.RenderFrame())
	assert.Equal(t, 2, ft.reconfigures)
	assert.Equal(t, 1, *encodes)
	assert.Equal(t, 1, ft.presents)
}

func TestRenderFrameTimeout(t *testing.T) {
	ft := &fakeTarget{size: image.Pt(640, 480), acquireErr: gpu.ErrSurfaceTimeout}
	fr, encodes := fakeFrames(ft)

	// a timeout only skips the frame; no reconfigure, not fatal
	assert.NoError(t, fr.RenderFrame())
	assert.Equal(t, 0, ft.reconfigures)
	assert.Equal(t, 0, *encodes)
	assert.Equal(t, 0, ft.presents)
}

func TestRenderFrameOutOfMemory(t *testing.T) {
	ft := &fakeTarget{size: image.Pt(640, 480), acquireErr: gpu.ErrSurfaceOutOfMemory}
	fr, encodes := fakeFrames(ft)

	err := fr.RenderFrame()
	assert.True(t, errors.Is(err, gpu.ErrSurfaceOutOfMemory))
	assert.Equal(t, 0, ft.reconfigures)
	assert.Equal(t, 0, *encodes)
	assert.Equal(t, 0, ft.presents)
}

func TestRenderFrameEncodeError(t *testing.T) {
	ft := &fakeTarget{size: image.Pt(640, 480)}
	fr, _ := fakeFrames(ft)
	fail := errors.New("encode failed")
	fr.encode = func(view *wgpu.TextureView) error { return fail }

	err := fr.RenderFrame()
	assert.True(t, errors.Is(err, fail))
	assert.Equal(t, 0, ft.presents)
}
