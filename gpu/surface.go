// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Surface manages the WebGPU surface for a window, owning its
// configuration (format, size, present mode, alpha mode) and the
// per-frame texture acquisition and presentation.
// The configuration is mutated only by [Surface.SetSize]; the stored
// size must match the live window's backbuffer size when a frame is
// acquired, or acquisition fails with a recoverable error.
type Surface struct {
	// GPU is the physical adapter this surface presents through.
	GPU *GPU

	// Device is the logical device for this surface. Each window
	// surface has its own device, configured for that surface.
	Device *Device

	// Format has the current size and texture format of the surface.
	Format TextureFormat

	surface      *wgpu.Surface
	config       wgpu.SurfaceConfiguration
	presentModes []wgpu.PresentMode

	// current surface texture, released on Present
	curTexture *wgpu.Texture
}

// NewSurface configures the given wgpu surface for presentation at the
// given size, creating a new logical device for it on the given GPU.
// The texture format is the first sRGB format the surface reports,
// else the first reported format; present and alpha modes are the
// first reported ones.
func NewSurface(gp *GPU, sp *wgpu.Surface, size image.Point) (*Surface, error) {
	dev, err := NewDevice(gp)
	if err != nil {
		return nil, err
	}
	sf := &Surface{GPU: gp, Device: dev, surface: sp}
	sf.Format.Defaults()
	sf.Format.Size = size

	caps := sp.GetCapabilities(gp.adapter)
	sf.Format.Format = PreferredFormat(caps.Formats)
	sf.presentModes = caps.PresentModes
	sf.config = wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.Format.Format,
		Width:       uint32(size.X),
		Height:      uint32(size.Y),
		PresentMode: caps.PresentModes[0],
		AlphaMode:   caps.AlphaModes[0],
	}
	sf.Reconfigure()
	if Debug {
		slog.Info("gpu: surface configured", "format", sf.Format.String())
	}
	return sf, nil
}

// SetSize sets a new size for the surface and reconfigures it.
// A zero dimension (e.g., a minimized window) is ignored and returns
// false; no reconfigure happens in that case. Sizes beyond the
// adapter's maximum texture dimension are clamped to it.
func (sf *Surface) SetSize(size image.Point) bool {
	size, ok := clampSize(size, int(sf.GPU.Limits.Limits.MaxTextureDimension2D))
	if !ok {
		return false
	}
	sf.Format.Size = size
	sf.config.Width = uint32(size.X)
	sf.config.Height = uint32(size.Y)
	sf.Reconfigure()
	return true
}

// clampSize decides whether a requested surface size can be
// configured: a zero or negative dimension is rejected outright,
// while dimensions above max (the adapter's 2D texture limit, 0 for
// no limit) are clamped rather than rejected.
func clampSize(size image.Point, max int) (image.Point, bool) {
	if size.X <= 0 || size.Y <= 0 {
		return size, false
	}
	if max > 0 {
		size.X = min(size.X, max)
		size.Y = min(size.Y, max)
	}
	return size, true
}

// SetVsync switches between a vsynced (Fifo) present mode and the
// lowest-latency mode the surface supports, and reconfigures.
func (sf *Surface) SetVsync(on bool) {
	sf.config.PresentMode = presentMode(sf.presentModes, on)
	sf.Reconfigure()
}

// presentMode selects Fifo for vsync (all surfaces support it), else
// the first low-latency mode on offer, falling back to the surface's
// first reported mode.
func presentMode(modes []wgpu.PresentMode, vsync bool) wgpu.PresentMode {
	if vsync {
		return wgpu.PresentModeFifo
	}
	for _, m := range modes {
		if m == wgpu.PresentModeMailbox || m == wgpu.PresentModeImmediate {
			return m
		}
	}
	if len(modes) > 0 {
		return modes[0]
	}
	return wgpu.PresentModeFifo
}

// Reconfigure applies the stored configuration to the surface.
// Called at creation, on every accepted resize, and to recover
// after the surface is lost or outdated.
func (sf *Surface) Reconfigure() {
	sf.surface.Configure(sf.GPU.adapter, sf.Device.Device, &sf.config)
}

// Size returns the currently configured surface size in pixels.
func (sf *Surface) Size() image.Point {
	return sf.Format.Size
}

// AcquireNextTexture acquires the next presentable frame and returns
// a full-surface view of it. On failure the returned error is one of
// [ErrSurfaceLost], [ErrSurfaceTimeout], or [ErrSurfaceOutOfMemory];
// see [ClassifyAcquireError]. The caller must end the frame with
// [Surface.Present] on success.
func (sf *Surface) AcquireNextTexture() (*wgpu.TextureView, error) {
	tex, err := sf.surface.GetCurrentTexture()
	if err != nil {
		return nil, ClassifyAcquireError(err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, ClassifyAcquireError(err)
	}
	sf.curTexture = tex
	return view, nil
}

// Present presents the texture acquired by [Surface.AcquireNextTexture]
// to the window.
func (sf *Surface) Present() {
	sf.surface.Present()
	if sf.curTexture != nil {
		sf.curTexture.Release()
		sf.curTexture = nil
	}
}

func (sf *Surface) Release() {
	if sf == nil {
		return
	}
	if sf.curTexture != nil {
		sf.curTexture.Release()
		sf.curTexture = nil
	}
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
	if sf.Device != nil {
		sf.Device.Release()
		sf.Device = nil
	}
	sf.GPU = nil
}
