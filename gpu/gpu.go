// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu provides a thin WebGPU rendering layer: GPU adapter and
// device setup, a window-backed presentation surface, an immutable
// graphics pipeline, and vertex / material buffer upload.
package gpu

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Debug enables extra logging of GPU configuration steps.
var Debug = false

var theInstance *wgpu.Instance

// Instance returns the global wgpu instance, creating it on first call.
// The instance is a handle to the underlying GPU backend
// (Vulkan, Metal, DX12, or browser WebGPU).
func Instance() *wgpu.Instance {
	if theInstance == nil {
		theInstance = wgpu.CreateInstance(nil)
	}
	return theInstance
}

// GPU represents the physical GPU adapter, which is selected once
// at startup and lives for the process lifetime.
// Use [NewDevice] to get a logical device and queue from it.
type GPU struct {
	// optional name for logging
	Name string

	// Limits are the adapter's supported limits, for buffer alignment
	// and related constraints.
	Limits wgpu.SupportedLimits

	adapter *wgpu.Adapter
}

// NewGPU selects a GPU adapter compatible with presenting to the given
// surface, using the default power preference and no software fallback.
// The underlying negotiation is asynchronous; the binding blocks the
// calling thread until it completes, which is the one deliberate
// synchronous boundary at startup. Failure is fatal for the caller:
// nothing can proceed without an adapter.
func NewGPU(name string, surface *wgpu.Surface) (*GPU, error) {
	gp := &GPU{Name: name}
	adapter, err := Instance().RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    surface,
		ForceFallbackAdapter: false,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu.NewGPU: no GPU adapter available: %w", err)
	}
	gp.adapter = adapter
	gp.Limits = adapter.GetLimits()
	if Debug {
		slog.Info("gpu: adapter acquired", "name", gp.Name)
	}
	return gp, nil
}

func (gp *GPU) Release() {
	if gp == nil {
		return
	}
	if gp.adapter != nil {
		gp.adapter.Release()
		gp.adapter = nil
	}
}
