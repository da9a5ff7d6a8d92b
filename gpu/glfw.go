// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform
// builds. Other platforms (mobile, web) need to provide their own
// window and surface creation.

// Init initializes the windowing system.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return glfw.Init()
}

// Terminate shuts down the windowing system; call as the last thing
// before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// GLFWCreateWindow makes a new glfw window of the given size and title,
// with no client graphics API (WebGPU drives the surface directly),
// and returns it along with a wgpu surface bound to it.
// Event callbacks (resize, cursor, close) are wired by the caller.
func GLFWCreateWindow(size image.Point, title string) (*glfw.Window, *wgpu.Surface, error) {
	if err := Init(); err != nil {
		return nil, nil, err
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		Terminate()
		return nil, nil, err
	}
	surface := Instance().CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	return window, surface, nil
}
