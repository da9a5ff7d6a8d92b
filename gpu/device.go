// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Device holds the logical device and associated submission queue.
type Device struct {
	// logical device
	Device *wgpu.Device

	// queue for submitting command buffers to the device
	Queue *wgpu.Queue
}

// NewDevice requests a logical device and queue from the given GPU
// adapter, with no optional features and default limits.
// Like adapter selection, this blocks until the asynchronous
// negotiation completes, and failure is fatal for the caller.
func NewDevice(gp *GPU) (*Device, error) {
	limits := wgpu.DefaultLimits()
	wd, err := gp.adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:          gp.Name,
		RequiredLimits: &wgpu.RequiredLimits{Limits: limits},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu.NewDevice: no GPU device available: %w", err)
	}
	return &Device{Device: wd, Queue: wd.GetQueue()}, nil
}

// WaitDone waits until the device is done with all submitted work.
func (dv *Device) WaitDone() {
	dv.Device.Poll(true, nil)
}

func (dv *Device) Release() {
	if dv.Device == nil {
		return
	}
	dv.Device.Release()
	dv.Device = nil
	dv.Queue = nil
}
