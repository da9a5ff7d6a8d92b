// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Shader manages a single compiled WGSL shader module.
// A single shader can have multiple entry points: see [ShaderEntry].
type Shader struct {
	// unique name of this shader
	Name string

	device *Device

	module *wgpu.ShaderModule
}

// NewShader returns a new Shader with the given name, to be compiled
// on the given device.
func NewShader(name string, dev *Device) *Shader {
	return &Shader{Name: name, device: dev}
}

// OpenCode compiles the given WGSL shader code.
func (sh *Shader) OpenCode(code string) error {
	module, err := sh.device.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          sh.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: code},
	})
	if err != nil {
		return fmt.Errorf("gpu.Shader %s: %w", sh.Name, err)
	}
	sh.module = module
	return nil
}

func (sh *Shader) Release() {
	if sh.module != nil {
		sh.module.Release()
		sh.module = nil
	}
}

// ShaderTypes are the different shader stages.
type ShaderTypes int32

const (
	UnknownShader ShaderTypes = iota
	VertexShader
	FragmentShader
)

// ShaderEntry is an entry point into shader code: the function that is
// actually called for a given stage.
type ShaderEntry struct {
	// Shader has the code
	Shader *Shader

	// Type is the stage of this entry point
	Type ShaderTypes

	// Entry is the name of the entry function, e.g., vs_main
	Entry string
}

// NewShaderEntry returns a new ShaderEntry for the given shader,
// stage, and entry function name.
func NewShaderEntry(sh *Shader, typ ShaderTypes, entry string) *ShaderEntry {
	return &ShaderEntry{Shader: sh, Type: typ, Entry: entry}
}
