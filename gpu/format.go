// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureFormat describes the size and WebGPU format of a render target.
type TextureFormat struct {
	// Size of the target in pixels
	Size image.Point

	// Texture format: RGBA8UnormSrgb is the default
	Format wgpu.TextureFormat

	// number of samples; always 1 here (no multisampling)
	Samples int
}

func (tf *TextureFormat) Defaults() {
	tf.Format = wgpu.TextureFormatRGBA8UnormSrgb
	tf.Samples = 1
}

// String returns a human-readable version of the format.
func (tf *TextureFormat) String() string {
	return fmt.Sprintf("Size: %v  Format: %s  Samples: %d", tf.Size, TextureFormatName(tf.Format), tf.Samples)
}

// SetSize sets the width, height.
func (tf *TextureFormat) SetSize(w, h int) {
	tf.Size = image.Point{X: w, Y: h}
}

// Size32 returns the size as uint32 values.
func (tf *TextureFormat) Size32() (width, height uint32) {
	return uint32(tf.Size.X), uint32(tf.Size.Y)
}

// Aspect returns the aspect ratio X / Y.
func (tf *TextureFormat) Aspect() float32 {
	if tf.Size.Y > 0 {
		return float32(tf.Size.X) / float32(tf.Size.Y)
	}
	return 1.3
}

// srgbFormats are the standard gamma-corrected presentation formats.
var srgbFormats = map[wgpu.TextureFormat]bool{
	wgpu.TextureFormatRGBA8UnormSrgb: true,
	wgpu.TextureFormatBGRA8UnormSrgb: true,
}

// IsSrgb returns true if the given format is a standard
// gamma-corrected (sRGB) format.
func IsSrgb(ft wgpu.TextureFormat) bool {
	return srgbFormats[ft]
}

// PreferredFormat returns the surface format to use from the
// capability-reported list: the first sRGB format, else the first
// available. The list must be non-empty.
func PreferredFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, ft := range formats {
		if IsSrgb(ft) {
			return ft
		}
	}
	return formats[0]
}

// textureFormatNames translates common presentation formats into
// human-readable strings.
var textureFormatNames = map[wgpu.TextureFormat]string{
	wgpu.TextureFormatRGBA8UnormSrgb: "RGBA 8bit sRGB colorspace",
	wgpu.TextureFormatRGBA8Unorm:     "RGBA 8bit unsigned linear colorspace",
	wgpu.TextureFormatBGRA8UnormSrgb: "BGRA 8bit sRGB colorspace",
	wgpu.TextureFormatBGRA8Unorm:     "BGRA 8bit unsigned linear colorspace",
}

// TextureFormatName returns a human-readable name for given format,
// for the most common presentation formats.
func TextureFormatName(ft wgpu.TextureFormat) string {
	if nm, ok := textureFormatNames[ft]; ok {
		return nm
	}
	return fmt.Sprintf("format %d", ft)
}
