// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

// PointerMove is a pointer-move event in window-local pixel
// coordinates, already clamped to the window bounds by the event
// source.
type PointerMove struct {
	X, Y float64
}

// Interaction maps input events onto render state. Currently the
// pointer position drives the clear color: red follows the horizontal
// fraction and green the vertical fraction of the window.
type Interaction struct {
	frames *Frames
}

// NewInteraction returns an Interaction mutating the given renderer.
func NewInteraction(fr *Frames) *Interaction {
	return &Interaction{frames: fr}
}

// Input handles one event, reporting whether it was consumed.
// Pointer moves are consumed; everything else is passed over.
func (in *Interaction) Input(ev any) bool {
	switch e := ev.(type) {
	case PointerMove:
		in.pointerMoved(e.X, e.Y)
		return true
	}
	return false
}

func (in *Interaction) pointerMoved(x, y float64) {
	sz := in.frames.target.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	in.frames.ClearColor.R = x / float64(sz.X)
	in.frames.ClearColor.G = y / float64(sz.Y)
}
