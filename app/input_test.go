// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteractionPointerMove(t *testing.T) {
	ft := &fakeTarget{size: image.Pt(200, 100)}
	fr, _ := fakeFrames(ft)
	blue, alpha := fr.ClearColor.B, fr.ClearColor.A
	in := NewInteraction(fr)

	assert.True(t, in.Input(PointerMove{X: 50, Y: 25}))
	assert.Equal(t, 0.25, fr.ClearColor.R)
	assert.Equal(t, 0.25, fr.ClearColor.G)
	assert.Equal(t, blue, fr.ClearColor.B)
	assert.Equal(t, alpha, fr.ClearColor.A)

	// window corners map onto the channel extremes
	assert.True(t, in.Input(PointerMove{X: 0, Y: 0}))
	assert.Equal(t, 0.0, fr.ClearColor.R)
	assert.Equal(t, 0.0, fr.ClearColor.G)
	assert.True(t, in.Input(PointerMove{X: 200, Y: 100}))
	assert.Equal(t, 1.0, fr.ClearColor.R)
	assert.Equal(t, 1.0, fr.ClearColor.G)
}

func TestInteractionOtherEvents(t *testing.T) {
	ft := &fakeTarget{size: image.Pt(200, 100)}
	fr, _ := fakeFrames(ft)
	in := NewInteraction(fr)
	before := fr.ClearColor

	assert.False(t, in.Input("key press"))
	assert.False(t, in.Input(nil))
	assert.Equal(t, before, fr.ClearColor)
}

func TestInteractionZeroSize(t *testing.T) {
	ft := &fakeTarget{}
	fr, _ := fakeFrames(ft)
	in := NewInteraction(fr)
	before := fr.ClearColor

	// consumed, but no division by a zero extent
	assert.True(t, in.Input(PointerMove{X: 10, Y: 10}))
	assert.Equal(t, before, fr.ClearColor)
}
