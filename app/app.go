// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import "image"

// App is the top-level application handler. It has two states:
// uninitialized, where every event is a no-op, and ready, entered
// exactly once via [App.Start] when the window and GPU state exist.
// The transition is one-way.
type App struct {
	state *State // nil until Start
}

// Ready reports whether Start has been called.
func (ap *App) Ready() bool {
	return ap.state != nil
}

// Start transitions the app to ready with the given state. Calling
// Start on a ready app is a no-op: the first state wins.
func (ap *App) Start(st *State) {
	if ap.state != nil {
		return
	}
	ap.state = st
}

// State returns the render state, or nil before Start.
func (ap *App) State() *State {
	return ap.state
}

// Resize forwards a window resize to the presentation target,
// reporting whether the new size was accepted. Resizes before Start
// are dropped.
func (ap *App) Resize(size image.Point) bool {
	if ap.state == nil {
		return false
	}
	return ap.state.Frames.Target().SetSize(size)
}

// Input forwards an input event, reporting whether it was consumed.
// Events before Start are not consumed.
func (ap *App) Input(ev any) bool {
	if ap.state == nil {
		return false
	}
	return ap.state.Interaction.Input(ev)
}

// RedrawRequested renders one frame. A nil return means the frame was
// presented or skipped recoverably; a non-nil return is fatal.
// Requests before Start are dropped.
func (ap *App) RedrawRequested() error {
	if ap.state == nil {
		return nil
	}
	return ap.state.Frames.RenderFrame()
}

// Release frees the render state, returning the app to uninitialized.
func (ap *App) Release() {
	ap.state.Release()
	ap.state = nil
}
