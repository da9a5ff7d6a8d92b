// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"
	"fmt"
	"strings"
)

// Frame acquisition errors, classified from the underlying binding
// errors by [ClassifyAcquireError]. The frame loop reacts differently
// to each: Lost reconfigures the surface and drops the frame, Timeout
// drops the frame only, and OutOfMemory terminates the application.
var (
	// ErrSurfaceLost indicates the surface is lost or outdated
	// (e.g., after a display mode change). Recoverable by
	// reconfiguring the surface at its last known size.
	ErrSurfaceLost = errors.New("gpu: surface lost or outdated")

	// ErrSurfaceTimeout indicates frame acquisition timed out.
	// Transient: the next frame is attempted normally.
	ErrSurfaceTimeout = errors.New("gpu: surface acquisition timeout")

	// ErrSurfaceOutOfMemory indicates the surface cannot allocate a
	// frame. Fatal: there is no recovery.
	ErrSurfaceOutOfMemory = errors.New("gpu: surface out of memory")
)

// ClassifyAcquireError maps an error from surface texture acquisition
// onto the frame error taxonomy: [ErrSurfaceLost], [ErrSurfaceTimeout],
// or [ErrSurfaceOutOfMemory]. The binding reports acquisition status
// as error text, so classification is by message content; anything
// unrecognized is treated as fatal, same as out-of-memory.
func ClassifyAcquireError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		return ErrSurfaceTimeout
	case strings.Contains(msg, "outdated") || strings.Contains(msg, "suboptimal") || strings.Contains(msg, "lost"):
		return ErrSurfaceLost
	default:
		// fatal; keep the binding's message for the final report
		return fmt.Errorf("%w: %v", ErrSurfaceOutOfMemory, err)
	}
}
