// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene ingests a glTF document's mesh and material data into
// flat, tightly packed records ready for GPU upload.
package scene

import (
	"github.com/qmuntal/gltf"
)

// Load opens the glTF or GLB scene file at the given path and returns
// the parsed document. Parsing is entirely the concern of the gltf
// package; this package only reads the result.
func Load(path string) (*gltf.Document, error) {
	return gltf.Open(path)
}
