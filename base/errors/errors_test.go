// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))

	err := New("something failed")
	assert.Equal(t, err, Log(err))
}

func TestIs(t *testing.T) {
	sentinel := New("sentinel")
	wrapped := fmt.Errorf("context: %w", sentinel)
	assert.True(t, Is(wrapped, sentinel))
	assert.False(t, Is(New("other"), sentinel))
}
