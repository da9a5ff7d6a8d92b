// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides small helpers that combine error handling
// with slog logging, for the common case of errors that should be
// reported but not propagated further.
package errors

import (
	"errors"
	"log/slog"
)

// New returns an error with the given text, as in the standard library.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target,
// as in the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}
