// Copyright 2024 The vecmin Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in the
// LICENSE file

// Package errors provides an error type that carries the stack trace of its
// creation site, and a non-fatal warning channel for diagnostics that must
// reach the user without aborting anything.
// The package is fully compatible with the standard library errors package.

package errors
