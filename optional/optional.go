// Copyright 2024 The vecmin Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in the
// LICENSE file

// Package optional provides a generic two-variant container: a value of type
// T is either present (Something) or absent (Nothing), with no third state.

package optional

import "fmt"

// Option holds either a value of type T or nothing. The zero value is Nothing.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromNative converts Go's native "(value, ok)" pair into an Option.
func FromNative[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// Native is the inverse of FromNative.
func (o Option[T]) Native() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Unwrap returns the held value and panics if o is empty.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic("optional: unwrap of Nothing")
	}
	return o.value
}

// UnwrapOr returns the held value, or def if o is empty.
func (o Option[T]) UnwrapOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// String follow the fmt.Stringer interface
// returns "Something(v)" or "Nothing"
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Something(%v)", o.value)
	}
	return "Nothing"
}

// Display renders o for the end user:
// "The number is: 5" when a value is held, "The number is: <nothing>" otherwise.
func (o Option[T]) Display() string {
	if o.ok {
		return fmt.Sprintf("The number is: %v", o.value)
	}
	return "The number is: <nothing>"
}
