// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"fmt"
	"reflect"
)

// Fixed holds a secret value with compile-time-known layout inline,
// with no heap indirection of its own. The typical inner type is a
// byte array ([32]byte, [64]byte, ...) or a scalar.
//
// The inner value is reachable only through Expose and With. There is
// no implicit conversion to T, fmt output is redacted, equality and
// cloning are separate explicit opt-ins, and serialization is refused
// unless T carries the SerializableInner marker.
//
// Call Wipe (usually "defer f.Wipe()") when the secret is no longer
// needed. Wipe zeros byte arrays, byte slices, and scalars, and
// forwards to a Wiper implementation; inner types with none of those
// shapes are left as they are.
type Fixed[T any] struct {
	value T
}

// NewFixed wraps an owned value in a fixed container. The caller's
// copy of the value is not scrubbed -- prefer building secrets
// directly into the container via FixedFromSlice or GenerateFixed.
func NewFixed[T any](value T) *Fixed[T] {
	return &Fixed[T]{value: value}
}

// FixedFromSlice copies source into a new fixed container whose inner
// type A must be a byte array. It fails with *SliceLengthError when
// len(source) differs from the array size; on success the source
// slice is zeroed, leaving the container as the only live copy.
//
// Calling this with a non-byte-array A is a programmer error and
// panics.
func FixedFromSlice[A any](source []byte) (*Fixed[A], error) {
	container := &Fixed[A]{}
	view := mustByteView(&container.value, "FixedFromSlice")
	if len(source) != len(view) {
		return nil, &SliceLengthError{Expected: len(view), Got: len(source)}
	}
	copy(view, source)
	Zero(source)
	return container, nil
}

// Expose returns a pointer to the inner value. This is the sole read
// and write path; the pointer must not outlive the container. Every
// call site is an auditable exposure of the secret.
func (f *Fixed[T]) Expose() *T {
	return &f.value
}

// With passes the inner value to fn and returns when fn does. The
// scoped form is preferred over Expose because the reference cannot
// escape the call without an explicit assignment inside fn.
func (f *Fixed[T]) With(fn func(value *T)) {
	fn(&f.value)
}

// Len returns the element count of the inner value: the array length
// for arrays, the byte length for byte slices, and 1 for scalars.
func (f *Fixed[T]) Len() int {
	return innerLen(&f.value)
}

// IsEmpty reports whether Len is zero.
func (f *Fixed[T]) IsEmpty() bool {
	return f.Len() == 0
}

// Wipe zeros the inner value in place. Idempotent; the container
// stays structurally valid with zeroed contents.
func (f *Fixed[T]) Wipe() {
	wipeAny(&f.value)
}

// String implements fmt.Stringer with the redacted literal.
func (f *Fixed[T]) String() string { return Redacted }

// GoString implements fmt.GoStringer with the redacted literal, so
// %#v cannot leak the inner value either.
func (f *Fixed[T]) GoString() string { return Redacted }

// Format implements fmt.Formatter: every verb prints the redacted
// literal.
func (f *Fixed[T]) Format(state fmt.State, verb rune) {
	fmt.Fprint(state, Redacted)
}

// innerLen computes the element count of the value behind pointer.
// Collections report their length; anything else counts as a single
// element. Never fails.
func innerLen(pointer any) int {
	value := reflect.ValueOf(pointer).Elem()
	switch value.Kind() {
	case reflect.Slice, reflect.Array, reflect.String, reflect.Map:
		return value.Len()
	default:
		return 1
	}
}
