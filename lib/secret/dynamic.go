// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import "fmt"

// Bytes is the canonical inner type for runtime-sized binary secrets.
type Bytes = []byte

// Text is the canonical inner type for textual secrets. It is a byte
// buffer rather than a string because Go strings are immutable and
// cannot be wiped. Convert to string only at API boundaries that
// demand one, via ExposeString -- the conversion makes an unwipeable
// heap copy, the same limitation Buffer.ExposeString documents.
type Text []byte

// ExposeString returns the text as a string. The returned string is
// an immutable heap copy outside the wipe lifecycle; keep its scope
// as small as possible.
func (t *Text) ExposeString() string {
	return string(*t)
}

// Wipe zeros the text buffer over its full backing capacity.
func (t *Text) Wipe() {
	Zero((*t)[:cap(*t)])
}

// Dynamic holds a runtime-sized secret behind a single owning heap
// indirection. The typical inner types are [Bytes] and [Text]; any
// heap-owned type works, with wipe support following the same rules
// as Fixed.
//
// Mutating a growable inner buffer can reallocate and leave stale
// secret bytes in the old backing memory, which Wipe cannot reach.
// Size dynamic secrets at construction and mutate in place.
type Dynamic[T any] struct {
	value *T
}

// NewDynamic moves an owned value into a dynamic container. As with
// NewFixed, the caller's copy is not scrubbed.
func NewDynamic[T any](value T) *Dynamic[T] {
	return &Dynamic[T]{value: &value}
}

// DynamicFromSlice copies source into a new byte container and zeros
// the source, leaving the container as the only live copy.
func DynamicFromSlice(source []byte) *Dynamic[Bytes] {
	owned := make([]byte, len(source))
	copy(owned, source)
	Zero(source)
	return &Dynamic[Bytes]{value: &owned}
}

// DynamicFromString copies s into a new text container. The caller's
// string is immutable and cannot be scrubbed; when the origin of the
// secret is under your control, prefer DynamicFromSlice or
// ReadFromPath so the source can be zeroed.
func DynamicFromString(s string) *Dynamic[Text] {
	owned := Text(s)
	return &Dynamic[Text]{value: &owned}
}

// Expose returns a pointer to the inner value, allocating a zero
// value first if the container was never initialized. This is the
// sole read and write path.
func (d *Dynamic[T]) Expose() *T {
	if d.value == nil {
		d.value = new(T)
	}
	return d.value
}

// With passes the inner value to fn and returns when fn does; the
// scoped counterpart of Expose.
func (d *Dynamic[T]) With(fn func(value *T)) {
	fn(d.Expose())
}

// Len returns the element count of the inner value: bytes for Bytes
// and Text, elements for other collections, 1 for scalars. Note that
// the equality engine always operates on bytes regardless of what
// Len counts.
func (d *Dynamic[T]) Len() int {
	return innerLen(d.Expose())
}

// IsEmpty reports whether Len is zero.
func (d *Dynamic[T]) IsEmpty() bool {
	return d.Len() == 0
}

// Wipe zeros the inner value in place, including the unused capacity
// of byte buffers. Idempotent; length is unchanged.
func (d *Dynamic[T]) Wipe() {
	wipeAny(d.Expose())
}

// String implements fmt.Stringer with the redacted literal.
func (d *Dynamic[T]) String() string { return Redacted }

// GoString implements fmt.GoStringer with the redacted literal.
func (d *Dynamic[T]) GoString() string { return Redacted }

// Format implements fmt.Formatter: every verb prints the redacted
// literal.
func (d *Dynamic[T]) Format(state fmt.State, verb rune) {
	fmt.Fprint(state, Redacted)
}
