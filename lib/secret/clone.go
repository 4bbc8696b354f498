// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

// CloneableInner marks an inner type as safe to duplicate without
// defeating the secret discipline, and supplies the duplication
// itself. The container types never clone on their own; Clone and
// CloneDynamic demand this marker, so every type that may be
// duplicated is declared at exactly one greppable site.
//
// The library attaches the marker to CloneableBytes, CloneableText,
// and CloneableArray. Attaching it to any other type is a user
// decision made by implementing CloneSecret.
type CloneableInner[T any] interface {
	// CloneSecret returns an independent deep copy of the value.
	CloneSecret() T
}

// Scalar covers the primitive inner types that are trivially safe to
// duplicate: integers of every width, booleans, bytes, and runes.
// This is the blanket attachment counterpart of CloneableInner for
// types that cannot carry methods.
type Scalar interface {
	~bool | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Clone duplicates a fixed container whose inner type carries the
// CloneableInner marker.
func Clone[T CloneableInner[T]](f *Fixed[T]) *Fixed[T] {
	return &Fixed[T]{value: f.value.CloneSecret()}
}

// CloneDynamic duplicates a dynamic container whose inner type
// carries the CloneableInner marker.
func CloneDynamic[T CloneableInner[T]](d *Dynamic[T]) *Dynamic[T] {
	cloned := (*d.Expose()).CloneSecret()
	return &Dynamic[T]{value: &cloned}
}

// CloneScalar duplicates a fixed container holding a primitive.
func CloneScalar[T Scalar](f *Fixed[T]) *Fixed[T] {
	return &Fixed[T]{value: f.value}
}

// CloneableBytes is a byte buffer that carries the clone marker and
// wipes over its full capacity. Use it as the inner type of a
// Dynamic when the secret legitimately needs duplication.
type CloneableBytes []byte

// CloneSecret returns an independent copy of the buffer.
func (b CloneableBytes) CloneSecret() CloneableBytes {
	cloned := make(CloneableBytes, len(b))
	copy(cloned, b)
	return cloned
}

// Wipe zeros the buffer over its full backing capacity.
func (b *CloneableBytes) Wipe() {
	Zero((*b)[:cap(*b)])
}

// CloneableText is a text buffer that carries the clone marker.
type CloneableText []byte

// CloneSecret returns an independent copy of the text.
func (t CloneableText) CloneSecret() CloneableText {
	cloned := make(CloneableText, len(t))
	copy(cloned, t)
	return cloned
}

// Wipe zeros the text over its full backing capacity.
func (t *CloneableText) Wipe() {
	Zero((*t)[:cap(*t)])
}

// ExposeString returns the text as an immutable heap string; see
// Text.ExposeString for the lifecycle caveat.
func (t *CloneableText) ExposeString() string {
	return string(*t)
}

// CloneableArray wraps a byte array inner type with the clone marker.
// The array value itself is reached through the Value field after the
// container's exposure contract.
type CloneableArray[A any] struct {
	Value A
}

// CloneSecret returns a copy of the array; Go array assignment copies
// every element.
func (a CloneableArray[A]) CloneSecret() CloneableArray[A] {
	return CloneableArray[A]{Value: a.Value}
}

// Wipe zeros the array. Panics if A is not a byte array.
func (a *CloneableArray[A]) Wipe() {
	Zero(mustByteView(&a.Value, "CloneableArray.Wipe"))
}
