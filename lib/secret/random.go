// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"crypto/rand"
	"fmt"
)

// FixedRandom is a Fixed byte-array container whose contents are
// guaranteed fresh: the bytes are the output of a single OS random
// source read and nothing else. The guarantee lives in the type --
// there is no constructor that accepts caller bytes, and conversion
// runs one way, from FixedRandom to Fixed.
type FixedRandom[A any] struct {
	inner Fixed[A]
}

// GenerateFixed returns a fresh random fixed container, filling the
// whole array from the OS random source in one read. RNG failure is
// fatal: secrets must never be generated from a degraded source, so
// the call panics rather than returning weaker bytes.
func GenerateFixed[A any]() *FixedRandom[A] {
	container, err := TryGenerateFixed[A]()
	if err != nil {
		panic(err.Error())
	}
	return container
}

// TryGenerateFixed is the non-fatal variant of GenerateFixed,
// surfacing RNG failure as *RNGError.
func TryGenerateFixed[A any]() (*FixedRandom[A], error) {
	container := &FixedRandom[A]{}
	view := mustByteView(&container.inner.value, "TryGenerateFixed")
	if _, err := rand.Read(view); err != nil {
		return nil, &RNGError{Err: err}
	}
	return container, nil
}

// Expose returns a pointer to the inner array. Treat it as read-only:
// writing through it voids the freshness guarantee the type carries.
func (r *FixedRandom[A]) Expose() *A {
	return &r.inner.value
}

// ExposeBytes returns the byte view of the inner array, read-only by
// the same convention as Expose. Encoding helpers consume this.
func (r *FixedRandom[A]) ExposeBytes() []byte {
	return mustByteView(&r.inner.value, "ExposeBytes")
}

// Len returns the array length in bytes.
func (r *FixedRandom[A]) Len() int { return r.inner.Len() }

// IntoFixed moves the bytes into a plain Fixed container, discarding
// the freshness tag. The random container is wiped; there is no
// reverse conversion.
func (r *FixedRandom[A]) IntoFixed() *Fixed[A] {
	moved := &Fixed[A]{value: r.inner.value}
	r.inner.Wipe()
	return moved
}

// Wipe zeros the inner array.
func (r *FixedRandom[A]) Wipe() { r.inner.Wipe() }

// String implements fmt.Stringer with the redacted literal.
func (r *FixedRandom[A]) String() string { return Redacted }

// GoString implements fmt.GoStringer with the redacted literal.
func (r *FixedRandom[A]) GoString() string { return Redacted }

// Format implements fmt.Formatter: every verb prints the redacted
// literal.
func (r *FixedRandom[A]) Format(state fmt.State, verb rune) {
	fmt.Fprint(state, Redacted)
}

// DynamicRandom is a Dynamic byte container with the same freshness
// guarantee as FixedRandom: sized at call time, filled by a single OS
// random source read, no byte-accepting constructor.
type DynamicRandom struct {
	inner Dynamic[Bytes]
}

// GenerateDynamic returns length fresh random bytes in a dynamic
// container. RNG failure is fatal, as in GenerateFixed.
func GenerateDynamic(length int) *DynamicRandom {
	container, err := TryGenerateDynamic(length)
	if err != nil {
		panic(err.Error())
	}
	return container
}

// TryGenerateDynamic is the non-fatal variant of GenerateDynamic.
func TryGenerateDynamic(length int) (*DynamicRandom, error) {
	if length < 0 {
		return nil, fmt.Errorf("secret: random length must be non-negative, got %d", length)
	}
	buffer := make([]byte, length)
	if _, err := rand.Read(buffer); err != nil {
		return nil, &RNGError{Err: err}
	}
	return &DynamicRandom{inner: Dynamic[Bytes]{value: &buffer}}, nil
}

// ExposeBytes returns the byte view of the buffer, read-only by
// convention.
func (r *DynamicRandom) ExposeBytes() []byte {
	return *r.inner.Expose()
}

// Len returns the buffer length in bytes.
func (r *DynamicRandom) Len() int { return r.inner.Len() }

// IntoDynamic moves the buffer into a plain Dynamic container,
// discarding the freshness tag. The random container keeps nothing.
func (r *DynamicRandom) IntoDynamic() *Dynamic[Bytes] {
	moved := &Dynamic[Bytes]{value: r.inner.value}
	empty := make([]byte, 0)
	r.inner.value = &empty
	return moved
}

// Wipe zeros the buffer.
func (r *DynamicRandom) Wipe() { r.inner.Wipe() }

// String implements fmt.Stringer with the redacted literal.
func (r *DynamicRandom) String() string { return Redacted }

// GoString implements fmt.GoStringer with the redacted literal.
func (r *DynamicRandom) GoString() string { return Redacted }

// Format implements fmt.Formatter: every verb prints the redacted
// literal.
func (r *DynamicRandom) Format(state fmt.State, verb rune) {
	fmt.Fprint(state, Redacted)
}
