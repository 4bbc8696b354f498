// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"errors"
	"fmt"
)

// ErrNotExportable is returned when a container is driven through
// json or cbor marshaling but its inner type does not carry the
// SerializableInner marker. Attach the marker (use an Exportable
// wrapper, or implement SerializableSecret on your own inner type) at
// one reviewable site to permit serialization.
var ErrNotExportable = errors.New("secret: inner type is not marked serializable")

// SliceLengthError reports a fixed-container construction from a
// slice of the wrong length. It carries only lengths, never bytes.
type SliceLengthError struct {
	Expected int
	Got      int
}

func (e *SliceLengthError) Error() string {
	return fmt.Sprintf("secret: slice length %d does not match fixed size %d", e.Got, e.Expected)
}

// RNGError reports a failure of the operating system random source.
// Only the non-panicking TryGenerate constructors return it; the
// Generate variants treat RNG failure as fatal.
type RNGError struct {
	Err error
}

func (e *RNGError) Error() string {
	return fmt.Sprintf("secret: reading OS random source: %v", e.Err)
}

func (e *RNGError) Unwrap() error { return e.Err }
