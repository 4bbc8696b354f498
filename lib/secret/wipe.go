// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"crypto/subtle"
	"reflect"
	"runtime"
)

// Wiper is implemented by inner types that can overwrite their owned
// bytes with zeros. Container Wipe methods forward to it, and the
// containers run it through every explicit wipe path. Wipe must be
// idempotent: wiping an already-wiped value is a no-op.
type Wiper interface {
	Wipe()
}

// Zero overwrites b with zeros. The write goes through
// subtle.ConstantTimeCopy so the compiler cannot prove the buffer dead
// and elide the store, and the slice is kept live past the copy.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	runtime.KeepAlive(&b)
}

// wipeAny zeros the value behind pointer, which must be a pointer to
// the inner value of a container. Dispatch order: a Wiper
// implementation wins; otherwise byte slices are zeroed over their
// full backing capacity, byte arrays over their full extent, and
// scalar values set to zero. Types with none of these shapes are left
// untouched -- wiping them has no defined meaning.
func wipeAny(pointer any) {
	if wiper, ok := pointer.(Wiper); ok {
		wiper.Wipe()
		return
	}

	value := reflect.ValueOf(pointer).Elem()
	switch value.Kind() {
	case reflect.Slice:
		if value.Type().Elem().Kind() == reflect.Uint8 {
			view := value.Bytes()
			// Zero the unused tail too: a grown buffer may have
			// copied secret bytes past its current length.
			Zero(view[:cap(view)])
		}
	case reflect.Array:
		if value.Type().Elem().Kind() == reflect.Uint8 {
			Zero(value.Bytes())
		}
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64, reflect.Uint, reflect.Uint8,
		reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64,
		reflect.Complex128:
		value.SetZero()
	}
}
