// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import "reflect"

// byteView returns the backing bytes of the value behind pointer when
// that value is a byte array or byte slice, and reports whether a view
// exists. The view aliases the value; writes through it mutate the
// container. Used by the constructors, the random generators, and the
// equality lifts, all of which are defined only for byte containers.
func byteView(pointer any) ([]byte, bool) {
	switch concrete := pointer.(type) {
	case *[]byte:
		return *concrete, true
	case *Text:
		return []byte(*concrete), true
	}

	value := reflect.ValueOf(pointer).Elem()
	switch value.Kind() {
	case reflect.Slice, reflect.Array:
		if value.Type().Elem().Kind() == reflect.Uint8 {
			return value.Bytes(), true
		}
	}
	return nil, false
}

// mustByteView is byteView for call sites whose type parameter is
// documented as "byte array only". A non-byte type there is a
// programmer error, not an input error.
func mustByteView(pointer any, operation string) []byte {
	view, ok := byteView(pointer)
	if !ok {
		panic("secret: " + operation + " requires a byte array or byte slice inner type")
	}
	return view
}
