// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bytes"
	"fmt"
	"testing"
)

func TestDynamicFromSlice_ZerosSource(t *testing.T) {
	source := []byte("api-token-value")
	container := DynamicFromSlice(source)
	defer container.Wipe()

	if !bytes.Equal(*container.Expose(), []byte("api-token-value")) {
		t.Error("container does not hold the source bytes")
	}
	for i, b := range source {
		if b != 0 {
			t.Errorf("source byte %d = %#02x, want zero", i, b)
		}
	}
}

func TestDynamicFromString(t *testing.T) {
	container := DynamicFromString("hunter2")
	defer container.Wipe()

	if container.Expose().ExposeString() != "hunter2" {
		t.Error("container does not hold the source string")
	}
	if container.Len() != 7 {
		t.Errorf("Len() = %d, want 7", container.Len())
	}
}

func TestDynamic_ExposeAllocatesZeroValue(t *testing.T) {
	var container Dynamic[Bytes]
	if container.Expose() == nil {
		t.Fatal("Expose() on zero container returned nil")
	}
	if !container.IsEmpty() {
		t.Error("zero container should be empty")
	}
}

func TestDynamic_With(t *testing.T) {
	container := NewDynamic(Bytes("secret"))
	defer container.Wipe()

	container.With(func(value *Bytes) {
		(*value)[0] = 'S'
	})
	if (*container.Expose())[0] != 'S' {
		t.Error("write inside With() did not persist")
	}
}

func TestDynamic_WipeBytes(t *testing.T) {
	container := DynamicFromSlice([]byte{1, 2, 3, 4})
	container.Wipe()

	value := *container.Expose()
	if len(value) != 4 {
		t.Errorf("Wipe() changed length to %d, want 4", len(value))
	}
	for i, b := range value {
		if b != 0 {
			t.Errorf("byte %d = %#02x after Wipe(), want zero", i, b)
		}
	}
	// Idempotent.
	container.Wipe()
}

func TestDynamic_WipeCoversCapacity(t *testing.T) {
	backing := make([]byte, 4, 16)
	copy(backing, []byte{1, 2, 3, 4})
	// Write into the spare capacity; grown shares the backing array.
	grown := append(backing, 5, 6, 7, 8)

	container := NewDynamic(Text(backing))
	container.Wipe()
	for i, b := range grown {
		if b != 0 {
			t.Errorf("backing byte %d = %#02x after Wipe(), want zero", i, b)
		}
	}
}

func TestDynamic_LenCountsElements(t *testing.T) {
	byteContainer := NewDynamic(Bytes("four"))
	if byteContainer.Len() != 4 {
		t.Errorf("Len() of 4-byte secret = %d, want 4", byteContainer.Len())
	}

	wordContainer := NewDynamic([]uint32{1, 2, 3})
	if wordContainer.Len() != 3 {
		t.Errorf("Len() of 3-element slice = %d, want 3", wordContainer.Len())
	}
}

func TestDynamic_Redaction(t *testing.T) {
	container := DynamicFromSlice([]byte("secret"))
	defer container.Wipe()

	for _, format := range []string{"%v", "%+v", "%#v", "%s", "%x"} {
		output := fmt.Sprintf(format, container)
		if output != Redacted {
			t.Errorf("Sprintf(%q) = %q, want %q", format, output, Redacted)
		}
	}
}

func TestText_ExposeString(t *testing.T) {
	text := Text("passphrase")
	if text.ExposeString() != "passphrase" {
		t.Error("ExposeString() did not return the text")
	}
	text.Wipe()
	if text.ExposeString() != "\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00" {
		t.Error("Wipe() did not zero the text in place")
	}
}
