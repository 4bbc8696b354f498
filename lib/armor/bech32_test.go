// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package armor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/strongboxdev/strongbox/lib/testutil"
)

func TestNewBech32_UppercaseVector(t *testing.T) {
	wrapper, err := NewBech32([]byte("BC1QW508D6QEJXTDG4Y5R3ZARVARY0C5XW7KV8F3T4"))
	if err != nil {
		t.Fatalf("NewBech32() error: %v", err)
	}
	defer wrapper.Close()

	if wrapper.HRP() != "bc" {
		t.Errorf("HRP() = %q, want %q", wrapper.HRP(), "bc")
	}
	if wrapper.Variant() != VariantBech32 {
		t.Errorf("Variant() = %v, want bech32", wrapper.Variant())
	}
	// Stored form is lowercase regardless of input case.
	if wrapper.Expose() != strings.ToLower("BC1QW508D6QEJXTDG4Y5R3ZARVARY0C5XW7KV8F3T4") {
		t.Error("Expose() is not the lowercase form")
	}
	if wrapper.DecodedLen() != len(wrapper.Decode()) {
		t.Errorf("DecodedLen() = %d, len(Decode()) = %d", wrapper.DecodedLen(), len(wrapper.Decode()))
	}
}

func TestNewBech32_MixedCaseRejected(t *testing.T) {
	input := []byte("Bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4")
	_, err := NewBech32(input)
	if err == nil {
		t.Fatal("NewBech32() with mixed case should return error")
	}
	var invalid *InvalidEncodingError
	if !errors.As(err, &invalid) || invalid.Format != FormatBech32 {
		t.Errorf("error = %v, want *InvalidEncodingError for bech32", err)
	}
	testutil.RequireZeroed(t, input, "input after failed NewBech32")
}

func TestNewBech32_BadChecksum(t *testing.T) {
	if _, err := NewBech32([]byte("bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t5")); err == nil {
		t.Error("NewBech32() with a corrupted checksum should return error")
	}
}

func TestNewBech32_ZerosInput(t *testing.T) {
	input := []byte("bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4")
	wrapper, err := NewBech32(input)
	if err != nil {
		t.Fatalf("NewBech32() error: %v", err)
	}
	defer wrapper.Close()
	testutil.RequireZeroed(t, input, "input after NewBech32")
}

func TestEncodeBech32_RoundTrip(t *testing.T) {
	data := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77}
	encoded, err := EncodeBech32("sb", data)
	if err != nil {
		t.Fatalf("EncodeBech32() error: %v", err)
	}
	defer encoded.Close()

	if encoded.HRP() != "sb" {
		t.Errorf("HRP() = %q, want %q", encoded.HRP(), "sb")
	}
	if encoded.Variant() != VariantBech32 {
		t.Errorf("Variant() = %v, want bech32", encoded.Variant())
	}
	if !bytes.Equal(encoded.Decode(), data) {
		t.Error("Decode() did not recover the encoded bytes")
	}

	// The textual form re-validates through the decoder.
	reparsed, err := NewBech32([]byte(encoded.Expose()))
	if err != nil {
		t.Fatalf("NewBech32(encoded form) error: %v", err)
	}
	defer reparsed.Close()
	if !bytes.Equal(reparsed.Decode(), data) {
		t.Error("re-parsed form did not decode to the same bytes")
	}
}

func TestEncodeBech32M_RoundTrip(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02, 0x03}
	encoded, err := EncodeBech32M("sb", data)
	if err != nil {
		t.Fatalf("EncodeBech32M() error: %v", err)
	}
	defer encoded.Close()

	if encoded.Variant() != VariantBech32m {
		t.Errorf("Variant() = %v, want bech32m", encoded.Variant())
	}

	reparsed, err := NewBech32([]byte(encoded.Expose()))
	if err != nil {
		t.Fatalf("NewBech32(encoded form) error: %v", err)
	}
	defer reparsed.Close()
	if reparsed.Variant() != VariantBech32m {
		t.Errorf("re-parsed Variant() = %v, want bech32m", reparsed.Variant())
	}
	if !bytes.Equal(reparsed.Decode(), data) {
		t.Error("re-parsed form did not decode to the same bytes")
	}
}

func TestDecodeWithHRP(t *testing.T) {
	encoded, err := EncodeBech32("sb", []byte{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("EncodeBech32() error: %v", err)
	}
	text := encoded.Expose()
	encoded.Close()

	wrapper, err := DecodeWithHRP([]byte(text), "sb")
	if err != nil {
		t.Fatalf("DecodeWithHRP() error: %v", err)
	}
	wrapper.Close()

	_, err = DecodeWithHRP([]byte(text), "other")
	if err == nil {
		t.Fatal("DecodeWithHRP() with the wrong HRP should return error")
	}
	var hrpError *UnexpectedHRPError
	if !errors.As(err, &hrpError) {
		t.Fatalf("error type = %T, want *UnexpectedHRPError", err)
	}
	if hrpError.Expected != "other" || hrpError.Got != "sb" {
		t.Errorf("UnexpectedHRPError = {Expected: %q, Got: %q}, want {other, sb}",
			hrpError.Expected, hrpError.Got)
	}
}

func TestBech32_Equal(t *testing.T) {
	first, err := EncodeBech32("sb", []byte{9, 9, 9, 9})
	if err != nil {
		t.Fatalf("EncodeBech32() error: %v", err)
	}
	defer first.Close()
	second, err := EncodeBech32("sb", []byte{9, 9, 9, 9})
	if err != nil {
		t.Fatalf("EncodeBech32() error: %v", err)
	}
	defer second.Close()
	third, err := EncodeBech32("sb", []byte{9, 9, 9, 8})
	if err != nil {
		t.Fatalf("EncodeBech32() error: %v", err)
	}
	defer third.Close()

	if !first.Equal(second) {
		t.Error("equal values compared unequal")
	}
	if first.Equal(third) {
		t.Error("different values compared equal")
	}
}

func TestBech32_CloseIdempotent(t *testing.T) {
	wrapper, err := EncodeBech32("sb", []byte{1})
	if err != nil {
		t.Fatalf("EncodeBech32() error: %v", err)
	}
	wrapper.Close()
	wrapper.Close()
	testutil.RequirePanic(t, func() { wrapper.HRP() }, "HRP after Close")
}
