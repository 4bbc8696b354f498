// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package armor

import (
	"bytes"
	"errors"
	"testing"

	"github.com/strongboxdev/strongbox/lib/testutil"
)

func TestNewBase64URL_Valid(t *testing.T) {
	wrapper, err := NewBase64URL([]byte("SGVsbG8"))
	if err != nil {
		t.Fatalf("NewBase64URL() error: %v", err)
	}
	defer wrapper.Close()

	if wrapper.Expose() != "SGVsbG8" {
		t.Errorf("Expose() = %q, want %q", wrapper.Expose(), "SGVsbG8")
	}
	if wrapper.DecodedLen() != 5 {
		t.Errorf("DecodedLen() = %d, want 5", wrapper.DecodedLen())
	}
	if !bytes.Equal(wrapper.Decode(), []byte("Hello")) {
		t.Errorf("Decode() = %q, want %q", wrapper.Decode(), "Hello")
	}
}

func TestNewBase64URL_URLSafeAlphabet(t *testing.T) {
	// '-' and '_' are the URL-safe substitutes for '+' and '/'.
	wrapper, err := NewBase64URL([]byte("-_8"))
	if err != nil {
		t.Fatalf("NewBase64URL() error: %v", err)
	}
	defer wrapper.Close()
	if !bytes.Equal(wrapper.Decode(), []byte{0xFB, 0xFF}) {
		t.Error("Decode() did not handle the URL-safe alphabet")
	}
}

func TestNewBase64URL_RejectsStandardAlphabet(t *testing.T) {
	if _, err := NewBase64URL([]byte("a+b/")); err == nil {
		t.Error("NewBase64URL() should reject '+' and '/'")
	}
}

func TestNewBase64URL_RejectsPadding(t *testing.T) {
	if _, err := NewBase64URL([]byte("SGVsbG8=")); err == nil {
		t.Error("NewBase64URL() should reject padded input")
	}
}

func TestNewBase64URL_RejectsImpossibleLength(t *testing.T) {
	input := []byte("AAAAA")
	_, err := NewBase64URL(input)
	if err == nil {
		t.Fatal("NewBase64URL() with length 1 mod 4 should return error")
	}
	var invalid *InvalidEncodingError
	if !errors.As(err, &invalid) || invalid.Format != FormatBase64URL {
		t.Errorf("error = %v, want *InvalidEncodingError for base64url", err)
	}
	testutil.RequireZeroed(t, input, "input after failed NewBase64URL")
}

func TestNewBase64URL_RejectsNonCanonicalTail(t *testing.T) {
	// "SGVsbG9" has one trailing bit set beyond the decoded bytes;
	// strict decoding refuses it.
	if _, err := NewBase64URL([]byte("SGVsbG9")); err == nil {
		t.Error("NewBase64URL() should reject a non-canonical tail")
	}
}

func TestNewBase64URL_ZerosInput(t *testing.T) {
	input := []byte("SGVsbG8")
	wrapper, err := NewBase64URL(input)
	if err != nil {
		t.Fatalf("NewBase64URL() error: %v", err)
	}
	defer wrapper.Close()
	testutil.RequireZeroed(t, input, "input after NewBase64URL")
}

func TestBase64URL_DecodedLenRemainders(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"AA", 1},
		{"AAA", 2},
		{"AAAA", 3},
		{"AAAAAA", 4},
	}
	for _, c := range cases {
		wrapper, err := NewBase64URL([]byte(c.input))
		if err != nil {
			t.Fatalf("NewBase64URL(%q) error: %v", c.input, err)
		}
		if wrapper.DecodedLen() != c.want {
			t.Errorf("DecodedLen(%q) = %d, want %d", c.input, wrapper.DecodedLen(), c.want)
		}
		if len(wrapper.Decode()) != c.want {
			t.Errorf("len(Decode(%q)) = %d, want %d", c.input, len(wrapper.Decode()), c.want)
		}
		wrapper.Close()
	}
}

func TestBase64URL_TakeAndEqual(t *testing.T) {
	x, err := NewBase64URL([]byte("c2VjcmV0"))
	if err != nil {
		t.Fatalf("NewBase64URL() error: %v", err)
	}
	defer x.Close()
	y, err := NewBase64URL([]byte("c2VjcmV0"))
	if err != nil {
		t.Fatalf("NewBase64URL() error: %v", err)
	}

	if !x.Equal(y) {
		t.Error("equal wrappers compared unequal")
	}

	decoded := y.Take()
	if !bytes.Equal(decoded, []byte("secret")) {
		t.Errorf("Take() = %q, want %q", decoded, "secret")
	}
	testutil.RequirePanic(t, func() { y.Expose() }, "Expose after Take")
}
