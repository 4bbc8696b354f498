// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package armor

import (
	"encoding/base64"
	"fmt"

	"github.com/strongboxdev/strongbox/lib/secret"
)

// base64URLCodec is the strict unpadded URL-safe alphabet: strict so
// that non-canonical trailing bits are rejected at construction,
// keeping Decode total and the stored form canonical.
var base64URLCodec = base64.RawURLEncoding.Strict()

// Base64URL is a validated unpadded URL-safe base64 string owning its
// text in a secret container. Close (or Take) wipes the text; access
// after Close panics.
type Base64URL struct {
	text   *secret.Dynamic[secret.Text]
	closed bool
}

// NewBase64URL validates input under the URL-safe alphabet without
// padding. The input slice is zeroed before returning, success or
// failure.
func NewBase64URL(input []byte) (*Base64URL, error) {
	defer secret.Zero(input)

	if len(input)%4 == 1 {
		return nil, &InvalidEncodingError{Format: FormatBase64URL, Hint: "length is 1 mod 4"}
	}

	// Validation is a full strict decode; the plaintext staging
	// buffer is wiped immediately.
	staging := make([]byte, base64URLCodec.DecodedLen(len(input)))
	_, err := base64URLCodec.Decode(staging, input)
	secret.Zero(staging)
	if err != nil {
		return nil, &InvalidEncodingError{Format: FormatBase64URL, Hint: "character outside the URL-safe alphabet or non-canonical tail"}
	}

	owned := make(secret.Text, len(input))
	copy(owned, input)
	return &Base64URL{text: secret.NewDynamic(owned)}, nil
}

// Expose returns the stored form, byte-identical to the validated
// input. Panics after Close.
func (b *Base64URL) Expose() string {
	b.mustOpen()
	return b.text.Expose().ExposeString()
}

// DecodedLen returns the byte length Decode produces, computed from
// the text length modulo 4: a remainder of 0 adds nothing to the
// 3-bytes-per-group total, 2 adds one byte, 3 adds two.
func (b *Base64URL) DecodedLen() int {
	b.mustOpen()
	length := b.text.Len()
	decoded := length / 4 * 3
	switch length % 4 {
	case 2:
		decoded++
	case 3:
		decoded += 2
	}
	return decoded
}

// Decode returns the bytes in a newly allocated buffer; cannot fail
// after construction. The caller owns the buffer and its wipe.
// Panics after Close.
func (b *Base64URL) Decode() []byte {
	b.mustOpen()
	decoded := make([]byte, b.DecodedLen())
	if _, err := base64URLCodec.Decode(decoded, []byte(*b.text.Expose())); err != nil {
		panic("armor: validated base64url failed to decode: " + err.Error())
	}
	return decoded
}

// Take returns the decoded bytes and closes the wrapper, wiping the
// stored text.
func (b *Base64URL) Take() []byte {
	decoded := b.Decode()
	b.Close()
	return decoded
}

// Equal compares the stored text against other's in constant time.
func (b *Base64URL) Equal(other *Base64URL) bool {
	b.mustOpen()
	other.mustOpen()
	return secret.ConstantTimeEqual([]byte(*b.text.Expose()), []byte(*other.text.Expose()))
}

// Close wipes the stored text. Idempotent; any later access panics.
func (b *Base64URL) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.text.Wipe()
}

// String implements fmt.Stringer with the redacted literal.
func (b *Base64URL) String() string { return secret.Redacted }

// GoString implements fmt.GoStringer with the redacted literal.
func (b *Base64URL) GoString() string { return secret.Redacted }

// Format implements fmt.Formatter: every verb prints the redacted
// literal.
func (b *Base64URL) Format(state fmt.State, verb rune) {
	fmt.Fprint(state, secret.Redacted)
}

func (b *Base64URL) mustOpen() {
	if b.closed {
		panic("armor: use of closed Base64URL")
	}
}
