// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package armor

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/strongboxdev/strongbox/lib/secret"
)

// Variant identifies which checksum a bech32 string validated under.
// The two algorithms share alphabet and structure and differ only in
// the checksum constant (BIP-173 vs BIP-350).
type Variant int

const (
	// VariantBech32 is the original BIP-173 checksum.
	VariantBech32 Variant = iota
	// VariantBech32m is the BIP-350 checksum.
	VariantBech32m
)

// String returns the variant name.
func (v Variant) String() string {
	if v == VariantBech32m {
		return "bech32m"
	}
	return "bech32"
}

// checksumLength is the number of data characters the checksum
// occupies at the end of every bech32 string.
const checksumLength = 6

// maxLength is the BIP-173 limit on the overall string length. The
// decoder enforces it, so the encoder must stay within it or the
// resulting wrapper could never re-validate its own text.
const maxLength = 90

// Bech32 is a validated bech32 or bech32m string owning its text in a
// secret container. Construction accepts either checksum and either
// letter case (uniform, per BIP-173; mixed case is invalid), stores
// the lowercase form, and records the variant that validated, so the
// value re-encodes under the same checksum it arrived with. Close (or
// Take) wipes the text; access after Close panics.
type Bech32 struct {
	text       *secret.Dynamic[secret.Text]
	hrp        string
	variant    Variant
	decodedLen int
	closed     bool
}

// NewBech32 validates input as bech32 or bech32m, trying the original
// checksum first. The input slice is zeroed before returning, success
// or failure.
func NewBech32(input []byte) (*Bech32, error) {
	defer secret.Zero(input)

	upper, lower := false, false
	owned := make(secret.Text, len(input))
	for i, c := range input {
		switch {
		case c >= 'A' && c <= 'Z':
			upper = true
			owned[i] = c + ('a' - 'A')
		case c >= 'a' && c <= 'z':
			lower = true
			owned[i] = c
		default:
			owned[i] = c
		}
	}
	if upper && lower {
		owned.Wipe()
		return nil, &InvalidEncodingError{Format: FormatBech32, Hint: "mixed upper and lower case"}
	}

	// The decoder API takes a string; the conversion makes a brief
	// immutable heap copy at this boundary.
	hrp, payload, version, err := bech32.DecodeGeneric(string(owned))
	if err != nil {
		owned.Wipe()
		return nil, &InvalidEncodingError{Format: FormatBech32, Hint: "checksum or structure invalid"}
	}
	secret.Zero(payload)

	var variant Variant
	switch version {
	case bech32.Version0:
		variant = VariantBech32
	case bech32.VersionM:
		variant = VariantBech32m
	default:
		owned.Wipe()
		return nil, &InvalidEncodingError{Format: FormatBech32, Hint: "unknown checksum variant"}
	}

	return &Bech32{
		text:       secret.NewDynamic(owned),
		hrp:        hrp,
		variant:    variant,
		decodedLen: len(payload) * 5 / 8,
	}, nil
}

// DecodeWithHRP validates input as bech32/bech32m and additionally
// requires the human-readable part to equal expectedHRP, failing with
// *UnexpectedHRPError otherwise. The input is zeroed either way.
func DecodeWithHRP(input []byte, expectedHRP string) (*Bech32, error) {
	wrapper, err := NewBech32(input)
	if err != nil {
		return nil, err
	}
	if wrapper.hrp != expectedHRP {
		got := wrapper.hrp
		wrapper.Close()
		return nil, &UnexpectedHRPError{Expected: expectedHRP, Got: got}
	}
	return wrapper, nil
}

// Expose returns the canonical lowercase stored form. Panics after
// Close.
func (z *Bech32) Expose() string {
	z.mustOpen()
	return z.text.Expose().ExposeString()
}

// HRP returns the human-readable part, lowercase. The HRP is routing
// metadata, not secret.
func (z *Bech32) HRP() string {
	z.mustOpen()
	return z.hrp
}

// Variant returns the checksum variant the string validated under.
func (z *Bech32) Variant() Variant {
	z.mustOpen()
	return z.variant
}

// DecodedLen returns the byte length Decode produces: the data
// characters minus the checksum, converted from 5-bit groups to
// bytes. Computed at construction, without decoding.
func (z *Bech32) DecodedLen() int {
	z.mustOpen()
	return z.decodedLen
}

// Decode returns the payload bytes in a newly allocated buffer;
// cannot fail after construction. The caller owns the buffer and its
// wipe. Panics after Close.
//
// The 5-bit data characters regroup into bytes most-significant
// first; when the character count is not a multiple of 8, the
// sub-byte tail is dropped (it is zero padding in strings produced by
// EncodeBech32/EncodeBech32M).
func (z *Bech32) Decode() []byte {
	z.mustOpen()
	_, payload, _, err := bech32.DecodeGeneric(string(*z.text.Expose()))
	if err != nil {
		panic("armor: validated bech32 failed to decode: " + err.Error())
	}
	decoded := regroupToBytes(payload)
	secret.Zero(payload)
	return decoded
}

// regroupToBytes packs 5-bit groups into bytes, discarding the
// incomplete tail group. Unlike the strict BIP-173 conversion this is
// total, which Decode requires.
func regroupToBytes(groups []byte) []byte {
	decoded := make([]byte, 0, len(groups)*5/8)
	accumulator := uint(0)
	bits := uint(0)
	for _, group := range groups {
		accumulator = accumulator<<5 | uint(group)
		bits += 5
		if bits >= 8 {
			bits -= 8
			decoded = append(decoded, byte(accumulator>>bits))
		}
	}
	return decoded
}

// Take returns the decoded payload and closes the wrapper, wiping the
// stored text.
func (z *Bech32) Take() []byte {
	decoded := z.Decode()
	z.Close()
	return decoded
}

// Equal compares the stored text against other's in constant time.
func (z *Bech32) Equal(other *Bech32) bool {
	z.mustOpen()
	other.mustOpen()
	return secret.ConstantTimeEqual([]byte(*z.text.Expose()), []byte(*other.text.Expose()))
}

// Close wipes the stored text. Idempotent; any later access panics.
func (z *Bech32) Close() {
	if z.closed {
		return
	}
	z.closed = true
	z.text.Wipe()
}

// String implements fmt.Stringer with the redacted literal.
func (z *Bech32) String() string { return secret.Redacted }

// GoString implements fmt.GoStringer with the redacted literal.
func (z *Bech32) GoString() string { return secret.Redacted }

// Format implements fmt.Formatter: every verb prints the redacted
// literal.
func (z *Bech32) Format(state fmt.State, verb rune) {
	fmt.Fprint(state, secret.Redacted)
}

func (z *Bech32) mustOpen() {
	if z.closed {
		panic("armor: use of closed Bech32")
	}
}
