// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package armor

import (
	"encoding/hex"
	"fmt"

	"github.com/strongboxdev/strongbox/lib/secret"
)

// Hex is a validated lowercase hex string owning its text in a secret
// container. Construction accepts mixed-case digits and normalizes to
// lowercase, so Expose always yields the canonical form and Decode is
// total. Close (or Take) wipes the text; access after Close panics.
type Hex struct {
	text   *secret.Dynamic[secret.Text]
	closed bool
}

// NewHex validates input as hex: an even number of ASCII hex digits,
// either case. The input slice is zeroed before returning, success or
// failure; the wrapper's normalized copy is the only live one.
func NewHex(input []byte) (*Hex, error) {
	defer secret.Zero(input)

	if len(input)%2 != 0 {
		return nil, &InvalidEncodingError{Format: FormatHex, Hint: "odd number of digits"}
	}

	owned := make(secret.Text, len(input))
	for i, c := range input {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f':
			owned[i] = c
		case c >= 'A' && c <= 'F':
			owned[i] = c + ('a' - 'A')
		default:
			owned.Wipe()
			return nil, &InvalidEncodingError{Format: FormatHex, Hint: "character outside [0-9a-fA-F]"}
		}
	}

	return &Hex{text: secret.NewDynamic(owned)}, nil
}

// Expose returns the canonical lowercase stored form. Panics after
// Close.
func (h *Hex) Expose() string {
	h.mustOpen()
	return h.text.Expose().ExposeString()
}

// DecodedLen returns the byte length Decode produces, computed from
// the text length alone.
func (h *Hex) DecodedLen() int {
	h.mustOpen()
	return h.text.Len() / 2
}

// Decode returns the bytes in a newly allocated buffer. It cannot
// fail: validation happened at construction. The caller owns the
// buffer and its wipe. Panics after Close.
func (h *Hex) Decode() []byte {
	h.mustOpen()
	decoded := make([]byte, h.DecodedLen())
	if _, err := hex.Decode(decoded, []byte(*h.text.Expose())); err != nil {
		panic("armor: validated hex failed to decode: " + err.Error())
	}
	return decoded
}

// Take returns the decoded bytes and closes the wrapper, wiping the
// stored text. The consuming counterpart of Decode.
func (h *Hex) Take() []byte {
	decoded := h.Decode()
	h.Close()
	return decoded
}

// Equal compares the stored text against other's in constant time.
// Both sides are canonical lowercase, so text equality coincides with
// byte equality of the decoded values.
func (h *Hex) Equal(other *Hex) bool {
	h.mustOpen()
	other.mustOpen()
	return secret.ConstantTimeEqual([]byte(*h.text.Expose()), []byte(*other.text.Expose()))
}

// Close wipes the stored text. Idempotent; any later access panics.
func (h *Hex) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.text.Wipe()
}

// String implements fmt.Stringer with the redacted literal.
func (h *Hex) String() string { return secret.Redacted }

// GoString implements fmt.GoStringer with the redacted literal.
func (h *Hex) GoString() string { return secret.Redacted }

// Format implements fmt.Formatter: every verb prints the redacted
// literal.
func (h *Hex) Format(state fmt.State, verb rune) {
	fmt.Fprint(state, secret.Redacted)
}

func (h *Hex) mustOpen() {
	if h.closed {
		panic("armor: use of closed Hex")
	}
}
