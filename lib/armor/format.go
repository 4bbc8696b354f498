// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package armor

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/strongboxdev/strongbox/lib/secret"
)

// Format names one of the supported textual encodings. Bech32m
// decodes under the bech32 arm: the decoder validates whichever
// checksum matches.
type Format int

const (
	FormatBech32 Format = iota
	FormatHex
	FormatBase64URL
)

// String returns the format name used in error messages and CLI
// flags.
func (f Format) String() string {
	switch f {
	case FormatBech32:
		return "bech32"
	case FormatHex:
		return "hex"
	case FormatBase64URL:
		return "base64url"
	default:
		return "unknown"
	}
}

// ParseFormat maps a format name to its Format. Used by CLI surfaces.
func ParseFormat(name string) (Format, bool) {
	switch name {
	case "bech32", "bech32m":
		return FormatBech32, true
	case "hex":
		return FormatHex, true
	case "base64url", "base64":
		return FormatBase64URL, true
	default:
		return 0, false
	}
}

// DefaultPriority is the decode order TryDecodeAny uses when the
// caller passes nil: bech32 first (its checksum makes accidental
// matches vanishingly unlikely), then hex, then base64url.
func DefaultPriority() []Format {
	return []Format{FormatBech32, FormatHex, FormatBase64URL}
}

// TryDecodeAny decodes input by trying each format in priority order
// and returning the bytes of the first that succeeds. A nil priority
// means DefaultPriority. The dispatch is deliberately
// order-dependent: an input valid under two formats (hex strings are
// often valid base64url) decodes as the first listed, so strict
// callers pass a single-element priority.
//
// On total failure the input is zeroed and the error lists the
// formats attempted. On success the input is left with the caller.
func TryDecodeAny(input []byte, priority []Format) ([]byte, error) {
	if priority == nil {
		priority = DefaultPriority()
	}
	for _, format := range priority {
		if decoded, ok := decodeAs(input, format); ok {
			return decoded, nil
		}
	}
	attempted := make([]Format, len(priority))
	copy(attempted, priority)
	secret.Zero(input)
	return nil, &NoFormatMatchedError{
		Attempted: attempted,
		Hint:      "input validated under none of the listed formats",
	}
}

// decodeAs attempts a single format, reporting success instead of an
// error: dispatch failure detail is deliberately discarded so no
// partial decode state leaks into error paths.
func decodeAs(input []byte, format Format) ([]byte, bool) {
	switch format {
	case FormatHex:
		if len(input)%2 != 0 {
			return nil, false
		}
		decoded := make([]byte, len(input)/2)
		if _, err := hex.Decode(decoded, input); err != nil {
			secret.Zero(decoded)
			return nil, false
		}
		return decoded, true

	case FormatBase64URL:
		if len(input)%4 == 1 {
			return nil, false
		}
		decoded := make([]byte, base64URLCodec.DecodedLen(len(input)))
		n, err := base64URLCodec.Decode(decoded, input)
		if err != nil {
			secret.Zero(decoded)
			return nil, false
		}
		return decoded[:n], true

	case FormatBech32:
		// The decoder API takes a string; brief immutable copy at
		// this boundary.
		_, payload, _, err := bech32.DecodeGeneric(string(input))
		if err != nil {
			return nil, false
		}
		decoded := regroupToBytes(payload)
		secret.Zero(payload)
		return decoded, true

	default:
		return nil, false
	}
}

func init() {
	// Linking in this package upgrades deserialization of exportable
	// byte secrets from plain base64 to multi-format decoding.
	secret.RegisterTextDecoder(func(text []byte) ([]byte, error) {
		return TryDecodeAny(text, nil)
	})
}
