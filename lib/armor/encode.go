// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package armor

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/strongboxdev/strongbox/lib/secret"
)

// EncodeHex encodes data into a validated Hex wrapper. Encoding is
// total, so the wrapper is built directly without re-validation. The
// data slice is left with the caller.
func EncodeHex(data []byte) *Hex {
	owned := make(secret.Text, hex.EncodedLen(len(data)))
	hex.Encode(owned, data)
	return &Hex{text: secret.NewDynamic(owned)}
}

// EncodeBase64URL encodes data into a validated Base64URL wrapper,
// unpadded. The data slice is left with the caller.
func EncodeBase64URL(data []byte) *Base64URL {
	owned := make(secret.Text, base64URLCodec.EncodedLen(len(data)))
	base64URLCodec.Encode(owned, data)
	return &Base64URL{text: secret.NewDynamic(owned)}
}

// EncodeBech32 encodes data under hrp with the original BIP-173
// checksum. Fails only on an unusable HRP or oversized result; the
// data bytes themselves cannot make encoding fail.
func EncodeBech32(hrp string, data []byte) (*Bech32, error) {
	return encodeBech32(hrp, data, VariantBech32)
}

// EncodeBech32M is EncodeBech32 with the BIP-350 checksum.
func EncodeBech32M(hrp string, data []byte) (*Bech32, error) {
	return encodeBech32(hrp, data, VariantBech32m)
}

func encodeBech32(hrp string, data []byte, variant Variant) (*Bech32, error) {
	if err := validateHRP(hrp); err != nil {
		return nil, err
	}
	groups, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return nil, fmt.Errorf("regrouping bytes for bech32: %w", err)
	}
	defer secret.Zero(groups)

	if total := len(hrp) + 1 + len(groups) + checksumLength; total > maxLength {
		return nil, fmt.Errorf("bech32 string would be %d characters, above the %d character limit", total, maxLength)
	}

	var encoded string
	if variant == VariantBech32m {
		encoded, err = bech32.EncodeM(hrp, groups)
	} else {
		encoded, err = bech32.Encode(hrp, groups)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding bech32 under hrp %q: %w", hrp, err)
	}

	// The encoder returns a string; copy into a wipeable container.
	// The string itself stays on the heap until collected.
	owned := make(secret.Text, len(encoded))
	copy(owned, encoded)
	return &Bech32{
		text:       secret.NewDynamic(owned),
		hrp:        hrp,
		variant:    variant,
		decodedLen: len(data),
	}, nil
}

// validateHRP enforces the BIP-173 rules for a human-readable part:
// 1 to 83 characters, each in the visible ASCII range, lowercase. The
// encoder underneath is laxer, so the check lives here where a bad
// HRP would otherwise produce a string that fails re-validation.
func validateHRP(hrp string) error {
	if len(hrp) == 0 || len(hrp) > 83 {
		return fmt.Errorf("bech32 human-readable part must be 1-83 characters, got %d", len(hrp))
	}
	for _, c := range hrp {
		if c < 33 || c > 126 {
			return fmt.Errorf("bech32 human-readable part contains a character outside the visible ASCII range")
		}
		if c >= 'A' && c <= 'Z' {
			return fmt.Errorf("bech32 human-readable part must be lowercase")
		}
	}
	return nil
}

// RandomSource is the exposure surface shared by the random secret
// containers. Both secret.FixedRandom and secret.DynamicRandom
// satisfy it.
type RandomSource interface {
	ExposeBytes() []byte
}

// EncodeRandomHex hex-encodes the bytes of a random secret container
// without the caller touching them directly.
func EncodeRandomHex(source RandomSource) *Hex {
	return EncodeHex(source.ExposeBytes())
}

// EncodeRandomBase64URL base64url-encodes the bytes of a random
// secret container.
func EncodeRandomBase64URL(source RandomSource) *Base64URL {
	return EncodeBase64URL(source.ExposeBytes())
}

// EncodeRandomBech32 bech32-encodes the bytes of a random secret
// container under hrp with the BIP-173 checksum.
func EncodeRandomBech32(hrp string, source RandomSource) (*Bech32, error) {
	return EncodeBech32(hrp, source.ExposeBytes())
}
