// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

// Package armor provides validated string wrappers for the textual
// encodings secrets travel in: lowercase hex, unpadded URL-safe
// base64, and bech32/bech32m.
//
// Each wrapper ([Hex], [Base64URL], [Bech32]) owns its text in a
// secret container, validates on construction, and afterwards
// guarantees total decoding: once built, Decode cannot fail.
// Constructors take the input as []byte and zero it whether or not
// validation succeeds, so the wrapper's canonical copy is the only
// live one. DecodedLen reports the exact decode size without
// decoding. fmt output is redacted, like every secret container.
//
// [Bech32] additionally remembers which checksum variant the input
// validated under (bech32 or bech32m) and re-encodes under the same
// one; HRP returns the human-readable part.
//
// Encoding runs the other way through [EncodeHex], [EncodeBase64URL],
// [EncodeBech32], and [EncodeBech32M] (plus convenience forms for the
// random containers); bytes are never invalid for a codec, so only
// the bech32 HRP can make encoding fail.
//
// [TryDecodeAny] decodes text that may be in any of the three
// formats, trying an explicit priority list in order -- first success
// wins, so ambiguous inputs resolve by priority, and strict callers
// pass a single-element list. Importing this package also registers
// the multi-format decoder with lib/secret, so exportable byte
// secrets deserialized from textual wire fields accept any of the
// three encodings.
//
// Hex and base64 use the standard library codecs; bech32 uses
// github.com/btcsuite/btcd/btcutil/bech32. Depends on lib/secret for
// text ownership and wiping.
package armor
