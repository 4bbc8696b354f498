// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Strongbox's standard CBOR encoding
// configuration.
//
// CBOR is the binary wire form for everything the library writes to
// disk or hands to callers as opaque bytes: sealed secret bundles and
// the opt-in serialized form of exportable secret containers. JSON
// remains available for the same containers through the standard
// library, but both paths enforce the same rule -- a container
// serializes only when its inner type carries the
// secret.SerializableInner marker.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. Same logical data always produces identical bytes, so a
// sealed bundle can be byte-compared and content-addressed.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (bundle files):
//
//	encoder := codec.NewEncoder(file)
//	decoder := codec.NewDecoder(file)
//
// This package has no Strongbox-internal dependencies. Imported by
// lib/secret (exportable container CBOR forms) and lib/sealed
// (bundle wire form).
package codec
