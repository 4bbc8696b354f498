// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret provides typed containers for in-memory secrets:
// cryptographic keys, passwords, tokens, and ciphertexts.
//
// The package is a discipline layer, not a cryptographic primitive.
// Every exposure, duplication, serialization, and comparison of a
// secret is an explicit, greppable call, and secret memory is wiped
// deterministically when the owner releases it.
//
// Two container shapes hold secrets:
//
//   - [Fixed] -- an inline value with compile-time-known layout,
//     typically a byte array such as [32]byte
//   - [Dynamic] -- a heap-resident value sized at runtime, typically
//     [Bytes] or [Text]
//
// The only way to reach the inner value is the exposure contract:
// [Fixed.Expose] / [Dynamic.Expose] or the scoped [Fixed.With] /
// [Dynamic.With]. Formatting a container through the fmt package
// always yields a fixed redacted literal, never the bytes.
//
// Capabilities are opt-in markers. Cloning requires the inner type to
// implement [CloneableInner] (the library provides [CloneableBytes],
// [CloneableText], and [CloneableArray]); serialization requires
// [SerializableInner] (provided by [ExportableBytes], [ExportableText],
// and [ExportableArray]). A container whose inner type lacks the
// marker refuses json/cbor marshaling with [ErrNotExportable], so
// every serialization site is a reviewable declaration.
//
// Equality on secret bytes goes through [ConstantTimeEqual] (no
// data-dependent branches), [HashEqual] (keyed BLAKE3 digests,
// per-process random key), or the hybrid [Equal].
//
// [FixedRandom] and [DynamicRandom] carry a freshness guarantee:
// their bytes come from the operating system's random source and no
// constructor accepts caller bytes.
//
// [Buffer] is the hardened variant of a dynamic byte container: the
// memory lives outside the Go heap (mmap), is locked against swap
// (mlock), and is excluded from core dumps. Use it for long-lived
// high-value secrets such as private keys.
//
// Go has no destructors, so deterministic wipe is spelled
// "defer c.Wipe()" (or "defer buffer.Close()") at the owning scope.
// Constructors that accept a caller []byte zero it after copying, so
// the protected copy is the only live one.
//
// Depends on github.com/zeebo/blake3 (hash equality),
// golang.org/x/sys (Buffer memory protection), and lib/codec (CBOR
// form of exportable secrets). Imported by lib/armor and lib/sealed.
package secret
