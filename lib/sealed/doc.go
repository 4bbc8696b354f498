// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

// Package sealed provides age encryption and decryption for secret
// payloads. It wraps filippo.io/age for the operations Strongbox
// needs: generate x25519 keypairs, seal plaintext to multiple
// recipients, and unseal ciphertext with a private key.
//
// Ciphertext travels as a deterministic CBOR [Bundle] carrying the
// recipients it was sealed to alongside the raw age stream. Private
// keys and unsealed plaintext are returned as [secret.Buffer] values
// backed by mmap memory outside the Go heap (locked against swap,
// excluded from core dumps, zeroed on Close).
//
// Key exports:
//
//   - [GenerateKeypair] -- new age x25519 keypair in a secret.Buffer
//   - [Seal] -- encrypt to age public key recipients, zeroing the input
//   - [Unseal] -- decrypt a bundle with a secret.Buffer key
//   - [ParsePublicKey] / [ParsePrivateKey] -- key validation
//
// Depends on lib/secret for secure memory allocation and lib/codec
// for the bundle wire form.
package sealed
