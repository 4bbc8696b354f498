// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

// Strongbox is the command-line companion to the secret container
// library. It generates keys and random secrets, converts between the
// supported textual encodings, seals payloads to age recipients, and
// compares secrets without echoing them. Secret input always arrives
// through files or stdin, never argv.
// Subcommands: keygen, random, encode, decode, seal, unseal, compare,
// version.
package main
