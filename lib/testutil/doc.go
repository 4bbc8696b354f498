// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for Strongbox
// packages.
//
// [RequireZeroed] asserts that a byte slice holds only zero bytes,
// the post-condition of every wipe operation. [RequirePanic] runs a
// function and asserts it panics, for the access-after-close and
// non-byte-misuse contracts that are specified to panic rather than
// return errors.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since assertion failures in tests are not recoverable.
//
// This package has no Strongbox-internal dependencies.
package testutil
