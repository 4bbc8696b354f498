// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

// Redacted is the literal every container renders through the fmt
// package, regardless of verb. Printing a container can therefore
// never leak its contents; only the exposure contract reaches them.
const Redacted = "[REDACTED]"
