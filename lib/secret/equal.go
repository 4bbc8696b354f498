// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"crypto/rand"
	"crypto/subtle"
	"sync"

	"github.com/zeebo/blake3"
)

// HashEqualThreshold is the length, in bytes, above which the hybrid
// Equal switches from direct constant-time comparison to digest
// comparison. At 32 bytes and below the direct compare is both faster
// and exact.
const HashEqualThreshold = 32

// hashEqualKey is the per-process key for HashEqual digests, created
// lazily from the OS random source on first use and shared by all
// callers for the process lifetime. Keying makes offline multi-target
// digest precomputation useless. If the random source fails, the key
// is nil and digests are unkeyed -- comparisons stay correct, only
// the precomputation mitigation is lost.
var hashEqualKey = sync.OnceValue(func() []byte {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil
	}
	return key
})

// ConstantTimeEqual reports whether x and y hold the same bytes, in
// time independent of their contents. Slices of different lengths
// compare unequal immediately; length is not secret metadata here.
// No false positives, no false negatives.
func ConstantTimeEqual(x, y []byte) bool {
	return subtle.ConstantTimeCompare(x, y) == 1
}

// HashEqual reports whether x and y hold the same bytes by hashing
// both through keyed BLAKE3 and comparing the 32-byte digests in
// constant time. A false "equal" requires a BLAKE3 collision
// (probability bounded by 2^-128); a false "unequal" is impossible.
// Results are consistent within a process: the digest key is fixed
// for the process lifetime.
func HashEqual(x, y []byte) bool {
	if len(x) != len(y) {
		return false
	}
	digestX := hashDigest(x)
	digestY := hashDigest(y)
	return subtle.ConstantTimeCompare(digestX, digestY) == 1
}

// Equal is the hybrid comparison: different lengths are unequal,
// lengths at or below HashEqualThreshold use ConstantTimeEqual, and
// longer inputs use HashEqual.
func Equal(x, y []byte) bool {
	if len(x) != len(y) {
		return false
	}
	if len(x) <= HashEqualThreshold {
		return ConstantTimeEqual(x, y)
	}
	return HashEqual(x, y)
}

// EqualFixed compares two fixed byte-array containers through the
// hybrid Equal. Panics if A is not a byte array; by-default a Fixed
// container does not compare at all, and this function is the
// explicit opt-in.
func EqualFixed[A any](x, y *Fixed[A]) bool {
	return Equal(
		mustByteView(&x.value, "EqualFixed"),
		mustByteView(&y.value, "EqualFixed"),
	)
}

// EqualDynamicBytes compares two dynamic byte containers through the
// hybrid Equal.
func EqualDynamicBytes(x, y *Dynamic[Bytes]) bool {
	return Equal(*x.Expose(), *y.Expose())
}

// hashDigest computes the 32-byte BLAKE3 digest of data under the
// per-process key, or unkeyed when no key could be created.
func hashDigest(data []byte) []byte {
	key := hashEqualKey()
	if key == nil {
		sum := blake3.Sum256(data)
		return sum[:]
	}
	hasher, err := blake3.NewKeyed(key)
	if err != nil {
		// NewKeyed fails only for a wrong key length, which the
		// fixed 32-byte allocation above rules out.
		panic("secret: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	return hasher.Sum(nil)
}
