// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/sys/unix"
)

// Buffer is the hardened dynamic container: its memory is allocated
// outside the Go heap via mmap(MAP_ANONYMOUS), locked into physical
// RAM via mlock (no swap), and marked excluded from core dumps via
// madvise(MADV_DONTDUMP). Because the garbage collector never sees
// the region, it cannot copy or relocate the secret, so Close can
// guarantee the bytes are gone.
//
// Use Buffer for long-lived high-value secrets (private keys,
// decrypted credential material); use Dynamic for short-lived working
// secrets where mmap-per-value would be wasteful.
//
// A Buffer must not be copied. Close zeros, unlocks, and unmaps the
// region; after Close, any access panics. Close is idempotent.
type Buffer struct {
	mu     sync.Mutex
	region []byte
	length int
	closed bool
}

// New allocates a zero-filled hardened buffer of the given size.
// The caller must Close it when the secret is no longer needed.
func New(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("secret: buffer size must be positive, got %d", size)
	}

	region, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("secret: mmap failed: %w", err)
	}

	if err := unix.Mlock(region); err != nil {
		unix.Munmap(region)
		return nil, fmt.Errorf("secret: mlock failed: %w", err)
	}

	// Keep the region out of core dumps. Not supported on every
	// kernel; treat failure as fatal rather than silently degrading.
	if err := unix.Madvise(region, unix.MADV_DONTDUMP); err != nil {
		unix.Munlock(region)
		unix.Munmap(region)
		return nil, fmt.Errorf("secret: madvise(MADV_DONTDUMP) failed: %w", err)
	}

	return &Buffer{
		region: region,
		length: size,
	}, nil
}

// NewEmpty allocates a hardened buffer holding an empty secret: Len
// reports 0 and Bytes returns an empty slice. The mapping is one byte
// because mmap cannot map zero, but the buffer behaves as
// zero-length everywhere.
func NewEmpty() (*Buffer, error) {
	buffer, err := New(1)
	if err != nil {
		return nil, err
	}
	buffer.length = 0
	return buffer, nil
}

// NewFromBytes copies source into a hardened buffer and zeros the
// source slice, leaving the protected region as the only live copy.
func NewFromBytes(source []byte) (*Buffer, error) {
	if len(source) == 0 {
		return nil, fmt.Errorf("secret: cannot create buffer from empty source")
	}

	buffer, err := New(len(source))
	if err != nil {
		return nil, err
	}

	copy(buffer.region, source)
	Zero(source)
	return buffer, nil
}

// NewFromReader reads r to EOF into a hardened buffer, refusing
// inputs larger than limit bytes. The intermediate heap buffer is
// zeroed before returning.
func NewFromReader(r io.Reader, limit int) (*Buffer, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("secret: read limit must be positive, got %d", limit)
	}

	staging := make([]byte, 0, limit)
	chunk := make([]byte, 4096)
	defer Zero(chunk)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			if len(staging)+n > limit {
				Zero(staging[:cap(staging)])
				return nil, fmt.Errorf("secret: input exceeds %d byte limit", limit)
			}
			staging = append(staging, chunk[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			Zero(staging[:cap(staging)])
			return nil, fmt.Errorf("secret: reading secret: %w", err)
		}
	}
	if len(staging) == 0 {
		return nil, fmt.Errorf("secret: input is empty")
	}

	// NewFromBytes zeros staging.
	return NewFromBytes(staging)
}

// Bytes returns the secret data. The slice points directly into the
// protected region; do not hold it past the buffer's lifetime.
// Panics if the buffer has been closed.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		panic("secret: read from closed buffer")
	}
	return b.region[:b.length]
}

// ExposeString returns the secret as a string for API boundaries that
// demand one. The string is an immutable heap copy outside the wipe
// lifecycle; prefer Bytes wherever possible. Panics if closed.
func (b *Buffer) ExposeString() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		panic("secret: read from closed buffer")
	}
	return string(b.region[:b.length])
}

// Len returns the size of the secret data. Zero after Close.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return 0
	}
	return b.length
}

// Equal compares this buffer's contents against other through the
// hybrid equality engine. Panics if either buffer is closed.
func (b *Buffer) Equal(other *Buffer) bool {
	return Equal(b.Bytes(), other.Bytes())
}

// WriteTo implements io.WriterTo, streaming the secret directly from
// the protected region without a heap intermediary. Panics if closed.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), err
}

// Wipe zeros the region contents but keeps the mapping usable; the
// buffer remains valid with zeroed bytes. Idempotent. No-op after
// Close.
func (b *Buffer) Wipe() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	Zero(b.region)
}

// Close zeros the contents, unlocks, and unmaps the region. After
// Close, Bytes and ExposeString panic. Idempotent.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	Zero(b.region)

	// The memory is released either way when the process exits, so
	// only the first failure is worth reporting.
	var firstError error
	if err := unix.Munlock(b.region); err != nil && firstError == nil {
		firstError = fmt.Errorf("secret: munlock failed: %w", err)
	}
	if err := unix.Munmap(b.region); err != nil && firstError == nil {
		firstError = fmt.Errorf("secret: munmap failed: %w", err)
	}

	b.region = nil
	return firstError
}

// String implements fmt.Stringer with the redacted literal. The
// secret itself is available only through Bytes and ExposeString.
func (b *Buffer) String() string { return Redacted }

// GoString implements fmt.GoStringer with the redacted literal.
func (b *Buffer) GoString() string { return Redacted }

// Format implements fmt.Formatter: every verb prints the redacted
// literal.
func (b *Buffer) Format(state fmt.State, verb rune) {
	fmt.Fprint(state, Redacted)
}
