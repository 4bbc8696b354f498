// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
)

// MaxSecretFileSize caps how much ReadFromPath will ingest. Secrets
// are keys, passwords, and tokens; anything beyond a megabyte is a
// caller mistake, not a secret.
const MaxSecretFileSize = 1 << 20

// ReadFromPath reads a secret from a file path, or from the first
// line of stdin if path is "-". The result lands in a hardened
// Buffer, which the caller must Close. Leading and trailing
// whitespace is trimmed, every heap intermediate is zeroed, and an
// empty (post-trim) source is an error.
func ReadFromPath(path string) (*Buffer, error) {
	var data []byte

	if path == "-" {
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			return nil, fmt.Errorf("stdin is empty")
		}
		data = scanner.Bytes()
	} else {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.Size() > MaxSecretFileSize {
			return nil, fmt.Errorf("secret file %s is %d bytes, limit is %d", path, info.Size(), MaxSecretFileSize)
		}
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		Zero(data)
		return nil, fmt.Errorf("secret is empty")
	}

	// NewFromBytes zeros trimmed; zero the surrounding whitespace
	// bytes of the original read as well.
	buffer, err := NewFromBytes(trimmed)
	Zero(data)
	if err != nil {
		return nil, err
	}
	return buffer, nil
}
