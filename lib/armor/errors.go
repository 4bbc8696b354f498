// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package armor

import (
	"fmt"
	"strings"
)

// InvalidEncodingError reports input that failed a single codec's
// validation. The hint names the rule that failed; the offending
// bytes are never quoted.
type InvalidEncodingError struct {
	Format Format
	Hint   string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("armor: invalid %s input: %s", e.Format, e.Hint)
}

// NoFormatMatchedError reports a multi-format decode where no listed
// format validated. Attempted preserves the priority order that was
// tried.
type NoFormatMatchedError struct {
	Attempted []Format
	Hint      string
}

func (e *NoFormatMatchedError) Error() string {
	names := make([]string, len(e.Attempted))
	for i, format := range e.Attempted {
		names[i] = format.String()
	}
	return fmt.Sprintf("armor: input did not decode under any of [%s]: %s",
		strings.Join(names, ", "), e.Hint)
}

// UnexpectedHRPError reports a bech32 string whose human-readable
// part differs from the one the caller required.
type UnexpectedHRPError struct {
	Expected string
	Got      string
}

func (e *UnexpectedHRPError) Error() string {
	return fmt.Sprintf("armor: bech32 human-readable part is %q, expected %q", e.Got, e.Expected)
}
