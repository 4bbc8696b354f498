// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
)

// RequireZeroed fails the test unless every byte of data is zero.
//
//	testutil.RequireZeroed(t, buffer.Bytes())
func RequireZeroed(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, data []byte, msgAndArgs ...any) {
	t.Helper()
	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d of %d is %#02x, want zero: %s", i, len(data), b, formatMessage(msgAndArgs))
		}
	}
}

// RequirePanic runs fn and fails the test unless it panics. Returns
// the recovered value for callers that want to inspect the message.
//
//	testutil.RequirePanic(t, func() { buffer.Bytes() }, "access after close")
func RequirePanic(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, fn func(), msgAndArgs ...any) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatalf("function returned without panicking: %s", formatMessage(msgAndArgs))
		}
	}()
	fn()
	return nil
}

// formatMessage formats optional message arguments into a string.
// Accepts either a single string or a format string followed by args.
func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "(no message)"
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs)
}
