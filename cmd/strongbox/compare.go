// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/strongboxdev/strongbox/lib/secret"
)

// runCompare reads a reference secret from a file and a candidate
// from the terminal without echo, then compares them with the hybrid
// equality engine. Exits nonzero on mismatch so scripts can branch on
// the result; the secrets themselves never appear in output.
func runCompare(args []string) error {
	flags := flag.NewFlagSet("compare", flag.ExitOnError)
	var referencePath string
	flags.StringVar(&referencePath, "reference", "", "reference secret file (required)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if referencePath == "" {
		return fmt.Errorf("--reference is required")
	}

	reference, err := secret.ReadFromPath(referencePath)
	if err != nil {
		return fmt.Errorf("reading reference: %w", err)
	}
	defer reference.Close()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("compare requires an interactive terminal")
	}
	fmt.Fprint(os.Stderr, "Secret: ")
	typed, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("reading secret: %w", err)
	}
	defer secret.Zero(typed)

	if !secret.Equal(reference.Bytes(), typed) {
		return fmt.Errorf("secrets do not match")
	}
	fmt.Fprintln(os.Stderr, "match")
	return nil
}
