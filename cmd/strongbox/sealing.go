// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/strongboxdev/strongbox/lib/sealed"
	"github.com/strongboxdev/strongbox/lib/secret"
)

// recipientList collects repeated --recipient flags.
type recipientList []string

func (r *recipientList) String() string { return strings.Join(*r, ",") }

func (r *recipientList) Set(value string) error {
	if err := sealed.ParsePublicKey(value); err != nil {
		return err
	}
	*r = append(*r, value)
	return nil
}

// runSeal reads a secret from a file or stdin, seals it to the given
// age recipients, and writes the CBOR bundle to a file.
func runSeal(args []string) error {
	flags := flag.NewFlagSet("seal", flag.ExitOnError)
	var (
		recipients recipientList
		inPath     string
		outPath    string
	)
	flags.Var(&recipients, "recipient", "age public key to seal to (repeatable, at least one)")
	flags.StringVar(&inPath, "in", "-", "secret input: a file path, or - for stdin")
	flags.StringVar(&outPath, "out", "", "bundle output file (required)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if outPath == "" {
		return fmt.Errorf("--out is required")
	}

	plaintext, err := secret.ReadFromPath(inPath)
	if err != nil {
		return fmt.Errorf("reading secret: %w", err)
	}
	defer plaintext.Close()

	bundle, err := sealed.SealBuffer(plaintext, recipients)
	if err != nil {
		return fmt.Errorf("sealing: %w", err)
	}

	encoded, err := bundle.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
		return fmt.Errorf("writing bundle: %w", err)
	}
	fmt.Fprintf(os.Stderr, "sealed %d bytes to %d recipient(s)\n", plaintext.Len(), len(recipients))
	return nil
}

// runUnseal decrypts a CBOR bundle with a private key read from a
// file or stdin and writes the plaintext to stdout.
func runUnseal(args []string) error {
	flags := flag.NewFlagSet("unseal", flag.ExitOnError)
	var (
		keyPath string
		inPath  string
	)
	flags.StringVar(&keyPath, "key", "", "age private key: a file path, or - for stdin (required)")
	flags.StringVar(&inPath, "in", "", "bundle input file (required)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if keyPath == "" || inPath == "" {
		return fmt.Errorf("--key and --in are required")
	}

	encoded, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading bundle: %w", err)
	}
	bundle, err := sealed.DecodeBundle(encoded)
	if err != nil {
		return err
	}

	privateKey, err := secret.ReadFromPath(keyPath)
	if err != nil {
		return fmt.Errorf("reading private key: %w", err)
	}
	defer privateKey.Close()
	if err := sealed.ParsePrivateKey(privateKey); err != nil {
		return err
	}

	plaintext, err := sealed.Unseal(bundle, privateKey)
	if err != nil {
		return fmt.Errorf("unsealing: %w", err)
	}
	defer plaintext.Close()

	if _, err := plaintext.WriteTo(os.Stdout); err != nil {
		return fmt.Errorf("writing plaintext: %w", err)
	}
	return nil
}
