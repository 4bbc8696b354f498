// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/strongboxdev/strongbox/lib/armor"
	"github.com/strongboxdev/strongbox/lib/secret"
)

// runEncode reads secret bytes from a file or stdin and prints them
// in the selected encoding.
func runEncode(args []string) error {
	flags := flag.NewFlagSet("encode", flag.ExitOnError)
	var (
		format    string
		bech32HRP string
		inPath    string
	)
	flags.StringVar(&format, "format", "hex", "output encoding: hex, base64url, or bech32")
	flags.StringVar(&bech32HRP, "hrp", "", "human-readable part for --format bech32")
	flags.StringVar(&inPath, "in", "-", "secret input: a file path, or - for stdin")
	if err := flags.Parse(args); err != nil {
		return err
	}

	input, err := secret.ReadFromPath(inPath)
	if err != nil {
		return fmt.Errorf("reading secret: %w", err)
	}
	defer input.Close()

	switch format {
	case "hex":
		encoded := armor.EncodeHex(input.Bytes())
		defer encoded.Close()
		fmt.Fprintln(os.Stdout, encoded.Expose())
	case "base64url":
		encoded := armor.EncodeBase64URL(input.Bytes())
		defer encoded.Close()
		fmt.Fprintln(os.Stdout, encoded.Expose())
	case "bech32":
		if bech32HRP == "" {
			return fmt.Errorf("--format bech32 requires --hrp")
		}
		encoded, err := armor.EncodeBech32(bech32HRP, input.Bytes())
		if err != nil {
			return fmt.Errorf("encoding bech32: %w", err)
		}
		defer encoded.Close()
		fmt.Fprintln(os.Stdout, encoded.Expose())
	default:
		return fmt.Errorf("unknown format %q (hex, base64url, bech32)", format)
	}
	return nil
}

// runDecode reads an encoded secret from a file or stdin and writes
// the raw bytes to stdout. The format priority is explicit so that
// inputs valid under more than one encoding decode predictably.
func runDecode(args []string) error {
	flags := flag.NewFlagSet("decode", flag.ExitOnError)
	var (
		priorityList string
		inPath       string
	)
	flags.StringVar(&priorityList, "format", "", "comma-separated decode priority (default bech32,hex,base64url)")
	flags.StringVar(&inPath, "in", "-", "encoded input: a file path, or - for stdin")
	if err := flags.Parse(args); err != nil {
		return err
	}

	priority, err := parsePriority(priorityList)
	if err != nil {
		return err
	}

	input, err := secret.ReadFromPath(inPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	defer input.Close()

	// TryDecodeAny zeros its input on failure; hand it a copy so the
	// buffer's own close stays well defined.
	text := make([]byte, input.Len())
	copy(text, input.Bytes())
	decoded, err := armor.TryDecodeAny(text, priority)
	if err != nil {
		return err
	}
	defer secret.Zero(decoded)
	secret.Zero(text)

	if _, err := os.Stdout.Write(decoded); err != nil {
		return fmt.Errorf("writing decoded bytes: %w", err)
	}
	return nil
}

// parsePriority converts a comma-separated format list into decode
// priority order. Empty input selects the default priority.
func parsePriority(list string) ([]armor.Format, error) {
	if list == "" {
		return nil, nil
	}
	names := strings.Split(list, ",")
	priority := make([]armor.Format, 0, len(names))
	for _, name := range names {
		format, ok := armor.ParseFormat(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown format %q (hex, base64url, bech32)", name)
		}
		priority = append(priority, format)
	}
	return priority, nil
}
