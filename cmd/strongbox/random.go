// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/strongboxdev/strongbox/lib/armor"
	"github.com/strongboxdev/strongbox/lib/secret"
)

// runRandom generates N random bytes and prints them in the selected
// encoding. The bytes never exist outside the secret container and
// the armor wrapper.
func runRandom(args []string) error {
	flags := flag.NewFlagSet("random", flag.ExitOnError)
	var (
		useHex       bool
		useBase64URL bool
		bech32HRP    string
	)
	flags.BoolVar(&useHex, "hex", false, "emit lowercase hex (default)")
	flags.BoolVar(&useBase64URL, "base64url", false, "emit unpadded URL-safe base64")
	flags.StringVar(&bech32HRP, "bech32", "", "emit bech32 under this human-readable part")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() != 1 {
		return fmt.Errorf("usage: strongbox random [flags] <byte-count>")
	}
	count, err := strconv.Atoi(flags.Arg(0))
	if err != nil || count <= 0 {
		return fmt.Errorf("byte count must be a positive integer, got %q", flags.Arg(0))
	}

	selected := 0
	if useHex {
		selected++
	}
	if useBase64URL {
		selected++
	}
	if bech32HRP != "" {
		selected++
	}
	if selected > 1 {
		return fmt.Errorf("choose at most one of --hex, --base64url, --bech32")
	}

	random, err := secret.TryGenerateDynamic(count)
	if err != nil {
		return fmt.Errorf("generating random bytes: %w", err)
	}
	defer random.Wipe()

	switch {
	case useBase64URL:
		encoded := armor.EncodeRandomBase64URL(random)
		defer encoded.Close()
		fmt.Fprintln(os.Stdout, encoded.Expose())
	case bech32HRP != "":
		encoded, err := armor.EncodeRandomBech32(bech32HRP, random)
		if err != nil {
			return fmt.Errorf("encoding bech32: %w", err)
		}
		defer encoded.Close()
		fmt.Fprintln(os.Stdout, encoded.Expose())
	default:
		encoded := armor.EncodeRandomHex(random)
		defer encoded.Close()
		fmt.Fprintln(os.Stdout, encoded.Expose())
	}
	return nil
}
