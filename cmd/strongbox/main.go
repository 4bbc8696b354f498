// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/strongboxdev/strongbox/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		printUsage()
		return fmt.Errorf("subcommand required")
	}

	subcommand := os.Args[1]
	switch subcommand {
	case "keygen":
		return runKeygen(os.Args[2:])
	case "random":
		return runRandom(os.Args[2:])
	case "encode":
		return runEncode(os.Args[2:])
	case "decode":
		return runDecode(os.Args[2:])
	case "seal":
		return runSeal(os.Args[2:])
	case "unseal":
		return runUnseal(os.Args[2:])
	case "compare":
		return runCompare(os.Args[2:])
	case "version":
		fmt.Printf("strongbox %s\n", version.Info())
		return nil
	case "-h", "--help", "help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown subcommand: %q", subcommand)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: strongbox <subcommand> [flags]

Subcommands:
  keygen      Generate an age keypair
  random      Generate random bytes in a textual encoding
  encode      Encode a secret read from file or stdin
  decode      Decode a textual secret to raw bytes
  seal        Encrypt a secret to age recipients
  unseal      Decrypt a sealed bundle
  compare     Compare a typed secret against a reference, no echo
  version     Print version information

Run 'strongbox <subcommand> --help' for subcommand flags.
`)
}
