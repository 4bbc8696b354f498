// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/strongboxdev/strongbox/lib/sealed"
)

// runKeygen generates a new age keypair. The public key goes to
// stdout; the private key goes to stderr or, with --private-out, to a
// file created with mode 0600.
func runKeygen(args []string) error {
	flags := flag.NewFlagSet("keygen", flag.ExitOnError)
	var privateOut string
	flags.StringVar(&privateOut, "private-out", "", "write the private key to this file instead of stderr")
	if err := flags.Parse(args); err != nil {
		return err
	}

	keypair, err := sealed.GenerateKeypair()
	if err != nil {
		return fmt.Errorf("generating keypair: %w", err)
	}
	defer keypair.Close()

	if privateOut != "" {
		file, err := os.OpenFile(privateOut, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
		if err != nil {
			return fmt.Errorf("creating private key file: %w", err)
		}
		if _, err := keypair.PrivateKey.WriteTo(file); err != nil {
			file.Close()
			return fmt.Errorf("writing private key: %w", err)
		}
		if _, err := fmt.Fprintln(file); err != nil {
			file.Close()
			return fmt.Errorf("writing private key: %w", err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("closing private key file: %w", err)
		}
	} else {
		fmt.Fprintf(os.Stderr, "# Private key (keep this secret):\n")
		keypair.PrivateKey.WriteTo(os.Stderr)
		fmt.Fprintln(os.Stderr)
	}

	fmt.Fprintf(os.Stdout, "%s\n", keypair.PublicKey)
	return nil
}
