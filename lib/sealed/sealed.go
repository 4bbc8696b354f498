// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package sealed

import (
	"bytes"
	"fmt"
	"io"

	"filippo.io/age"

	"github.com/strongboxdev/strongbox/lib/codec"
	"github.com/strongboxdev/strongbox/lib/secret"
)

// Keypair holds an age x25519 keypair. The private key is stored in a
// secret.Buffer (mmap-backed, locked against swap, excluded from core
// dumps). The public key is a plain string, safe to publish.
//
// The caller must call Close when the keypair is no longer needed.
type Keypair struct {
	// PrivateKey is the secret key in AGE-SECRET-KEY-1... format,
	// stored in mmap memory outside the Go heap. Must never be
	// logged, stored in plaintext on disk, or included in CLI
	// arguments.
	PrivateKey *secret.Buffer

	// PublicKey is the corresponding public key in age1... format.
	PublicKey string
}

// Close releases the private key memory (zeros, unlocks, unmaps).
// Idempotent.
func (k *Keypair) Close() error {
	if k.PrivateKey != nil {
		return k.PrivateKey.Close()
	}
	return nil
}

// Bundle is the wire form of a sealed payload: the age ciphertext
// plus the recipients it was sealed to. The recipient list lets a
// holder check whether a given public key can unseal the bundle
// without attempting decryption. Encoded as deterministic CBOR by
// lib/codec.
type Bundle struct {
	// Recipients are the age public keys the payload was sealed to.
	Recipients []string `cbor:"recipients" json:"recipients"`

	// Ciphertext is the raw age stream.
	Ciphertext []byte `cbor:"ciphertext" json:"ciphertext"`
}

// SealedFor reports whether the bundle lists publicKey among its
// recipients.
func (b *Bundle) SealedFor(publicKey string) bool {
	for _, recipient := range b.Recipients {
		if recipient == publicKey {
			return true
		}
	}
	return false
}

// Encode serializes the bundle as deterministic CBOR.
func (b *Bundle) Encode() ([]byte, error) {
	encoded, err := codec.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encoding sealed bundle: %w", err)
	}
	return encoded, nil
}

// DecodeBundle parses a CBOR-encoded bundle.
func DecodeBundle(data []byte) (*Bundle, error) {
	var bundle Bundle
	if err := codec.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("decoding sealed bundle: %w", err)
	}
	return &bundle, nil
}

// GenerateKeypair generates a new age x25519 keypair with the private
// key in a secret.Buffer. The caller must call Close on the returned
// Keypair when done.
func GenerateKeypair() (*Keypair, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("generating age keypair: %w", err)
	}

	// Move the private key string into mmap-backed memory
	// immediately. The string itself stays on the heap until
	// collected; the mmap buffer is the durable copy.
	privateKeyBytes := []byte(identity.String())
	privateKey, err := secret.NewFromBytes(privateKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("protecting private key: %w", err)
	}

	return &Keypair{
		PrivateKey: privateKey,
		PublicKey:  identity.Recipient().String(),
	}, nil
}

// Seal encrypts plaintext to one or more recipients given by their
// age public key strings (age1... format) and returns the bundle. The
// plaintext slice is zeroed before returning, success or failure; at
// least one recipient is required.
func Seal(plaintext []byte, recipientKeys []string) (*Bundle, error) {
	defer secret.Zero(plaintext)

	if len(recipientKeys) == 0 {
		return nil, fmt.Errorf("at least one recipient is required")
	}

	recipients := make([]age.Recipient, 0, len(recipientKeys))
	for _, key := range recipientKeys {
		recipient, err := age.ParseX25519Recipient(key)
		if err != nil {
			return nil, fmt.Errorf("parsing recipient key %q: %w", key, err)
		}
		recipients = append(recipients, recipient)
	}

	var ciphertext bytes.Buffer
	writer, err := age.Encrypt(&ciphertext, recipients...)
	if err != nil {
		return nil, fmt.Errorf("creating age encryptor: %w", err)
	}
	if _, err := writer.Write(plaintext); err != nil {
		return nil, fmt.Errorf("writing plaintext to age encryptor: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalizing age encryption: %w", err)
	}

	listed := make([]string, len(recipientKeys))
	copy(listed, recipientKeys)
	return &Bundle{
		Recipients: listed,
		Ciphertext: ciphertext.Bytes(),
	}, nil
}

// SealBuffer seals the contents of a secret.Buffer without the caller
// extracting them. The buffer is borrowed, not closed.
func SealBuffer(plaintext *secret.Buffer, recipientKeys []string) (*Bundle, error) {
	// Seal zeros its input; copy so the buffer survives.
	staging := make([]byte, plaintext.Len())
	copy(staging, plaintext.Bytes())
	return Seal(staging, recipientKeys)
}

// Unseal decrypts a bundle using the given private key and returns
// the plaintext in a secret.Buffer (mmap-backed, zeroed on close).
//
// The private key is borrowed (read to parse the age identity) and is
// not closed. The caller must call Close on the returned buffer when
// the plaintext is no longer needed.
func Unseal(bundle *Bundle, privateKey *secret.Buffer) (*secret.Buffer, error) {
	// age.ParseX25519Identity requires a string; the heap copy is
	// brief and request-scoped.
	identity, err := age.ParseX25519Identity(privateKey.ExposeString())
	if err != nil {
		return nil, fmt.Errorf("parsing private key: %w", err)
	}

	reader, err := age.Decrypt(bytes.NewReader(bundle.Ciphertext), identity)
	if err != nil {
		return nil, fmt.Errorf("decrypting: %w", err)
	}

	plaintext, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading decrypted plaintext: %w", err)
	}

	// age can produce empty plaintext (sealed empty input); the
	// round-tripped buffer must report the same zero length.
	if len(plaintext) == 0 {
		buffer, err := secret.NewEmpty()
		if err != nil {
			return nil, fmt.Errorf("protecting decrypted plaintext: %w", err)
		}
		return buffer, nil
	}

	// NewFromBytes zeros the heap copy on success.
	buffer, err := secret.NewFromBytes(plaintext)
	if err != nil {
		secret.Zero(plaintext)
		return nil, fmt.Errorf("protecting decrypted plaintext: %w", err)
	}
	return buffer, nil
}

// ParsePublicKey validates an age public key string. Useful for
// checking keys received from configuration before sealing to them.
func ParsePublicKey(publicKey string) error {
	if _, err := age.ParseX25519Recipient(publicKey); err != nil {
		return fmt.Errorf("invalid age public key: %w", err)
	}
	return nil
}

// ParsePrivateKey validates an age private key stored in a
// secret.Buffer.
func ParsePrivateKey(privateKey *secret.Buffer) error {
	if _, err := age.ParseX25519Identity(privateKey.ExposeString()); err != nil {
		return fmt.Errorf("invalid age private key: %w", err)
	}
	return nil
}
