// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package sealed

import (
	"bytes"
	"strings"
	"testing"

	"github.com/strongboxdev/strongbox/lib/secret"
	"github.com/strongboxdev/strongbox/lib/testutil"
)

// secretBufferFrom copies data into a fresh mmap buffer, leaving the
// caller's slice intact.
func secretBufferFrom(t *testing.T, data []byte) (*secret.Buffer, error) {
	t.Helper()
	return secret.NewFromBytes(append([]byte(nil), data...))
}

func TestGenerateKeypair(t *testing.T) {
	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair.Close()

	if !strings.HasPrefix(keypair.PrivateKey.ExposeString(), "AGE-SECRET-KEY-1") {
		t.Error("PrivateKey does not have prefix AGE-SECRET-KEY-1")
	}
	if !strings.HasPrefix(keypair.PublicKey, "age1") {
		t.Errorf("PublicKey = %q, want prefix age1", keypair.PublicKey)
	}
}

func TestGenerateKeypair_Unique(t *testing.T) {
	keypair1, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair1.Close()
	keypair2, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair2.Close()

	if keypair1.PrivateKey.ExposeString() == keypair2.PrivateKey.ExposeString() {
		t.Error("two generated keypairs have identical private keys")
	}
	if keypair1.PublicKey == keypair2.PublicKey {
		t.Error("two generated keypairs have identical public keys")
	}
}

func TestKeypair_CloseIdempotent(t *testing.T) {
	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	if err := keypair.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := keypair.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}

func TestSealUnseal_SingleRecipient(t *testing.T) {
	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair.Close()

	original := []byte("hello, strongbox")
	plaintext := append([]byte(nil), original...)
	bundle, err := Seal(plaintext, []string{keypair.PublicKey})
	if err != nil {
		t.Fatalf("Seal() error: %v", err)
	}

	// Seal zeros its input.
	testutil.RequireZeroed(t, plaintext)

	if !bundle.SealedFor(keypair.PublicKey) {
		t.Error("bundle does not list the recipient it was sealed to")
	}
	if bytes.Contains(bundle.Ciphertext, original) {
		t.Error("ciphertext contains the plaintext")
	}

	unsealed, err := Unseal(bundle, keypair.PrivateKey)
	if err != nil {
		t.Fatalf("Unseal() error: %v", err)
	}
	defer unsealed.Close()
	if !bytes.Equal(unsealed.Bytes(), original) {
		t.Error("Unseal() did not recover the original plaintext")
	}
}

func TestSealUnseal_MultipleRecipients(t *testing.T) {
	holder, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer holder.Close()
	escrow, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer escrow.Close()

	original := []byte(`{"API_KEY":"sk-test"}`)
	bundle, err := Seal(append([]byte(nil), original...), []string{holder.PublicKey, escrow.PublicKey})
	if err != nil {
		t.Fatalf("Seal() error: %v", err)
	}

	for name, keypair := range map[string]*Keypair{"holder": holder, "escrow": escrow} {
		unsealed, err := Unseal(bundle, keypair.PrivateKey)
		if err != nil {
			t.Fatalf("Unseal(%s) error: %v", name, err)
		}
		if !bytes.Equal(unsealed.Bytes(), original) {
			t.Errorf("Unseal(%s) did not recover the original plaintext", name)
		}
		unsealed.Close()
	}
}

func TestUnseal_WrongKey(t *testing.T) {
	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair.Close()
	wrongKeypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer wrongKeypair.Close()

	bundle, err := Seal([]byte("secret data"), []string{keypair.PublicKey})
	if err != nil {
		t.Fatalf("Seal() error: %v", err)
	}

	if _, err := Unseal(bundle, wrongKeypair.PrivateKey); err == nil {
		t.Error("Unseal() with wrong key should return error")
	}
	if bundle.SealedFor(wrongKeypair.PublicKey) {
		t.Error("bundle claims to be sealed for a key it was not")
	}
}

func TestSeal_NoRecipients(t *testing.T) {
	plaintext := []byte("data")
	_, err := Seal(plaintext, nil)
	if err == nil {
		t.Fatal("Seal() with no recipients should return error")
	}
	if !strings.Contains(err.Error(), "at least one recipient") {
		t.Errorf("error = %v, want 'at least one recipient'", err)
	}
	// Zeroed even on failure.
	testutil.RequireZeroed(t, plaintext)
}

func TestSeal_InvalidRecipientKey(t *testing.T) {
	_, err := Seal([]byte("data"), []string{"not-a-valid-key"})
	if err == nil {
		t.Fatal("Seal() with invalid recipient key should return error")
	}
	if !strings.Contains(err.Error(), "parsing recipient key") {
		t.Errorf("error = %v, want 'parsing recipient key'", err)
	}
}

func TestSealUnseal_EmptyPlaintext(t *testing.T) {
	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair.Close()

	bundle, err := Seal([]byte{}, []string{keypair.PublicKey})
	if err != nil {
		t.Fatalf("Seal(empty) error: %v", err)
	}
	unsealed, err := Unseal(bundle, keypair.PrivateKey)
	if err != nil {
		t.Fatalf("Unseal(empty) error: %v", err)
	}
	defer unsealed.Close()
	if unsealed.Len() != 0 {
		t.Errorf("Len() after empty round trip = %d, want 0", unsealed.Len())
	}
	if len(unsealed.Bytes()) != 0 {
		t.Errorf("Bytes() after empty round trip has %d bytes, want 0", len(unsealed.Bytes()))
	}
}

func TestSealBuffer_RoundTrip(t *testing.T) {
	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair.Close()

	original := []byte("buffer-held secret")
	buffer, err := secretBufferFrom(t, original)
	if err != nil {
		t.Fatalf("building buffer: %v", err)
	}
	defer buffer.Close()

	bundle, err := SealBuffer(buffer, []string{keypair.PublicKey})
	if err != nil {
		t.Fatalf("SealBuffer() error: %v", err)
	}

	// The source buffer survives sealing.
	if !bytes.Equal(buffer.Bytes(), original) {
		t.Error("SealBuffer() modified the source buffer")
	}

	unsealed, err := Unseal(bundle, keypair.PrivateKey)
	if err != nil {
		t.Fatalf("Unseal() error: %v", err)
	}
	defer unsealed.Close()
	if !bytes.Equal(unsealed.Bytes(), original) {
		t.Error("Unseal() did not recover the original plaintext")
	}
}

func TestBundle_EncodeDecode(t *testing.T) {
	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair.Close()

	original := []byte("wire-form secret")
	bundle, err := Seal(append([]byte(nil), original...), []string{keypair.PublicKey})
	if err != nil {
		t.Fatalf("Seal() error: %v", err)
	}

	encoded, err := bundle.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	decoded, err := DecodeBundle(encoded)
	if err != nil {
		t.Fatalf("DecodeBundle() error: %v", err)
	}
	if !decoded.SealedFor(keypair.PublicKey) {
		t.Error("decoded bundle lost its recipient list")
	}

	unsealed, err := Unseal(decoded, keypair.PrivateKey)
	if err != nil {
		t.Fatalf("Unseal(decoded) error: %v", err)
	}
	defer unsealed.Close()
	if !bytes.Equal(unsealed.Bytes(), original) {
		t.Error("round-tripped bundle did not unseal to the original plaintext")
	}
}

func TestDecodeBundle_Invalid(t *testing.T) {
	if _, err := DecodeBundle([]byte("not cbor at all")); err == nil {
		t.Error("DecodeBundle() with invalid input should return error")
	}
}

func TestUnseal_CorruptedCiphertext(t *testing.T) {
	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair.Close()

	bundle := &Bundle{
		Recipients: []string{keypair.PublicKey},
		Ciphertext: []byte("this is not age ciphertext"),
	}
	if _, err := Unseal(bundle, keypair.PrivateKey); err == nil {
		t.Error("Unseal() with corrupted ciphertext should return error")
	}
}

func TestParsePublicKey(t *testing.T) {
	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair.Close()

	if err := ParsePublicKey(keypair.PublicKey); err != nil {
		t.Errorf("ParsePublicKey(valid) error: %v", err)
	}
	if err := ParsePublicKey("not-a-valid-key"); err == nil {
		t.Error("ParsePublicKey(invalid) should return error")
	}
	if err := ParsePublicKey(""); err == nil {
		t.Error("ParsePublicKey(empty) should return error")
	}
}

func TestParsePrivateKey(t *testing.T) {
	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair.Close()

	if err := ParsePrivateKey(keypair.PrivateKey); err != nil {
		t.Errorf("ParsePrivateKey(valid) error: %v", err)
	}

	garbage, err := secretBufferFrom(t, []byte("not-a-valid-key"))
	if err != nil {
		t.Fatalf("building buffer: %v", err)
	}
	defer garbage.Close()
	if err := ParsePrivateKey(garbage); err == nil {
		t.Error("ParsePrivateKey(invalid) should return error")
	}
}
