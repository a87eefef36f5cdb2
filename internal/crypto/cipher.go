// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-backup-keeper/internal/envelope"
)

// cipherEngine is the private implementation of [CipherEngine] on top of
// AES-256-GCM.
type cipherEngine struct {
	random io.Reader
}

// NewCipherEngine constructs a [CipherEngine] that reads salts and nonces
// from the OS CSPRNG.
func NewCipherEngine() CipherEngine {
	return &cipherEngine{random: rand.Reader}
}

// Encrypt implements [CipherEngine].
func (c *cipherEngine) Encrypt(plaintext []byte, passphrase Secret) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, ErrEmptyPlaintext
	}
	if passphrase.IsEmpty() {
		return nil, ErrEmptyPassphrase
	}

	salt := make([]byte, envelope.SaltSize)
	if _, err := io.ReadFull(c.random, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	nonce := make([]byte, envelope.NonceSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	key, err := DeriveEncryptionKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	defer key.Wipe()

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return envelope.Encode(salt, nonce, ciphertext), nil
}

// Decrypt implements [CipherEngine].
func (c *cipherEngine) Decrypt(blob []byte, passphrase Secret) ([]byte, error) {
	if passphrase.IsEmpty() {
		return nil, ErrEmptyPassphrase
	}

	salt, nonce, ciphertext, err := envelope.Decode(blob)
	if err != nil {
		return nil, err
	}

	key, err := DeriveEncryptionKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	defer key.Wipe()

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrWrongPassphraseOrCorruptBlob
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	if gcm.NonceSize() != envelope.NonceSize {
		return nil, errors.New("unexpected gcm nonce size")
	}
	return gcm, nil
}
