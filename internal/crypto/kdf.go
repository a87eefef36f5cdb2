// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// pbkdf2Iterations is fixed: blobs carry no KDF parameters, so changing
	// it would make every existing backup undecryptable.
	pbkdf2Iterations = 100_000

	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// StorageKeyLength is the length of a hex-encoded SHA-256 digest.
	StorageKeyLength = 64

	// storageKeyHashLength is how much of the storage key is kept in sync
	// metadata and logs.
	storageKeyHashLength = 8
)

// DeriveEncryptionKey stretches passphrase with salt into a 32-byte AES key
// using PBKDF2-HMAC-SHA256. The result is deterministic for the same inputs.
// The caller owns the returned key and should Wipe it after use.
func DeriveEncryptionKey(passphrase Secret, salt []byte) (Secret, error) {
	if passphrase.IsEmpty() {
		return nil, ErrEmptyPassphrase
	}

	return pbkdf2.Key(passphrase, salt, pbkdf2Iterations, KeySize, sha256.New), nil
}

// DeriveStorageKey returns the lowercase hex SHA-256 of the passphrase. It
// addresses the blob on the server, so one passphrase maps to one backup
// slot. It does not reveal the encryption key, which is salted and stretched.
func DeriveStorageKey(passphrase Secret) string {
	sum := sha256.Sum256(passphrase)
	return hex.EncodeToString(sum[:])
}

// ValidateStorageKey checks that key looks like a DeriveStorageKey result.
func ValidateStorageKey(key string) error {
	if len(key) != StorageKeyLength {
		return fmt.Errorf("%w: got %d characters, want %d", ErrInvalidStorageKeyLength, len(key), StorageKeyLength)
	}
	for _, c := range key {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return ErrInvalidStorageKey
		}
	}
	return nil
}

// StorageKeyHash returns the short fingerprint of a storage key that is safe
// to show to the user or write to logs.
func StorageKeyHash(key string) string {
	if len(key) <= storageKeyHashLength {
		return key
	}
	return key[:storageKeyHashLength]
}
