// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by key derivation and the cipher engine.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrEmptyPassphrase is returned when a key is requested for a zero-length
	// passphrase.
	ErrEmptyPassphrase = errors.New("passphrase is empty")

	// ErrEmptyPlaintext is returned by Encrypt when there is nothing to encrypt.
	ErrEmptyPlaintext = errors.New("plaintext is empty")

	// ErrWrongPassphraseOrCorruptBlob is returned when AES-GCM authentication
	// fails. A wrong passphrase and a tampered blob are indistinguishable.
	ErrWrongPassphraseOrCorruptBlob = errors.New("wrong passphrase or corrupt blob")

	// ErrInvalidStorageKeyLength is returned when a storage key is not exactly
	// 64 characters long.
	ErrInvalidStorageKeyLength = errors.New("invalid storage key length")

	// ErrInvalidStorageKey is returned when a 64-character storage key contains
	// characters outside of lowercase hex.
	ErrInvalidStorageKey = errors.New("invalid storage key")
)
