// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// Secret holds sensitive bytes (a passphrase or a derived key) that must be
// zeroed as soon as they are no longer needed. Always pair construction with
// a deferred Wipe.
type Secret []byte

// NewSecret copies s into a fresh buffer. The original string cannot be
// wiped, so it should not be kept around by the caller.
func NewSecret(s string) Secret {
	return Secret([]byte(s))
}

// Wipe overwrites the buffer with zeroes. It is safe to call on a nil Secret
// and to call more than once.
func (s Secret) Wipe() {
	clear(s)
}

// IsEmpty reports whether the secret holds no bytes.
func (s Secret) IsEmpty() bool {
	return len(s) == 0
}

// String hides the content so a Secret never ends up in logs by accident.
func (s Secret) String() string {
	return "[REDACTED]"
}
