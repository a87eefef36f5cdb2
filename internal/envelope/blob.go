// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

const (
	// SaltSize is the length of the PBKDF2 salt at the start of a blob.
	SaltSize = 16
	// NonceSize is the AES-GCM standard nonce length.
	NonceSize = 12
	// HeaderSize is the minimum length of a well-formed blob.
	HeaderSize = SaltSize + NonceSize
)

// Encode concatenates salt ‖ nonce ‖ ciphertext into a new slice.
func Encode(salt, nonce, ciphertext []byte) []byte {
	blob := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	return append(blob, ciphertext...)
}

// Decode splits a blob into its parts. The returned slices alias blob.
//
// A blob of exactly HeaderSize bytes is structurally valid and yields an
// empty ciphertext; authentication will reject it later.
func Decode(blob []byte) (salt, nonce, ciphertext []byte, err error) {
	if len(blob) < HeaderSize {
		return nil, nil, nil, ErrMalformedBlob
	}
	return blob[:SaltSize], blob[SaltSize:HeaderSize], blob[HeaderSize:], nil
}
