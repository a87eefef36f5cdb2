package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_engine_mock.go -package=mock

// CipherEngine performs passphrase-based authenticated encryption of whole
// backup payloads. It knows nothing about the network, the local database or
// the payload format.
//
// Blob layout produced by Encrypt and expected by Decrypt:
//
//	salt (16 bytes) ‖ nonce (12 bytes) ‖ ciphertext + GCM tag
//
// The key is derived from the passphrase and the embedded salt with
// PBKDF2-SHA256, so a blob is self-contained: the passphrase is all that is
// needed to open it.
type CipherEngine interface {
	// Encrypt seals plaintext with a key derived from passphrase and a fresh
	// random salt. Every call uses a new salt and nonce, so encrypting the
	// same input twice yields different blobs.
	Encrypt(plaintext []byte, passphrase Secret) ([]byte, error)

	// Decrypt opens a blob produced by Encrypt. A blob shorter than the
	// header fails with envelope.ErrMalformedBlob; any authentication failure
	// is reported as ErrWrongPassphraseOrCorruptBlob.
	Decrypt(blob []byte, passphrase Secret) ([]byte, error)
}
