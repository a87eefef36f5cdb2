package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPassphrase    = errors.New("passphrase is required")
	ErrPassphraseTooShort = errors.New("passphrase is too short")
	ErrPassphraseMismatch = errors.New("passphrase confirmation does not match")

	ErrInvalidStorageKey   = errors.New("invalid storage key")
	ErrBlobTooShort        = errors.New("blob is shorter than the envelope header")
	ErrBlobTooLarge        = errors.New("blob exceeds the maximum size")
	ErrInvalidOriginalSize = errors.New("invalid original size")
	ErrInvalidBackupTime   = errors.New("invalid backup time")
)
