package envelope

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedBlob is returned when a blob is too short to hold the salt
	// and nonce header.
	ErrMalformedBlob = errors.New("malformed backup blob")

	// ErrMalformedPayload is returned when decrypted bytes are not a JSON
	// backup payload.
	ErrMalformedPayload = errors.New("malformed backup payload")

	// ErrUnsupportedEnvelopeVersion is returned when the payload version is
	// missing or differs from CurrentVersion.
	ErrUnsupportedEnvelopeVersion = errors.New("unsupported backup envelope version")

	// ErrMissingCriticalTable matches every *MissingCriticalTableError.
	ErrMissingCriticalTable = errors.New("backup is missing a critical table")
)

// MissingCriticalTableError names the table whose absence failed validation.
type MissingCriticalTableError struct {
	Table string
}

func (e *MissingCriticalTableError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingCriticalTable, e.Table)
}

// Is makes errors.Is(err, ErrMissingCriticalTable) hold.
func (e *MissingCriticalTableError) Is(target error) bool {
	return target == ErrMissingCriticalTable
}
