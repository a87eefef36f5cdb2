package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-backup-keeper/models"
)

const (
	FieldPassphrase   = "passphrase"
	FieldConfirmation = "confirmation"
)

// DefaultMinPassphraseLength is counted in runes, not bytes.
const DefaultMinPassphraseLength = 12

type PassphraseValidator struct {
	minLength int
}

// NewPassphraseValidator validates [models.PassphraseInput]. A minLength
// below one falls back to DefaultMinPassphraseLength.
func NewPassphraseValidator(minLength int) Validator {
	if minLength < 1 {
		minLength = DefaultMinPassphraseLength
	}
	return &PassphraseValidator{minLength: minLength}
}

// Validate checks the passphrase policy. With no fields only the passphrase
// itself is checked; pass FieldConfirmation to also require a matching
// confirmation.
func (v *PassphraseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var input models.PassphraseInput
	switch value := obj.(type) {
	case models.PassphraseInput:
		input = value
	case *models.PassphraseInput:
		input = *value
	case string:
		input = models.PassphraseInput{Passphrase: value}
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	if len(fields) == 0 {
		fields = []string{FieldPassphrase}
	}

	for _, field := range fields {
		switch field {
		case FieldPassphrase:
			if input.Passphrase == "" {
				return ErrEmptyPassphrase
			}
			if n := utf8.RuneCountInString(input.Passphrase); n < v.minLength {
				return fmt.Errorf("%w: %d characters, need at least %d", ErrPassphraseTooShort, n, v.minLength)
			}
		case FieldConfirmation:
			if input.Confirmation != input.Passphrase {
				return ErrPassphraseMismatch
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
