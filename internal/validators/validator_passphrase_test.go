// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-backup-keeper/models"
)

func TestPassphraseValidator(t *testing.T) {
	v := NewPassphraseValidator(0)
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid", obj: models.PassphraseInput{Passphrase: "correct-horse-battery"}},
		{name: "valid string", obj: "correct-horse-battery"},
		{name: "valid pointer", obj: &models.PassphraseInput{Passphrase: "correct-horse-battery"}},
		{name: "empty", obj: models.PassphraseInput{}, wantErr: ErrEmptyPassphrase},
		{name: "eleven chars", obj: "abcdefghijk", wantErr: ErrPassphraseTooShort},
		{name: "twelve chars", obj: "abcdefghijkl"},
		// 12 runes, 24 bytes
		{name: "multibyte counted in runes", obj: strings.Repeat("д", 12)},
		{name: "multibyte too short", obj: strings.Repeat("д", 11), wantErr: ErrPassphraseTooShort},
		{
			name:   "confirmation matches",
			obj:    models.PassphraseInput{Passphrase: "alpha-beta-gamma-12", Confirmation: "alpha-beta-gamma-12"},
			fields: []string{FieldPassphrase, FieldConfirmation},
		},
		{
			name:    "confirmation mismatch",
			obj:     models.PassphraseInput{Passphrase: "alpha-beta-gamma-12", Confirmation: "alpha-beta-gamma-13"},
			fields:  []string{FieldPassphrase, FieldConfirmation},
			wantErr: ErrPassphraseMismatch,
		},
		{
			name:   "confirmation ignored unless asked",
			obj:    models.PassphraseInput{Passphrase: "alpha-beta-gamma-12", Confirmation: "other"},
			fields: nil,
		},
		{name: "unknown field", obj: "alpha-beta-gamma-12", fields: []string{"nickname"}, wantErr: ErrUnknownField},
		{name: "unsupported type", obj: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPassphraseValidator_CustomMinLength(t *testing.T) {
	v := NewPassphraseValidator(4)

	assert.NoError(t, v.Validate(context.Background(), "abcd"))
	assert.ErrorIs(t, v.Validate(context.Background(), "abc"), ErrPassphraseTooShort)
}
