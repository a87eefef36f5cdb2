package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-backup-keeper/models"
)

func validBlob() models.StoredBlob {
	return models.StoredBlob{
		StorageKey:   strings.Repeat("0f", 32),
		Data:         make([]byte, 64),
		BackupTime:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		OriginalSize: 10,
	}
}

func TestBlobValidator(t *testing.T) {
	v := NewBlobValidator(128)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(b *models.StoredBlob)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(b *models.StoredBlob) {}},
		{name: "short key", mutate: func(b *models.StoredBlob) { b.StorageKey = "abc" }, wantErr: ErrInvalidStorageKey},
		{name: "uppercase key", mutate: func(b *models.StoredBlob) { b.StorageKey = strings.Repeat("0F", 32) }, wantErr: ErrInvalidStorageKey},
		{name: "27 bytes", mutate: func(b *models.StoredBlob) { b.Data = make([]byte, 27) }, wantErr: ErrBlobTooShort},
		{name: "28 bytes", mutate: func(b *models.StoredBlob) { b.Data = make([]byte, 28) }},
		{name: "over limit", mutate: func(b *models.StoredBlob) { b.Data = make([]byte, 129) }, wantErr: ErrBlobTooLarge},
		{name: "negative size", mutate: func(b *models.StoredBlob) { b.OriginalSize = -1 }, wantErr: ErrInvalidOriginalSize},
		{name: "zero time", mutate: func(b *models.StoredBlob) { b.BackupTime = time.Time{} }, wantErr: ErrInvalidBackupTime},
		{
			name:    "only key checked",
			mutate:  func(b *models.StoredBlob) { b.Data = nil },
			fields:  []string{FieldStorageKey},
			wantErr: nil,
		},
		{name: "unknown field", mutate: func(b *models.StoredBlob) {}, fields: []string{"owner"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob := validBlob()
			tt.mutate(&blob)

			err := v.Validate(ctx, blob, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBlobValidator_NoLimit(t *testing.T) {
	v := NewBlobValidator(0)
	blob := validBlob()
	blob.Data = make([]byte, 1<<20)

	assert.NoError(t, v.Validate(context.Background(), &blob))
}

func TestBlobValidator_StorageKeyString(t *testing.T) {
	v := NewBlobValidator(0)

	assert.NoError(t, v.Validate(context.Background(), strings.Repeat("a", 64)))
	assert.ErrorIs(t, v.Validate(context.Background(), "nope"), ErrInvalidStorageKey)
	assert.ErrorIs(t, v.Validate(context.Background(), 3.14), ErrUnsupportedType)
}
