// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-backup-keeper/internal/crypto"
	"github.com/MKhiriev/go-backup-keeper/internal/envelope"
	"github.com/MKhiriev/go-backup-keeper/models"
)

const (
	FieldStorageKey   = "storage_key"
	FieldData         = "data"
	FieldOriginalSize = "original_size"
	FieldBackupTime   = "backup_time"
)

var allBlobFields = []string{FieldStorageKey, FieldData, FieldOriginalSize, FieldBackupTime}

// BlobValidator checks uploads on the server side. It can only look at the
// shape of a blob: contents are opaque ciphertext.
type BlobValidator struct {
	maxSize int64
}

// NewBlobValidator validates [models.StoredBlob] values and storage key
// strings. maxSize <= 0 disables the size ceiling.
func NewBlobValidator(maxSize int64) Validator {
	return &BlobValidator{maxSize: maxSize}
}

func (v *BlobValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StoredBlob:
		return v.validateBlob(value, fields...)
	case *models.StoredBlob:
		return v.validateBlob(*value, fields...)
	case string:
		return v.validateStorageKey(value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *BlobValidator) validateBlob(blob models.StoredBlob, fields ...string) error {
	if len(fields) == 0 {
		fields = allBlobFields
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldStorageKey:
			err = v.validateStorageKey(blob.StorageKey)
		case FieldData:
			err = v.validateData(blob.Data)
		case FieldOriginalSize:
			if blob.OriginalSize < 0 {
				err = fmt.Errorf("%w: %d", ErrInvalidOriginalSize, blob.OriginalSize)
			}
		case FieldBackupTime:
			if blob.BackupTime.IsZero() {
				err = ErrInvalidBackupTime
			}
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *BlobValidator) validateStorageKey(key string) error {
	if err := crypto.ValidateStorageKey(key); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageKey, err)
	}
	return nil
}

func (v *BlobValidator) validateData(data []byte) error {
	if len(data) < envelope.HeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrBlobTooShort, len(data))
	}
	if v.maxSize > 0 && int64(len(data)) > v.maxSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrBlobTooLarge, len(data), v.maxSize)
	}
	return nil
}
