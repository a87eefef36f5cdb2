package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-backup-keeper/internal/validators"
	"github.com/MKhiriev/go-backup-keeper/models"
)

type BlobValidationService struct {
	inner     BlobService
	validator validators.Validator
}

func NewBlobValidationService(maxBlobSize int64) BlobServiceWrapper {
	return &BlobValidationService{
		validator: validators.NewBlobValidator(maxBlobSize),
	}
}

func (v *BlobValidationService) UploadBlob(ctx context.Context, blob models.StoredBlob) (models.UploadResult, error) {
	if err := v.validator.Validate(ctx, blob); err != nil {
		return models.UploadResult{}, fmt.Errorf("error during blob validation before saving: %w", err)
	}

	return v.inner.UploadBlob(ctx, blob)
}

func (v *BlobValidationService) DownloadBlob(ctx context.Context, storageKey string) (models.StoredBlob, error) {
	if err := v.validator.Validate(ctx, storageKey); err != nil {
		return models.StoredBlob{}, fmt.Errorf("error during storage key validation: %w", err)
	}

	return v.inner.DownloadBlob(ctx, storageKey)
}

func (v *BlobValidationService) DeleteExpiredBlobs(ctx context.Context, ttl time.Duration) (int64, error) {
	return v.inner.DeleteExpiredBlobs(ctx, ttl)
}

func (v *BlobValidationService) Wrap(wrapped BlobService) BlobService {
	v.inner = wrapped
	return v
}
