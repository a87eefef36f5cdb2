// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-backup-keeper/internal/crypto"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/models"
)

type blobService struct {
	blobStorage store.BlobStorage
	now         func() time.Time

	logger *logger.Logger
}

func NewBlobService(blobStorage store.BlobStorage, logger *logger.Logger) BlobService {
	return &blobService{
		blobStorage: blobStorage,
		now:         time.Now,
		logger:      logger,
	}
}

func (s *blobService) UploadBlob(ctx context.Context, blob models.StoredBlob) (models.UploadResult, error) {
	saved, err := s.blobStorage.SaveBlob(ctx, blob)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("save blob: %w", err)
	}

	return models.UploadResult{
		UploadedAt:     saved.UploadedAt,
		BlobSize:       int64(len(blob.Data)),
		StorageKeyHash: crypto.StorageKeyHash(blob.StorageKey),
	}, nil
}

func (s *blobService) DownloadBlob(ctx context.Context, storageKey string) (models.StoredBlob, error) {
	return s.blobStorage.GetBlob(ctx, storageKey)
}

func (s *blobService) DeleteExpiredBlobs(ctx context.Context, ttl time.Duration) (int64, error) {
	if ttl <= 0 {
		return 0, nil
	}

	deleted, err := s.blobStorage.DeleteBlobsOlderThan(ctx, s.now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("delete expired blobs: %w", err)
	}
	if deleted > 0 {
		s.logger.Info().
			Str("func", "blobService.DeleteExpiredBlobs").
			Int64("deleted", deleted).
			Dur("ttl", ttl).
			Msg("expired blobs removed")
	}
	return deleted, nil
}
