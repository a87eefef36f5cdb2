// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-backup-keeper/internal/app"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/metrics"
	"github.com/MKhiriev/go-backup-keeper/internal/rpc"
	"github.com/MKhiriev/go-backup-keeper/models"
)

// Upload stores req.Blob under req.StorageKey after the integrity check.
func (h *Handler) Upload(ctx context.Context, req *rpc.UploadRequest) (*rpc.UploadResponse, error) {
	log := logger.FromContext(ctx)

	if h.hasher != nil && !h.hasher.Verify(req.Blob, req.Hash) {
		log.Warn().Str("func", "*Handler.Upload").Msg("hashes are not equal")
		return nil, status.Error(codes.InvalidArgument, app.MsgIntegrityCheckFailed)
	}

	result, err := h.services.BlobService.UploadBlob(ctx, models.StoredBlob{
		StorageKey:   req.StorageKey,
		Data:         req.Blob,
		BackupTime:   req.BackupTime.UTC(),
		OriginalSize: req.OriginalSize,
	})
	metrics.BlobOperations.WithLabelValues("upload", metrics.Result(err)).Inc()
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	metrics.BlobSizeBytes.Observe(float64(result.BlobSize))

	log.Info().
		Str("storage_key_hash", result.StorageKeyHash).
		Int64("blob_size", result.BlobSize).
		Msg("backup stored")

	return &result, nil
}

// Download returns the blob stored under req.StorageKey.
func (h *Handler) Download(ctx context.Context, req *rpc.DownloadRequest) (*rpc.DownloadResponse, error) {
	blob, err := h.services.BlobService.DownloadBlob(ctx, req.StorageKey)
	metrics.BlobOperations.WithLabelValues("download", metrics.Result(err)).Inc()
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &rpc.DownloadResponse{Blob: blob.Data}, nil
}
