// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-backup-keeper/internal/crypto"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/models"
)

// blobRepository is the PostgreSQL implementation of [BlobStorage]. Blobs
// live in the "backups" table keyed by storage key.
type blobRepository struct {
	*DB
	logger *logger.Logger
}

// NewBlobRepository constructs a [BlobStorage] backed by PostgreSQL.
func NewBlobRepository(db *DB, logger *logger.Logger) BlobStorage {
	return &blobRepository{
		DB:     db,
		logger: logger,
	}
}

func (b *blobRepository) SaveBlob(ctx context.Context, blob models.StoredBlob) (models.StoredBlob, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertBlobQuery(blob)
	if err != nil {
		log.Err(err).Str("func", "blobRepository.SaveBlob").Msg("failed to create query")
		return models.StoredBlob{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = b.DB.QueryRowContext(ctx, query, args...).Scan(&blob.UploadedAt); err != nil {
		log.Err(err).
			Str("func", "blobRepository.SaveBlob").
			Str("storage_key_hash", crypto.StorageKeyHash(blob.StorageKey)).
			Int("size", len(blob.Data)).
			Msg("failed to upsert blob")
		return models.StoredBlob{}, b.wrapError(ErrExecutingStatement, err)
	}

	return blob, nil
}

func (b *blobRepository) GetBlob(ctx context.Context, storageKey string) (models.StoredBlob, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBlobQuery(storageKey)
	if err != nil {
		return models.StoredBlob{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var blob models.StoredBlob
	err = b.DB.QueryRowContext(ctx, query, args...).Scan(
		&blob.StorageKey,
		&blob.Data,
		&blob.BackupTime,
		&blob.OriginalSize,
		&blob.UploadedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredBlob{}, ErrBlobNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "blobRepository.GetBlob").
			Str("storage_key_hash", crypto.StorageKeyHash(storageKey)).
			Msg("failed to read blob")
		return models.StoredBlob{}, b.wrapError(ErrExecutingQuery, err)
	}

	return blob, nil
}

func (b *blobRepository) DeleteBlobsOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBlobsOlderThanQuery(cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := b.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "blobRepository.DeleteBlobsOlderThan").Msg("failed to delete expired blobs")
		return 0, b.wrapError(ErrExecutingStatement, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return deleted, nil
}

func (b *blobRepository) Close() error {
	return b.DB.Close()
}

// wrapError marks transient failures with ErrStorageUnavailable so the
// transport can answer 503 instead of 500.
func (b *blobRepository) wrapError(kind, err error) error {
	if b.DB.isRetryable(err) {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, kind, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}
