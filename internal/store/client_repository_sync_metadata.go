package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/models"
)

type syncMetadataRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncMetadataRepository constructs a [SyncMetadataRepository] that keeps
// its single row in the sync_metadata table of the client database.
func NewSyncMetadataRepository(db *DB, logger *logger.Logger) SyncMetadataRepository {
	return &syncMetadataRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *syncMetadataRepository) SaveSyncMetadata(ctx context.Context, meta models.SyncMetadata) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSyncMetadataQuery(meta)
	if err != nil {
		log.Err(err).Str("func", "syncMetadataRepository.SaveSyncMetadata").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "syncMetadataRepository.SaveSyncMetadata").
			Str("operation", string(meta.Operation)).
			Bool("success", meta.LastAttemptSuccess).
			Msg("failed to upsert sync metadata")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *syncMetadataRepository) GetSyncMetadata(ctx context.Context) (models.SyncMetadata, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSyncMetadataQuery()
	if err != nil {
		return models.SyncMetadata{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		meta          models.SyncMetadata
		operation     string
		lastAttemptAt string
		errorMessage  sql.NullString
	)
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(
		&meta.ID,
		&operation,
		&lastAttemptAt,
		&meta.LastAttemptSuccess,
		&meta.BlobSizeBytes,
		&meta.StorageKeyHash,
		&errorMessage,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncMetadata{}, ErrSyncMetadataNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "syncMetadataRepository.GetSyncMetadata").Msg("failed to read sync metadata")
		return models.SyncMetadata{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	meta.Operation = models.Operation(operation)
	meta.LastAttemptAt, err = time.Parse(timeLayout, lastAttemptAt)
	if err != nil {
		return models.SyncMetadata{}, fmt.Errorf("%w: last_attempt_at: %w", ErrScanningRow, err)
	}
	if errorMessage.Valid {
		meta.ErrorMessage = &errorMessage.String
	}

	return meta, nil
}
