package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-backup-keeper/internal/config"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
)

// Storages groups the server-side storage backends.
type Storages struct {
	BlobStorage BlobStorage
}

// NewStorages picks PostgreSQL when a DSN is configured and falls back to
// the blob directory otherwise.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DSN != "" {
		db, err := NewConnectPostgres(ctx, cfg.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return &Storages{BlobStorage: NewBlobRepository(db, logger)}, nil
	}

	blobs, err := NewFileBlobStorage(cfg.BinaryDataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("file storage error: %w", err)
	}
	return &Storages{BlobStorage: blobs}, nil
}

// Close closes the underlying backend.
func (s *Storages) Close() error {
	if s.BlobStorage == nil {
		return nil
	}
	return s.BlobStorage.Close()
}
