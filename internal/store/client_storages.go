package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-backup-keeper/internal/config"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
)

// ClientStorages groups the client-side repositories the backup and restore
// services depend on.
type ClientStorages struct {
	// LocalData is the SQLite database holding the user's health records.
	LocalData LocalDataStore
	// SyncMetadata keeps the status of the last backup or restore attempt.
	SyncMetadata SyncMetadataRepository
	// SafetyBackups holds pre-restore snapshots in a separate bbolt file.
	SafetyBackups SafetyBackupStore

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. opens the SQLite database at cfg.DB.DSN, creating the file if needed;
//  2. runs pending schema migrations;
//  3. opens the safety backup store at cfg.SafetyBackupPath.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	safetyBackups, err := NewBoltSafetyBackupStore(cfg.SafetyBackupPath, cfg.SafetyBackupRetention, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("safety backup store: %w", err)
	}

	return &ClientStorages{
		LocalData:     NewLocalDataStore(db, logger),
		SyncMetadata:  NewSyncMetadataRepository(db, logger),
		SafetyBackups: safetyBackups,
		db:            db,
	}, nil
}

// Close releases both the SQLite connection and the bbolt file.
func (s *ClientStorages) Close() error {
	var errs []error
	if s.SafetyBackups != nil {
		errs = append(errs, s.SafetyBackups.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
