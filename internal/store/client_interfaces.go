package store

import (
	"context"

	"github.com/MKhiriev/go-backup-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalDataStore is the client database as a whole: every user table can be
// dumped and replaced in one go.
type LocalDataStore interface {
	// ExportAllTables returns every table of the local schema, empty ones
	// included. Bookkeeping tables (migrations, sync metadata) are skipped.
	ExportAllTables(ctx context.Context) (models.TableSet, error)
	// RestoreTransaction clears every table present in tables and inserts
	// its rows, all inside one transaction. On any error nothing changes.
	RestoreTransaction(ctx context.Context, tables models.TableSet) error
	// CurrentSchemaVersion returns the latest applied migration version.
	CurrentSchemaVersion(ctx context.Context) (int, error)
}

// SyncMetadataRepository keeps the single status row describing the last
// backup or restore attempt.
type SyncMetadataRepository interface {
	SaveSyncMetadata(ctx context.Context, meta models.SyncMetadata) error
	// GetSyncMetadata returns ErrSyncMetadataNotFound if nothing was saved yet.
	GetSyncMetadata(ctx context.Context) (models.SyncMetadata, error)
}

// SafetyBackupStore persists pre-restore snapshots outside of the main
// database and rotates them.
type SafetyBackupStore interface {
	// SaveSafetyBackup stores snapshot and evicts the oldest ones beyond the
	// retention limit.
	SaveSafetyBackup(ctx context.Context, snapshot models.SafetyBackup) error
	// GetSafetyBackup returns ErrSafetyBackupNotFound for an unknown id.
	GetSafetyBackup(ctx context.Context, id string) (models.SafetyBackup, error)
	// LatestSafetyBackup returns ErrSafetyBackupNotFound when empty.
	LatestSafetyBackup(ctx context.Context) (models.SafetyBackup, error)
	// ListSafetyBackups returns snapshots newest first, without table data.
	ListSafetyBackups(ctx context.Context) ([]models.SafetyBackup, error)
	Close() error
}
