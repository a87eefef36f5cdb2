package service

import (
	"context"

	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=servicemock/client_service_mock.go -package=servicemock

// ProgressFunc receives progress events synchronously from a running backup
// or restore. It may be nil. A panic inside it is recovered and logged.
type ProgressFunc func(models.ProgressEvent)

// LocalStore is the view of the client database the orchestrators need.
type LocalStore = store.LocalDataStore

// ClientBackupService exports the local database, encrypts it with a key
// derived from the passphrase and uploads the result.
type ClientBackupService interface {
	// CreateBackup runs export, encrypt and upload. The outcome is always
	// written to sync metadata. A failure is returned as *OperationError.
	CreateBackup(ctx context.Context, passphrase string, onProgress ProgressFunc) (models.BackupResult, error)
}

// ClientRestoreService replaces the local database with the contents of a
// remote backup.
type ClientRestoreService interface {
	// RestoreBackup downloads, decrypts and validates the backup, snapshots
	// the current data and applies the backup in a single transaction. If
	// the apply fails the snapshot is re-applied. The outcome is always
	// written to sync metadata. A failure is returned as *OperationError.
	RestoreBackup(ctx context.Context, passphrase string, onProgress ProgressFunc) (models.RestoreResult, error)
	// RestoreSafetyBackup re-applies a retained snapshot, the newest one
	// when id is empty. The current data is snapshotted first and the
	// outcome is written to sync metadata like a restore.
	RestoreSafetyBackup(ctx context.Context, id string, onProgress ProgressFunc) (models.RestoreResult, error)
}

// ClientStatusService reads what the status screen shows.
type ClientStatusService interface {
	// LastAttempt returns the most recent sync metadata. found is false
	// when no backup or restore was attempted yet.
	LastAttempt(ctx context.Context) (meta models.SyncMetadata, found bool, err error)
	// SafetyBackups lists retained pre-restore snapshots, newest first.
	SafetyBackups(ctx context.Context) ([]models.SafetyBackup, error)
}
