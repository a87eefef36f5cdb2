// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-backup-keeper/internal/adapter"
	"github.com/MKhiriev/go-backup-keeper/internal/crypto"
	"github.com/MKhiriev/go-backup-keeper/internal/envelope"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/models"
)

type idGenerator interface {
	Generate() string
}

type clientRestoreService struct {
	localStore     LocalStore
	safetyBackups  store.SafetyBackupStore
	cipher         crypto.CipherEngine
	transport      adapter.Transport
	recorder       *syncRecorder
	ids            idGenerator
	criticalTables []string
	now            func() time.Time

	logger *logger.Logger
}

func NewClientRestoreService(
	localStore LocalStore,
	syncMetadata store.SyncMetadataRepository,
	safetyBackups store.SafetyBackupStore,
	cipher crypto.CipherEngine,
	transport adapter.Transport,
	ids idGenerator,
	logger *logger.Logger,
) ClientRestoreService {
	return &clientRestoreService{
		localStore:     localStore,
		safetyBackups:  safetyBackups,
		cipher:         cipher,
		transport:      transport,
		recorder:       &syncRecorder{repository: syncMetadata, now: time.Now, logger: logger},
		ids:            ids,
		criticalTables: envelope.DefaultCriticalTables,
		now:            time.Now,
		logger:         logger,
	}
}

// RestoreBackup moves through download, decrypt, validate, backup_local and
// restore. Nothing local is touched before backup_local, and once the apply
// transaction starts it runs to completion regardless of ctx.
func (s *clientRestoreService) RestoreBackup(ctx context.Context, passphrase string, onProgress ProgressFunc) (result models.RestoreResult, err error) {
	secret := crypto.NewSecret(passphrase)
	defer secret.Wipe()

	var blobSize int64
	defer func() {
		s.recorder.record(ctx, models.OperationRestore, blobSize, result.StorageKeyHash, err)
		if err != nil {
			s.logger.Err(err).Str("func", "clientRestoreService.RestoreBackup").Msg("restore failed")
			result = models.RestoreResult{}
			err = newOperationError(models.OperationRestore, err)
		}
	}()

	if secret.IsEmpty() {
		return result, crypto.ErrEmptyPassphrase
	}

	progress := newProgressEmitter(onProgress, s.logger)

	progress.emit(models.StageDownload, 0, "downloading backup")
	storageKey := crypto.DeriveStorageKey(secret)
	blob, err := s.transport.Download(ctx, storageKey)
	if err != nil {
		return result, fmt.Errorf("download backup: %w", err)
	}
	progress.emit(models.StageDownload, 20, "backup downloaded")

	progress.emit(models.StageDecrypt, 20, "decrypting")
	plaintext, err := s.cipher.Decrypt(blob, secret)
	if err != nil {
		return result, fmt.Errorf("decrypt backup: %w", err)
	}
	defer clear(plaintext)
	progress.emit(models.StageDecrypt, 40, "backup decrypted")

	progress.emit(models.StageValidate, 40, "validating")
	payload, err := envelope.ParsePayload(plaintext)
	if err != nil {
		return result, fmt.Errorf("parse payload: %w", err)
	}
	if err = envelope.ValidatePayload(payload, s.criticalTables); err != nil {
		return result, fmt.Errorf("validate payload: %w", err)
	}
	progress.emit(models.StageValidate, 50, "backup is valid")

	progress.emit(models.StageBackupLocal, 50, "saving a safety copy of local data")
	snapshot, err := s.takeSnapshot(ctx)
	if err != nil {
		return result, err
	}
	progress.emit(models.StageBackupLocal, 70, "safety copy saved")

	if err = ctx.Err(); err != nil {
		return result, err
	}

	progress.emit(models.StageRestore, 70, "restoring")
	applyCtx := context.WithoutCancel(ctx)
	if err = s.localStore.RestoreTransaction(applyCtx, payload.Data); err != nil {
		return result, s.rollback(applyCtx, snapshot, err)
	}
	progress.emit(models.StageRestore, 100, "restore complete")

	blobSize = int64(len(blob))
	result = models.RestoreResult{
		RestoredAt:     s.now().UTC(),
		BackupTakenAt:  payload.Timestamp,
		SchemaVersion:  payload.SchemaVersion,
		TablesRestored: len(payload.Data),
		RowsRestored:   payload.Data.RowCount(),
		SafetyBackupID: snapshot.ID,
		StorageKeyHash: crypto.StorageKeyHash(storageKey),
	}

	s.logger.Info().
		Str("func", "clientRestoreService.RestoreBackup").
		Str("storage_key_hash", result.StorageKeyHash).
		Str("safety_backup_id", snapshot.ID).
		Int("tables", result.TablesRestored).
		Int("rows", result.RowsRestored).
		Msg("backup restored")

	return result, nil
}

// RestoreSafetyBackup moves through backup_local and restore only: the
// snapshot is already local, decrypted and known to match this schema.
func (s *clientRestoreService) RestoreSafetyBackup(ctx context.Context, id string, onProgress ProgressFunc) (result models.RestoreResult, err error) {
	defer func() {
		s.recorder.record(ctx, models.OperationSafetyRestore, 0, "", err)
		if err != nil {
			s.logger.Err(err).
				Str("func", "clientRestoreService.RestoreSafetyBackup").
				Str("safety_backup_id", id).
				Msg("safety backup restore failed")
			result = models.RestoreResult{}
			err = newOperationError(models.OperationSafetyRestore, err)
		}
	}()

	progress := newProgressEmitter(onProgress, s.logger)

	progress.emit(models.StageBackupLocal, 0, "loading safety backup")
	target, err := s.loadSafetyBackup(ctx, id)
	if err != nil {
		return result, err
	}
	progress.emit(models.StageBackupLocal, 20, "saving a safety copy of local data")

	current, err := s.takeSnapshot(ctx)
	if err != nil {
		return result, err
	}
	progress.emit(models.StageBackupLocal, 60, "safety copy saved")

	if err = ctx.Err(); err != nil {
		return result, err
	}

	progress.emit(models.StageRestore, 60, "restoring safety backup")
	applyCtx := context.WithoutCancel(ctx)
	if err = s.localStore.RestoreTransaction(applyCtx, target.Tables); err != nil {
		return result, s.rollback(applyCtx, current, err)
	}
	progress.emit(models.StageRestore, 100, "restore complete")

	result = models.RestoreResult{
		RestoredAt:     s.now().UTC(),
		BackupTakenAt:  target.CreatedAt,
		SchemaVersion:  target.SchemaVersion,
		TablesRestored: len(target.Tables),
		RowsRestored:   target.Tables.RowCount(),
		SafetyBackupID: current.ID,
	}

	s.logger.Info().
		Str("func", "clientRestoreService.RestoreSafetyBackup").
		Str("restored_id", target.ID).
		Str("safety_backup_id", current.ID).
		Int("rows", result.RowsRestored).
		Msg("safety backup restored")

	return result, nil
}

func (s *clientRestoreService) loadSafetyBackup(ctx context.Context, id string) (models.SafetyBackup, error) {
	var (
		snapshot models.SafetyBackup
		err      error
	)
	if id == "" {
		snapshot, err = s.safetyBackups.LatestSafetyBackup(ctx)
	} else {
		snapshot, err = s.safetyBackups.GetSafetyBackup(ctx, id)
	}
	if err != nil {
		return models.SafetyBackup{}, fmt.Errorf("load safety backup: %w", err)
	}
	return snapshot, nil
}

func (s *clientRestoreService) takeSnapshot(ctx context.Context) (models.SafetyBackup, error) {
	tables, err := s.localStore.ExportAllTables(ctx)
	if err != nil {
		return models.SafetyBackup{}, fmt.Errorf("export local tables for safety backup: %w", err)
	}
	schemaVersion, err := s.localStore.CurrentSchemaVersion(ctx)
	if err != nil {
		return models.SafetyBackup{}, fmt.Errorf("read schema version for safety backup: %w", err)
	}

	snapshot := models.SafetyBackup{
		ID:            s.ids.Generate(),
		CreatedAt:     s.now().UTC(),
		SchemaVersion: schemaVersion,
		Tables:        tables,
	}
	if err = s.safetyBackups.SaveSafetyBackup(ctx, snapshot); err != nil {
		return models.SafetyBackup{}, fmt.Errorf("save safety backup: %w", err)
	}

	return snapshot, nil
}

// rollback re-applies snapshot after a failed apply and classifies the
// outcome.
func (s *clientRestoreService) rollback(ctx context.Context, snapshot models.SafetyBackup, cause error) error {
	if err := s.localStore.RestoreTransaction(ctx, snapshot.Tables); err != nil {
		s.logger.Error().
			Err(err).
			Str("func", "clientRestoreService.rollback").
			Str("safety_backup_id", snapshot.ID).
			Msg("rollback from safety backup failed")
		return fmt.Errorf("%w: %w", ErrRestoreFailed, errors.Join(cause, err))
	}

	s.logger.Warn().
		Err(cause).
		Str("func", "clientRestoreService.rollback").
		Str("safety_backup_id", snapshot.ID).
		Msg("restore failed, local data rolled back")
	return fmt.Errorf("%w: %w", ErrRestoreFailedRolledBack, cause)
}
