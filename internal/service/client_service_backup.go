// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-backup-keeper/internal/adapter"
	"github.com/MKhiriev/go-backup-keeper/internal/crypto"
	"github.com/MKhiriev/go-backup-keeper/internal/envelope"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/models"
)

type clientBackupService struct {
	localStore LocalStore
	cipher     crypto.CipherEngine
	transport  adapter.Transport
	recorder   *syncRecorder
	now        func() time.Time

	logger *logger.Logger
}

func NewClientBackupService(
	localStore LocalStore,
	syncMetadata store.SyncMetadataRepository,
	cipher crypto.CipherEngine,
	transport adapter.Transport,
	logger *logger.Logger,
) ClientBackupService {
	return &clientBackupService{
		localStore: localStore,
		cipher:     cipher,
		transport:  transport,
		recorder:   &syncRecorder{repository: syncMetadata, now: time.Now, logger: logger},
		now:        time.Now,
		logger:     logger,
	}
}

func (s *clientBackupService) CreateBackup(ctx context.Context, passphrase string, onProgress ProgressFunc) (result models.BackupResult, err error) {
	secret := crypto.NewSecret(passphrase)
	defer secret.Wipe()

	defer func() {
		s.recorder.record(ctx, models.OperationBackup, result.BlobSizeBytes, result.StorageKeyHash, err)
		if err != nil {
			s.logger.Err(err).Str("func", "clientBackupService.CreateBackup").Msg("backup failed")
			result = models.BackupResult{}
			err = newOperationError(models.OperationBackup, err)
		}
	}()

	if secret.IsEmpty() {
		return result, crypto.ErrEmptyPassphrase
	}

	progress := newProgressEmitter(onProgress, s.logger)

	progress.emit(models.StageExport, 0, "reading local data")
	tables, err := s.localStore.ExportAllTables(ctx)
	if err != nil {
		return result, fmt.Errorf("export local tables: %w", err)
	}
	schemaVersion, err := s.localStore.CurrentSchemaVersion(ctx)
	if err != nil {
		return result, fmt.Errorf("read schema version: %w", err)
	}
	backupTime := s.now().UTC()
	plaintext, err := envelope.SerializePayload(tables, schemaVersion, backupTime)
	if err != nil {
		return result, fmt.Errorf("serialize payload: %w", err)
	}
	originalSize := int64(len(plaintext))
	progress.emit(models.StageExport, 30, "local data exported")

	progress.emit(models.StageEncrypt, 30, "encrypting")
	blob, err := s.cipher.Encrypt(plaintext, secret)
	clear(plaintext)
	if err != nil {
		return result, fmt.Errorf("encrypt payload: %w", err)
	}
	progress.emit(models.StageEncrypt, 60, "backup encrypted")

	progress.emit(models.StageUpload, 60, "uploading")
	storageKey := crypto.DeriveStorageKey(secret)
	uploaded, err := s.transport.Upload(ctx, blob, storageKey, models.UploadMetadata{
		Timestamp:    backupTime,
		OriginalSize: originalSize,
	})
	if err != nil {
		return result, fmt.Errorf("upload backup: %w", err)
	}
	progress.emit(models.StageUpload, 100, "backup uploaded")

	result = models.BackupResult{
		UploadedAt:     uploaded.UploadedAt,
		BlobSizeBytes:  int64(len(blob)),
		StorageKeyHash: crypto.StorageKeyHash(storageKey),
	}
	if result.UploadedAt.IsZero() {
		result.UploadedAt = backupTime
	}

	s.logger.Info().
		Str("func", "clientBackupService.CreateBackup").
		Str("storage_key_hash", result.StorageKeyHash).
		Int64("blob_size", result.BlobSizeBytes).
		Int("rows", tables.RowCount()).
		Msg("backup created")

	return result, nil
}
