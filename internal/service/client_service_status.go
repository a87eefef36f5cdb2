package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/models"
)

type clientStatusService struct {
	syncMetadata  store.SyncMetadataRepository
	safetyBackups store.SafetyBackupStore
}

func NewClientStatusService(syncMetadata store.SyncMetadataRepository, safetyBackups store.SafetyBackupStore) ClientStatusService {
	return &clientStatusService{
		syncMetadata:  syncMetadata,
		safetyBackups: safetyBackups,
	}
}

func (s *clientStatusService) LastAttempt(ctx context.Context) (models.SyncMetadata, bool, error) {
	meta, err := s.syncMetadata.GetSyncMetadata(ctx)
	if errors.Is(err, store.ErrSyncMetadataNotFound) {
		return models.SyncMetadata{}, false, nil
	}
	if err != nil {
		return models.SyncMetadata{}, false, fmt.Errorf("get sync metadata: %w", err)
	}
	return meta, true, nil
}

func (s *clientStatusService) SafetyBackups(ctx context.Context) ([]models.SafetyBackup, error) {
	snapshots, err := s.safetyBackups.ListSafetyBackups(ctx)
	if err != nil {
		return nil, fmt.Errorf("list safety backups: %w", err)
	}
	return snapshots, nil
}
