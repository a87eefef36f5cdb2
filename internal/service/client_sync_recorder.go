package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/models"
)

// syncRecorder writes the outcome of an orchestrator run into the single
// sync metadata row.
type syncRecorder struct {
	repository store.SyncMetadataRepository
	now        func() time.Time
	logger     *logger.Logger
}

// record never fails the operation it describes: a save error is logged.
// It runs detached from ctx so a cancelled run is still recorded.
func (r *syncRecorder) record(ctx context.Context, op models.Operation, blobSize int64, storageKeyHash string, opErr error) {
	meta := models.SyncMetadata{
		ID:                 models.SyncMetadataID,
		Operation:          op,
		LastAttemptAt:      r.now().UTC(),
		LastAttemptSuccess: opErr == nil,
	}
	if opErr == nil {
		meta.BlobSizeBytes = blobSize
		meta.StorageKeyHash = storageKeyHash
	} else {
		message := UserMessage(opErr)
		meta.ErrorMessage = &message
	}

	if err := r.repository.SaveSyncMetadata(context.WithoutCancel(ctx), meta); err != nil {
		r.logger.Err(err).
			Str("func", "syncRecorder.record").
			Str("operation", string(op)).
			Msg("failed to save sync metadata")
	}
}
