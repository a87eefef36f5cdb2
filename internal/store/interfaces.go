package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-backup-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

// BlobStorage keeps encrypted backup blobs on the server, one per storage
// key. Saving under an existing key replaces the previous blob.
type BlobStorage interface {
	// SaveBlob stores blob and returns it with UploadedAt filled in.
	SaveBlob(ctx context.Context, blob models.StoredBlob) (models.StoredBlob, error)
	// GetBlob returns ErrBlobNotFound when nothing is stored under key.
	GetBlob(ctx context.Context, storageKey string) (models.StoredBlob, error)
	// DeleteBlobsOlderThan removes blobs uploaded before cutoff and reports
	// how many were removed.
	DeleteBlobsOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	Close() error
}
