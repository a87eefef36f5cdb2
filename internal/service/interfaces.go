package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-backup-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=servicemock/service_mock.go -package=servicemock

// BlobService is the server side of the backup transport: it accepts and
// hands out opaque encrypted blobs keyed by storage key.
type BlobService interface {
	// UploadBlob stores blob under blob.StorageKey, replacing any earlier
	// upload, and reports what was stored.
	UploadBlob(ctx context.Context, blob models.StoredBlob) (models.UploadResult, error)
	// DownloadBlob returns the blob stored under storageKey.
	DownloadBlob(ctx context.Context, storageKey string) (models.StoredBlob, error)
	// DeleteExpiredBlobs removes blobs uploaded more than ttl ago.
	DeleteExpiredBlobs(ctx context.Context, ttl time.Duration) (int64, error)
}

// AppInfoService exposes what the running binary is.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// BlobServiceWrapper defines middleware composition for BlobService.
// Implementations wrap an existing BlobService to add behavior such as
// validation.
type BlobServiceWrapper interface {
	Wrap(BlobService) BlobService
}
