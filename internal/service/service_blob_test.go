package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/mock"
	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/internal/validators"
	"github.com/MKhiriev/go-backup-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testStorageKey = strings.Repeat("c3", 32)

func newTestBlobSvc(t *testing.T, ctrl *gomock.Controller, maxSize int64) (BlobService, *mock.MockBlobStorage) {
	t.Helper()
	storage := mock.NewMockBlobStorage(ctrl)
	inner := NewBlobService(storage, logger.Nop()).(*blobService)
	inner.now = func() time.Time { return fixedNow }
	return NewBlobValidationService(maxSize).Wrap(inner), storage
}

func testBlob(size int) models.StoredBlob {
	return models.StoredBlob{
		StorageKey:   testStorageKey,
		Data:         make([]byte, size),
		BackupTime:   fixedNow,
		OriginalSize: 100,
	}
}

func TestBlobService_UploadBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestBlobSvc(t, ctrl, 1024)
	blob := testBlob(64)

	stored := blob
	stored.UploadedAt = fixedNow
	storage.EXPECT().SaveBlob(gomock.Any(), blob).Return(stored, nil)

	res, err := svc.UploadBlob(context.Background(), blob)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, res.UploadedAt)
	assert.Equal(t, int64(64), res.BlobSize)
	assert.Equal(t, testStorageKey[:8], res.StorageKeyHash)
}

func TestBlobService_UploadBlob_Validation(t *testing.T) {
	tests := []struct {
		name    string
		blob    func() models.StoredBlob
		wantErr error
	}{
		{
			name:    "bad storage key",
			blob:    func() models.StoredBlob { b := testBlob(64); b.StorageKey = "short"; return b },
			wantErr: validators.ErrInvalidStorageKey,
		},
		{
			name:    "shorter than header",
			blob:    func() models.StoredBlob { return testBlob(27) },
			wantErr: validators.ErrBlobTooShort,
		},
		{
			name:    "over the limit",
			blob:    func() models.StoredBlob { return testBlob(1025) },
			wantErr: validators.ErrBlobTooLarge,
		},
		{
			name:    "missing backup time",
			blob:    func() models.StoredBlob { b := testBlob(64); b.BackupTime = time.Time{}; return b },
			wantErr: validators.ErrInvalidBackupTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, storage := newTestBlobSvc(t, ctrl, 1024)
			storage.EXPECT().SaveBlob(gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.UploadBlob(context.Background(), tt.blob())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBlobService_UploadBlob_ExactlyHeaderSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestBlobSvc(t, ctrl, 0)
	storage.EXPECT().SaveBlob(gomock.Any(), gomock.Any()).Return(models.StoredBlob{UploadedAt: fixedNow}, nil)

	_, err := svc.UploadBlob(context.Background(), testBlob(28))
	require.NoError(t, err)
}

func TestBlobService_UploadBlob_StorageUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestBlobSvc(t, ctrl, 0)
	storage.EXPECT().SaveBlob(gomock.Any(), gomock.Any()).Return(models.StoredBlob{}, store.ErrStorageUnavailable)

	_, err := svc.UploadBlob(context.Background(), testBlob(64))
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestBlobService_DownloadBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestBlobSvc(t, ctrl, 0)
	want := testBlob(64)
	storage.EXPECT().GetBlob(gomock.Any(), testStorageKey).Return(want, nil)

	got, err := svc.DownloadBlob(context.Background(), testStorageKey)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBlobService_DownloadBlob_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestBlobSvc(t, ctrl, 0)

	_, err := svc.DownloadBlob(context.Background(), "not-a-key")
	assert.ErrorIs(t, err, validators.ErrInvalidStorageKey)

	storage.EXPECT().GetBlob(gomock.Any(), testStorageKey).Return(models.StoredBlob{}, store.ErrBlobNotFound)
	_, err = svc.DownloadBlob(context.Background(), testStorageKey)
	assert.ErrorIs(t, err, store.ErrBlobNotFound)
}

func TestBlobService_DeleteExpiredBlobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestBlobSvc(t, ctrl, 0)
	storage.EXPECT().DeleteBlobsOlderThan(gomock.Any(), fixedNow.Add(-24*time.Hour)).Return(int64(3), nil)

	n, err := svc.DeleteExpiredBlobs(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestBlobService_DeleteExpiredBlobs_DisabledOrFailing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestBlobSvc(t, ctrl, 0)

	n, err := svc.DeleteExpiredBlobs(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, n)

	dbErr := errors.New("connection reset")
	storage.EXPECT().DeleteBlobsOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), dbErr)
	_, err = svc.DeleteExpiredBlobs(context.Background(), time.Hour)
	assert.ErrorIs(t, err, dbErr)
}
