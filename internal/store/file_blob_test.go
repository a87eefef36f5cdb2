package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-backup-keeper/internal/crypto"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/models"
)

func newTestFileBlobStorage(t *testing.T) (*fileBlobStorage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "blobs")
	s, err := NewFileBlobStorage(dir, logger.Nop())
	require.NoError(t, err)
	return s.(*fileBlobStorage), dir
}

func TestFileBlobStorage_SaveAndGet(t *testing.T) {
	s, dir := newTestFileBlobStorage(t)
	ctx := context.Background()
	uploadedAt := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return uploadedAt }

	blob := models.StoredBlob{
		StorageKey:   testStorageKey,
		Data:         []byte{0x01, 0x02, 0x03},
		BackupTime:   uploadedAt.Add(-time.Minute),
		OriginalSize: 42,
	}

	saved, err := s.SaveBlob(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, uploadedAt, saved.UploadedAt)

	got, err := s.GetBlob(ctx, testStorageKey)
	require.NoError(t, err)
	assert.Equal(t, blob.Data, got.Data)
	assert.Equal(t, int64(42), got.OriginalSize)
	assert.True(t, got.BackupTime.Equal(blob.BackupTime))
	assert.True(t, got.UploadedAt.Equal(uploadedAt))

	info, err := os.Stat(filepath.Join(dir, testStorageKey+blobFileExt))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileBlobStorage_Overwrite(t *testing.T) {
	s, _ := newTestFileBlobStorage(t)
	ctx := context.Background()

	_, err := s.SaveBlob(ctx, models.StoredBlob{StorageKey: testStorageKey, Data: []byte("first")})
	require.NoError(t, err)
	_, err = s.SaveBlob(ctx, models.StoredBlob{StorageKey: testStorageKey, Data: []byte("second")})
	require.NoError(t, err)

	got, err := s.GetBlob(ctx, testStorageKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got.Data)
}

func TestFileBlobStorage_NotFound(t *testing.T) {
	s, _ := newTestFileBlobStorage(t)

	_, err := s.GetBlob(context.Background(), strings.Repeat("0", 64))
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestFileBlobStorage_RejectsInvalidKey(t *testing.T) {
	s, _ := newTestFileBlobStorage(t)
	ctx := context.Background()

	_, err := s.SaveBlob(ctx, models.StoredBlob{StorageKey: "../../etc/passwd", Data: []byte("x")})
	assert.ErrorIs(t, err, crypto.ErrInvalidStorageKeyLength)

	_, err = s.GetBlob(ctx, strings.Repeat("Z", 64))
	assert.ErrorIs(t, err, crypto.ErrInvalidStorageKey)
}

func TestFileBlobStorage_DeleteBlobsOlderThan(t *testing.T) {
	s, dir := newTestFileBlobStorage(t)
	ctx := context.Background()
	oldKey := strings.Repeat("1", 64)
	newKey := strings.Repeat("2", 64)
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	s.now = func() time.Time { return base }
	_, err := s.SaveBlob(ctx, models.StoredBlob{StorageKey: oldKey, Data: []byte("old")})
	require.NoError(t, err)

	s.now = func() time.Time { return base.Add(48 * time.Hour) }
	_, err = s.SaveBlob(ctx, models.StoredBlob{StorageKey: newKey, Data: []byte("new")})
	require.NoError(t, err)

	deleted, err := s.DeleteBlobsOlderThan(ctx, base.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = s.GetBlob(ctx, oldKey)
	assert.ErrorIs(t, err, ErrBlobNotFound)
	_, err = s.GetBlob(ctx, newKey)
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, oldKey+metaFileExt))
	assert.True(t, os.IsNotExist(err))
}
