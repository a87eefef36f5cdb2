package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-backup-keeper/internal/crypto"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/models"
)

const (
	blobFileExt = ".blob"
	metaFileExt = ".meta.json"
)

// blobMeta is the sidecar written next to every blob file.
type blobMeta struct {
	BackupTime   time.Time `json:"backup_time"`
	OriginalSize int64     `json:"original_size"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// fileBlobStorage is the file system implementation of [BlobStorage], used
// when the server runs without PostgreSQL. Each storage key maps to
// <dir>/<key>.blob plus a <key>.meta.json sidecar.
type fileBlobStorage struct {
	dir    string
	mu     sync.RWMutex
	now    func() time.Time
	logger *logger.Logger
}

// NewFileBlobStorage creates dir if needed and returns a [BlobStorage]
// rooted at it.
func NewFileBlobStorage(dir string, logger *logger.Logger) (BlobStorage, error) {
	if dir == "" {
		return nil, errors.New("blob directory is empty")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create blob directory: %w", err)
	}

	return &fileBlobStorage{
		dir:    dir,
		now:    time.Now,
		logger: logger,
	}, nil
}

func (f *fileBlobStorage) SaveBlob(ctx context.Context, blob models.StoredBlob) (models.StoredBlob, error) {
	log := logger.FromContext(ctx)

	if err := crypto.ValidateStorageKey(blob.StorageKey); err != nil {
		return models.StoredBlob{}, err
	}

	blob.UploadedAt = f.now().UTC()
	meta, err := json.Marshal(blobMeta{
		BackupTime:   blob.BackupTime,
		OriginalSize: blob.OriginalSize,
		UploadedAt:   blob.UploadedAt,
	})
	if err != nil {
		return models.StoredBlob{}, fmt.Errorf("marshal blob meta: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err = writeFileAtomic(f.blobPath(blob.StorageKey), blob.Data); err != nil {
		log.Err(err).
			Str("func", "fileBlobStorage.SaveBlob").
			Str("storage_key_hash", crypto.StorageKeyHash(blob.StorageKey)).
			Msg("failed to write blob")
		return models.StoredBlob{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if err = writeFileAtomic(f.metaPath(blob.StorageKey), meta); err != nil {
		log.Err(err).Str("func", "fileBlobStorage.SaveBlob").Msg("failed to write blob meta")
		return models.StoredBlob{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return blob, nil
}

func (f *fileBlobStorage) GetBlob(ctx context.Context, storageKey string) (models.StoredBlob, error) {
	if err := crypto.ValidateStorageKey(storageKey); err != nil {
		return models.StoredBlob{}, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.blobPath(storageKey))
	if errors.Is(err, fs.ErrNotExist) {
		return models.StoredBlob{}, ErrBlobNotFound
	}
	if err != nil {
		return models.StoredBlob{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	meta, err := f.readMeta(storageKey)
	if err != nil {
		return models.StoredBlob{}, err
	}

	return models.StoredBlob{
		StorageKey:   storageKey,
		Data:         data,
		BackupTime:   meta.BackupTime,
		OriginalSize: meta.OriginalSize,
		UploadedAt:   meta.UploadedAt,
	}, nil
}

func (f *fileBlobStorage) DeleteBlobsOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	var deleted int64
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, metaFileExt) {
			continue
		}
		key := strings.TrimSuffix(name, metaFileExt)

		meta, err := f.readMeta(key)
		if err != nil {
			log.Warn().Err(err).Str("func", "fileBlobStorage.DeleteBlobsOlderThan").Str("file", name).Msg("skipping unreadable meta")
			continue
		}
		if !meta.UploadedAt.Before(cutoff) {
			continue
		}

		if err = os.Remove(f.blobPath(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return deleted, fmt.Errorf("remove blob: %w", err)
		}
		if err = os.Remove(f.metaPath(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return deleted, fmt.Errorf("remove blob meta: %w", err)
		}
		deleted++
	}

	return deleted, nil
}

func (f *fileBlobStorage) Close() error {
	return nil
}

func (f *fileBlobStorage) readMeta(storageKey string) (blobMeta, error) {
	var meta blobMeta
	raw, err := os.ReadFile(f.metaPath(storageKey))
	if errors.Is(err, fs.ErrNotExist) {
		return meta, ErrBlobNotFound
	}
	if err != nil {
		return meta, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if err = json.Unmarshal(raw, &meta); err != nil {
		return meta, fmt.Errorf("decode blob meta: %w", err)
	}
	return meta, nil
}

func (f *fileBlobStorage) blobPath(storageKey string) string {
	return filepath.Join(f.dir, storageKey+blobFileExt)
}

func (f *fileBlobStorage) metaPath(storageKey string) string {
	return filepath.Join(f.dir, storageKey+metaFileExt)
}

// writeFileAtomic writes data to a temp file in the same directory and
// renames it over path, so readers never see a half-written file.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
