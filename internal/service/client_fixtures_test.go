package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MKhiriev/go-backup-keeper/internal/adapter"
	"github.com/MKhiriev/go-backup-keeper/internal/config"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memTransport is an in-memory blob store standing in for the server.
type memTransport struct {
	mu       sync.Mutex
	blobs    map[string][]byte
	lastMeta models.UploadMetadata

	uploadErr   error
	downloadErr error
}

func newMemTransport() *memTransport {
	return &memTransport{blobs: make(map[string][]byte)}
}

func (m *memTransport) Upload(_ context.Context, blob []byte, storageKey string, meta models.UploadMetadata) (models.UploadResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.uploadErr != nil {
		return models.UploadResult{}, m.uploadErr
	}
	m.blobs[storageKey] = append([]byte(nil), blob...)
	m.lastMeta = meta
	return models.UploadResult{UploadedAt: meta.Timestamp, BlobSize: int64(len(blob))}, nil
}

func (m *memTransport) Download(_ context.Context, storageKey string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.downloadErr != nil {
		return nil, m.downloadErr
	}
	blob, ok := m.blobs[storageKey]
	if !ok {
		return nil, adapter.ErrBlobNotFound
	}
	return append([]byte(nil), blob...), nil
}

func (m *memTransport) Close() error { return nil }

func newTestClientStorages(t *testing.T) *store.ClientStorages {
	t.Helper()

	dir := t.TempDir()
	storages, err := store.NewClientStorages(context.Background(), config.ClientStorage{
		DB:                    config.ClientDB{DSN: filepath.Join(dir, "local.db")},
		SafetyBackupPath:      filepath.Join(dir, "safety.bolt"),
		SafetyBackupRetention: 3,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

func aliceTables() models.TableSet {
	return models.TableSet{
		"users": {
			{"id": int64(1), "name": "Alice", "birth_date": "1990-01-01", "created_at": "2026-01-01T00:00:00Z"},
		},
		"symptoms": {
			{"id": int64(1), "user_id": int64(1), "name": "headache", "severity": int64(4), "noted_at": "2026-01-02T08:00:00Z", "notes": nil},
		},
		"medications": {},
	}
}

func bobTables() models.TableSet {
	return models.TableSet{
		"users": {
			{"id": int64(7), "name": "Bob", "birth_date": nil, "created_at": "2026-03-01T00:00:00Z"},
		},
		"symptoms": {},
		"medications": {
			{"id": int64(3), "user_id": int64(7), "name": "ibuprofen", "dosage": "200mg", "taken_at": "2026-03-02T09:00:00Z"},
		},
	}
}

func seedTables(t *testing.T, local LocalStore, tables models.TableSet) {
	t.Helper()
	require.NoError(t, local.RestoreTransaction(context.Background(), tables))
}

func exportTables(t *testing.T, local LocalStore) models.TableSet {
	t.Helper()
	tables, err := local.ExportAllTables(context.Background())
	require.NoError(t, err)
	return tables
}

// progressRecorder collects events so tests can inspect the sequence.
type progressRecorder struct {
	events []models.ProgressEvent
}

func (r *progressRecorder) record(ev models.ProgressEvent) {
	r.events = append(r.events, ev)
}

func assertMonotonic(t *testing.T, events []models.ProgressEvent) {
	t.Helper()
	for i := 1; i < len(events); i++ {
		assert.GreaterOrEqual(t, events[i].Percent, events[i-1].Percent,
			"progress went backwards at event %d: %+v -> %+v", i, events[i-1], events[i])
	}
	for _, ev := range events {
		assert.GreaterOrEqual(t, ev.Percent, 0)
		assert.LessOrEqual(t, ev.Percent, 100)
	}
}

func stagesOf(events []models.ProgressEvent) []models.Stage {
	var stages []models.Stage
	for _, ev := range events {
		if len(stages) == 0 || stages[len(stages)-1] != ev.Stage {
			stages = append(stages, ev.Stage)
		}
	}
	return stages
}
