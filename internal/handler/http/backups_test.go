package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-backup-keeper/internal/app"
	"github.com/MKhiriev/go-backup-keeper/internal/config"
	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/internal/utils"
	"github.com/MKhiriev/go-backup-keeper/internal/validators"
	"github.com/MKhiriev/go-backup-keeper/models"
)

var backupTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func newUploadRequest(body []byte) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/backups/"+testStorageKey, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set(models.HeaderBackupTimestamp, backupTime.Format(time.RFC3339Nano))
	req.Header.Set(models.HeaderOriginalSize, "4096")
	return req
}

// ─────────────────────────────────────────────
// PUT /api/backups/{storageKey}
// ─────────────────────────────────────────────

func TestUploadBackup_Success(t *testing.T) {
	h, deps := newTestHandler(t, nil, nil)
	blob := bytes.Repeat([]byte{0x5a}, 64)
	uploadedAt := backupTime.Add(time.Second)

	deps.blobs.EXPECT().
		UploadBlob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.StoredBlob) (models.UploadResult, error) {
			assert.Equal(t, testStorageKey, got.StorageKey)
			assert.Equal(t, blob, got.Data)
			assert.True(t, backupTime.Equal(got.BackupTime))
			assert.Equal(t, int64(4096), got.OriginalSize)
			return models.UploadResult{UploadedAt: uploadedAt, BlobSize: 64, StorageKeyHash: "abababab"}, nil
		})

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, newUploadRequest(blob))

	require.Equal(t, http.StatusCreated, rec.Code)

	var result models.UploadResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, int64(64), result.BlobSize)
	assert.Equal(t, "abababab", result.StorageKeyHash)
	assert.True(t, uploadedAt.Equal(result.UploadedAt))
}

func TestUploadBackup_InvalidMetadataHeaders(t *testing.T) {
	tests := []struct {
		name   string
		header string
		value  string
	}{
		{"missing timestamp", models.HeaderBackupTimestamp, ""},
		{"garbage timestamp", models.HeaderBackupTimestamp, "yesterday"},
		{"missing size", models.HeaderOriginalSize, ""},
		{"negative size", models.HeaderOriginalSize, "-1"},
		{"non numeric size", models.HeaderOriginalSize, "12kb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t, nil, nil)
			req := newUploadRequest([]byte("payload"))
			req.Header.Set(tt.header, tt.value)

			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, app.MsgInvalidUploadMetadata, decodeError(t, rec))
		})
	}
}

func TestUploadBackup_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid key", validators.ErrInvalidStorageKey, http.StatusBadRequest, app.MsgInvalidStorageKeyProvided},
		{"short blob", validators.ErrBlobTooShort, http.StatusBadRequest, app.MsgBlobTooShort},
		{"too large", validators.ErrBlobTooLarge, http.StatusRequestEntityTooLarge, app.MsgBlobTooLarge},
		{"storage down", store.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgStorageUnavailable},
		{"wrapped storage down", errors.Join(errors.New("dial tcp"), store.ErrStorageUnavailable), http.StatusServiceUnavailable, app.MsgStorageUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t, nil, nil)
			deps.blobs.EXPECT().UploadBlob(gomock.Any(), gomock.Any()).Return(models.UploadResult{}, tt.err)

			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, newUploadRequest([]byte("payload")))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
		})
	}
}

func TestUploadBackup_BodyLimit(t *testing.T) {
	cfg := &config.ServerConfig{Limits: config.ServerLimits{MaxBlobSize: 32}}

	t.Run("declared length over limit", func(t *testing.T) {
		h, _ := newTestHandler(t, cfg, nil)

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, newUploadRequest(make([]byte, 33)))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, app.MsgBlobTooLarge, decodeError(t, rec))
	})

	t.Run("unknown length over limit", func(t *testing.T) {
		h, _ := newTestHandler(t, cfg, nil)
		req := newUploadRequest(make([]byte, 64))
		req.ContentLength = -1

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("at limit", func(t *testing.T) {
		h, deps := newTestHandler(t, cfg, nil)
		deps.blobs.EXPECT().UploadBlob(gomock.Any(), gomock.Any()).Return(models.UploadResult{BlobSize: 32}, nil)

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, newUploadRequest(make([]byte, 32)))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestUploadBackup_IntegrityCheck(t *testing.T) {
	cfg := &config.ServerConfig{App: config.App{HashKey: "shared-secret"}}
	blob := []byte("encrypted-envelope-bytes-go-here")
	hasher := utils.NewHasher("shared-secret")

	tests := []struct {
		name       string
		signature  string
		wantStatus int
	}{
		{"valid signature", hasher.SumHex(blob), http.StatusCreated},
		{"missing signature", "", http.StatusBadRequest},
		{"signature of other data", hasher.SumHex([]byte("other")), http.StatusBadRequest},
		{"not hex", "zz", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t, cfg, nil)
			if tt.wantStatus == http.StatusCreated {
				deps.blobs.EXPECT().UploadBlob(gomock.Any(), gomock.Any()).Return(models.UploadResult{}, nil)
			}

			req := newUploadRequest(blob)
			if tt.signature != "" {
				req.Header.Set(models.HeaderHash, tt.signature)
			}
			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusBadRequest {
				assert.Equal(t, app.MsgIntegrityCheckFailed, decodeError(t, rec))
			}
		})
	}
}

// ─────────────────────────────────────────────
// GET /api/backups/{storageKey}
// ─────────────────────────────────────────────

func TestDownloadBackup_Success(t *testing.T) {
	cfg := &config.ServerConfig{App: config.App{HashKey: "shared-secret"}}
	h, deps := newTestHandler(t, cfg, nil)
	blob := bytes.Repeat([]byte{0x01, 0x02}, 40)

	deps.blobs.EXPECT().DownloadBlob(gomock.Any(), testStorageKey).Return(models.StoredBlob{
		StorageKey:   testStorageKey,
		Data:         blob,
		BackupTime:   backupTime,
		OriginalSize: 512,
	}, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/backups/"+testStorageKey, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, blob, rec.Body.Bytes())
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, strconv.Itoa(len(blob)), rec.Header().Get("Content-Length"))
	assert.Equal(t, backupTime.Format(time.RFC3339Nano), rec.Header().Get(models.HeaderBackupTimestamp))
	assert.Equal(t, "512", rec.Header().Get(models.HeaderOriginalSize))
	assert.True(t, utils.NewHasher("shared-secret").Verify(blob, rec.Header().Get(models.HeaderHash)))
}

func TestDownloadBackup_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", store.ErrBlobNotFound, http.StatusNotFound, app.MsgBlobNotFound},
		{"invalid key", validators.ErrInvalidStorageKey, http.StatusBadRequest, app.MsgInvalidStorageKeyProvided},
		{"storage down", store.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgStorageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t, nil, nil)
			deps.blobs.EXPECT().DownloadBlob(gomock.Any(), "nope").Return(models.StoredBlob{}, tt.err)

			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/backups/nope", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// rate limiting
// ─────────────────────────────────────────────

func TestWithRateLimit_Rejects(t *testing.T) {
	limiter := &stubLimiter{allowed: false, retryAfter: 90*time.Second + 200*time.Millisecond}
	h, _ := newTestHandler(t, nil, limiter)

	req := httptest.NewRequest(http.MethodGet, "/api/backups/"+testStorageKey, nil)
	req.RemoteAddr = "198.51.100.7:52311"
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "91", rec.Header().Get(models.HeaderRetryAfter))
	assert.Equal(t, app.MsgTooManyRequests, decodeError(t, rec))
	assert.Equal(t, []string{"198.51.100.7"}, limiter.keys)
}

func TestWithRateLimit_FailsOpen(t *testing.T) {
	limiter := &stubLimiter{err: errors.New("redis: connection refused")}
	h, deps := newTestHandler(t, nil, limiter)
	deps.blobs.EXPECT().DownloadBlob(gomock.Any(), testStorageKey).Return(models.StoredBlob{Data: []byte("x")}, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/backups/"+testStorageKey, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithRateLimit_VersionIsNotLimited(t *testing.T) {
	limiter := &stubLimiter{allowed: false, retryAfter: time.Minute}
	h, deps := newTestHandler(t, nil, limiter)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v")
	deps.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.AppBuildInfo{})

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, limiter.keys)
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, retryAfterSeconds(0))
	assert.Equal(t, 1, retryAfterSeconds(0.3))
	assert.Equal(t, 60, retryAfterSeconds(60))
	assert.Equal(t, 61, retryAfterSeconds(60.01))
}
