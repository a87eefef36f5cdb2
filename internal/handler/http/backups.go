// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-backup-keeper/internal/app"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/metrics"
	"github.com/MKhiriev/go-backup-keeper/internal/utils"
	"github.com/MKhiriev/go-backup-keeper/models"
)

func (h *Handler) uploadBackup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	storageKey := chi.URLParam(r, "storageKey")

	blob, err := parseUploadHeaders(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	blob.StorageKey = storageKey
	blob.Data, err = io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteError(w, app.MsgBlobTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Str("func", "*Handler.uploadBackup").Msg("failed to read request body")
		utils.WriteError(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result, err := h.services.BlobService.UploadBlob(ctx, blob)
	metrics.BlobOperations.WithLabelValues("upload", metrics.Result(err)).Inc()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	metrics.BlobSizeBytes.Observe(float64(result.BlobSize))

	log.Info().
		Str("storage_key_hash", result.StorageKeyHash).
		Int64("blob_size", result.BlobSize).
		Msg("backup stored")

	utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) downloadBackup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storageKey := chi.URLParam(r, "storageKey")

	blob, err := h.services.BlobService.DownloadBlob(ctx, storageKey)
	metrics.BlobOperations.WithLabelValues("download", metrics.Result(err)).Inc()
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(blob.Data)))
	if !blob.BackupTime.IsZero() {
		w.Header().Set(models.HeaderBackupTimestamp, blob.BackupTime.UTC().Format(time.RFC3339Nano))
	}
	w.Header().Set(models.HeaderOriginalSize, strconv.FormatInt(blob.OriginalSize, 10))
	if signature := h.hasher.SumHex(blob.Data); signature != "" {
		w.Header().Set(models.HeaderHash, signature)
	}
	w.WriteHeader(http.StatusOK)
	w.Write(blob.Data)
}

func parseUploadHeaders(r *http.Request) (models.StoredBlob, error) {
	var blob models.StoredBlob

	backupTime, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(r.Header.Get(models.HeaderBackupTimestamp)))
	if err != nil {
		return blob, fmt.Errorf("%w: %w", ErrInvalidBackupTimestamp, err)
	}
	blob.BackupTime = backupTime.UTC()

	originalSize, err := strconv.ParseInt(strings.TrimSpace(r.Header.Get(models.HeaderOriginalSize)), 10, 64)
	if err != nil || originalSize < 0 {
		return blob, fmt.Errorf("%w: %q", ErrInvalidOriginalSize, r.Header.Get(models.HeaderOriginalSize))
	}
	blob.OriginalSize = originalSize

	return blob, nil
}

// writeError answers with the status and message mapped from err. Server
// side failures are logged, client mistakes only at debug level.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	reply := replyFromError(err)

	if reply.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", reply.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", reply.status).Msg("request rejected")
	}

	utils.WriteError(w, reply.message, reply.status)
}
