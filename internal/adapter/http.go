package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-backup-keeper/internal/config"
	"github.com/MKhiriev/go-backup-keeper/internal/crypto"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/utils"
	"github.com/MKhiriev/go-backup-keeper/models"
)

const backupsPath = "/api/backups/"

type httpTransport struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPTransport constructs the HTTP/REST implementation of [Transport].
// It normalises the base URL from adapterCfg.HTTPAddress and signs uploads
// with appCfg.HashKey when one is set.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPTransport(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (Transport, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpTransport{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher: utils.NewHasher(appCfg.HashKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [Transport]. It PUTs the raw blob to
// /api/backups/{storageKey} with the metadata in headers and decodes the
// JSON acknowledgement.
func (h *httpTransport) Upload(ctx context.Context, blob []byte, storageKey string, meta models.UploadMetadata) (models.UploadResult, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader(models.HeaderBackupTimestamp, meta.Timestamp.UTC().Format(time.RFC3339Nano)).
		SetHeader(models.HeaderOriginalSize, strconv.FormatInt(meta.OriginalSize, 10)).
		SetBody(blob)
	if signature := h.hasher.SumHex(blob); signature != "" {
		req.SetHeader(models.HeaderHash, signature)
	}

	resp, err := req.Put(backupsPath + url.PathEscape(storageKey))
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpTransport.Upload").
			Str("storage_key_hash", crypto.StorageKeyHash(storageKey)).
			Msg("upload request failed")
		return models.UploadResult{}, wrapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResult{}, err
	}

	// a 2xx means the blob is stored, so an unreadable ack is not a failure
	var result models.UploadResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		h.logger.Warn().Err(err).
			Str("func", "httpTransport.Upload").
			Str("storage_key_hash", crypto.StorageKeyHash(storageKey)).
			Int("status", resp.StatusCode()).
			Msg("blob stored but acknowledgement is unreadable")
		return models.UploadResult{
			BlobSize:       int64(len(blob)),
			StorageKeyHash: crypto.StorageKeyHash(storageKey),
		}, nil
	}

	return result, nil
}

// Download implements [Transport].
func (h *httpTransport) Download(ctx context.Context, storageKey string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/octet-stream").
		Get(backupsPath + url.PathEscape(storageKey))
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpTransport.Download").
			Str("storage_key_hash", crypto.StorageKeyHash(storageKey)).
			Msg("download request failed")
		return nil, wrapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpTransport) Close() error {
	h.client.GetClient().CloseIdleConnections()
	return nil
}
