// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HTTP headers of the blob store upload endpoint.
const (
	HeaderBackupTimestamp = "X-Backup-Timestamp"
	HeaderOriginalSize    = "X-Original-Size"
	HeaderRetryAfter      = "Retry-After"

	// HeaderHash carries the hex HMAC-SHA256 of the request body when a hash
	// key is configured on both sides.
	HeaderHash = "HashSHA256"
)

// UploadMetadata travels alongside a blob. The server stores it verbatim and
// never sees anything else about the plaintext.
type UploadMetadata struct {
	Timestamp    time.Time `json:"timestamp"`
	OriginalSize int64     `json:"original_size"`
}

// UploadResult is what the blob store acknowledges after storing a blob.
type UploadResult struct {
	UploadedAt     time.Time `json:"uploaded_at"`
	BlobSize       int64     `json:"blob_size"`
	StorageKeyHash string    `json:"storage_key_hash"`
}

// StoredBlob is a blob as kept by the server.
type StoredBlob struct {
	StorageKey   string
	Data         []byte
	BackupTime   time.Time
	OriginalSize int64
	UploadedAt   time.Time
}

// ErrorResponse is the JSON body of every non-2xx reply of the blob store.
type ErrorResponse struct {
	Error string `json:"error"`
}
