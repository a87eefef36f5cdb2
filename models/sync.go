// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncMetadataID is the id of the only sync metadata row.
const SyncMetadataID = "primary"

// Operation names the pipeline that produced a sync metadata record.
type Operation string

const (
	OperationBackup  Operation = "backup"
	OperationRestore Operation = "restore"

	// OperationSafetyRestore re-applies a retained pre-restore snapshot.
	OperationSafetyRestore Operation = "safety_restore"
)

// SyncMetadata records the outcome of the most recent backup or restore
// attempt. It is a status cache for display, not an audit trail: every
// attempt overwrites the previous one.
type SyncMetadata struct {
	ID                 string    `json:"id"`
	Operation          Operation `json:"operation"`
	LastAttemptAt      time.Time `json:"last_attempt_at"`
	LastAttemptSuccess bool      `json:"last_attempt_success"`
	// BlobSizeBytes is zero for a failed attempt.
	BlobSizeBytes int64 `json:"blob_size_bytes"`
	// StorageKeyHash is the first 8 characters of the storage key, empty for
	// a failed attempt.
	StorageKeyHash string  `json:"storage_key_hash"`
	ErrorMessage   *string `json:"error_message,omitempty"`
}
