// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable message strings shared by the
// client services, the TUI and the blob store handlers.
//
// Msg* constants are shown to the user (client) or written into response
// bodies (server). Keeping them in one place keeps the wording consistent
// between the error mapping and the tests that assert on it.
package app

// Client-side messages produced by service.UserMessage.
const (
	// MsgEmptyPassphrase is shown when the passphrase field was left empty.
	MsgEmptyPassphrase = "passphrase must not be empty"

	// MsgPassphraseTooShort is shown when the passphrase fails the length
	// policy.
	MsgPassphraseTooShort = "passphrase must be at least 12 characters long"

	// MsgPassphraseMismatch is shown when the confirmation differs from the
	// passphrase on backup creation.
	MsgPassphraseMismatch = "passphrases do not match"

	// MsgNothingToBackup is shown when the local database produced no data.
	MsgNothingToBackup = "there is no data to back up"

	// MsgInvalidStorageKey is shown when a derived storage key is rejected.
	MsgInvalidStorageKey = "invalid storage key"

	MsgBackupCorrupted = "backup file is corrupted"

	MsgWrongPassphrase = "wrong passphrase"

	// MsgBackupIncompatible covers both an unknown envelope version and a
	// payload that lacks one of the critical tables.
	MsgBackupIncompatible = "backup is corrupted or incompatible with this version of the app"

	MsgBackupNotFound = "no backup found for this passphrase"

	// MsgRateLimitedFormat takes the wait time in whole minutes.
	MsgRateLimitedFormat = "too many requests, try again in %d minutes"

	MsgServiceUnavailable = "backup service is unavailable, try again shortly"

	// MsgQuotaExceeded is not retryable without reducing the data size.
	MsgQuotaExceeded = "backup is larger than the storage limit allows; remove some data and try again"

	// MsgNetworkErrorFormat takes the underlying error text.
	MsgNetworkErrorFormat = "could not reach the backup service: %s"

	MsgRestoreFailedRolledBack = "restore failed, but your data was not changed"

	// MsgRestoreFailed is the unrecovered case: the restore and the rollback
	// both failed.
	MsgRestoreFailed = "restore failed and your data could not be recovered automatically; re-apply the newest safety backup from the Status screen"

	MsgSafetyBackupNotFound = "safety backup not found"

	MsgLocalStorageFailed = "could not access local data"

	MsgOperationCancelled = "operation was cancelled"

	MsgUnexpectedError = "unexpected error"
)

// Server-side messages written into ErrorResponse bodies.
const (
	MsgInvalidStorageKeyProvided = "invalid storage key"

	MsgInvalidUploadMetadata = "invalid upload metadata"

	MsgBlobTooShort = "blob is shorter than the envelope header"

	MsgBlobTooLarge = "blob exceeds the maximum allowed size"

	MsgIntegrityCheckFailed = "integrity check failed"

	MsgBlobNotFound = "blob not found"

	MsgTooManyRequests = "too many requests"

	MsgStorageUnavailable = "storage temporarily unavailable"

	MsgInternalServerError = "internal server error"
)
