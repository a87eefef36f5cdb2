// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for request headers that fail to parse before the request
// reaches the service layer.
var (
	// ErrInvalidBackupTimestamp is returned when X-Backup-Timestamp is
	// missing or not RFC 3339.
	ErrInvalidBackupTimestamp = errors.New("invalid `X-Backup-Timestamp` header")

	// ErrInvalidOriginalSize is returned when X-Original-Size is missing or
	// not a non-negative integer.
	ErrInvalidOriginalSize = errors.New("invalid `X-Original-Size` header")
)
