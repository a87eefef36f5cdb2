// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transports that move encrypted
// blobs to and from the blob store.
//
// The primary abstraction is [Transport], which decouples the backup and
// restore services from the protocol. Two implementations ship with the
// package: HTTP/REST over resty ([NewHTTPTransport]) and gRPC with a JSON
// codec ([NewGRPCTransport]). [NewTransport] picks one from configuration.
//
// Both implementations report failures through the same sentinel values
// defined in errors.go, so callers can use [errors.Is] regardless of the
// protocol in use.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-backup-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport stores and fetches opaque blobs by storage key. Implementations
// never inspect the blob.
type Transport interface {
	// Upload stores blob under storageKey, replacing any previous blob.
	// Returns [ErrQuotaExceeded], a [*RateLimitError], [ErrServiceUnavailable],
	// [ErrMalformedRequest] or [ErrNetwork] on failure.
	Upload(ctx context.Context, blob []byte, storageKey string, meta models.UploadMetadata) (models.UploadResult, error)

	// Download returns the blob stored under storageKey, or [ErrBlobNotFound].
	Download(ctx context.Context, storageKey string) ([]byte, error)

	// Close releases connections held by the transport.
	Close() error
}
