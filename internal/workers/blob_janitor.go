// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/metrics"
	"github.com/MKhiriev/go-backup-keeper/internal/service"
)

const defaultJanitorInterval = time.Hour

// BlobJanitor periodically deletes blobs that were uploaded more than ttl
// ago. Sweep failures are logged and retried on the next tick.
type BlobJanitor struct {
	blobs    service.BlobService
	ttl      time.Duration
	interval time.Duration
	logger   *logger.Logger
}

func NewBlobJanitor(blobs service.BlobService, ttl, interval time.Duration, logger *logger.Logger) *BlobJanitor {
	if interval <= 0 {
		interval = defaultJanitorInterval
	}
	return &BlobJanitor{
		blobs:    blobs,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once immediately and then every interval until ctx is done.
func (j *BlobJanitor) Run(ctx context.Context) error {
	if j.ttl <= 0 {
		return nil
	}

	j.logger.Info().
		Dur("ttl", j.ttl).
		Dur("interval", j.interval).
		Msg("blob janitor started")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		j.sweep(ctx)

		select {
		case <-ctx.Done():
			j.logger.Info().Msg("blob janitor stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (j *BlobJanitor) sweep(ctx context.Context) {
	deleted, err := j.blobs.DeleteExpiredBlobs(ctx, j.ttl)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Err(err).Str("func", "*BlobJanitor.sweep").Msg("failed to delete expired blobs")
		}
		return
	}

	if deleted > 0 {
		metrics.ExpiredBlobsDeleted.Add(float64(deleted))
		j.logger.Info().Int64("deleted", deleted).Msg("expired blobs deleted")
	}
}
