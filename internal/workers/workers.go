package workers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-backup-keeper/internal/config"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the server's workers. The janitor is left out when the
// blob TTL is zero.
func NewWorkers(services *service.Services, cfg config.ServerWorkers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.BlobTTL > 0 {
		w.workers = append(w.workers, NewBlobJanitor(services.BlobService, cfg.BlobTTL, cfg.JanitorInterval, logger))
	} else {
		logger.Info().Msg("blob janitor disabled: no TTL configured")
	}
	return w
}

// Run starts every worker and blocks until all of them return. The first
// error cancels the rest.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
