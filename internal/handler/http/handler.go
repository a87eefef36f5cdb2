package http

import (
	"github.com/MKhiriev/go-backup-keeper/internal/config"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-backup-keeper/internal/service"
	"github.com/MKhiriev/go-backup-keeper/internal/utils"
)

type Handler struct {
	services *service.Services
	limiter  ratelimit.Limiter
	hasher   *utils.Hasher

	// maxBlobSize caps request bodies; zero means no cap.
	maxBlobSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter ratelimit.Limiter, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	if limiter == nil {
		limiter = ratelimit.Unlimited{}
	}
	return &Handler{
		services:    services,
		limiter:     limiter,
		hasher:      utils.NewHasher(cfg.App.HashKey),
		maxBlobSize: cfg.Limits.MaxBlobSize,
		logger:      logger,
	}
}
