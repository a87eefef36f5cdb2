package service

import (
	"github.com/MKhiriev/go-backup-keeper/internal/config"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/models"
)

type Services struct {
	BlobService    BlobService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	blobService := NewBlobValidationService(cfg.Limits.MaxBlobSize).Wrap(NewBlobService(storages.BlobStorage, logger))

	return &Services{
		BlobService:    blobService,
		AppInfoService: appInfoService,
	}, nil
}
