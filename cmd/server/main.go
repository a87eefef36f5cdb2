package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-backup-keeper/internal/config"
	"github.com/MKhiriev/go-backup-keeper/internal/handler"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-backup-keeper/internal/server"
	"github.com/MKhiriev/go-backup-keeper/internal/service"
	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/internal/workers"
	"github.com/MKhiriev/go-backup-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	ctx := context.Background()
	log := logger.NewLogger("backup-server")

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Int64("max_blob_size", cfg.Limits.MaxBlobSize).
		Int("rate_requests", cfg.Limits.RateRequests).
		Dur("blob_ttl", cfg.Workers.BlobTTL).
		Msg("received configs")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	limiter, err := ratelimit.New(ctx, cfg.Limits, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating rate limiter")
	}
	defer limiter.Close()

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, limiter, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Workers, log), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	for _, f := range info.Fields() {
		fmt.Printf("Build %s: %s\n", strings.ToLower(f.Label), f.Value)
	}
}
