package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-backup-keeper/internal/adapter"
	"github.com/MKhiriev/go-backup-keeper/internal/client"
	"github.com/MKhiriev/go-backup-keeper/internal/config"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/service"
	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/internal/tui"
	"github.com/MKhiriev/go-backup-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	log := logger.NewClientLogger("backup-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	transport, err := adapter.NewTransport(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create blob store transport")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, transport, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, storages, transport, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	for _, f := range info.Fields() {
		fmt.Printf("Build %s: %s\n", strings.ToLower(f.Label), f.Value)
	}
}
