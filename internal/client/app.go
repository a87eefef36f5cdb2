package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-backup-keeper/internal/adapter"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/internal/tui"
)

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	ui        UI
	storages  *store.ClientStorages
	transport adapter.Transport
	logger    *logger.Logger
}

// NewApp takes ownership of storages and transport: both are closed when
// Run returns.
func NewApp(ui UI, storages *store.ClientStorages, transport adapter.Transport, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}
	return &App{ui: ui, storages: storages, transport: transport, logger: logger}, nil
}

func (a *App) Run(ctx context.Context) error {
	defer a.close()

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client stopped by user")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

func (a *App) close() {
	if a.transport != nil {
		if err := a.transport.Close(); err != nil {
			a.logger.Err(err).Str("func", "*App.close").Msg("failed to close transport")
		}
	}
	if a.storages != nil {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "*App.close").Msg("failed to close local storages")
		}
	}
}
