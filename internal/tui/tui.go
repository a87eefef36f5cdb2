// Package tui is the terminal interface of the backup client.
//
// A RootModel routes between the menu, the backup and restore screens and
// the status screen. Backup and restore run as Bubble Tea commands off the
// UI goroutine and stream their progress events back as messages.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/service"
	"github.com/MKhiriev/go-backup-keeper/models"
)

var ErrUserQuit = errors.New("user quit the program")

const (
	pageMenu    = "menu"
	pageBackup  = "backup"
	pageRestore = "restore"
	pageStatus  = "status"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: client services are required")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the menu and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.pages(ctx), pageMenu, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageMenu:    NewMenuModel(),
		pageBackup:  NewBackupModel(ctx, t.services.BackupService, t.services.PassphraseValidator, t.logger),
		pageRestore: NewRestoreModel(ctx, t.services.RestoreService, t.services.PassphraseValidator, t.logger),
		pageStatus:  NewStatusModel(ctx, t.services.StatusService, t.services.RestoreService),
	}
}
