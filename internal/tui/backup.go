// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/service"
	"github.com/MKhiriev/go-backup-keeper/internal/validators"
	"github.com/MKhiriev/go-backup-keeper/models"
)

type operationState int

const (
	stateEditing operationState = iota
	stateConfirming
	stateRunning
	stateDone
)

// BackupModel asks for a passphrase twice, runs the backup pipeline and
// shows its outcome.
type BackupModel struct {
	ctx       context.Context
	backup    service.ClientBackupService
	validator validators.Validator
	logger    *logger.Logger

	form     passphraseForm
	progress progressView
	state    operationState

	result models.BackupResult
	errMsg string
	notice string
}

func NewBackupModel(ctx context.Context, backup service.ClientBackupService, validator validators.Validator, logger *logger.Logger) *BackupModel {
	return &BackupModel{
		ctx:       ctx,
		backup:    backup,
		validator: validator,
		logger:    logger,
		form:      newPassphraseForm(true),
		progress:  newProgressView(),
	}
}

func (m *BackupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *BackupModel) busy() bool {
	return m.state == stateRunning
}

func (m *BackupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		if m.state == stateRunning {
			m.progress.event = msg.event
		}
		return m, waitForProgress(msg.ch)
	case spinner.TickMsg:
		if m.state != stateRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.progress.spinner, cmd = m.progress.spinner.Update(msg)
		return m, cmd
	case backupDoneMsg:
		m.state = stateDone
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.result = msg.result
		m.progress.event = models.ProgressEvent{Stage: models.StageUpload, Percent: 100}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.notice = "could not copy: " + msg.err.Error()
		} else {
			m.notice = "storage key hash copied to clipboard"
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.form.update(msg)
}

func (m *BackupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateRunning:
		return m, nil
	case stateDone:
		switch {
		case matches(msg, keys.copy) && m.errMsg == "":
			return m, copyToClipboard(m.result.StorageKeyHash)
		case matches(msg, keys.enter), matches(msg, keys.esc):
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		}
		return m, nil
	}

	switch {
	case matches(msg, keys.esc):
		m.reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case matches(msg, keys.enter):
		input := m.form.value()
		if err := m.validator.Validate(m.ctx, input, validators.FieldPassphrase, validators.FieldConfirmation); err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}

		m.form.reset()
		m.errMsg = ""
		m.state = stateRunning
		m.progress.reset()
		return m, tea.Batch(m.cmdBackup(input.Passphrase), m.progress.spinner.Tick)
	}

	return m, m.form.update(msg)
}

func (m *BackupModel) cmdBackup(passphrase string) tea.Cmd {
	ctx := m.ctx
	backup := m.backup

	return startOperation(ctx, func(onProgress service.ProgressFunc) tea.Msg {
		result, err := backup.CreateBackup(ctx, passphrase, onProgress)
		return backupDoneMsg{result: result, err: err}
	})
}

func (m *BackupModel) reset() {
	m.form.reset()
	m.progress.reset()
	m.state = stateEditing
	m.result = models.BackupResult{}
	m.errMsg = ""
	m.notice = ""
}

func (m *BackupModel) View() string {
	var b strings.Builder

	switch m.state {
	case stateRunning:
		b.WriteString(m.progress.View())
		return renderPage("CREATE BACKUP", b.String(), "please wait, controls are disabled")
	case stateDone:
		if m.errMsg != "" {
			b.WriteString(errorOverlayModel{message: m.errMsg}.View())
			return renderPage("CREATE BACKUP", b.String(), "enter/esc: back")
		}
		b.WriteString(successStyle.Render("Backup uploaded"))
		b.WriteString("\n\n")
		b.WriteString("Uploaded at      │ " + formatTime(m.result.UploadedAt) + "\n")
		b.WriteString("Encrypted size   │ " + formatBytes(m.result.BlobSizeBytes) + "\n")
		b.WriteString("Storage key hash │ " + m.result.StorageKeyHash)
		if m.notice != "" {
			b.WriteString("\n\n" + m.notice)
		}
		return renderPage("CREATE BACKUP", b.String(), "c: copy key hash │ enter/esc: back")
	}

	b.WriteString("The passphrase encrypts your backup. It is never stored;\n")
	b.WriteString("without it the backup cannot be restored.\n\n")
	b.WriteString(m.form.view())
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}
	return renderPage("CREATE BACKUP", b.String(), "esc: back │ tab: next field │ enter: start")
}

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
