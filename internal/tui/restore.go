package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/service"
	"github.com/MKhiriev/go-backup-keeper/internal/validators"
	"github.com/MKhiriev/go-backup-keeper/models"
)

// RestoreModel asks for the passphrase, requires an explicit overwrite
// confirmation and then runs the restore pipeline.
type RestoreModel struct {
	ctx       context.Context
	restore   service.ClientRestoreService
	validator validators.Validator
	logger    *logger.Logger

	form     passphraseForm
	progress progressView
	state    operationState

	result models.RestoreResult
	errMsg string
}

func NewRestoreModel(ctx context.Context, restore service.ClientRestoreService, validator validators.Validator, logger *logger.Logger) *RestoreModel {
	return &RestoreModel{
		ctx:       ctx,
		restore:   restore,
		validator: validator,
		logger:    logger,
		form:      newPassphraseForm(false),
		progress:  newProgressView(),
	}
}

func (m *RestoreModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RestoreModel) busy() bool {
	return m.state == stateRunning
}

func (m *RestoreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	case restoreDoneMsg:
		m.state = stateDone
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.result = msg.result
		m.progress.event = models.ProgressEvent{Stage: models.StageRestore, Percent: 100}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.form.update(msg)
}

func (m *RestoreModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateRunning:
		return m, nil
	case stateDone:
		if matches(msg, keys.enter) || matches(msg, keys.esc) {
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		}
		return m, nil
	case stateConfirming:
		switch {
		case matches(msg, keys.yes):
			passphrase := m.form.value().Passphrase
			m.form.reset()
			m.state = stateRunning
			m.progress.reset()
			return m, tea.Batch(m.cmdRestore(passphrase), m.progress.spinner.Tick)
		case matches(msg, keys.no):
			m.state = stateEditing
		}
		return m, nil
	}

	switch {
	case matches(msg, keys.esc):
		m.reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case matches(msg, keys.enter):
		if err := m.validator.Validate(m.ctx, m.form.value(), validators.FieldPassphrase); err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.errMsg = ""
		m.state = stateConfirming
		return m, nil
	}

	return m, m.form.update(msg)
}

func (m *RestoreModel) cmdRestore(passphrase string) tea.Cmd {
	ctx := m.ctx
	restore := m.restore

	return startOperation(ctx, func(onProgress service.ProgressFunc) tea.Msg {
		result, err := restore.RestoreBackup(ctx, passphrase, onProgress)
		return restoreDoneMsg{result: result, err: err}
	})
}

func (m *RestoreModel) reset() {
	m.form.reset()
	m.progress.reset()
	m.state = stateEditing
	m.result = models.RestoreResult{}
	m.errMsg = ""
}

func (m *RestoreModel) View() string {
	var b strings.Builder

	switch m.state {
	case stateConfirming:
		b.WriteString(confirmOverwrite{}.View())
		return renderPage("RESTORE BACKUP", b.String(), "y: restore │ n/esc: cancel")
	case stateRunning:
		b.WriteString(m.progress.View())
		return renderPage("RESTORE BACKUP", b.String(), "please wait, controls are disabled")
	case stateDone:
		if m.errMsg != "" {
			b.WriteString(errorOverlayModel{message: m.errMsg}.View())
			return renderPage("RESTORE BACKUP", b.String(), "enter/esc: back")
		}
		b.WriteString(successStyle.Render("Restore complete"))
		b.WriteString("\n\n")
		b.WriteString("Backup taken at  │ " + formatTime(m.result.BackupTakenAt) + "\n")
		b.WriteString("Restored at      │ " + formatTime(m.result.RestoredAt) + "\n")
		b.WriteString(fmt.Sprintf("Tables / rows    │ %d / %d\n", m.result.TablesRestored, m.result.RowsRestored))
		b.WriteString("Safety backup    │ " + m.result.SafetyBackupID)
		return renderPage("RESTORE BACKUP", b.String(), "enter/esc: back")
	}

	b.WriteString("Enter the passphrase the backup was created with.\n\n")
	b.WriteString(m.form.view())
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}
	return renderPage("RESTORE BACKUP", b.String(), "esc: back │ enter: continue")
}
