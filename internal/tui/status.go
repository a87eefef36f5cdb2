package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-backup-keeper/internal/service"
	"github.com/MKhiriev/go-backup-keeper/models"
)

// StatusModel shows the last backup or restore attempt and the retained
// safety backups. A selected safety backup can be re-applied.
type StatusModel struct {
	ctx     context.Context
	status  service.ClientStatusService
	restore service.ClientRestoreService

	loading bool
	meta    models.SyncMetadata
	found   bool
	backups []models.SafetyBackup
	cursor  int
	errMsg  string
	notice  string

	state      operationState
	progress   progressView
	result     models.RestoreResult
	restoreErr string
}

func NewStatusModel(ctx context.Context, status service.ClientStatusService, restore service.ClientRestoreService) *StatusModel {
	return &StatusModel{ctx: ctx, status: status, restore: restore, progress: newProgressView()}
}

func (m *StatusModel) Init() tea.Cmd {
	m.loading = true
	m.notice = ""
	return m.cmdLoad()
}

func (m *StatusModel) busy() bool {
	return m.state == stateRunning
}

func (m *StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.meta, m.found, m.backups = msg.meta, msg.found, msg.backups
		m.cursor = min(m.cursor, max(len(m.backups)-1, 0))
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.notice = "could not copy: " + msg.err.Error()
		} else {
			m.notice = "storage key hash copied to clipboard"
		}
		return m, nil
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
	case safetyRestoreDoneMsg:
		m.state = stateDone
		if msg.err != nil {
			m.restoreErr = humanizeError(msg.err)
			return m, nil
		}
		m.result = msg.result
		m.progress.event = models.ProgressEvent{Stage: models.StageRestore, Percent: 100}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *StatusModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateRunning:
		return m, nil
	case stateDone:
		if matches(msg, keys.enter) || matches(msg, keys.esc) {
			m.state = stateEditing
			m.result = models.RestoreResult{}
			m.restoreErr = ""
			m.progress.reset()
			return m, m.Init()
		}
		return m, nil
	case stateConfirming:
		switch {
		case matches(msg, keys.yes):
			m.state = stateRunning
			m.progress.reset()
			return m, tea.Batch(m.cmdRestoreSafetyBackup(m.backups[m.cursor].ID), m.progress.spinner.Tick)
		case matches(msg, keys.no):
			m.state = stateEditing
		}
		return m, nil
	}

	switch {
	case matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case matches(msg, keys.refresh):
		return m, m.Init()
	case matches(msg, keys.copy):
		if m.found && m.meta.StorageKeyHash != "" {
			return m, copyToClipboard(m.meta.StorageKeyHash)
		}
	case matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case matches(msg, keys.down):
		if m.cursor < len(m.backups)-1 {
			m.cursor++
		}
	case matches(msg, keys.apply):
		if !m.loading && m.errMsg == "" && len(m.backups) > 0 && m.restore != nil {
			m.state = stateConfirming
		}
	}
	return m, nil
}

func (m *StatusModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	status := m.status

	return func() tea.Msg {
		meta, found, err := status.LastAttempt(ctx)
		if err != nil {
			return statusLoadedMsg{err: err}
		}
		backups, err := status.SafetyBackups(ctx)
		return statusLoadedMsg{meta: meta, found: found, backups: backups, err: err}
	}
}

func (m *StatusModel) cmdRestoreSafetyBackup(id string) tea.Cmd {
	ctx := m.ctx
	restore := m.restore

	return startOperation(ctx, func(onProgress service.ProgressFunc) tea.Msg {
		result, err := restore.RestoreSafetyBackup(ctx, id, onProgress)
		return safetyRestoreDoneMsg{result: result, err: err}
	})
}

func (m *StatusModel) View() string {
	const hotKeys = "↑/↓: select │ a: apply safety backup │ r: refresh │ c: copy key hash │ esc: back"

	switch m.state {
	case stateConfirming:
		return renderPage("STATUS", confirmSafetyRestore{id: m.backups[m.cursor].ID}.View(), "y: restore │ n/esc: cancel")
	case stateRunning:
		return renderPage("STATUS", m.progress.View(), "please wait, controls are disabled")
	case stateDone:
		if m.restoreErr != "" {
			return renderPage("STATUS", errorOverlayModel{message: m.restoreErr}.View(), "enter/esc: back")
		}
		var b strings.Builder
		b.WriteString(successStyle.Render("Safety backup restored"))
		b.WriteString("\n\n")
		b.WriteString("Taken at         │ " + formatTime(m.result.BackupTakenAt) + "\n")
		b.WriteString(fmt.Sprintf("Tables / rows    │ %d / %d\n", m.result.TablesRestored, m.result.RowsRestored))
		b.WriteString("Safety backup    │ " + m.result.SafetyBackupID)
		return renderPage("STATUS", b.String(), "enter/esc: back")
	}

	if m.loading {
		return renderPage("STATUS", "loading...", hotKeys)
	}
	if m.errMsg != "" {
		return renderPage("STATUS", errorOverlayModel{message: m.errMsg}.View(), hotKeys)
	}

	var b strings.Builder
	b.WriteString("Last attempt\n")
	if !m.found {
		b.WriteString("  no backup or restore has been attempted yet\n")
	} else {
		result := successStyle.Render("success")
		if !m.meta.LastAttemptSuccess {
			result = errorStyle.Render("failed")
		}
		b.WriteString(fmt.Sprintf("  Operation        │ %s\n", m.meta.Operation))
		b.WriteString(fmt.Sprintf("  When             │ %s\n", formatTime(m.meta.LastAttemptAt)))
		b.WriteString(fmt.Sprintf("  Result           │ %s\n", result))
		b.WriteString(fmt.Sprintf("  Encrypted size   │ %s\n", formatBytes(m.meta.BlobSizeBytes)))
		b.WriteString(fmt.Sprintf("  Storage key hash │ %s\n", valueOrDash(&m.meta.StorageKeyHash)))
		if !m.meta.LastAttemptSuccess {
			b.WriteString(fmt.Sprintf("  Error            │ %s\n", valueOrDash(m.meta.ErrorMessage)))
		}
	}

	b.WriteString("\nSafety backups\n")
	if len(m.backups) == 0 {
		b.WriteString("  none\n")
	}
	for i, backup := range m.backups {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s │ %s │ schema v%d\n", cursor, backup.ID, formatTime(backup.CreatedAt), backup.SchemaVersion))
	}

	if m.notice != "" {
		b.WriteString("\n" + m.notice)
	}

	return renderPage("STATUS", strings.TrimRight(b.String(), "\n"), hotKeys)
}
