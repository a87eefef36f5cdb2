package tui

import "github.com/MKhiriev/go-backup-keeper/models"

// NavigateTo switches the active page.
type NavigateTo struct {
	Page string
}

type quitMsg struct{}

// progressMsg carries one event from a running operation. ch is the channel
// to keep listening on.
type progressMsg struct {
	event models.ProgressEvent
	ch    <-chan models.ProgressEvent
}

type backupDoneMsg struct {
	result models.BackupResult
	err    error
}

type restoreDoneMsg struct {
	result models.RestoreResult
	err    error
}

type safetyRestoreDoneMsg struct {
	result models.RestoreResult
	err    error
}

type statusLoadedMsg struct {
	meta    models.SyncMetadata
	found   bool
	backups []models.SafetyBackup
	err     error
}

type copiedMsg struct {
	err error
}
