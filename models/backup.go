// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Row is a single database row keyed by column name.
type Row = map[string]any

// TableSet is a full dump of the local database: table name to all of its rows.
type TableSet map[string][]Row

// Tables returns the table names present in the set.
func (t TableSet) Tables() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	return names
}

// RowCount returns the total number of rows across all tables.
func (t TableSet) RowCount() int {
	n := 0
	for _, rows := range t {
		n += len(rows)
	}
	return n
}

// BackupPayload is the plaintext that gets encrypted into a backup blob.
//
// Version is a pointer so a payload without the field can be told apart from
// one that carries an explicit zero.
type BackupPayload struct {
	Version       *int      `json:"version"`
	Timestamp     time.Time `json:"timestamp"`
	SchemaVersion int       `json:"schemaVersion"`
	Data          TableSet  `json:"data"`
}

// SafetyBackup is a local snapshot of the database taken right before a
// restore overwrites it.
type SafetyBackup struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	SchemaVersion int       `json:"schema_version"`
	Tables        TableSet  `json:"tables"`
}

// BackupResult describes a successful upload.
type BackupResult struct {
	UploadedAt     time.Time
	BlobSizeBytes  int64
	StorageKeyHash string
}

// RestoreResult describes a successful restore.
type RestoreResult struct {
	RestoredAt     time.Time
	BackupTakenAt  time.Time
	SchemaVersion  int
	TablesRestored int
	RowsRestored   int
	SafetyBackupID string
	StorageKeyHash string
}
