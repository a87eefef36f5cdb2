// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-backup-keeper/models"
)

// CurrentVersion is the only payload version this build reads and writes.
const CurrentVersion = 1

// DefaultCriticalTables must be present in a backup for it to be restorable.
// A backup without them would wipe the user's core data.
var DefaultCriticalTables = []string{"users", "symptoms"}

// SerializePayload wraps tables into a versioned payload stamped with now and
// schemaVersion and encodes it as JSON.
func SerializePayload(tables models.TableSet, schemaVersion int, now time.Time) ([]byte, error) {
	if tables == nil {
		tables = models.TableSet{}
	}
	version := CurrentVersion
	payload := models.BackupPayload{
		Version:       &version,
		Timestamp:     now.UTC(),
		SchemaVersion: schemaVersion,
		Data:          tables,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal backup payload: %w", err)
	}
	return data, nil
}

// ParsePayload decodes plaintext produced by SerializePayload. Numbers are
// kept as json.Number so integer columns keep their exact value.
func ParsePayload(plaintext []byte) (models.BackupPayload, error) {
	var payload models.BackupPayload

	dec := json.NewDecoder(bytes.NewReader(plaintext))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return models.BackupPayload{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return payload, nil
}

// ValidatePayload is the gate in front of any local mutation: the version
// must be CurrentVersion and every table in critical must be present. An
// empty table still counts as present.
func ValidatePayload(payload models.BackupPayload, critical []string) error {
	if payload.Version == nil {
		return fmt.Errorf("%w: version is missing", ErrUnsupportedEnvelopeVersion)
	}
	if *payload.Version != CurrentVersion {
		return fmt.Errorf("%w: got %d, want %d", ErrUnsupportedEnvelopeVersion, *payload.Version, CurrentVersion)
	}

	for _, table := range critical {
		if _, ok := payload.Data[table]; !ok {
			return &MissingCriticalTableError{Table: table}
		}
	}
	return nil
}
