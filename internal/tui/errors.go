// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-backup-keeper/internal/service"

// humanizeError turns any error from the client services or the passphrase
// validator into the message shown on screen.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	return service.UserMessage(err)
}
