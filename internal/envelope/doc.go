// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envelope defines the two on-the-wire formats of a backup.
//
// The outer format is the encrypted blob:
//
//	offset 0   16        28
//	       | salt | nonce | ciphertext + GCM tag |
//
// The inner format is the JSON plaintext:
//
//	{"version":1,"timestamp":"...","schemaVersion":3,"data":{"users":[{...}]}}
//
// Both are versioned by CurrentVersion; a reader rejects any other version
// before touching local data.
package envelope
