// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive backup client runtime.
//
// It runs the terminal UI on top of the client services and releases the
// local storages and the blob store transport when the UI exits.
package client
