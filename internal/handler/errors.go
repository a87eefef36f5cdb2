// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the blob store has
// no transport address configured at all.
var errNoHandlersAreCreated = errors.New("handler: no HTTP or gRPC address configured for the blob store")
