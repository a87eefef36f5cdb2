// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the application: the
// passphrase policy enforced by the client before any backup or restore, and
// the shape checks the blob store applies to uploads.
//
// Every rule set implements [Validator]. Callers may restrict a check to a
// subset of named fields, e.g. FieldConfirmation only on backup creation.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
