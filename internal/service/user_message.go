// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/MKhiriev/go-backup-keeper/internal/adapter"
	"github.com/MKhiriev/go-backup-keeper/internal/app"
	"github.com/MKhiriev/go-backup-keeper/internal/crypto"
	"github.com/MKhiriev/go-backup-keeper/internal/envelope"
	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/internal/validators"
)

// messageRule maps every error matching one of errs to message.
type messageRule struct {
	errs    []error
	message string
}

// Order matters: restore outcomes wrap their cause and must win over it,
// and cancellation must win over the network error that carries it.
var messageRules = []messageRule{
	{errs: []error{ErrRestoreFailedRolledBack}, message: app.MsgRestoreFailedRolledBack},
	{errs: []error{ErrRestoreFailed}, message: app.MsgRestoreFailed},
	{errs: []error{context.Canceled}, message: app.MsgOperationCancelled},
	{errs: []error{crypto.ErrEmptyPassphrase, validators.ErrEmptyPassphrase}, message: app.MsgEmptyPassphrase},
	{errs: []error{validators.ErrPassphraseTooShort}, message: app.MsgPassphraseTooShort},
	{errs: []error{validators.ErrPassphraseMismatch}, message: app.MsgPassphraseMismatch},
	{errs: []error{crypto.ErrEmptyPlaintext}, message: app.MsgNothingToBackup},
	{errs: []error{crypto.ErrInvalidStorageKeyLength, crypto.ErrInvalidStorageKey}, message: app.MsgInvalidStorageKey},
	{errs: []error{envelope.ErrMalformedBlob}, message: app.MsgBackupCorrupted},
	{errs: []error{crypto.ErrWrongPassphraseOrCorruptBlob}, message: app.MsgWrongPassphrase},
	{
		errs: []error{
			envelope.ErrUnsupportedEnvelopeVersion,
			envelope.ErrMissingCriticalTable,
			envelope.ErrMalformedPayload,
		},
		message: app.MsgBackupIncompatible,
	},
	{errs: []error{adapter.ErrBlobNotFound}, message: app.MsgBackupNotFound},
	{errs: []error{store.ErrSafetyBackupNotFound}, message: app.MsgSafetyBackupNotFound},
	{errs: []error{adapter.ErrServiceUnavailable}, message: app.MsgServiceUnavailable},
	{errs: []error{adapter.ErrQuotaExceeded}, message: app.MsgQuotaExceeded},
	{
		errs: []error{
			store.ErrBuildingSQLQuery,
			store.ErrExecutingQuery,
			store.ErrScanningRow,
			store.ErrBeginningTransaction,
			store.ErrCommitingTransaction,
			store.ErrExecutingStatement,
			store.ErrUnknownTable,
		},
		message: app.MsgLocalStorageFailed,
	},
}

// UserMessage turns an error returned by the client services into the text
// shown to the user. It returns "" for a nil error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var opErr *OperationError
	if errors.As(err, &opErr) && opErr.Message != "" {
		return opErr.Message
	}

	var rateErr *adapter.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Sprintf(app.MsgRateLimitedFormat, retryMinutes(rateErr))
	}

	for _, rule := range messageRules {
		for _, target := range rule.errs {
			if errors.Is(err, target) {
				return rule.message
			}
		}
	}

	// remaining transport failures are reported as network errors with
	// the underlying text
	if errors.Is(err, adapter.ErrNetwork) ||
		errors.Is(err, adapter.ErrUnexpectedResponse) ||
		errors.Is(err, adapter.ErrMalformedRequest) {
		return fmt.Sprintf(app.MsgNetworkErrorFormat, err.Error())
	}
	if errors.Is(err, adapter.ErrRateLimited) {
		return fmt.Sprintf(app.MsgRateLimitedFormat, 1)
	}

	return app.MsgUnexpectedError
}

// retryMinutes rounds the server hint up to whole minutes, at least one.
func retryMinutes(err *adapter.RateLimitError) int {
	minutes := int(math.Ceil(err.RetryAfter.Seconds() / 60))
	if minutes < 1 {
		return 1
	}
	return minutes
}
