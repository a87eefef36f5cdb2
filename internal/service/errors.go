package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-backup-keeper/models"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrRestoreFailedRolledBack means applying the backup failed and the
	// safety snapshot was re-applied: local data is as it was.
	ErrRestoreFailedRolledBack = errors.New("restore failed, local data rolled back")

	// ErrRestoreFailed means applying the backup failed and so did the
	// rollback. The safety snapshot is still in the safety backup store.
	ErrRestoreFailed = errors.New("restore failed, rollback failed")
)

// OperationError is returned by the orchestrators. Message is the text that
// was recorded in sync metadata and should be shown to the user.
type OperationError struct {
	Operation models.Operation
	Message   string
	Err       error
}

func newOperationError(op models.Operation, err error) *OperationError {
	return &OperationError{
		Operation: op,
		Message:   UserMessage(err),
		Err:       err,
	}
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
