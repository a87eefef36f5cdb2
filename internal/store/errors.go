package store

import "errors"

// Sentinel errors returned by repositories to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSyncMetadataNotFound is returned by the sync metadata repository
	// before the first backup or restore attempt has been recorded.
	ErrSyncMetadataNotFound = errors.New("sync metadata was not found")

	// ErrSafetyBackupNotFound is returned when no pre-restore snapshot with
	// the requested id (or no snapshot at all) exists.
	ErrSafetyBackupNotFound = errors.New("safety backup was not found")

	// ErrUnknownTable is returned when a restore names a table that does not
	// exist in the local schema.
	ErrUnknownTable = errors.New("unknown table")

	// ErrBlobNotFound is returned by blob storages when nothing is stored
	// under the requested storage key.
	ErrBlobNotFound = errors.New("blob was not found")

	// ErrStorageUnavailable wraps transient backend failures (lost
	// connection, serialization failure) that a client may retry later.
	ErrStorageUnavailable = errors.New("storage is temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT or similar read-only query
	// fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("error scanning row")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
