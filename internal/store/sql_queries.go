package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-backup-keeper/models"
)

const backupsTable = "backups"

var postgres = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildUpsertBlobQuery(blob models.StoredBlob) (string, []any, error) {
	return postgres.
		Insert(backupsTable).
		Columns("storage_key", "data", "backup_time", "original_size", "uploaded_at").
		Values(blob.StorageKey, blob.Data, blob.BackupTime, blob.OriginalSize, sq.Expr("NOW()")).
		Suffix(`ON CONFLICT (storage_key) DO UPDATE SET
			data = excluded.data,
			backup_time = excluded.backup_time,
			original_size = excluded.original_size,
			uploaded_at = excluded.uploaded_at
		RETURNING uploaded_at`).
		ToSql()
}

func buildSelectBlobQuery(storageKey string) (string, []any, error) {
	return postgres.
		Select("storage_key", "data", "backup_time", "original_size", "uploaded_at").
		From(backupsTable).
		Where(sq.Eq{"storage_key": storageKey}).
		ToSql()
}

func buildDeleteBlobsOlderThanQuery(cutoff time.Time) (string, []any, error) {
	return postgres.
		Delete(backupsTable).
		Where(sq.Lt{"uploaded_at": cutoff}).
		ToSql()
}
