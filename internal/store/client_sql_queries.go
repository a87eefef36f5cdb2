package store

import (
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-backup-keeper/models"
)

// Tables that belong to the application itself rather than to the user's
// data. They are never exported nor overwritten by a restore.
var bookkeepingTables = map[string]struct{}{
	"goose_db_version": {},
	"sync_metadata":    {},
}

const syncMetadataTable = "sync_metadata"

var syncMetadataColumns = []string{
	"id",
	"operation",
	"last_attempt_at",
	"last_attempt_success",
	"blob_size_bytes",
	"storage_key_hash",
	"error_message",
}

// SQLite uses ? placeholders, squirrel's default.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func buildListTablesQuery() (string, []any, error) {
	excluded := make([]string, 0, len(bookkeepingTables))
	for name := range bookkeepingTables {
		excluded = append(excluded, name)
	}
	sort.Strings(excluded)

	return sqlite.
		Select("name").
		From("sqlite_master").
		Where(sq.Eq{"type": "table"}).
		Where(sq.NotLike{"name": "sqlite_%"}).
		Where(sq.NotEq{"name": excluded}).
		OrderBy("name").
		ToSql()
}

func quoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

func buildTableColumnsQuery(table string) (string, []any, error) {
	return sqlite.
		Select("name").
		From("pragma_table_info(" + quoteLiteral(table) + ")").
		OrderBy("cid").
		ToSql()
}

// buildSelectAllRowsQuery selects every column through unary plus. The
// expression keeps value and storage class but hides the declared type, so
// the driver does not reparse DATETIME text into time.Time.
func buildSelectAllRowsQuery(table string, columns []string) (string, []any, error) {
	if len(columns) == 0 {
		return "", nil, fmt.Errorf("%w: no columns for table %s", ErrBuildingSQLQuery, table)
	}

	selected := make([]string, len(columns))
	for i, column := range columns {
		quoted := quoteIdent(column)
		selected[i] = "+" + quoted + " AS " + quoted
	}

	return sqlite.
		Select(selected...).
		From(quoteIdent(table)).
		OrderBy("rowid").
		ToSql()
}

func buildClearTableQuery(table string) (string, []any, error) {
	return sqlite.Delete(quoteIdent(table)).ToSql()
}

// buildInsertRowQuery inserts one row. Columns are sorted so the generated
// SQL is stable for rows with the same shape.
func buildInsertRowQuery(table string, row models.Row) (string, []any, error) {
	if len(row) == 0 {
		return "", nil, fmt.Errorf("%w: empty row for table %s", ErrBuildingSQLQuery, table)
	}

	columns := make([]string, 0, len(row))
	for column := range row {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	quoted := make([]string, len(columns))
	values := make([]any, len(columns))
	for i, column := range columns {
		quoted[i] = quoteIdent(column)
		value, err := toSQLiteValue(row[column])
		if err != nil {
			return "", nil, fmt.Errorf("%w: table %s column %s: %w", ErrBuildingSQLQuery, table, column, err)
		}
		values[i] = value
	}

	return sqlite.
		Insert(quoteIdent(table)).
		Columns(quoted...).
		Values(values...).
		ToSql()
}

func buildSchemaVersionQuery() (string, []any, error) {
	return sqlite.
		Select("COALESCE(MAX(version_id), 0)").
		From("goose_db_version").
		Where(sq.Eq{"is_applied": true}).
		ToSql()
}

func buildUpsertSyncMetadataQuery(meta models.SyncMetadata) (string, []any, error) {
	updates := make([]string, 0, len(syncMetadataColumns)-1)
	for _, column := range syncMetadataColumns[1:] {
		updates = append(updates, fmt.Sprintf("%s = excluded.%s", column, column))
	}

	return sqlite.
		Insert(syncMetadataTable).
		Columns(syncMetadataColumns...).
		Values(
			models.SyncMetadataID,
			string(meta.Operation),
			formatTime(meta.LastAttemptAt),
			meta.LastAttemptSuccess,
			meta.BlobSizeBytes,
			meta.StorageKeyHash,
			meta.ErrorMessage,
		).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + strings.Join(updates, ", ")).
		ToSql()
}

func buildSelectSyncMetadataQuery() (string, []any, error) {
	return sqlite.
		Select(syncMetadataColumns...).
		From(syncMetadataTable).
		Where(sq.Eq{"id": models.SyncMetadataID}).
		ToSql()
}
