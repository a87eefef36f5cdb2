// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/models"
)

// localDataStore is the SQLite implementation of [LocalDataStore]. Table
// names come from sqlite_master, so a new migration is picked up by backup
// and restore without code changes.
type localDataStore struct {
	*DB
	logger *logger.Logger
}

// NewLocalDataStore constructs a [LocalDataStore] on top of an open SQLite
// connection.
func NewLocalDataStore(db *DB, logger *logger.Logger) LocalDataStore {
	return &localDataStore{
		DB:     db,
		logger: logger,
	}
}

// ExportAllTables implements [LocalDataStore].
func (l *localDataStore) ExportAllTables(ctx context.Context) (models.TableSet, error) {
	log := logger.FromContext(ctx)

	tables, err := listTables(ctx, l.DB.DB)
	if err != nil {
		log.Err(err).Str("func", "localDataStore.ExportAllTables").Msg("failed to list tables")
		return nil, err
	}

	result := make(models.TableSet, len(tables))
	for _, table := range tables {
		rows, err := selectAllRows(ctx, l.DB.DB, table)
		if err != nil {
			log.Err(err).
				Str("func", "localDataStore.ExportAllTables").
				Str("table", table).
				Msg("failed to export table")
			return nil, err
		}
		result[table] = rows
	}

	log.Debug().
		Str("func", "localDataStore.ExportAllTables").
		Int("tables", len(result)).
		Int("rows", result.RowCount()).
		Msg("exported local tables")

	return result, nil
}

// RestoreTransaction implements [LocalDataStore]. Foreign keys are checked
// at commit, so tables may be cleared and filled in any order.
func (l *localDataStore) RestoreTransaction(ctx context.Context, tables models.TableSet) (err error) {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localDataStore.RestoreTransaction").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Err(rbErr).Str("func", "localDataStore.RestoreTransaction").Msg("failed to roll back")
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, "PRAGMA defer_foreign_keys = ON"); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	known, err := listTables(ctx, tx)
	if err != nil {
		return err
	}
	knownSet := make(map[string]struct{}, len(known))
	for _, name := range known {
		knownSet[name] = struct{}{}
	}

	names := tables.Tables()
	sort.Strings(names)

	for _, table := range names {
		if _, ok := knownSet[table]; !ok {
			err = fmt.Errorf("%w: %s", ErrUnknownTable, table)
			log.Err(err).Str("func", "localDataStore.RestoreTransaction").Msg("restore rejected")
			return err
		}

		if err = l.replaceTable(ctx, tx, table, tables[table]); err != nil {
			log.Err(err).
				Str("func", "localDataStore.RestoreTransaction").
				Str("table", table).
				Msg("failed to restore table")
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localDataStore.RestoreTransaction").Msg("failed to commit restore")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "localDataStore.RestoreTransaction").
		Int("tables", len(names)).
		Int("rows", tables.RowCount()).
		Msg("local tables restored")

	return nil
}

func (l *localDataStore) replaceTable(ctx context.Context, tx *sql.Tx, table string, rows []models.Row) error {
	query, args, err := buildClearTableQuery(table)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: clear %s: %w", ErrExecutingStatement, table, err)
	}

	for i, row := range rows {
		query, args, err = buildInsertRowQuery(table, row)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: insert into %s (row %d): %w", ErrExecutingStatement, table, i, err)
		}
	}

	return nil
}

// CurrentSchemaVersion implements [LocalDataStore].
func (l *localDataStore) CurrentSchemaVersion(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSchemaVersionQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var version int64
	if err = l.DB.QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
		log.Err(err).Str("func", "localDataStore.CurrentSchemaVersion").Msg("failed to read schema version")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return int(version), nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func listTables(ctx context.Context, q queryer) ([]string, error) {
	query, args, err := buildListTablesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tables = append(tables, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tables, nil
}

func listColumns(ctx context.Context, q queryer, table string) ([]string, error) {
	query, args, err := buildTableColumnsQuery(table)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		columns = append(columns, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return columns, nil
}

func selectAllRows(ctx context.Context, q queryer, table string) ([]models.Row, error) {
	tableColumns, err := listColumns(ctx, q, table)
	if err != nil {
		return nil, err
	}

	query, args, err := buildSelectAllRowsQuery(table, tableColumns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// never nil, so an empty table is exported as []
	result := make([]models.Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err = rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		row := make(models.Row, len(columns))
		for i, column := range columns {
			row[column] = fromSQLiteValue(values[i])
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result, nil
}
