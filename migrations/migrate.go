// Package migrations embeds the SQL schema of both sides and applies it with
// goose: the client keeps its data in SQLite, the blob store in PostgreSQL.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql server/*.sql
var embedMigrations embed.FS

// Dialect selects the migration set and the goose SQL dialect.
type Dialect string

const (
	// DialectSQLite applies the client schema.
	DialectSQLite Dialect = "sqlite3"
	// DialectPostgres applies the blob store schema.
	DialectPostgres Dialect = "pgx"
)

var dirs = map[Dialect]string{
	DialectSQLite:   "client",
	DialectPostgres: "server",
}

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration of the given dialect to db.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, ok := dirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: unknown dialect %q", dialect)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
