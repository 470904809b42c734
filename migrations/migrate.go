// Package migrations applies the embedded forum schema migrations with
// goose. Each supported backend has its own migration directory because the
// auto-increment primary key syntax differs between PostgreSQL and SQLite.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate brings the connected database up to the latest schema version.
// dialect is the goose dialect name ("pgx" or "sqlite3") and selects both
// the goose version-table SQL and the migration directory.
func Migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	dir := "postgres"
	if dialect == "sqlite3" {
		dir = "sqlite"
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
