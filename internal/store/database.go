// Package store implements the relational data store for the forum: user,
// thread, and comment repositories over database/sql, with PostgreSQL or
// SQLite selected by the configured DSN.
//
// All writes are single-row inserts; rows are never updated or deleted.
// Integrity failures surface as sentinel errors, and transient driver
// failures are classified retryable so callers can fail fast instead of
// hanging on an exhausted pool.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-forum-board/internal/config"
	"github.com/MKhiriev/go-forum-board/internal/logger"
	"github.com/MKhiriev/go-forum-board/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the shared *sql.DB pool together with the backend-specific error
// classifier and the goose dialect used for migrations.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	dialect            string
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.DSN, bounds the connection
// pool, verifies connectivity with a ping, and returns the wrapped handle.
//
// A "postgres://" (or "postgresql://") DSN selects the pgx driver; any
// other value is treated as a SQLite file path for the mattn driver. For
// SQLite the "_foreign_keys=on" pragma is appended when absent, since the
// schema's referential integrity depends on it being set on every
// connection in the pool.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver, dialect, dsn := resolveDriver(cfg.DSN)

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("driver", driver).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 10
	}
	conn.SetMaxOpenConns(maxOpen)
	conn.SetMaxIdleConns(maxOpen)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("driver", driver).Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("driver", driver).Msg("connected to database successfully")

	db := &DB{
		DB:                 conn,
		dialect:            dialect,
		logger:             log,
		errorClassificator: classifierForDialect(dialect),
	}

	return db, nil
}

// Migrate applies the embedded schema migrations for the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// resolveDriver maps a DSN to the database/sql driver name, the goose
// dialect, and the (possibly amended) DSN to open.
func resolveDriver(dsn string) (driver, dialect, amended string) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx", "pgx", dsn
	}

	if !strings.Contains(dsn, "_foreign_keys=") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_foreign_keys=on"
	}
	return "sqlite3", "sqlite3", dsn
}

func classifierForDialect(dialect string) ErrorClassificator {
	if dialect == "sqlite3" {
		return NewSQLiteErrorClassifier()
	}
	return NewPostgresErrorClassifier()
}

// violation reports the integrity-violation kind of err under the
// connected backend's classifier.
func (db *DB) violation(err error) Violation {
	return db.errorClassificator.Violation(err)
}

// retryable reports whether err is a transient failure worth retrying.
func (db *DB) retryable(err error) bool {
	return db.errorClassificator.Classify(err) == Retryable
}
