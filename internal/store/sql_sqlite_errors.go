package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for the mattn
// SQLite driver. It inspects the sqlite3 primary and extended result codes.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for
// use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. SQLITE_BUSY and SQLITE_LOCKED
// mean another connection holds a conflicting lock; the write may succeed
// on retry. Everything else is non-retryable.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	sqliteErr, ok := asSQLiteError(err)
	if !ok {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}

// Violation implements [ErrorClassificator]. The extended code
// distinguishes unique and foreign-key violations; any other
// SQLITE_CONSTRAINT subtype maps to [ViolationOther].
func (c *SQLiteErrorClassifier) Violation(err error) Violation {
	sqliteErr, ok := asSQLiteError(err)
	if !ok || sqliteErr.Code != sqlite3.ErrConstraint {
		return ViolationNone
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ViolationUnique
	case sqlite3.ErrConstraintForeignKey:
		return ViolationForeignKey
	}

	return ViolationOther
}

func asSQLiteError(err error) (sqlite3.Error, bool) {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr, true
	}
	return sqlite3.Error{}, false
}
