package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready
// for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Connection exceptions
// (class 08), transaction rollbacks including serialization failures and
// deadlocks (class 40), and "cannot connect now" (57P03) are retryable;
// everything else (data exceptions, constraint violations, syntax
// errors) is not.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for
// the full code list.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	pgErr := asPgError(err)
	if pgErr == nil {
		return NonRetryable
	}

	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}

// Violation implements [ErrorClassificator]. It maps the class 23 integrity
// codes onto the backend-neutral [Violation] kinds the repositories switch
// on.
func (c *PostgresErrorClassifier) Violation(err error) Violation {
	pgErr := asPgError(err)
	if pgErr == nil {
		return ViolationNone
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ViolationUnique
	case pgerrcode.ForeignKeyViolation:
		return ViolationForeignKey
	case pgerrcode.IntegrityConstraintViolation,
		pgerrcode.RestrictViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.CheckViolation:
		return ViolationOther
	}

	return ViolationNone
}

func asPgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}
