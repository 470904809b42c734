package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because a user with the same username already exists. The
	// existing row is left untouched.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrThreadNotFound is returned when a query targets a thread that
	// does not exist.
	ErrThreadNotFound = errors.New("no thread was found")

	// ErrCommentNotFound is returned when a query targets a comment that
	// does not exist.
	ErrCommentNotFound = errors.New("no comment was found")

	// ErrForeignKeyViolation is returned when an insert references a row
	// that does not exist at write time (e.g. a thread whose author is
	// missing, or a comment against an unknown thread). The database
	// rejects the write; no partial state is left behind.
	ErrForeignKeyViolation = errors.New("referenced row does not exist")

	// ErrConstraintViolation is returned for store-level integrity
	// violations not covered by a more specific sentinel (e.g. a NOT NULL
	// or CHECK failure).
	ErrConstraintViolation = errors.New("integrity constraint violated")

	// ErrStoreUnavailable is returned when the database reports a
	// transient failure (connection loss, deadlock rollback, pool
	// exhaustion). The operation failed fast and may be retried.
	ErrStoreUnavailable = errors.New("store temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read-only query
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a
	// single result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
