package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-forum-board/internal/logger"
	"github.com/MKhiriev/go-forum-board/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with the server-assigned ID.
//
// Error handling:
//   - unique violation on username → [ErrUsernameTaken]; the first
//     registration's row is left unchanged.
//   - transient driver failure → wrapped [ErrStoreUnavailable].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")
		return models.User{}, r.writeError(err)
	}

	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, r.writeError(err)
	}

	return user, nil
}

// FindUserByUsername retrieves the account whose username matches exactly.
// Returns [ErrUserNotFound] for an empty result set.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username)
}

// FindUserByID retrieves the account with the given surrogate key.
// Returns [ErrUserNotFound] for an empty result set.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, id)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: query failed")
		return models.User{}, r.readError(err)
	}

	if err := row.Scan(&found.ID, &found.Username, &found.Email, &found.PasswordHash); err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning error")
		return models.User{}, r.readError(err)
	}

	return found, nil
}

// writeError translates a driver error from an insert into the repository's
// sentinel vocabulary.
func (r *userRepository) writeError(err error) error {
	switch {
	case r.db.violation(err) == ViolationUnique:
		return ErrUsernameTaken
	case r.db.violation(err) != ViolationNone:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	case r.db.retryable(err):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

// readError translates a driver error from a lookup into the repository's
// sentinel vocabulary.
func (r *userRepository) readError(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrUserNotFound
	case r.db.retryable(err):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
