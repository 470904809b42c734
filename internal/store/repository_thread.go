package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-forum-board/internal/logger"
	"github.com/MKhiriev/go-forum-board/models"
)

// threadRepository is the SQL-backed implementation of [ThreadRepository].
type threadRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewThreadRepository constructs a [ThreadRepository] backed by the
// provided database connection and logger.
func NewThreadRepository(db *DB, logger *logger.Logger) ThreadRepository {
	logger.Debug().Msg("creating thread repository")
	return &threadRepository{
		db:     db,
		logger: logger,
	}
}

// CreateThread persists a new thread and returns the fully populated
// [models.Thread] with the server-assigned ID.
//
// Error handling:
//   - foreign key violation (author row missing at write time) →
//     [ErrForeignKeyViolation].
//   - transient driver failure → wrapped [ErrStoreUnavailable].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *threadRepository) CreateThread(ctx context.Context, thread models.Thread) (models.Thread, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createThread, thread.Title, thread.Link, thread.AuthorID, thread.CreatedAt)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*threadRepository.CreateThread").Msg("error: insert failed")
		return models.Thread{}, r.db.insertError(err)
	}

	if err := row.Scan(&thread.ID, &thread.Title, &thread.Link, &thread.AuthorID, &thread.CreatedAt); err != nil {
		log.Err(err).Str("func", "*threadRepository.CreateThread").Msg("error: scanning error")
		return models.Thread{}, r.db.insertError(err)
	}

	return thread, nil
}

// GetThreadByID retrieves a single thread. Returns [ErrThreadNotFound] for
// an empty result set.
func (r *threadRepository) GetThreadByID(ctx context.Context, id int64) (models.Thread, error) {
	log := logger.FromContext(ctx)

	var thread models.Thread
	row := r.db.QueryRowContext(ctx, getThreadByID, id)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*threadRepository.GetThreadByID").Msg("error: query failed")
		return models.Thread{}, r.db.lookupError(err, ErrThreadNotFound)
	}

	if err := row.Scan(&thread.ID, &thread.Title, &thread.Link, &thread.AuthorID, &thread.CreatedAt); err != nil {
		log.Err(err).Str("func", "*threadRepository.GetThreadByID").Msg("error: scanning error")
		return models.Thread{}, r.db.lookupError(err, ErrThreadNotFound)
	}

	return thread, nil
}

// ListThreadsWithAuthors returns every thread joined with its author row,
// newest thread first.
func (r *threadRepository) ListThreadsWithAuthors(ctx context.Context) ([]models.ThreadWithAuthor, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListThreadsWithAuthorsQuery()
	if err != nil {
		log.Err(err).Str("func", "*threadRepository.ListThreadsWithAuthors").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*threadRepository.ListThreadsWithAuthors").Msg("error: query failed")
		if r.db.retryable(err) {
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var list []models.ThreadWithAuthor
	for rows.Next() {
		var entry models.ThreadWithAuthor
		if err := rows.Scan(
			&entry.Thread.ID, &entry.Thread.Title, &entry.Thread.Link, &entry.Thread.AuthorID, &entry.Thread.CreatedAt,
			&entry.Author.ID, &entry.Author.Username, &entry.Author.Email,
		); err != nil {
			log.Err(err).Str("func", "*threadRepository.ListThreadsWithAuthors").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		list = append(list, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return list, nil
}

// insertError translates a driver error from an insert into the sentinel
// vocabulary shared by the thread and comment repositories.
func (db *DB) insertError(err error) error {
	switch {
	case db.violation(err) == ViolationForeignKey:
		return ErrForeignKeyViolation
	case db.violation(err) != ViolationNone:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	case db.retryable(err):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

// lookupError translates a driver error from a single-row lookup, using
// notFound as the sentinel for an empty result set.
func (db *DB) lookupError(err error, notFound error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return notFound
	case db.retryable(err):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
