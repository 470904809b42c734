package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-forum-board/internal/logger"
	"github.com/MKhiriev/go-forum-board/models"
)

// commentRepository is the SQL-backed implementation of [CommentRepository].
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment persists a new comment and returns the fully populated
// [models.Comment] with the server-assigned ID.
//
// The insert is atomic: if the thread, author, or parent comment row is
// missing at write time the database rejects the whole row and
// [ErrForeignKeyViolation] is returned, never partial state. Same-thread
// parent membership is the forum service's responsibility; the foreign key
// only guarantees the parent exists.
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createComment,
		comment.Content, comment.ThreadID, comment.AuthorID, comment.ParentCommentID, comment.CreatedAt)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error: insert failed")
		return models.Comment{}, r.db.insertError(err)
	}

	if err := row.Scan(
		&comment.ID, &comment.Content, &comment.ThreadID, &comment.AuthorID,
		&comment.ParentCommentID, &comment.CreatedAt,
	); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error: scanning error")
		return models.Comment{}, r.db.insertError(err)
	}

	return comment, nil
}

// GetCommentByID retrieves a single comment. Returns [ErrCommentNotFound]
// for an empty result set.
func (r *commentRepository) GetCommentByID(ctx context.Context, id int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	var comment models.Comment
	row := r.db.QueryRowContext(ctx, getCommentByID, id)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*commentRepository.GetCommentByID").Msg("error: query failed")
		return models.Comment{}, r.db.lookupError(err, ErrCommentNotFound)
	}

	if err := row.Scan(
		&comment.ID, &comment.Content, &comment.ThreadID, &comment.AuthorID,
		&comment.ParentCommentID, &comment.CreatedAt,
	); err != nil {
		log.Err(err).Str("func", "*commentRepository.GetCommentByID").Msg("error: scanning error")
		return models.Comment{}, r.db.lookupError(err, ErrCommentNotFound)
	}

	return comment, nil
}

// ListCommentsForThreadWithAuthors returns every comment of the thread
// joined with its author row, in posting order (oldest first). An existing
// thread without comments yields an empty slice, not an error.
func (r *commentRepository) ListCommentsForThreadWithAuthors(ctx context.Context, threadID int64) ([]models.CommentWithAuthor, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCommentsForThreadQuery(threadID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListCommentsForThreadWithAuthors").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListCommentsForThreadWithAuthors").Msg("error: query failed")
		if r.db.retryable(err) {
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var list []models.CommentWithAuthor
	for rows.Next() {
		var entry models.CommentWithAuthor
		if err := rows.Scan(
			&entry.Comment.ID, &entry.Comment.Content, &entry.Comment.ThreadID, &entry.Comment.AuthorID,
			&entry.Comment.ParentCommentID, &entry.Comment.CreatedAt,
			&entry.Author.ID, &entry.Author.Username, &entry.Author.Email,
		); err != nil {
			log.Err(err).Str("func", "*commentRepository.ListCommentsForThreadWithAuthors").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		list = append(list, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return list, nil
}
