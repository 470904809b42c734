package store

import (
	"context"

	"github.com/MKhiriev/go-forum-board/models"
)

// UserRepository persists and looks up forum accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with the
	// server-assigned ID. Returns [ErrUsernameTaken] if the username is
	// already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the account with the given username, or
	// [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns the account with the given ID, or
	// [ErrUserNotFound].
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// ThreadRepository persists and lists discussion threads.
type ThreadRepository interface {
	// CreateThread inserts a new thread and returns it with the
	// server-assigned ID. Returns [ErrForeignKeyViolation] if the author
	// row does not exist at write time.
	CreateThread(ctx context.Context, thread models.Thread) (models.Thread, error)

	// GetThreadByID returns the thread with the given ID, or
	// [ErrThreadNotFound].
	GetThreadByID(ctx context.Context, id int64) (models.Thread, error)

	// ListThreadsWithAuthors returns every thread joined with its author,
	// newest first.
	ListThreadsWithAuthors(ctx context.Context) ([]models.ThreadWithAuthor, error)
}

// CommentRepository persists and lists thread comments.
type CommentRepository interface {
	// CreateComment inserts a new comment and returns it with the
	// server-assigned ID. Returns [ErrForeignKeyViolation] if the thread,
	// author, or referenced parent comment does not exist at write time.
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)

	// GetCommentByID returns the comment with the given ID, or
	// [ErrCommentNotFound].
	GetCommentByID(ctx context.Context, id int64) (models.Comment, error)

	// ListCommentsForThreadWithAuthors returns every comment of the
	// thread joined with its author, in posting order (oldest first).
	ListCommentsForThreadWithAuthors(ctx context.Context, threadID int64) ([]models.CommentWithAuthor, error)
}

// ErrorClassificator inspects driver-level errors so that repositories can
// translate them into sentinel errors without depending on a particular
// database backend.
type ErrorClassificator interface {
	// Classify reports whether a failed operation may succeed on retry.
	Classify(err error) ErrorClassification

	// Violation reports which integrity constraint, if any, the error
	// represents.
	Violation(err error) Violation
}

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It indicates whether a failed database
// operation should be retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be
	// retried. This is the default classification for unrecognised
	// errors, constraint violations, syntax errors, and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if
	// attempted again (e.g. after a transient connection loss or a
	// deadlock rollback).
	Retryable
)

// Violation is the result type returned by [ErrorClassificator.Violation].
type Violation int

const (
	// ViolationNone means the error is not an integrity violation.
	ViolationNone Violation = iota

	// ViolationUnique means a unique constraint was violated
	// (duplicate username).
	ViolationUnique

	// ViolationForeignKey means a foreign key constraint was violated
	// (referenced user, thread, or parent comment does not exist).
	ViolationForeignKey

	// ViolationOther means some other integrity constraint was violated
	// (NOT NULL, CHECK).
	ViolationOther
)
