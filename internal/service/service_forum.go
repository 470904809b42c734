package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-forum-board/internal/logger"
	"github.com/MKhiriev/go-forum-board/internal/store"
	"github.com/MKhiriev/go-forum-board/models"
)

// forumService is the concrete implementation of ForumService.
// Posting operations resolve the caller's session through the AuthService
// before touching storage; read operations work for anonymous visitors.
type forumService struct {
	// threadRepository is the data-access layer for threads.
	threadRepository store.ThreadRepository

	// commentRepository is the data-access layer for comments.
	commentRepository store.CommentRepository

	// userRepository looks up thread authors for the single-thread view.
	userRepository store.UserRepository

	// auth resolves session tokens to accounts for posting operations.
	auth AuthService

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewForumService constructs a new ForumService wired to the given
// repositories and AuthService.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewForumService(threadRepository store.ThreadRepository, commentRepository store.CommentRepository, userRepository store.UserRepository, auth AuthService, logger *logger.Logger) ForumService {
	return &forumService{
		threadRepository:  threadRepository,
		commentRepository: commentRepository,
		userRepository:    userRepository,
		auth:              auth,
		logger:            logger,
	}
}

// ListThreads returns every thread with its author, newest first.
func (f *forumService) ListThreads(ctx context.Context) ([]models.ThreadWithAuthor, error) {
	threads, err := f.threadRepository.ListThreadsWithAuthors(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("thread listing failed")
		return nil, fmt.Errorf("thread listing failed: %w", err)
	}

	return threads, nil
}

// PostThread creates a new thread on behalf of the session owner.
//
// The title must be non-blank; the link is optional and kept only when
// non-blank. The creation timestamp is assigned here so that both storage
// backends record the same value the service returns.
//
// Returns the persisted thread or:
//   - ErrUnauthenticated if the session token does not resolve to an account.
//   - ErrInvalidDataProvided if the title is blank.
//   - A wrapped storage error if the insert fails.
func (f *forumService) PostThread(ctx context.Context, token string, title string, link *string) (models.Thread, error) {
	log := logger.FromContext(ctx)

	author, err := f.auth.UserFromSession(ctx, token)
	if err != nil {
		return models.Thread{}, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		log.Error().Str("username", author.Username).Msg("blank thread title provided")
		return models.Thread{}, ErrInvalidDataProvided
	}
	link = normalizeLink(link)

	thread, err := f.threadRepository.CreateThread(ctx, models.Thread{
		Title:     title,
		Link:      link,
		AuthorID:  author.ID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("username", author.Username).Str("title", title).Msg("thread creation ended with error")
		return models.Thread{}, fmt.Errorf("thread creation ended with error: %w", err)
	}

	return thread, nil
}

// ViewThread returns one thread with its author and every comment.
//
// No session is required; the token only determines the ViewerLoggedIn flag
// of the returned page, which the client uses to decide whether to render
// posting forms.
//
// Returns the assembled page or:
//   - store.ErrThreadNotFound (wrapped) if no such thread exists.
//   - A wrapped storage error if any lookup fails.
func (f *forumService) ViewThread(ctx context.Context, token string, threadID int64) (models.ThreadPage, error) {
	log := logger.FromContext(ctx)

	thread, err := f.threadRepository.GetThreadByID(ctx, threadID)
	if err != nil {
		log.Err(err).Int64("threadID", threadID).Msg("thread lookup failed")
		return models.ThreadPage{}, fmt.Errorf("thread lookup failed: %w", err)
	}

	author, err := f.userRepository.FindUserByID(ctx, thread.AuthorID)
	if err != nil {
		log.Err(err).Int64("threadID", threadID).Int64("authorID", thread.AuthorID).Msg("thread author lookup failed")
		return models.ThreadPage{}, fmt.Errorf("thread author lookup failed: %w", err)
	}

	comments, err := f.commentRepository.ListCommentsForThreadWithAuthors(ctx, threadID)
	if err != nil {
		log.Err(err).Int64("threadID", threadID).Msg("comment listing failed")
		return models.ThreadPage{}, fmt.Errorf("comment listing failed: %w", err)
	}

	_, viewerErr := f.auth.UserFromSession(ctx, token)

	return models.ThreadPage{
		Thread:         thread,
		Author:         author,
		Comments:       comments,
		ViewerLoggedIn: viewerErr == nil,
	}, nil
}

// PostComment creates a comment in the given thread on behalf of the
// session owner.
//
// The content must be non-blank and the thread must exist. A non-nil
// parentCommentID must name an existing comment of the same thread;
// replies may not cross thread boundaries.
//
// Returns the persisted comment or:
//   - ErrUnauthenticated if the session token does not resolve to an account.
//   - ErrInvalidDataProvided if the content is blank.
//   - store.ErrThreadNotFound (wrapped) if no such thread exists.
//   - ErrInvalidParent if the parent comment is missing or belongs to a
//     different thread.
//   - A wrapped storage error if the insert fails.
func (f *forumService) PostComment(ctx context.Context, token string, threadID int64, content string, parentCommentID *int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	author, err := f.auth.UserFromSession(ctx, token)
	if err != nil {
		return models.Comment{}, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		log.Error().Str("username", author.Username).Int64("threadID", threadID).Msg("blank comment content provided")
		return models.Comment{}, ErrInvalidDataProvided
	}

	if _, err := f.threadRepository.GetThreadByID(ctx, threadID); err != nil {
		log.Err(err).Int64("threadID", threadID).Msg("thread lookup failed")
		return models.Comment{}, fmt.Errorf("thread lookup failed: %w", err)
	}

	if parentCommentID != nil {
		parent, err := f.commentRepository.GetCommentByID(ctx, *parentCommentID)
		if err != nil {
			log.Err(err).Int64("threadID", threadID).Int64("parentCommentID", *parentCommentID).Msg("parent comment lookup failed")
			return models.Comment{}, fmt.Errorf("%w: %w", ErrInvalidParent, err)
		}
		if parent.ThreadID != threadID {
			log.Error().
				Int64("threadID", threadID).
				Int64("parentCommentID", *parentCommentID).
				Int64("parentThreadID", parent.ThreadID).
				Msg("parent comment belongs to another thread")
			return models.Comment{}, ErrInvalidParent
		}
	}

	comment, err := f.commentRepository.CreateComment(ctx, models.Comment{
		Content:         content,
		ThreadID:        threadID,
		AuthorID:        author.ID,
		ParentCommentID: parentCommentID,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("username", author.Username).Int64("threadID", threadID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return comment, nil
}

// normalizeLink trims the optional thread link and collapses blank values
// to nil so that storage holds either a real URL or NULL.
func normalizeLink(link *string) *string {
	if link == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*link)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
