package service

import (
	"context"

	"github.com/MKhiriev/go-forum-board/models"
)

// AuthService manages forum accounts and their browser sessions.
type AuthService interface {
	// Register creates a new account from the given credentials.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login verifies the given credentials against the stored account.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// SessionToken issues a signed session token for the given user.
	SessionToken(ctx context.Context, user models.User) (string, error)

	// UserFromSession resolves a session token back to the account that
	// owns it. Returns ErrUnauthenticated for absent, tampered or expired
	// tokens, and for sessions whose account no longer exists.
	UserFromSession(ctx context.Context, token string) (models.User, error)
}

// ForumService implements the discussion board itself: listing and posting
// threads, viewing a thread, and posting comments.
type ForumService interface {
	// ListThreads returns every thread with its author, newest first.
	ListThreads(ctx context.Context) ([]models.ThreadWithAuthor, error)

	// PostThread creates a new thread on behalf of the session owner.
	PostThread(ctx context.Context, token string, title string, link *string) (models.Thread, error)

	// ViewThread returns one thread with its author and all comments.
	// Viewing requires no session; token is only used to report whether
	// the viewer is logged in.
	ViewThread(ctx context.Context, token string, threadID int64) (models.ThreadPage, error)

	// PostComment creates a comment in the given thread on behalf of the
	// session owner. A non-nil parentCommentID must name an existing
	// comment of the same thread.
	PostComment(ctx context.Context, token string, threadID int64, content string, parentCommentID *int64) (models.Comment, error)
}
