package models

import "time"

// Comment is a reply attached to a thread by an authenticated user.
// A comment may reference another comment in the same thread as its parent,
// which is how reply nesting is expressed. Comments are immutable after
// creation.
type Comment struct {
	// ID is the surrogate key assigned by the store.
	ID int64 `json:"id"`

	// Content is the non-empty comment body.
	Content string `json:"content"`

	// ThreadID references the thread this comment belongs to.
	ThreadID int64 `json:"-"`

	// AuthorID references the user who wrote the comment.
	AuthorID int64 `json:"-"`

	// ParentCommentID, when non-nil, references another comment in the
	// same thread. Same-thread membership is enforced by the forum
	// service; the foreign key alone only guarantees existence.
	ParentCommentID *int64 `json:"parent_comment_id,omitempty"`

	// CreatedAt is the server-assigned creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

// CommentWithAuthor pairs a comment with its author for thread pages.
type CommentWithAuthor struct {
	Comment Comment `json:"comment"`
	Author  User    `json:"author"`
}

// ThreadPage is the full thread view: the thread itself, its author, all
// comments with their authors in posting order, and whether the viewer's
// session resolved to a logged-in user.
type ThreadPage struct {
	Thread         Thread              `json:"thread"`
	Author         User                `json:"author"`
	Comments       []CommentWithAuthor `json:"comments"`
	ViewerLoggedIn bool                `json:"viewer_logged_in"`
}
