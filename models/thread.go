package models

import "time"

// Thread is a forum discussion thread: a title with an optional link,
// posted by an authenticated user. Threads are immutable after creation
// and are never deleted.
type Thread struct {
	// ID is the surrogate key assigned by the store.
	ID int64 `json:"id"`

	// Title is the non-empty headline of the thread.
	Title string `json:"title"`

	// Link is an optional URL attached to the thread.
	// nil means the thread was posted without a link.
	Link *string `json:"link,omitempty"`

	// AuthorID references the user who created the thread.
	AuthorID int64 `json:"-"`

	// CreatedAt is the server-assigned creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Thread model.
func (t Thread) TableName() string {
	return "threads"
}

// ThreadWithAuthor pairs a thread with its author for listing pages.
type ThreadWithAuthor struct {
	Thread Thread `json:"thread"`
	Author User   `json:"author"`
}
