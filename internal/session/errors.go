package session

import "errors"

var (
	// ErrEmptyUsername is returned by [Manager.Issue] when asked to bind a
	// session to an empty username.
	ErrEmptyUsername = errors.New("cannot issue session for empty username")
)
