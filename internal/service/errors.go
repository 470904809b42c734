package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrUnauthenticated = errors.New("authentication required")

	ErrInvalidParent = errors.New("invalid parent comment")
)
