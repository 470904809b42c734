package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-forum-board/internal/app"
	"github.com/MKhiriev/go-forum-board/internal/service"
	"github.com/MKhiriev/go-forum-board/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrUnauthenticated:     http.StatusUnauthorized,
	service.ErrInvalidParent:       http.StatusBadRequest,

	store.ErrUsernameTaken:       http.StatusConflict,
	store.ErrUserNotFound:        http.StatusNotFound,
	store.ErrThreadNotFound:      http.StatusNotFound,
	store.ErrCommentNotFound:     http.StatusNotFound,
	store.ErrForeignKeyViolation: http.StatusConflict,
	store.ErrConstraintViolation: http.StatusBadRequest,
	store.ErrStoreUnavailable:    http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap pairs the sentinels that deserve a client-readable body
// with their wording. Anything else answers with a generic message so that
// internal details never reach the client.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: app.MsgInvalidDataProvided,
	service.ErrWrongPassword:       app.MsgInvalidLoginPassword,
	service.ErrUnauthenticated:     app.MsgAuthenticationRequired,
	service.ErrInvalidParent:       app.MsgInvalidParentComment,

	store.ErrUsernameTaken:  app.MsgUsernameAlreadyExists,
	store.ErrThreadNotFound: app.MsgThreadNotFound,
}

func statusFromError(err error) int {
	// ErrUnauthenticated wraps store.ErrUserNotFound for stale sessions, and
	// ErrInvalidParent wraps store.ErrCommentNotFound for missing parents;
	// map iteration order must not let the wrapped sentinel win.
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrInvalidParent):
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return app.MsgAuthenticationRequired
	case errors.Is(err, service.ErrInvalidParent):
		return app.MsgInvalidParentComment
	}
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	if statusFromError(err) == http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	return http.StatusText(statusFromError(err))
}

// writeError translates a service or storage error into an HTTP response.
func writeError(w http.ResponseWriter, err error) {
	http.Error(w, messageFromError(err), statusFromError(err))
}
