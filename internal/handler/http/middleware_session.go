package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-forum-board/internal/logger"
	"github.com/MKhiriev/go-forum-board/internal/utils"
	"github.com/rs/zerolog"
)

// withSession resolves the session token carried by the request, if any.
//
// Unlike a gatekeeping auth middleware, withSession never rejects: reading
// the forum is open to everyone, and each posting operation re-validates the
// session against storage itself. On a resolvable token the middleware only
// enriches the request: the username is stored in the context under
// [utils.UsernameCtxKey] and added to the request-scoped logger so that
// access log lines identify the acting user.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionTokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		username, ok := h.sessions.Resolve(token)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UsernameCtxKey, username)

		log := logger.FromContext(ctx)
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("username", username)
		})

		next.ServeHTTP(w, r.WithContext(log.WithContext(ctx)))
	})
}
