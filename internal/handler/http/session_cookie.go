package http

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "forum_session"

// setSessionCookie attaches the signed session token to the response.
// The cookie is HttpOnly so that page scripts cannot read the token.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie overwrites the session cookie with an already-expired
// one, instructing the browser to drop it. Tokens are stateless, so this is
// the whole logout mechanism.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

// sessionTokenFromRequest extracts the session token from the request.
//
// The session cookie is the primary carrier; non-browser clients may instead
// send the token as a bearer credential in the "Authorization" header.
// An absent token yields an empty string, which downstream code treats as an
// anonymous visitor.
func sessionTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		if token, err := getTokenFromAuthHeader(authHeader); err == nil {
			return token
		}
	}

	return ""
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

// Sentinel errors used when parsing the "Authorization" HTTP header.
// Callers can match against them with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
