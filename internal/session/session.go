// Package session implements the identity session component: opaque signed
// tokens binding a browser session to a username.
//
// Tokens are stateless HMAC-SHA256 JWTs; no server-side session table
// exists. Revocation therefore amounts to the client discarding its cookie;
// an expired or thrown-away token simply stops resolving.
package session

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-forum-board/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Manager issues and resolves session tokens. All state is read-only after
// construction, so a single Manager is safe for concurrent use.
type Manager struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey []byte

	// issuer is the "iss" claim embedded in every issued token.
	// Tokens carrying a different issuer are rejected during resolution.
	issuer string

	// ttl controls how long a newly issued token remains valid.
	ttl time.Duration
}

// NewManager constructs a Manager from the auth configuration. The sign key
// must be non-empty; config validation guarantees that before startup
// completes.
func NewManager(cfg config.Auth) *Manager {
	return &Manager{
		signKey: []byte(cfg.TokenSignKey),
		issuer:  cfg.TokenIssuer,
		ttl:     cfg.TokenDuration,
	}
}

// Issue produces a signed token binding a session to username.
//
// The token carries the standard claims:
//   - Issuer    (iss): the configured issuer name
//   - Subject   (sub): the username
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus the configured duration
//
// Returns [ErrEmptyUsername] if username is empty, or a wrapped error if
// signing fails.
func (m *Manager) Issue(username string) (string, error) {
	if username == "" {
		return "", ErrEmptyUsername
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return signed, nil
}

// Resolve returns the username bound to tokenString if the token is valid
// and unexpired.
//
// A missing, tampered, or expired token yields ("", false) rather than an error,
// since "not logged in" is a normal state for a forum visitor. Signature,
// issuer, signing method, and expiry are all verified before the subject
// claim is trusted.
func (m *Manager) Resolve(tokenString string) (string, bool) {
	if tokenString == "" {
		return "", false
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return m.signKey, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", false
	}

	username, err := token.Claims.GetSubject()
	if err != nil || username == "" {
		return "", false
	}

	return username, true
}
