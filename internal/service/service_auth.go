// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-forum-board/internal/crypto"
	"github.com/MKhiriev/go-forum-board/internal/logger"
	"github.com/MKhiriev/go-forum-board/internal/session"
	"github.com/MKhiriev/go-forum-board/internal/store"
	"github.com/MKhiriev/go-forum-board/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and session token
// lifecycle using a UserRepository for persistence, a CredentialService for
// password hashing, and a session.Manager for token signing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// credentials hashes passwords at registration and verifies them at login.
	credentials crypto.CredentialService

	// sessions issues and resolves the signed session tokens carried in the
	// browser cookie.
	sessions *session.Manager

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository, credential hasher, and session manager.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, credentials crypto.CredentialService, sessions *session.Manager, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		credentials:    credentials,
		sessions:       sessions,
		logger:         logger,
	}
}

// Register creates a new account.
//
// It validates that Username, Email, and Password are non-empty, hashes the
// password, and delegates persistence to the UserRepository. The plaintext
// password is never stored or logged.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if Username, Email, or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken, see store.ErrUsernameTaken).
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.credentials.HashPassword(credentials.Password)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		Email:        credentials.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that Username and Password are non-empty, looks up the account
// by username, and verifies the password against the stored credential.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found, see store.ErrUserNotFound).
//   - ErrWrongPassword if the password does not verify.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	match, err := a.credentials.VerifyPassword(foundUser.PasswordHash, credentials.Password)
	if err != nil {
		log.Err(err).
			Int64("id", foundUser.ID).
			Str("username", foundUser.Username).
			Msg("stored credential could not be verified")
		return models.User{}, fmt.Errorf("stored credential could not be verified: %w", err)
	}
	if !match {
		log.Error().
			Int64("id", foundUser.ID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// SessionToken issues a signed session token for the given user.
//
// Returns the token string on success or a wrapped error if signing fails.
func (a *authService) SessionToken(ctx context.Context, user models.User) (string, error) {
	token, err := a.sessions.Issue(user.Username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", user.Username).Msg("session token creation failed")
		return "", fmt.Errorf("session token creation failed: %w", err)
	}

	return token, nil
}

// UserFromSession resolves a session token back to its account.
//
// An absent, tampered, or expired token yields ErrUnauthenticated. A token
// that verifies but names an account that no longer exists also yields
// ErrUnauthenticated (wrapped over store.ErrUserNotFound) so that stale
// sessions behave like logged-out visitors rather than server faults.
func (a *authService) UserFromSession(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	username, ok := a.sessions.Resolve(token)
	if !ok {
		return models.User{}, ErrUnauthenticated
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Error().Str("username", username).Msg("session names a deleted account")
			return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
		}
		log.Err(err).Str("username", username).Msg("session user lookup failed")
		return models.User{}, fmt.Errorf("session user lookup failed: %w", err)
	}

	return foundUser, nil
}
