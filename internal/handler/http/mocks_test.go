// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-forum-board/internal/config"
	"github.com/MKhiriev/go-forum-board/internal/logger"
	"github.com/MKhiriev/go-forum-board/internal/service"
	"github.com/MKhiriev/go-forum-board/internal/session"
	"github.com/MKhiriev/go-forum-board/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	loginFn           func(ctx context.Context, credentials models.Credentials) (models.User, error)
	sessionTokenFn    func(ctx context.Context, user models.User) (string, error)
	userFromSessionFn func(ctx context.Context, token string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.registerFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) SessionToken(ctx context.Context, user models.User) (string, error) {
	if m.sessionTokenFn != nil {
		return m.sessionTokenFn(ctx, user)
	}
	return "signed.session.token", nil
}

func (m *mockAuthService) UserFromSession(ctx context.Context, token string) (models.User, error) {
	if m.userFromSessionFn != nil {
		return m.userFromSessionFn(ctx, token)
	}
	return models.User{}, service.ErrUnauthenticated
}

// ─────────────────────────────────────────────
// Mock ForumService
// ─────────────────────────────────────────────

// mockForumService implements service.ForumService for unit tests.
type mockForumService struct {
	listThreadsFn func(ctx context.Context) ([]models.ThreadWithAuthor, error)
	postThreadFn  func(ctx context.Context, token, title string, link *string) (models.Thread, error)
	viewThreadFn  func(ctx context.Context, token string, threadID int64) (models.ThreadPage, error)
	postCommentFn func(ctx context.Context, token string, threadID int64, content string, parentCommentID *int64) (models.Comment, error)
}

func (m *mockForumService) ListThreads(ctx context.Context) ([]models.ThreadWithAuthor, error) {
	return m.listThreadsFn(ctx)
}

func (m *mockForumService) PostThread(ctx context.Context, token string, title string, link *string) (models.Thread, error) {
	return m.postThreadFn(ctx, token, title, link)
}

func (m *mockForumService) ViewThread(ctx context.Context, token string, threadID int64) (models.ThreadPage, error) {
	return m.viewThreadFn(ctx, token, threadID)
}

func (m *mockForumService) PostComment(ctx context.Context, token string, threadID int64, content string, parentCommentID *int64) (models.Comment, error) {
	return m.postCommentFn(ctx, token, threadID, content, parentCommentID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler backed by the given service mocks and a
// real session manager (so cookie tokens resolve in middleware tests).
func newTestHandler(t *testing.T, auth service.AuthService, forum service.ForumService) *Handler {
	t.Helper()

	sessions := session.NewManager(config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-forum-board",
		TokenDuration: time.Hour,
	})

	return NewHandler(&service.Services{
		AuthService:  auth,
		ForumService: forum,
	}, sessions, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
