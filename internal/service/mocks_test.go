// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-forum-board/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findUserByIDFn       func(ctx context.Context, id int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, id)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.ThreadRepository
// ─────────────────────────────────────────────

type mockThreadRepository struct {
	createThreadFn           func(ctx context.Context, thread models.Thread) (models.Thread, error)
	getThreadByIDFn          func(ctx context.Context, id int64) (models.Thread, error)
	listThreadsWithAuthorsFn func(ctx context.Context) ([]models.ThreadWithAuthor, error)
}

func (m *mockThreadRepository) CreateThread(ctx context.Context, thread models.Thread) (models.Thread, error) {
	if m.createThreadFn != nil {
		return m.createThreadFn(ctx, thread)
	}
	return thread, nil
}

func (m *mockThreadRepository) GetThreadByID(ctx context.Context, id int64) (models.Thread, error) {
	if m.getThreadByIDFn != nil {
		return m.getThreadByIDFn(ctx, id)
	}
	return models.Thread{}, nil
}

func (m *mockThreadRepository) ListThreadsWithAuthors(ctx context.Context) ([]models.ThreadWithAuthor, error) {
	if m.listThreadsWithAuthorsFn != nil {
		return m.listThreadsWithAuthorsFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.CommentRepository
// ─────────────────────────────────────────────

type mockCommentRepository struct {
	createCommentFn                   func(ctx context.Context, comment models.Comment) (models.Comment, error)
	getCommentByIDFn                  func(ctx context.Context, id int64) (models.Comment, error)
	listCommentsForThreadWithAuthorFn func(ctx context.Context, threadID int64) ([]models.CommentWithAuthor, error)
}

func (m *mockCommentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if m.createCommentFn != nil {
		return m.createCommentFn(ctx, comment)
	}
	return comment, nil
}

func (m *mockCommentRepository) GetCommentByID(ctx context.Context, id int64) (models.Comment, error) {
	if m.getCommentByIDFn != nil {
		return m.getCommentByIDFn(ctx, id)
	}
	return models.Comment{}, nil
}

func (m *mockCommentRepository) ListCommentsForThreadWithAuthors(ctx context.Context, threadID int64) ([]models.CommentWithAuthor, error) {
	if m.listCommentsForThreadWithAuthorFn != nil {
		return m.listCommentsForThreadWithAuthorFn(ctx, threadID)
	}
	return nil, nil
}
