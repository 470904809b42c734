package store

import (
	"github.com/MKhiriev/go-forum-board/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository    UserRepository
	ThreadRepository  ThreadRepository
	CommentRepository CommentRepository
}

// NewStorages wires all repositories to the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ThreadRepository:  NewThreadRepository(db, logger),
		CommentRepository: NewCommentRepository(db, logger),
	}
}
