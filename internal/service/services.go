package service

import (
	"github.com/MKhiriev/go-forum-board/internal/crypto"
	"github.com/MKhiriev/go-forum-board/internal/logger"
	"github.com/MKhiriev/go-forum-board/internal/session"
	"github.com/MKhiriev/go-forum-board/internal/store"
)

type Services struct {
	AuthService  AuthService
	ForumService ForumService
}

func NewServices(storages *store.Storages, credentials crypto.CredentialService, sessions *session.Manager, logger *logger.Logger) *Services {
	authService := NewAuthService(storages.UserRepository, credentials, sessions, logger)

	return &Services{
		AuthService:  authService,
		ForumService: NewForumService(storages.ThreadRepository, storages.CommentRepository, storages.UserRepository, authService, logger),
	}
}
