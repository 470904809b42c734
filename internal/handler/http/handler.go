package http

import (
	"github.com/MKhiriev/go-forum-board/internal/logger"
	"github.com/MKhiriev/go-forum-board/internal/service"
	"github.com/MKhiriev/go-forum-board/internal/session"
)

type Handler struct {
	services *service.Services

	// sessions verifies session tokens at the transport layer; only the
	// non-rejecting withSession middleware uses it, for log enrichment.
	sessions *session.Manager

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		logger:   logger,
	}
}
