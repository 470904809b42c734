package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withSession)

	router.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.register)
		r.Post("/user/login", h.login)
		r.Post("/user/logout", h.logout)

		r.Get("/threads", h.listThreads)
		r.Post("/threads", h.postThread)
		r.Get("/threads/{threadID}", h.viewThread)
		r.Post("/threads/{threadID}/comments", h.postComment)
	})

	return router
}
