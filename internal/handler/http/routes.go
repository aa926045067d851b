package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Route("/api/gallery", func(r chi.Router) {
		r.Post("/upload", h.uploadItem)
		r.Get("/items", h.listItems)
		r.Post("/delete", h.deleteItem)
	})
	router.Get("/files/{id}", h.serveFile)
	router.Get("/api/version", h.getServerVersion)

	return router
}
