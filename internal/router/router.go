package router

import (
	"net/http"
	"time"

	"github.com/actuallystonmai/jobrec/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func Setup(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Get("/", h.Page)
		r.Get("/state", h.State)
		r.Post("/session/end", h.EndSession)
		r.Get("/healthz", h.Liveness)
	})
	// Submit outlives the caller; its bound is the recommender client's
	// HTTP_TIMEOUT.
	r.Post("/recommend", h.Submit)

	return r
}
