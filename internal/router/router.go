// Package router sets up the HTTP routes and middleware chain for the
// microcms API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"microcms/internal/handlers"
	"microcms/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(categories *handlers.Categories, posts *handlers.Posts) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/categories", func(r chi.Router) {
		r.Post("/", categories.Create)
		r.Get("/", categories.List)
		r.Get("/{id}", categories.Get)
		r.Put("/{id}", categories.Update)
		r.Delete("/{id}", categories.Delete)
	})

	r.Route("/posts", func(r chi.Router) {
		r.Post("/", posts.Create)
		r.Get("/", posts.List)
		r.Get("/{slug}", posts.Get)
		r.Put("/{slug}", posts.Update)
		r.Delete("/{slug}", posts.Delete)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
