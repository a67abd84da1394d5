// Package server exposes the workout log over HTTP as a JSON API. It
// is a thin adapter: validation and table semantics live in the models
// and store packages, and handlers only translate errors to statuses.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/setlog/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store   *store.Store
	logPath string
	apiKey  string
	log     *slog.Logger
	router  chi.Router
}

// New creates a new Server with all routes configured. logPath is the
// CSV file targeted by the explicit save endpoint.
func New(st *store.Store, logPath, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:   st,
		logPath: logPath,
		apiKey:  apiKey,
		log:     log,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Read-only endpoints
	s.router.Get("/api/v1/sets", s.handleListSets)
	s.router.Get("/api/v1/sets/{index}", s.handleGetSet)
	s.router.Get("/api/v1/summary", s.handleSummary)

	// Mutating endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/sets", s.handleAddSet)
		r.Put("/api/v1/sets/{index}", s.handleUpdateSet)
		r.Delete("/api/v1/sets/{index}", s.handleDeleteSet)
		r.Post("/api/v1/save", s.handleSave)
	})
}
