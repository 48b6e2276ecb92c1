// Package server provides the HTTP API for Adesua.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/osei-labs/adesua/internal/config"
	"github.com/osei-labs/adesua/internal/search"
)

// Server is the HTTP server for the Adesua API.
type Server struct {
	hub    *search.Hub
	config *config.Config
	logger *zap.Logger
	server *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(hub *search.Hub, cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		hub:    hub,
		config: cfg,
		logger: logger,
	}
}

// routes builds the chi router for the API.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalogs", s.handleListCatalogs)
		r.Route("/catalogs/{key}", func(r chi.Router) {
			r.Get("/resources", s.handleListResources)
			r.Get("/categories", s.handleListCategories)
			r.Post("/search", s.handleSearch)
			r.Get("/suggest", s.handleSuggest)
			r.Post("/clicks", s.handleRecordClick)
			r.Get("/history", s.handleHistory)
			r.Post("/sessions", s.handleStartSession)
			r.Delete("/sessions", s.handleEndSession)
		})
		r.Get("/status", s.handleStatus)
	})
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.routes(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
