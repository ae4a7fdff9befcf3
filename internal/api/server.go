package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/roamly/places-api/internal/config"
	"github.com/roamly/places-api/internal/service/place"
	"github.com/roamly/places-api/internal/service/user"
)

// Server represents the API server
type Server struct {
	config  config.ServerConfig
	handler http.Handler
	server  *http.Server
}

// NewServer creates a new API server
func NewServer(
	cfg config.ServerConfig,
	corsCfg config.CORSConfig,
	places *place.Service,
	users *user.Service,
	db *sql.DB,
) *Server {
	handlers := NewHandlers(places, users)
	router := SetupRoutes(handlers, NewHealthChecker(db), corsCfg)

	return &Server{
		config:  cfg,
		handler: router,
	}
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing
func (s *Server) Handler() http.Handler {
	return s.handler
}
