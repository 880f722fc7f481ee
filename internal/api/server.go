// Copyright (c) 2026 Foodieblog. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/foodieblog/api/internal/auth"
	"github.com/foodieblog/api/internal/categories"
	"github.com/foodieblog/api/internal/comments"
	"github.com/foodieblog/api/internal/platform/config"
	"github.com/foodieblog/api/internal/platform/constants"
	"github.com/foodieblog/api/internal/platform/middleware"
	"github.com/foodieblog/api/internal/platform/sec"
	"github.com/foodieblog/api/internal/posts"
	"github.com/foodieblog/api/internal/stats"
	"github.com/foodieblog/api/internal/users"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Health is the /health handler — checks the process and its dependencies.
	Health http.HandlerFunc

	// Auth handles login, refresh, logout, and the identity echo.
	Auth *auth.Handler

	// Users handles registration, self-service profile, and the admin directory.
	Users *users.Handler

	// Categories manages the post taxonomy.
	Categories *categories.Handler

	// Posts manages the draft/published content lifecycle.
	Posts *posts.Handler

	// Comments manages reader discussion and its moderation.
	Comments *comments.Handler

	// Stats serves the admin dashboard aggregates.
	Stats *stats.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, tokens *sec.TokenService, h Handlers) *Server {
	r := chi.NewRouter()

	limiter := middleware.NewFixedWindowLimiter(
		context,
		cfg.RateLimitMaxRequests,
		int(cfg.RateLimitWindowSeconds),
		cfg.MaxBodyBytes,
	)

	// # Middleware Chain
	// Global middleware applied in order of execution. CleanPath runs before
	// the rate limiters so path aliases collapse before anything keys on them.
	r.Use(chimw.CleanPath)
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.GlobalRateLimit(context))
	r.Use(limiter.Handler)
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(tokens))
	r.Use(middleware.CORS(cfg))

	// # Infrastructure Endpoints
	// Unauthenticated health probe for container orchestration.
	r.Get("/health", h.Health)

	// # Application API
	// Domain-specific route groups mounted under the /api prefix.
	r.Route("/api", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/users", h.Users.Routes())
		api.Mount("/categories", h.Categories.Routes())
		api.Mount("/posts", h.Posts.Routes())
		api.Mount("/comments", h.Comments.Routes())
		api.Mount("/stats", h.Stats.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
