// Copyright (c) 2026 Foodieblog. All rights reserved.

// Command api is the entry point for the Foodieblog HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/foodieblog/api/internal/api"
	"github.com/foodieblog/api/internal/auth"
	"github.com/foodieblog/api/internal/categories"
	"github.com/foodieblog/api/internal/comments"
	"github.com/foodieblog/api/internal/platform/config"
	"github.com/foodieblog/api/internal/platform/constants"
	"github.com/foodieblog/api/internal/platform/migration"
	pgstore "github.com/foodieblog/api/internal/platform/postgres"
	redisstore "github.com/foodieblog/api/internal/platform/redis"
	"github.com/foodieblog/api/internal/platform/sec"
	"github.com/foodieblog/api/internal/posts"
	"github.com/foodieblog/api/internal/stats"
	"github.com/foodieblog/api/internal/users"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	tokens := sec.NewTokenService(cfg.JWTSecret, cfg.JWTAccessExpiryMs, cfg.JWTRefreshExpiry)

	// ── 7. Health handler (wired with real dependency checkers) ───────────
	healthHandler := api.NewHealthHandler(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := users.NewPostgresRepository(pool)
	userService := users.NewService(userRepository, log)
	userHandler := users.NewHandler(userService)

	sessionRepository := auth.NewPostgresSessionRepository(pool)
	authService := auth.NewService(sessionRepository, userRepository, tokens, log)
	authHandler := auth.NewHandler(authService)

	categoryRepository := categories.NewPostgresRepository(pool)
	categoryService := categories.NewService(categoryRepository, log)
	categoryHandler := categories.NewHandler(categoryService)

	postRepository := posts.NewPostgresRepository(pool)
	postService := posts.NewService(postRepository, categoryRepository, log)
	postHandler := posts.NewHandler(postService)

	commentRepository := comments.NewPostgresRepository(pool)
	commentService := comments.NewService(commentRepository, postRepository, log)
	commentHandler := comments.NewHandler(commentService)

	statsRepository := stats.NewPostgresRepository(pool)
	statsCache := stats.NewRedisCache(rdb)
	statsService := stats.NewService(statsRepository, statsCache, log)
	statsHandler := stats.NewHandler(statsService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	handlers := api.Handlers{
		Health:     healthHandler,
		Auth:       authHandler,
		Users:      userHandler,
		Categories: categoryHandler,
		Posts:      postHandler,
		Comments:   commentHandler,
		Stats:      statsHandler,
	}

	server := api.NewServer(serverCtx, cfg, log, tokens, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failed",
			slog.String("step", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
