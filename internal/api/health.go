// Copyright (c) 2026 Foodieblog. All rights reserved.

package api

import (
	"log/slog"
	"net/http"

	"github.com/foodieblog/api/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for /health.
type HealthDependencies struct {
	// CheckDatabase runs SELECT 1 against the PostgreSQL pool.
	CheckDatabase func() error

	// CheckCache pings the Redis client.
	CheckCache func() error
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandler creates the GET /health http.HandlerFunc.
func NewHealthHandler(deps HealthDependencies, logger *slog.Logger) http.HandlerFunc {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.health
}

// health reports overall service health: the process is up and both the
// database and the cache answer. Any failing dependency degrades the
// response to 503.
func (handler *healthHandler) health(writer http.ResponseWriter, request *http.Request) {
	type checkResult struct {
		Name  string `json:"name"`
		IsOK  bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}

	checks := []struct {
		name string
		run  func() error
	}{
		{"postgres", handler.dependencies.CheckDatabase},
		{"redis", handler.dependencies.CheckCache},
	}

	results := make([]checkResult, 0, len(checks))
	healthy := true

	for _, check := range checks {
		if check.run == nil {
			continue
		}
		result := checkResult{Name: check.name, IsOK: true}
		if err := check.run(); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			healthy = false
			handler.logger.Error("health_check_failed",
				slog.String("dependency", check.name),
				slog.Any("error", err),
			)
		}
		results = append(results, result)
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	respond.JSON(writer, httpStatus, map[string]any{
		"status": status,
		"checks": results,
	})
}
