// Copyright (c) 2026 Foodieblog. All rights reserved.

package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foodieblog/api/internal/platform/middleware"
	"github.com/foodieblog/api/internal/platform/request"
	"github.com/foodieblog/api/internal/platform/respond"
	"github.com/foodieblog/api/internal/platform/sec"
)

// # HTTP Transport

// Handler exposes the dashboard aggregates over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes assembles the stats sub-router. Everything here is ADMIN-only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Get("/daily", handler.daily)
	router.Get("/top-authors", handler.topAuthors)

	return router
}

func (handler *Handler) daily(writer http.ResponseWriter, req *http.Request) {
	days := request.QueryInt(req, "days", DailyDaysDefault)

	counts, err := handler.service.Daily(req.Context(), days)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, counts)
}

func (handler *Handler) topAuthors(writer http.ResponseWriter, req *http.Request) {
	days := request.QueryInt(req, "days", TopAuthorsDaysDefault)
	limit := request.QueryInt(req, "limit", TopAuthorsLimitDefault)

	authors, err := handler.service.TopAuthors(req.Context(), days, limit)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, authors)
}
