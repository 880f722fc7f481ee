// Copyright (c) 2026 Foodieblog. All rights reserved.

package categories

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foodieblog/api/internal/platform/middleware"
	"github.com/foodieblog/api/internal/platform/request"
	"github.com/foodieblog/api/internal/platform/respond"
	"github.com/foodieblog/api/internal/platform/sec"
	"github.com/foodieblog/api/internal/platform/validate"
)

// # HTTP Transport

// Handler exposes the category endpoints over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes assembles the category sub-router: reads are public, writes are
// restricted to administrators.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Get("/by-slug/{slug}", handler.getBySlug)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/", handler.create)
		admin.Put("/{id}", handler.update)
		admin.Delete("/{id}", handler.delete)
	})

	return router
}

// # Read Side

func (handler *Handler) list(writer http.ResponseWriter, req *http.Request) {
	items, err := handler.service.List(req.Context())
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, items)
}

func (handler *Handler) get(writer http.ResponseWriter, req *http.Request) {
	id, err := request.ID(req, "id")
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	category, err := handler.service.Get(req.Context(), id)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, category)
}

func (handler *Handler) getBySlug(writer http.ResponseWriter, req *http.Request) {
	category, err := handler.service.GetBySlug(req.Context(), request.Param(req, "slug"))
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, category)
}

// # Write Side

type categoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (handler *Handler) decodeInput(writer http.ResponseWriter, req *http.Request) (*Input, bool) {
	var body categoryRequest
	if err := request.DecodeJSON(req, &body); err != nil {
		respond.Error(writer, req, err)
		return nil, false
	}

	validator := validate.New().
		Required("name", body.Name).
		MaxLen("name", body.Name, 100)
	if err := validator.Err(); err != nil {
		respond.Error(writer, req, err)
		return nil, false
	}

	return &Input{Name: body.Name, Description: body.Description}, true
}

func (handler *Handler) create(writer http.ResponseWriter, req *http.Request) {
	input, ok := handler.decodeInput(writer, req)
	if !ok {
		return
	}

	category, err := handler.service.Create(req.Context(), *input)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.Created(writer, category)
}

func (handler *Handler) update(writer http.ResponseWriter, req *http.Request) {
	id, err := request.ID(req, "id")
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	input, ok := handler.decodeInput(writer, req)
	if !ok {
		return
	}

	category, err := handler.service.Update(req.Context(), id, *input)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, category)
}

func (handler *Handler) delete(writer http.ResponseWriter, req *http.Request) {
	id, err := request.ID(req, "id")
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	if err := handler.service.Delete(req.Context(), id); err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.NoContent(writer)
}
