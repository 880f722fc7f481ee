// Copyright (c) 2026 Foodieblog. All rights reserved.

package comments

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/internal/platform/middleware"
	"github.com/foodieblog/api/internal/platform/request"
	"github.com/foodieblog/api/internal/platform/respond"
	"github.com/foodieblog/api/internal/platform/sec"
	"github.com/foodieblog/api/internal/platform/validate"
	"github.com/foodieblog/api/pkg/pagination"
)

// # HTTP Transport

// Handler exposes the comment endpoints over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes assembles the comment sub-router: visible reads are public,
// authoring needs an account, moderation needs the ADMIN role.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/by-post/{postId}", handler.listVisible)

	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)
		authed.Post("/", handler.create)
		authed.Get("/my", handler.myComments)
	})

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Get("/", handler.list)
		admin.Put("/{id}", handler.update)
		admin.Delete("/{id}", handler.delete)
		admin.Put("/{id}/hide", handler.hide)
		admin.Put("/{id}/show", handler.show)
	})

	// After the static paths so "my" never parses as an ID.
	router.Get("/{id}", handler.getVisible)

	return router
}

// # Public Read Side

func (handler *Handler) listVisible(writer http.ResponseWriter, req *http.Request) {
	postID, err := request.ID(req, "postId")
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	params := pagination.FromRequest(req)
	items, total, err := handler.service.ListVisible(req.Context(), postID, params)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	respond.Paginated(writer, items, pagination.NewMeta(params.Page, params.Size, int(total)))
}

func (handler *Handler) getVisible(writer http.ResponseWriter, req *http.Request) {
	id, err := request.ID(req, "id")
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	comment, err := handler.service.GetVisible(req.Context(), id)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, comment)
}

// # Authoring

type createCommentRequest struct {
	PostID  int64  `json:"postId"`
	Content string `json:"content"`
}

func (handler *Handler) create(writer http.ResponseWriter, req *http.Request) {
	authorID, err := request.RequiredUserID(req)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	var body createCommentRequest
	if err := request.DecodeJSON(req, &body); err != nil {
		respond.Error(writer, req, err)
		return
	}

	validator := validate.New().
		Required("content", body.Content).
		MaxLen("content", body.Content, 2000).
		Custom("postId", body.PostID <= 0, "A valid post id is required")
	if err := validator.Err(); err != nil {
		respond.Error(writer, req, err)
		return
	}

	comment, err := handler.service.Create(req.Context(), authorID, body.PostID, body.Content)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.Created(writer, comment)
}

func (handler *Handler) myComments(writer http.ResponseWriter, req *http.Request) {
	authorID, err := request.RequiredUserID(req)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	params := pagination.FromRequest(req)
	items, total, err := handler.service.ListByAuthor(req.Context(), authorID, params)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	respond.Paginated(writer, items, pagination.NewMeta(params.Page, params.Size, int(total)))
}

// # Moderation

func (handler *Handler) list(writer http.ResponseWriter, req *http.Request) {
	filter := ListFilter{
		PostID:   int64(request.QueryInt(req, "postId", 0)),
		AuthorID: int64(request.QueryInt(req, "authorId", 0)),
		Status:   request.Query(req, "status", ""),
	}
	if filter.Status != "" && filter.Status != StatusVisible && filter.Status != StatusHidden {
		respond.Error(writer, req, apperr.New(apperr.CodeInvalidQueryParam))
		return
	}

	params := pagination.FromRequest(req)
	items, total, err := handler.service.List(req.Context(), filter, params)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	respond.Paginated(writer, items, pagination.NewMeta(params.Page, params.Size, int(total)))
}

type updateCommentRequest struct {
	Content string `json:"content"`
}

func (handler *Handler) update(writer http.ResponseWriter, req *http.Request) {
	id, err := request.ID(req, "id")
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	var body updateCommentRequest
	if err := request.DecodeJSON(req, &body); err != nil {
		respond.Error(writer, req, err)
		return
	}

	validator := validate.New().
		Required("content", body.Content).
		MaxLen("content", body.Content, 2000)
	if err := validator.Err(); err != nil {
		respond.Error(writer, req, err)
		return
	}

	comment, err := handler.service.Update(req.Context(), id, body.Content)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, comment)
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

func (handler *Handler) hide(writer http.ResponseWriter, req *http.Request) {
	handler.setStatus(writer, req, handler.service.Hide)
}

func (handler *Handler) show(writer http.ResponseWriter, req *http.Request) {
	handler.setStatus(writer, req, handler.service.Show)
}

func (handler *Handler) setStatus(writer http.ResponseWriter, req *http.Request, change func(ctx context.Context, id int64) (*Comment, error)) {
	id, err := request.ID(req, "id")
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	comment, err := change(req.Context(), id)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, comment)
}
