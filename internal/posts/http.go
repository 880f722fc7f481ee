// Copyright (c) 2026 Foodieblog. All rights reserved.

package posts

import (
	"context"
	"net/http"
	"time"

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

// visitedDateLayout is the query/body format for restaurant visit dates.
const visitedDateLayout = "2006-01-02"

// Handler exposes the post endpoints over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes assembles the post sub-router: reads are public, authoring is
// restricted to administrators.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/by-category/{categoryId}", handler.listByCategory)
	router.Get("/by-user/{userId}", handler.listByUser)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Get("/my", handler.myPosts)
		admin.Post("/", handler.create)
		admin.Put("/{id}", handler.update)
		admin.Delete("/{id}", handler.delete)
		admin.Put("/{id}/publish", handler.publish)
		admin.Put("/{id}/unpublish", handler.unpublish)
	})

	// After the static admin paths so "my" never parses as an ID.
	router.Get("/{id}", handler.get)

	return router
}

// # Read Side

// parseFilter extracts the public listing filter from the query string.
func parseFilter(req *http.Request) (ListFilter, error) {
	filter := ListFilter{
		Keyword:    request.Query(req, "keyword", ""),
		CategoryID: int64(request.QueryInt(req, "categoryId", 0)),
		Status:     request.Query(req, "status", ""),
	}

	if filter.Status != "" && filter.Status != StatusDraft && filter.Status != StatusPublished {
		return filter, apperr.New(apperr.CodeInvalidQueryParam)
	}

	if raw := request.Query(req, "visitedFrom", ""); raw != "" {
		from, err := time.Parse(visitedDateLayout, raw)
		if err != nil {
			return filter, apperr.New(apperr.CodeInvalidQueryParam)
		}
		filter.VisitedFrom = &from
	}
	if raw := request.Query(req, "visitedTo", ""); raw != "" {
		to, err := time.Parse(visitedDateLayout, raw)
		if err != nil {
			return filter, apperr.New(apperr.CodeInvalidQueryParam)
		}
		filter.VisitedTo = &to
	}

	return filter, nil
}

func (handler *Handler) list(writer http.ResponseWriter, req *http.Request) {
	filter, err := parseFilter(req)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	handler.respondPage(writer, req, filter)
}

func (handler *Handler) listByCategory(writer http.ResponseWriter, req *http.Request) {
	categoryID, err := request.ID(req, "categoryId")
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	handler.respondPage(writer, req, ListFilter{CategoryID: categoryID, Status: StatusPublished})
}

func (handler *Handler) listByUser(writer http.ResponseWriter, req *http.Request) {
	authorID, err := request.ID(req, "userId")
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	handler.respondPage(writer, req, ListFilter{AuthorID: authorID, Status: StatusPublished})
}

func (handler *Handler) myPosts(writer http.ResponseWriter, req *http.Request) {
	userID, err := request.RequiredUserID(req)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	// All states: authors see their drafts here.
	handler.respondPage(writer, req, ListFilter{AuthorID: userID})
}

func (handler *Handler) respondPage(writer http.ResponseWriter, req *http.Request, filter ListFilter) {
	params := pagination.FromRequest(req)

	items, total, err := handler.service.List(req.Context(), filter, params)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	respond.Paginated(writer, items, pagination.NewMeta(params.Page, params.Size, int(total)))
}

func (handler *Handler) get(writer http.ResponseWriter, req *http.Request) {
	id, err := request.ID(req, "id")
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	post, err := handler.service.Get(req.Context(), id)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, post)
}

// # Write Side

type postRequest struct {
	Title          string  `json:"title"`
	Content        string  `json:"content"`
	CategoryID     *int64  `json:"categoryId"`
	RestaurantName *string `json:"restaurantName"`
	VisitedDate    *string `json:"visitedDate"`
}

func decodeInput(writer http.ResponseWriter, req *http.Request) (*Input, bool) {
	var body postRequest
	if err := request.DecodeJSON(req, &body); err != nil {
		respond.Error(writer, req, err)
		return nil, false
	}

	validator := validate.New().
		Required("title", body.Title).
		MaxLen("title", body.Title, 200).
		Required("content", body.Content)
	if body.VisitedDate != nil {
		_, err := time.Parse(visitedDateLayout, *body.VisitedDate)
		validator.Custom("visitedDate", err != nil, "Must be a date in YYYY-MM-DD format")
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, req, err)
		return nil, false
	}

	input := &Input{
		Title:          body.Title,
		Content:        body.Content,
		CategoryID:     body.CategoryID,
		RestaurantName: body.RestaurantName,
	}
	if body.VisitedDate != nil {
		visited, _ := time.Parse(visitedDateLayout, *body.VisitedDate)
		input.VisitedDate = &visited
	}

	return input, true
}

func (handler *Handler) create(writer http.ResponseWriter, req *http.Request) {
	authorID, err := request.RequiredUserID(req)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	input, ok := decodeInput(writer, req)
	if !ok {
		return
	}

	post, err := handler.service.Create(req.Context(), authorID, *input)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.Created(writer, post)
}

func (handler *Handler) update(writer http.ResponseWriter, req *http.Request) {
	id, err := request.ID(req, "id")
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	input, ok := decodeInput(writer, req)
	if !ok {
		return
	}

	post, err := handler.service.Update(req.Context(), id, *input)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, post)
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

func (handler *Handler) publish(writer http.ResponseWriter, req *http.Request) {
	handler.transition(writer, req, handler.service.Publish)
}

func (handler *Handler) unpublish(writer http.ResponseWriter, req *http.Request) {
	handler.transition(writer, req, handler.service.Unpublish)
}

func (handler *Handler) transition(writer http.ResponseWriter, req *http.Request, change func(context.Context, int64) (*Post, error)) {
	id, err := request.ID(req, "id")
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	post, err := change(req.Context(), id)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, post)
}
