// Copyright (c) 2026 Foodieblog. All rights reserved.

package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foodieblog/api/internal/platform/middleware"
	"github.com/foodieblog/api/internal/platform/request"
	"github.com/foodieblog/api/internal/platform/respond"
	"github.com/foodieblog/api/internal/platform/sec"
	"github.com/foodieblog/api/internal/platform/validate"
	"github.com/foodieblog/api/pkg/pagination"
)

// # HTTP Transport

// Handler exposes the user endpoints over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes assembles the user sub-router: public signup, self-service profile
// endpoints behind authentication, and the directory behind the ADMIN role.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public registration
	router.Post("/", handler.signup)

	// Self-service (any authenticated account)
	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)
		authed.Get("/me", handler.getMe)
		authed.Put("/me", handler.updateMe)
		authed.Put("/me/password", handler.changePassword)
	})

	// Administration
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Get("/", handler.list)
		admin.Get("/{id}", handler.get)
		admin.Put("/{id}/activate", handler.activate)
		admin.Put("/{id}/deactivate", handler.deactivate)
		admin.Put("/{id}/role", handler.changeRole)
	})

	return router
}

// # Registration

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

func (handler *Handler) signup(writer http.ResponseWriter, req *http.Request) {
	var body signupRequest
	if err := request.DecodeJSON(req, &body); err != nil {
		respond.Error(writer, req, err)
		return
	}

	validator := validate.New().
		Required("email", body.Email).
		Email("email", body.Email).
		Required("password", body.Password).
		MinLen("password", body.Password, 8).
		MaxLen("password", body.Password, 72).
		Required("nickname", body.Nickname).
		MinLen("nickname", body.Nickname, 2).
		MaxLen("nickname", body.Nickname, 30)
	if err := validator.Err(); err != nil {
		respond.Error(writer, req, err)
		return
	}

	user, err := handler.service.Signup(req.Context(), SignupInput{
		Email:    body.Email,
		Password: body.Password,
		Nickname: body.Nickname,
	})
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	respond.Created(writer, user)
}

// # Self-Service Profile

func (handler *Handler) getMe(writer http.ResponseWriter, req *http.Request) {
	userID, err := request.RequiredUserID(req)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	user, err := handler.service.GetMe(req.Context(), userID)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	respond.OK(writer, user)
}

type updateMeRequest struct {
	Nickname *string `json:"nickname"`
}

func (handler *Handler) updateMe(writer http.ResponseWriter, req *http.Request) {
	userID, err := request.RequiredUserID(req)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	var body updateMeRequest
	if err := request.DecodeJSON(req, &body); err != nil {
		respond.Error(writer, req, err)
		return
	}

	if body.Nickname != nil {
		validator := validate.New().
			Required("nickname", *body.Nickname).
			MinLen("nickname", *body.Nickname, 2).
			MaxLen("nickname", *body.Nickname, 30)
		if err := validator.Err(); err != nil {
			respond.Error(writer, req, err)
			return
		}
	}

	user, err := handler.service.UpdateMe(req.Context(), userID, UpdateMeInput{Nickname: body.Nickname})
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	respond.OK(writer, user)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (handler *Handler) changePassword(writer http.ResponseWriter, req *http.Request) {
	userID, err := request.RequiredUserID(req)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	var body changePasswordRequest
	if err := request.DecodeJSON(req, &body); err != nil {
		respond.Error(writer, req, err)
		return
	}

	validator := validate.New().
		Required("currentPassword", body.CurrentPassword).
		Required("newPassword", body.NewPassword).
		MinLen("newPassword", body.NewPassword, 8).
		MaxLen("newPassword", body.NewPassword, 72)
	if err := validator.Err(); err != nil {
		respond.Error(writer, req, err)
		return
	}

	if err := handler.service.ChangePassword(req.Context(), userID, body.CurrentPassword, body.NewPassword); err != nil {
		respond.Error(writer, req, err)
		return
	}

	respond.NoContent(writer)
}

// # Administration

func (handler *Handler) list(writer http.ResponseWriter, req *http.Request) {
	params := pagination.FromRequest(req)
	filter := ListFilter{Keyword: request.Query(req, "keyword", "")}

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

	user, err := handler.service.Get(req.Context(), id)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	respond.OK(writer, user)
}

func (handler *Handler) activate(writer http.ResponseWriter, req *http.Request) {
	handler.setActive(writer, req, true)
}

func (handler *Handler) deactivate(writer http.ResponseWriter, req *http.Request) {
	handler.setActive(writer, req, false)
}

func (handler *Handler) setActive(writer http.ResponseWriter, req *http.Request, active bool) {
	id, err := request.ID(req, "id")
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	user, err := handler.service.SetActive(req.Context(), id, active)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	respond.OK(writer, user)
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

func (handler *Handler) changeRole(writer http.ResponseWriter, req *http.Request) {
	id, err := request.ID(req, "id")
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	var body changeRoleRequest
	if err := request.DecodeJSON(req, &body); err != nil {
		respond.Error(writer, req, err)
		return
	}

	user, err := handler.service.ChangeRole(req.Context(), id, body.Role)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	respond.OK(writer, user)
}
