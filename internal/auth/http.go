// Copyright (c) 2026 Foodieblog. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foodieblog/api/internal/platform/middleware"
	"github.com/foodieblog/api/internal/platform/request"
	"github.com/foodieblog/api/internal/platform/respond"
	"github.com/foodieblog/api/internal/platform/validate"
)

// # HTTP Transport

// Handler exposes the authentication endpoints over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes assembles the auth sub-router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)
	router.Post("/logout", handler.logout)

	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)
		authed.Get("/me", handler.me)
	})

	return router
}

// # Endpoints

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) login(writer http.ResponseWriter, req *http.Request) {
	var body loginRequest
	if err := request.DecodeJSON(req, &body); err != nil {
		respond.Error(writer, req, err)
		return
	}

	validator := validate.New().
		Required("email", body.Email).
		Email("email", body.Email).
		Required("password", body.Password)
	if err := validator.Err(); err != nil {
		respond.Error(writer, req, err)
		return
	}

	result, err := handler.service.Login(req.Context(), body.Email, body.Password)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	respond.OK(writer, result)
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (handler *Handler) refresh(writer http.ResponseWriter, req *http.Request) {
	var body refreshRequest
	if err := request.DecodeJSON(req, &body); err != nil {
		respond.Error(writer, req, err)
		return
	}

	if err := validate.New().Required("refreshToken", body.RefreshToken).Err(); err != nil {
		respond.Error(writer, req, err)
		return
	}

	result, err := handler.service.Refresh(req.Context(), body.RefreshToken)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	respond.OK(writer, result)
}

func (handler *Handler) logout(writer http.ResponseWriter, req *http.Request) {
	var body refreshRequest
	if err := request.DecodeJSON(req, &body); err != nil {
		respond.Error(writer, req, err)
		return
	}

	if err := validate.New().Required("refreshToken", body.RefreshToken).Err(); err != nil {
		respond.Error(writer, req, err)
		return
	}

	if err := handler.service.Logout(req.Context(), body.RefreshToken); err != nil {
		respond.Error(writer, req, err)
		return
	}

	// 200 with an empty success envelope, matching the other auth endpoints.
	respond.OK(writer, nil)
}

// me echoes the identity the access token carries. No store round trip: the
// snapshot is exactly what the token says, which is what clients need to
// render the signed-in state.
func (handler *Handler) me(writer http.ResponseWriter, req *http.Request) {
	principal, err := request.RequiredPrincipal(req)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	respond.OK(writer, UserSummary{
		UserID:   principal.UserID,
		Email:    principal.Email,
		Nickname: principal.Nickname,
		Role:     principal.Role,
	})
}
