// Copyright (c) 2026 Foodieblog. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package request

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/internal/platform/ctxutil"
	"github.com/foodieblog/api/internal/platform/sec"
	"github.com/foodieblog/api/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named numeric URL parameter from the request.

Returns:
  - int64: The parsed identifier
  - error: apperr BAD_REQUEST if the parameter is missing or not a number
*/
func ID(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.New(apperr.CodeBadRequest)
	}
	return id, nil
}

/*
Param retrieves a named URL parameter from the request as-is.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Query retrieves a query-string parameter, or fallback when absent.
*/
func Query(request *http.Request, name string, fallback string) string {
	if value := request.URL.Query().Get(name); value != "" {
		return value
	}
	return fallback
}

/*
QueryInt retrieves a numeric query-string parameter, or fallback when absent
or malformed.
*/
func QueryInt(request *http.Request, name string, fallback int) int {
	value, err := strconv.Atoi(request.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return value
}

/*
Principal extracts the authenticated caller from the request context.

Returns nil if the request is not authenticated.
*/
func Principal(request *http.Request) *sec.Principal {
	return ctxutil.GetPrincipal(request.Context())
}

/*
RequiredPrincipal ensures the request is authenticated.

Returns:
  - *sec.Principal: The authenticated caller
  - error: apperr UNAUTHORIZED if the request carries no principal
*/
func RequiredPrincipal(request *http.Request) (*sec.Principal, error) {

	// Get the caller attached by the authentication gate
	principal := ctxutil.GetPrincipal(request.Context())

	// If the request is not authenticated, return an error
	if principal == nil {
		return nil, apperr.New(apperr.CodeUnauthorized)
	}

	return principal, nil
}

/*
RequiredUserID returns the ID of the currently logged-in user.

Returns:
  - int64: User ID
  - error: apperr UNAUTHORIZED if not authenticated
*/
func RequiredUserID(request *http.Request) (int64, error) {

	principal, err := RequiredPrincipal(request)
	if err != nil {
		return 0, err
	}

	return principal.UserID, nil
}
