// Copyright (c) 2026 Foodieblog. All rights reserved.

/*
Package apperr defines the centralized error handling framework for the
foodieblog API.

It provides a rich error type that bridges the gap between low-level
domain/storage errors and high-level HTTP responses.

Architecture:

  - Code: a closed enumeration of machine-readable error identifiers.
  - AppError: a struct pairing a Code with a client-safe message and status.
  - Mapping: the Code table is the single source of default HTTP statuses.

Every error that leaves the service layer should be wrapped as an [AppError]
to ensure consistent API responses.
*/
package apperr

import (
	"errors"
	"net/http"
)

// Code is a machine-readable error identifier from the closed API enumeration.
//
// The set is frozen: clients switch on these values, so adding or renaming a
// code is a breaking API change.
type Code string

const (
	// 400 Bad Request
	CodeBadRequest        Code = "BAD_REQUEST"
	CodeValidationFailed  Code = "VALIDATION_FAILED"
	CodeInvalidQueryParam Code = "INVALID_QUERY_PARAM"

	// 401 Unauthorized
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeTokenExpired Code = "TOKEN_EXPIRED"

	// 403 Forbidden
	CodeForbidden       Code = "FORBIDDEN"
	CodeUserDeactivated Code = "USER_DEACTIVATED"
	CodeCommentHidden   Code = "COMMENT_HIDDEN"

	// 404 Not Found
	CodeResourceNotFound Code = "RESOURCE_NOT_FOUND"
	CodeUserNotFound     Code = "USER_NOT_FOUND"
	CodeCategoryNotFound Code = "CATEGORY_NOT_FOUND"
	CodePostNotFound     Code = "POST_NOT_FOUND"
	CodeCommentNotFound  Code = "COMMENT_NOT_FOUND"

	// 409 Conflict
	CodeEmailAlreadyExists    Code = "EMAIL_ALREADY_EXISTS"
	CodeNicknameAlreadyExists Code = "NICKNAME_ALREADY_EXISTS"
	CodeDuplicateResource     Code = "DUPLICATE_RESOURCE"
	CodeStateConflict         Code = "STATE_CONFLICT"

	// 413 / 422 / 429
	CodePayloadTooLarge     Code = "PAYLOAD_TOO_LARGE"
	CodeUnprocessableEntity Code = "UNPROCESSABLE_ENTITY"
	CodeTooManyRequests     Code = "TOO_MANY_REQUESTS"

	// 500 Internal Server Error
	CodeDatabaseError       Code = "DATABASE_ERROR"
	CodeInternalServerError Code = "INTERNAL_SERVER_ERROR"
	CodeUnknownError        Code = "UNKNOWN_ERROR"
)

// entry holds the default HTTP status and client-safe message for a Code.
type entry struct {
	status  int
	message string
}

// table maps every Code to its default status and message. respond.Error is
// the only consumer of the status values; no handler assigns statuses itself.
var table = map[Code]entry{
	CodeBadRequest:        {http.StatusBadRequest, "Bad request."},
	CodeValidationFailed:  {http.StatusBadRequest, "Input validation failed."},
	CodeInvalidQueryParam: {http.StatusBadRequest, "Invalid query parameter."},

	CodeUnauthorized: {http.StatusUnauthorized, "Missing or invalid credentials."},
	CodeTokenExpired: {http.StatusUnauthorized, "Authentication token has expired."},

	CodeForbidden:       {http.StatusForbidden, "Access denied."},
	CodeUserDeactivated: {http.StatusForbidden, "This account has been deactivated."},
	CodeCommentHidden:   {http.StatusForbidden, "This comment has been hidden."},

	CodeResourceNotFound: {http.StatusNotFound, "Requested resource not found."},
	CodeUserNotFound:     {http.StatusNotFound, "User not found."},
	CodeCategoryNotFound: {http.StatusNotFound, "Category not found."},
	CodePostNotFound:     {http.StatusNotFound, "Post not found."},
	CodeCommentNotFound:  {http.StatusNotFound, "Comment not found."},

	CodeEmailAlreadyExists:    {http.StatusConflict, "Email is already registered."},
	CodeNicknameAlreadyExists: {http.StatusConflict, "Nickname is already taken."},
	CodeDuplicateResource:     {http.StatusConflict, "A duplicate resource already exists."},
	CodeStateConflict:         {http.StatusConflict, "Resource state conflict."},

	CodePayloadTooLarge:     {http.StatusRequestEntityTooLarge, "Request body is too large."},
	CodeUnprocessableEntity: {http.StatusUnprocessableEntity, "Request could not be processed."},
	CodeTooManyRequests:     {http.StatusTooManyRequests, "Request limit exceeded."},

	CodeDatabaseError:       {http.StatusInternalServerError, "A database error occurred."},
	CodeInternalServerError: {http.StatusInternalServerError, "An unexpected server error occurred."},
	CodeUnknownError:        {http.StatusInternalServerError, "An unknown error occurred."},
}

// AppError is the canonical error type for the foodieblog API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional field→message map for validation failures.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to
// clients to avoid leaking internal implementation details (e.g. SQL).
type AppError struct {
	// Code is the machine-readable error identifier.
	Code Code `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"message"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field messages for VALIDATION_FAILED responses.
	Details map[string]string `json:"details,omitempty"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// New creates an [AppError] with the code's default status and message.
//
// Unknown codes fall back to UNKNOWN_ERROR so the mapper stays total.
func New(code Code) *AppError {
	ent, ok := table[code]
	if !ok {
		code = CodeUnknownError
		ent = table[CodeUnknownError]
	}
	return &AppError{
		Code:       code,
		Message:    ent.message,
		HTTPStatus: ent.status,
	}
}

// Validation creates a VALIDATION_FAILED [AppError] with field-level details.
func Validation(details map[string]string) *AppError {
	appError := New(CodeValidationFailed)
	appError.Details = details
	return appError
}

// Database creates a DATABASE_ERROR [AppError] wrapping a persistence failure.
// The cause is stored for logging but is never sent to the client.
func Database(cause error) *AppError {
	appError := New(CodeDatabaseError)
	appError.Cause = cause
	return appError
}

// Internal creates an UNKNOWN_ERROR [AppError] wrapping an unexpected fault.
func Internal(cause error) *AppError {
	appError := New(CodeUnknownError)
	appError.Cause = cause
	return appError
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var appError *AppError
	if errors.As(err, &appError) {
		return appError
	}
	return nil
}

// IsCode reports whether err (or any error in its chain) is an [*AppError]
// carrying the given code.
func IsCode(err error, code Code) bool {
	appError := As(err)
	return appError != nil && appError.Code == code
}

// StatusOf returns the default HTTP status for a code.
func StatusOf(code Code) int {
	if ent, ok := table[code]; ok {
		return ent.status
	}
	return http.StatusInternalServerError
}
