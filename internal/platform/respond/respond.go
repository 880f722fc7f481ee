// Copyright (c) 2026 Foodieblog. All rights reserved.

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses. It is
// the ONLY place where a failure becomes a user-visible error body: every
// response (success or error) across the entire application follows a strict,
// predictable JSON envelope structure.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/internal/platform/ctxutil"
	"github.com/foodieblog/api/pkg/pagination"
)

// SuccessEnvelope is the JSON envelope for successful single-resource responses.
type SuccessEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// PaginatedEnvelope is the JSON envelope for paginated list responses.
type PaginatedEnvelope struct {
	Success bool            `json:"success"`
	Data    interface{}     `json:"data"`
	Meta    pagination.Meta `json:"meta"`
}

// ErrorEnvelope is the JSON envelope for error responses.
//
// The shape is part of the public API contract: timestamp, request path,
// HTTP status, machine-readable code, client-safe message, and an optional
// field→message map for validation failures.
type ErrorEnvelope struct {
	Timestamp time.Time         `json:"timestamp"`
	Path      string            `json:"path"`
	Status    int               `json:"status"`
	Code      apperr.Code       `json:"code"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
}

// committedChecker is implemented by response writers that track whether a
// status line has already been sent (see middleware.statusRecorder).
type committedChecker interface {
	Committed() bool
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data wrapped in the standard success envelope.
func OK(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Success: true, Data: data})
}

// Created writes a 201 Created response with data wrapped in the standard success envelope.
func Created(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusCreated, SuccessEnvelope{Success: true, Data: data})
}

// Paginated writes a 200 OK response with paginated data and a metadata block.
func Paginated(writer http.ResponseWriter, data interface{}, metadata pagination.Meta) {
	JSON(writer, http.StatusOK, PaginatedEnvelope{Success: true, Data: data, Meta: metadata})
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error converts any Go error into the standardized JSON error envelope.
//
// Non-[apperr.AppError] values map to UNKNOWN_ERROR with a generic message;
// the cause is logged server-side and never reaches the client.
//
// # Double-Write Guard
//
// If the response has already been committed (a partial write occurred before
// the failure), Error logs and writes nothing further.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error_mapped",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", string(appError.Code)),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	if checker, ok := writer.(committedChecker); ok && checker.Committed() {
		logger := ctxutil.GetLogger(request.Context())
		logger.WarnContext(request.Context(), "error_after_commit_suppressed",
			slog.String("code", string(appError.Code)),
		)
		return
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Timestamp: time.Now().UTC(),
		Path:      request.URL.Path,
		Status:    appError.HTTPStatus,
		Code:      appError.Code,
		Message:   appError.Message,
		Details:   appError.Details,
	})
}

// ErrorCode writes the default envelope for a bare code with no wrapping error.
func ErrorCode(writer http.ResponseWriter, request *http.Request, code apperr.Code) {
	Error(writer, request, apperr.New(code))
}
