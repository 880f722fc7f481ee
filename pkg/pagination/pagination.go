// Copyright (c) 2026 Foodieblog. All rights reserved.

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how offset/limit navigation is requested via query
// parameters and how the resulting metadata is delivered in the response
// envelope. Correctness guarantees stop at offset/limit semantics: no
// cursoring, no stable-sort promises across pages.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultSize is the number of items per page if not specified.
	DefaultSize = 20
	// MaxSize is the upper bound for items per page to prevent system abuse.
	MaxSize = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and size from a request's query string.
type Params struct {
	Page int
	Size int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Size].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Size
}

// Limit returns the SQL LIMIT value.
func (p Params) Limit() int { return p.Size }

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Size       int `json:"size"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewMeta constructs pagination metadata for a response.
//
// It automatically calculates TotalPages from the total count and page size.
func NewMeta(page, size, total int) Meta {
	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}

	return Meta{
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
	}
}

// FromRequest parses "page" and "size" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultPage], [DefaultSize], or [MaxSize].
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	size := parseIntParam(r, "size", DefaultSize)

	if page < 1 {
		page = DefaultPage
	}

	if size < 1 || size > MaxSize {
		size = DefaultSize
	}

	return Params{Page: page, Size: size}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
