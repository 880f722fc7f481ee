// Copyright (c) 2026 Foodieblog. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// It hides internal database details from the client while classifying the
// failure: missing rows become the caller's not-found code, unique-constraint
// violations become conflicts, and everything else surfaces as DATABASE_ERROR.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/foodieblog/api/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful
// [apperr.AppError]. notFound is the domain-specific code to use when the
// queried row does not exist (e.g. POST_NOT_FOUND).
func Wrap(err error, notFound apperr.Code) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.New(notFound)
	}

	if IsUniqueViolation(err) {
		return apperr.New(apperr.CodeDuplicateResource)
	}

	return apperr.Database(err)
}

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
