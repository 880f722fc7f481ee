// Copyright (c) 2026 Foodieblog. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/internal/platform/dberr"
)

// # PostgreSQL Repository

// PostgresSessionRepository implements [SessionRepository] against the
// refresh_tokens table.
type PostgresSessionRepository struct {
	db *pgxpool.Pool
}

// NewPostgresSessionRepository constructs the concrete session store.
func NewPostgresSessionRepository(db *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

// Replace installs token as the account's only session, atomically.
func (repository *PostgresSessionRepository) Replace(context context.Context, userID int64, token string, expiryAt time.Time) error {

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, apperr.CodeUnauthorized)
	}
	defer func() { _ = tx.Rollback(context) }()

	if _, err := tx.Exec(context,
		`DELETE FROM refresh_tokens WHERE user_id = $1`, userID,
	); err != nil {
		return dberr.Wrap(err, apperr.CodeUnauthorized)
	}

	if _, err := tx.Exec(context,
		`INSERT INTO refresh_tokens (user_id, token, expiry_at) VALUES ($1, $2, $3)`,
		userID, token, expiryAt,
	); err != nil {
		return dberr.Wrap(err, apperr.CodeUnauthorized)
	}

	if err := tx.Commit(context); err != nil {
		return fmt.Errorf("session_replace_commit_failed: %w", err)
	}

	return nil
}

// FindByToken retrieves the session holding the given refresh token.
func (repository *PostgresSessionRepository) FindByToken(context context.Context, token string) (*Session, error) {
	query := `
		SELECT id, user_id, token, expiry_at, created_at
		FROM refresh_tokens
		WHERE token = $1`

	session := &Session{}
	err := repository.db.QueryRow(context, query, token).Scan(
		&session.ID, &session.UserID, &session.Token, &session.ExpiryAt, &session.CreatedAt,
	)
	if err != nil {
		// An unknown refresh token is an authentication failure, not a 404.
		return nil, dberr.Wrap(err, apperr.CodeUnauthorized)
	}

	return session, nil
}

// DeleteByToken removes the session holding the given refresh token.
func (repository *PostgresSessionRepository) DeleteByToken(context context.Context, token string) error {
	_, err := repository.db.Exec(context,
		`DELETE FROM refresh_tokens WHERE token = $1`, token,
	)
	if err != nil {
		return dberr.Wrap(err, apperr.CodeUnauthorized)
	}
	return nil
}
