// Copyright (c) 2026 Foodieblog. All rights reserved.

/*
Package auth implements credential verification and the refresh-token
session lifecycle.

Each account holds at most one live session: logging in replaces whatever
refresh token the account had before, so a credential can only be "lent out"
once at a time.

# Architecture

  - Entities: Session.
  - Tokens: minting and verification delegate to platform/sec.
  - Storage: sessions persist in PostgreSQL so restarts keep users signed in.
*/
package auth

import (
	"context"
	"time"

	"github.com/foodieblog/api/internal/users"
)

// # Domain Entities

// Session is a stored refresh token granting one account continued access.
type Session struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiryAt  time.Time
	CreatedAt time.Time
}

// Expired reports whether the session's refresh token has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiryAt)
}

// # Repository Contracts

// SessionRepository defines the persistence contract for refresh sessions.
type SessionRepository interface {
	/*
		Replace installs token as the account's only session.

		Description: Deletes any existing session for the user and inserts the
		new one inside a single transaction, so two concurrent logins cannot
		leave the account with two live refresh tokens.
	*/
	Replace(context context.Context, userID int64, token string, expiryAt time.Time) error

	// FindByToken retrieves the session holding the given refresh token.
	// Returns UNAUTHORIZED when no session holds it.
	FindByToken(context context.Context, token string) (*Session, error)

	// DeleteByToken removes the session holding the given refresh token.
	// Deleting an unknown token is a no-op.
	DeleteByToken(context context.Context, token string) error
}

// UserDirectory is the slice of the users repository the auth flow needs.
type UserDirectory interface {
	FindByEmail(context context.Context, email string) (*users.User, error)
	FindByID(context context.Context, id int64) (*users.User, error)
	MarkLogin(context context.Context, id int64, at time.Time) error
}
