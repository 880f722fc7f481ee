// Copyright (c) 2026 Foodieblog. All rights reserved.

/*
Package users handles account registration, profile management, and the
administrative user directory.

It owns the User entity that every other domain references by author ID.

# Architecture

  - Entities: User.
  - Security: password hashes never leave this package in transport form.
  - Admin: account activation, deactivation, and role changes live here.
*/
package users

import (
	"context"
	"time"

	"github.com/foodieblog/api/pkg/pagination"
)

// # Domain Entities

// User represents a registered account.
//
// PasswordHash is excluded from every JSON rendering; handlers return the
// entity directly.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Nickname     string     `json:"nickname"`
	Role         string     `json:"role"`
	Active       bool       `json:"active"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// ListFilter narrows the administrative user directory.
type ListFilter struct {
	// Keyword matches email or nickname, case-insensitively.
	Keyword string
}

// # Repository Contracts

// Repository defines the persistence contract for user accounts.
type Repository interface {
	/*
		Create persists a new account and populates its generated fields.

		Returns:
		  - error: EMAIL_ALREADY_EXISTS / NICKNAME_ALREADY_EXISTS surface as
		    unique violations; other storage failures as DATABASE_ERROR.
	*/
	Create(context context.Context, user *User) error

	// FindByID retrieves an account by primary key (USER_NOT_FOUND if absent).
	FindByID(context context.Context, id int64) (*User, error)

	// FindByEmail retrieves an account by its unique email.
	FindByEmail(context context.Context, email string) (*User, error)

	// ExistsByEmail reports whether any account uses the given email.
	ExistsByEmail(context context.Context, email string) (bool, error)

	// ExistsByNickname reports whether any account uses the given nickname.
	ExistsByNickname(context context.Context, nickname string) (bool, error)

	/*
		List returns a page of the user directory plus the unpaged total.

		Parameters:
		  - filter: ListFilter (keyword search)
		  - params: pagination.Params
	*/
	List(context context.Context, filter ListFilter, params pagination.Params) ([]*User, int64, error)

	// Update persists the mutable fields of an existing account.
	Update(context context.Context, user *User) error

	// MarkLogin stamps last_login_at for the account.
	MarkLogin(context context.Context, id int64, at time.Time) error
}
