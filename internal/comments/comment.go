// Copyright (c) 2026 Foodieblog. All rights reserved.

/*
Package comments manages reader discussion under posts.

Comments are never hard-deleted by moderation alone: hiding flips a
visibility flag, keeping the thread restorable. Deletion remains an
administrative option.
*/
package comments

import (
	"context"
	"time"

	"github.com/foodieblog/api/pkg/pagination"
)

// # Domain Entities

// Comment visibility states.
const (
	StatusVisible = "VISIBLE"
	StatusHidden  = "HIDDEN"
)

// Comment is one reader remark under a post.
type Comment struct {
	ID             int64     `json:"id"`
	PostID         int64     `json:"postId"`
	AuthorID       int64     `json:"authorId"`
	AuthorNickname string    `json:"authorNickname"`
	Content        string    `json:"content"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ListFilter narrows comment listings.
type ListFilter struct {
	// PostID restricts to one post's thread when non-zero.
	PostID int64
	// AuthorID restricts to one author when non-zero.
	AuthorID int64
	// Status restricts to one visibility state when non-empty.
	Status string
}

// # Repository Contracts

// Repository defines the persistence contract for comments.
type Repository interface {
	// List returns a filtered page of comments plus the unpaged total,
	// oldest first so threads read top to bottom.
	List(context context.Context, filter ListFilter, params pagination.Params) ([]*Comment, int64, error)

	// FindByID retrieves a comment (COMMENT_NOT_FOUND if absent).
	FindByID(context context.Context, id int64) (*Comment, error)

	// Create persists a new comment and populates its generated fields.
	Create(context context.Context, comment *Comment) error

	// Update persists the mutable fields of an existing comment.
	Update(context context.Context, comment *Comment) error

	// Delete removes a comment row.
	Delete(context context.Context, id int64) error
}

// PostChecker is the slice of the posts repository the comment flow needs:
// verifying that the commented post exists.
type PostChecker interface {
	Exists(context context.Context, id int64) (bool, error)
}
