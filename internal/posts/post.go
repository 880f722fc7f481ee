// Copyright (c) 2026 Foodieblog. All rights reserved.

/*
Package posts manages the blog's core content: restaurant write-ups moving
through a draft/published lifecycle.

# Architecture

  - Entities: Post.
  - Lifecycle: DRAFT posts exist only for their author and administrators;
    PUBLISHED posts are the public surface of the site.
  - Queries: listings join the author nickname and category name so the read
    side needs no follow-up fetches.
*/
package posts

import (
	"context"
	"time"

	"github.com/foodieblog/api/pkg/pagination"
)

// # Domain Entities

// Post statuses.
const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
)

// Post is one restaurant write-up.
type Post struct {
	ID             int64      `json:"id"`
	AuthorID       int64      `json:"authorId"`
	AuthorNickname string     `json:"authorNickname"`
	CategoryID     *int64     `json:"categoryId"`
	CategoryName   *string    `json:"categoryName"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	RestaurantName *string    `json:"restaurantName"`
	VisitedDate    *time.Time `json:"visitedDate"`
	Status         string     `json:"status"`
	PublishedAt    *time.Time `json:"publishedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// ListFilter narrows post listings.
type ListFilter struct {
	// Keyword matches title or content, case-insensitively.
	Keyword string
	// CategoryID restricts to one category when non-zero.
	CategoryID int64
	// AuthorID restricts to one author when non-zero.
	AuthorID int64
	// Status restricts to one lifecycle state when non-empty.
	Status string
	// VisitedFrom/VisitedTo bound the restaurant visit date, inclusive.
	VisitedFrom *time.Time
	VisitedTo   *time.Time
}

// # Repository Contracts

// Repository defines the persistence contract for posts.
type Repository interface {
	// List returns a filtered page of posts plus the unpaged total,
	// newest first.
	List(context context.Context, filter ListFilter, params pagination.Params) ([]*Post, int64, error)

	// FindByID retrieves a post (POST_NOT_FOUND if absent).
	FindByID(context context.Context, id int64) (*Post, error)

	// Create persists a new post and populates its generated fields.
	Create(context context.Context, post *Post) error

	// Update persists the mutable fields of an existing post.
	Update(context context.Context, post *Post) error

	// Delete removes a post and, via the schema, its comments.
	Delete(context context.Context, id int64) error
}

// CategoryChecker is the slice of the categories repository the post flow
// needs: verifying that a referenced category exists.
type CategoryChecker interface {
	Exists(context context.Context, id int64) (bool, error)
}
