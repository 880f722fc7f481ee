// Copyright (c) 2026 Foodieblog. All rights reserved.

package posts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/pkg/pagination"
)

// # Service Layer

// Service applies the post lifecycle rules.
type Service struct {
	repository Repository
	categories CategoryChecker
	logger     *slog.Logger

	now func() time.Time
}

// NewService constructs a new [Service].
func NewService(repository Repository, categories CategoryChecker, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		categories: categories,
		logger:     logger,
		now:        time.Now,
	}
}

// # Read Side

// List returns a filtered page of posts.
func (service *Service) List(context context.Context, filter ListFilter, params pagination.Params) ([]*Post, int64, error) {
	return service.repository.List(context, filter, params)
}

// Get retrieves one post by ID.
func (service *Service) Get(context context.Context, id int64) (*Post, error) {
	return service.repository.FindByID(context, id)
}

// # Write Side

// Input carries the mutable post fields.
type Input struct {
	Title          string
	Content        string
	CategoryID     *int64
	RestaurantName *string
	VisitedDate    *time.Time
}

/*
Create adds a new post for the given author, starting as a DRAFT.

Returns:
  - error: CATEGORY_NOT_FOUND when the referenced category does not exist
*/
func (service *Service) Create(context context.Context, authorID int64, input Input) (*Post, error) {

	if err := service.checkCategory(context, input.CategoryID); err != nil {
		return nil, err
	}

	post := &Post{
		AuthorID:       authorID,
		CategoryID:     input.CategoryID,
		Title:          input.Title,
		Content:        input.Content,
		RestaurantName: input.RestaurantName,
		VisitedDate:    input.VisitedDate,
		Status:         StatusDraft,
	}

	if err := service.repository.Create(context, post); err != nil {
		return nil, fmt.Errorf("post_service_create_failed: %w", err)
	}

	service.logger.Info("post_created",
		slog.Int64("post_id", post.ID),
		slog.Int64("author_id", authorID),
	)

	return post, nil
}

// Update applies new content to an existing post. The lifecycle status is
// untouched; publish and unpublish are separate transitions.
func (service *Service) Update(context context.Context, id int64, input Input) (*Post, error) {

	post, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("post_service_update_lookup_failed: %w", err)
	}

	if err := service.checkCategory(context, input.CategoryID); err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content
	post.CategoryID = input.CategoryID
	post.RestaurantName = input.RestaurantName
	post.VisitedDate = input.VisitedDate

	if err := service.repository.Update(context, post); err != nil {
		return nil, fmt.Errorf("post_service_update_failed: %w", err)
	}

	service.logger.Info("post_updated", slog.Int64("post_id", id))

	return post, nil
}

// Delete removes a post and its comment thread.
func (service *Service) Delete(context context.Context, id int64) error {

	if _, err := service.repository.FindByID(context, id); err != nil {
		return fmt.Errorf("post_service_delete_lookup_failed: %w", err)
	}

	if err := service.repository.Delete(context, id); err != nil {
		return fmt.Errorf("post_service_delete_failed: %w", err)
	}

	service.logger.Warn("post_deleted", slog.Int64("post_id", id))

	return nil
}

// # Lifecycle Transitions

/*
Publish moves a DRAFT post into the public catalogue.

Returns:
  - error: STATE_CONFLICT when the post is already published
*/
func (service *Service) Publish(context context.Context, id int64) (*Post, error) {
	return service.transition(context, id, StatusDraft, StatusPublished)
}

/*
Unpublish pulls a PUBLISHED post back to draft. Its comments stay stored
but drop out of public view with the post.

Returns:
  - error: STATE_CONFLICT when the post is not published
*/
func (service *Service) Unpublish(context context.Context, id int64) (*Post, error) {
	return service.transition(context, id, StatusPublished, StatusDraft)
}

func (service *Service) transition(context context.Context, id int64, from, to string) (*Post, error) {

	post, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("post_service_transition_lookup_failed: %w", err)
	}

	if post.Status != from {
		return nil, apperr.New(apperr.CodeStateConflict)
	}

	post.Status = to
	if to == StatusPublished {
		publishedAt := service.now()
		post.PublishedAt = &publishedAt
	} else {
		post.PublishedAt = nil
	}

	if err := service.repository.Update(context, post); err != nil {
		return nil, fmt.Errorf("post_service_transition_failed: %w", err)
	}

	service.logger.Info("post_status_changed",
		slog.Int64("post_id", id),
		slog.String("status", to),
	)

	return post, nil
}

// checkCategory verifies an optional category reference.
func (service *Service) checkCategory(context context.Context, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}

	exists, err := service.categories.Exists(context, *categoryID)
	if err != nil {
		return fmt.Errorf("post_service_category_check_failed: %w", err)
	}
	if !exists {
		return apperr.New(apperr.CodeCategoryNotFound)
	}
	return nil
}
