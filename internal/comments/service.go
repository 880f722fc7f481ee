// Copyright (c) 2026 Foodieblog. All rights reserved.

package comments

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/pkg/pagination"
)

// # Service Layer

// Service applies the comment visibility and moderation rules.
type Service struct {
	repository Repository
	posts      PostChecker
	logger     *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repository Repository, posts PostChecker, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		posts:      posts,
		logger:     logger,
	}
}

// # Public Read Side

// ListVisible returns the visible thread under one post.
func (service *Service) ListVisible(context context.Context, postID int64, params pagination.Params) ([]*Comment, int64, error) {
	return service.repository.List(context, ListFilter{PostID: postID, Status: StatusVisible}, params)
}

/*
GetVisible retrieves one comment for public view.

Returns:
  - error: COMMENT_HIDDEN when moderation has hidden it
*/
func (service *Service) GetVisible(context context.Context, id int64) (*Comment, error) {
	comment, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("comment_service_get_failed: %w", err)
	}

	if comment.Status == StatusHidden {
		return nil, apperr.New(apperr.CodeCommentHidden)
	}

	return comment, nil
}

// # Authoring

/*
Create adds a comment by the given author under a post.

Returns:
  - error: POST_NOT_FOUND when the post does not exist
*/
func (service *Service) Create(context context.Context, authorID, postID int64, content string) (*Comment, error) {

	exists, err := service.posts.Exists(context, postID)
	if err != nil {
		return nil, fmt.Errorf("comment_service_post_check_failed: %w", err)
	}
	if !exists {
		return nil, apperr.New(apperr.CodePostNotFound)
	}

	comment := &Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
		Status:   StatusVisible,
	}

	if err := service.repository.Create(context, comment); err != nil {
		return nil, fmt.Errorf("comment_service_create_failed: %w", err)
	}

	service.logger.Info("comment_created",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("post_id", postID),
		slog.Int64("author_id", authorID),
	)

	return comment, nil
}

// ListByAuthor returns every comment the author has written, any status.
func (service *Service) ListByAuthor(context context.Context, authorID int64, params pagination.Params) ([]*Comment, int64, error) {
	return service.repository.List(context, ListFilter{AuthorID: authorID}, params)
}

// # Moderation

// List returns a filtered page of the full comment stream for moderators.
func (service *Service) List(context context.Context, filter ListFilter, params pagination.Params) ([]*Comment, int64, error) {
	return service.repository.List(context, filter, params)
}

// Update rewrites a comment's content.
func (service *Service) Update(context context.Context, id int64, content string) (*Comment, error) {

	comment, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("comment_service_update_lookup_failed: %w", err)
	}

	comment.Content = content
	if err := service.repository.Update(context, comment); err != nil {
		return nil, fmt.Errorf("comment_service_update_failed: %w", err)
	}

	service.logger.Info("comment_updated", slog.Int64("comment_id", id))

	return comment, nil
}

// Delete removes a comment permanently.
func (service *Service) Delete(context context.Context, id int64) error {

	if _, err := service.repository.FindByID(context, id); err != nil {
		return fmt.Errorf("comment_service_delete_lookup_failed: %w", err)
	}

	if err := service.repository.Delete(context, id); err != nil {
		return fmt.Errorf("comment_service_delete_failed: %w", err)
	}

	service.logger.Warn("comment_deleted", slog.Int64("comment_id", id))

	return nil
}

// Hide withdraws a comment from public view. Idempotent.
func (service *Service) Hide(context context.Context, id int64) (*Comment, error) {
	return service.setStatus(context, id, StatusHidden)
}

// Show restores a hidden comment. Idempotent.
func (service *Service) Show(context context.Context, id int64) (*Comment, error) {
	return service.setStatus(context, id, StatusVisible)
}

func (service *Service) setStatus(context context.Context, id int64, status string) (*Comment, error) {

	comment, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("comment_service_status_lookup_failed: %w", err)
	}

	if comment.Status == status {
		return comment, nil
	}

	comment.Status = status
	if err := service.repository.Update(context, comment); err != nil {
		return nil, fmt.Errorf("comment_service_status_failed: %w", err)
	}

	service.logger.Info("comment_visibility_changed",
		slog.Int64("comment_id", id),
		slog.String("status", status),
	)

	return comment, nil
}
