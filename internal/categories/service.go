// Copyright (c) 2026 Foodieblog. All rights reserved.

package categories

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/foodieblog/api/pkg/slug"
)

// # Service Layer

// Service applies taxonomy rules: slug derivation and collision handling.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

// # Read Side

// List returns the full taxonomy.
func (service *Service) List(context context.Context) ([]*Category, error) {
	return service.repository.List(context)
}

// Get retrieves one category by ID.
func (service *Service) Get(context context.Context, id int64) (*Category, error) {
	return service.repository.FindByID(context, id)
}

// GetBySlug retrieves one category by its URL slug.
func (service *Service) GetBySlug(context context.Context, categorySlug string) (*Category, error) {
	return service.repository.FindBySlug(context, categorySlug)
}

// # Write Side

// Input carries the mutable category fields.
type Input struct {
	Name        string
	Description *string
}

/*
Create adds a category, deriving its slug from the name.

Returns:
  - error: DUPLICATE_RESOURCE when the name or derived slug collides
*/
func (service *Service) Create(context context.Context, input Input) (*Category, error) {

	category := &Category{
		Name:        input.Name,
		Slug:        slug.From(input.Name),
		Description: input.Description,
	}

	if err := service.repository.Create(context, category); err != nil {
		return nil, fmt.Errorf("category_service_create_failed: %w", err)
	}

	service.logger.Info("category_created",
		slog.Int64("category_id", category.ID),
		slog.String("slug", category.Slug),
	)

	return category, nil
}

/*
Update renames a category. A changed name re-derives the slug, so existing
links by the old slug stop resolving.
*/
func (service *Service) Update(context context.Context, id int64, input Input) (*Category, error) {

	category, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("category_service_update_lookup_failed: %w", err)
	}

	category.Name = input.Name
	category.Slug = slug.From(input.Name)
	if input.Description != nil {
		category.Description = input.Description
	}

	if err := service.repository.Update(context, category); err != nil {
		return nil, fmt.Errorf("category_service_update_failed: %w", err)
	}

	service.logger.Info("category_updated", slog.Int64("category_id", id))

	return category, nil
}

// Delete removes a category; posts filed under it become uncategorized.
func (service *Service) Delete(context context.Context, id int64) error {

	// Resolve first so deleting an unknown ID fails with CATEGORY_NOT_FOUND
	if _, err := service.repository.FindByID(context, id); err != nil {
		return fmt.Errorf("category_service_delete_lookup_failed: %w", err)
	}

	if err := service.repository.Delete(context, id); err != nil {
		return fmt.Errorf("category_service_delete_failed: %w", err)
	}

	service.logger.Warn("category_deleted", slog.Int64("category_id", id))

	return nil
}
