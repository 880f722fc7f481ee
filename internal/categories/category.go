// Copyright (c) 2026 Foodieblog. All rights reserved.

/*
Package categories manages the post classification taxonomy.

Categories form a flat, slug-addressable list. Readers browse by slug;
administrators maintain the set.
*/
package categories

import (
	"context"
	"time"
)

// # Domain Entities

// Category is one entry of the post taxonomy.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// # Repository Contracts

// Repository defines the persistence contract for categories.
type Repository interface {
	// List returns every category ordered by name.
	List(context context.Context) ([]*Category, error)

	// FindByID retrieves a category (CATEGORY_NOT_FOUND if absent).
	FindByID(context context.Context, id int64) (*Category, error)

	// FindBySlug retrieves a category by its URL slug.
	FindBySlug(context context.Context, slug string) (*Category, error)

	// Create persists a new category. Name and slug collisions surface as
	// DUPLICATE_RESOURCE.
	Create(context context.Context, category *Category) error

	// Update persists changes to an existing category.
	Update(context context.Context, category *Category) error

	// Delete removes a category. Posts referencing it keep their rows; the
	// foreign key is severed by the schema's ON DELETE SET NULL.
	Delete(context context.Context, id int64) error
}
