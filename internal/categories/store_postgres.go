// Copyright (c) 2026 Foodieblog. All rights reserved.

package categories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/internal/platform/dberr"
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] against the categories table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs the concrete category store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const categoryColumns = `id, name, slug, description, created_at, updated_at`

func scanCategory(row pgx.Row) (*Category, error) {
	category := &Category{}
	err := row.Scan(
		&category.ID, &category.Name, &category.Slug, &category.Description,
		&category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return category, nil
}

// List returns every category ordered by name.
func (repository *PostgresRepository) List(context context.Context) ([]*Category, error) {
	rows, err := repository.db.Query(context,
		`SELECT `+categoryColumns+` FROM categories ORDER BY name ASC`,
	)
	if err != nil {
		return nil, dberr.Wrap(err, apperr.CodeCategoryNotFound)
	}
	defer rows.Close()

	result := make([]*Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, dberr.Wrap(err, apperr.CodeCategoryNotFound)
		}
		result = append(result, category)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, apperr.CodeCategoryNotFound)
	}

	return result, nil
}

// FindByID retrieves a category by primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Category, error) {
	category, err := scanCategory(repository.db.QueryRow(context,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id,
	))
	if err != nil {
		return nil, dberr.Wrap(err, apperr.CodeCategoryNotFound)
	}
	return category, nil
}

// FindBySlug retrieves a category by its URL slug.
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Category, error) {
	category, err := scanCategory(repository.db.QueryRow(context,
		`SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug,
	))
	if err != nil {
		return nil, dberr.Wrap(err, apperr.CodeCategoryNotFound)
	}
	return category, nil
}

// Exists reports whether a category with the given ID is present.
func (repository *PostgresRepository) Exists(context context.Context, id int64) (bool, error) {
	var exists bool
	err := repository.db.QueryRow(context,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, dberr.Wrap(err, apperr.CodeCategoryNotFound)
	}
	return exists, nil
}

// Create persists a new category and hydrates its generated fields.
func (repository *PostgresRepository) Create(context context.Context, category *Category) error {
	query := `
		INSERT INTO categories (name, slug, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		category.Name, category.Slug, category.Description,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, apperr.CodeCategoryNotFound)
	}

	return nil
}

// Update persists changes to an existing category.
func (repository *PostgresRepository) Update(context context.Context, category *Category) error {
	query := `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query,
		category.ID, category.Name, category.Slug, category.Description,
	).Scan(&category.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, apperr.CodeCategoryNotFound)
	}

	return nil
}

// Delete removes a category row.
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	_, err := repository.db.Exec(context, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, apperr.CodeCategoryNotFound)
	}
	return nil
}
