// Copyright (c) 2026 Foodieblog. All rights reserved.

package posts

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/internal/platform/dberr"
	"github.com/foodieblog/api/pkg/pagination"
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] against the posts table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs the concrete post store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// postColumns joins the author nickname and category name into every read.
const postColumns = `
	p.id, p.author_id, u.nickname, p.category_id, c.name,
	p.title, p.content, p.restaurant_name, p.visited_date,
	p.status, p.published_at, p.created_at, p.updated_at`

const postJoins = `
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN categories c ON c.id = p.category_id`

func scanPost(row pgx.Row) (*Post, error) {
	post := &Post{}
	err := row.Scan(
		&post.ID, &post.AuthorID, &post.AuthorNickname, &post.CategoryID, &post.CategoryName,
		&post.Title, &post.Content, &post.RestaurantName, &post.VisitedDate,
		&post.Status, &post.PublishedAt, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// buildWhere translates a [ListFilter] into a WHERE clause and its arguments.
func buildWhere(filter ListFilter) (string, []any) {
	conditions := []string{}
	args := []any{}

	arg := func(value any) string {
		args = append(args, value)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Keyword != "" {
		placeholder := arg("%" + filter.Keyword + "%")
		conditions = append(conditions, "(p.title ILIKE "+placeholder+" OR p.content ILIKE "+placeholder+")")
	}
	if filter.CategoryID != 0 {
		conditions = append(conditions, "p.category_id = "+arg(filter.CategoryID))
	}
	if filter.AuthorID != 0 {
		conditions = append(conditions, "p.author_id = "+arg(filter.AuthorID))
	}
	if filter.Status != "" {
		conditions = append(conditions, "p.status = "+arg(filter.Status))
	}
	if filter.VisitedFrom != nil {
		conditions = append(conditions, "p.visited_date >= "+arg(*filter.VisitedFrom))
	}
	if filter.VisitedTo != nil {
		conditions = append(conditions, "p.visited_date <= "+arg(*filter.VisitedTo))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// List returns a filtered page of posts plus the unpaged total, newest first.
func (repository *PostgresRepository) List(context context.Context, filter ListFilter, params pagination.Params) ([]*Post, int64, error) {

	where, args := buildWhere(filter)

	var total int64
	countQuery := `SELECT COUNT(*) ` + postJoins + ` ` + where
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, apperr.CodePostNotFound)
	}

	pageQuery := `SELECT ` + postColumns + postJoins + ` ` + where + `
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, params.Limit(), params.Offset())

	rows, err := repository.db.Query(context, pageQuery, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, apperr.CodePostNotFound)
	}
	defer rows.Close()

	result := make([]*Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, apperr.CodePostNotFound)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, apperr.CodePostNotFound)
	}

	return result, total, nil
}

// FindByID retrieves a post by primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Post, error) {
	post, err := scanPost(repository.db.QueryRow(context,
		`SELECT `+postColumns+postJoins+` WHERE p.id = $1`, id,
	))
	if err != nil {
		return nil, dberr.Wrap(err, apperr.CodePostNotFound)
	}
	return post, nil
}

// Exists reports whether a post with the given ID is present.
func (repository *PostgresRepository) Exists(context context.Context, id int64) (bool, error) {
	var exists bool
	err := repository.db.QueryRow(context,
		`SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, dberr.Wrap(err, apperr.CodePostNotFound)
	}
	return exists, nil
}

// Create persists a new post and hydrates its generated fields.
func (repository *PostgresRepository) Create(context context.Context, post *Post) error {
	query := `
		INSERT INTO posts (author_id, category_id, title, content, restaurant_name, visited_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		post.AuthorID, post.CategoryID, post.Title, post.Content,
		post.RestaurantName, post.VisitedDate, post.Status,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, apperr.CodePostNotFound)
	}

	// Hydrate the joined fields for the response.
	hydrated, err := repository.FindByID(context, post.ID)
	if err != nil {
		return err
	}
	*post = *hydrated

	return nil
}

// Update persists the mutable fields of an existing post.
func (repository *PostgresRepository) Update(context context.Context, post *Post) error {
	query := `
		UPDATE posts
		SET category_id = $2, title = $3, content = $4, restaurant_name = $5,
		    visited_date = $6, status = $7, published_at = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query,
		post.ID, post.CategoryID, post.Title, post.Content,
		post.RestaurantName, post.VisitedDate, post.Status, post.PublishedAt,
	).Scan(&post.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, apperr.CodePostNotFound)
	}

	return nil
}

// Delete removes a post row; comments cascade via the schema.
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	_, err := repository.db.Exec(context, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, apperr.CodePostNotFound)
	}
	return nil
}
