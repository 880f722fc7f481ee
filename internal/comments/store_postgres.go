// Copyright (c) 2026 Foodieblog. All rights reserved.

package comments

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

// PostgresRepository implements [Repository] against the comments table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs the concrete comment store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const commentColumns = `
	c.id, c.post_id, c.author_id, u.nickname, c.content, c.status,
	c.created_at, c.updated_at`

const commentJoins = `
	FROM comments c
	JOIN users u ON u.id = c.author_id`

func scanComment(row pgx.Row) (*Comment, error) {
	comment := &Comment{}
	err := row.Scan(
		&comment.ID, &comment.PostID, &comment.AuthorID, &comment.AuthorNickname,
		&comment.Content, &comment.Status, &comment.CreatedAt, &comment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// List returns a filtered page of comments plus the unpaged total.
func (repository *PostgresRepository) List(context context.Context, filter ListFilter, params pagination.Params) ([]*Comment, int64, error) {

	conditions := []string{}
	args := []any{}

	arg := func(value any) string {
		args = append(args, value)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.PostID != 0 {
		conditions = append(conditions, "c.post_id = "+arg(filter.PostID))
	}
	if filter.AuthorID != 0 {
		conditions = append(conditions, "c.author_id = "+arg(filter.AuthorID))
	}
	if filter.Status != "" {
		conditions = append(conditions, "c.status = "+arg(filter.Status))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) ` + commentJoins + ` ` + where
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, apperr.CodeCommentNotFound)
	}

	pageQuery := `SELECT ` + commentColumns + commentJoins + ` ` + where + `
		ORDER BY c.created_at ASC, c.id ASC
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, params.Limit(), params.Offset())

	rows, err := repository.db.Query(context, pageQuery, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, apperr.CodeCommentNotFound)
	}
	defer rows.Close()

	result := make([]*Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, apperr.CodeCommentNotFound)
		}
		result = append(result, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, apperr.CodeCommentNotFound)
	}

	return result, total, nil
}

// FindByID retrieves a comment by primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Comment, error) {
	comment, err := scanComment(repository.db.QueryRow(context,
		`SELECT `+commentColumns+commentJoins+` WHERE c.id = $1`, id,
	))
	if err != nil {
		return nil, dberr.Wrap(err, apperr.CodeCommentNotFound)
	}
	return comment, nil
}

// Create persists a new comment and hydrates its generated fields.
func (repository *PostgresRepository) Create(context context.Context, comment *Comment) error {
	query := `
		INSERT INTO comments (post_id, author_id, content, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		comment.PostID, comment.AuthorID, comment.Content, comment.Status,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, apperr.CodeCommentNotFound)
	}

	// Hydrate the joined author nickname for the response.
	hydrated, err := repository.FindByID(context, comment.ID)
	if err != nil {
		return err
	}
	*comment = *hydrated

	return nil
}

// Update persists the mutable fields of an existing comment.
func (repository *PostgresRepository) Update(context context.Context, comment *Comment) error {
	query := `
		UPDATE comments
		SET content = $2, status = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query,
		comment.ID, comment.Content, comment.Status,
	).Scan(&comment.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, apperr.CodeCommentNotFound)
	}

	return nil
}

// Delete removes a comment row.
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	_, err := repository.db.Exec(context, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, apperr.CodeCommentNotFound)
	}
	return nil
}
