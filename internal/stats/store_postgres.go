// Copyright (c) 2026 Foodieblog. All rights reserved.

package stats

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/internal/platform/dberr"
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] with aggregate SQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs the concrete stats store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Daily returns zero-filled per-day counts ending today, oldest first.
// generate_series supplies the calendar so quiet days appear as zeroes.
func (repository *PostgresRepository) Daily(context context.Context, days int) ([]DailyCount, error) {
	query := `
		SELECT to_char(d, 'YYYY-MM-DD') AS day,
		       (SELECT COUNT(*) FROM posts p WHERE p.created_at::date = d) AS posts,
		       (SELECT COUNT(*) FROM comments c WHERE c.created_at::date = d) AS comments
		FROM generate_series(
			CURRENT_DATE - ($1::int - 1) * INTERVAL '1 day',
			CURRENT_DATE,
			INTERVAL '1 day'
		) AS d
		ORDER BY d ASC`

	rows, err := repository.db.Query(context, query, days)
	if err != nil {
		return nil, dberr.Wrap(err, apperr.CodeResourceNotFound)
	}
	defer rows.Close()

	result := make([]DailyCount, 0, days)
	for rows.Next() {
		var count DailyCount
		if err := rows.Scan(&count.Date, &count.Posts, &count.Comments); err != nil {
			return nil, dberr.Wrap(err, apperr.CodeResourceNotFound)
		}
		result = append(result, count)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, apperr.CodeResourceNotFound)
	}

	return result, nil
}

// TopAuthors ranks authors by posts published within the window.
func (repository *PostgresRepository) TopAuthors(context context.Context, days, limit int) ([]TopAuthor, error) {
	query := `
		SELECT u.id, u.nickname, COUNT(p.id) AS post_count
		FROM users u
		JOIN posts p ON p.author_id = u.id
		WHERE p.status = 'PUBLISHED'
		  AND p.published_at >= NOW() - $1::int * INTERVAL '1 day'
		GROUP BY u.id, u.nickname
		ORDER BY post_count DESC, u.id ASC
		LIMIT $2`

	rows, err := repository.db.Query(context, query, days, limit)
	if err != nil {
		return nil, dberr.Wrap(err, apperr.CodeResourceNotFound)
	}
	defer rows.Close()

	result := make([]TopAuthor, 0, limit)
	for rows.Next() {
		var author TopAuthor
		if err := rows.Scan(&author.AuthorID, &author.Nickname, &author.PostCount); err != nil {
			return nil, dberr.Wrap(err, apperr.CodeResourceNotFound)
		}
		result = append(result, author)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, apperr.CodeResourceNotFound)
	}

	return result, nil
}
