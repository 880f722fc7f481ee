// Copyright (c) 2026 Foodieblog. All rights reserved.

package users

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/internal/platform/dberr"
	"github.com/foodieblog/api/pkg/pagination"
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] against the users table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs the concrete user store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, password_hash, nickname, role, active, last_login_at, created_at, updated_at`

// placeholder renders the positional parameter $n for dynamically built queries.
func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Nickname,
		&user.Role, &user.Active, &user.LastLoginAt,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create persists a new account and hydrates its generated fields.
func (repository *PostgresRepository) Create(context context.Context, user *User) error {
	query := `
		INSERT INTO users (email, password_hash, nickname, role, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		user.Email, user.PasswordHash, user.Nickname, user.Role, user.Active,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, apperr.CodeUserNotFound)
	}

	return nil
}

// FindByID retrieves an account by primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, apperr.CodeUserNotFound)
	}
	return user, nil
}

// FindByEmail retrieves an account by its unique email.
func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(repository.db.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, apperr.CodeUserNotFound)
	}
	return user, nil
}

// ExistsByEmail reports whether any account uses the given email.
func (repository *PostgresRepository) ExistsByEmail(context context.Context, email string) (bool, error) {
	var exists bool
	err := repository.db.QueryRow(context,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, dberr.Wrap(err, apperr.CodeUserNotFound)
	}
	return exists, nil
}

// ExistsByNickname reports whether any account uses the given nickname.
func (repository *PostgresRepository) ExistsByNickname(context context.Context, nickname string) (bool, error) {
	var exists bool
	err := repository.db.QueryRow(context,
		`SELECT EXISTS (SELECT 1 FROM users WHERE nickname = $1)`, nickname,
	).Scan(&exists)
	if err != nil {
		return false, dberr.Wrap(err, apperr.CodeUserNotFound)
	}
	return exists, nil
}

// List returns a keyword-filtered page of the directory plus the total count.
func (repository *PostgresRepository) List(context context.Context, filter ListFilter, params pagination.Params) ([]*User, int64, error) {

	// Shared WHERE clause keeps the count and page queries in agreement.
	where := ``
	args := []any{}
	if filter.Keyword != "" {
		where = `WHERE email ILIKE $1 OR nickname ILIKE $1`
		args = append(args, "%"+filter.Keyword+"%")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM users ` + where
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, apperr.CodeUserNotFound)
	}

	pageQuery := `SELECT ` + userColumns + ` FROM users ` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)
	args = append(args, params.Limit(), params.Offset())

	rows, err := repository.db.Query(context, pageQuery, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, apperr.CodeUserNotFound)
	}
	defer rows.Close()

	result := make([]*User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, apperr.CodeUserNotFound)
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, apperr.CodeUserNotFound)
	}

	return result, total, nil
}

// Update persists the mutable fields of an existing account.
func (repository *PostgresRepository) Update(context context.Context, user *User) error {
	query := `
		UPDATE users
		SET email = $2, password_hash = $3, nickname = $4, role = $5,
		    active = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query,
		user.ID, user.Email, user.PasswordHash, user.Nickname, user.Role, user.Active,
	).Scan(&user.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, apperr.CodeUserNotFound)
	}

	return nil
}

// MarkLogin stamps last_login_at for the account.
func (repository *PostgresRepository) MarkLogin(context context.Context, id int64, at time.Time) error {
	_, err := repository.db.Exec(context,
		`UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at,
	)
	if err != nil {
		return dberr.Wrap(err, apperr.CodeUserNotFound)
	}
	return nil
}
