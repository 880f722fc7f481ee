// Copyright (c) 2026 Foodieblog. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/internal/platform/sec"
)

// # Service Layer

// Service orchestrates the authentication flows: credential login, access
// token refresh, and logout.
type Service struct {
	sessions SessionRepository
	users    UserDirectory
	tokens   *sec.TokenService
	logger   *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

// NewService constructs a new [Service] with its dependencies.
func NewService(sessions SessionRepository, users UserDirectory, tokens *sec.TokenService, logger *slog.Logger) *Service {
	return &Service{
		sessions: sessions,
		users:    users,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}
}

// # Transport Shapes

// UserSummary is the caller-facing identity snapshot returned on login.
type UserSummary struct {
	UserID   int64  `json:"userId"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

// LoginResult carries the minted token pair plus the identity snapshot.
type LoginResult struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         UserSummary `json:"user"`
}

// RefreshResult carries the re-minted access token. The refresh token is
// returned unchanged: sessions are not rotated on refresh.
type RefreshResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// # Authentication Flows

/*
Login verifies credentials and opens the account's single session.

Description: An unknown email fails with USER_NOT_FOUND; a known email with
the wrong password fails with UNAUTHORIZED. Success replaces any previous
session, stamps last_login_at, and returns a fresh token pair.
*/
func (service *Service) Login(context context.Context, email, password string) (*LoginResult, error) {

	user, err := service.users.FindByEmail(context, email)
	if err != nil {
		return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.New(apperr.CodeUnauthorized)
	}

	accessToken, err := service.tokens.IssueAccessToken(user.ID, user.Role, user.Email, user.Nickname)
	if err != nil {
		return nil, fmt.Errorf("auth_service_login_access_mint_failed: %w", err)
	}

	refreshToken, err := service.tokens.IssueRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("auth_service_login_refresh_mint_failed: %w", err)
	}

	// Single-session: whatever refresh token existed before is gone now
	if err := service.sessions.Replace(context, user.ID, refreshToken, service.tokens.RefreshExpiryAt()); err != nil {
		return nil, fmt.Errorf("auth_service_login_session_failed: %w", err)
	}

	// Best effort; a failed stamp must not fail the login
	if err := service.users.MarkLogin(context, user.ID, service.now()); err != nil {
		service.logger.Warn("auth_mark_login_failed",
			slog.Int64("user_id", user.ID),
			slog.Any("error", err),
		)
	}

	service.logger.Info("user_logged_in", slog.Int64("user_id", user.ID))

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserSummary{
			UserID:   user.ID,
			Email:    user.Email,
			Nickname: user.Nickname,
			Role:     user.Role,
		},
	}, nil
}

/*
Refresh exchanges a stored refresh token for a fresh access token.

Description: Unknown tokens fail with UNAUTHORIZED. An expired session is
deleted before failing with TOKEN_EXPIRED, so the dead token cannot be
retried. The new access token reflects the account's CURRENT role and
identity, not what it was at login. The refresh token itself is not rotated.
*/
func (service *Service) Refresh(context context.Context, refreshToken string) (*RefreshResult, error) {

	session, err := service.sessions.FindByToken(context, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_lookup_failed: %w", err)
	}

	if session.Expired(service.now()) {
		if err := service.sessions.DeleteByToken(context, refreshToken); err != nil {
			service.logger.Warn("auth_expired_session_cleanup_failed",
				slog.Int64("user_id", session.UserID),
				slog.Any("error", err),
			)
		}
		return nil, apperr.New(apperr.CodeTokenExpired)
	}

	user, err := service.users.FindByID(context, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_user_failed: %w", err)
	}

	accessToken, err := service.tokens.IssueAccessToken(user.ID, user.Role, user.Email, user.Nickname)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_mint_failed: %w", err)
	}

	service.logger.Info("access_token_refreshed", slog.Int64("user_id", user.ID))

	return &RefreshResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

/*
Logout closes the session holding the given refresh token.

Description: Idempotent. Logging out an unknown or already-removed token
succeeds silently.
*/
func (service *Service) Logout(context context.Context, refreshToken string) error {

	if err := service.sessions.DeleteByToken(context, refreshToken); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	service.logger.Info("user_logged_out")

	return nil
}
