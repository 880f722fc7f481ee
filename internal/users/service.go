// Copyright (c) 2026 Foodieblog. All rights reserved.

package users

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/internal/platform/sec"
	"github.com/foodieblog/api/pkg/pagination"
)

// # Service Layer

// Service orchestrates account lifecycle rules: registration uniqueness,
// self-service profile changes, and administrative moderation.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

// # Registration

// SignupInput carries the public registration payload.
type SignupInput struct {
	Email    string
	Password string
	Nickname string
}

/*
Signup registers a new account with the USER role.

Description: Email and nickname uniqueness are checked up front so the
caller gets the precise conflict code instead of a generic constraint
violation. The database unique indexes remain the backstop for races.

Returns:
  - *User: The created account
  - error: EMAIL_ALREADY_EXISTS, NICKNAME_ALREADY_EXISTS, or storage failures
*/
func (service *Service) Signup(context context.Context, input SignupInput) (*User, error) {

	// Business: each email registers at most one account
	emailTaken, err := service.repository.ExistsByEmail(context, input.Email)
	if err != nil {
		return nil, fmt.Errorf("user_service_signup_email_check_failed: %w", err)
	}
	if emailTaken {
		return nil, apperr.New(apperr.CodeEmailAlreadyExists)
	}

	// Business: nicknames are unique across the site
	nicknameTaken, err := service.repository.ExistsByNickname(context, input.Nickname)
	if err != nil {
		return nil, fmt.Errorf("user_service_signup_nickname_check_failed: %w", err)
	}
	if nicknameTaken {
		return nil, apperr.New(apperr.CodeNicknameAlreadyExists)
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user_service_signup_hash_failed: %w", err)
	}

	user := &User{
		Email:        input.Email,
		PasswordHash: hash,
		Nickname:     input.Nickname,
		Role:         string(sec.RoleUser),
		Active:       true,
	}

	if err := service.repository.Create(context, user); err != nil {
		return nil, fmt.Errorf("user_service_signup_create_failed: %w", err)
	}

	service.logger.Info("user_registered",
		slog.Int64("user_id", user.ID),
		slog.String("nickname", user.Nickname),
	)

	return user, nil
}

// # Self-Service Profile

/*
GetMe retrieves the caller's own account.

Returns:
  - error: USER_DEACTIVATED when the account has been switched off
*/
func (service *Service) GetMe(context context.Context, userID int64) (*User, error) {
	user, err := service.repository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("user_service_get_me_failed: %w", err)
	}

	if !user.Active {
		return nil, apperr.New(apperr.CodeUserDeactivated)
	}

	return user, nil
}

// UpdateMeInput carries the mutable self-service fields.
type UpdateMeInput struct {
	Nickname *string
}

/*
UpdateMe applies a partial profile change for the caller.

Description: Only the nickname is self-service mutable. A changed nickname
re-runs the uniqueness check before persisting.
*/
func (service *Service) UpdateMe(context context.Context, userID int64, input UpdateMeInput) (*User, error) {

	user, err := service.GetMe(context, userID)
	if err != nil {
		return nil, err
	}

	if input.Nickname != nil && *input.Nickname != user.Nickname {
		taken, err := service.repository.ExistsByNickname(context, *input.Nickname)
		if err != nil {
			return nil, fmt.Errorf("user_service_update_nickname_check_failed: %w", err)
		}
		if taken {
			return nil, apperr.New(apperr.CodeNicknameAlreadyExists)
		}
		user.Nickname = *input.Nickname
	}

	if err := service.repository.Update(context, user); err != nil {
		return nil, fmt.Errorf("user_service_update_failed: %w", err)
	}

	service.logger.Info("user_profile_updated", slog.Int64("user_id", userID))

	return user, nil
}

/*
ChangePassword replaces the caller's password after verifying the current one.

Returns:
  - error: UNAUTHORIZED when the current password does not match
*/
func (service *Service) ChangePassword(context context.Context, userID int64, currentPassword, newPassword string) error {

	user, err := service.GetMe(context, userID)
	if err != nil {
		return err
	}

	// Business: a stolen access token alone must not suffice to rotate the password
	if !sec.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperr.New(apperr.CodeUnauthorized)
	}

	hash, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("user_service_password_hash_failed: %w", err)
	}
	user.PasswordHash = hash

	if err := service.repository.Update(context, user); err != nil {
		return fmt.Errorf("user_service_password_update_failed: %w", err)
	}

	service.logger.Info("user_password_changed", slog.Int64("user_id", userID))

	return nil
}

// # Administration

// List returns a page of the user directory with an optional keyword filter.
func (service *Service) List(context context.Context, filter ListFilter, params pagination.Params) ([]*User, int64, error) {
	return service.repository.List(context, filter, params)
}

// Get retrieves any account by ID for administrative inspection.
func (service *Service) Get(context context.Context, id int64) (*User, error) {
	return service.repository.FindByID(context, id)
}

/*
SetActive switches an account on or off.

Description: Deactivation does not revoke issued access tokens; it takes
effect at the next profile read or refresh.
*/
func (service *Service) SetActive(context context.Context, id int64, active bool) (*User, error) {

	user, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("user_service_set_active_lookup_failed: %w", err)
	}

	user.Active = active
	if err := service.repository.Update(context, user); err != nil {
		return nil, fmt.Errorf("user_service_set_active_failed: %w", err)
	}

	if active {
		service.logger.Info("user_activated", slog.Int64("user_id", id))
	} else {
		service.logger.Warn("user_deactivated", slog.Int64("user_id", id))
	}

	return user, nil
}

/*
ChangeRole assigns a new role to an account.

Returns:
  - error: BAD_REQUEST for roles outside the closed set
*/
func (service *Service) ChangeRole(context context.Context, id int64, role string) (*User, error) {

	if !sec.Role(role).Valid() {
		return nil, apperr.New(apperr.CodeBadRequest)
	}

	user, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("user_service_change_role_lookup_failed: %w", err)
	}

	user.Role = role
	if err := service.repository.Update(context, user); err != nil {
		return nil, fmt.Errorf("user_service_change_role_failed: %w", err)
	}

	service.logger.Warn("user_role_changed",
		slog.Int64("user_id", id),
		slog.String("role", role),
	)

	return user, nil
}
