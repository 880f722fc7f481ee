// Copyright (c) 2026 Foodieblog. All rights reserved.

package users

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/internal/platform/sec"
	"github.com/foodieblog/api/pkg/pagination"
)

// # Test Fake

// fakeRepository is an in-memory [Repository].
type fakeRepository struct {
	byID   map[int64]*User
	nextID int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[int64]*User)}
}

func (f *fakeRepository) Create(_ context.Context, user *User) error {
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	f.byID[user.ID] = &clone
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id int64) (*User, error) {
	user, found := f.byID[id]
	if !found {
		return nil, apperr.New(apperr.CodeUserNotFound)
	}
	clone := *user
	return &clone, nil
}

func (f *fakeRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, user := range f.byID {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperr.New(apperr.CodeUserNotFound)
}

func (f *fakeRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := f.FindByEmail(context.Background(), email)
	return err == nil, nil
}

func (f *fakeRepository) ExistsByNickname(_ context.Context, nickname string) (bool, error) {
	for _, user := range f.byID {
		if user.Nickname == nickname {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) List(_ context.Context, filter ListFilter, params pagination.Params) ([]*User, int64, error) {
	matched := make([]*User, 0)
	for _, user := range f.byID {
		if filter.Keyword == "" ||
			strings.Contains(user.Email, filter.Keyword) ||
			strings.Contains(user.Nickname, filter.Keyword) {
			clone := *user
			matched = append(matched, &clone)
		}
	}
	return matched, int64(len(matched)), nil
}

func (f *fakeRepository) Update(_ context.Context, user *User) error {
	if _, found := f.byID[user.ID]; !found {
		return apperr.New(apperr.CodeUserNotFound)
	}
	user.UpdatedAt = time.Now()
	clone := *user
	f.byID[user.ID] = &clone
	return nil
}

func (f *fakeRepository) MarkLogin(_ context.Context, id int64, at time.Time) error {
	if user, found := f.byID[id]; found {
		user.LastLoginAt = &at
	}
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeRepository) {
	t.Helper()
	repository := newFakeRepository()
	return NewService(repository, slog.Default()), repository
}

func signup(t *testing.T, service *Service, email, nickname string) *User {
	t.Helper()
	user, err := service.Signup(context.Background(), SignupInput{
		Email:    email,
		Password: "s3cret-pass",
		Nickname: nickname,
	})
	require.NoError(t, err)
	return user
}

// # Registration

/*
TestService_Signup checks the happy path and the two distinct conflict codes.
*/
func TestService_Signup(t *testing.T) {
	service, _ := newTestService(t)

	user := signup(t, service, "chef@foodieblog.app", "chef")
	assert.Equal(t, string(sec.RoleUser), user.Role)
	assert.True(t, user.Active)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	t.Run("email_conflict", func(t *testing.T) {
		_, err := service.Signup(context.Background(), SignupInput{
			Email:    "chef@foodieblog.app",
			Password: "another-pass",
			Nickname: "someone-else",
		})
		assert.True(t, apperr.IsCode(err, apperr.CodeEmailAlreadyExists))
	})

	t.Run("nickname_conflict", func(t *testing.T) {
		_, err := service.Signup(context.Background(), SignupInput{
			Email:    "other@foodieblog.app",
			Password: "s3cret-pass",
			Nickname: "chef",
		})
		assert.True(t, apperr.IsCode(err, apperr.CodeNicknameAlreadyExists))
	})
}

// # Self-Service

/*
TestService_GetMe verifies the deactivation guard on the profile read.
*/
func TestService_GetMe(t *testing.T) {
	service, repository := newTestService(t)
	user := signup(t, service, "chef@foodieblog.app", "chef")

	loaded, err := service.GetMe(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "chef", loaded.Nickname)

	repository.byID[user.ID].Active = false

	_, err = service.GetMe(context.Background(), user.ID)
	assert.True(t, apperr.IsCode(err, apperr.CodeUserDeactivated))
}

/*
TestService_ChangePassword requires the current password before rotating.
*/
func TestService_ChangePassword(t *testing.T) {
	service, repository := newTestService(t)
	user := signup(t, service, "chef@foodieblog.app", "chef")

	err := service.ChangePassword(context.Background(), user.ID, "wrong-current", "new-pass-123")
	assert.True(t, apperr.IsCode(err, apperr.CodeUnauthorized))

	err = service.ChangePassword(context.Background(), user.ID, "s3cret-pass", "new-pass-123")
	require.NoError(t, err)

	assert.True(t, sec.CheckPasswordHash("new-pass-123", repository.byID[user.ID].PasswordHash))
}

/*
TestService_UpdateMe verifies the nickname uniqueness re-check.
*/
func TestService_UpdateMe(t *testing.T) {
	service, _ := newTestService(t)
	first := signup(t, service, "chef@foodieblog.app", "chef")
	signup(t, service, "critic@foodieblog.app", "critic")

	taken := "critic"
	_, err := service.UpdateMe(context.Background(), first.ID, UpdateMeInput{Nickname: &taken})
	assert.True(t, apperr.IsCode(err, apperr.CodeNicknameAlreadyExists))

	fresh := "head-chef"
	updated, err := service.UpdateMe(context.Background(), first.ID, UpdateMeInput{Nickname: &fresh})
	require.NoError(t, err)
	assert.Equal(t, "head-chef", updated.Nickname)
}

// # Administration

/*
TestService_ChangeRole rejects roles outside the closed set.
*/
func TestService_ChangeRole(t *testing.T) {
	service, _ := newTestService(t)
	user := signup(t, service, "chef@foodieblog.app", "chef")

	_, err := service.ChangeRole(context.Background(), user.ID, "SUPERUSER")
	assert.True(t, apperr.IsCode(err, apperr.CodeBadRequest))

	promoted, err := service.ChangeRole(context.Background(), user.ID, "ADMIN")
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", promoted.Role)
}

/*
TestService_SetActive flips the account switch both ways.
*/
func TestService_SetActive(t *testing.T) {
	service, _ := newTestService(t)
	user := signup(t, service, "chef@foodieblog.app", "chef")

	deactivated, err := service.SetActive(context.Background(), user.ID, false)
	require.NoError(t, err)
	assert.False(t, deactivated.Active)

	_, err = service.GetMe(context.Background(), user.ID)
	assert.True(t, apperr.IsCode(err, apperr.CodeUserDeactivated))

	reactivated, err := service.SetActive(context.Background(), user.ID, true)
	require.NoError(t, err)
	assert.True(t, reactivated.Active)
}
