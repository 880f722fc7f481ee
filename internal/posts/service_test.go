// Copyright (c) 2026 Foodieblog. All rights reserved.

package posts

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/pkg/pagination"
)

// # Test Fakes

// fakeRepository is an in-memory [Repository].
type fakeRepository struct {
	byID   map[int64]*Post
	nextID int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[int64]*Post)}
}

func (f *fakeRepository) Create(_ context.Context, post *Post) error {
	f.nextID++
	post.ID = f.nextID
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	clone := *post
	f.byID[post.ID] = &clone
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id int64) (*Post, error) {
	post, found := f.byID[id]
	if !found {
		return nil, apperr.New(apperr.CodePostNotFound)
	}
	clone := *post
	return &clone, nil
}

func (f *fakeRepository) List(_ context.Context, filter ListFilter, params pagination.Params) ([]*Post, int64, error) {
	matched := make([]*Post, 0)
	for _, post := range f.byID {
		if filter.Status != "" && post.Status != filter.Status {
			continue
		}
		clone := *post
		matched = append(matched, &clone)
	}
	return matched, int64(len(matched)), nil
}

func (f *fakeRepository) Update(_ context.Context, post *Post) error {
	if _, found := f.byID[post.ID]; !found {
		return apperr.New(apperr.CodePostNotFound)
	}
	post.UpdatedAt = time.Now()
	clone := *post
	f.byID[post.ID] = &clone
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id int64) error {
	delete(f.byID, id)
	return nil
}

// fakeCategories is a [CategoryChecker] with a fixed set of known IDs.
type fakeCategories struct {
	known map[int64]bool
}

func (f *fakeCategories) Exists(_ context.Context, id int64) (bool, error) {
	return f.known[id], nil
}

func newTestService(t *testing.T) (*Service, *fakeRepository) {
	t.Helper()
	repository := newFakeRepository()
	categories := &fakeCategories{known: map[int64]bool{1: true}}
	return NewService(repository, categories, slog.Default()), repository
}

func createDraft(t *testing.T, service *Service) *Post {
	t.Helper()
	post, err := service.Create(context.Background(), 7, Input{
		Title:   "Hidden ramen bar behind the station",
		Content: "Twelve seats, one broth, no menu.",
	})
	require.NoError(t, err)
	return post
}

// # Creation

/*
TestService_Create verifies the DRAFT starting state and the category guard.
*/
func TestService_Create(t *testing.T) {
	service, _ := newTestService(t)

	t.Run("starts_as_draft", func(t *testing.T) {
		post := createDraft(t, service)
		assert.Equal(t, StatusDraft, post.Status)
		assert.Nil(t, post.PublishedAt)
	})

	t.Run("known_category", func(t *testing.T) {
		categoryID := int64(1)
		post, err := service.Create(context.Background(), 7, Input{
			Title:      "Best bánh mì in town",
			Content:    "The baguette makes it.",
			CategoryID: &categoryID,
		})
		require.NoError(t, err)
		assert.Equal(t, categoryID, *post.CategoryID)
	})

	t.Run("unknown_category", func(t *testing.T) {
		categoryID := int64(42)
		_, err := service.Create(context.Background(), 7, Input{
			Title:      "Orphaned",
			Content:    "Should not land.",
			CategoryID: &categoryID,
		})
		assert.True(t, apperr.IsCode(err, apperr.CodeCategoryNotFound))
	})
}

// # Lifecycle

/*
TestService_Publish covers the draft-to-published transition and its
conflict cases.
*/
func TestService_Publish(t *testing.T) {
	service, _ := newTestService(t)

	frozen := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return frozen }

	post := createDraft(t, service)

	published, err := service.Publish(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, published.Status)
	require.NotNil(t, published.PublishedAt)
	assert.Equal(t, frozen, *published.PublishedAt)

	t.Run("already_published", func(t *testing.T) {
		_, err := service.Publish(context.Background(), post.ID)
		assert.True(t, apperr.IsCode(err, apperr.CodeStateConflict))
	})

	t.Run("unknown_post", func(t *testing.T) {
		_, err := service.Publish(context.Background(), 404)
		assert.True(t, apperr.IsCode(err, apperr.CodePostNotFound))
	})
}

/*
TestService_Unpublish verifies the way back to draft clears the publish
timestamp, and that a draft cannot be unpublished.
*/
func TestService_Unpublish(t *testing.T) {
	service, _ := newTestService(t)
	post := createDraft(t, service)

	t.Run("draft_conflicts", func(t *testing.T) {
		_, err := service.Unpublish(context.Background(), post.ID)
		assert.True(t, apperr.IsCode(err, apperr.CodeStateConflict))
	})

	_, err := service.Publish(context.Background(), post.ID)
	require.NoError(t, err)

	withdrawn, err := service.Unpublish(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, withdrawn.Status)
	assert.Nil(t, withdrawn.PublishedAt)
}

// # Content Updates

/*
TestService_Update checks that edits leave the lifecycle status alone.
*/
func TestService_Update(t *testing.T) {
	service, _ := newTestService(t)
	post := createDraft(t, service)

	_, err := service.Publish(context.Background(), post.ID)
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), post.ID, Input{
		Title:   "Hidden ramen bar, revisited",
		Content: "The broth changed. For the better.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hidden ramen bar, revisited", updated.Title)
	assert.Equal(t, StatusPublished, updated.Status)
}

/*
TestService_Delete removes the post and leaves further lookups empty.
*/
func TestService_Delete(t *testing.T) {
	service, repository := newTestService(t)
	post := createDraft(t, service)

	require.NoError(t, service.Delete(context.Background(), post.ID))
	assert.Empty(t, repository.byID)

	err := service.Delete(context.Background(), post.ID)
	assert.True(t, apperr.IsCode(err, apperr.CodePostNotFound))
}
