// Copyright (c) 2026 Foodieblog. All rights reserved.

package categories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodieblog/api/internal/platform/apperr"
)

// # Test Fake

// fakeRepository is an in-memory [Repository] enforcing slug uniqueness.
type fakeRepository struct {
	byID   map[int64]*Category
	nextID int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[int64]*Category)}
}

func (f *fakeRepository) List(_ context.Context) ([]*Category, error) {
	listed := make([]*Category, 0, len(f.byID))
	for _, category := range f.byID {
		clone := *category
		listed = append(listed, &clone)
	}
	return listed, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id int64) (*Category, error) {
	category, found := f.byID[id]
	if !found {
		return nil, apperr.New(apperr.CodeCategoryNotFound)
	}
	clone := *category
	return &clone, nil
}

func (f *fakeRepository) FindBySlug(_ context.Context, slug string) (*Category, error) {
	for _, category := range f.byID {
		if category.Slug == slug {
			clone := *category
			return &clone, nil
		}
	}
	return nil, apperr.New(apperr.CodeCategoryNotFound)
}

func (f *fakeRepository) Create(_ context.Context, category *Category) error {
	if _, err := f.FindBySlug(context.Background(), category.Slug); err == nil {
		return apperr.New(apperr.CodeDuplicateResource)
	}
	f.nextID++
	category.ID = f.nextID
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	clone := *category
	f.byID[category.ID] = &clone
	return nil
}

func (f *fakeRepository) Update(_ context.Context, category *Category) error {
	if _, found := f.byID[category.ID]; !found {
		return apperr.New(apperr.CodeCategoryNotFound)
	}
	category.UpdatedAt = time.Now()
	clone := *category
	f.byID[category.ID] = &clone
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id int64) error {
	delete(f.byID, id)
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeRepository) {
	t.Helper()
	repository := newFakeRepository()
	return NewService(repository, slog.Default()), repository
}

// # Slug Derivation

/*
TestService_Create derives the URL slug from the admin-supplied name and
surfaces collisions as DUPLICATE_RESOURCE.
*/
func TestService_Create(t *testing.T) {
	service, _ := newTestService(t)

	category, err := service.Create(context.Background(), Input{Name: "Street Food"})
	require.NoError(t, err)
	assert.Equal(t, "street-food", category.Slug)

	t.Run("slug_collision", func(t *testing.T) {
		// A different spelling that slugs to the same segment still collides.
		_, err := service.Create(context.Background(), Input{Name: "STREET   FOOD"})
		assert.True(t, apperr.IsCode(err, apperr.CodeDuplicateResource))
	})
}

/*
TestService_Update re-derives the slug on rename, so the old slug stops
resolving.
*/
func TestService_Update(t *testing.T) {
	service, _ := newTestService(t)

	category, err := service.Create(context.Background(), Input{Name: "Street Food"})
	require.NoError(t, err)

	renamed, err := service.Update(context.Background(), category.ID, Input{Name: "Night Markets"})
	require.NoError(t, err)
	assert.Equal(t, "night-markets", renamed.Slug)

	_, err = service.GetBySlug(context.Background(), "street-food")
	assert.True(t, apperr.IsCode(err, apperr.CodeCategoryNotFound))

	found, err := service.GetBySlug(context.Background(), "night-markets")
	require.NoError(t, err)
	assert.Equal(t, category.ID, found.ID)
}

/*
TestService_Delete resolves the ID before deleting so unknown IDs fail
with CATEGORY_NOT_FOUND.
*/
func TestService_Delete(t *testing.T) {
	service, repository := newTestService(t)

	category, err := service.Create(context.Background(), Input{Name: "Brunch"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), category.ID))
	assert.Empty(t, repository.byID)

	err = service.Delete(context.Background(), category.ID)
	assert.True(t, apperr.IsCode(err, apperr.CodeCategoryNotFound))
}
