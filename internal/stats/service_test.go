// Copyright (c) 2026 Foodieblog. All rights reserved.

package stats

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// # Test Fakes

// fakeRepository records the windows it was asked for.
type fakeRepository struct {
	dailyDays       []int
	topAuthorsDays  []int
	topAuthorsLimit []int
}

func (f *fakeRepository) Daily(_ context.Context, days int) ([]DailyCount, error) {
	f.dailyDays = append(f.dailyDays, days)
	return []DailyCount{{Date: "2026-03-14", Posts: 3, Comments: 9}}, nil
}

func (f *fakeRepository) TopAuthors(_ context.Context, days, limit int) ([]TopAuthor, error) {
	f.topAuthorsDays = append(f.topAuthorsDays, days)
	f.topAuthorsLimit = append(f.topAuthorsLimit, limit)
	return []TopAuthor{{AuthorID: 7, Nickname: "chef", PostCount: 3}}, nil
}

// fakeCache is an in-memory [Cache] that can be forced to fail.
type fakeCache struct {
	entries map[string][]byte
	broken  bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string, target any) (bool, error) {
	if f.broken {
		return false, errors.New("connection refused")
	}
	payload, found := f.entries[key]
	if !found {
		return false, nil
	}
	return true, json.Unmarshal(payload, target)
}

func (f *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	if f.broken {
		return errors.New("connection refused")
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = payload
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeRepository, *fakeCache) {
	t.Helper()
	repository := &fakeRepository{}
	cache := newFakeCache()
	return NewService(repository, cache, slog.Default()), repository, cache
}

// # Memoization

/*
TestService_Daily verifies that the second identical request is served
from the cache without touching the source query.
*/
func TestService_Daily(t *testing.T) {
	service, repository, _ := newTestService(t)

	first, err := service.Daily(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := service.Daily(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, []int{7}, repository.dailyDays)
}

/*
TestService_TopAuthors keys the cache by both window and limit, so the
two requests below must each reach the source once.
*/
func TestService_TopAuthors(t *testing.T) {
	service, repository, _ := newTestService(t)

	_, err := service.TopAuthors(context.Background(), 30, 10)
	require.NoError(t, err)
	_, err = service.TopAuthors(context.Background(), 30, 5)
	require.NoError(t, err)
	_, err = service.TopAuthors(context.Background(), 30, 10)
	require.NoError(t, err)

	assert.Equal(t, []int{30, 30}, repository.topAuthorsDays)
	assert.Equal(t, []int{10, 5}, repository.topAuthorsLimit)
}

/*
TestService_BrokenCache degrades to the source query when the cache is
unreachable instead of failing the request.
*/
func TestService_BrokenCache(t *testing.T) {
	service, repository, cache := newTestService(t)
	cache.broken = true

	counts, err := service.Daily(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, counts, 1)

	_, err = service.Daily(context.Background(), 7)
	require.NoError(t, err)

	// Both calls hit the source; nothing was memoized.
	assert.Equal(t, []int{7, 7}, repository.dailyDays)
}

// # Window Bounds

/*
TestService_WindowBounds substitutes the standard window for non-positive
requests and caps oversized ones instead of rejecting either.
*/
func TestService_WindowBounds(t *testing.T) {
	service, repository, _ := newTestService(t)

	tests := []struct {
		name         string
		days         int
		expectedDays int
	}{
		{"zero_gets_default", 0, DailyDaysDefault},
		{"negative_gets_default", -5, DailyDaysDefault},
		{"above_maximum", 400, DailyDaysMax},
		{"in_range", 30, 30},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := service.Daily(context.Background(), test.days)
			require.NoError(t, err)
			assert.Equal(t, test.expectedDays, repository.dailyDays[len(repository.dailyDays)-1])
		})
	}

	t.Run("top_authors_defaults", func(t *testing.T) {
		_, err := service.TopAuthors(context.Background(), 0, 0)
		require.NoError(t, err)
		assert.Equal(t, TopAuthorsDaysDefault, repository.topAuthorsDays[len(repository.topAuthorsDays)-1])
		assert.Equal(t, TopAuthorsLimitDefault, repository.topAuthorsLimit[len(repository.topAuthorsLimit)-1])
	})

	t.Run("top_authors_caps", func(t *testing.T) {
		_, err := service.TopAuthors(context.Background(), 9999, 500)
		require.NoError(t, err)
		assert.Equal(t, TopAuthorsDaysMax, repository.topAuthorsDays[len(repository.topAuthorsDays)-1])
		assert.Equal(t, TopAuthorsLimitMax, repository.topAuthorsLimit[len(repository.topAuthorsLimit)-1])
	})
}
