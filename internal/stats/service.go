// Copyright (c) 2026 Foodieblog. All rights reserved.

package stats

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/foodieblog/api/internal/platform/constants"
)

// # Service Layer

// Service serves dashboard aggregates through the cache.
type Service struct {
	repository Repository
	cache      Cache
	logger     *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repository Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		cache:      cache,
		logger:     logger,
	}
}

// window substitutes fallback for a non-positive value and caps it at high.
// Out-of-range requests are served with a valid window rather than rejected.
func window(value, fallback, high int) int {
	if value <= 0 {
		return fallback
	}
	if value > high {
		return high
	}
	return value
}

// Daily returns per-day post and comment counts for the last days days.
func (service *Service) Daily(context context.Context, days int) ([]DailyCount, error) {
	days = window(days, DailyDaysDefault, DailyDaysMax)
	key := constants.RedisPrefixStatsDaily + strconv.Itoa(days)

	var cached []DailyCount
	if hit := service.cacheGet(context, key, &cached); hit {
		return cached, nil
	}

	counts, err := service.repository.Daily(context, days)
	if err != nil {
		return nil, fmt.Errorf("stats_service_daily_failed: %w", err)
	}

	service.cacheSet(context, key, counts)
	return counts, nil
}

// TopAuthors ranks authors by posts published within the last days days.
func (service *Service) TopAuthors(context context.Context, days, limit int) ([]TopAuthor, error) {
	days = window(days, TopAuthorsDaysDefault, TopAuthorsDaysMax)
	limit = window(limit, TopAuthorsLimitDefault, TopAuthorsLimitMax)
	key := constants.RedisPrefixStatsTopAuthors + strconv.Itoa(days) + ":" + strconv.Itoa(limit)

	var cached []TopAuthor
	if hit := service.cacheGet(context, key, &cached); hit {
		return cached, nil
	}

	authors, err := service.repository.TopAuthors(context, days, limit)
	if err != nil {
		return nil, fmt.Errorf("stats_service_top_authors_failed: %w", err)
	}

	service.cacheSet(context, key, authors)
	return authors, nil
}

// cacheGet swallows cache failures: a broken cache degrades to the source
// query, it never fails the request.
func (service *Service) cacheGet(context context.Context, key string, target any) bool {
	hit, err := service.cache.Get(context, key, target)
	if err != nil {
		service.logger.Warn("stats_cache_read_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
		return false
	}
	return hit
}

func (service *Service) cacheSet(context context.Context, key string, value any) {
	if err := service.cache.Set(context, key, value, constants.StatsCacheTTL); err != nil {
		service.logger.Warn("stats_cache_write_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
