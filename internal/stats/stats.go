// Copyright (c) 2026 Foodieblog. All rights reserved.

/*
Package stats produces the administrative dashboard aggregates.

The source queries scan whole tables, so results are memoized in Redis for
a short TTL; the dashboard polls far more often than the numbers change.
*/
package stats

import (
	"context"
	"time"
)

// # Aggregate Shapes

// DailyCount is one day's content production.
type DailyCount struct {
	Date     string `json:"date"`
	Posts    int64  `json:"posts"`
	Comments int64  `json:"comments"`
}

// TopAuthor is one row of the published-post leaderboard.
type TopAuthor struct {
	AuthorID  int64  `json:"authorId"`
	Nickname  string `json:"nickname"`
	PostCount int64  `json:"postCount"`
}

// Window fallbacks and ceilings for the aggregate queries. A non-positive
// request gets the standard window; an oversized one is capped.
const (
	DailyDaysDefault = 7
	DailyDaysMax     = 90

	TopAuthorsDaysDefault = 30
	TopAuthorsDaysMax     = 365

	TopAuthorsLimitDefault = 10
	TopAuthorsLimitMax     = 50
)

// # Repository Contracts

// Repository defines the aggregate queries.
type Repository interface {
	// Daily returns zero-filled per-day post and comment counts for the
	// last days days, oldest first, ending today.
	Daily(context context.Context, days int) ([]DailyCount, error)

	// TopAuthors ranks authors by posts published within the last days days.
	TopAuthors(context context.Context, days, limit int) ([]TopAuthor, error)
}

// Cache is the memoization contract, satisfied by the Redis adapter.
type Cache interface {
	// Get loads a cached aggregate into target, reporting whether it was present.
	Get(context context.Context, key string, target any) (bool, error)

	// Set stores an aggregate under key for ttl.
	Set(context context.Context, key string, value any, ttl time.Duration) error
}
