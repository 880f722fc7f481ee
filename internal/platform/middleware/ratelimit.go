// Copyright (c) 2026 Foodieblog. All rights reserved.

package middleware

import (
	"context"
	"net/http"
	"path"
	"sync"
	"time"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/internal/platform/constants"
	"github.com/foodieblog/api/internal/platform/respond"
)

// # Fixed-Window Rate Limiting

// guardedPaths are the unauthenticated endpoints worth brute-forcing or
// spamming. Only these go through the fixed-window counter; everything else
// passes untouched.
var guardedPaths = map[string]struct{}{
	"/api/auth/login":   {},
	"/api/auth/refresh": {},
	"/api/users":        {},
	"/health":           {},
}

// fixedWindow tracks one client+path counter inside the current window.
type fixedWindow struct {
	startedAt time.Time
	count     int
}

// FixedWindowLimiter enforces a per-client, per-path request ceiling over a
// fixed time window, plus a request body size ceiling. Counting is keyed by
// "ip|path" so hammering the login endpoint does not consume the signup
// budget.
type FixedWindowLimiter struct {
	maxRequests  int
	window       time.Duration
	maxBodyBytes int64

	mu      sync.Mutex
	windows map[string]*fixedWindow
}

// NewFixedWindowLimiter builds a limiter allowing maxRequests per window on
// each guarded path, rejecting declared bodies above maxBodyBytes.
func NewFixedWindowLimiter(ctx context.Context, maxRequests int, windowSeconds int, maxBodyBytes int64) *FixedWindowLimiter {
	limiter := &FixedWindowLimiter{
		maxRequests:  maxRequests,
		window:       time.Duration(windowSeconds) * time.Second,
		maxBodyBytes: maxBodyBytes,
		windows:      make(map[string]*fixedWindow),
	}

	// Start a background cleanup routine that respects context cancellation
	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				limiter.evictStale(time.Now())
			case <-ctx.Done():
				// Stop the goroutine when the application shuts down
				return
			}
		}
	}()

	return limiter
}

// Handler wraps next with the fixed-window policy.
func (limiter *FixedWindowLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

		// 1. Only guarded paths are counted. The path is normalized first so
		//    aliases like "//api/auth/login" cannot sidestep the counter.
		requestPath := path.Clean(request.URL.Path)
		if _, guarded := guardedPaths[requestPath]; !guarded {
			next.ServeHTTP(writer, request)
			return
		}

		// 2. Size check runs before the counter so an oversized request is
		//    rejected without consuming the client's budget
		if request.ContentLength > limiter.maxBodyBytes {
			respond.ErrorCode(writer, request, apperr.CodePayloadTooLarge)
			return
		}

		// 3. Count the request against the "ip|path" window
		key := RealIP(request) + "|" + requestPath
		if !limiter.allow(key, time.Now()) {
			respond.ErrorCode(writer, request, apperr.CodeTooManyRequests)
			return
		}

		next.ServeHTTP(writer, request)
	})
}

// allow consumes one slot from the window identified by key, opening a fresh
// window when the previous one has elapsed.
func (limiter *FixedWindowLimiter) allow(key string, now time.Time) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	window, found := limiter.windows[key]
	if !found || now.Sub(window.startedAt) >= limiter.window {
		limiter.windows[key] = &fixedWindow{startedAt: now, count: 1}
		return true
	}

	if window.count >= limiter.maxRequests {
		return false
	}
	window.count++
	return true
}

// evictStale drops windows whose period has elapsed. Without it the map
// keeps one entry per client and path that ever touched a guarded endpoint.
func (limiter *FixedWindowLimiter) evictStale(now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	for key, window := range limiter.windows {
		if now.Sub(window.startedAt) >= limiter.window {
			delete(limiter.windows, key)
		}
	}
}
