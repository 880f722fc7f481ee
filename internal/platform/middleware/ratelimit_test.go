// Copyright (c) 2026 Foodieblog. All rights reserved.

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

/*
TestFixedWindowLimiter_Allow checks the counter ceiling and the fresh-window
reset using injected clock instants.
*/
func TestFixedWindowLimiter_Allow(t *testing.T) {
	limiter := NewFixedWindowLimiter(context.Background(), 3, 60, 1024)
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Three allowed, the fourth rejected within the same window.
	assert.True(t, limiter.allow("1.2.3.4|/api/auth/login", start))
	assert.True(t, limiter.allow("1.2.3.4|/api/auth/login", start.Add(time.Second)))
	assert.True(t, limiter.allow("1.2.3.4|/api/auth/login", start.Add(2*time.Second)))
	assert.False(t, limiter.allow("1.2.3.4|/api/auth/login", start.Add(3*time.Second)))

	// A different key holds its own budget.
	assert.True(t, limiter.allow("5.6.7.8|/api/auth/login", start.Add(3*time.Second)))
	assert.True(t, limiter.allow("1.2.3.4|/api/users", start.Add(3*time.Second)))

	// Once the window elapses the counter starts fresh.
	assert.True(t, limiter.allow("1.2.3.4|/api/auth/login", start.Add(61*time.Second)))
}

/*
TestFixedWindowLimiter_Concurrent hammers one key from many goroutines and
checks that exactly maxRequests pass.
*/
func TestFixedWindowLimiter_Concurrent(t *testing.T) {
	const maxRequests = 10
	const attempts = 100

	limiter := NewFixedWindowLimiter(context.Background(), maxRequests, 60, 1024)
	now := time.Now()

	var allowed atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.allow("9.9.9.9|/api/auth/login", now) {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(maxRequests), allowed.Load())
}

/*
TestFixedWindowLimiter_Handler exercises the HTTP layer: the allow-list, the
429 on exhaustion, and the size gate that rejects without spending budget.
*/
func TestFixedWindowLimiter_Handler(t *testing.T) {
	limiter := NewFixedWindowLimiter(context.Background(), 2, 60, 10)

	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
	handler := limiter.Handler(next)

	send := func(path, body string) int {
		request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		request.RemoteAddr = "10.0.0.1:54321"
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder.Code
	}

	t.Run("unguarded_path_never_counted", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			assert.Equal(t, http.StatusOK, send("/api/posts", "x"))
		}
	})

	t.Run("oversized_body_rejected_without_spending_budget", func(t *testing.T) {
		// Eleven bytes against a ten byte ceiling.
		assert.Equal(t, http.StatusRequestEntityTooLarge, send("/api/auth/login", "0123456789x"))

		// The full budget is still available afterwards.
		assert.Equal(t, http.StatusOK, send("/api/auth/login", "x"))
		assert.Equal(t, http.StatusOK, send("/api/auth/login", "x"))
		assert.Equal(t, http.StatusTooManyRequests, send("/api/auth/login", "x"))
	})

	t.Run("alias_path_shares_the_budget", func(t *testing.T) {
		aliased := NewFixedWindowLimiter(context.Background(), 2, 60, 10)
		wrapped := aliased.Handler(next)

		sendAlias := func(target string) int {
			request := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("x"))
			request.RemoteAddr = "10.0.0.1:54321"
			request.URL.Path = target
			recorder := httptest.NewRecorder()
			wrapped.ServeHTTP(recorder, request)
			return recorder.Code
		}

		// Doubled slashes collapse onto the guarded path and spend the same
		// budget as the canonical spelling.
		assert.Equal(t, http.StatusOK, sendAlias("//api/auth/login"))
		assert.Equal(t, http.StatusOK, sendAlias("/api/auth/login"))
		assert.Equal(t, http.StatusTooManyRequests, sendAlias("//api/auth/login"))
	})

	t.Run("forwarded_ip_identifies_the_client", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader("x"))
		request.RemoteAddr = "10.0.0.1:54321"
		request.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

/*
TestFixedWindowLimiter_EvictStale drops elapsed windows so abandoned
clients do not pin map entries forever.
*/
func TestFixedWindowLimiter_EvictStale(t *testing.T) {
	limiter := NewFixedWindowLimiter(context.Background(), 3, 60, 1024)
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, limiter.allow("1.2.3.4|/api/auth/login", start))
	assert.True(t, limiter.allow("5.6.7.8|/api/auth/login", start.Add(30*time.Second)))

	limiter.evictStale(start.Add(61 * time.Second))

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Len(t, limiter.windows, 1)
	assert.Contains(t, limiter.windows, "5.6.7.8|/api/auth/login")
}

/*
TestRealIP checks the client address resolution order.
*/
func TestRealIP(t *testing.T) {
	tests := []struct {
		name      string
		forwarded string
		realIP    string
		remote    string
		expected  string
	}{
		{"forwarded_first_entry", "203.0.113.9, 10.0.0.1", "198.51.100.2", "10.0.0.1:80", "203.0.113.9"},
		{"real_ip_fallback", "", "198.51.100.2", "10.0.0.1:80", "198.51.100.2"},
		{"peer_fallback", "", "", "10.0.0.1:80", "10.0.0.1"},
		{"peer_without_port", "", "", "10.0.0.1", "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				request.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				request.Header.Set("X-Real-IP", tt.realIP)
			}

			assert.Equal(t, tt.expected, RealIP(request))
		})
	}
}
