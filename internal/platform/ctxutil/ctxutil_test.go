// Copyright (c) 2026 Foodieblog. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/internal/platform/ctxutil"
	"github.com/foodieblog/api/internal/platform/sec"
)

/*
TestRequestID round-trips a request ID and falls back to empty when absent.
*/
func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

/*
TestLogger falls back to the default logger on bare contexts so callers
never need a nil check.
*/
func TestLogger(t *testing.T) {
	assert.NotNil(t, ctxutil.GetLogger(context.Background()))

	logger := slog.Default().With(slog.String("request_id", "req-123"))
	ctx := ctxutil.WithLogger(context.Background(), logger)
	assert.Same(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestPrincipal round-trips the authenticated identity; anonymous
contexts yield nil.
*/
func TestPrincipal(t *testing.T) {
	assert.Nil(t, ctxutil.GetPrincipal(context.Background()))

	principal := &sec.Principal{UserID: 7, Email: "chef@foodieblog.app", Role: "USER"}
	ctx := ctxutil.WithPrincipal(context.Background(), principal)
	require.Same(t, principal, ctxutil.GetPrincipal(ctx))
}

/*
TestAuthError carries the auth gate's deferred failure tag.
*/
func TestAuthError(t *testing.T) {
	_, tagged := ctxutil.GetAuthError(context.Background())
	assert.False(t, tagged)

	ctx := ctxutil.WithAuthError(context.Background(), apperr.CodeTokenExpired)
	code, tagged := ctxutil.GetAuthError(ctx)
	assert.True(t, tagged)
	assert.Equal(t, apperr.CodeTokenExpired, code)
}
