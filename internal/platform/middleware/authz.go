// Copyright (c) 2026 Foodieblog. All rights reserved.

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/internal/platform/constants"
	"github.com/foodieblog/api/internal/platform/ctxutil"
	"github.com/foodieblog/api/internal/platform/respond"
	"github.com/foodieblog/api/internal/platform/sec"
)

// # Authentication Gate

// Authenticate inspects the Authorization header and, when a valid bearer
// token is present, attaches the caller's principal to the context.
//
// Failures are NOT rejected here. A bad token tags the context with the
// matching error code and lets the request continue unauthenticated; public
// endpoints stay reachable, and [RequireAuth] surfaces the precise code on
// protected ones.
func Authenticate(tokens *sec.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Absent or non-bearer headers pass through anonymously
			header := request.Header.Get(constants.HeaderAuthorization)
			if !strings.HasPrefix(header, constants.BearerPrefix) {
				next.ServeHTTP(writer, request)
				return
			}

			// 2. Verify the token and tag the context on failure
			claims, err := tokens.Verify(strings.TrimPrefix(header, constants.BearerPrefix))
			if err != nil {
				code := apperr.CodeUnauthorized
				if errors.Is(err, sec.ErrTokenExpired) {
					code = apperr.CodeTokenExpired
				}
				ctx := ctxutil.WithAuthError(request.Context(), code)
				next.ServeHTTP(writer, request.WithContext(ctx))
				return
			}

			principal, err := claims.Principal()
			if err != nil {
				ctx := ctxutil.WithAuthError(request.Context(), apperr.CodeUnauthorized)
				next.ServeHTTP(writer, request.WithContext(ctx))
				return
			}

			// 3. Attach the principal for downstream handlers
			ctx := ctxutil.WithPrincipal(request.Context(), principal)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// # Access Control

// RequireAuth rejects requests that carry no valid principal. When the gate
// tagged the request with a specific failure (an expired token, say), that
// code is surfaced instead of the generic one.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

		if ctxutil.GetPrincipal(request.Context()) == nil {
			code := apperr.CodeUnauthorized
			if tagged, ok := ctxutil.GetAuthError(request.Context()); ok {
				code = tagged
			}
			respond.ErrorCode(writer, request, code)
			return
		}

		next.ServeHTTP(writer, request)
	})
}

// RequireRole rejects authenticated callers whose role does not match.
// Unauthenticated callers get the same treatment as [RequireAuth] so that
// missing-token and wrong-role failures stay distinguishable.
func RequireRole(role sec.Role) func(http.Handler) http.Handler {
	required := sec.Authority(string(role))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			principal := ctxutil.GetPrincipal(request.Context())
			if principal == nil {
				code := apperr.CodeUnauthorized
				if tagged, ok := ctxutil.GetAuthError(request.Context()); ok {
					code = tagged
				}
				respond.ErrorCode(writer, request, code)
				return
			}

			if sec.Authority(principal.Role) != required {
				respond.ErrorCode(writer, request, apperr.CodeForbidden)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
