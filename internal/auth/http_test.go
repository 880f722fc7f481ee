// Copyright (c) 2026 Foodieblog. All rights reserved.

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// # Logout Endpoint

/*
TestHandler_Logout closes the session and answers 200 with the empty
success envelope, like every other auth endpoint.
*/
func TestHandler_Logout(t *testing.T) {
	account := testAccount(t, 1, "chef@foodieblog.app", "s3cret-pass", "USER")
	sessions := newFakeSessions()
	service := newTestService(t, newFakeUsers(account), sessions)
	handler := NewHandler(service)

	result, err := service.Login(context.Background(), "chef@foodieblog.app", "s3cret-pass")
	require.NoError(t, err)

	body := `{"refreshToken":"` + result.RefreshToken + `"}`
	request := httptest.NewRequest(http.MethodPost, "/logout", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success":true,"data":null}`, recorder.Body.String())
	assert.Equal(t, 0, sessions.countFor(1))
}

/*
TestHandler_Logout_MissingToken rejects an empty body with a validation
error before reaching the service.
*/
func TestHandler_Logout_MissingToken(t *testing.T) {
	account := testAccount(t, 1, "chef@foodieblog.app", "s3cret-pass", "USER")
	service := newTestService(t, newFakeUsers(account), newFakeSessions())
	handler := NewHandler(service)

	request := httptest.NewRequest(http.MethodPost, "/logout", strings.NewReader(`{}`))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
