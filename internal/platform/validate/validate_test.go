// Copyright (c) 2026 Foodieblog. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodieblog/api/internal/platform/apperr"
	"github.com/foodieblog/api/internal/platform/validate"
)

// fail runs a chain and returns its [*apperr.AppError], requiring one.
func fail(t *testing.T, chain *validate.Validator) *apperr.AppError {
	t.Helper()
	err := chain.Err()
	require.Error(t, err)
	var appError *apperr.AppError
	require.ErrorAs(t, err, &appError)
	return appError
}

/*
TestValidator_Chain verifies a passing chain yields nil and a failing
chain yields VALIDATION_FAILED with one message per field.
*/
func TestValidator_Chain(t *testing.T) {

	t.Run("all_rules_pass", func(t *testing.T) {
		err := validate.New().
			Required("email", "chef@foodieblog.app").
			Email("email", "chef@foodieblog.app").
			MinLen("password", "s3cret-pass", 8).
			Err()
		assert.NoError(t, err)
	})

	t.Run("collects_all_fields", func(t *testing.T) {
		appError := fail(t, validate.New().
			Required("email", "").
			MinLen("password", "abc", 8))

		assert.Equal(t, apperr.CodeValidationFailed, appError.Code)
		assert.Len(t, appError.Details, 2)
		assert.Contains(t, appError.Details, "email")
		assert.Contains(t, appError.Details, "password")
	})

	t.Run("first_failure_per_field_wins", func(t *testing.T) {
		appError := fail(t, validate.New().
			Required("nickname", "").
			MinLen("nickname", "", 2))

		assert.Equal(t, "This field is required", appError.Details["nickname"])
	})
}

/*
TestValidator_Rules exercises each rule at its boundary.
*/
func TestValidator_Rules(t *testing.T) {
	tests := []struct {
		name  string
		chain *validate.Validator
		valid bool
	}{
		{"required_whitespace_only", validate.New().Required("title", "   "), false},
		{"max_len_at_boundary", validate.New().MaxLen("title", "12345", 5), true},
		{"max_len_over", validate.New().MaxLen("title", "123456", 5), false},
		{"max_len_counts_runes", validate.New().MaxLen("title", "bánh mì", 7), true},
		{"min_len_at_boundary", validate.New().MinLen("password", "12345678", 8), true},
		{"email_missing_domain", validate.New().Email("email", "chef@"), false},
		{"one_of_member", validate.New().OneOf("role", "ADMIN", "USER", "ADMIN"), true},
		{"one_of_outsider", validate.New().OneOf("role", "SUPERUSER", "USER", "ADMIN"), false},
		{"custom_failed", validate.New().Custom("days", true, "Must be positive"), false},
		{"custom_passed", validate.New().Custom("days", false, "Must be positive"), true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.valid {
				assert.NoError(t, test.chain.Err())
			} else {
				assert.Error(t, test.chain.Err())
				assert.True(t, test.chain.HasErrors())
			}
		})
	}
}

/*
TestFailed builds a single-field validation error directly.
*/
func TestFailed(t *testing.T) {
	appError := validate.Failed("slug", "Already in use")
	assert.Equal(t, apperr.CodeValidationFailed, appError.Code)
	assert.Equal(t, map[string]string{"slug": "Already in use"}, appError.Details)
}
