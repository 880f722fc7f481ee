// Copyright (c) 2026 Foodieblog. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodieblog/api/pkg/pagination"
)

/*
TestFromRequest parses and clamps the page/size query parameters.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		expectedPage int
		expectedSize int
	}{
		{"defaults", "", pagination.DefaultPage, pagination.DefaultSize},
		{"explicit", "?page=3&size=50", 3, 50},
		{"zero_page", "?page=0", pagination.DefaultPage, pagination.DefaultSize},
		{"negative_page", "?page=-5", pagination.DefaultPage, pagination.DefaultSize},
		{"oversized", "?size=5000", pagination.DefaultPage, pagination.DefaultSize},
		{"max_size", "?size=100", pagination.DefaultPage, pagination.MaxSize},
		{"garbage", "?page=abc&size=xyz", pagination.DefaultPage, pagination.DefaultSize},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/api/posts"+test.query, nil)
			params := pagination.FromRequest(request)
			assert.Equal(t, test.expectedPage, params.Page)
			assert.Equal(t, test.expectedSize, params.Size)
		})
	}
}

/*
TestParams_Offset derives the SQL OFFSET from the 1-indexed page.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Size: 20}.Offset())
	assert.Equal(t, 20, pagination.Params{Page: 2, Size: 20}.Offset())
	assert.Equal(t, 90, pagination.Params{Page: 10, Size: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Size: 20}.Offset())
}

/*
TestNewMeta rounds the page count up so a partial last page still counts.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name          string
		size          int
		total         int
		expectedPages int
	}{
		{"even_split", 20, 40, 2},
		{"partial_last_page", 20, 41, 3},
		{"empty", 20, 0, 0},
		{"single_item", 20, 1, 1},
		{"zero_size", 0, 10, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			meta := pagination.NewMeta(1, test.size, test.total)
			assert.Equal(t, test.expectedPages, meta.TotalPages)
			assert.Equal(t, test.total, meta.Total)
		})
	}
}
