// Copyright (c) 2026 Foodieblog. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodieblog/api/pkg/slug"
)

/*
TestFrom exercises the transformation pipeline against the kinds of
category names administrators actually type.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Street Food", "street-food"},
		{"accents", "Café & Pâtisserie", "cafe-patisserie"},
		{"extra_whitespace", "  Fine   Dining  ", "fine-dining"},
		{"punctuation", "Late-Night Eats!", "late-night-eats"},
		{"numbers", "Top 10 Ramen", "top-10-ramen"},
		{"already_a_slug", "street-food", "street-food"},
		{"uppercase", "BRUNCH", "brunch"},
		{"only_symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, slug.From(test.input))
		})
	}
}

/*
TestIsValid accepts only fully formed slugs: lowercase alphanumerics
separated by single hyphens.
*/
func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"single_word", "brunch", true},
		{"hyphenated", "street-food", true},
		{"with_numbers", "top-10", true},
		{"uppercase", "Brunch", false},
		{"leading_hyphen", "-brunch", false},
		{"trailing_hyphen", "brunch-", false},
		{"double_hyphen", "street--food", false},
		{"empty", "", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.valid, slug.IsValid(test.input))
		})
	}
}
