// Copyright (c) 2026 Foodieblog. All rights reserved.

package sec

import (
	"strings"

	"github.com/foodieblog/api/internal/platform/constants"
)

// # User Roles

// Role represents the authorization level granted to an account.
type Role string

const (
	// Unrestricted system access: content curation and user management
	RoleAdmin Role = "ADMIN"

	// Default role for standard registered users
	RoleUser Role = "USER"
)

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Authority maps a role claim value to its authority representation by
// applying the ROLE_ prefix.
//
// The mapping is idempotent: already-prefixed values pass through unchanged.
func Authority(role string) string {
	if strings.HasPrefix(role, constants.RoleAuthorityPrefix) {
		return role
	}
	return constants.RoleAuthorityPrefix + role
}
