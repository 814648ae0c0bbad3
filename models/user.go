package models

import "strings"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the login name. Unique across accounts.
	Username string `json:"username"`

	// Password stores the bcrypt hash of the user's password.
	// It is never rendered and never serialized.
	Password string `json:"-"`

	// IsAdmin bypasses the role filter and unlocks management endpoints.
	IsAdmin bool `json:"is_admin"`

	// Roles is the comma-separated list of categories the user may see.
	Roles string `json:"roles"`

	// Email is optional contact information.
	Email string `json:"email,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RoleList returns the parsed role set of the account.
func (u User) RoleList() []string {
	return ParseRoles(u.Roles)
}

// RolesText returns the role set joined for display.
func (u User) RolesText() string {
	return strings.Join(u.RoleList(), ", ")
}

// HasRole reports whether role is part of the account's role set.
func (u User) HasRole(role string) bool {
	for _, r := range u.RoleList() {
		if r == role {
			return true
		}
	}
	return false
}

// ParseRoles splits the stored comma-separated roles column. Surrounding
// whitespace is trimmed and blank entries are dropped, order is preserved.
func ParseRoles(roles string) []string {
	if strings.TrimSpace(roles) == "" {
		return []string{}
	}

	parts := strings.Split(roles, ",")
	parsed := make([]string, 0, len(parts))
	for _, part := range parts {
		if role := strings.TrimSpace(part); role != "" {
			parsed = append(parsed, role)
		}
	}

	return parsed
}

// JoinRoles builds the comma-separated form stored in the roles column.
func JoinRoles(roles []string) string {
	cleaned := make([]string, 0, len(roles))
	for _, role := range roles {
		if role = strings.TrimSpace(role); role != "" {
			cleaned = append(cleaned, role)
		}
	}

	return strings.Join(cleaned, ",")
}
