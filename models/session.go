package models

import "time"

// Session is the server-side state attached to a browser through the session
// cookie. A zero UserID means the browser is anonymous.
type Session struct {
	// ID is the opaque identifier the cookie points at.
	ID string `json:"id"`

	UserID  int64    `json:"user_id,omitempty"`
	IsAdmin bool     `json:"is_admin"`
	Roles   []string `json:"roles"`

	// Flash is a one-shot message shown on the next rendered page.
	Flash string `json:"flash,omitempty"`

	ExpiresAt time.Time `json:"expires_at"`
}

// IsAuthenticated reports whether a user has logged in on this session.
func (s Session) IsAuthenticated() bool {
	return s.UserID != 0
}

// IsExpired reports whether the session is past its expiry at now.
func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// RecordFilter returns the visibility filter for the session: admins see
// everything, everyone else only the categories listed in their roles.
func (s Session) RecordFilter() RecordFilter {
	if s.IsAdmin {
		return RecordFilter{All: true}
	}

	return RecordFilter{Categories: ParseRoles(JoinRoles(s.Roles))}
}
