// Package utils provides general-purpose helpers used across the
// application: typed context keys, password hashing, session token signing,
// identifier generation and small HTTP response writers.
package utils

import (
	"context"

	"github.com/MKhiriev/report-catalog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the request's session is stored.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the session stored by WithSession.
//
// Returns the session and an ok flag:
//   - ok == true: a session is attached
//   - ok == false: nothing is attached or the value has an unexpected type
//
// A missing session should be treated as anonymous.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}
