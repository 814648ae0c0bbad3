package session

import "errors"

var (
	// ErrSessionNotFound is returned by [Store.Get] when no live session has
	// the requested id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned by [Store.Save] for a session whose expiry
	// is already in the past.
	ErrSessionExpired = errors.New("session already expired")

	// ErrEmptySessionID is returned when a session without an id is saved.
	ErrEmptySessionID = errors.New("session id is empty")
)
