// Package session keeps server-side browser sessions and binds them to a
// signed cookie.
//
// Two [Store] implementations exist: [RedisStore] for shared deployments and
// [MemoryStore] for a single process. The [Manager] reads and writes the
// cookie and delegates persistence to the store.
package session

import (
	"context"

	"github.com/MKhiriev/report-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// Store persists sessions by id.
type Store interface {
	// Get returns the session or [ErrSessionNotFound] when it is missing
	// or expired.
	Get(ctx context.Context, id string) (models.Session, error)
	// Save creates or replaces the session. It lives until session.ExpiresAt.
	Save(ctx context.Context, session models.Session) error
	// Delete removes the session. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
	// Close releases resources held by the store.
	Close() error
}
