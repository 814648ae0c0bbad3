package store

import (
	"context"

	"github.com/MKhiriev/report-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordRepository persists catalog records in the "data" table.
type RecordRepository interface {
	// List returns the records matching filter ordered by id.
	List(ctx context.Context, filter models.RecordFilter) ([]models.Record, error)
	// Get returns the record with the given id or [ErrRecordNotFound].
	Get(ctx context.Context, id int64) (models.Record, error)
	// Create inserts record and returns it with the assigned id.
	Create(ctx context.Context, record models.Record) (models.Record, error)
	// Update overwrites every field of the record identified by record.ID.
	Update(ctx context.Context, record models.Record) error
	// Delete removes the record with the given id.
	Delete(ctx context.Context, id int64) error
	// Categories returns the distinct categoria values in use, sorted.
	Categories(ctx context.Context) ([]string, error)
}

// UserRepository persists accounts in the "users" table.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindByID(ctx context.Context, userID int64) (models.User, error)
	// List returns every account ordered by id, without password hashes.
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, update models.UserUpdate) error
	UpdateRoles(ctx context.Context, userID int64, roles string) error
	// DeleteAll removes every account and reports how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
