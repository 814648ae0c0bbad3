package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/report-catalog/internal/config"
	"github.com/MKhiriev/report-catalog/internal/logger"
)

// Storages aggregates the repositories sharing one database connection.
type Storages struct {
	RecordRepository RecordRepository
	UserRepository   UserRepository

	db *DB
}

// NewStorages connects to the configured database, applies the embedded
// schema and builds every repository on top of the connection.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		RecordRepository: NewRecordRepository(db, log),
		UserRepository:   NewUserRepository(db, log),
		db:               db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
