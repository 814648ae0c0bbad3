package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/models"
)

// recordRepository is the SQL implementation of [RecordRepository] over the
// "data" table. It works with both supported dialects through the builder
// and classifier carried by [DB].
type recordRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by db.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

// List returns the records visible under filter, ordered by id.
//
// The role predicate is a bound IN-list; an empty category list yields an
// empty slice without error.
func (r *recordRepository) List(ctx context.Context, filter models.RecordFilter) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.List").Msg("error executing query")
		return nil, r.db.classify(err, nil, ErrExecutingQuery)
	}
	defer rows.Close()

	records := make([]models.Record, 0)
	for rows.Next() {
		var record models.Record
		if err = scanRecord(rows, &record); err != nil {
			log.Err(err).Str("func", "*recordRepository.List").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*recordRepository.List").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// Get returns the record with the given id or [ErrRecordNotFound].
func (r *recordRepository) Get(ctx context.Context, id int64) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordQuery(r.db.builder, id)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.Record
	if err = scanRecord(r.db.QueryRowContext(ctx, query, args...), &record); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*recordRepository.Get").Int64("id", id).Msg("error fetching record")
		return models.Record{}, r.db.classify(err, nil, ErrScanningRow)
	}

	return record, nil
}

// Create inserts record and returns it with the database-assigned id.
// Any id set on the input is ignored.
func (r *recordRepository) Create(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRecordQuery(r.db.builder, record)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&record.ID); err != nil {
		log.Err(err).Str("func", "*recordRepository.Create").Msg("error inserting record")
		return models.Record{}, r.db.classify(err, nil, ErrExecutingQuery)
	}

	log.Debug().Str("func", "*recordRepository.Create").Int64("id", record.ID).Msg("record created")
	return record, nil
}

// Update overwrites the record identified by record.ID. Zero affected rows
// means the id is unknown and yields [ErrRecordNotFound].
func (r *recordRepository) Update(ctx context.Context, record models.Record) error {
	query, args, err := buildUpdateRecordQuery(r.db.builder, record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*recordRepository.Update", query, args)
}

// Delete removes the record with the given id, or returns
// [ErrRecordNotFound] without touching the table.
func (r *recordRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := buildDeleteRecordQuery(r.db.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*recordRepository.Delete", query, args)
}

// Categories returns every distinct categoria, sorted.
func (r *recordRepository) Categories(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCategoriesQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Categories").Msg("error executing query")
		return nil, r.db.classify(err, nil, ErrExecutingQuery)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err = rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

func (r *recordRepository) execAffectingOne(ctx context.Context, fn, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing statement")
		return r.db.classify(err, nil, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner, record *models.Record) error {
	return row.Scan(
		&record.ID,
		&record.Categoria,
		&record.Nombre,
		&record.Descripcion,
		&record.Link,
		&record.Vigencia,
	)
}
