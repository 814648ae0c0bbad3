package service

import (
	"context"

	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/store"
	"github.com/MKhiriev/report-catalog/models"
)

type recordService struct {
	recordRepository store.RecordRepository
	logger           *logger.Logger
}

func NewRecordService(recordRepository store.RecordRepository, logger *logger.Logger) RecordService {
	return &recordService{
		recordRepository: recordRepository,
		logger:           logger,
	}
}

// ListVisible applies the role filter of session: admins see every record,
// everyone else only the categories in their roles.
func (s *recordService) ListVisible(ctx context.Context, session models.Session) ([]models.Record, error) {
	filter := session.RecordFilter()

	logger.FromContext(ctx).Debug().
		Bool("all", filter.All).
		Strs("categories", filter.Categories).
		Msg("listing visible records")

	return s.recordRepository.List(ctx, filter)
}

func (s *recordService) Get(ctx context.Context, id int64) (models.Record, error) {
	return s.recordRepository.Get(ctx, id)
}

func (s *recordService) Create(ctx context.Context, form models.RecordForm) (models.Record, error) {
	return s.recordRepository.Create(ctx, form.ToRecord(0))
}

// Update overwrites every field of the record.
func (s *recordService) Update(ctx context.Context, id int64, form models.RecordForm) error {
	return s.recordRepository.Update(ctx, form.ToRecord(id))
}

func (s *recordService) Delete(ctx context.Context, id int64) error {
	return s.recordRepository.Delete(ctx, id)
}

func (s *recordService) Categories(ctx context.Context) ([]string, error) {
	return s.recordRepository.Categories(ctx)
}
