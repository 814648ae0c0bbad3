package service

import (
	"github.com/MKhiriev/report-catalog/internal/config"
	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/store"
	"github.com/MKhiriev/report-catalog/internal/validators"
)

type Services struct {
	AuthService    AuthService
	RecordService  RecordService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	userService := NewUserValidationService(validators.NewFormValidator()).
		Wrap(NewUserService(storages.UserRepository, cfg, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, logger),
		RecordService:  NewRecordService(storages.RecordRepository, logger),
		UserService:    userService,
		AppInfoService: appInfoService,
	}, nil
}
