package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/report-catalog/internal/config"
	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/mock"
	"github.com/MKhiriev/report-catalog/internal/store"
	"github.com/MKhiriev/report-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		RecordRepository: mock.NewMockRecordRepository(ctrl),
		UserRepository:   mock.NewMockUserRepository(ctrl),
	}

	t.Run("builds every service", func(t *testing.T) {
		services, err := NewServices(storages, config.App{Version: "v1.4.0"}, logger.Nop())

		require.NoError(t, err)
		assert.NotNil(t, services.AuthService)
		assert.NotNil(t, services.RecordService)
		assert.NotNil(t, services.UserService)
		assert.Equal(t, "v1.4.0", services.AppInfoService.GetAppVersion(context.Background()))
	})

	t.Run("version is required", func(t *testing.T) {
		services, err := NewServices(storages, config.App{}, logger.Nop())

		assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
		assert.Nil(t, services)
	})

	t.Run("user service validates forms", func(t *testing.T) {
		services, err := NewServices(storages, config.App{Version: "dev"}, logger.Nop())
		require.NoError(t, err)

		_, err = services.UserService.Create(context.Background(), models.NewUserForm{Username: "ana"})
		assert.ErrorIs(t, err, ErrPasswordRequired)
	})
}
