package http

import (
	"time"

	"github.com/MKhiriev/report-catalog/internal/config"
	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/service"
	"github.com/MKhiriev/report-catalog/internal/session"
	"github.com/MKhiriev/report-catalog/internal/views"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager
	views    *views.Renderer

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, renderer *views.Renderer, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		views:          renderer,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
