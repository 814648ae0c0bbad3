package handler

import (
	"github.com/MKhiriev/report-catalog/internal/config"
	"github.com/MKhiriev/report-catalog/internal/handler/http"
	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/service"
	"github.com/MKhiriev/report-catalog/internal/session"
	"github.com/MKhiriev/report-catalog/internal/views"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions *session.Manager, renderer *views.Renderer, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, sessions, renderer, cfg, logger),
	}, nil
}
