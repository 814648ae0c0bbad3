package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/report-catalog/internal/config"
	"github.com/MKhiriev/report-catalog/internal/handler"
	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, ws *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	if ws == nil {
		ws = &workers.Workers{}
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    ws,
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down
// gracefully. It returns early with an error when the listener fails.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run starts the workers and the HTTP server and blocks until ctx is done
// or the HTTP server stops on its own. Workers are stopped in both cases.
func (s *server) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.workers.Run(ctx)

	served := make(chan error, 1)
	go func() {
		s.logger.Info().Msg("Launching HTTP server")
		served <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		if err := <-served; err != nil {
			return err
		}
	case err := <-served:
		if err != nil {
			s.logger.Err(err).Msg("HTTP server stopped unexpectedly")
			return err
		}
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
