package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/report-catalog/internal/config"
	"github.com/MKhiriev/report-catalog/internal/handler"
	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/server"
	"github.com/MKhiriev/report-catalog/internal/service"
	"github.com/MKhiriev/report-catalog/internal/session"
	"github.com/MKhiriev/report-catalog/internal/store"
	"github.com/MKhiriev/report-catalog/internal/views"
	"github.com/MKhiriev/report-catalog/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("catalog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Bool("redis_sessions", cfg.Storage.Session.RedisURL != "").
		Dur("session_ttl", cfg.App.SessionTTL).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	sessionStore, err := session.NewStore(ctx, cfg.Storage.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session store")
	}
	defer sessionStore.Close()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing templates")
	}

	handlers, err := handler.NewHandlers(services, session.NewManager(sessionStore, cfg.App), renderer, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(cfg.Workers, sessionStore, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
