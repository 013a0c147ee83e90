package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/fortuna/internal/config"
	"github.com/MKhiriev/fortuna/internal/crypto"
	"github.com/MKhiriev/fortuna/internal/handler"
	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/internal/metrics"
	"github.com/MKhiriev/fortuna/internal/server"
	"github.com/MKhiriev/fortuna/internal/service"
	"github.com/MKhiriev/fortuna/internal/store"
	"github.com/MKhiriev/fortuna/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	ctx := context.Background()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("fortuna-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("fortuna-server", cfg.App.LogLevel)
	ctx = log.WithContext(ctx)

	// secrets and the DSN are left out on purpose
	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Dur("session_ttl", cfg.App.SessionTTL).
		Msg("received configs")

	pool, err := store.NewPool(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer pool.Close()

	if err = pool.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(pool, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(ctx, storages, crypto.NewPasswordHasher(), *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)
	metrics.RegisterDBStats(registry, pool.DB())

	handlers, err := handler.NewHandlers(services, *cfg, collector, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
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
