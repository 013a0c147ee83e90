package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/fortuna/internal/config"
	"github.com/MKhiriev/fortuna/internal/handler/http"
	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/internal/metrics"
	"github.com/MKhiriev/fortuna/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, collector metrics.MetricsCollector, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, collector, gatherer, logger),
	}, nil
}
