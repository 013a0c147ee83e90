package http

import (
	"time"

	"github.com/gorilla/securecookie"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/fortuna/internal/config"
	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/internal/metrics"
	"github.com/MKhiriev/fortuna/internal/service"
)

type Handler struct {
	services *service.Services

	cookies       *securecookie.SecureCookie
	cookieName    string
	secureCookies bool

	limiter        *ipRateLimiter
	requestTimeout time.Duration
	trustProxy     bool

	metrics  metrics.MetricsCollector
	gatherer prometheus.Gatherer

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Session cookies are signed with
// cfg.App.CookieSecret and marked Secure outside of development.
func NewHandler(services *service.Services, cfg config.StructuredConfig, collector metrics.MetricsCollector, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	cookies := securecookie.New([]byte(cfg.App.CookieSecret), nil)
	cookies.MaxAge(int(cfg.App.SessionTTL.Seconds()))

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		cookies:        cookies,
		cookieName:     cfg.App.CookieName,
		secureCookies:  !cfg.IsDevelopment(),
		limiter:        newIPRateLimiter(cfg.Server.LoginRateLimit, cfg.Server.LoginRateBurst),
		requestTimeout: cfg.Server.RequestTimeout,
		trustProxy:     cfg.Server.TrustProxyHeaders,
		metrics:        collector,
		gatherer:       gatherer,
		logger:         logger,
	}
}
