package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fortuna/internal/config"
	"github.com/MKhiriev/fortuna/internal/handler"
	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/internal/metrics"
	"github.com/MKhiriev/fortuna/internal/service"
)

func newTestHandlers(t *testing.T, address string) *handler.Handlers {
	t.Helper()

	cfg := config.StructuredConfig{
		App: config.App{
			CookieName:   "fortuna_session",
			CookieSecret: strings.Repeat("k", 32),
			SessionTTL:   time.Hour,
		},
		Server: config.Server{HTTPAddress: address},
	}
	reg := prometheus.NewRegistry()

	h, err := handler.NewHandlers(&service.Services{}, cfg, metrics.NewCollector(reg), reg, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRunServer_ShutsDownOnCancel(t *testing.T) {
	srv, err := NewServer(newTestHandlers(t, "127.0.0.1:0"), config.Server{
		HTTPAddress:     "127.0.0.1:0",
		ShutdownTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServe_ServesRequestsUntilCancelled(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &server{
		httpServer:      newHTTPServer(newTestHandlers(t, listener.Addr().String()).HTTP.Init(), config.Server{}, logger.Nop()),
		shutdownTimeout: time.Second,
		logger:          logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, listener) }()

	resp, err := http.Get("http://" + listener.Addr().String() + "/api/auth/valid")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "false", strings.TrimSpace(string(body)))

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
