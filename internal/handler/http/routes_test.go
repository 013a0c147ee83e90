package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/fortuna/models"
)

func TestRoutes_Version(t *testing.T) {
	env := newTestEnv(t)
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).
		Return(models.VersionResponse{Version: "v1.2.3", Date: "2026-01-01", Commit: "abc"})

	rr := env.do(http.MethodGet, "/api/version", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"v1.2.3","date":"2026-01-01","commit":"abc"}`, rr.Body.String())
}

func TestRoutes_Metrics(t *testing.T) {
	env := newTestEnv(t)

	env.do(http.MethodGet, "/api/auth/valid", nil)
	rr := env.do(http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `fortuna_http_requests_total{method="GET",route="/api/auth/valid",status_code="200"} 1`)
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "static route", method: http.MethodGet, path: "/api/auth/login", wantStatus: http.StatusMethodNotAllowed},
		{name: "parameterised route", method: http.MethodPut, path: "/api/experiments/3", wantStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			rr := env.do(tt.method, tt.path, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(http.MethodGet, "/api/auth/valid", nil)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}
