package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/fortuna/internal/config"
	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/internal/metrics"
	"github.com/MKhiriev/fortuna/internal/mock"
	"github.com/MKhiriev/fortuna/internal/service"
	"github.com/MKhiriev/fortuna/models"
)

const (
	testCookieName = "fortuna_session"
	testUserAgent  = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"
)

type testEnv struct {
	handler   *Handler
	router    *chi.Mux
	registry  *prometheus.Registry
	collector *metrics.Collector

	auth        *mock.MockAuthService
	sessions    *mock.MockSessionService
	workspaces  *mock.MockWorkspaceService
	experiments *mock.MockExperimentService
	appInfo     *mock.MockAppInfoService
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			Environment:  config.EnvDevelopment,
			CookieName:   testCookieName,
			CookieSecret: strings.Repeat("s", 32),
			SessionTTL:   time.Hour,
		},
	}
}

func newTestEnv(t *testing.T, mutate ...func(*config.StructuredConfig)) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := &testEnv{
		registry:    prometheus.NewRegistry(),
		auth:        mock.NewMockAuthService(ctrl),
		sessions:    mock.NewMockSessionService(ctrl),
		workspaces:  mock.NewMockWorkspaceService(ctrl),
		experiments: mock.NewMockExperimentService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}
	env.collector = metrics.NewCollector(env.registry)

	cfg := testConfig()
	for _, m := range mutate {
		m(&cfg)
	}

	services := &service.Services{
		AuthService:       env.auth,
		SessionService:    env.sessions,
		WorkspaceService:  env.workspaces,
		ExperimentService: env.experiments,
		AppInfoService:    env.appInfo,
	}
	env.handler = NewHandler(services, cfg, env.collector, env.registry, logger.Nop())
	env.router = env.handler.Init()

	return env
}

// cookie returns a signed session cookie carrying token.
func (e *testEnv) cookie(t *testing.T, token string) *http.Cookie {
	t.Helper()
	encoded, err := e.handler.cookies.Encode(testCookieName, token)
	require.NoError(t, err)
	return &http.Cookie{Name: testCookieName, Value: encoded}
}

// authenticate makes token resolve to a live session of userID.
func (e *testEnv) authenticate(token string, userID int64) {
	e.sessions.EXPECT().GetSession(gomock.Any(), token).
		Return(&models.Session{Token: token, UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil).AnyTimes()
	e.sessions.EXPECT().Touch(gomock.Any(), token).AnyTimes()
}

func (e *testEnv) do(method, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", testUserAgent)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// counter reads the value of the counter sample of name whose labels match
// labels exactly. A sample that was never recorded reads as zero.
func (e *testEnv) counter(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := e.registry.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, m := range family.GetMetric() {
			if labelsMatch(m.GetLabel(), labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func labelsMatch(pairs []*dto.LabelPair, want map[string]string) bool {
	if len(pairs) != len(want) {
		return false
	}
	for _, pair := range pairs {
		if v, ok := want[pair.GetName()]; !ok || v != pair.GetValue() {
			return false
		}
	}
	return true
}

func responseCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	return nil
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[models.ErrorResponse](t, rr).Error
}
