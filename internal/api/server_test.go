package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/campaign-demo-api/infrastructure/integrator/linkedin"
	"github.com/vfg2006/campaign-demo-api/infrastructure/repository"
	"github.com/vfg2006/campaign-demo-api/internal/config"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/datasourcing"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/generating"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/scenario"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/simulating"
	"github.com/vfg2006/campaign-demo-api/pkg/log"
	"github.com/vfg2006/campaign-demo-api/pkg/sampling"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	log.SetupTestLogger()

	cfg := &config.Config{SecretKey: "test-secret"}
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}

	registry := prometheus.NewRegistry()
	sampler := sampling.New(1)
	generator := generating.New(sampler)
	calls := repository.NewMemoryCallLog(10)

	sim := simulating.New(generator, sampler,
		simulating.WithSettings(simulating.Settings{Latency: time.Nanosecond, FixedLatency: true}),
		simulating.WithRecorder(calls),
		simulating.WithMetrics(simulating.NewMetrics(registry)),
	)
	t.Cleanup(sim.Close)

	data, err := datasourcing.NewService(generator, linkedin.New(linkedin.NewClient("")), datasourcing.DefaultSettings())
	require.NoError(t, err)
	catalog, err := scenario.New()
	require.NoError(t, err)
	auth, err := authenticating.NewService(cfg)
	require.NoError(t, err)

	return NewHandler(cfg, Services{
		DataService:   data,
		Scenarios:     catalog,
		Simulator:     sim,
		CallLog:       calls,
		Authenticator: auth,
		Registry:      registry,
	})
}

func TestNewHandler_MetricsExposeRequestsAndSimulatedCalls(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/mock/rate-limit", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `demo_http_requests_total{method="GET",status="200"}`)
	assert.Contains(t, body, `demo_simulated_calls_total{endpoint="check_rate_limit",outcome="success"} 1`)
}

func TestNewHandler_Cors(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
