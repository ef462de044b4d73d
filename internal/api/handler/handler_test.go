package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/campaign-demo-api/infrastructure/integrator/linkedin"
	"github.com/vfg2006/campaign-demo-api/infrastructure/repository"
	"github.com/vfg2006/campaign-demo-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-demo-api/internal/config"
	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/datasourcing"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/datasourcing/mocks"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/generating"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/scenario"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/simulating"
	"github.com/vfg2006/campaign-demo-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-demo-api/pkg/log"
	"github.com/vfg2006/campaign-demo-api/pkg/sampling"
)

const (
	presenterUser     = "presenter"
	presenterPassword = "demo-pass"
)

var fixedNow = time.Date(2024, time.October, 15, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	goleak.VerifyTestMain(m)
}

type testEnv struct {
	router    http.Handler
	sim       *simulating.Simulator
	data      *datasourcing.Service
	calls     repository.CallLogRepository
	authToken string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	sampler := sampling.New(42)
	clock := func() time.Time { return fixedNow }
	generator := generating.New(sampler, generating.WithClock(clock))
	calls := repository.NewMemoryCallLog(20)

	sim := simulating.New(generator, sampler,
		simulating.WithSettings(simulating.Settings{Latency: time.Nanosecond, FixedLatency: true, Logging: true}),
		simulating.WithClock(clock),
		simulating.WithRecorder(calls),
		simulating.WithMaxWebhookDelay(10*time.Millisecond),
	)
	t.Cleanup(sim.Close)

	data, err := datasourcing.NewService(generator, linkedin.New(linkedin.NewClient("")), datasourcing.DefaultSettings())
	require.NoError(t, err)

	catalog, err := scenario.New()
	require.NoError(t, err)

	cfg := &config.Config{SecretKey: "test-secret"}
	cfg.Auth.PresenterUsername = presenterUser
	cfg.Auth.PresenterPassword = presenterPassword
	auth, err := authenticating.NewService(cfg)
	require.NoError(t, err)

	token, err := auth.Login(presenterUser, presenterPassword)
	require.NoError(t, err)

	rt := router.New(
		router.WithRoutes(Healthcheck(sim)...),
		router.WithRoutes(Authentication(auth)...),
		router.WithRoutes(Dashboard(data, auth)...),
		router.WithRoutes(Scenarios(catalog)...),
		router.WithRoutes(MockAPI(sim)...),
		router.WithRoutes(Simulator(sim, calls, auth)...),
		router.WithRoutes(CronJobs(CronJobServices{}, auth)...),
	)

	return &testEnv{router: rt, sim: sim, data: data, calls: calls, authToken: token}
}

func (e *testEnv) do(method, target, body string, authenticated bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+e.authToken)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealthcheck(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/healthcheck", "", false)

	require.Equal(t, http.StatusOK, rec.Code)

	var body HealthcheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.False(t, body.SimulatorOutage)
	_, err := time.Parse(time.RFC3339, body.Time)
	assert.NoError(t, err)

	env.sim.SimulateOutage(time.Minute)
	rec = env.do(http.MethodGet, "/healthcheck", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.SimulatorOutage)
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/v1/dashboard", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var data domain.DashboardData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.Len(t, data.Campaigns, 4)
}

func TestDashboard_ProductionModeIsNotImplemented(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.data.SetMode(datasourcing.ModeProduction))

	for _, path := range []string{"/v1/dashboard", "/v1/campaigns", "/v1/alerts", "/v1/audience"} {
		rec := env.do(http.MethodGet, path, "", false)

		assert.Equal(t, http.StatusNotImplemented, rec.Code, path)
		assert.Equal(t, apiErrors.ErrNotImplemented, decodeError(t, rec).Code, path)
	}
}

func TestAlertHistory_Params(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		query  string
		status int
		code   string
	}{
		{name: "padrão", query: "", status: http.StatusOK},
		{name: "valor válido", query: "?days=3", status: http.StatusOK},
		{name: "não numérico", query: "?days=abc", status: http.StatusBadRequest, code: apiErrors.ErrInvalidFormat},
		{name: "fora do limite", query: "?days=91", status: http.StatusBadRequest, code: apiErrors.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodGet, "/v1/alerts/history"+tt.query, "", false)

			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeError(t, rec).Code)
			}
		})
	}
}

func TestDashboard_UsesDataServiceErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDataService(ctrl)

	service.EXPECT().
		RefreshData(gomock.Any()).
		Return(nil, datasourcing.NewDataSourceError(datasourcing.ErrFixtureDecode, apiErrors.ErrInternalServer, "campaigns"))

	rec := httptest.NewRecorder()
	GetDashboard(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
}

func TestAnalytics_ForecastDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDataService(ctrl)

	service.EXPECT().GetAnalytics(gomock.Any(), 14).Return(&domain.Analytics{}, nil)

	rec := httptest.NewRecorder()
	GetAnalytics(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics?forecast_days=14", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	GetAnalytics(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics?forecast_days=x", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScenarios(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/v1/scenarios", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []*domain.ScenarioSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.NotEmpty(t, summaries)

	rec = env.do(http.MethodGet, "/v1/scenarios/"+summaries[0].ID+"/progress?days=2", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/v1/scenarios/"+summaries[0].ID+"/progress?days=-1", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodGet, "/v1/scenarios/missing", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	apiErr := decodeError(t, rec)
	assert.Equal(t, apiErrors.ErrResourceNotFound, apiErr.Code)
	assert.Equal(t, map[string]any{"scenario_id": "missing"}, apiErr.Details)
}

func TestMockAPI(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/v1/mock/accounts/acc_1/campaigns", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	var campaigns []*domain.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &campaigns))
	assert.Len(t, campaigns, 4)

	rec = env.do(http.MethodPost, "/v1/mock/campaigns", `{"name":"Launch","total_budget":3000}`, false)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, strings.HasPrefix(created.ID, "camp_"))

	rec = env.do(http.MethodPost, "/v1/mock/campaigns", `{"name":"","total_budget":3000}`, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPut, "/v1/mock/campaigns/camp_001", `{"status":"paused"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPost, "/v1/mock/campaigns/camp_002/pause", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	var change domain.CampaignStatusChange
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &change))
	assert.Equal(t, domain.CampaignStatusPaused, change.Status)

	rec = env.do(http.MethodPost, "/v1/mock/batch", `{"updates":[{"id":"camp_001","name":"A"},{"id":"camp_003","status":"archived"}]}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	var batch domain.BatchUpdateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &batch))
	assert.Equal(t, 1, batch.Updated)
	assert.Equal(t, 1, batch.Failed)

	rec = env.do(http.MethodPost, "/v1/mock/batch", `{"updates":[]}`, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodGet, "/v1/mock/rate-limit", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)

	recent, err := env.calls.ListRecent(context.Background(), 50)
	require.NoError(t, err)
	assert.NotEmpty(t, recent)
}

func TestMockAPI_SimulatedFailure(t *testing.T) {
	env := newTestEnv(t)
	env.sim.SetErrorRate(100)

	rec := env.do(http.MethodGet, "/v1/mock/accounts", "", false)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	apiErr := decodeError(t, rec)
	assert.Equal(t, apiErrors.ErrSimulatedNetwork, apiErr.Code)
	assert.Equal(t, map[string]any{"endpoint": simulating.OpListAccounts, "retryable": true}, apiErr.Details)
}

func TestSimulatorRoutes_RequirePresenter(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/v1/simulator/settings", "/v1/simulator/events", "/v1/demo/settings", "/v1/cron/status"} {
		rec := env.do(http.MethodGet, path, "", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestSimulatorSettings(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPut, "/v1/simulator/settings", `{"latency_ms":250,"error_rate":150,"logging":false}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SimulatorSettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(250), resp.LatencyMS)
	assert.Equal(t, 100.0, resp.ErrorRate)
	assert.False(t, resp.Logging)

	rec = env.do(http.MethodPut, "/v1/simulator/settings", `{"latency_ms":-1}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 250*time.Millisecond, env.sim.Settings().Latency)

	rec = env.do(http.MethodPut, "/v1/simulator/settings", `{"latency_ms":0}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.FixedLatency)
	assert.Equal(t, int64(0), resp.LatencyMS)

	rec = env.do(http.MethodPut, "/v1/simulator/settings", `{"latency_ms":10,"reset_latency":true}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPut, "/v1/simulator/settings", `{"reset_latency":true}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.FixedLatency)
	assert.False(t, env.sim.Settings().FixedLatency)
}

func TestSimulateOutage(t *testing.T) {
	env := newTestEnv(t)
	env.sim.SetErrorRate(5)

	rec := env.do(http.MethodPost, "/v1/simulator/outage?seconds=60", "", true)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), fixedNow.Add(time.Minute).Format(time.RFC3339))

	rec = env.do(http.MethodGet, "/v1/simulator/settings", "", true)
	var resp SimulatorSettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OutageActive)
	assert.Equal(t, 100.0, resp.ErrorRate)

	rec = env.do(http.MethodPost, "/v1/simulator/outage?seconds=abc", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimulateWebhook(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/v1/simulator/webhook", `{"type":"campaign.updated","payload":{"id":"camp_001"}}`, true)
	require.Equal(t, http.StatusAccepted, rec.Code)

	require.Eventually(t, func() bool {
		return len(env.sim.RecentEvents()) == 1
	}, time.Second, 5*time.Millisecond)

	rec = env.do(http.MethodGet, "/v1/simulator/events", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var events []*domain.WebhookEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "campaign.updated", events[0].Type)

	rec = env.do(http.MethodPost, "/v1/simulator/webhook", `{"payload":{}}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimulatedCalls(t *testing.T) {
	env := newTestEnv(t)
	env.do(http.MethodGet, "/v1/mock/accounts", "", false)
	env.do(http.MethodGet, "/v1/mock/audience", "", false)

	rec := env.do(http.MethodGet, "/v1/simulator/calls?limit=1", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var calls []*domain.SimulatedCall
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &calls))
	require.Len(t, calls, 1)
	assert.Equal(t, simulating.OpGetAudienceInsights, calls[0].Endpoint)
}

func TestDemoSettings(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPut, "/v1/demo/settings", `{"use_generated_data":false,"campaign_count":2}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	settings := env.data.Settings()
	assert.False(t, settings.UseGeneratedData)
	assert.Equal(t, 2, settings.CampaignCount)

	rec = env.do(http.MethodPut, "/v1/demo/settings", `{"mode":"staging"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, datasourcing.ModeDemo, env.data.Settings().Mode)
}

func TestLoginAndMe(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/v1/login", `{"username":"presenter","password":"wrong"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeError(t, rec).Code)

	rec = env.do(http.MethodPost, "/v1/login", `{"username":"Presenter","password":"demo-pass"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token")

	rec = env.do(http.MethodGet, "/v1/me", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), authenticating.RolePresenter)
}

func TestCronRoutes_WithoutService(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/v1/cron/alert-scan/run", "", true)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = env.do(http.MethodPost, "/v1/cron/unknown/run", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodGet, "/v1/cron/status", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}
