package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-demo-api/infrastructure/repository"
	"github.com/vfg2006/campaign-demo-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/datasourcing"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/scenario"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/simulating"
	"github.com/vfg2006/campaign-demo-api/pkg/middleware"
)

func presenterOnly(auth authenticating.Authenticator) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{middleware.AuthMiddleware(auth), middleware.PresenterOnly()}
}

func Healthcheck(sim *simulating.Simulator) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(sim),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuthMiddleware(service)},
		},
	}
}

// Dashboard expõe os dados consumidos pelo painel; leitura é pública, configuração exige apresentador
func Dashboard(service datasourcing.DataService, auth authenticating.Authenticator) []router.Route {
	return []router.Route{
		{Path: "/v1/dashboard", Method: http.MethodGet, Handler: GetDashboard(service)},
		{Path: "/v1/campaigns", Method: http.MethodGet, Handler: GetCampaigns(service)},
		{Path: "/v1/creatives", Method: http.MethodGet, Handler: GetCreatives(service)},
		{Path: "/v1/alerts", Method: http.MethodGet, Handler: GetAlerts(service)},
		{Path: "/v1/alerts/history", Method: http.MethodGet, Handler: GetAlertHistory(service)},
		{Path: "/v1/alerts/realtime", Method: http.MethodGet, Handler: GetRealTimeAlerts(service)},
		{Path: "/v1/audience", Method: http.MethodGet, Handler: GetAudienceInsights(service)},
		{Path: "/v1/analytics", Method: http.MethodGet, Handler: GetAnalytics(service)},
		{
			Path:        "/v1/demo/settings",
			Method:      http.MethodGet,
			Handler:     GetDemoSettings(service),
			Middlewares: presenterOnly(auth),
		},
		{
			Path:        "/v1/demo/settings",
			Method:      http.MethodPut,
			Handler:     UpdateDemoSettings(service),
			Middlewares: presenterOnly(auth),
		},
	}
}

func Scenarios(catalog scenario.Cataloger) []router.Route {
	return []router.Route{
		{Path: "/v1/scenarios", Method: http.MethodGet, Handler: ListScenarios(catalog)},
		{Path: "/v1/scenarios/:id", Method: http.MethodGet, Handler: GetScenario(catalog)},
		{Path: "/v1/scenarios/:id/progress", Method: http.MethodGet, Handler: ProgressScenario(catalog)},
	}
}

func MockAPI(sim *simulating.Simulator) []router.Route {
	return []router.Route{
		{Path: "/v1/mock/accounts", Method: http.MethodGet, Handler: MockListAccounts(sim)},
		{Path: "/v1/mock/accounts/:id/campaigns", Method: http.MethodGet, Handler: MockListCampaigns(sim)},
		{Path: "/v1/mock/campaigns", Method: http.MethodPost, Handler: MockCreateCampaign(sim)},
		{Path: "/v1/mock/batch", Method: http.MethodPost, Handler: MockBatchUpdate(sim)},
		{Path: "/v1/mock/campaigns/:id", Method: http.MethodPut, Handler: MockUpdateCampaign(sim)},
		{Path: "/v1/mock/campaigns/:id/pause", Method: http.MethodPost, Handler: MockPauseCampaign(sim)},
		{Path: "/v1/mock/campaigns/:id/resume", Method: http.MethodPost, Handler: MockResumeCampaign(sim)},
		{Path: "/v1/mock/campaigns/:id/creatives", Method: http.MethodGet, Handler: MockGetCreatives(sim)},
		{Path: "/v1/mock/analytics", Method: http.MethodGet, Handler: MockGetAnalytics(sim)},
		{Path: "/v1/mock/audience", Method: http.MethodGet, Handler: MockGetAudienceInsights(sim)},
		{Path: "/v1/mock/rate-limit", Method: http.MethodGet, Handler: MockCheckRateLimit(sim)},
	}
}

func Simulator(sim *simulating.Simulator, calls repository.CallLogRepository, auth authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/simulator/settings",
			Method:      http.MethodGet,
			Handler:     GetSimulatorSettings(sim),
			Middlewares: presenterOnly(auth),
		},
		{
			Path:        "/v1/simulator/settings",
			Method:      http.MethodPut,
			Handler:     UpdateSimulatorSettings(sim),
			Middlewares: presenterOnly(auth),
		},
		{
			Path:        "/v1/simulator/outage",
			Method:      http.MethodPost,
			Handler:     SimulateOutage(sim),
			Middlewares: presenterOnly(auth),
		},
		{
			Path:        "/v1/simulator/webhook",
			Method:      http.MethodPost,
			Handler:     SimulateWebhook(sim),
			Middlewares: presenterOnly(auth),
		},
		{
			Path:        "/v1/simulator/events",
			Method:      http.MethodGet,
			Handler:     GetWebhookEvents(sim),
			Middlewares: presenterOnly(auth),
		},
		{
			Path:        "/v1/simulator/calls",
			Method:      http.MethodGet,
			Handler:     GetSimulatedCalls(calls),
			Middlewares: presenterOnly(auth),
		},
	}
}

func CronJobs(services CronJobServices, auth authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: presenterOnly(auth),
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: presenterOnly(auth),
		},
	}
}
