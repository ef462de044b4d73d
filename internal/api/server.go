package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/campaign-demo-api/infrastructure/repository"
	"github.com/vfg2006/campaign-demo-api/internal/api/handler"
	"github.com/vfg2006/campaign-demo-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-demo-api/internal/config"
	"github.com/vfg2006/campaign-demo-api/internal/scheduler"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/datasourcing"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/scenario"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/simulating"
	"github.com/vfg2006/campaign-demo-api/pkg/middleware"
)

// Services agrupa as dependências expostas pela API
type Services struct {
	DataService      datasourcing.DataService
	Scenarios        scenario.Cataloger
	Simulator        *simulating.Simulator
	CallLog          repository.CallLogRepository
	Authenticator    authenticating.Authenticator
	AlertScanService *scheduler.AlertScanService
	Registry         *prometheus.Registry
}

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o roteador com todas as rotas e middlewares globais
func NewHandler(cfg *config.Config, services Services) http.Handler {
	if services.Registry == nil {
		services.Registry = prometheus.NewRegistry()
	}

	cronServices := handler.CronJobServices{
		AlertScanService: services.AlertScanService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Simulator)...),
		router.WithRoutes(metricsRoute(services.Registry)),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Dashboard(services.DataService, services.Authenticator)...),
		router.WithRoutes(handler.Scenarios(services.Scenarios)...),
		router.WithRoutes(handler.MockAPI(services.Simulator)...),
		router.WithRoutes(handler.Simulator(services.Simulator, services.CallLog, services.Authenticator)...),
		router.WithRoutes(handler.CronJobs(cronServices, services.Authenticator)...),
	)

	for _, route := range rt.Routes() {
		logrus.Debugf("rota registrada: %s", route)
	}

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(services.Registry),
		middleware.Cors(cfg.Server.AllowedOrigins...),
	}

	return alice.New(middlewares...).Then(rt)
}

func metricsRoute(reg *prometheus.Registry) router.Route {
	return router.Route{
		Path:    "/metrics",
		Method:  http.MethodGet,
		Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	}
}

func New(cfg *config.Config, services Services) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
