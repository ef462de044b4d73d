package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/campaign-demo-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-demo-api/infrastructure/integrator/linkedin"
	"github.com/vfg2006/campaign-demo-api/infrastructure/repository"
	"github.com/vfg2006/campaign-demo-api/internal/api"
	"github.com/vfg2006/campaign-demo-api/internal/config"
	"github.com/vfg2006/campaign-demo-api/internal/scheduler"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/datasourcing"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/generating"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/scenario"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/simulating"
	"github.com/vfg2006/campaign-demo-api/pkg/sampling"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	sampler := sampling.New(cfg.Demo.Seed)
	generator := generating.New(sampler)

	callLog, closeCallLog := callLogRepository(ctx, cfg)
	defer closeCallLog()

	latency, fixedLatency := cfg.SimulatorLatency()
	simulator := simulating.New(generator, sampler,
		simulating.WithSettings(simulating.Settings{
			Latency:      latency,
			FixedLatency: fixedLatency,
			ErrorRate:    cfg.Simulator.ErrorRate,
			Logging:      cfg.Simulator.Logging,
		}),
		simulating.WithOutageDuration(cfg.OutageDuration()),
		simulating.WithCampaignCount(cfg.Demo.CampaignCount),
		simulating.WithRecorder(callLog),
		simulating.WithMetrics(simulating.NewMetrics(registry)),
	)
	defer simulator.Close()

	catalog, err := scenario.New()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar catálogo de cenários")
	}

	linkedinIntegrator := linkedin.New(linkedin.NewClient(cfg.LinkedIn.BaseURL))

	dataService, err := datasourcing.NewService(generator, linkedinIntegrator, datasourcing.Settings{
		Mode:              datasourcing.Mode(cfg.Demo.Mode),
		UseGeneratedData:  cfg.Demo.UseGeneratedData,
		CampaignCount:     cfg.Demo.CampaignCount,
		AlertCount:        cfg.Demo.AlertCount,
		CreativeCampaigns: cfg.Demo.CreativeCampaigns,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar serviço de dados")
	}

	authenticator, err := authenticating.NewService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar autenticação")
	}

	alertScanService := scheduler.NewAlertScanService(dataService, simulator, cfg)
	if err := alertScanService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de varredura de alertas")
	} else {
		logrus.Info("Agendador de varredura de alertas iniciado com sucesso")
	}
	defer func() {
		cancel()
		alertScanService.Stop()
		alertScanService.Wait()
	}()

	server, err := api.New(cfg, api.Services{
		DataService:      dataService,
		Scenarios:        catalog,
		Simulator:        simulator,
		CallLog:          callLog,
		Authenticator:    authenticator,
		AlertScanService: alertScanService,
		Registry:         registry,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// callLogRepository usa o PostgreSQL quando habilitado, senão mantém o histórico em memória
func callLogRepository(ctx context.Context, cfg *config.Config) (repository.CallLogRepository, func()) {
	if !cfg.CallLog.DatabaseEnabled {
		logrus.WithField("limit", cfg.CallLog.MemoryLimit).Info("Histórico de chamadas em memória")
		return repository.NewMemoryCallLog(cfg.CallLog.MemoryLimit), func() {}
	}

	conn := pgconn(ctx, cfg.Database)

	repo := repository.NewCallLogRepository(conn)
	if err := repo.Migrate(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar tabela de chamadas simuladas")
	}

	return repo, func() {
		if err := conn.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
		}
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.WithFields(logrus.Fields{
		"max_open_conns":    dbConfig.MaxOpenConns,
		"conn_max_lifetime": dbConfig.ConnMaxLifetime.String(),
	}).Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
