package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/campaign-demo-api/internal/config"
	"github.com/vfg2006/campaign-demo-api/internal/domain"
)

const AlertWebhookType = "alert.created"

// AlertSource fornece os alertas em tempo real das campanhas atuais
type AlertSource interface {
	GetRealTimeAlerts(ctx context.Context) ([]*domain.Alert, error)
}

// WebhookEmitter agenda a emissão de eventos de webhook
type WebhookEmitter interface {
	SimulateWebhook(eventType string, payload any) (*domain.WebhookEvent, time.Duration, error)
}

// AlertScanConfig representa a configuração da varredura de alertas
type AlertScanConfig struct {
	CronSchedule string
	ScanEnabled  bool
}

// AlertScanService varre periodicamente as campanhas e emite um webhook para cada alerta novo
type AlertScanService struct {
	scheduler *gocron.Scheduler
	config    AlertScanConfig
	source    AlertSource
	emitter   WebhookEmitter

	scanMutex           sync.Mutex
	scanRunning         bool
	lastScanStartedAt   time.Time
	lastScanCompletedAt time.Time
	lastAlertCount      int
	lastEmitted         int
	lastError           string
	seen                map[string]struct{}
	wg                  sync.WaitGroup
	stopOnce            sync.Once
}

func NewAlertScanService(source AlertSource, emitter WebhookEmitter, appConfig *config.Config) *AlertScanService {
	scanConfig := AlertScanConfig{
		CronSchedule: appConfig.AlertScan.CronSchedule,
		ScanEnabled:  appConfig.AlertScan.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": scanConfig.CronSchedule,
		"scan_enabled":  scanConfig.ScanEnabled,
	}).Info("Configuração da varredura de alertas carregada")

	return &AlertScanService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    scanConfig,
		source:    source,
		emitter:   emitter,
		seen:      make(map[string]struct{}),
	}
}

// Start inicia o agendador
func (s *AlertScanService) Start(ctx context.Context) error {
	if !s.config.ScanEnabled {
		logrus.Info("Varredura de alertas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de varredura de alertas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runScan(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de alertas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop para o agendador; novas varreduras agendadas deixam de disparar. Pode ser chamado mais de uma vez.
func (s *AlertScanService) Stop() {
	s.stopOnce.Do(func() {
		if !s.scheduler.IsRunning() {
			return
		}
		logrus.Info("Parando agendador de varredura de alertas")
		s.scheduler.Stop()
	})
}

// runScan executa uma varredura, ignorando a chamada se outra já estiver em andamento
func (s *AlertScanService) runScan(ctx context.Context) {
	s.scanMutex.Lock()
	if s.scanRunning {
		s.scanMutex.Unlock()
		logrus.Info("Varredura de alertas já em andamento, ignorando")
		return
	}
	s.scanRunning = true
	s.lastScanStartedAt = time.Now()
	s.scanMutex.Unlock()

	emitted, total, err := s.scan(ctx)

	s.scanMutex.Lock()
	s.scanRunning = false
	s.lastScanCompletedAt = time.Now()
	s.lastAlertCount = total
	s.lastEmitted = emitted
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.scanMutex.Unlock()
}

// scan emite webhooks para os alertas que não apareceram na varredura anterior.
// Retorna quantos webhooks foram agendados e quantos alertas foram encontrados.
func (s *AlertScanService) scan(ctx context.Context) (int, int, error) {
	alerts, err := s.source.GetRealTimeAlerts(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar alertas em tempo real")
		return 0, 0, err
	}

	current := make(map[string]struct{}, len(alerts))
	emitted := 0

	for _, alert := range alerts {
		current[alert.ID] = struct{}{}
		if _, ok := s.seen[alert.ID]; ok {
			continue
		}

		event, delay, err := s.emitter.SimulateWebhook(AlertWebhookType, alert)
		if err != nil {
			logrus.WithError(err).WithField("alert_id", alert.ID).Warn("Falha ao agendar webhook de alerta")
			continue
		}
		emitted++

		logrus.WithFields(logrus.Fields{
			"alert_id": alert.ID,
			"event_id": event.ID,
			"delay_ms": delay.Milliseconds(),
		}).Debug("Webhook de alerta agendado")
	}

	// alertas resolvidos podem disparar de novo numa varredura futura
	s.seen = current

	logrus.WithFields(logrus.Fields{
		"alerts":  len(alerts),
		"emitted": emitted,
	}).Info("Varredura de alertas concluída")

	return emitted, len(alerts), nil
}

// TriggerManualSync inicia manualmente uma varredura; retorna false se já houver uma em andamento
func (s *AlertScanService) TriggerManualSync(ctx context.Context) bool {
	s.scanMutex.Lock()
	if s.scanRunning {
		s.scanMutex.Unlock()
		logrus.Info("Varredura de alertas já em andamento, ignorando solicitação manual")
		return false
	}
	s.scanMutex.Unlock()

	logrus.Info("Iniciando varredura manual de alertas")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runScan(context.WithoutCancel(ctx))
	}()
	return true
}

// Wait aguarda as varreduras manuais em andamento. Chame Stop antes para não disputar com o cron.
func (s *AlertScanService) Wait() {
	s.wg.Wait()
}

// GetStatus retorna o status atual da varredura
func (s *AlertScanService) GetStatus() map[string]any {
	s.scanMutex.Lock()
	defer s.scanMutex.Unlock()

	return map[string]any{
		"scan_running":           s.scanRunning,
		"scan_cron":              s.config.CronSchedule,
		"scan_enabled":           s.config.ScanEnabled,
		"last_scan_started_at":   s.lastScanStartedAt,
		"last_scan_completed_at": s.lastScanCompletedAt,
		"last_alert_count":       s.lastAlertCount,
		"last_emitted":           s.lastEmitted,
		"last_error":             s.lastError,
	}
}
