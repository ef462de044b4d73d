package simulating

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/generating"
	"github.com/vfg2006/campaign-demo-api/pkg/log"
	"github.com/vfg2006/campaign-demo-api/pkg/sampling"
)

const (
	DefaultLatency = 500 * time.Millisecond
	DefaultOutage  = 30 * time.Second

	defaultCampaignCount = 4
)

// Settings controla o comportamento do mock da API.
// Com FixedLatency, Latency (inclusive zero) vale para toda chamada sem latência explícita;
// sem FixedLatency cada operação usa a sua latência padrão.
type Settings struct {
	Latency      time.Duration
	FixedLatency bool
	ErrorRate    float64
	Logging      bool
}

// CallRecorder persiste o histórico de chamadas simuladas
type CallRecorder interface {
	Record(ctx context.Context, call *domain.SimulatedCall) error
}

type Option func(*Simulator)

func WithSettings(settings Settings) Option {
	return func(s *Simulator) {
		settings.ErrorRate = clampRate(settings.ErrorRate)
		if settings.Latency < 0 {
			settings.Latency = 0
		}
		s.settings = settings
	}
}

func WithRecorder(recorder CallRecorder) Option {
	return func(s *Simulator) {
		s.recorder = recorder
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(s *Simulator) {
		s.metrics = metrics
	}
}

// WithCampaignCount define quantas campanhas ListCampaigns e GetAnalytics geram
func WithCampaignCount(count int) Option {
	return func(s *Simulator) {
		if count > 0 {
			s.campaignCount = count
		}
	}
}

// WithMaxWebhookDelay limita o atraso sorteado para a emissão de webhooks
func WithMaxWebhookDelay(d time.Duration) Option {
	return func(s *Simulator) {
		if d >= 0 {
			s.maxWebhookDelay = d
		}
	}
}

// WithOutageDuration define a duração usada quando SimulateOutage recebe zero
func WithOutageDuration(d time.Duration) Option {
	return func(s *Simulator) {
		if d > 0 {
			s.outageDuration = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Simulator) {
		if now != nil {
			s.now = now
		}
	}
}

// Simulator envolve os geradores com latência e falhas de rede simuladas
type Simulator struct {
	generator       generating.DataGenerator
	sampler         *sampling.Sampler
	recorder        CallRecorder
	metrics         *Metrics
	campaignCount   int
	maxWebhookDelay time.Duration
	outageDuration  time.Duration
	now             func() time.Time

	mu          sync.RWMutex
	settings    Settings
	outage      *outage
	closed      bool
	subscribers map[int]chan *domain.WebhookEvent
	nextSubID   int
	recent      []*domain.WebhookEvent
	pending     map[*domain.WebhookEvent]*time.Timer
}

func New(generator generating.DataGenerator, sampler *sampling.Sampler, opts ...Option) *Simulator {
	if sampler == nil {
		sampler = sampling.New(0)
	}

	s := &Simulator{
		generator:       generator,
		sampler:         sampler,
		campaignCount:   defaultCampaignCount,
		maxWebhookDelay: MaxWebhookDelay,
		outageDuration:  DefaultOutage,
		now:             time.Now,
		settings:        Settings{Logging: true},
		subscribers:     make(map[int]chan *domain.WebhookEvent),
		pending:         make(map[*domain.WebhookEvent]*time.Timer),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Simulator) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetLatency fixa a latência de todas as chamadas sem latência explícita; negativo vira zero
func (s *Simulator) SetLatency(latency time.Duration) {
	if latency < 0 {
		latency = 0
	}

	s.mu.Lock()
	s.settings.Latency = latency
	s.settings.FixedLatency = true
	s.mu.Unlock()
}

// ClearLatency volta a usar a latência padrão de cada operação
func (s *Simulator) ClearLatency() {
	s.mu.Lock()
	s.settings.Latency = 0
	s.settings.FixedLatency = false
	s.mu.Unlock()
}

// SetErrorRate define a taxa de falha em percentual, limitada a 0-100.
// Durante um outage o valor passa a valer quando o outage terminar.
func (s *Simulator) SetErrorRate(rate float64) {
	rate = clampRate(rate)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outage != nil {
		s.outage.restoreRate = rate
		return
	}
	s.settings.ErrorRate = rate
}

func (s *Simulator) SetLogging(enabled bool) {
	s.mu.Lock()
	s.settings.Logging = enabled
	s.mu.Unlock()
}

func clampRate(rate float64) float64 {
	switch {
	case rate < 0:
		return 0
	case rate > 100:
		return 100
	default:
		return rate
	}
}

type callConfig struct {
	override    *time.Duration
	fallback    time.Duration
	hasFallback bool
}

type CallOption func(*callConfig)

// WithLatency substitui a latência desta chamada, ignorando a configuração do simulador
func WithLatency(latency time.Duration) CallOption {
	return func(c *callConfig) {
		if latency < 0 {
			latency = 0
		}
		c.override = &latency
	}
}

// withDefaultLatency é a latência da operação quando o simulador não tem latência fixa
func withDefaultLatency(latency time.Duration) CallOption {
	return func(c *callConfig) {
		c.fallback = latency
		c.hasFallback = true
	}
}

// latencyFor resolve, nesta ordem: latência explícita da chamada, latência fixa do simulador,
// padrão da operação e DefaultLatency.
func (s *Simulator) latencyFor(cfg callConfig) time.Duration {
	if cfg.override != nil {
		return *cfg.override
	}

	settings := s.Settings()
	switch {
	case settings.FixedLatency:
		return settings.Latency
	case cfg.hasFallback:
		return cfg.fallback
	default:
		return DefaultLatency
	}
}

// Call aguarda a latência configurada e então falha com *SimulatedNetworkError com probabilidade errorRate/100,
// ou devolve o resultado de produce. Cancelar ctx durante a espera retorna ctx.Err().
func Call[T any](ctx context.Context, s *Simulator, endpoint string, produce func() (T, error), opts ...CallOption) (T, error) {
	var zero T

	cfg := callConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	started := s.now()
	latency := s.latencyFor(cfg)

	if err := sleep(ctx, latency); err != nil {
		s.record(ctx, endpoint, started, latency, err)
		return zero, err
	}

	if s.sampler.Percent(s.Settings().ErrorRate) {
		err := &SimulatedNetworkError{Endpoint: endpoint}
		s.record(ctx, endpoint, started, latency, err)
		return zero, err
	}

	result, err := produce()
	s.record(ctx, endpoint, started, latency, err)
	if err != nil {
		return zero, err
	}

	return result, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Simulator) record(ctx context.Context, endpoint string, started time.Time, latency time.Duration, err error) {
	outcome := outcomeSuccess
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		outcome = outcomeCancelled
	case err != nil:
		outcome = outcomeFailure
	}
	s.metrics.observe(endpoint, outcome, latency)

	call := &domain.SimulatedCall{
		Endpoint:  endpoint,
		LatencyMS: latency.Milliseconds(),
		Failed:    err != nil,
		StartedAt: started,
	}
	if err != nil {
		call.Error = err.Error()
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"endpoint":   endpoint,
		"latency_ms": call.LatencyMS,
		"outcome":    outcome,
	})
	if s.Settings().Logging {
		if err != nil {
			logger.WithError(err).Warn("simulator: call failed")
		} else {
			logger.Info("simulator: call completed")
		}
	}

	if s.recorder == nil {
		return
	}
	if recErr := s.recorder.Record(context.WithoutCancel(ctx), call); recErr != nil {
		logger.WithError(recErr).Error("simulator: failed to record call")
	}
}
