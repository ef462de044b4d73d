package datasourcing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/generating"
	"github.com/vfg2006/campaign-demo-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-demo-api/pkg/log"
)

type Mode string

const (
	ModeDemo       Mode = "demo"
	ModeProduction Mode = "production"
)

const (
	defaultCampaignCount     = 4
	defaultAlertCount        = 5
	defaultCreativeCampaigns = 4
	defaultHistoryDays       = 7
	maxHistoryDays           = 90
)

// Settings escolhe de onde vêm os dados do dashboard
type Settings struct {
	Mode              Mode `json:"mode"`
	UseGeneratedData  bool `json:"use_generated_data"`
	CampaignCount     int  `json:"campaign_count"`
	AlertCount        int  `json:"alert_count"`
	CreativeCampaigns int  `json:"creative_campaigns"`
}

// SettingsUpdate é uma alteração parcial de Settings
type SettingsUpdate struct {
	Mode              *Mode `json:"mode,omitempty"`
	UseGeneratedData  *bool `json:"use_generated_data,omitempty"`
	CampaignCount     *int  `json:"campaign_count,omitempty"`
	AlertCount        *int  `json:"alert_count,omitempty"`
	CreativeCampaigns *int  `json:"creative_campaigns,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		Mode:              ModeDemo,
		UseGeneratedData:  true,
		CampaignCount:     defaultCampaignCount,
		AlertCount:        defaultAlertCount,
		CreativeCampaigns: defaultCreativeCampaigns,
	}
}

// ProductionSource é a origem dos dados reais (integração com a LinkedIn Marketing API)
type ProductionSource interface {
	GetCampaigns(ctx context.Context) ([]*domain.Campaign, error)
	GetCreatives(ctx context.Context) ([]*domain.Creative, error)
	GetAlerts(ctx context.Context) ([]*domain.Alert, error)
	GetAudienceInsights(ctx context.Context) (*domain.AudienceInsight, error)
}

type DataService interface {
	Settings() Settings
	UpdateSettings(update SettingsUpdate) (Settings, error)
	GetCampaigns(ctx context.Context) ([]*domain.Campaign, error)
	GetCreatives(ctx context.Context) ([]*domain.Creative, error)
	GetAlerts(ctx context.Context) ([]*domain.Alert, error)
	GetRealTimeAlerts(ctx context.Context) ([]*domain.Alert, error)
	GetAlertHistory(ctx context.Context, days int) ([]*domain.Alert, error)
	GetAudienceInsights(ctx context.Context) (*domain.AudienceInsight, error)
	GetAnalytics(ctx context.Context, forecastDays int) (*domain.Analytics, error)
	RefreshData(ctx context.Context) (*domain.DashboardData, error)
}

type Service struct {
	generator  generating.DataGenerator
	production ProductionSource
	fixtures   *fixtures
	now        func() time.Time

	mu       sync.RWMutex
	settings Settings
}

func NewService(generator generating.DataGenerator, production ProductionSource, settings Settings) (*Service, error) {
	f, err := loadFixtures()
	if err != nil {
		return nil, err
	}

	s := &Service{
		generator:  generator,
		production: production,
		fixtures:   f,
		now:        time.Now,
		settings:   DefaultSettings(),
	}

	if _, err := s.UpdateSettings(settingsToUpdate(settings)); err != nil {
		return nil, err
	}

	return s, nil
}

func settingsToUpdate(s Settings) SettingsUpdate {
	update := SettingsUpdate{UseGeneratedData: &s.UseGeneratedData}
	if s.Mode != "" {
		update.Mode = &s.Mode
	}
	if s.CampaignCount != 0 {
		update.CampaignCount = &s.CampaignCount
	}
	if s.AlertCount != 0 {
		update.AlertCount = &s.AlertCount
	}
	if s.CreativeCampaigns != 0 {
		update.CreativeCampaigns = &s.CreativeCampaigns
	}
	return update
}

func (s *Service) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings valida a alteração inteira antes de aplicar; em caso de erro nada muda
func (s *Service) UpdateSettings(update SettingsUpdate) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings

	if update.Mode != nil {
		switch *update.Mode {
		case ModeDemo, ModeProduction:
			next.Mode = *update.Mode
		default:
			return s.settings, NewDataSourceError(ErrInvalidMode, apiErrors.ErrInvalidRequest, fmt.Sprintf("modo %q não suportado", *update.Mode))
		}
	}
	if update.UseGeneratedData != nil {
		next.UseGeneratedData = *update.UseGeneratedData
	}

	counts := []struct {
		name  string
		value *int
		dst   *int
	}{
		{"campaign_count", update.CampaignCount, &next.CampaignCount},
		{"alert_count", update.AlertCount, &next.AlertCount},
		{"creative_campaigns", update.CreativeCampaigns, &next.CreativeCampaigns},
	}
	for _, c := range counts {
		if c.value == nil {
			continue
		}
		if *c.value <= 0 {
			return s.settings, NewDataSourceError(ErrInvalidCount, apiErrors.ErrInvalidRequest, c.name)
		}
		*c.dst = *c.value
	}

	s.settings = next
	return next, nil
}

func (s *Service) SetMode(mode Mode) error {
	_, err := s.UpdateSettings(SettingsUpdate{Mode: &mode})
	return err
}

func (s *Service) SetUseGeneratedData(enabled bool) {
	_, _ = s.UpdateSettings(SettingsUpdate{UseGeneratedData: &enabled})
}

func (s *Service) SetCampaignCount(count int) error {
	_, err := s.UpdateSettings(SettingsUpdate{CampaignCount: &count})
	return err
}

func (s *Service) SetAlertCount(count int) error {
	_, err := s.UpdateSettings(SettingsUpdate{AlertCount: &count})
	return err
}

func (s *Service) SetCreativeCampaigns(count int) error {
	_, err := s.UpdateSettings(SettingsUpdate{CreativeCampaigns: &count})
	return err
}

func (s *Service) logProduction(ctx context.Context, resource string) {
	log.ForContext(ctx).WithField("resource", resource).Warn("datasource: production mode requested")
}

func (s *Service) GetCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	settings := s.Settings()

	switch {
	case settings.Mode == ModeProduction:
		s.logProduction(ctx, "campaigns")
		return s.production.GetCampaigns(ctx)
	case settings.UseGeneratedData:
		return s.generator.GenerateCampaigns(settings.CampaignCount), nil
	default:
		return s.fixtures.campaigns()
	}
}

func (s *Service) GetCreatives(ctx context.Context) ([]*domain.Creative, error) {
	settings := s.Settings()

	switch {
	case settings.Mode == ModeProduction:
		s.logProduction(ctx, "creatives")
		return s.production.GetCreatives(ctx)
	case settings.UseGeneratedData:
		return s.generator.GenerateCreatives(campaignIDs(settings.CreativeCampaigns)...), nil
	default:
		return s.fixtures.creatives()
	}
}

func (s *Service) GetAlerts(ctx context.Context) ([]*domain.Alert, error) {
	settings := s.Settings()

	switch {
	case settings.Mode == ModeProduction:
		s.logProduction(ctx, "alerts")
		return s.production.GetAlerts(ctx)
	case settings.UseGeneratedData:
		return s.generator.GenerateAlerts(settings.AlertCount), nil
	default:
		return s.fixtures.alerts()
	}
}

// GetRealTimeAlerts aplica as regras de alerta em tempo real sobre as campanhas da fonte atual
func (s *Service) GetRealTimeAlerts(ctx context.Context) ([]*domain.Alert, error) {
	campaigns, err := s.GetCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	return s.generator.GenerateRealTimeAlerts(campaigns), nil
}

// GetAlertHistory sempre usa o gerador; days zero usa 7 dias
func (s *Service) GetAlertHistory(ctx context.Context, days int) ([]*domain.Alert, error) {
	if s.Settings().Mode == ModeProduction {
		s.logProduction(ctx, "alert_history")
		return nil, ErrProductionNotImplemented
	}

	if days == 0 {
		days = defaultHistoryDays
	}
	if days < 0 || days > maxHistoryDays {
		return nil, NewDataSourceError(ErrInvalidDays, apiErrors.ErrInvalidFormat, fmt.Sprintf("days deve estar entre 1 e %d", maxHistoryDays))
	}

	return s.generator.GenerateAlertHistory(days), nil
}

func (s *Service) GetAudienceInsights(ctx context.Context) (*domain.AudienceInsight, error) {
	settings := s.Settings()

	switch {
	case settings.Mode == ModeProduction:
		s.logProduction(ctx, "audience")
		return s.production.GetAudienceInsights(ctx)
	case settings.UseGeneratedData:
		return s.generator.GenerateAudienceInsights(), nil
	default:
		return s.fixtures.audience()
	}
}

func (s *Service) GetAnalytics(ctx context.Context, forecastDays int) (*domain.Analytics, error) {
	if forecastDays < 0 {
		return nil, NewDataSourceError(ErrInvalidDays, apiErrors.ErrInvalidFormat, "forecast_days não pode ser negativo")
	}
	if forecastDays == 0 {
		forecastDays = generating.DefaultForecastDays
	}

	campaigns, err := s.GetCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	return s.generator.Analytics(campaigns, forecastDays), nil
}

// RefreshData monta o dashboard completo; a primeira falha interrompe a montagem
func (s *Service) RefreshData(ctx context.Context) (*domain.DashboardData, error) {
	campaigns, err := s.GetCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	creatives, err := s.GetCreatives(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := s.GetAlerts(ctx)
	if err != nil {
		return nil, err
	}
	audience, err := s.GetAudienceInsights(ctx)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"campaigns": len(campaigns),
		"creatives": len(creatives),
		"alerts":    len(alerts),
	}).Debug("datasource: dashboard atualizado")

	return &domain.DashboardData{
		Campaigns:   campaigns,
		Creatives:   creatives,
		Alerts:      alerts,
		Audience:    audience,
		GeneratedAt: s.now().UTC(),
	}, nil
}

func campaignIDs(n int) []string {
	ids := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		ids = append(ids, fmt.Sprintf("camp_%03d", i))
	}
	return ids
}
