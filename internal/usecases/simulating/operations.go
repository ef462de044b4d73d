package simulating

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/generating"
	"github.com/vfg2006/campaign-demo-api/pkg/utils"
)

// Endpoints simulados
const (
	OpListAccounts        = "list_accounts"
	OpListCampaigns       = "list_campaigns"
	OpCreateCampaign      = "create_campaign"
	OpUpdateCampaign      = "update_campaign"
	OpPauseCampaign       = "pause_campaign"
	OpResumeCampaign      = "resume_campaign"
	OpGetAnalytics        = "get_analytics"
	OpGetAudienceInsights = "get_audience_insights"
	OpGetCreatives        = "get_creatives"
	OpBatchUpdate         = "batch_update"
	OpCheckRateLimit      = "check_rate_limit"
)

// OperationLatency é a latência padrão de cada endpoint simulado
var OperationLatency = map[string]time.Duration{
	OpListAccounts:        300 * time.Millisecond,
	OpListCampaigns:       500 * time.Millisecond,
	OpCreateCampaign:      800 * time.Millisecond,
	OpUpdateCampaign:      600 * time.Millisecond,
	OpPauseCampaign:       400 * time.Millisecond,
	OpResumeCampaign:      400 * time.Millisecond,
	OpGetAnalytics:        1000 * time.Millisecond,
	OpGetAudienceInsights: 1200 * time.Millisecond,
	OpGetCreatives:        700 * time.Millisecond,
	OpBatchUpdate:         1500 * time.Millisecond,
	OpCheckRateLimit:      100 * time.Millisecond,
}

const (
	rateLimitPerHour = 100
	campaignPrefix   = "camp_"
)

func op[T any](ctx context.Context, s *Simulator, endpoint string, produce func() (T, error)) (T, error) {
	return Call(ctx, s, endpoint, produce, withDefaultLatency(OperationLatency[endpoint]))
}

func (s *Simulator) ListAccounts(ctx context.Context) ([]*domain.AdAccount, error) {
	return op(ctx, s, OpListAccounts, func() ([]*domain.AdAccount, error) {
		return s.generator.GenerateAccounts(), nil
	})
}

func (s *Simulator) ListCampaigns(ctx context.Context, accountID string) ([]*domain.Campaign, error) {
	return op(ctx, s, OpListCampaigns, func() ([]*domain.Campaign, error) {
		if strings.TrimSpace(accountID) == "" {
			return nil, fmt.Errorf("%w: account id is required", ErrInvalidCampaign)
		}
		return s.generator.GenerateCampaigns(s.campaignCount), nil
	})
}

// CreateCampaign devolve uma campanha nova, sem entrega, com o orçamento informado
func (s *Simulator) CreateCampaign(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error) {
	return op(ctx, s, OpCreateCampaign, func() (*domain.Campaign, error) {
		if strings.TrimSpace(draft.Name) == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalidCampaign)
		}
		if draft.TotalBudget <= 0 {
			return nil, fmt.Errorf("%w: total budget must be positive", ErrInvalidCampaign)
		}

		id, err := utils.NewID(campaignPrefix)
		if err != nil {
			return nil, err
		}

		daily := draft.DailyBudget
		if daily <= 0 {
			daily = utils.RoundWithTwoDecimalPlace(draft.TotalBudget / 30)
		}

		template := s.generator.GenerateCampaign(0)
		objective := draft.Objective
		if objective == "" {
			objective = template.Objective
		}

		return &domain.Campaign{
			ID:          id,
			Name:        draft.Name,
			Status:      domain.CampaignStatusActive,
			Objective:   objective,
			Industry:    template.Industry,
			Budget:      generating.NewBudget(draft.TotalBudget, 0, daily),
			ExpectedCTR: template.ExpectedCTR,
			Trend:       domain.TrendStable,
			StartDate:   s.now().Format("2006-01-02"),
		}, nil
	})
}

func (s *Simulator) UpdateCampaign(ctx context.Context, update domain.CampaignUpdate) (*domain.Campaign, error) {
	return op(ctx, s, OpUpdateCampaign, func() (*domain.Campaign, error) {
		return s.applyUpdate(update)
	})
}

// applyUpdate gera a campanha correspondente ao id e aplica a alteração parcial
func (s *Simulator) applyUpdate(update domain.CampaignUpdate) (*domain.Campaign, error) {
	if strings.TrimSpace(update.ID) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidCampaign)
	}

	campaign := s.generator.GenerateCampaign(campaignIndex(update.ID))
	campaign.ID = update.ID

	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidCampaign)
		}
		campaign.Name = *update.Name
	}

	if update.Status != nil {
		switch *update.Status {
		case domain.CampaignStatusActive, domain.CampaignStatusPaused, domain.CampaignStatusCompleted:
			campaign.Status = *update.Status
		default:
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidCampaign, *update.Status)
		}
	}

	total, daily := campaign.Budget.Total, campaign.Budget.Daily
	if update.TotalBudget != nil {
		if *update.TotalBudget <= 0 {
			return nil, fmt.Errorf("%w: total budget must be positive", ErrInvalidCampaign)
		}
		total = *update.TotalBudget
	}
	if update.DailyBudget != nil {
		if *update.DailyBudget <= 0 {
			return nil, fmt.Errorf("%w: daily budget must be positive", ErrInvalidCampaign)
		}
		daily = *update.DailyBudget
	}

	spent := campaign.Budget.Spent
	if spent > total {
		spent = total
	}
	campaign.Budget = generating.NewBudget(total, spent, daily)

	return campaign, nil
}

// campaignIndex converte camp_NNN no índice de geração; ids fora do padrão usam o primeiro template
func campaignIndex(id string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(id, campaignPrefix))
	if err != nil || n < 1 {
		return 0
	}
	return n - 1
}

func (s *Simulator) PauseCampaign(ctx context.Context, id string) (*domain.CampaignStatusChange, error) {
	return op(ctx, s, OpPauseCampaign, func() (*domain.CampaignStatusChange, error) {
		return s.statusChange(id, domain.CampaignStatusPaused)
	})
}

func (s *Simulator) ResumeCampaign(ctx context.Context, id string) (*domain.CampaignStatusChange, error) {
	return op(ctx, s, OpResumeCampaign, func() (*domain.CampaignStatusChange, error) {
		return s.statusChange(id, domain.CampaignStatusActive)
	})
}

func (s *Simulator) statusChange(id string, status domain.CampaignStatus) (*domain.CampaignStatusChange, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidCampaign)
	}
	return &domain.CampaignStatusChange{
		ID:        id,
		Status:    status,
		UpdatedAt: s.now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *Simulator) GetAnalytics(ctx context.Context, forecastDays int) (*domain.Analytics, error) {
	return op(ctx, s, OpGetAnalytics, func() (*domain.Analytics, error) {
		if forecastDays <= 0 {
			forecastDays = generating.DefaultForecastDays
		}
		return s.generator.Analytics(s.generator.GenerateCampaigns(s.campaignCount), forecastDays), nil
	})
}

func (s *Simulator) GetAudienceInsights(ctx context.Context) (*domain.AudienceInsight, error) {
	return op(ctx, s, OpGetAudienceInsights, func() (*domain.AudienceInsight, error) {
		return s.generator.GenerateAudienceInsights(), nil
	})
}

func (s *Simulator) GetCreatives(ctx context.Context, campaignID string) ([]*domain.Creative, error) {
	return op(ctx, s, OpGetCreatives, func() ([]*domain.Creative, error) {
		if strings.TrimSpace(campaignID) == "" {
			return nil, fmt.Errorf("%w: campaign id is required", ErrInvalidCampaign)
		}
		return s.generator.GenerateCreatives(campaignID), nil
	})
}

// BatchUpdate aplica as alterações individualmente; falhas de validação não interrompem o lote
func (s *Simulator) BatchUpdate(ctx context.Context, updates []domain.CampaignUpdate) (*domain.BatchUpdateResult, error) {
	return op(ctx, s, OpBatchUpdate, func() (*domain.BatchUpdateResult, error) {
		result := &domain.BatchUpdateResult{Campaigns: make([]*domain.Campaign, 0, len(updates))}
		for _, update := range updates {
			campaign, err := s.applyUpdate(update)
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", update.ID, err.Error()))
				continue
			}
			result.Updated++
			result.Campaigns = append(result.Campaigns, campaign)
		}
		return result, nil
	})
}

func (s *Simulator) CheckRateLimit(ctx context.Context) (*domain.RateLimitStatus, error) {
	return op(ctx, s, OpCheckRateLimit, func() (*domain.RateLimitStatus, error) {
		return &domain.RateLimitStatus{
			Limit:     rateLimitPerHour,
			Remaining: s.sampler.IntBetween(rateLimitPerHour/2, rateLimitPerHour),
			ResetAt:   s.now().Add(time.Hour).Truncate(time.Hour).UTC().Format(time.RFC3339),
		}, nil
	})
}
