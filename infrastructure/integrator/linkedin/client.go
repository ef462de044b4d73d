package linkedin

import (
	"context"
	"errors"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
)

const DefaultBaseURL = "https://api.linkedin.com/rest"

// ErrProductionNotImplemented indica que a integração real com a LinkedIn Marketing API ainda não existe
var ErrProductionNotImplemented = errors.New("production LinkedIn integration not yet implemented")

type Client interface {
	GetCampaigns(ctx context.Context) ([]*domain.Campaign, error)
	GetCreatives(ctx context.Context) ([]*domain.Creative, error)
	GetAlerts(ctx context.Context) ([]*domain.Alert, error)
	GetAudienceInsights(ctx context.Context) (*domain.AudienceInsight, error)
}

// LinkedInClient é o cliente da API de produção. Todas as chamadas falham com ErrProductionNotImplemented.
type LinkedInClient struct {
	BaseURL string
}

func NewClient(baseURL string) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &LinkedInClient{BaseURL: baseURL}
}

func (c *LinkedInClient) GetCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	return nil, ErrProductionNotImplemented
}

func (c *LinkedInClient) GetCreatives(ctx context.Context) ([]*domain.Creative, error) {
	return nil, ErrProductionNotImplemented
}

func (c *LinkedInClient) GetAlerts(ctx context.Context) ([]*domain.Alert, error) {
	return nil, ErrProductionNotImplemented
}

func (c *LinkedInClient) GetAudienceInsights(ctx context.Context) (*domain.AudienceInsight, error) {
	return nil, ErrProductionNotImplemented
}
