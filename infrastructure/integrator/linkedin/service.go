package linkedin

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/pkg/log"
)

type LinkedInIntegrator struct {
	Client Client
}

func New(client Client) *LinkedInIntegrator {
	return &LinkedInIntegrator{Client: client}
}

func (s *LinkedInIntegrator) GetCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	campaigns, err := s.Client.GetCampaigns(ctx)
	if err != nil {
		return nil, s.fail(ctx, "campaigns", err)
	}
	return campaigns, nil
}

func (s *LinkedInIntegrator) GetCreatives(ctx context.Context) ([]*domain.Creative, error) {
	creatives, err := s.Client.GetCreatives(ctx)
	if err != nil {
		return nil, s.fail(ctx, "creatives", err)
	}
	return creatives, nil
}

func (s *LinkedInIntegrator) GetAlerts(ctx context.Context) ([]*domain.Alert, error) {
	alerts, err := s.Client.GetAlerts(ctx)
	if err != nil {
		return nil, s.fail(ctx, "alerts", err)
	}
	return alerts, nil
}

func (s *LinkedInIntegrator) GetAudienceInsights(ctx context.Context) (*domain.AudienceInsight, error) {
	insights, err := s.Client.GetAudienceInsights(ctx)
	if err != nil {
		return nil, s.fail(ctx, "audience", err)
	}
	return insights, nil
}

func (s *LinkedInIntegrator) fail(ctx context.Context, resource string, err error) error {
	log.ForContext(ctx).WithFields(log.Fields{
		"resource": resource,
		"error":    err.Error(),
	}).Error("linkedin: failed to fetch data from API")
	return errors.Wrapf(err, "linkedin %s", resource)
}
