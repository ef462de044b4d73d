package generating

import (
	"fmt"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/pkg/sampling"
	"github.com/vfg2006/campaign-demo-api/pkg/templating"
	"github.com/vfg2006/campaign-demo-api/pkg/utils"
)

const activeCreativePct = 85

// GenerateCreatives gera de 2 a 4 criativos por campanha. Sem ids, usa camp_001..camp_004.
func (g *Generator) GenerateCreatives(campaignIDs ...string) []*domain.Creative {
	if len(campaignIDs) == 0 {
		campaignIDs = defaultCampIDs
	}

	creatives := make([]*domain.Creative, 0, len(campaignIDs)*3)
	for _, campaignID := range campaignIDs {
		n := g.sampler.IntBetween(2, 4)
		for i := 0; i < n; i++ {
			creatives = append(creatives, g.generateCreative(campaignID, i+1))
		}
	}

	return creatives
}

func (g *Generator) generateCreative(campaignID string, seq int) *domain.Creative {
	s := g.sampler
	tpl := sampling.Pick(s, creativeTemplates)
	bands := creativeTiers[tpl.PerformanceTier]
	vars := g.vars()

	impressions := utils.RoundInt(s.Sample(creativeImpressions))
	performance := DeriveMetrics(impressions, s.Sample(bands.CTR), s.Sample(bands.CPC), s.Sample(bands.ConversionRate))

	status := domain.CreativeStatusPaused
	if s.Percent(activeCreativePct) {
		status = domain.CreativeStatusActive
	}

	return &domain.Creative{
		ID:              fmt.Sprintf("%s_creative_%d", campaignID, seq),
		CampaignID:      campaignID,
		Type:            tpl.Type,
		Headline:        templating.Resolve(tpl.HeadlinePattern, "", vars),
		Description:     templating.Resolve(tpl.DescriptionPattern, "", vars),
		ImageURL:        sampling.Pick(s, creativeImages[tpl.Type]),
		PerformanceTier: tpl.PerformanceTier,
		Performance:     performance,
		Status:          status,
	}
}
