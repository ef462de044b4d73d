package generating

import (
	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/pkg/sampling"
	"github.com/vfg2006/campaign-demo-api/pkg/utils"
)

const (
	audienceCTRVariation = 0.2
	audienceCPCVariation = 0.15
)

func (g *Generator) GenerateAudienceInsights() *domain.AudienceInsight {
	return &domain.AudienceInsight{
		JobTitles:    g.segments(jobTitleProfiles, seniorityConversionRate),
		CompanySizes: g.segments(companySizeProfiles, companySizeConversionRate),
	}
}

func (g *Generator) segments(profiles []audienceProfile, conversion map[string]sampling.Range) []*domain.AudienceSegment {
	segments := make([]*domain.AudienceSegment, 0, len(profiles))
	for _, p := range profiles {
		s := g.sampler
		impressions := utils.RoundInt(s.Sample(impressionVolume[p.Volume]))
		m := DeriveMetrics(impressions, s.Skewed(p.ExpectedCTR, audienceCTRVariation), s.Skewed(p.ExpectedCPC, audienceCPCVariation), s.Sample(conversion[p.Key]))

		segments = append(segments, &domain.AudienceSegment{
			Segment:           p.Segment,
			Impressions:       m.Impressions,
			Clicks:            m.Clicks,
			CTR:               m.CTR,
			Conversions:       m.Conversions,
			ConversionRate:    m.ConversionRate,
			CostPerConversion: m.CostPerConversion,
		})
	}
	return segments
}
