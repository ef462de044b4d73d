package generating

import (
	"fmt"
	"math"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/pkg/templating"
	"github.com/vfg2006/campaign-demo-api/pkg/utils"
)

const (
	campaignCTRVariation = 0.3
	activeCampaignPct    = 80
	budgetDays           = 30
)

// ClassifyTrend classifica a razão entre o CTR observado e o esperado.
// Os limites são inclusivos no lado superior.
func ClassifyTrend(ratio float64) domain.Trend {
	switch {
	case ratio >= 1.4:
		return domain.TrendStrong
	case ratio >= 1.1:
		return domain.TrendImproving
	case ratio >= 0.9:
		return domain.TrendStable
	case ratio >= 0.7:
		return domain.TrendDeclining
	default:
		return domain.TrendPoor
	}
}

// TrendFor classifica actual contra expected; CTR esperado zero é tratado como estável
func TrendFor(actual, expected float64) domain.Trend {
	if expected == 0 {
		return domain.TrendStable
	}
	return ClassifyTrend(actual / expected)
}

// DeriveMetrics calcula cliques, conversões e custos a partir de impressões e das taxas amostradas
func DeriveMetrics(impressions int, ctr, cpc, conversionRate float64) domain.CampaignMetrics {
	ctr = utils.RoundWithTwoDecimalPlace(ctr)
	cpc = utils.RoundWithTwoDecimalPlace(cpc)
	conversionRate = utils.RoundWithTwoDecimalPlace(conversionRate)

	clicks := utils.RoundInt(float64(impressions) * ctr / 100)
	conversions := utils.RoundInt(float64(clicks) * conversionRate / 100)
	spend := utils.RoundWithTwoDecimalPlace(float64(clicks) * cpc)

	return domain.CampaignMetrics{
		Impressions:       impressions,
		Clicks:            clicks,
		CTR:               ctr,
		CPC:               cpc,
		Conversions:       conversions,
		ConversionRate:    conversionRate,
		Spend:             spend,
		CostPerConversion: utils.RoundWithTwoDecimalPlace(utils.SafeDivide(spend, float64(conversions))),
	}
}

// NewBudget monta o orçamento mantendo remaining = max(0, total - spent)
func NewBudget(total, spent, daily float64) domain.Budget {
	return domain.Budget{
		Total:     total,
		Spent:     spent,
		Remaining: utils.RoundWithTwoDecimalPlace(math.Max(0, total-spent)),
		Daily:     daily,
	}
}

func (g *Generator) GenerateCampaigns(count int) []*domain.Campaign {
	campaigns := make([]*domain.Campaign, 0, max(count, 0))
	for i := 0; i < count; i++ {
		campaigns = append(campaigns, g.GenerateCampaign(i))
	}
	return campaigns
}

// GenerateCampaign gera a campanha de posição index (base zero); o template é escolhido por index % len(templates)
func (g *Generator) GenerateCampaign(index int) *domain.Campaign {
	if index < 0 {
		index = 0
	}
	tpl := campaignTemplates[index%len(campaignTemplates)]
	s := g.sampler

	impressions := utils.RoundInt(s.Sample(impressionVolume[tpl.Volume]))
	ctr := s.Skewed(tpl.BaseCTR, campaignCTRVariation)
	metrics := DeriveMetrics(impressions, ctr, s.Sample(tpl.CPC), s.Sample(tpl.ConversionRate))

	utilisation := s.Uniform(0.40, 0.95)
	total := math.Ceil(metrics.Spend / utilisation)
	if total == 0 {
		total = budgetDays
	}

	status := domain.CampaignStatusPaused
	if s.Percent(activeCampaignPct) {
		status = domain.CampaignStatusActive
	}

	last7 := g.lastSevenDays(metrics)

	return &domain.Campaign{
		ID:          fmt.Sprintf("camp_%03d", index+1),
		Name:        templating.Resolve(tpl.NamePattern, "", g.vars()),
		Status:      status,
		Objective:   tpl.Objective,
		Industry:    tpl.Industry,
		Budget:      NewBudget(total, metrics.Spend, utils.RoundWithTwoDecimalPlace(total/budgetDays)),
		Metrics:     metrics,
		ExpectedCTR: tpl.BaseCTR,
		Trend:       TrendFor(last7.CTR, tpl.BaseCTR),
		Last7Days:   last7,
		StartDate:   g.now().AddDate(0, 0, -s.IntBetween(14, 90)).Format("2006-01-02"),
	}
}

// lastSevenDays recorta 15-25% do volume mensal e aplica um multiplicador de tendência ao volume e ao CTR
func (g *Generator) lastSevenDays(monthly domain.CampaignMetrics) domain.CampaignMetrics {
	fraction := g.sampler.Uniform(0.15, 0.25)
	trend := g.sampler.Uniform(0.8, 1.3)

	impressions := utils.RoundInt(float64(monthly.Impressions) * fraction * trend)
	return DeriveMetrics(impressions, monthly.CTR*trend, monthly.CPC, monthly.ConversionRate)
}
