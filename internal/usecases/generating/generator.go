package generating

import (
	"strconv"
	"time"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/pkg/sampling"
	"github.com/vfg2006/campaign-demo-api/pkg/templating"
)

// DataGenerator produz entidades sintéticas de campanhas
type DataGenerator interface {
	GenerateCampaigns(count int) []*domain.Campaign
	GenerateCampaign(index int) *domain.Campaign
	GenerateCreatives(campaignIDs ...string) []*domain.Creative
	GenerateAlerts(count int, campaignNames ...string) []*domain.Alert
	GenerateRealTimeAlerts(campaigns []*domain.Campaign) []*domain.Alert
	GenerateAlertHistory(days int) []*domain.Alert
	GenerateAudienceInsights() *domain.AudienceInsight
	GenerateAccounts() []*domain.AdAccount
	Analytics(campaigns []*domain.Campaign, forecastDays int) *domain.Analytics
}

// Generator combina o sampler e o motor de substituição com os catálogos estáticos
type Generator struct {
	sampler *sampling.Sampler
	now     func() time.Time
}

type Option func(*Generator)

// WithClock substitui o relógio usado em datas e timestamps
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

func New(sampler *sampling.Sampler, opts ...Option) *Generator {
	if sampler == nil {
		sampler = sampling.New(0)
	}

	g := &Generator{
		sampler: sampler,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *Generator) pick(items []string) templating.Producer {
	return func() string {
		return sampling.Pick(g.sampler, items)
	}
}

func (g *Generator) intBetween(min, max int) templating.Producer {
	return func() string {
		return strconv.Itoa(g.sampler.IntBetween(min, max))
	}
}

// vars monta os geradores de placeholders compartilhados por todos os textos
func (g *Generator) vars() templating.Vars {
	return templating.Vars{
		"product":       g.pick(products),
		"audience":      g.pick(audiences),
		"region":        g.pick(regions),
		"industry":      g.pick(industries),
		"quarter":       g.pick(quarters),
		"business_area": g.pick(businessAreas),
		"company":       g.pick(companies),
		"campaign":      g.pick(defaultCampaignNames),
		"year":          func() string { return strconv.Itoa(g.now().Year()) },
		"percentage":    g.intBetween(10, 45),
		"days":          g.intBetween(3, 14),
		"amount":        g.intBetween(500, 5000),
		"duration":      g.intBetween(2, 6),
		"count":         g.intBetween(3, 7),
		"company_count": g.intBetween(200, 2500),
	}
}
