package generating

import (
	"fmt"
	"time"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/pkg/sampling"
	"github.com/vfg2006/campaign-demo-api/pkg/templating"
	"github.com/vfg2006/campaign-demo-api/pkg/utils"
)

const (
	alertWindow  = 72 * time.Hour
	unreadWindow = 24 * time.Hour

	budgetAlertSpentPct     = 90.0
	performanceDropRatio    = 0.8
	opportunityCTR          = 3.5
	opportunityMinRemaining = 1000.0
)

// GenerateAlerts gera count alertas de templates aleatórios nos últimos 3 dias, já ordenados para exibição
func (g *Generator) GenerateAlerts(count int, campaignNames ...string) []*domain.Alert {
	if len(campaignNames) == 0 {
		campaignNames = defaultCampaignNames
	}

	now := g.now()
	alerts := make([]*domain.Alert, 0, max(count, 0))
	for i := 0; i < count; i++ {
		timestamp := now.Add(-g.sampler.Duration(0, alertWindow))
		alert := g.alertFromTemplate(sampling.Pick(g.sampler, alertTemplates), sampling.Pick(g.sampler, campaignNames), timestamp)
		alert.ID = fmt.Sprintf("alert_%03d", i+1)
		alert.Status = readStatus(now, alert.Timestamp, alert.Priority)
		alerts = append(alerts, alert)
	}

	domain.SortAlerts(alerts)
	return alerts
}

// readStatus marca como lido alertas com mais de 24h ou de prioridade baixa
func readStatus(now, timestamp time.Time, priority domain.AlertPriority) domain.AlertStatus {
	if now.Sub(timestamp) > unreadWindow || priority == domain.AlertPriorityLow {
		return domain.AlertStatusRead
	}
	return domain.AlertStatusUnread
}

func (g *Generator) alertFromTemplate(tpl alertTemplate, campaign string, timestamp time.Time) *domain.Alert {
	vars := g.vars()
	return &domain.Alert{
		Type:           tpl.Type,
		Priority:       tpl.Priority,
		Title:          templating.Resolve(tpl.TitlePattern, campaign, vars),
		Message:        templating.Resolve(tpl.MessagePattern, campaign, vars),
		Recommendation: templating.Resolve(tpl.RecommendationPattern, campaign, vars),
		Campaign:       campaign,
		Timestamp:      timestamp,
	}
}

// GenerateRealTimeAlerts aplica regras determinísticas sobre as campanhas informadas
func (g *Generator) GenerateRealTimeAlerts(campaigns []*domain.Campaign) []*domain.Alert {
	now := g.now()
	alerts := make([]*domain.Alert, 0)

	for _, c := range campaigns {
		if c == nil {
			continue
		}

		if spent := c.Budget.SpentPercentage(); spent > budgetAlertSpentPct {
			alerts = append(alerts, &domain.Alert{
				ID:             realTimeAlertID(c.ID, domain.AlertTypeBudgetWarning),
				Type:           domain.AlertTypeBudgetWarning,
				Priority:       domain.AlertPriorityHigh,
				Title:          "Budget Almost Depleted",
				Message:        fmt.Sprintf("%s has used %.1f%% of its budget.", c.Name, spent),
				Recommendation: fmt.Sprintf("Add budget or reduce the daily cap; %.2f left.", c.Budget.Remaining),
				Campaign:       c.Name,
				Timestamp:      now,
				Status:         domain.AlertStatusUnread,
			})
		}

		baseline := c.ExpectedCTR
		if baseline == 0 {
			baseline = c.Metrics.CTR
		}
		if baseline > 0 && c.Last7Days.CTR < baseline*performanceDropRatio {
			drop := (1 - utils.SafeDivide(c.Last7Days.CTR, baseline)) * 100
			alerts = append(alerts, &domain.Alert{
				ID:             realTimeAlertID(c.ID, domain.AlertTypePerformanceDrop),
				Type:           domain.AlertTypePerformanceDrop,
				Priority:       domain.AlertPriorityHigh,
				Title:          "CTR Below Baseline",
				Message:        fmt.Sprintf("%s 7-day CTR is %.1f%% below its baseline.", c.Name, drop),
				Recommendation: "Rotate creatives and narrow targeting to the best performing segments.",
				Campaign:       c.Name,
				Timestamp:      now,
				Status:         domain.AlertStatusUnread,
			})
		}

		if c.Metrics.CTR > opportunityCTR && c.Budget.Remaining > opportunityMinRemaining {
			alerts = append(alerts, &domain.Alert{
				ID:             realTimeAlertID(c.ID, domain.AlertTypeOpportunity),
				Type:           domain.AlertTypeOpportunity,
				Priority:       domain.AlertPriorityMedium,
				Title:          "Scaling Opportunity",
				Message:        fmt.Sprintf("%s has a %.2f%% CTR with %.2f of budget remaining.", c.Name, c.Metrics.CTR, c.Budget.Remaining),
				Recommendation: "Increase the daily budget to capture more of this demand.",
				Campaign:       c.Name,
				Timestamp:      now,
				Status:         domain.AlertStatusUnread,
			})
		}
	}

	domain.SortAlerts(alerts)
	return alerts
}

func realTimeAlertID(campaignID string, alertType domain.AlertType) string {
	return fmt.Sprintf("rt_alert_%s_%s", campaignID, alertType)
}

// GenerateAlertHistory gera de 1 a 3 alertas por dia nos últimos days dias, todos lidos.
// O dia 1 são as últimas 24h.
func (g *Generator) GenerateAlertHistory(days int) []*domain.Alert {
	now := g.now()
	alerts := make([]*domain.Alert, 0)

	for day := 1; day <= days; day++ {
		dayEnd := now.AddDate(0, 0, -(day - 1))
		n := g.sampler.IntBetween(1, 3)
		for i := 0; i < n; i++ {
			timestamp := dayEnd.Add(-g.sampler.Duration(0, 24*time.Hour))
			alert := g.alertFromTemplate(sampling.Pick(g.sampler, alertTemplates), sampling.Pick(g.sampler, defaultCampaignNames), timestamp)
			alert.ID = fmt.Sprintf("hist_alert_%03d", len(alerts)+1)
			alert.Status = domain.AlertStatusRead
			alerts = append(alerts, alert)
		}
	}

	domain.SortAlerts(alerts)
	return alerts
}
