package domain

type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// Trend é a classificação qualitativa da trajetória de uma campanha
type Trend string

const (
	TrendStrong    Trend = "strong"
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
	TrendPoor      Trend = "poor"
)

type Budget struct {
	Total     float64 `json:"total" yaml:"total"`
	Spent     float64 `json:"spent" yaml:"spent"`
	Remaining float64 `json:"remaining" yaml:"remaining"`
	Daily     float64 `json:"daily" yaml:"daily"`
}

// SpentPercentage retorna o percentual do orçamento já gasto
func (b Budget) SpentPercentage() float64 {
	if b.Total == 0 {
		return 0
	}
	return b.Spent / b.Total * 100
}

type CampaignMetrics struct {
	Impressions       int     `json:"impressions" yaml:"impressions"`
	Clicks            int     `json:"clicks" yaml:"clicks"`
	CTR               float64 `json:"ctr" yaml:"ctr"`
	CPC               float64 `json:"cpc" yaml:"cpc"`
	Conversions       int     `json:"conversions" yaml:"conversions"`
	ConversionRate    float64 `json:"conversion_rate" yaml:"conversion_rate"`
	Spend             float64 `json:"spend" yaml:"spend"`
	CostPerConversion float64 `json:"cost_per_conversion" yaml:"cost_per_conversion"`
}

type Campaign struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Status      CampaignStatus  `json:"status" yaml:"status"`
	Objective   string          `json:"objective" yaml:"objective"`
	Industry    string          `json:"industry" yaml:"industry"`
	Budget      Budget          `json:"budget" yaml:"budget"`
	Metrics     CampaignMetrics `json:"metrics" yaml:"metrics"`
	ExpectedCTR float64         `json:"expected_ctr" yaml:"expected_ctr"`
	Trend       Trend           `json:"trend" yaml:"trend"`
	Last7Days   CampaignMetrics `json:"last_7_days" yaml:"last_7_days"`
	StartDate   string          `json:"start_date" yaml:"start_date"`
}

// CampaignDraft são os dados aceitos na criação de uma campanha pelo mock da API
type CampaignDraft struct {
	Name        string  `json:"name"`
	Objective   string  `json:"objective"`
	TotalBudget float64 `json:"total_budget"`
	DailyBudget float64 `json:"daily_budget"`
}

// CampaignUpdate representa uma alteração parcial de campanha
type CampaignUpdate struct {
	ID          string          `json:"id"`
	Name        *string         `json:"name,omitempty"`
	Status      *CampaignStatus `json:"status,omitempty"`
	TotalBudget *float64        `json:"total_budget,omitempty"`
	DailyBudget *float64        `json:"daily_budget,omitempty"`
}

type CampaignStatusChange struct {
	ID        string         `json:"id"`
	Status    CampaignStatus `json:"status"`
	UpdatedAt string         `json:"updated_at"`
}

type BatchUpdateResult struct {
	Updated   int         `json:"updated"`
	Failed    int         `json:"failed"`
	Campaigns []*Campaign `json:"campaigns"`
	Errors    []string    `json:"errors,omitempty"`
}
