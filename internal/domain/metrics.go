package domain

import "time"

type TrendDirection string

const (
	TrendDirectionUp   TrendDirection = "up"
	TrendDirectionDown TrendDirection = "down"
	TrendDirectionFlat TrendDirection = "flat"
)

type MetricTrend struct {
	CampaignID    string         `json:"campaign_id"`
	Metric        string         `json:"metric"`
	Current       float64        `json:"current"`
	Previous      float64        `json:"previous"`
	ChangePercent float64        `json:"change_percent"`
	Direction     TrendDirection `json:"direction"`
}

type BenchmarkStatus string

const (
	BenchmarkAbove BenchmarkStatus = "above_benchmark"
	BenchmarkAt    BenchmarkStatus = "at_benchmark"
	BenchmarkBelow BenchmarkStatus = "below_benchmark"
)

type Benchmark struct {
	Metric          string          `json:"metric"`
	Actual          float64         `json:"actual"`
	Benchmark       float64         `json:"benchmark"`
	DifferencePct   float64         `json:"difference_percent"`
	Status          BenchmarkStatus `json:"status"`
	BetterThanPeers bool            `json:"better_than_peers"`
}

type ForecastDay struct {
	Date        time.Time `json:"date"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	Conversions int       `json:"conversions"`
	Spend       float64   `json:"spend"`
	Confidence  float64   `json:"confidence"`
}

type PerformanceScore struct {
	Efficiency float64 `json:"efficiency"`
	Growth     float64 `json:"growth"`
	Quality    float64 `json:"quality"`
	Overall    float64 `json:"overall"`
	Grade      string  `json:"grade"`
}

// BudgetRunway indica quantos dias o orçamento restante dura no ritmo diário atual
type BudgetRunway struct {
	CampaignID string  `json:"campaign_id"`
	Days       float64 `json:"days"`
	Unbounded  bool    `json:"unbounded"`
}

type Analytics struct {
	Trends     []*MetricTrend    `json:"trends"`
	Benchmarks []*Benchmark      `json:"benchmarks"`
	Forecast   []*ForecastDay    `json:"forecast"`
	Score      *PerformanceScore `json:"score"`
	Runways    []*BudgetRunway   `json:"runways"`
}

type DashboardData struct {
	Campaigns   []*Campaign      `json:"campaigns"`
	Creatives   []*Creative      `json:"creatives"`
	Alerts      []*Alert         `json:"alerts"`
	Audience    *AudienceInsight `json:"audience"`
	GeneratedAt time.Time        `json:"generated_at"`
}
