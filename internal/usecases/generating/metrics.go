package generating

import (
	"math"
	"time"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/pkg/utils"
)

const (
	MetricCTR               = "ctr"
	MetricCPC               = "cpc"
	MetricConversionRate    = "conversion_rate"
	MetricCostPerConversion = "cost_per_conversion"

	DefaultForecastDays = 7

	flatChangePct      = 0.5
	forecastNoise      = 0.05
	forecastTrendDecay = 0.95
	maxConfidence      = 0.9
	minConfidence      = 0.5
	confidenceStep     = 0.02
)

// Aggregate soma o volume das campanhas e recalcula as taxas sobre os totais
func Aggregate(campaigns []*domain.Campaign) domain.CampaignMetrics {
	return aggregate(campaigns, func(c *domain.Campaign) domain.CampaignMetrics { return c.Metrics })
}

func aggregate(campaigns []*domain.Campaign, pick func(*domain.Campaign) domain.CampaignMetrics) domain.CampaignMetrics {
	var total domain.CampaignMetrics
	for _, c := range campaigns {
		if c == nil {
			continue
		}
		m := pick(c)
		total.Impressions += m.Impressions
		total.Clicks += m.Clicks
		total.Conversions += m.Conversions
		total.Spend += m.Spend
	}

	total.Spend = utils.RoundWithTwoDecimalPlace(total.Spend)
	total.CTR = utils.RoundWithTwoDecimalPlace(utils.Percentage(float64(total.Clicks), float64(total.Impressions)))
	total.CPC = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(total.Spend, float64(total.Clicks)))
	total.ConversionRate = utils.RoundWithTwoDecimalPlace(utils.Percentage(float64(total.Conversions), float64(total.Clicks)))
	total.CostPerConversion = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(total.Spend, float64(total.Conversions)))

	return total
}

// MetricTrends reconstrói o período anterior de CTR, CPC e taxa de conversão pela tendência de cada campanha.
// Para CPC a direção é invertida, já que custo menor é melhora.
func MetricTrends(campaigns []*domain.Campaign) []*domain.MetricTrend {
	trends := make([]*domain.MetricTrend, 0, len(campaigns)*3)
	for _, c := range campaigns {
		if c == nil {
			continue
		}

		multiplier, ok := previousPeriodMultiplier[c.Trend]
		if !ok {
			multiplier = 1
		}

		trends = append(trends,
			metricTrend(c.ID, MetricCTR, c.Metrics.CTR, multiplier, false),
			metricTrend(c.ID, MetricCPC, c.Metrics.CPC, multiplier, true),
			metricTrend(c.ID, MetricConversionRate, c.Metrics.ConversionRate, multiplier, false),
		)
	}
	return trends
}

func metricTrend(campaignID, metric string, current, multiplier float64, invert bool) *domain.MetricTrend {
	previous := utils.RoundWithTwoDecimalPlace(current * multiplier)
	change := utils.RoundWithTwoDecimalPlace(utils.Percentage(current-previous, previous))

	direction := domain.TrendDirectionFlat
	switch {
	case change > flatChangePct:
		direction = domain.TrendDirectionUp
	case change < -flatChangePct:
		direction = domain.TrendDirectionDown
	}

	if invert {
		direction = invertDirection(direction)
	}

	return &domain.MetricTrend{
		CampaignID:    campaignID,
		Metric:        metric,
		Current:       current,
		Previous:      previous,
		ChangePercent: change,
		Direction:     direction,
	}
}

func invertDirection(d domain.TrendDirection) domain.TrendDirection {
	switch d {
	case domain.TrendDirectionUp:
		return domain.TrendDirectionDown
	case domain.TrendDirectionDown:
		return domain.TrendDirectionUp
	default:
		return d
	}
}

// Benchmarks compara as métricas agregadas com a tabela fixa do setor; ±5% conta como no benchmark
func Benchmarks(campaigns []*domain.Campaign) []*domain.Benchmark {
	totals := Aggregate(campaigns)
	actual := map[string]float64{
		MetricCTR:               totals.CTR,
		MetricCPC:               totals.CPC,
		MetricConversionRate:    totals.ConversionRate,
		MetricCostPerConversion: totals.CostPerConversion,
	}

	benchmarks := make([]*domain.Benchmark, 0, len(industryBenchmarks))
	for _, entry := range industryBenchmarks {
		benchmarks = append(benchmarks, CompareBenchmark(entry.Metric, actual[entry.Metric], entry.Value, entry.HigherIsBetter))
	}
	return benchmarks
}

func CompareBenchmark(metric string, actual, benchmark float64, higherIsBetter bool) *domain.Benchmark {
	diff := utils.RoundWithTwoDecimalPlace(utils.Percentage(actual-benchmark, benchmark))

	status := domain.BenchmarkAt
	switch {
	case diff > benchmarkTolerancePct:
		status = domain.BenchmarkAbove
	case diff < -benchmarkTolerancePct:
		status = domain.BenchmarkBelow
	}

	better := false
	if status != domain.BenchmarkAt {
		better = (status == domain.BenchmarkAbove) == higherIsBetter
	}

	return &domain.Benchmark{
		Metric:          metric,
		Actual:          actual,
		Benchmark:       benchmark,
		DifferencePct:   diff,
		Status:          status,
		BetterThanPeers: better,
	}
}

// ForecastConfidence decai 0.02 por dia a partir de 0.9, com piso em 0.5
func ForecastConfidence(day int) float64 {
	return utils.RoundWithTwoDecimalPlace(math.Max(minConfidence, maxConfidence-confidenceStep*float64(day-1)))
}

// Forecast projeta days dias à frente a partir da média diária dos últimos 7 dias das campanhas ativas
func (g *Generator) Forecast(campaigns []*domain.Campaign, days int) []*domain.ForecastDay {
	forecast := make([]*domain.ForecastDay, 0, max(days, 0))
	if days <= 0 {
		return forecast
	}

	base := forecastBase(campaigns)
	last7 := aggregate(base, func(c *domain.Campaign) domain.CampaignMetrics { return c.Last7Days })
	dailyImpressions := float64(last7.Impressions) / 7
	rate := averageTrendRate(base)

	y, m, d := g.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	for day := 1; day <= days; day++ {
		date := today.AddDate(0, 0, day)
		seasonal := monthSeasonality[date.Month()-1] * weekdaySeasonality[date.Weekday()]
		trend := 1 + rate*float64(day)*math.Pow(forecastTrendDecay, float64(day))
		noise := g.sampler.Skewed(1, forecastNoise)

		impressions := utils.RoundInt(dailyImpressions * seasonal * trend * noise)
		clicks := utils.RoundInt(float64(impressions) * last7.CTR / 100)

		forecast = append(forecast, &domain.ForecastDay{
			Date:        date,
			Impressions: impressions,
			Clicks:      clicks,
			Conversions: utils.RoundInt(float64(clicks) * last7.ConversionRate / 100),
			Spend:       utils.RoundWithTwoDecimalPlace(float64(clicks) * last7.CPC),
			Confidence:  ForecastConfidence(day),
		})
	}

	return forecast
}

func forecastBase(campaigns []*domain.Campaign) []*domain.Campaign {
	active := make([]*domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if c != nil && c.Status == domain.CampaignStatusActive {
			active = append(active, c)
		}
	}
	if len(active) == 0 {
		return campaigns
	}
	return active
}

func averageTrendRate(campaigns []*domain.Campaign) float64 {
	var sum float64
	var n int
	for _, c := range campaigns {
		if c == nil {
			continue
		}
		sum += trendDailyRate[c.Trend]
		n++
	}
	return utils.SafeDivide(sum, float64(n))
}

// Grade converte a nota composta em conceito
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// PerformanceScore calcula eficiência (CPC contra benchmark), qualidade (CTR contra benchmark) e crescimento
// (tendência média), cada um de 0 a 100, e a média das três notas
func PerformanceScore(campaigns []*domain.Campaign) *domain.PerformanceScore {
	totals := Aggregate(campaigns)

	efficiency := 0.0
	if totals.CPC > 0 {
		efficiency = utils.Clamp(benchmarkValue(MetricCPC)/totals.CPC*75, 0, 100)
	}
	quality := utils.Clamp(utils.SafeDivide(totals.CTR, benchmarkValue(MetricCTR))*75, 0, 100)

	var growthSum float64
	var n int
	for _, c := range campaigns {
		if c == nil {
			continue
		}
		growthSum += trendGrowthScore[c.Trend]
		n++
	}
	growth := utils.SafeDivide(growthSum, float64(n))

	overall := utils.RoundWithTwoDecimalPlace((efficiency + growth + quality) / 3)
	return &domain.PerformanceScore{
		Efficiency: utils.RoundWithTwoDecimalPlace(efficiency),
		Growth:     utils.RoundWithTwoDecimalPlace(growth),
		Quality:    utils.RoundWithTwoDecimalPlace(quality),
		Overall:    overall,
		Grade:      Grade(overall),
	}
}

func benchmarkValue(metric string) float64 {
	for _, entry := range industryBenchmarks {
		if entry.Metric == metric {
			return entry.Value
		}
	}
	return 0
}

// ForecastDays estima por quantos dias o orçamento restante dura no gasto diário médio dos últimos 7 dias.
// Gasto diário zero resulta em Unbounded.
func ForecastDays(c *domain.Campaign) *domain.BudgetRunway {
	daily := c.Last7Days.Spend / 7
	if daily <= 0 {
		return &domain.BudgetRunway{CampaignID: c.ID, Unbounded: true}
	}
	return &domain.BudgetRunway{
		CampaignID: c.ID,
		Days:       utils.RoundWithTwoDecimalPlace(c.Budget.Remaining / daily),
	}
}

// Analytics reúne tendências, benchmarks, projeção, nota e fôlego de orçamento das campanhas
func (g *Generator) Analytics(campaigns []*domain.Campaign, forecastDays int) *domain.Analytics {
	runways := make([]*domain.BudgetRunway, 0, len(campaigns))
	for _, c := range campaigns {
		if c != nil {
			runways = append(runways, ForecastDays(c))
		}
	}

	return &domain.Analytics{
		Trends:     MetricTrends(campaigns),
		Benchmarks: Benchmarks(campaigns),
		Forecast:   g.Forecast(campaigns, forecastDays),
		Score:      PerformanceScore(campaigns),
		Runways:    runways,
	}
}
