package generating

import (
	"time"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/pkg/sampling"
)

// volumeTier agrupa faixas de volume de impressões
type volumeTier string

const (
	volumeHigh   volumeTier = "high"
	volumeMedium volumeTier = "medium"
	volumeLow    volumeTier = "low"
)

var impressionVolume = map[volumeTier]sampling.Range{
	volumeHigh:   {Min: 40000, Max: 90000},
	volumeMedium: {Min: 15000, Max: 40000},
	volumeLow:    {Min: 5000, Max: 15000},
}

type campaignTemplate struct {
	NamePattern    string
	Industry       string
	Objective      string
	BaseCTR        float64
	CPC            sampling.Range
	ConversionRate sampling.Range
	Volume         volumeTier
}

var campaignTemplates = []campaignTemplate{
	{
		NamePattern:    "{product} Lead Gen - {quarter} {year}",
		Industry:       "Technology",
		Objective:      "lead_generation",
		BaseCTR:        2.8,
		CPC:            sampling.Range{Min: 4.5, Max: 7.5},
		ConversionRate: sampling.Range{Min: 6, Max: 12},
		Volume:         volumeHigh,
	},
	{
		NamePattern:    "{audience} Awareness Push",
		Industry:       "Financial Services",
		Objective:      "brand_awareness",
		BaseCTR:        1.9,
		CPC:            sampling.Range{Min: 3.5, Max: 6},
		ConversionRate: sampling.Range{Min: 2, Max: 5},
		Volume:         volumeHigh,
	},
	{
		NamePattern:    "{region} Website Visits - {product}",
		Industry:       "Healthcare",
		Objective:      "website_visits",
		BaseCTR:        2.4,
		CPC:            sampling.Range{Min: 4, Max: 6.5},
		ConversionRate: sampling.Range{Min: 3, Max: 8},
		Volume:         volumeMedium,
	},
	{
		NamePattern:    "{industry} Webinar Registrations",
		Industry:       "Professional Services",
		Objective:      "lead_generation",
		BaseCTR:        3.2,
		CPC:            sampling.Range{Min: 5, Max: 8},
		ConversionRate: sampling.Range{Min: 8, Max: 15},
		Volume:         volumeMedium,
	},
	{
		NamePattern:    "Retargeting - {audience}",
		Industry:       "Technology",
		Objective:      "website_conversions",
		BaseCTR:        3.0,
		CPC:            sampling.Range{Min: 3, Max: 5},
		ConversionRate: sampling.Range{Min: 5, Max: 10},
		Volume:         volumeLow,
	},
	{
		NamePattern:    "{product} Product Launch {year}",
		Industry:       "Manufacturing",
		Objective:      "brand_awareness",
		BaseCTR:        2.1,
		CPC:            sampling.Range{Min: 4, Max: 7},
		ConversionRate: sampling.Range{Min: 2, Max: 6},
		Volume:         volumeHigh,
	},
}

var (
	products       = []string{"Cloud Analytics", "Sales Cloud", "HR Suite", "Security Platform", "Data Warehouse"}
	audiences      = []string{"IT Leaders", "CFOs", "HR Directors", "Marketing Managers", "Startup Founders"}
	regions        = []string{"North America", "EMEA", "APAC", "LATAM"}
	industries     = []string{"SaaS", "Fintech", "Healthcare", "Manufacturing", "Retail"}
	quarters       = []string{"Q1", "Q2", "Q3", "Q4"}
	businessAreas  = []string{"Sales Pipeline", "Hiring", "Customer Success", "Financial Planning", "Security Operations"}
	companies      = []string{"Northwind", "Contoso", "Globex", "Initech", "Umbrella Health"}
	accountNames   = []string{"Acme Corp - Demand Gen", "Acme Corp - Brand", "Acme Corp - EMEA"}
	defaultCampIDs = []string{"camp_001", "camp_002", "camp_003", "camp_004"}
)

// defaultCampaignNames é usado pelos alertas quando o chamador não informa campanhas
var defaultCampaignNames = []string{
	"Cloud Analytics Lead Gen - Q3",
	"CFOs Awareness Push",
	"EMEA Website Visits - HR Suite",
	"SaaS Webinar Registrations",
	"Retargeting - IT Leaders",
}

type creativeTemplate struct {
	Type               domain.CreativeType
	HeadlinePattern    string
	DescriptionPattern string
	PerformanceTier    domain.PerformanceTier
}

var creativeTemplates = []creativeTemplate{
	{
		Type:               domain.CreativeTypeSingleImage,
		HeadlinePattern:    "Transform Your {business_area} with {product}",
		DescriptionPattern: "See how {company_count}+ companies cut reporting time by {percentage}%.",
		PerformanceTier:    domain.PerformanceTierHigh,
	},
	{
		Type:               domain.CreativeTypeSingleImage,
		HeadlinePattern:    "{percentage}% Faster {business_area} Reporting",
		DescriptionPattern: "Join the {audience} who switched to {product}.",
		PerformanceTier:    domain.PerformanceTierMedium,
	},
	{
		Type:               domain.CreativeTypeVideo,
		HeadlinePattern:    "Watch: {product} in {duration} Minutes",
		DescriptionPattern: "A quick tour of {product} built for {audience}.",
		PerformanceTier:    domain.PerformanceTierMedium,
	},
	{
		Type:               domain.CreativeTypeVideo,
		HeadlinePattern:    "How {company} Scaled {business_area}",
		DescriptionPattern: "Customer story: {percentage}% growth in {duration} months.",
		PerformanceTier:    domain.PerformanceTierHigh,
	},
	{
		Type:               domain.CreativeTypeCarousel,
		HeadlinePattern:    "{count} Ways to Improve {business_area}",
		DescriptionPattern: "Swipe through tactics used by {audience} at {company}.",
		PerformanceTier:    domain.PerformanceTierMedium,
	},
	{
		Type:               domain.CreativeTypeCarousel,
		HeadlinePattern:    "The {year} {business_area} Playbook",
		DescriptionPattern: "Download the guide trusted by {company_count}+ teams.",
		PerformanceTier:    domain.PerformanceTierLow,
	},
}

var creativeImages = map[domain.CreativeType][]string{
	domain.CreativeTypeSingleImage: {
		"https://cdn.campaign-demo.dev/creatives/single_image/team-meeting.jpg",
		"https://cdn.campaign-demo.dev/creatives/single_image/dashboard-laptop.jpg",
		"https://cdn.campaign-demo.dev/creatives/single_image/city-office.jpg",
	},
	domain.CreativeTypeVideo: {
		"https://cdn.campaign-demo.dev/creatives/video/product-tour-thumb.jpg",
		"https://cdn.campaign-demo.dev/creatives/video/customer-story-thumb.jpg",
	},
	domain.CreativeTypeCarousel: {
		"https://cdn.campaign-demo.dev/creatives/carousel/playbook-cover.jpg",
		"https://cdn.campaign-demo.dev/creatives/carousel/tips-card-1.jpg",
		"https://cdn.campaign-demo.dev/creatives/carousel/tips-card-2.jpg",
	},
}

type tierBands struct {
	CTR            sampling.Range
	CPC            sampling.Range
	ConversionRate sampling.Range
}

var creativeTiers = map[domain.PerformanceTier]tierBands{
	domain.PerformanceTierHigh: {
		CTR:            sampling.Range{Min: 3.0, Max: 4.5},
		CPC:            sampling.Range{Min: 3, Max: 5},
		ConversionRate: sampling.Range{Min: 8, Max: 14},
	},
	domain.PerformanceTierMedium: {
		CTR:            sampling.Range{Min: 1.8, Max: 3.0},
		CPC:            sampling.Range{Min: 5, Max: 7.5},
		ConversionRate: sampling.Range{Min: 4, Max: 8},
	},
	domain.PerformanceTierLow: {
		CTR:            sampling.Range{Min: 0.8, Max: 1.8},
		CPC:            sampling.Range{Min: 7.5, Max: 11},
		ConversionRate: sampling.Range{Min: 1.5, Max: 4},
	},
}

var creativeImpressions = sampling.Range{Min: 3000, Max: 25000}

type alertTemplate struct {
	Type                  domain.AlertType
	Priority              domain.AlertPriority
	TitlePattern          string
	MessagePattern        string
	RecommendationPattern string
}

var alertTemplates = []alertTemplate{
	{
		Type:                  domain.AlertTypePerformanceDrop,
		Priority:              domain.AlertPriorityHigh,
		TitlePattern:          "CTR Drop on {campaign}",
		MessagePattern:        "Click-through rate fell {percentage}% over the last {days} days.",
		RecommendationPattern: "Refresh creatives and review audience overlap with {audience}.",
	},
	{
		Type:                  domain.AlertTypePerformanceDrop,
		Priority:              domain.AlertPriorityMedium,
		TitlePattern:          "Conversion Rate Slipping",
		MessagePattern:        "{campaign} conversions are down {percentage}% week over week.",
		RecommendationPattern: "Shorten the lead gen form and test a new offer for {audience}.",
	},
	{
		Type:                  domain.AlertTypeBudgetWarning,
		Priority:              domain.AlertPriorityHigh,
		TitlePattern:          "Budget Nearly Exhausted",
		MessagePattern:        "{campaign} has spent {percentage}% of its budget with {days} days remaining.",
		RecommendationPattern: "Increase the budget by ${amount} or lower the daily cap.",
	},
	{
		Type:                  domain.AlertTypeBudgetWarning,
		Priority:              domain.AlertPriorityMedium,
		TitlePattern:          "Daily Budget Pacing Ahead",
		MessagePattern:        "{campaign} is pacing {percentage}% ahead of plan.",
		RecommendationPattern: "Spread delivery evenly or move ${amount} from lower performers.",
	},
	{
		Type:                  domain.AlertTypeOpportunity,
		Priority:              domain.AlertPriorityMedium,
		TitlePattern:          "Scale {campaign}",
		MessagePattern:        "CTR is {percentage}% above benchmark among {audience}.",
		RecommendationPattern: "Raise the budget by ${amount} to capture more demand.",
	},
	{
		Type:                  domain.AlertTypeOpportunity,
		Priority:              domain.AlertPriorityLow,
		TitlePattern:          "New Audience Match",
		MessagePattern:        "{audience} engage {percentage}% more with {campaign}.",
		RecommendationPattern: "Build a lookalike audience from recent converters.",
	},
	{
		Type:                  domain.AlertTypeOptimization,
		Priority:              domain.AlertPriorityMedium,
		TitlePattern:          "Bid Strategy Recommendation",
		MessagePattern:        "Switching {campaign} to cost cap bidding could save ${amount} per month.",
		RecommendationPattern: "Enable cost cap bidding with a target {percentage}% below current CPC.",
	},
	{
		Type:                  domain.AlertTypeOptimization,
		Priority:              domain.AlertPriorityLow,
		TitlePattern:          "Creative Rotation Due",
		MessagePattern:        "Creatives in {campaign} have been running for {days} days.",
		RecommendationPattern: "Add two new variants to avoid ad fatigue.",
	},
}

type audienceProfile struct {
	Segment     string
	Key         string
	ExpectedCTR float64
	ExpectedCPC float64
	Volume      volumeTier
}

var jobTitleProfiles = []audienceProfile{
	{Segment: "C-Suite Executive", Key: "executive", ExpectedCTR: 1.6, ExpectedCPC: 9.5, Volume: volumeLow},
	{Segment: "Vice President", Key: "vp", ExpectedCTR: 1.9, ExpectedCPC: 8.0, Volume: volumeLow},
	{Segment: "Director", Key: "director", ExpectedCTR: 2.3, ExpectedCPC: 6.8, Volume: volumeMedium},
	{Segment: "Manager", Key: "manager", ExpectedCTR: 2.7, ExpectedCPC: 5.5, Volume: volumeHigh},
	{Segment: "Senior Individual Contributor", Key: "senior", ExpectedCTR: 2.9, ExpectedCPC: 4.6, Volume: volumeHigh},
	{Segment: "Entry Level", Key: "entry", ExpectedCTR: 3.1, ExpectedCPC: 3.8, Volume: volumeMedium},
}

// conversão por senioridade: cargos mais altos convertem mais
var seniorityConversionRate = map[string]sampling.Range{
	"executive": {Min: 9, Max: 14},
	"vp":        {Min: 7, Max: 11},
	"director":  {Min: 5.5, Max: 9},
	"manager":   {Min: 4, Max: 7},
	"senior":    {Min: 3, Max: 5.5},
	"entry":     {Min: 1.5, Max: 3.5},
}

var companySizeProfiles = []audienceProfile{
	{Segment: "1-10 employees", Key: "1-10", ExpectedCTR: 3.2, ExpectedCPC: 4.0, Volume: volumeLow},
	{Segment: "11-50 employees", Key: "11-50", ExpectedCTR: 3.0, ExpectedCPC: 4.4, Volume: volumeMedium},
	{Segment: "51-200 employees", Key: "51-200", ExpectedCTR: 2.8, ExpectedCPC: 5.0, Volume: volumeMedium},
	{Segment: "201-500 employees", Key: "201-500", ExpectedCTR: 2.5, ExpectedCPC: 5.6, Volume: volumeHigh},
	{Segment: "501-1000 employees", Key: "501-1000", ExpectedCTR: 2.3, ExpectedCPC: 6.1, Volume: volumeMedium},
	{Segment: "1001-5000 employees", Key: "1001-5000", ExpectedCTR: 2.1, ExpectedCPC: 6.8, Volume: volumeHigh},
	{Segment: "5001+ employees", Key: "5001+", ExpectedCTR: 1.8, ExpectedCPC: 7.5, Volume: volumeHigh},
}

// conversão por porte: empresas menores convertem mais
var companySizeConversionRate = map[string]sampling.Range{
	"1-10":      {Min: 8, Max: 13},
	"11-50":     {Min: 6.5, Max: 11},
	"51-200":    {Min: 5, Max: 9},
	"201-500":   {Min: 4, Max: 7.5},
	"501-1000":  {Min: 3.5, Max: 6},
	"1001-5000": {Min: 2.5, Max: 5},
	"5001+":     {Min: 2, Max: 4},
}

type benchmarkEntry struct {
	Metric         string
	Value          float64
	HigherIsBetter bool
}

// valores de referência do setor para campanhas B2B
var industryBenchmarks = []benchmarkEntry{
	{Metric: "ctr", Value: 2.2, HigherIsBetter: true},
	{Metric: "cpc", Value: 5.5, HigherIsBetter: false},
	{Metric: "conversion_rate", Value: 6.5, HigherIsBetter: true},
	{Metric: "cost_per_conversion", Value: 85, HigherIsBetter: false},
}

const benchmarkTolerancePct = 5.0

// multiplicador para reconstruir o valor do período anterior a partir da tendência atual
var previousPeriodMultiplier = map[domain.Trend]float64{
	domain.TrendStrong:    0.72,
	domain.TrendImproving: 0.88,
	domain.TrendStable:    1.0,
	domain.TrendDeclining: 1.15,
	domain.TrendPoor:      1.38,
}

// variação diária usada na projeção
var trendDailyRate = map[domain.Trend]float64{
	domain.TrendStrong:    0.02,
	domain.TrendImproving: 0.01,
	domain.TrendStable:    0,
	domain.TrendDeclining: -0.01,
	domain.TrendPoor:      -0.02,
}

var trendGrowthScore = map[domain.Trend]float64{
	domain.TrendStrong:    100,
	domain.TrendImproving: 85,
	domain.TrendStable:    70,
	domain.TrendDeclining: 50,
	domain.TrendPoor:      30,
}

var monthSeasonality = [12]float64{0.95, 1.0, 1.05, 1.0, 1.0, 0.95, 0.85, 0.85, 1.05, 1.1, 1.05, 0.8}

var weekdaySeasonality = map[time.Weekday]float64{
	time.Sunday:    0.6,
	time.Monday:    1.05,
	time.Tuesday:   1.15,
	time.Wednesday: 1.15,
	time.Thursday:  1.1,
	time.Friday:    0.95,
	time.Saturday:  0.65,
}
