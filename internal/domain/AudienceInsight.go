package domain

type AudienceSegment struct {
	Segment           string  `json:"segment"`
	Impressions       int     `json:"impressions"`
	Clicks            int     `json:"clicks"`
	CTR               float64 `json:"ctr"`
	Conversions       int     `json:"conversions"`
	ConversionRate    float64 `json:"conversion_rate"`
	CostPerConversion float64 `json:"cost_per_conversion"`
}

type AudienceInsight struct {
	JobTitles    []*AudienceSegment `json:"job_titles"`
	CompanySizes []*AudienceSegment `json:"company_sizes"`
}
