package domain

type CreativeType string

const (
	CreativeTypeSingleImage CreativeType = "single_image"
	CreativeTypeVideo       CreativeType = "video"
	CreativeTypeCarousel    CreativeType = "carousel"
)

type CreativeStatus string

const (
	CreativeStatusActive CreativeStatus = "active"
	CreativeStatusPaused CreativeStatus = "paused"
)

// PerformanceTier define as faixas de CTR/CPC usadas na geração de criativos
type PerformanceTier string

const (
	PerformanceTierHigh   PerformanceTier = "high"
	PerformanceTierMedium PerformanceTier = "medium"
	PerformanceTierLow    PerformanceTier = "low"
)

type Creative struct {
	ID              string          `json:"id"`
	CampaignID      string          `json:"campaign_id"`
	Type            CreativeType    `json:"type"`
	Headline        string          `json:"headline"`
	Description     string          `json:"description"`
	ImageURL        string          `json:"image_url"`
	PerformanceTier PerformanceTier `json:"performance_tier"`
	Performance     CampaignMetrics `json:"performance"`
	Status          CreativeStatus  `json:"status"`
}
