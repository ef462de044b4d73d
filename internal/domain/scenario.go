package domain

type Scenario struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Campaigns   []*Campaign `json:"campaigns" yaml:"campaigns"`
	Alerts      []*Alert    `json:"alerts" yaml:"alerts"`
	Insights    []string    `json:"insights" yaml:"insights"`
}

type ScenarioSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Campaigns   int    `json:"campaigns"`
	Alerts      int    `json:"alerts"`
}
