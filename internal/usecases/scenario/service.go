package scenario

import (
	_ "embed"
	"fmt"
	"math"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-demo-api/pkg/utils"
)

//go:embed scenarios.yaml
var embeddedCatalog []byte

// Cataloger expõe os cenários narrativos da demonstração
type Cataloger interface {
	Get(id string) (*domain.Scenario, error)
	List() []*domain.ScenarioSummary
	ProgressScenario(id string, days int) (*domain.Scenario, error)
}

type catalogFile struct {
	Scenarios []*domain.Scenario `yaml:"scenarios"`
}

type Catalog struct {
	scenarios map[string]*domain.Scenario
}

// New carrega o catálogo embutido no binário
func New() (*Catalog, error) {
	return NewFromYAML(embeddedCatalog)
}

func NewFromYAML(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, NewScenarioError(ErrInvalidCatalog, "SRV_001", "", err.Error())
	}

	scenarios := make(map[string]*domain.Scenario, len(file.Scenarios))
	for _, s := range file.Scenarios {
		if s == nil || s.ID == "" {
			return nil, NewScenarioError(ErrInvalidCatalog, "SRV_001", "", "scenario without id")
		}
		if _, exists := scenarios[s.ID]; exists {
			return nil, NewScenarioError(ErrInvalidCatalog, "SRV_001", s.ID, "duplicated scenario id")
		}
		scenarios[s.ID] = s
	}

	return &Catalog{scenarios: scenarios}, nil
}

// Get retorna uma cópia do cenário; alterações no retorno não afetam o catálogo
func (c *Catalog) Get(id string) (*domain.Scenario, error) {
	s, ok := c.scenarios[id]
	if !ok {
		return nil, NewScenarioError(ErrScenarioNotFound, apiErrors.ErrResourceNotFound, id, fmt.Sprintf("scenario %q", id))
	}
	return cloneScenario(s), nil
}

// List retorna os resumos ordenados por id
func (c *Catalog) List() []*domain.ScenarioSummary {
	summaries := make([]*domain.ScenarioSummary, 0, len(c.scenarios))
	for _, s := range c.scenarios {
		summaries = append(summaries, &domain.ScenarioSummary{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Campaigns:   len(s.Campaigns),
			Alerts:      len(s.Alerts),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ID < summaries[j].ID
	})

	return summaries
}

// ProgressScenario avança todas as campanhas do cenário em days dias
func (c *Catalog) ProgressScenario(id string, days int) (*domain.Scenario, error) {
	s, err := c.Get(id)
	if err != nil {
		return nil, err
	}

	for i, campaign := range s.Campaigns {
		progressed, err := Progress(campaign, days)
		if err != nil {
			return nil, err
		}
		s.Campaigns[i] = progressed
	}

	return s, nil
}

// Progress retorna uma cópia da campanha com spent += daily*days, limitado ao total, e remaining = max(0, total-spent)
func Progress(campaign *domain.Campaign, days int) (*domain.Campaign, error) {
	if days < 0 {
		return nil, NewScenarioError(ErrInvalidDays, apiErrors.ErrInvalidFormat, "", fmt.Sprintf("days=%d", days))
	}

	progressed := *campaign
	b := progressed.Budget

	b.Spent = utils.RoundWithTwoDecimalPlace(math.Min(b.Total, b.Spent+b.Daily*float64(days)))
	b.Remaining = utils.RoundWithTwoDecimalPlace(math.Max(0, b.Total-b.Spent))
	progressed.Budget = b

	return &progressed, nil
}

func cloneScenario(s *domain.Scenario) *domain.Scenario {
	clone := *s

	clone.Campaigns = make([]*domain.Campaign, 0, len(s.Campaigns))
	for _, c := range s.Campaigns {
		cc := *c
		clone.Campaigns = append(clone.Campaigns, &cc)
	}

	clone.Alerts = make([]*domain.Alert, 0, len(s.Alerts))
	for _, a := range s.Alerts {
		ac := *a
		clone.Alerts = append(clone.Alerts, &ac)
	}

	clone.Insights = append([]string(nil), s.Insights...)

	return &clone
}
