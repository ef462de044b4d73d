package scenario

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
)

func TestNew_EmbeddedCatalog(t *testing.T) {
	catalog, err := New()
	require.NoError(t, err)

	summaries := catalog.List()
	require.Len(t, summaries, 3)

	ids := []string{summaries[0].ID, summaries[1].ID, summaries[2].ID}
	assert.Equal(t, []string{"budget_crisis", "optimization_win", "product_launch"}, ids)

	for _, summary := range summaries {
		assert.NotEmpty(t, summary.Name)
		assert.Greater(t, summary.Campaigns, 0)
		assert.Greater(t, summary.Alerts, 0)
	}
}

func TestEmbeddedCatalog_Invariants(t *testing.T) {
	catalog, err := New()
	require.NoError(t, err)

	for _, summary := range catalog.List() {
		s, err := catalog.Get(summary.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, s.Insights, s.ID)

		for _, c := range s.Campaigns {
			assert.InDelta(t, c.Budget.Total, c.Budget.Spent+c.Budget.Remaining, 0.01, c.ID)
			assert.LessOrEqual(t, c.Budget.Spent, 0.95*c.Budget.Total, c.ID)
			for _, m := range []domain.CampaignMetrics{c.Metrics, c.Last7Days} {
				assert.Equal(t, int(math.Round(float64(m.Impressions)*m.CTR/100)), m.Clicks, c.ID)
				assert.Equal(t, int(math.Round(float64(m.Clicks)*m.ConversionRate/100)), m.Conversions, c.ID)
			}
		}

		for _, a := range s.Alerts {
			assert.False(t, a.Timestamp.IsZero(), a.ID)
		}
	}
}

func TestCatalog_Get(t *testing.T) {
	catalog, err := New()
	require.NoError(t, err)

	t.Run("cenário inexistente", func(t *testing.T) {
		_, err := catalog.Get("unknown")
		assert.ErrorIs(t, err, ErrScenarioNotFound)

		var scenarioErr *ScenarioError
		require.True(t, errors.As(err, &scenarioErr))
		assert.Equal(t, "VAL_004", scenarioErr.Code)
		assert.Equal(t, "unknown", scenarioErr.ScenarioID)
	})

	t.Run("retorno é uma cópia", func(t *testing.T) {
		first, err := catalog.Get("product_launch")
		require.NoError(t, err)
		first.Campaigns[0].Budget.Spent = 0
		first.Insights[0] = "changed"

		second, err := catalog.Get("product_launch")
		require.NoError(t, err)
		assert.Equal(t, 11856.0, second.Campaigns[0].Budget.Spent)
		assert.NotEqual(t, "changed", second.Insights[0])
	})
}

func TestProgress(t *testing.T) {
	base := &domain.Campaign{
		ID:     "camp_001",
		Budget: domain.Budget{Total: 1000, Spent: 400, Remaining: 600, Daily: 50},
	}

	tests := []struct {
		name string
		days int
		want domain.Budget
	}{
		{name: "zero dias", days: 0, want: domain.Budget{Total: 1000, Spent: 400, Remaining: 600, Daily: 50}},
		{name: "avanço linear", days: 4, want: domain.Budget{Total: 1000, Spent: 600, Remaining: 400, Daily: 50}},
		{name: "limitado ao total", days: 30, want: domain.Budget{Total: 1000, Spent: 1000, Remaining: 0, Daily: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Progress(base, tt.days)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got.Budget); diff != "" {
				t.Errorf("Progress() budget mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, 400.0, base.Budget.Spent)
		})
	}

	t.Run("dias negativos", func(t *testing.T) {
		_, err := Progress(base, -1)
		assert.ErrorIs(t, err, ErrInvalidDays)
	})
}

func TestCatalog_ProgressScenario(t *testing.T) {
	catalog, err := New()
	require.NoError(t, err)

	original, err := catalog.Get("budget_crisis")
	require.NoError(t, err)

	progressed, err := catalog.ProgressScenario("budget_crisis", 5)
	require.NoError(t, err)

	for i, c := range progressed.Campaigns {
		assert.Equal(t, c.Budget.Total, c.Budget.Spent, c.ID)
		assert.Equal(t, 0.0, c.Budget.Remaining, c.ID)

		want := *original.Campaigns[i]
		want.Budget = c.Budget
		if diff := cmp.Diff(&want, c); diff != "" {
			t.Errorf("only the budget should change (-want +got):\n%s", diff)
		}
	}

	_, err = catalog.ProgressScenario("budget_crisis", -2)
	assert.ErrorIs(t, err, ErrInvalidDays)

	_, err = catalog.ProgressScenario("missing", 1)
	assert.ErrorIs(t, err, ErrScenarioNotFound)
}

func TestNewFromYAML_Invalid(t *testing.T) {
	tests := map[string]string{
		"yaml inválido":  "scenarios: [",
		"sem id":         "scenarios:\n  - name: x\n",
		"id duplicado":   "scenarios:\n  - id: a\n  - id: a\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewFromYAML([]byte(data))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}
