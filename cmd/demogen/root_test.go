package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCampaignsCommand(t *testing.T) {
	out, err := run(t, "campaigns", "--seed", "42", "--count", "3")
	require.NoError(t, err)

	var campaigns []*domain.Campaign
	require.NoError(t, json.Unmarshal([]byte(out), &campaigns))
	require.Len(t, campaigns, 3)
	assert.Equal(t, "camp_001", campaigns[0].ID)

	again, err := run(t, "campaigns", "--seed", "42", "--count", "3")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed, same output")
}

func TestCampaignsCommand_NegativeCount(t *testing.T) {
	_, err := run(t, "campaigns", "--count", "-1")
	assert.Error(t, err)
}

func TestCreativesCommand_ExplicitCampaigns(t *testing.T) {
	out, err := run(t, "creatives", "camp_900", "--seed", "1")
	require.NoError(t, err)

	var creatives []*domain.Creative
	require.NoError(t, json.Unmarshal([]byte(out), &creatives))
	require.NotEmpty(t, creatives)
	for _, c := range creatives {
		assert.Equal(t, "camp_900", c.CampaignID)
	}
}

func TestAlertsCommand(t *testing.T) {
	out, err := run(t, "alerts", "--seed", "7", "--count", "5")
	require.NoError(t, err)

	var alerts []*domain.Alert
	require.NoError(t, json.Unmarshal([]byte(out), &alerts))
	assert.Len(t, alerts, 5)

	out, err = run(t, "alerts", "--seed", "7", "--history", "3")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &alerts))
	assert.GreaterOrEqual(t, len(alerts), 3)
	assert.LessOrEqual(t, len(alerts), 9)

	_, err = run(t, "alerts", "--history", "3", "--realtime")
	assert.Error(t, err)
}

func TestAnalyticsCommand_RejectsZeroForecast(t *testing.T) {
	_, err := run(t, "analytics", "--forecast-days", "0")
	assert.Error(t, err)
}

func TestScenariosCommand(t *testing.T) {
	out, err := run(t, "scenarios", "--pretty")
	require.NoError(t, err)
	assert.Contains(t, out, "\t")

	var summaries []*domain.ScenarioSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	assert.NotEmpty(t, summaries)

	out, err = run(t, "scenarios", summaries[0].ID)
	require.NoError(t, err)
	var s domain.Scenario
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, summaries[0].ID, s.ID)

	_, err = run(t, "scenarios", "does_not_exist")
	assert.Error(t, err)
}
