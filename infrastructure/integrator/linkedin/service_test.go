package linkedin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkedInIntegrator_AlwaysNotImplemented(t *testing.T) {
	integrator := New(NewClient(""))
	ctx := context.Background()

	campaigns, err := integrator.GetCampaigns(ctx)
	assert.Nil(t, campaigns)
	assert.ErrorIs(t, err, ErrProductionNotImplemented)

	_, err = integrator.GetCreatives(ctx)
	assert.ErrorIs(t, err, ErrProductionNotImplemented)

	_, err = integrator.GetAlerts(ctx)
	assert.ErrorIs(t, err, ErrProductionNotImplemented)

	_, err = integrator.GetAudienceInsights(ctx)
	assert.ErrorIs(t, err, ErrProductionNotImplemented)
	assert.Contains(t, err.Error(), "linkedin audience")
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client := NewClient("").(*LinkedInClient)
	assert.Equal(t, DefaultBaseURL, client.BaseURL)
}
