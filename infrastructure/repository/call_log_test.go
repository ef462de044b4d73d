package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
)

func TestBuildInsertCallQuery(t *testing.T) {
	started := time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC)
	call := &domain.SimulatedCall{Endpoint: "list_campaigns", LatencyMS: 500, Failed: true, Error: "boom", StartedAt: started}

	query, args, err := buildInsertCallQuery(call)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO simulated_calls (endpoint,latency_ms,failed,error,started_at) VALUES ($1,$2,$3,$4,$5) RETURNING id", query)
	assert.Equal(t, []interface{}{"list_campaigns", int64(500), true, "boom", started}, args)
}

func TestBuildListCallsQuery(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  string
	}{
		{name: "limite informado", limit: 10, want: "SELECT id, endpoint, latency_ms, failed, error, started_at FROM simulated_calls ORDER BY started_at DESC, id DESC LIMIT 10"},
		{name: "limite padrão", limit: 0, want: "SELECT id, endpoint, latency_ms, failed, error, started_at FROM simulated_calls ORDER BY started_at DESC, id DESC LIMIT 50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListCallsQuery(tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Empty(t, args)
		})
	}
}

func TestMemoryCallLog(t *testing.T) {
	ctx := context.Background()
	log := NewMemoryCallLog(3)

	for _, endpoint := range []string{"a", "b", "c", "d"} {
		call := &domain.SimulatedCall{Endpoint: endpoint}
		require.NoError(t, log.Record(ctx, call))
		assert.NotZero(t, call.ID)
	}

	calls, err := log.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, calls, 3)
	assert.Equal(t, "d", calls[0].Endpoint)
	assert.Equal(t, "b", calls[2].Endpoint)
	assert.Equal(t, int64(4), calls[0].ID)

	calls, err = log.ListRecent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, calls, 1)
}
