package simulating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/campaign-demo-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/generating"
	"github.com/vfg2006/campaign-demo-api/pkg/log"
	"github.com/vfg2006/campaign-demo-api/pkg/sampling"
)

var fixedNow = time.Date(2024, time.October, 15, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	goleak.VerifyTestMain(m)
}

func newTestSimulator(t *testing.T, opts ...Option) *Simulator {
	t.Helper()

	sampler := sampling.New(42)
	clock := func() time.Time { return fixedNow }
	generator := generating.New(sampler, generating.WithClock(clock))

	base := []Option{
		WithSettings(Settings{Latency: time.Nanosecond, FixedLatency: true}),
		WithClock(clock),
		WithMaxWebhookDelay(20 * time.Millisecond),
	}
	s := New(generator, sampler, append(base, opts...)...)
	t.Cleanup(s.Close)

	return s
}

func produceValue() (string, error) {
	return "ok", nil
}

func TestCall_ErrorRate100AlwaysFails(t *testing.T) {
	s := newTestSimulator(t)
	s.SetErrorRate(100)

	for i := 0; i < 50; i++ {
		result, err := Call(context.Background(), s, "campaigns", produceValue)

		require.Error(t, err)
		assert.Empty(t, result)
		assert.True(t, errors.Is(err, ErrSimulatedNetwork))
		assert.True(t, IsTransient(err))

		var netErr *SimulatedNetworkError
		require.True(t, errors.As(err, &netErr))
		assert.Equal(t, "campaigns", netErr.Endpoint)
	}
}

func TestCall_ErrorRate0AlwaysSucceeds(t *testing.T) {
	s := newTestSimulator(t)
	s.SetErrorRate(0)

	for i := 0; i < 50; i++ {
		result, err := Call(context.Background(), s, "campaigns", produceValue)

		require.NoError(t, err)
		assert.Equal(t, "ok", result)
	}
}

func TestCall_ProduceErrorIsReturned(t *testing.T) {
	s := newTestSimulator(t)
	boom := errors.New("boom")

	_, err := Call(context.Background(), s, "campaigns", func() (int, error) { return 0, boom })

	assert.ErrorIs(t, err, boom)
	assert.False(t, IsTransient(err))
}

func TestCall_WaitsForLatency(t *testing.T) {
	s := newTestSimulator(t)
	s.SetLatency(0)

	started := time.Now()
	_, err := Call(context.Background(), s, "slow", produceValue, WithLatency(30*time.Millisecond))

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(started), 30*time.Millisecond)
}

func TestCall_LatencyResolution(t *testing.T) {
	s := newTestSimulator(t)
	explicit := func(d time.Duration) callConfig {
		cfg := callConfig{}
		WithLatency(d)(&cfg)
		withDefaultLatency(700 * time.Millisecond)(&cfg)
		return cfg
	}
	operation := callConfig{}
	withDefaultLatency(700 * time.Millisecond)(&operation)

	s.ClearLatency()
	assert.False(t, s.Settings().FixedLatency)
	assert.Equal(t, DefaultLatency, s.latencyFor(callConfig{}))
	assert.Equal(t, 700*time.Millisecond, s.latencyFor(operation))
	assert.Equal(t, time.Second, s.latencyFor(explicit(time.Second)))

	s.SetLatency(300 * time.Millisecond)
	assert.Equal(t, 300*time.Millisecond, s.latencyFor(operation))
	assert.Equal(t, 300*time.Millisecond, s.latencyFor(callConfig{}))
	assert.Equal(t, time.Duration(0), s.latencyFor(explicit(0)))

	s.SetLatency(0)
	assert.True(t, s.Settings().FixedLatency)
	assert.Equal(t, time.Duration(0), s.latencyFor(operation))
	assert.Equal(t, time.Duration(0), s.latencyFor(callConfig{}))

	s.SetLatency(-time.Second)
	assert.Equal(t, time.Duration(0), s.Settings().Latency)
}

func TestCall_ExplicitLatencyOverridesSimulator(t *testing.T) {
	s := newTestSimulator(t)
	s.SetLatency(time.Minute)

	started := time.Now()
	_, err := Call(context.Background(), s, "fast", produceValue, WithLatency(0))

	require.NoError(t, err)
	assert.Less(t, time.Since(started), time.Second)
}

func TestCall_ZeroConfiguredLatencyRejectsImmediately(t *testing.T) {
	s := newTestSimulator(t)
	s.SetLatency(0)
	s.SetErrorRate(100)

	started := time.Now()
	_, err := s.ListCampaigns(context.Background(), "")

	assert.ErrorIs(t, err, ErrSimulatedNetwork)
	assert.Less(t, time.Since(started), 100*time.Millisecond)
}

func TestCall_ContextCancelled(t *testing.T) {
	s := newTestSimulator(t)
	s.SetLatency(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	started := time.Now()
	_, err := Call(ctx, s, "slow", produceValue, WithLatency(time.Second))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(started), 500*time.Millisecond)
}

func TestCall_RecordsCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockCallLogRepository(ctrl)

	s := newTestSimulator(t, WithRecorder(recorder))
	s.SetErrorRate(100)

	recorder.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, call *domain.SimulatedCall) error {
			assert.Equal(t, "accounts", call.Endpoint)
			assert.True(t, call.Failed)
			assert.Contains(t, call.Error, "simulated network error")
			assert.Equal(t, fixedNow, call.StartedAt)
			return nil
		})

	_, err := Call(context.Background(), s, "accounts", produceValue)
	assert.Error(t, err)
}

func TestCall_RecorderFailureDoesNotFailCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockCallLogRepository(ctrl)
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	s := newTestSimulator(t, WithRecorder(recorder))

	result, err := Call(context.Background(), s, "accounts", produceValue)
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestCall_Metrics(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	s := newTestSimulator(t, WithMetrics(metrics))

	_, _ = Call(context.Background(), s, "campaigns", produceValue)
	s.SetErrorRate(100)
	_, _ = Call(context.Background(), s, "campaigns", produceValue)
	_, _ = Call(context.Background(), s, "campaigns", produceValue)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.calls.WithLabelValues("campaigns", outcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.calls.WithLabelValues("campaigns", outcomeFailure)))
}

func TestSetErrorRate_Clamps(t *testing.T) {
	s := newTestSimulator(t)

	s.SetErrorRate(150)
	assert.Equal(t, 100.0, s.Settings().ErrorRate)

	s.SetErrorRate(-3)
	assert.Equal(t, 0.0, s.Settings().ErrorRate)

	s.SetLogging(false)
	assert.False(t, s.Settings().Logging)
}

func TestSimulateOutage_RestoresPreviousRate(t *testing.T) {
	s := newTestSimulator(t)
	s.SetErrorRate(10)

	until := s.SimulateOutage(40 * time.Millisecond)
	assert.Equal(t, fixedNow.Add(40*time.Millisecond), until)

	active, _ := s.OutageActive()
	assert.True(t, active)
	assert.Equal(t, 100.0, s.Settings().ErrorRate)

	_, err := Call(context.Background(), s, "campaigns", produceValue)
	assert.ErrorIs(t, err, ErrSimulatedNetwork)

	require.Eventually(t, func() bool {
		active, _ := s.OutageActive()
		return !active
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 10.0, s.Settings().ErrorRate)
}

func TestSimulateOutage_NestedKeepsOriginalRate(t *testing.T) {
	s := newTestSimulator(t)
	s.SetErrorRate(25)

	s.SimulateOutage(30 * time.Millisecond)
	s.SimulateOutage(60 * time.Millisecond)

	time.Sleep(40 * time.Millisecond)
	active, _ := s.OutageActive()
	assert.True(t, active, "the second outage extends the first one")
	assert.Equal(t, 100.0, s.Settings().ErrorRate)

	require.Eventually(t, func() bool {
		active, _ := s.OutageActive()
		return !active
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 25.0, s.Settings().ErrorRate)
}

func TestSimulateOutage_SetErrorRateDuringOutage(t *testing.T) {
	s := newTestSimulator(t)
	s.SetErrorRate(5)

	s.SimulateOutage(20 * time.Millisecond)
	s.SetErrorRate(50)
	assert.Equal(t, 100.0, s.Settings().ErrorRate)

	require.Eventually(t, func() bool {
		return s.Settings().ErrorRate == 50
	}, time.Second, 5*time.Millisecond)
}

func TestSimulateOutage_ZeroUsesConfiguredDuration(t *testing.T) {
	s := newTestSimulator(t, WithOutageDuration(25*time.Millisecond))

	until := s.SimulateOutage(0)
	assert.Equal(t, fixedNow.Add(25*time.Millisecond), until)

	require.Eventually(t, func() bool {
		active, _ := s.OutageActive()
		return !active
	}, time.Second, 5*time.Millisecond)
}

func TestClose_RestoresRateAndStopsOutage(t *testing.T) {
	s := newTestSimulator(t)
	s.SetErrorRate(15)
	s.SimulateOutage(time.Hour)

	s.Close()

	active, _ := s.OutageActive()
	assert.False(t, active)
	assert.Equal(t, 15.0, s.Settings().ErrorRate)
	assert.True(t, s.SimulateOutage(time.Second).IsZero())
}

func TestSimulateWebhook_DeliversToSubscribers(t *testing.T) {
	s := newTestSimulator(t)

	events, unsubscribe := s.Subscribe()
	defer unsubscribe()

	scheduled, delay, err := s.SimulateWebhook("campaign.updated", map[string]string{"id": "camp_001"})
	require.NoError(t, err)
	assert.NotEmpty(t, scheduled.ID)
	assert.LessOrEqual(t, delay, 20*time.Millisecond)

	select {
	case event := <-events:
		assert.Equal(t, scheduled.ID, event.ID)
		assert.Equal(t, "campaign.updated", event.Type)
		assert.Equal(t, fixedNow, event.EmittedAt)
	case <-time.After(time.Second):
		t.Fatal("webhook not delivered")
	}

	recent := s.RecentEvents()
	require.Len(t, recent, 1)
	assert.Equal(t, scheduled.ID, recent[0].ID)
	assert.Equal(t, 0, s.PendingWebhooks())
}

func TestSimulateWebhook_RecentEventsAreBounded(t *testing.T) {
	s := newTestSimulator(t, WithMaxWebhookDelay(0))

	for i := 0; i < recentEventsLimit+5; i++ {
		_, _, err := s.SimulateWebhook("ping", i)
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		return s.PendingWebhooks() == 0
	}, time.Second, 5*time.Millisecond)

	assert.Len(t, s.RecentEvents(), recentEventsLimit)
}

func TestClose_CancelsPendingWebhooks(t *testing.T) {
	s := newTestSimulator(t, WithMaxWebhookDelay(time.Hour))
	events, _ := s.Subscribe()

	_, _, err := s.SimulateWebhook("campaign.paused", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, s.PendingWebhooks())

	s.Close()

	assert.Equal(t, 0, s.PendingWebhooks())
	_, ok := <-events
	assert.False(t, ok, "subscriber channel is closed")

	_, _, err = s.SimulateWebhook("campaign.paused", nil)
	assert.ErrorIs(t, err, ErrSimulatorClosed)
}
