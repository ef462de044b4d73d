package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/campaign-demo-api/internal/config"
	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/internal/scheduler/mocks"
)

func newTestService(t *testing.T) (*AlertScanService, *mocks.MockAlertSource, *mocks.MockWebhookEmitter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	source := mocks.NewMockAlertSource(ctrl)
	emitter := mocks.NewMockWebhookEmitter(ctrl)

	cfg := &config.Config{AlertScan: config.AlertScan{CronSchedule: "*/5 * * * *", Enabled: true}}
	return NewAlertScanService(source, emitter, cfg), source, emitter
}

func alert(id string) *domain.Alert {
	return &domain.Alert{ID: id, Type: domain.AlertTypeBudgetWarning, Priority: domain.AlertPriorityHigh}
}

func TestAlertScanService_scan(t *testing.T) {
	tests := []struct {
		name        string
		seen        []string
		alerts      []*domain.Alert
		sourceErr   error
		emitErrFor  string
		wantEmitted int
		wantTotal   int
		wantErr     bool
	}{
		{
			name:        "Todos os alertas são novos",
			alerts:      []*domain.Alert{alert("a"), alert("b")},
			wantEmitted: 2,
			wantTotal:   2,
		},
		{
			name:        "Alertas já vistos não emitem de novo",
			seen:        []string{"a"},
			alerts:      []*domain.Alert{alert("a"), alert("b")},
			wantEmitted: 1,
			wantTotal:   2,
		},
		{
			name:        "Falha ao agendar webhook não interrompe a varredura",
			alerts:      []*domain.Alert{alert("a"), alert("b")},
			emitErrFor:  "a",
			wantEmitted: 1,
			wantTotal:   2,
		},
		{
			name:      "Erro da fonte",
			sourceErr: errors.New("production LinkedIn integration not yet implemented"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, source, emitter := newTestService(t)
			for _, id := range tt.seen {
				service.seen[id] = struct{}{}
			}

			source.EXPECT().GetRealTimeAlerts(gomock.Any()).Return(tt.alerts, tt.sourceErr)

			seen := make(map[string]bool)
			for _, a := range tt.seen {
				seen[a] = true
			}
			for _, a := range tt.alerts {
				if seen[a.ID] {
					continue
				}
				var err error
				if a.ID == tt.emitErrFor {
					err = errors.New("simulator closed")
				}
				emitter.EXPECT().
					SimulateWebhook(AlertWebhookType, a).
					Return(&domain.WebhookEvent{ID: "evt-" + a.ID}, 10*time.Millisecond, err)
			}

			emitted, total, err := service.scan(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantEmitted, emitted)
			assert.Equal(t, tt.wantTotal, total)
			assert.Len(t, service.seen, len(tt.alerts))
		})
	}
}

func TestAlertScanService_TriggerManualSyncUpdatesStatus(t *testing.T) {
	service, source, emitter := newTestService(t)

	source.EXPECT().GetRealTimeAlerts(gomock.Any()).Return([]*domain.Alert{alert("a")}, nil)
	emitter.EXPECT().SimulateWebhook(AlertWebhookType, gomock.Any()).Return(&domain.WebhookEvent{ID: "evt"}, time.Duration(0), nil)

	assert.True(t, service.TriggerManualSync(context.Background()))
	service.Wait()

	status := service.GetStatus()
	assert.Equal(t, false, status["scan_running"])
	assert.Equal(t, 1, status["last_alert_count"])
	assert.Equal(t, 1, status["last_emitted"])
	assert.Equal(t, "", status["last_error"])
	assert.Equal(t, "*/5 * * * *", status["scan_cron"])
}

func TestAlertScanService_TriggerManualSyncSkipsWhenRunning(t *testing.T) {
	service, _, _ := newTestService(t)
	service.scanRunning = true

	assert.False(t, service.TriggerManualSync(context.Background()))
}

func TestAlertScanService_StartDisabled(t *testing.T) {
	service, _, _ := newTestService(t)
	service.config.ScanEnabled = false

	assert.NoError(t, service.Start(context.Background()))
}

func TestAlertScanService_StartInvalidCron(t *testing.T) {
	service, _, _ := newTestService(t)
	service.config.CronSchedule = "not a cron"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}

func TestAlertScanService_StopHaltsSchedulerBeforeWait(t *testing.T) {
	service, _, _ := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))
	assert.True(t, service.scheduler.IsRunning())

	service.Stop()
	service.Wait()
	assert.False(t, service.scheduler.IsRunning())

	service.Stop()
}
