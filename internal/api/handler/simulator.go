package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/campaign-demo-api/infrastructure/repository"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/simulating"
	"github.com/vfg2006/campaign-demo-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-demo-api/pkg/log"
	"github.com/vfg2006/campaign-demo-api/pkg/utils"
)

const defaultCallLogLimit = 50

type SimulatorSettingsResponse struct {
	LatencyMS       int64      `json:"latency_ms"`
	FixedLatency    bool       `json:"fixed_latency"`
	ErrorRate       float64    `json:"error_rate"`
	Logging         bool       `json:"logging"`
	OutageActive    bool       `json:"outage_active"`
	OutageUntil     *time.Time `json:"outage_until,omitempty"`
	PendingWebhooks int        `json:"pending_webhooks"`
}

// SimulatorSettingsRequest aceita alteração parcial; campos nulos ficam como estão.
// reset_latency volta à latência padrão de cada operação.
type SimulatorSettingsRequest struct {
	LatencyMS    *int64   `json:"latency_ms"`
	ResetLatency bool     `json:"reset_latency"`
	ErrorRate    *float64 `json:"error_rate"`
	Logging      *bool    `json:"logging"`
}

type WebhookRequest struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

func simulatorSettings(sim *simulating.Simulator) SimulatorSettingsResponse {
	settings := sim.Settings()
	resp := SimulatorSettingsResponse{
		LatencyMS:       settings.Latency.Milliseconds(),
		FixedLatency:    settings.FixedLatency,
		ErrorRate:       settings.ErrorRate,
		Logging:         settings.Logging,
		PendingWebhooks: sim.PendingWebhooks(),
	}
	if active, until := sim.OutageActive(); active {
		resp.OutageActive = true
		resp.OutageUntil = &until
	}
	return resp
}

func GetSimulatorSettings(sim *simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, simulatorSettings(sim))
	})
}

func UpdateSimulatorSettings(sim *simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req SimulatorSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.LatencyMS != nil && *req.LatencyMS < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "latency_ms não pode ser negativo", nil)
			return
		}

		if req.LatencyMS != nil && req.ResetLatency {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "latency_ms e reset_latency são exclusivos", nil)
			return
		}

		switch {
		case req.ResetLatency:
			sim.ClearLatency()
		case req.LatencyMS != nil:
			sim.SetLatency(time.Duration(*req.LatencyMS) * time.Millisecond)
		}
		if req.ErrorRate != nil {
			sim.SetErrorRate(*req.ErrorRate)
		}
		if req.Logging != nil {
			sim.SetLogging(*req.Logging)
		}

		resp := simulatorSettings(sim)
		log.ForContext(r.Context()).WithFields(log.Fields{
			"latency_ms": resp.LatencyMS,
			"fixed":      resp.FixedLatency,
			"error_rate": resp.ErrorRate,
			"logging":    resp.Logging,
		}).Info("simulator: settings updated")

		writeJSON(w, http.StatusOK, resp)
	})
}

// SimulateOutage força falha total por ?seconds= segundos (padrão 30)
func SimulateOutage(sim *simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seconds, err := utils.ParseIntDefault(r.URL.Query().Get("seconds"), 0)
		if err != nil || seconds < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro seconds inválido", nil)
			return
		}

		until := sim.SimulateOutage(time.Duration(seconds) * time.Second)
		if until.IsZero() {
			writeServiceError(w, r, simulating.ErrSimulatorClosed)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"outage_until": until.UTC().Format(time.RFC3339),
		})
	})
}

func SimulateWebhook(sim *simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req WebhookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if req.Type == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo do evento é obrigatório", nil)
			return
		}

		event, delay, err := sim.SimulateWebhook(req.Type, req.Payload)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"event":    event,
			"delay_ms": delay.Milliseconds(),
		})
	})
}

// GetWebhookEvents lista os eventos recentes. Com ?stream=true mantém a conexão aberta em text/event-stream.
func GetWebhookEvents(sim *simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("stream") != "true" {
			writeJSON(w, http.StatusOK, sim.RecentEvents())
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Streaming não suportado", nil)
			return
		}

		events, cancel := sim.Subscribe()
		defer cancel()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		logger := log.ForContext(r.Context())
		logger.Debug("webhooks: stream opened")

		for {
			select {
			case <-r.Context().Done():
				logger.Debug("webhooks: stream closed by client")
				return
			case event, open := <-events:
				if !open {
					return
				}
				data, err := json.Marshal(event)
				if err != nil {
					logger.WithError(err).Error("webhooks: failed to encode event")
					continue
				}
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, data)
				flusher.Flush()
			}
		}
	})
}

// GetSimulatedCalls lista o histórico de chamadas ao mock, mais recentes primeiro
func GetSimulatedCalls(calls repository.CallLogRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := utils.ParseIntDefault(r.URL.Query().Get("limit"), defaultCallLogLimit)
		if err != nil || limit <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return
		}

		recent, err := calls.ListRecent(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("calls: failed to list")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar chamadas", nil)
			return
		}
		writeJSON(w, http.StatusOK, recent)
	})
}
