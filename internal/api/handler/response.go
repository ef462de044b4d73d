package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/campaign-demo-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/datasourcing"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/scenario"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/simulating"
	"github.com/vfg2006/campaign-demo-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-demo-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError converte os erros dos serviços no formato padrão da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var netErr *simulating.SimulatedNetworkError
	var scenarioErr *scenario.ScenarioError
	var dataErr *datasourcing.DataSourceError
	var authErr *authenticating.AuthError

	switch {
	case errors.As(err, &netErr):
		logger.Warn("simulated network failure")
		apiErrors.WriteError(w, apiErrors.ErrSimulatedNetwork, "Falha de rede simulada, tente novamente", map[string]any{
			"endpoint":  netErr.Endpoint,
			"retryable": true,
		})

	case errors.Is(err, datasourcing.ErrProductionNotImplemented):
		logger.Warn("production mode requested")
		apiErrors.WriteError(w, apiErrors.ErrNotImplemented, "Modo produção ainda não implementado", nil)

	case errors.Is(err, simulating.ErrInvalidCampaign):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, simulating.ErrSimulatorClosed):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Simulador encerrado", nil)

	case errors.As(err, &scenarioErr):
		apiErrors.WriteError(w, scenarioErr.Code, scenarioErr.Error(), scenarioDetails(scenarioErr))

	case errors.As(err, &dataErr):
		apiErrors.WriteError(w, dataErr.Code, dataErr.Error(), nil)

	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.Info("request cancelled")
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Requisição cancelada", nil)

	default:
		logger.Error("unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

func scenarioDetails(err *scenario.ScenarioError) any {
	if err.ScenarioID == "" {
		return nil
	}
	return map[string]string{"scenario_id": err.ScenarioID}
}
