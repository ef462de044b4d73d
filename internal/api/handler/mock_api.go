package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/simulating"
	"github.com/vfg2006/campaign-demo-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-demo-api/pkg/log"
	"github.com/vfg2006/campaign-demo-api/pkg/utils"
)

// handlers do mock da API de anúncios. Cada chamada passa pela latência e injeção de falhas do simulador.

func MockListAccounts(sim *simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accounts, err := sim.ListAccounts(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, accounts)
	})
}

func MockListCampaigns(sim *simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaigns, err := sim.ListCampaigns(r.Context(), accountID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, campaigns)
	})
}

func MockCreateCampaign(sim *simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var draft domain.CampaignDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		campaign, err := sim.CreateCampaign(r.Context(), draft)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("campaign_id", campaign.ID).Info("mock: campaign created")
		writeJSON(w, http.StatusCreated, campaign)
	})
}

func MockUpdateCampaign(sim *simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var update domain.CampaignUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		update.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := sim.UpdateCampaign(r.Context(), update)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, campaign)
	})
}

func MockPauseCampaign(sim *simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		change, err := sim.PauseCampaign(r.Context(), httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, change)
	})
}

func MockResumeCampaign(sim *simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		change, err := sim.ResumeCampaign(r.Context(), httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, change)
	})
}

type batchUpdateRequest struct {
	Updates []domain.CampaignUpdate `json:"updates"`
}

func MockBatchUpdate(sim *simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req batchUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if len(req.Updates) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhuma alteração informada", nil)
			return
		}

		result, err := sim.BatchUpdate(r.Context(), req.Updates)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	})
}

func MockGetCreatives(sim *simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creatives, err := sim.GetCreatives(r.Context(), httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, creatives)
	})
}

func MockGetAnalytics(sim *simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forecastDays, err := utils.ParseIntDefault(r.URL.Query().Get("forecast_days"), 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro forecast_days inválido", nil)
			return
		}

		analytics, err := sim.GetAnalytics(r.Context(), forecastDays)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, analytics)
	})
}

func MockGetAudienceInsights(sim *simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		audience, err := sim.GetAudienceInsights(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, audience)
	})
}

func MockCheckRateLimit(sim *simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, err := sim.CheckRateLimit(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, status)
	})
}
