package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-demo-api/internal/usecases/datasourcing"
	"github.com/vfg2006/campaign-demo-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-demo-api/pkg/log"
	"github.com/vfg2006/campaign-demo-api/pkg/utils"
)

func GetDashboard(service datasourcing.DataService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := service.RefreshData(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"campaigns": len(data.Campaigns),
			"alerts":    len(data.Alerts),
		}).Debug("dashboard: data refreshed")

		writeJSON(w, http.StatusOK, data)
	})
}

func GetCampaigns(service datasourcing.DataService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := service.GetCampaigns(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, campaigns)
	})
}

func GetCreatives(service datasourcing.DataService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creatives, err := service.GetCreatives(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, creatives)
	})
}

func GetAlerts(service datasourcing.DataService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alerts, err := service.GetAlerts(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, alerts)
	})
}

func GetRealTimeAlerts(service datasourcing.DataService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alerts, err := service.GetRealTimeAlerts(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, alerts)
	})
}

func GetAlertHistory(service datasourcing.DataService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days, err := utils.ParseIntDefault(r.URL.Query().Get("days"), 0)
		if err != nil {
			log.ForContext(r.Context()).WithField("days", r.URL.Query().Get("days")).Warn("alerts: invalid days parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro days inválido", nil)
			return
		}

		alerts, err := service.GetAlertHistory(r.Context(), days)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, alerts)
	})
}

func GetAudienceInsights(service datasourcing.DataService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		audience, err := service.GetAudienceInsights(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, audience)
	})
}

func GetAnalytics(service datasourcing.DataService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forecastDays, err := utils.ParseIntDefault(r.URL.Query().Get("forecast_days"), 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro forecast_days inválido", nil)
			return
		}

		analytics, err := service.GetAnalytics(r.Context(), forecastDays)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, analytics)
	})
}

func GetDemoSettings(service datasourcing.DataService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Settings())
	})
}

func UpdateDemoSettings(service datasourcing.DataService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var update datasourcing.SettingsUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		settings, err := service.UpdateSettings(update)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"mode":               settings.Mode,
			"use_generated_data": settings.UseGeneratedData,
		}).Info("demo: settings updated")

		writeJSON(w, http.StatusOK, settings)
	})
}
