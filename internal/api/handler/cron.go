package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/campaign-demo-api/internal/scheduler"
	"github.com/vfg2006/campaign-demo-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-demo-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeAlertScan = "alert-scan"
	CronJobTypeAll       = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	AlertScanService *scheduler.AlertScanService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeAlertScan, CronJobTypeAll:
			if services.AlertScanService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de varredura de alertas não disponível", nil)
				return
			}
			if !services.AlertScanService.TriggerManualSync(r.Context()) {
				writeJSON(w, http.StatusConflict, map[string]any{
					"message": "Cron job já está em execução",
					"type":    cronType,
				})
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: alert-scan, all", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("cron: manual run triggered")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.AlertScanService != nil {
			status[CronJobTypeAlertScan] = services.AlertScanService.GetStatus()
		}
		writeJSON(w, http.StatusOK, status)
	}
}
