package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/campaign-demo-api/internal/usecases/simulating"
)

type HealthcheckResponse struct {
	Status          string `json:"status"`
	Time            string `json:"time"`
	SimulatorOutage bool   `json:"simulator_outage"`
}

// HealthcheckHandler responde 200 mesmo durante uma queda simulada; a queda só afeta o mock da API
func HealthcheckHandler(sim *simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := HealthcheckResponse{
			Status: "ok",
			Time:   time.Now().UTC().Format(time.RFC3339),
		}
		if sim != nil {
			resp.SimulatorOutage, _ = sim.OutageActive()
		}
		writeJSON(w, http.StatusOK, resp)
	})
}
