package api

import (
	"net/http"
)

// GatewayStatsHandler handles GET /api/v1/reports/gateway
func GatewayStatsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := deps.Services.Gateway.BuildReport(r.Context())
		if err != nil {
			handleProviderError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, report)
	}
}
