package api

import (
	"net/http"

	"xsim-analytics/observatory/internal/services"
)

// HardwareStatsHandler handles GET /api/v1/reports/hardware
func HardwareStatsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version, ok := versionFromRequest(r)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Unknown simulator version")
			return
		}
		group := groupFromRequest(r)

		svc := services.NewHardwareStatsService(deps.Providers.Analytics, deps.Metrics, version, group)
		report, err := svc.BuildReport(r.Context())
		if err != nil {
			handleProviderError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, report)
	}
}
