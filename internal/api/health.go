package api

import (
	"encoding/json"
	"net/http"
	"time"

	"xsim-analytics/observatory/internal/common"
)

type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type HealthCheckResponse struct {
	Services map[string]ServiceStatus `json:"services"`
	Status   string                   `json:"status"`
	Uptime   string                   `json:"uptime"`
}

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(cache common.CacheInterface, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]ServiceStatus)

		cacheStatus := "ok"
		cacheDetails := "Cache reachable"
		probeKey := "HEALTH_PROBE"
		cache.Set(probeKey, "1", 10*time.Second)
		if _, found := cache.Get(probeKey); !found {
			cacheStatus = "down"
			cacheDetails = "Cache write/read probe failed"
		}
		services["cache"] = ServiceStatus{
			Status:  cacheStatus,
			Details: cacheDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		now := time.Now()
		uptime := now.Sub(upSince).Round(time.Second).String()

		resp := HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
