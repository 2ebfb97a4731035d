package api

import (
	"errors"
	"net/http"
	"strconv"

	"xsim-analytics/observatory/internal/constants"
	"xsim-analytics/observatory/internal/providers"
	"xsim-analytics/observatory/internal/services"
)

// query parameter parsing shared by the report handlers

func versionFromRequest(r *http.Request) (providers.Version, bool) {
	v := providers.Version(r.URL.Query().Get("version"))
	if v == "" {
		v = "11"
	}
	_, ok := v.Meta()
	return v, ok
}

func groupFromRequest(r *http.Request) providers.UserGroup {
	switch r.URL.Query().Get("group") {
	case "paid":
		return providers.GroupPaidOnly
	case "demo":
		return providers.GroupDemoOnly
	}
	return providers.GroupAll
}

func topNFromRequest(r *http.Request) int {
	if raw := r.URL.Query().Get("top"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return 10
}

// AircraftReport is the full aircraft usage report.
type AircraftReport struct {
	Version           string          `json:"version"`
	Group             string          `json:"group"`
	TotalFlights      int             `json:"total_flights"`
	FirstVsThirdParty services.Series `json:"first_vs_third_party"`
	Categories        services.Series `json:"categories"`
	TopFirstParty     services.Series `json:"top_first_party"`
	TopThirdParty     services.Series `json:"top_third_party"`
}

// AircraftStatsHandler handles GET /api/v1/reports/aircraft
func AircraftStatsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version, ok := versionFromRequest(r)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Unknown simulator version")
			return
		}
		group := groupFromRequest(r)
		topN := topNFromRequest(r)

		stats, err := deps.Services.Aircraft.BuildStats(r.Context(), version, group)
		if err != nil {
			handleProviderError(w, err)
			return
		}

		total := stats.TotalFlights()
		report := &AircraftReport{
			Version:           string(version),
			Group:             group.Name(),
			TotalFlights:      total,
			FirstVsThirdParty: services.FirstVsThirdParty(stats),
			Categories:        services.CategoryPercents(stats),
			TopFirstParty: services.OrderedCountsToPercents(
				services.TopWithOther(stats.FirstParty, topN, services.FirstPartyLabel),
				stats.FirstPartyFlights(), 0),
			TopThirdParty: services.OrderedCountsToPercents(
				services.TopWithOther(stats.ThirdParty, topN, services.ThirdPartyLabel),
				stats.ThirdPartyFlights(), 0),
		}

		respondWithSuccess(w, http.StatusOK, report)
	}
}

// StudioBreakdownHandler handles GET /api/v1/reports/aircraft/studios
func StudioBreakdownHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version, ok := versionFromRequest(r)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Unknown simulator version")
			return
		}
		group := groupFromRequest(r)

		stats, err := deps.Services.Aircraft.BuildStats(r.Context(), version, group)
		if err != nil {
			handleProviderError(w, err)
			return
		}

		breakdown := services.StudioBreakdown(stats)
		respondWithSuccess(w, http.StatusOK, &breakdown)
	}
}

// handleProviderError maps provider errors to appropriate HTTP responses
func handleProviderError(w http.ResponseWriter, err error) {
	var provErr *providers.ProviderError
	if errors.As(err, &provErr) {
		respondWithError(w, mapErrorCodeToHTTPStatus(provErr.Code), constants.GetErrorMessage(provErr.Code))
		return
	}
	respondWithError(w, http.StatusInternalServerError, "An unexpected error occurred")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(errorCode string) int {
	switch errorCode {
	case constants.ErrCodeIncompleteWindow:
		return http.StatusBadRequest

	case constants.ErrCodeInvalidAPIKey:
		return http.StatusBadGateway
	case constants.ErrCodeRateLimited:
		return http.StatusTooManyRequests

	// 502 Bad Gateway - upstream misbehaved
	case constants.ErrCodeNetworkError,
		constants.ErrCodeBadUpstreamStatus,
		constants.ErrCodeMalformedResponse,
		constants.ErrCodeMissingSeries:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
