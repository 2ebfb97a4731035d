package api

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"xsim-analytics/observatory/internal/services"
)

// DashboardSnapshot bundles every report the dashboard landing page
// renders. The three report families hit independent upstreams, so they
// are built concurrently.
type DashboardSnapshot struct {
	Aircraft *AircraftReport          `json:"aircraft"`
	Hardware *services.HardwareReport `json:"hardware"`
	Gateway  *services.GatewayReport  `json:"gateway"`
}

// DashboardHandler handles GET /api/v1/reports/dashboard
func DashboardHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version, ok := versionFromRequest(r)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Unknown simulator version")
			return
		}
		group := groupFromRequest(r)
		topN := topNFromRequest(r)

		var snapshot DashboardSnapshot
		g, ctx := errgroup.WithContext(r.Context())

		g.Go(func() error {
			stats, err := deps.Services.Aircraft.BuildStats(ctx, version, group)
			if err != nil {
				return err
			}
			snapshot.Aircraft = &AircraftReport{
				Version:           string(version),
				Group:             group.Name(),
				TotalFlights:      stats.TotalFlights(),
				FirstVsThirdParty: services.FirstVsThirdParty(stats),
				Categories:        services.CategoryPercents(stats),
				TopFirstParty: services.OrderedCountsToPercents(
					services.TopWithOther(stats.FirstParty, topN, services.FirstPartyLabel),
					stats.FirstPartyFlights(), 0),
				TopThirdParty: services.OrderedCountsToPercents(
					services.TopWithOther(stats.ThirdParty, topN, services.ThirdPartyLabel),
					stats.ThirdPartyFlights(), 0),
			}
			return nil
		})

		g.Go(func() error {
			svc := services.NewHardwareStatsService(deps.Providers.Analytics, deps.Metrics, version, group)
			report, err := svc.BuildReport(ctx)
			if err != nil {
				return err
			}
			snapshot.Hardware = report
			return nil
		})

		g.Go(func() error {
			report, err := deps.Services.Gateway.BuildReport(ctx)
			if err != nil {
				return err
			}
			snapshot.Gateway = report
			return nil
		})

		if err := g.Wait(); err != nil {
			handleProviderError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &snapshot)
	}
}
