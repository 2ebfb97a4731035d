package routes

import (
	"github.com/go-chi/chi/v5"

	"xsim-analytics/observatory/internal/api"
	"xsim-analytics/observatory/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.RateLimitMiddleware)

		v1.Route("/reports", func(reports chi.Router) {
			reports.Get("/aircraft", api.AircraftStatsHandler(deps))
			reports.Get("/aircraft/studios", api.StudioBreakdownHandler(deps))
			reports.Get("/hardware", api.HardwareStatsHandler(deps))
			reports.Get("/gateway", api.GatewayStatsHandler(deps))
			reports.Get("/dashboard", api.DashboardHandler(deps))
		})

		v1.Post("/share", api.GenerateShareLinkHandler(deps))

		// Shared report access with a single-use presigned token
		v1.Group(func(shared chi.Router) {
			shared.Use(middleware.ShareTokenMiddleware(deps.Services.URLSigner))
			shared.Get("/shared/dashboard", api.DashboardHandler(deps))
		})
	})
}
