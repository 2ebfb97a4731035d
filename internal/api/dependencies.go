package api

import (
	"os"

	"xsim-analytics/observatory/internal/common"
	"xsim-analytics/observatory/internal/logging"
	"xsim-analytics/observatory/internal/metrics"
	"xsim-analytics/observatory/internal/providers"
	"xsim-analytics/observatory/internal/services"
)

type Providers struct {
	Analytics *providers.AnalyticsProvider
	Gateway   *providers.GatewayProvider
}

type Services struct {
	Aircraft  *services.AircraftStatsService
	Gateway   *services.GatewayStatsService
	URLSigner *common.URLSignerService
}

type Dependencies struct {
	Cache     common.CacheInterface
	Metrics   *metrics.MetricsRegistry
	Providers *Providers
	Services  *Services
}

// InitDependencies wires the cache, providers, and services. Redis is used
// when REDIS_HOST is set; otherwise everything runs on the in-memory cache.
func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	var cache common.CacheInterface
	if os.Getenv("REDIS_HOST") != "" {
		redisCache, err := common.NewRedisCacheService()
		if err != nil {
			return nil, err
		}
		cache = redisCache
		logging.Info("Using Redis cache")
	} else {
		cache = common.NewMemoryCache()
		logging.Info("Using in-memory cache")
	}

	analytics := providers.NewAnalyticsProvider(cache, metricsReg)
	gateway := providers.NewGatewayProvider(cache, metricsReg)

	signingSecret := os.Getenv("SHARE_TOKEN_SECRET")
	if signingSecret == "" {
		signingSecret = "dev-only-insecure-secret"
		logging.Warn("SHARE_TOKEN_SECRET not set, using development secret")
	}

	return &Dependencies{
		Cache:   cache,
		Metrics: metricsReg,
		Providers: &Providers{
			Analytics: analytics,
			Gateway:   gateway,
		},
		Services: &Services{
			Aircraft:  services.NewAircraftStatsService(analytics, metricsReg),
			Gateway:   services.NewGatewayStatsService(gateway),
			URLSigner: common.NewURLSignerService([]byte(signingSecret), cache),
		},
	}, nil
}
