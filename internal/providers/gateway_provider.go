package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"xsim-analytics/observatory/internal/common"
	"xsim-analytics/observatory/internal/constants"
	"xsim-analytics/observatory/internal/metrics"
)

// GatewayStat identifies one of the monthly counters published by the
// scenery gateway.
type GatewayStat string

const (
	GatewayStatAirports    GatewayStat = "airports"
	GatewayStatAirports3D  GatewayStat = "recommended3dAirports"
	GatewayStatSubmissions GatewayStat = "totalUserSceneryPacks"
	GatewayStatArtists     GatewayStat = "registeredArtists"
)

// GatewayStats returns the counters in presentation order.
func GatewayStats() []GatewayStat {
	return []GatewayStat{
		GatewayStatAirports,
		GatewayStatAirports3D,
		GatewayStatSubmissions,
		GatewayStatArtists,
	}
}

// GatewayStatsByMonth holds one cumulative series per counter, all aligned
// to Months. Every series has the same length as Months.
type GatewayStatsByMonth struct {
	Months      []string `json:"months"`
	Airports    []int    `json:"airports"`
	Airports3D  []int    `json:"recommended3dAirports"`
	Submissions []int    `json:"totalUserSceneryPacks"`
	Artists     []int    `json:"registeredArtists"`
}

// Series returns the counter series for one stat.
func (g *GatewayStatsByMonth) Series(stat GatewayStat) []int {
	switch stat {
	case GatewayStatAirports:
		return g.Airports
	case GatewayStatAirports3D:
		return g.Airports3D
	case GatewayStatSubmissions:
		return g.Submissions
	case GatewayStatArtists:
		return g.Artists
	}
	return nil
}

// GatewaySource is what the gateway stats service depends on.
type GatewaySource interface {
	StatsByMonth(ctx context.Context) (*GatewayStatsByMonth, error)
}

// GatewayProvider fetches the scenery gateway's monthly stats endpoint.
type GatewayProvider struct {
	StatsURL string
	Client   *http.Client

	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
}

var _ GatewaySource = (*GatewayProvider)(nil)

const gatewayCacheTTL = 12 * time.Hour

func (p *GatewayProvider) countRequest(outcome string) {
	if p.metrics != nil {
		p.metrics.ProviderRequestsTotal.WithLabelValues("gateway", outcome).Inc()
	}
}

// NewGatewayProvider builds a provider from environment configuration.
func NewGatewayProvider(cache common.CacheInterface, m *metrics.MetricsRegistry) *GatewayProvider {
	statsURL := os.Getenv("GATEWAY_STATS_URL")
	if statsURL == "" {
		statsURL = "http://gateway.x-plane.com/apiv1/stats/by-month"
	}
	return &GatewayProvider{
		StatsURL: statsURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache:   cache,
		metrics: m,
	}
}

// StatsByMonth fetches all counters, serving repeats from cache.
func (p *GatewayProvider) StatsByMonth(ctx context.Context) (*GatewayStatsByMonth, error) {
	if p.cache != nil {
		if val, found := p.cache.Get(string(constants.CachePrefixGatewayStats)); found {
			if stats, ok := val.(*GatewayStatsByMonth); ok {
				if p.metrics != nil {
					p.metrics.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixGatewayStats)).Inc()
				}
				return stats, nil
			}
		}
		if p.metrics != nil {
			p.metrics.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixGatewayStats)).Inc()
		}
	}

	stats, err := p.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		p.cache.Set(string(constants.CachePrefixGatewayStats), stats, gatewayCacheTTL)
	}
	return stats, nil
}

func (p *GatewayProvider) fetch(ctx context.Context) (*GatewayStatsByMonth, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.StatsURL, nil)
	if err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "failed to build gateway request",
			Err:     err,
		}
	}

	reqStart := time.Now()
	resp, err := p.Client.Do(req)
	if p.metrics != nil {
		p.metrics.ProviderRequestDuration.WithLabelValues("gateway").Observe(time.Since(reqStart).Seconds())
	}
	if err != nil {
		p.countRequest("error")
		return nil, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()
	p.countRequest(strconv.Itoa(resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{
			Code:    constants.ErrCodeBadUpstreamStatus,
			Message: fmt.Sprintf("gateway stats endpoint returned %d", resp.StatusCode),
		}
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeMalformedResponse,
			Message: constants.GetErrorMessage(constants.ErrCodeMalformedResponse),
			Err:     err,
		}
	}

	var stats GatewayStatsByMonth
	if err := unmarshalSeries(raw, "months", &stats.Months); err != nil {
		return nil, err
	}
	for _, stat := range GatewayStats() {
		var series []int
		if err := unmarshalSeries(raw, string(stat), &series); err != nil {
			return nil, err
		}
		if len(series) != len(stats.Months) {
			return nil, &ProviderError{
				Code: constants.ErrCodeMissingSeries,
				Message: fmt.Sprintf("series %q has %d entries, months has %d",
					stat, len(series), len(stats.Months)),
			}
		}
		switch stat {
		case GatewayStatAirports:
			stats.Airports = series
		case GatewayStatAirports3D:
			stats.Airports3D = series
		case GatewayStatSubmissions:
			stats.Submissions = series
		case GatewayStatArtists:
			stats.Artists = series
		}
	}

	return &stats, nil
}

func unmarshalSeries[T any](raw map[string]json.RawMessage, key string, out *[]T) error {
	msg, ok := raw[key]
	if !ok {
		return &ProviderError{
			Code:    constants.ErrCodeMissingSeries,
			Message: fmt.Sprintf("gateway response is missing the %q series", key),
		}
	}
	if err := json.Unmarshal(msg, out); err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeMalformedResponse,
			Message: fmt.Sprintf("gateway series %q could not be parsed", key),
			Err:     err,
		}
	}
	return nil
}
