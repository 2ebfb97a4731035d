package services

import (
	"context"
	"fmt"
	"time"

	"xsim-analytics/observatory/internal/providers"
)

// GatewayStatsService turns the scenery gateway's cumulative monthly
// counters into time series for the dashboard.
type GatewayStatsService struct {
	source providers.GatewaySource
	now    func() time.Time
}

func NewGatewayStatsService(source providers.GatewaySource) *GatewayStatsService {
	return &GatewayStatsService{
		source: source,
		now:    time.Now,
	}
}

// MonthCount is one month's cumulative value for a gateway counter.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// StatOverTime returns one counter's series in month order. The gateway
// sometimes publishes placeholder entries for future months; those are
// filtered out.
func (s *GatewayStatsService) StatOverTime(ctx context.Context, stat providers.GatewayStat) ([]MonthCount, error) {
	stats, err := s.source.StatsByMonth(ctx)
	if err != nil {
		return nil, err
	}

	series := stats.Series(stat)
	if series == nil {
		return nil, fmt.Errorf("unknown gateway stat %q", stat)
	}

	now := s.now()
	out := make([]MonthCount, 0, len(stats.Months))
	for i, month := range stats.Months {
		t, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, fmt.Errorf("gateway month %q: %w", month, err)
		}
		if t.Before(now) {
			out = append(out, MonthCount{Month: month, Count: series[i]})
		}
	}
	return out, nil
}

// GatewayReport holds every counter's series.
type GatewayReport struct {
	Airports    []MonthCount `json:"airports"`
	Airports3D  []MonthCount `json:"airports_3d"`
	Submissions []MonthCount `json:"submissions"`
	Artists     []MonthCount `json:"artists"`
}

// BuildReport assembles all four gateway series.
func (s *GatewayStatsService) BuildReport(ctx context.Context) (*GatewayReport, error) {
	var (
		report GatewayReport
		err    error
	)
	if report.Airports, err = s.StatOverTime(ctx, providers.GatewayStatAirports); err != nil {
		return nil, err
	}
	if report.Airports3D, err = s.StatOverTime(ctx, providers.GatewayStatAirports3D); err != nil {
		return nil, err
	}
	if report.Submissions, err = s.StatOverTime(ctx, providers.GatewayStatSubmissions); err != nil {
		return nil, err
	}
	if report.Artists, err = s.StatOverTime(ctx, providers.GatewayStatArtists); err != nil {
		return nil, err
	}
	return &report, nil
}
