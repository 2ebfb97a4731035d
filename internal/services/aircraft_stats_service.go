package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"xsim-analytics/observatory/internal/constants"
	"xsim-analytics/observatory/internal/logging"
	"xsim-analytics/observatory/internal/metrics"
	"xsim-analytics/observatory/internal/models"
	"xsim-analytics/observatory/internal/normalizer"
	"xsim-analytics/observatory/internal/providers"
)

// ProlificStudios is the fixed set of third-party studios broken out in
// studio-level reports, in alphabetical order.
var ProlificStudios = []string{
	"Aerobask",
	"Alabeo",
	"Carenado",
	"Flight Factor",
	"FlyJSim",
	"JustFlight",
	"Other",
	"Thranda Design",
	"X-Crafts",
	"XPFR",
	"dmax3d.com",
}

// AircraftStatsService builds aircraft usage reports from raw analytics
// rows: it normalizes free-text aircraft labels, splits them into first-
// and third-party buckets, and ranks them.
type AircraftStatsService struct {
	source  providers.RowSource
	metrics *metrics.MetricsRegistry
}

func NewAircraftStatsService(source providers.RowSource, m *metrics.MetricsRegistry) *AircraftStatsService {
	return &AircraftStatsService{
		source:  source,
		metrics: m,
	}
}

// ParseCount parses an analytics count cell. Counts arrive formatted for
// humans, with thousands separators.
func ParseCount(s string) (int, error) {
	return strconv.Atoi(strings.ReplaceAll(s, ",", ""))
}

// BuildStats fetches and aggregates aircraft usage for one version and
// user group. Rows whose label was truncated upstream (no class segment)
// are dropped with a warning; they cannot be attributed to any aircraft.
func (s *AircraftStatsService) BuildStats(
	ctx context.Context,
	version providers.Version,
	group providers.UserGroup,
) (*models.AircraftStats, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ReportBuildDuration.WithLabelValues("aircraft").Observe(time.Since(start).Seconds())
		}
	}()

	rows, err := s.source.Query(ctx, providers.QueryRequest{
		Version:   version,
		Metric:    providers.MetricEvents,
		Dimension: providers.DimensionAircraft,
		Group:     group,
	})
	if err != nil {
		return nil, fmt.Errorf("aircraft usage query: %w", err)
	}

	stats := &models.AircraftStats{
		FirstParty: models.NewAircraftCounter(),
		ThirdParty: models.NewAircraftCounter(),
		Combined:   models.NewAircraftCounter(),
	}

	for _, row := range rows {
		if !strings.Contains(row.Label, normalizer.ClassMarker) {
			// This row got truncated upstream; nothing to be done here.
			logging.Warn("dropping truncated aircraft row", "label", row.Label)
			if s.metrics != nil {
				s.metrics.RowsDroppedTotal.WithLabelValues("aircraft").Inc()
			}
			continue
		}

		count, err := ParseCount(row.Count)
		if err != nil {
			return nil, fmt.Errorf("aircraft row count %q: %w", row.Count, err)
		}

		aircraft, err := normalizer.Parse(row.Label)
		if err != nil {
			return nil, fmt.Errorf("aircraft row %q: %w", row.Label, err)
		}

		stats.Combined.Add(aircraft, count)
		if aircraft.IsFirstParty() {
			stats.FirstParty.Add(aircraft, count)
		} else {
			stats.ThirdParty.Add(aircraft, count)
		}
		if s.metrics != nil {
			s.metrics.RowsProcessedTotal.WithLabelValues("aircraft").Inc()
		}
	}

	return stats, nil
}

// FirstVsThirdParty returns the two-slice usage split.
func FirstVsThirdParty(stats *models.AircraftStats) Series {
	total := stats.TotalFlights()
	return CountsToPercents(Counts{
		{Label: models.LaminarStudio, Count: stats.FirstPartyFlights()},
		{Label: "Third Party", Count: stats.ThirdPartyFlights()},
	}, total, 0)
}

// CategoryPercents returns per-category usage, with categories under 2%
// of flights collapsed into the residual bucket.
func CategoryPercents(stats *models.AircraftStats) Series {
	rollup := stats.CategoryRollup()
	counts := make(Counts, 0, len(rollup))
	for _, cc := range rollup {
		counts = append(counts, LabelCount{Label: cc.Category.String(), Count: cc.Count})
	}
	return CountsToPercents(counts, stats.TotalFlights(), 2)
}

// ThirdPartyLabel builds the display label for one third-party aircraft.
// The Zibo/Twkster 737 collaboration ships under several studio spellings
// and gets special-cased to a single canonical label.
func ThirdPartyLabel(a models.Aircraft) string {
	var key string
	if strings.Contains(a.Studio, "Zibo and Twkster") {
		key = "Zibo and Twkster " + a.Name
	} else {
		key = a.Studio + " " + a.Name
	}
	return strings.ReplaceAll(key, " and ", " & ")
}

// FirstPartyLabel labels first-party aircraft by name alone; the studio
// column would read Laminar Research on every row.
func FirstPartyLabel(a models.Aircraft) string {
	return a.Name
}

// TopWithOther ranks a counter, keeps the top n entries, and collapses
// the remainder into the residual bucket. The residual entry is included
// only when it is non-empty.
func TopWithOther(counter *models.AircraftCounter, n int, label func(models.Aircraft) string) Counts {
	ranked := counter.Ranked()
	out := make(Counts, 0, n+1)
	other := 0
	for i, entry := range ranked {
		if i < n {
			out = append(out, LabelCount{Label: label(entry.Aircraft), Count: entry.Count})
		} else {
			other += entry.Count
		}
	}
	if other > 0 {
		out = append(out, LabelCount{Label: constants.OtherBucket, Count: other})
	}
	return out
}

// StudioBreakdown groups third-party aircraft under the prolific studios.
// An aircraft lands under every studio whose name its studio contains.
func StudioBreakdown(stats *models.AircraftStats) map[string]Counts {
	out := make(map[string]Counts, len(ProlificStudios))
	studios := make([]string, len(ProlificStudios))
	copy(studios, ProlificStudios)
	sort.Strings(studios)
	for _, studio := range studios {
		var counts Counts
		for _, entry := range stats.ThirdParty.Entries() {
			if strings.Contains(entry.Aircraft.Studio, studio) {
				counts = append(counts, LabelCount{Label: entry.Aircraft.Name, Count: entry.Count})
			}
		}
		out[studio] = counts
	}
	return out
}
