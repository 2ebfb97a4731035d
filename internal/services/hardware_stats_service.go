package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"xsim-analytics/observatory/internal/constants"
	"xsim-analytics/observatory/internal/metrics"
	"xsim-analytics/observatory/internal/providers"
)

// vrCapableVersion is the first release with VR support; VR adoption is
// measured from its window start so the denominator only counts users who
// could have used VR at all.
const vrCapableVersion = providers.Version("11.20r4")

var knownHeadsets = []struct {
	searchTerm string
	name       string
}{
	{"rift", "Oculus Rift"},
	{"oculus", "Oculus Rift"},
	{"pimax 5k", "Pimax 5K"},
	{"psvr", "PSVR Headset"},
	{"windows", "Windows Mixed Reality"},
	{"lighthouse", "OpenVR (like HTC Vive)"},
	{"vive", "OpenVR (like HTC Vive)"},
	{"aapvr", "Phone"},
	{"vridge", "Phone"},
	{"ivry", "Phone"},
	{"phonevr", "Phone"},
}

// HardwareStatsService builds hardware survey reports: operating systems,
// RAM, GPUs, VR adoption, CPU core counts, and flight control hardware.
// All queries count users rather than events.
type HardwareStatsService struct {
	source  providers.RowSource
	metrics *metrics.MetricsRegistry

	version providers.Version
	group   providers.UserGroup
}

func NewHardwareStatsService(
	source providers.RowSource,
	m *metrics.MetricsRegistry,
	version providers.Version,
	group providers.UserGroup,
) *HardwareStatsService {
	return &HardwareStatsService{
		source:  source,
		metrics: m,
		version: version,
		group:   group,
	}
}

func (s *HardwareStatsService) query(ctx context.Context, dim providers.Dimension) ([]providers.Row, error) {
	return s.queryFrom(ctx, dim, "")
}

func (s *HardwareStatsService) queryFrom(
	ctx context.Context,
	dim providers.Dimension,
	overrideStart string,
) ([]providers.Row, error) {
	rows, err := s.source.Query(ctx, providers.QueryRequest{
		Version:       s.version,
		Metric:        providers.MetricUsers,
		Dimension:     dim,
		Group:         s.group,
		OverrideStart: overrideStart,
	})
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.RowsProcessedTotal.WithLabelValues("hardware").Add(float64(len(rows)))
	}
	return rows, nil
}

// countBy tallies rows under a classifier, preserving first-seen order.
func countBy(rows []providers.Row, classify func(string) string) (Counts, error) {
	var out Counts
	index := make(map[string]int)
	for _, row := range rows {
		val, err := ParseCount(row.Count)
		if err != nil {
			return nil, fmt.Errorf("hardware row count %q: %w", row.Count, err)
		}
		label := classify(row.Label)
		if i, ok := index[label]; ok {
			out[i].Count += val
		} else {
			index[label] = len(out)
			out = append(out, LabelCount{Label: label, Count: val})
		}
	}
	return out, nil
}

// OperatingSystems returns the platform split as percentages.
func (s *HardwareStatsService) OperatingSystems(ctx context.Context) (Series, error) {
	rows, err := s.query(ctx, providers.DimensionOS)
	if err != nil {
		return nil, err
	}
	counts, err := countBy(rows, ClassifyPlatform)
	if err != nil {
		return nil, err
	}
	return CountsToPercents(counts, counts.Total(), 0), nil
}

// OperatingSystemVersions returns per-platform version counts, keyed by
// platform name. Cells without version info are skipped.
func (s *HardwareStatsService) OperatingSystemVersions(ctx context.Context) (map[string]Counts, error) {
	rows, err := s.query(ctx, providers.DimensionOS)
	if err != nil {
		return nil, err
	}

	out := make(map[string]Counts)
	index := make(map[string]map[string]int)
	for _, row := range rows {
		val, err := ParseCount(row.Count)
		if err != nil {
			return nil, fmt.Errorf("hardware row count %q: %w", row.Count, err)
		}
		version := OSVersion(row.Label)
		if version == "" {
			continue
		}
		platform := ClassifyPlatform(row.Label)
		if index[platform] == nil {
			index[platform] = make(map[string]int)
		}
		if i, ok := index[platform][version]; ok {
			out[platform][i].Count += val
		} else {
			index[platform][version] = len(out[platform])
			out[platform] = append(out[platform], LabelCount{Label: version, Count: val})
		}
	}
	return out, nil
}

var ramBuckets = []int{2, 4, 8, 16, 32}

// RAMAmounts returns the share of users with at least 2/4/8/16/32 GB of
// RAM. The buckets are cumulative, so they do not sum to 100.
func (s *HardwareStatsService) RAMAmounts(ctx context.Context) (Series, error) {
	rows, err := s.query(ctx, providers.DimensionRAM)
	if err != nil {
		return nil, err
	}

	counts := make(Counts, len(ramBuckets))
	for i, gb := range ramBuckets {
		counts[i].Label = fmt.Sprintf("%dGB", gb)
	}
	totalUsers := 0
	for _, row := range rows {
		val, err := ParseCount(row.Count)
		if err != nil {
			return nil, fmt.Errorf("hardware row count %q: %w", row.Count, err)
		}
		totalUsers += val
		ramGB, err := strconv.Atoi(strings.TrimSpace(row.Label))
		if err != nil {
			return nil, fmt.Errorf("RAM row label %q: %w", row.Label, err)
		}
		for i, gb := range ramBuckets {
			if ramGB >= gb {
				counts[i].Count += val
			}
		}
	}
	return CountsToPercents(counts, totalUsers, 0), nil
}

// GPUManufacturers returns the vendor split. The unknown slice is dropped
// when it is negligible.
func (s *HardwareStatsService) GPUManufacturers(ctx context.Context) (Series, error) {
	rows, err := s.query(ctx, providers.DimensionGPU)
	if err != nil {
		return nil, err
	}
	counts, err := countBy(rows, GPUManufacturer)
	if err != nil {
		return nil, err
	}
	series := CountsToPercents(counts, counts.Total(), 0)
	for i, p := range series {
		if p.Label == "Unknown" && p.Percent < 0.3 {
			series = append(series[:i], series[i+1:]...)
			break
		}
	}
	return series, nil
}

// GPUGenerations returns the hardware generation split.
func (s *HardwareStatsService) GPUGenerations(ctx context.Context) (Series, error) {
	rows, err := s.query(ctx, providers.DimensionGPU)
	if err != nil {
		return nil, err
	}
	counts, err := countBy(rows, GPUGeneration)
	if err != nil {
		return nil, err
	}
	return CountsToPercents(counts, counts.Total(), 0), nil
}

// GPUPlatforms returns the Intel/mobile/desktop split.
func (s *HardwareStatsService) GPUPlatforms(ctx context.Context) (Series, error) {
	rows, err := s.query(ctx, providers.DimensionGPU)
	if err != nil {
		return nil, err
	}
	counts, err := countBy(rows, GPUPlatform)
	if err != nil {
		return nil, err
	}
	return CountsToPercents(counts, counts.Total(), 0), nil
}

// VRHeadsets returns headset usage among VR users, with the many reported
// spellings deduplicated and sub-1% headsets collapsed.
func (s *HardwareStatsService) VRHeadsets(ctx context.Context) (Series, error) {
	rows, err := s.query(ctx, providers.DimensionVRHeadset)
	if err != nil {
		return nil, err
	}
	counts, err := countBy(rows, func(label string) string {
		lower := strings.ToLower(label)
		for _, h := range knownHeadsets {
			if strings.Contains(lower, h.searchTerm) {
				return h.name
			}
		}
		return label
	})
	if err != nil {
		return nil, err
	}
	return CountsToPercents(counts, counts.Total(), 1), nil
}

// VRUsage returns the share of users who have flown in VR since VR
// support shipped.
func (s *HardwareStatsService) VRUsage(ctx context.Context) (Series, error) {
	meta, ok := vrCapableVersion.Meta()
	if !ok {
		return nil, fmt.Errorf("no query window for version %s", vrCapableVersion)
	}

	totalRows, err := s.queryFrom(ctx, providers.DimensionRAM, meta.Start)
	if err != nil {
		return nil, err
	}
	vrRows, err := s.queryFrom(ctx, providers.DimensionVRHeadset, meta.Start)
	if err != nil {
		return nil, err
	}

	totalUsers, err := sumCounts(totalRows)
	if err != nil {
		return nil, err
	}
	vrUsers, err := sumCounts(vrRows)
	if err != nil {
		return nil, err
	}
	if totalUsers == 0 {
		return nil, fmt.Errorf("no users found since %s", meta.Start)
	}

	vrPct := math.Round(float64(vrUsers)/float64(totalUsers)*100*100) / 100
	return Series{
		{Label: "Have Used VR", Percent: vrPct},
		{Label: "2-D Monitor Only", Percent: 100 - vrPct},
	}, nil
}

// CPUCores returns machine counts by CPU core count. The core count rides
// inside the CPU cell as a "Cores: N" segment; cells without one report
// zero cores.
func (s *HardwareStatsService) CPUCores(ctx context.Context) (Counts, error) {
	rows, err := s.query(ctx, providers.DimensionCPU)
	if err != nil {
		return nil, err
	}
	return countBy(rows, func(label string) string {
		for _, segment := range strings.Split(label, " - ") {
			if strings.HasPrefix(segment, "Cores:") {
				fields := strings.Split(segment, " ")
				if len(fields) > 1 {
					if cores, err := strconv.Atoi(fields[1]); err == nil {
						return strconv.Itoa(cores)
					}
				}
			}
		}
		return "0"
	})
}

// FlightControlsReport breaks down primary flight control hardware.
type FlightControlsReport struct {
	// Models counts users per device model among non-mouse users, with
	// rarely seen devices collapsed into the residual bucket.
	Models Counts
	// Types counts users per control type (yoke, joystick, gamepad...).
	Types Counts
	// Pedals splits users by whether they fly with rudder pedals.
	Pedals Counts
}

// FlightControls builds the flight control hardware breakdown.
func (s *HardwareStatsService) FlightControls(ctx context.Context) (*FlightControlsReport, error) {
	rows, err := s.query(ctx, providers.DimensionFlightControls)
	if err != nil {
		return nil, err
	}

	models, err := countBy(rows, CanonicalFlightControls)
	if err != nil {
		return nil, err
	}
	types, err := countBy(rows, ClassifyFlightControls)
	if err != nil {
		return nil, err
	}
	pedals, err := countBy(rows, func(label string) string {
		if HasPedals(label) {
			return "Yes"
		}
		return "No"
	})
	if err != nil {
		return nil, err
	}

	// Devices seen fewer than 5 times are noise: misreported USB
	// descriptors, one-off homebuilt rigs.
	kept := make(Counts, 0, len(models))
	other := 0
	for _, lc := range models {
		if lc.Label == "Mouse" {
			continue
		}
		if lc.Count < 5 {
			other += lc.Count
			continue
		}
		kept = append(kept, lc)
	}
	if other > 0 {
		kept = append(kept, LabelCount{Label: constants.OtherBucket, Count: other})
	}

	return &FlightControlsReport{
		Models: kept,
		Types:  types,
		Pedals: pedals,
	}, nil
}

// TotalUsers sums users over the RAM dimension, which every client
// reports exactly once.
func (s *HardwareStatsService) TotalUsers(ctx context.Context) (int, error) {
	rows, err := s.query(ctx, providers.DimensionRAM)
	if err != nil {
		return 0, err
	}
	return sumCounts(rows)
}

func sumCounts(rows []providers.Row) (int, error) {
	total := 0
	for _, row := range rows {
		val, err := ParseCount(row.Count)
		if err != nil {
			return 0, fmt.Errorf("row count %q: %w", row.Count, err)
		}
		total += val
	}
	return total, nil
}

// HardwareReport bundles every hardware breakdown for one version and
// group. Used by the CSV reporter and the dashboard snapshot endpoint.
type HardwareReport struct {
	OperatingSystems Series                `json:"operating_systems"`
	OSVersions       map[string]Counts     `json:"os_versions"`
	RAM              Series                `json:"ram"`
	GPUManufacturers Series                `json:"gpu_manufacturers"`
	GPUGenerations   Series                `json:"gpu_generations"`
	GPUPlatforms     Series                `json:"gpu_platforms"`
	VRUsage          Series                `json:"vr_usage"`
	VRHeadsets       Series                `json:"vr_headsets"`
	CPUCores         Counts                `json:"cpu_cores"`
	FlightControls   *FlightControlsReport `json:"flight_controls"`
}

func (s *HardwareStatsService) BuildReport(ctx context.Context) (*HardwareReport, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ReportBuildDuration.WithLabelValues("hardware").Observe(time.Since(start).Seconds())
		}
	}()

	var (
		report HardwareReport
		err    error
	)
	if report.OperatingSystems, err = s.OperatingSystems(ctx); err != nil {
		return nil, err
	}
	if report.OSVersions, err = s.OperatingSystemVersions(ctx); err != nil {
		return nil, err
	}
	if report.RAM, err = s.RAMAmounts(ctx); err != nil {
		return nil, err
	}
	if report.GPUManufacturers, err = s.GPUManufacturers(ctx); err != nil {
		return nil, err
	}
	if report.GPUGenerations, err = s.GPUGenerations(ctx); err != nil {
		return nil, err
	}
	if report.GPUPlatforms, err = s.GPUPlatforms(ctx); err != nil {
		return nil, err
	}
	if report.VRUsage, err = s.VRUsage(ctx); err != nil {
		return nil, err
	}
	if report.VRHeadsets, err = s.VRHeadsets(ctx); err != nil {
		return nil, err
	}
	if report.CPUCores, err = s.CPUCores(ctx); err != nil {
		return nil, err
	}
	if report.FlightControls, err = s.FlightControls(ctx); err != nil {
		return nil, err
	}
	return &report, nil
}
