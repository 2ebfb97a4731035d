package providers

import (
	"fmt"
	"time"
)

// Row is one result row from the analytics API: a label and its count. The
// count is a thousands-separated integer string (e.g. "1,234"); parsing it
// is the consumer's job, not the provider's.
type Row struct {
	Label string
	Count string
}

// Metric selects what the analytics API counts.
type Metric string

const (
	MetricEvents   Metric = "ga:totalEvents"
	MetricUsers    Metric = "ga:users"
	MetricSessions Metric = "ga:sessions"
	MetricCrashes  Metric = "ga:fatalExceptions"
)

// Dimension is a custom dimension slot on the desktop analytics property.
type Dimension int

const (
	DimensionAircraft          Dimension = 2
	DimensionRegion            Dimension = 3
	DimensionMission           Dimension = 4
	DimensionEndCondition      Dimension = 5
	DimensionRetry             Dimension = 7
	DimensionProductLevel      Dimension = 8
	DimensionScreen            Dimension = 10
	DimensionVRHeadset         Dimension = 11
	DimensionVRControllers     Dimension = 12
	DimensionFlightControls    Dimension = 13
	DimensionRenderingSettings Dimension = 14
	DimensionAcfStartType      Dimension = 15
	DimensionOS                Dimension = 16
	DimensionCPU               Dimension = 17
	DimensionGPU               Dimension = 18
	DimensionRAM               Dimension = 19
	DimensionABTests           Dimension = 20
)

func (d Dimension) String() string {
	return fmt.Sprintf("ga:dimension%d", int(d))
}

// UserGroup filters the queried population by product level.
type UserGroup string

const (
	GroupAll UserGroup = ""
	// GroupPaidOnly filters out product levels containing "Demo", i.e.
	// shows only paying users.
	GroupPaidOnly UserGroup = "ga:dimension8!@Demo"
	GroupDemoOnly UserGroup = "ga:dimension8=@Demo"
)

// Name returns a short tag for cache keys and file suffixes.
func (g UserGroup) Name() string {
	switch g {
	case GroupPaidOnly:
		return "PaidOnly"
	case GroupDemoOnly:
		return "DemoOnly"
	default:
		return "All"
	}
}

// Version identifies a tracked simulator release.
type Version string

// VersionMeta carries the query window for one release. End == "today" means
// the release is still collecting data.
type VersionMeta struct {
	Name  string
	Final bool // stable release, not a beta or release candidate
	Start string
	End   string
}

const endToday = "today"

var versionTable = map[Version]VersionMeta{
	// Sep 2015 is when 10.40 went final and data stopped being only
	// hardcore early adopters.
	"10":      {Name: "10", Final: false, Start: "2015-09-19", End: "2017-06-01"},
	"10.51r2": {Name: "10.51r2", Final: true, Start: "2016-10-26", End: "2017-06-01"},
	// Date when 11.00pb1 went live.
	"11":      {Name: "11", Final: false, Start: "2016-11-24", End: endToday},
	"11.20r4": {Name: "11.20r4", Final: true, Start: "2018-05-02", End: "2019-01-22"},
	"11.26r2": {Name: "11.26r2", Final: true, Start: "2018-08-23", End: "2019-01-22"},
	"11.30r1": {Name: "11.30r1", Final: false, Start: "2018-12-14", End: "2018-12-25"},
	"11.30r2": {Name: "11.30r2", Final: false, Start: "2018-12-24", End: "2019-01-10"},
	"11.30r3": {Name: "11.30r3", Final: true, Start: "2019-01-08", End: "2019-02-02"},
	"11.31r1": {Name: "11.31r1", Final: true, Start: "2019-01-26", End: "2019-03-11"},
	"11.32r1": {Name: "11.32r1", Final: false, Start: "2019-02-06", End: "2019-02-22"},
	"11.32r2": {Name: "11.32r2", Final: true, Start: "2019-02-21", End: "2019-05-01"},
	"11.33b1": {Name: "11.33b1", Final: false, Start: "2019-02-21", End: "2019-05-07"},
	"11.33r1": {Name: "11.33r1", Final: false, Start: "2019-04-24", End: "2019-08-01"},
	"11.33r2": {Name: "11.33r2", Final: true, Start: "2019-04-26", End: endToday},
	"11.34r1": {Name: "11.34r1", Final: true, Start: "2019-05-07", End: endToday},
	"11.35b2": {Name: "11.35b2", Final: false, Start: "2019-06-06", End: endToday},
}

// Meta looks up the query window for a version.
func (v Version) Meta() (VersionMeta, bool) {
	m, ok := versionTable[v]
	return m, ok
}

// StartDate parses the window start.
func (m VersionMeta) StartDate() time.Time {
	t, _ := time.Parse("2006-01-02", m.Start)
	return t
}

// EndDate resolves the window end, with "today" pinned to now.
func (m VersionMeta) EndDate(now time.Time) time.Time {
	if m.End == endToday {
		return now
	}
	t, _ := time.Parse("2006-01-02", m.End)
	return t
}

// HasFullDataRetention reports whether the version's whole window still
// falls inside the analytics property's 26-month retention period. User
// counts for versions older than that are incomplete and misleading.
func (m VersionMeta) HasFullDataRetention(now time.Time) bool {
	endOfRetention := now
	for i := 0; i < 26; i++ {
		firstOfMonth := time.Date(endOfRetention.Year(), endOfRetention.Month(), 1, 0, 0, 0, 0, endOfRetention.Location())
		endOfRetention = firstOfMonth.AddDate(0, 0, -1)
	}
	return m.StartDate().After(endOfRetention)
}

// QueryRequest describes one analytics query.
type QueryRequest struct {
	Version   Version
	Metric    Metric
	Dimension Dimension
	Group     UserGroup
	// OverrideStart replaces the version's window start when set
	// (ISO date, e.g. "2019-04-01").
	OverrideStart string
}

// CacheKey is stable across identical requests.
func (q QueryRequest) CacheKey() string {
	return fmt.Sprintf("%s-%s-%s-%s-%s", q.Version, q.Metric, q.Dimension, q.Group.Name(), q.OverrideStart)
}
