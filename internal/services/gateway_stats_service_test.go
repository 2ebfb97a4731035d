package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"xsim-analytics/observatory/internal/providers"
)

type fakeGatewaySource struct {
	stats *providers.GatewayStatsByMonth
	err   error
}

func (f *fakeGatewaySource) StatsByMonth(ctx context.Context) (*providers.GatewayStatsByMonth, error) {
	return f.stats, f.err
}

func newGatewayService(stats *providers.GatewayStatsByMonth, now time.Time) *GatewayStatsService {
	svc := NewGatewayStatsService(&fakeGatewaySource{stats: stats})
	svc.now = func() time.Time { return now }
	return svc
}

func sampleGatewayStats() *providers.GatewayStatsByMonth {
	return &providers.GatewayStatsByMonth{
		Months:      []string{"2017-01", "2017-02", "2017-03"},
		Airports:    []int{100, 110, 120},
		Airports3D:  []int{10, 12, 14},
		Submissions: []int{500, 550, 600},
		Artists:     []int{40, 42, 44},
	}
}

func TestStatOverTime(t *testing.T) {
	svc := newGatewayService(sampleGatewayStats(), time.Date(2017, 4, 1, 0, 0, 0, 0, time.UTC))

	got, err := svc.StatOverTime(context.Background(), providers.GatewayStatAirports)
	if err != nil {
		t.Fatalf("StatOverTime: %v", err)
	}
	want := []MonthCount{
		{Month: "2017-01", Count: 100},
		{Month: "2017-02", Count: 110},
		{Month: "2017-03", Count: 120},
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestStatOverTimeDropsFutureMonths(t *testing.T) {
	// The gateway publishes placeholder rows for months that have not
	// happened yet; those never reach the dashboard.
	svc := newGatewayService(sampleGatewayStats(), time.Date(2017, 2, 15, 0, 0, 0, 0, time.UTC))

	got, err := svc.StatOverTime(context.Background(), providers.GatewayStatArtists)
	if err != nil {
		t.Fatalf("StatOverTime: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %+v, want 2 entries (2017-03 is in the future)", got)
	}
	if got[1].Month != "2017-02" || got[1].Count != 42 {
		t.Errorf("last entry = %+v, want {2017-02 42}", got[1])
	}
}

func TestStatOverTimeBadMonth(t *testing.T) {
	stats := sampleGatewayStats()
	stats.Months[1] = "February 2017"
	svc := newGatewayService(stats, time.Date(2017, 4, 1, 0, 0, 0, 0, time.UTC))

	if _, err := svc.StatOverTime(context.Background(), providers.GatewayStatAirports); err == nil {
		t.Fatal("expected error for unparseable month")
	}
}

func TestStatOverTimePropagatesSourceError(t *testing.T) {
	wantErr := errors.New("gateway down")
	svc := NewGatewayStatsService(&fakeGatewaySource{err: wantErr})

	if _, err := svc.StatOverTime(context.Background(), providers.GatewayStatAirports); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}

func TestBuildGatewayReport(t *testing.T) {
	svc := newGatewayService(sampleGatewayStats(), time.Date(2017, 4, 1, 0, 0, 0, 0, time.UTC))

	report, err := svc.BuildReport(context.Background())
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if len(report.Airports) != 3 || len(report.Airports3D) != 3 ||
		len(report.Submissions) != 3 || len(report.Artists) != 3 {
		t.Fatalf("report series lengths = %d/%d/%d/%d, want 3 each",
			len(report.Airports), len(report.Airports3D), len(report.Submissions), len(report.Artists))
	}
	if report.Airports3D[2].Count != 14 {
		t.Errorf("Airports3D[2] = %+v, want count 14", report.Airports3D[2])
	}
}
