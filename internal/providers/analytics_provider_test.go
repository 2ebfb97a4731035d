package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"xsim-analytics/observatory/internal/common"
	"xsim-analytics/observatory/internal/constants"
)

func newTestProvider(baseURL string, cache common.CacheInterface) *AnalyticsProvider {
	return &AnalyticsProvider{
		BaseURL:   baseURL,
		APIKey:    "test-key",
		ProfileID: "12345",
		Client:    http.DefaultClient,
		cache:     cache,
		limiter:   rate.NewLimiter(rate.Inf, 1),
		now:       func() time.Time { return time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func TestQueryBuildsRequest(t *testing.T) {
	var gotQuery url.Values
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"rows": [["label one", "1,234"], ["label two", "56"]]}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, nil)
	rows, err := p.Query(context.Background(), QueryRequest{
		Version:   "11",
		Metric:    MetricEvents,
		Dimension: DimensionAircraft,
		Group:     GroupPaidOnly,
	})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want Bearer test-key", gotAuth)
	}
	wantParams := map[string]string{
		"ids":           "ga:12345",
		"samplingLevel": "HIGHER_PRECISION",
		"start-date":    "2016-11-24",
		"end-date":      "2019-06-01",
		"metrics":       "ga:totalEvents",
		"dimensions":    "ga:dimension2",
		"sort":          "-ga:totalEvents",
		"filters":       "ga:appVersion=@X-Plane 11;ga:dimension8!@Demo",
	}
	for k, want := range wantParams {
		if got := gotQuery.Get(k); got != want {
			t.Errorf("query param %s = %q, want %q", k, got, want)
		}
	}

	if len(rows) != 2 {
		t.Fatalf("rows = %+v, want 2", rows)
	}
	if rows[0].Label != "label one" || rows[0].Count != "1,234" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
}

func TestQueryAllGroupHasNoProductLevelFilter(t *testing.T) {
	var gotFilters string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFilters = r.URL.Query().Get("filters")
		w.Write([]byte(`{"rows": [["a", "1"]]}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, nil)
	if _, err := p.Query(context.Background(), QueryRequest{
		Version: "11", Metric: MetricEvents, Dimension: DimensionAircraft,
	}); err != nil {
		t.Fatalf("Query: %v", err)
	}
	if gotFilters != "ga:appVersion=@X-Plane 11" {
		t.Errorf("filters = %q, want version filter only", gotFilters)
	}
}

func TestQueryOverrideStart(t *testing.T) {
	var gotStart string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStart = r.URL.Query().Get("start-date")
		w.Write([]byte(`{"rows": [["a", "1"]]}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, nil)
	if _, err := p.Query(context.Background(), QueryRequest{
		Version: "11", Metric: MetricUsers, Dimension: DimensionRAM,
		OverrideStart: "2018-05-02",
	}); err != nil {
		t.Fatalf("Query: %v", err)
	}
	if gotStart != "2018-05-02" {
		t.Errorf("start-date = %q, want 2018-05-02", gotStart)
	}
}

func TestQueryUnknownVersion(t *testing.T) {
	p := newTestProvider("http://unused.invalid", nil)
	_, err := p.Query(context.Background(), QueryRequest{
		Version: "9.99", Metric: MetricEvents, Dimension: DimensionAircraft,
	})

	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Code != constants.ErrCodeMalformedResponse {
		t.Fatalf("err = %v, want MALFORMED_RESPONSE for unknown version", err)
	}
}

func TestQueryStrictModeRefusesIncompleteRetention(t *testing.T) {
	p := newTestProvider("http://unused.invalid", nil)
	p.StrictMode = true
	// Retention reaches back 26 months from June 2019; the v10 window
	// starts in 2015, well outside it.
	_, err := p.Query(context.Background(), QueryRequest{
		Version: "10", Metric: MetricUsers, Dimension: DimensionOS,
	})

	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Code != constants.ErrCodeIncompleteWindow {
		t.Fatalf("err = %v, want INCOMPLETE_DATA_WINDOW", err)
	}
}

func TestQueryStrictModeAllowsEventQueries(t *testing.T) {
	// Retention only limits user counts; event totals stay queryable.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rows": [["a", "1"]]}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, nil)
	p.StrictMode = true
	if _, err := p.Query(context.Background(), QueryRequest{
		Version: "10", Metric: MetricEvents, Dimension: DimensionAircraft,
	}); err != nil {
		t.Fatalf("Query: %v", err)
	}
}

func TestQueryRateLimitedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, nil)
	_, err := p.Query(context.Background(), QueryRequest{
		Version: "11", Metric: MetricEvents, Dimension: DimensionAircraft,
	})

	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Code != constants.ErrCodeRateLimited {
		t.Fatalf("err = %v, want RATE_LIMITED", err)
	}
}

func TestQueryBadUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, nil)
	_, err := p.Query(context.Background(), QueryRequest{
		Version: "11", Metric: MetricEvents, Dimension: DimensionAircraft,
	})

	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Code != constants.ErrCodeBadUpstreamStatus {
		t.Fatalf("err = %v, want BAD_UPSTREAM_STATUS", err)
	}
}

func TestQueryMalformedRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rows": [["only one column"]]}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, nil)
	_, err := p.Query(context.Background(), QueryRequest{
		Version: "11", Metric: MetricEvents, Dimension: DimensionAircraft,
	})

	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Code != constants.ErrCodeMalformedResponse {
		t.Fatalf("err = %v, want MALFORMED_RESPONSE", err)
	}
}

func TestQueryZeroRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rows": []}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, nil)
	rows, err := p.Query(context.Background(), QueryRequest{
		Version: "11", Metric: MetricEvents, Dimension: DimensionAircraft,
	})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if rows != nil {
		t.Errorf("rows = %+v, want nil", rows)
	}
}

func TestQueryMissingAPIKey(t *testing.T) {
	p := newTestProvider("http://unused.invalid", nil)
	p.APIKey = ""
	_, err := p.Query(context.Background(), QueryRequest{
		Version: "11", Metric: MetricEvents, Dimension: DimensionAircraft,
	})

	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Code != constants.ErrCodeInvalidAPIKey {
		t.Fatalf("err = %v, want INVALID_API_KEY", err)
	}
}

func TestQueryServesSecondCallFromCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"rows": [["a", "1"]]}`))
	}))
	defer srv.Close()

	cache := common.NewMemoryCache()
	p := newTestProvider(srv.URL, cache)
	req := QueryRequest{Version: "11", Metric: MetricEvents, Dimension: DimensionAircraft}

	for i := 0; i < 2; i++ {
		rows, err := p.Query(context.Background(), req)
		if err != nil {
			t.Fatalf("Query %d: %v", i, err)
		}
		if len(rows) != 1 || rows[0].Label != "a" {
			t.Fatalf("Query %d rows = %+v", i, rows)
		}
	}
	if hits != 1 {
		t.Errorf("upstream hits = %d, want 1", hits)
	}
}

func TestHasFullDataRetention(t *testing.T) {
	now := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		version Version
		want    bool
	}{
		{"10", false},      // starts 2015-09-19
		{"11.20r4", true},  // starts 2018-05-02
		{"11.34r1", true},  // starts 2019-05-07
		{"10.51r2", false}, // starts 2016-10-26
	}
	for _, c := range cases {
		meta, ok := c.version.Meta()
		if !ok {
			t.Fatalf("unknown version %q", c.version)
		}
		if got := meta.HasFullDataRetention(now); got != c.want {
			t.Errorf("HasFullDataRetention(%s) = %v, want %v", c.version, got, c.want)
		}
	}
}

func TestQueryRequestCacheKey(t *testing.T) {
	a := QueryRequest{Version: "11", Metric: MetricEvents, Dimension: DimensionAircraft, Group: GroupPaidOnly}
	b := a
	if a.CacheKey() != b.CacheKey() {
		t.Error("identical requests must share a cache key")
	}
	b.Group = GroupDemoOnly
	if a.CacheKey() == b.CacheKey() {
		t.Error("group must participate in the cache key")
	}
	b = a
	b.OverrideStart = "2018-05-02"
	if a.CacheKey() == b.CacheKey() {
		t.Error("override start must participate in the cache key")
	}
}

func TestDimensionString(t *testing.T) {
	if got := DimensionAircraft.String(); got != "ga:dimension2" {
		t.Errorf("DimensionAircraft = %q, want ga:dimension2", got)
	}
	if got := DimensionRAM.String(); got != "ga:dimension19" {
		t.Errorf("DimensionRAM = %q, want ga:dimension19", got)
	}
}
