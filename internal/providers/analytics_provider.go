package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"xsim-analytics/observatory/internal/common"
	"xsim-analytics/observatory/internal/constants"
	"xsim-analytics/observatory/internal/logging"
	"xsim-analytics/observatory/internal/metrics"
)

// RowSource is what the stats services depend on: something that answers
// analytics queries with rows of (label, count) pairs.
type RowSource interface {
	Query(ctx context.Context, req QueryRequest) ([]Row, error)
}

// ProviderError wraps an upstream failure with a stable error code.
type ProviderError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// AnalyticsProvider queries the web analytics reporting API over HTTP.
// Responses are cached; the upstream enforces a modest request quota, so
// queries also go through a client-side rate limiter.
type AnalyticsProvider struct {
	BaseURL   string
	APIKey    string
	ProfileID string
	Client    *http.Client

	// StrictMode refuses user-count queries for versions whose data
	// retention window is incomplete instead of returning partial data.
	StrictMode bool

	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
	limiter *rate.Limiter
	now     func() time.Time
}

var _ RowSource = (*AnalyticsProvider)(nil)

// NewAnalyticsProvider builds a provider from environment configuration.
func NewAnalyticsProvider(cache common.CacheInterface, m *metrics.MetricsRegistry) *AnalyticsProvider {
	baseURL := os.Getenv("ANALYTICS_BASE_URL")
	if baseURL == "" {
		baseURL = "https://analytics-api.x-plane.internal/v3/data"
	}
	return &AnalyticsProvider{
		BaseURL:   baseURL,
		APIKey:    os.Getenv("ANALYTICS_API_KEY"),
		ProfileID: os.Getenv("ANALYTICS_PROFILE_ID"),
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache:   cache,
		metrics: m,
		limiter: rate.NewLimiter(rate.Limit(2), 4),
		now:     time.Now,
	}
}

const queryCacheTTL = 24 * time.Hour

func (p *AnalyticsProvider) countRequest(outcome string) {
	if p.metrics != nil {
		p.metrics.ProviderRequestsTotal.WithLabelValues("analytics", outcome).Inc()
	}
}

type analyticsResponse struct {
	Rows [][]string `json:"rows"`
}

// Query runs one analytics query, serving repeated requests from cache.
func (p *AnalyticsProvider) Query(ctx context.Context, req QueryRequest) ([]Row, error) {
	meta, ok := req.Version.Meta()
	if !ok {
		return nil, &ProviderError{
			Code:    constants.ErrCodeMalformedResponse,
			Message: fmt.Sprintf("unknown app version %q", req.Version),
		}
	}

	if p.StrictMode && req.Metric == MetricUsers && !meta.HasFullDataRetention(p.now()) {
		logging.Warn("refusing users query with incomplete data retention",
			"version", meta.Name,
			"metric", string(req.Metric),
		)
		return nil, &ProviderError{
			Code:    constants.ErrCodeIncompleteWindow,
			Message: constants.GetErrorMessage(constants.ErrCodeIncompleteWindow),
		}
	}

	cacheKey := string(constants.CachePrefixAnalyticsQuery) + req.CacheKey()
	if p.cache != nil {
		if val, found := p.cache.Get(cacheKey); found {
			if rows, ok := val.([]Row); ok {
				if p.metrics != nil {
					p.metrics.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixAnalyticsQuery)).Inc()
				}
				return rows, nil
			}
		}
		if p.metrics != nil {
			p.metrics.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixAnalyticsQuery)).Inc()
		}
	}

	rows, err := p.fetch(ctx, req, meta)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		p.cache.Set(cacheKey, rows, queryCacheTTL)
	}
	return rows, nil
}

func (p *AnalyticsProvider) fetch(ctx context.Context, req QueryRequest, meta VersionMeta) ([]Row, error) {
	if p.APIKey == "" {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidAPIKey,
			Message: "ANALYTICS_API_KEY environment variable is not set",
		}
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeRateLimited,
			Message: constants.GetErrorMessage(constants.ErrCodeRateLimited),
			Err:     err,
		}
	}

	start := meta.Start
	if req.OverrideStart != "" {
		start = req.OverrideStart
	}
	end := meta.End
	if end == endToday {
		end = p.now().Format("2006-01-02")
	}

	filters := "ga:appVersion=@X-Plane " + meta.Name
	if req.Group != GroupAll {
		filters += ";" + string(req.Group)
	}

	params := url.Values{}
	params.Set("ids", "ga:"+p.ProfileID)
	params.Set("samplingLevel", "HIGHER_PRECISION")
	params.Set("start-date", start)
	params.Set("end-date", end)
	params.Set("metrics", string(req.Metric))
	params.Set("dimensions", req.Dimension.String())
	params.Set("sort", "-"+string(req.Metric))
	params.Set("filters", filters)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "failed to build analytics request",
			Err:     err,
		}
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.APIKey)
	httpReq.Header.Set("Accept", "application/json")

	reqStart := time.Now()
	resp, err := p.Client.Do(httpReq)
	if p.metrics != nil {
		p.metrics.ProviderRequestDuration.WithLabelValues("analytics").Observe(time.Since(reqStart).Seconds())
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

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &ProviderError{
			Code:    constants.ErrCodeRateLimited,
			Message: constants.GetErrorMessage(constants.ErrCodeRateLimited),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &ProviderError{
			Code:    constants.ErrCodeBadUpstreamStatus,
			Message: fmt.Sprintf("analytics API returned %d: %s", resp.StatusCode, string(body)),
		}
	}

	var parsed analyticsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeMalformedResponse,
			Message: constants.GetErrorMessage(constants.ErrCodeMalformedResponse),
			Err:     err,
		}
	}

	if len(parsed.Rows) == 0 {
		// Almost certainly a logic error in the query, not a real zero.
		logging.Warn("no results for analytics query",
			"metric", string(req.Metric),
			"version", meta.Name,
		)
		return nil, nil
	}

	rows := make([]Row, 0, len(parsed.Rows))
	for _, r := range parsed.Rows {
		if len(r) < 2 {
			return nil, &ProviderError{
				Code:    constants.ErrCodeMalformedResponse,
				Message: fmt.Sprintf("analytics row has %d columns, want 2", len(r)),
			}
		}
		rows = append(rows, Row{Label: r[0], Count: r[1]})
	}
	return rows, nil
}
